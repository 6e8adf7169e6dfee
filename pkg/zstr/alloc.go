package zstr

// CapMax is the largest capacity a string can have. One byte past the
// content is reserved for the terminator, so the storage size capacity+1
// can never wrap.
const CapMax = int(^uint(0)>>1) - 1

// alloc is the storage allocator. Tests swap it out to simulate allocation
// failure, which make cannot report.
var alloc = defaultAlloc

func defaultAlloc(size int) []byte { return make([]byte, size) }

// drop releases the storage and resets the string to the unallocated state.
func (s *S) drop() {
	s.n, s.c, s.p = 0, 0, nil
}

// realloc replaces the storage with a region holding newCap content bytes
// plus the terminator, preserving content. On allocation failure the old
// storage is dropped as well, so the string never keeps stale content after
// reporting failure through the unallocated state.
func (s *S) realloc(newCap int) {
	np := alloc(newCap + 1)
	if np == nil {
		s.drop()
		return
	}
	if s.p != nil {
		copy(np, s.p[:s.n+1]) // content plus terminator
	}
	// A fresh region is zeroed, so an unallocated string comes out empty
	// and already terminated.
	s.c = newCap
	s.p = np
}

// EnsureCap guarantees capacity of at least newCap content bytes. Growth is
// exact-fit: a growing string is reallocated to precisely newCap. Length and
// content are preserved. If newCap exceeds CapMax the storage is released
// and the string becomes unallocated. A negative newCap is the signed image
// of a wrapped size and is treated the same way.
func (s *S) EnsureCap(newCap int) {
	if newCap < 0 || newCap > CapMax {
		s.drop()
		return
	}
	if s.p != nil && s.c >= newCap {
		return
	}
	s.realloc(newCap)
}

// MakeRoomFor guarantees capacity for add more content bytes past the
// current length. If length+add would exceed CapMax the storage is released
// and the string becomes unallocated.
func (s *S) MakeRoomFor(add int) {
	if s.p != nil {
		if add < 0 || s.n > CapMax-add {
			s.drop()
			return
		}
		newCap := s.n + add
		if s.c >= newCap {
			return
		}
		s.realloc(newCap)
		return
	}
	if add < 0 || add > CapMax {
		return
	}
	s.realloc(add)
}
