package zstr

// Put replaces the content with str.
func (s *S) Put(str string) {
	s.EnsureCap(len(str))
	if s.p == nil {
		return
	}
	s.n = copy(s.p, str)
	s.p[s.n] = 0
}

// PutBytes replaces the content with b. Put and PutBytes are both primitive
// so neither pays a string/slice conversion copy.
func (s *S) PutBytes(b []byte) {
	s.EnsureCap(len(b))
	if s.p == nil {
		return
	}
	s.n = copy(s.p, b)
	s.p[s.n] = 0
}

// PutS replaces the content with the content of o. A nil or unallocated
// source is a no-op. The source must not be s itself.
func (s *S) PutS(o *S) {
	if o == nil || o.p == nil {
		return
	}
	s.PutBytes(o.p[:o.n])
}

// Cat appends str to the content.
func (s *S) Cat(str string) {
	s.MakeRoomFor(len(str))
	if s.p == nil {
		return
	}
	copy(s.p[s.n:], str)
	s.n += len(str)
	s.p[s.n] = 0
}

// CatBytes appends b to the content.
func (s *S) CatBytes(b []byte) {
	s.MakeRoomFor(len(b))
	if s.p == nil {
		return
	}
	copy(s.p[s.n:], b)
	s.n += len(b)
	s.p[s.n] = 0
}

// CatS appends the content of o. A nil or unallocated source is a no-op.
// The source must not be s itself.
func (s *S) CatS(o *S) {
	if o == nil || o.p == nil {
		return
	}
	s.CatBytes(o.p[:o.n])
}
