// Package zstr implements an owned, growable byte string that keeps a zero
// terminator one past its content, so its storage is always readable as a
// conventional C-style string.
//
// The zero value of S is an empty string with no allocation. Mutating
// methods allocate lazily and reallocate exact-fit: capacity grows to
// precisely what was requested, never more. Callers appending in a loop
// should reserve space up front with EnsureCap or MakeRoomFor.
//
// On capacity overflow or allocation failure a string silently drops its
// storage and returns to the unallocated state; no old or partial content
// survives. Check Allocated after a mutation to detect this. Read methods
// never fail and treat an unallocated string as empty.
//
// S is not safe for concurrent use.
package zstr

import (
	"errors"
	"strings"
)

// ErrNoMem is reported by the io.Writer methods when the string has dropped
// its storage due to overflow or a failed allocation.
var ErrNoMem = errors.New("zstr: allocation failed or capacity overflow")

// S is a growable, zero-terminated byte string.
// When allocated, len(p) == c+1 and p[n] == 0.
type S struct {
	n int    // content bytes in use, terminator excluded
	c int    // content bytes allocated, terminator excluded
	p []byte // nil when unallocated
}

// New returns a string holding str.
func New(str string) *S {
	s := new(S)
	s.Put(str)
	return s
}

// Len returns the number of content bytes, terminator excluded.
func (s *S) Len() int { return s.n }

// Cap returns the number of content bytes the storage can hold without
// reallocating, terminator excluded.
func (s *S) Cap() int { return s.c }

// LenCap returns Len and Cap in one call.
func (s *S) LenCap() (int, int) { return s.n, s.c }

// Avail returns Cap minus Len.
func (s *S) Avail() int { return s.c - s.n }

// Allocated reports whether the string owns storage. Every mutating method
// leaves this false after an overflow or allocation failure; note that
// putting even an empty value allocates, so a false result after a mutation
// always means the mutation failed.
func (s *S) Allocated() bool { return s.p != nil }

// Bytes returns the content as a byte slice of length Len. The slice aliases
// the string's storage and is only valid until the next mutation. Its
// capacity is clamped so append cannot overwrite the terminator.
func (s *S) Bytes() []byte {
	if s.p == nil {
		return nil
	}
	return s.p[:s.n:s.n]
}

// Raw returns the whole storage region, Cap+1 bytes. The byte at index Len
// is the terminator. Code that writes into it directly must re-terminate and
// call PokeLen itself. Returns nil when unallocated.
func (s *S) Raw() []byte {
	if s.p == nil {
		return nil
	}
	return s.p
}

// String returns a copy of the content.
func (s *S) String() string {
	if s.p == nil {
		return ""
	}
	return string(s.p[:s.n])
}

// Clear sets the length to zero and re-terminates at offset zero. Storage is
// kept; capacity is unchanged. No-op on an unallocated string.
func (s *S) Clear() {
	if s.p == nil {
		return
	}
	s.n = 0
	s.p[0] = 0
}

// Free releases the storage and resets the string to the unallocated state.
// Safe to call on an unallocated string.
func (s *S) Free() { s.drop() }

// Swap exchanges the contents of s and o in constant time. Only the struct
// fields move; no bytes are copied and no allocation happens.
func (s *S) Swap(o *S) { *s, *o = *o, *s }

// PokeLen overwrites the length field and nothing else. Escape hatch for
// code that has written bytes directly into Raw after reserving capacity:
// the caller must have placed valid content and a terminator at the new
// length within the existing capacity. This is the one method that does not
// restore the terminator invariant itself.
func (s *S) PokeLen(n int) { s.n = n }

// Trim removes every leading and trailing byte that appears in cutset,
// in place. Capacity is unchanged. No-op on an unallocated string.
func (s *S) Trim(cutset string) {
	if s.p == nil {
		return
	}
	i, j := 0, s.n-1
	for i <= j && strings.IndexByte(cutset, s.p[i]) >= 0 {
		i++
	}
	for j > i && strings.IndexByte(cutset, s.p[j]) >= 0 {
		j--
	}
	n := 0
	if i <= j {
		n = j - i + 1
	}
	if i > 0 && n > 0 {
		copy(s.p, s.p[i:i+n])
	}
	s.n = n
	s.p[n] = 0
}
