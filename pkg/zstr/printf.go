package zstr

import "fmt"

// Write appends p to the content, implementing io.Writer. It reports
// ErrNoMem once the string has dropped its storage, so a formatter
// streaming into the string stops instead of writing into nothing.
func (s *S) Write(p []byte) (int, error) {
	s.CatBytes(p)
	if s.p == nil {
		return 0, ErrNoMem
	}
	return len(p), nil
}

// WriteString appends str to the content, implementing io.StringWriter.
func (s *S) WriteString(str string) (int, error) {
	s.Cat(str)
	if s.p == nil {
		return 0, ErrNoMem
	}
	return len(str), nil
}

// Catf appends the fmt-style expansion of format. The expansion streams in
// through the ordinary append path, growing storage on demand, so the
// result length is never pre-computed. Pre-reserve with MakeRoomFor when
// appending long expansions in a hot loop.
func (s *S) Catf(format string, args ...any) {
	fmt.Fprintf(s, format, args...)
}

// Putf replaces the content with the fmt-style expansion of format.
// Implemented as Clear followed by the Catf append path.
func (s *S) Putf(format string, args ...any) {
	s.Clear()
	fmt.Fprintf(s, format, args...)
}
