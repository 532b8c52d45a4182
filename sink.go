package pprint

import (
	"io"
)

// Stream is a chainable output sink. It wraps an [io.Writer] and remembers
// the first write error; once an error is recorded every later write is
// skipped.
//
//	err := pprint.To(os.Stdout).Print(xs).Print(" and ").Print(p).Err()
type Stream struct {
	w   io.Writer
	n   int64
	err error
}

// To returns a Stream writing to w. If w is already a Stream it is returned
// as is.
func To(w io.Writer) *Stream {
	if s, ok := w.(*Stream); ok {
		return s
	}
	return &Stream{w: w}
}

// Print writes v using the element dispatch of this package and returns s.
func (s *Stream) Print(v any) *Stream {
	writeElem(s, v)
	return s
}

// Write implements [io.Writer].
func (s *Stream) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		s.err = err
	}
	return n, err
}

// WriteString implements [io.StringWriter].
func (s *Stream) WriteString(str string) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := io.WriteString(s.w, str)
	s.n += int64(n)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Err returns the first error reported by the underlying writer.
func (s *Stream) Err() error { return s.err }

// Written returns the number of bytes accepted by the underlying writer.
func (s *Stream) Written() int64 { return s.n }
