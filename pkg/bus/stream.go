package bus

import (
	"io"

	"github.com/pkg/errors"
)

// Stream adapts an io.ReadWriter (UART, TCP, pipe) to Transport.
type Stream struct {
	rw io.ReadWriter
}

// NewStream wraps rw.
func NewStream(rw io.ReadWriter) *Stream {
	return &Stream{rw: rw}
}

// Write implements Transport.
func (s *Stream) Write(b []byte) error {
	n, err := s.rw.Write(b)
	if err != nil {
		return errors.Wrap(err, "stream write")
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	return nil
}

// Read implements Transport.
func (s *Stream) Read(b []byte) error {
	if _, err := io.ReadFull(s.rw, b); err != nil {
		return errors.Wrap(err, "stream read")
	}
	return nil
}

// Close implements Transport, closing the underlying stream if it is an
// io.Closer.
func (s *Stream) Close() error {
	if c, ok := s.rw.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
