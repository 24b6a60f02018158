//go:build !linux

package transport

import "time"

// Serial is a placeholder on platforms without serial support.
// OpenSerial always fails there, so no method can be reached on a
// live value.
type Serial struct {
	path string
}

// OpenSerial reports that serial lines are unsupported on this
// platform.
func OpenSerial(path string, opts SerialOptions) (*Serial, error) {
	return nil, ErrSerialUnsupported
}

// Path returns the device path the line was opened on.
func (s *Serial) Path() string { return s.path }

func (s *Serial) Write(p []byte) (int, error) { return 0, ErrClosed }

// ReadByte returns the next byte from the line, waiting up to wait
// for one to arrive.
func (s *Serial) ReadByte(wait time.Duration) (byte, bool, error) {
	return 0, false, ErrClosed
}

func (s *Serial) Close() error { return nil }
