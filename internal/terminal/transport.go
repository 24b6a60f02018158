package terminal

import (
	"io"
	"time"
)

// Forever makes a read wait indefinitely for traffic.
const Forever time.Duration = -1

// Transport is the byte pipe between the engine and the physical
// terminal. Implementations deliver reads one byte at a time so the
// demultiplexer can stop exactly at a frame boundary.
type Transport interface {
	io.Writer
	io.Closer

	// ReadByte returns the next byte from the terminal, waiting up to
	// wait for one to arrive. ok is false when the wait elapses with
	// nothing available. A negative wait blocks until a byte arrives.
	ReadByte(wait time.Duration) (b byte, ok bool, err error)
}
