package transport

import "errors"

// Sentinel errors for the transport package.
var (
	// ErrNotTerminal is returned when stdio transport is requested
	// but stdin is not attached to a terminal.
	ErrNotTerminal = errors.New("stdin is not a terminal")

	// ErrUnknownBaud is returned for rates the hardware cannot clock.
	ErrUnknownBaud = errors.New("unsupported baud rate")

	// ErrClosed is returned for reads and writes on a closed
	// transport.
	ErrClosed = errors.New("transport is closed")

	// ErrSerialUnsupported is returned by OpenSerial on platforms
	// without the Linux termios surface.
	ErrSerialUnsupported = errors.New("serial transport requires linux")
)
