package terminal

import "errors"

// Sentinel errors for the terminal package.
var (
	// ErrUnresponsive is returned when the terminal fails to answer a
	// status or cursor query within its deadline. Every protocol
	// failure surfaces as this one error; I/O failures from the
	// transport pass through unchanged.
	ErrUnresponsive = errors.New("terminal did not respond")
)
