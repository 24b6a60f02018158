package config

import "errors"

// Validation errors returned by Config.Validate.
var (
	// ErrUnknownKind indicates a transport kind other than serial
	// or stdio.
	ErrUnknownKind = errors.New("unknown transport kind")

	// ErrMissingDevice indicates a serial transport with no device
	// path configured.
	ErrMissingDevice = errors.New("serial transport requires a device")
)
