// Package transport provides the byte pipes a terminal sits behind:
// a raw serial line for real hardware and the calling terminal's
// stdio for development against an emulator.
//
// Both satisfy the engine's Transport contract: whole-buffer writes
// and single-byte reads with an explicit wait, so the engine can stop
// reading exactly at a frame boundary. Waits are implemented with
// select on the underlying descriptor; a negative wait blocks until a
// byte arrives.
package transport
