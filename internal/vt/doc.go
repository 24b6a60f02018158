// Package vt defines the wire vocabulary of the VT100 protocol: the
// escape sequences the engine sends and recognizes, the continuation
// set that delimits frames, and the Key and Response token types the
// stream demultiplexer produces.
//
// Everything here is an immutable constant or a value type. Sequences
// are stored without their introducer byte; senders prepend ESC and
// receivers strip it before comparing.
package vt
