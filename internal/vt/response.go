package vt

import (
	"strconv"
	"strings"
)

// Response is one escape frame with the introducer stripped: the
// continuation bytes plus the terminating byte, e.g. "[0n" or
// "[12;40R". The empty Response means no frame arrived.
type Response string

// OK reports whether r is the ready status report.
func (r Response) OK() bool {
	return string(r) == StatusOkay
}

// CursorReport parses r as a cursor position report "[{row};{col}R"
// and returns the one-based coordinates. ok is false when r has any
// other shape, including unparsable or non-positive numbers.
func (r Response) CursorReport() (row, col int, ok bool) {
	s := string(r)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != 'R' {
		return 0, 0, false
	}
	rs, cs, found := strings.Cut(s[1:len(s)-1], ";")
	if !found {
		return 0, 0, false
	}
	row, err := strconv.Atoi(rs)
	if err != nil {
		return 0, 0, false
	}
	col, err = strconv.Atoi(cs)
	if err != nil {
		return 0, 0, false
	}
	if row < 1 || col < 1 {
		return 0, 0, false
	}
	return row, col, true
}

// Arrow classifies r as an arrow-key frame.
func (r Response) Arrow() (Key, bool) {
	switch string(r) {
	case ArrowUp:
		return KeyUp, true
	case ArrowDown:
		return KeyDown, true
	case ArrowRight:
		return KeyRight, true
	case ArrowLeft:
		return KeyLeft, true
	}
	return 0, false
}
