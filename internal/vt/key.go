package vt

import (
	"fmt"
	"strconv"
)

// Key is one keystroke token pulled from the input stream: either a
// single plain byte, carried as Key(b), or one of the arrow keys,
// which arrive on the wire as complete escape frames.
type Key int

// Arrow keys sit above the byte range so any plain input byte maps to
// a distinct Key unchanged.
const (
	KeyUp Key = 0x100 + iota
	KeyDown
	KeyRight
	KeyLeft
)

// Named plain-byte keys callers commonly match against.
const (
	KeyBackspace Key = 0x08
	KeyDelete    Key = 0x7F
)

// IsArrow reports whether k is one of the arrow keys.
func (k Key) IsArrow() bool {
	return k >= KeyUp && k <= KeyLeft
}

// IsByte reports whether k is a plain input byte.
func (k Key) IsByte() bool {
	return k >= 0 && k < 0x100
}

// Byte returns the plain input byte for k. Valid only when IsByte
// reports true.
func (k Key) Byte() byte {
	return byte(k)
}

func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyRight:
		return "Right"
	case KeyLeft:
		return "Left"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	}
	if k.IsByte() {
		b := k.Byte()
		if b >= 0x20 && b < 0x7F {
			return strconv.Quote(string(rune(b)))
		}
		return fmt.Sprintf("0x%02X", b)
	}
	return fmt.Sprintf("Key(%d)", int(k))
}
