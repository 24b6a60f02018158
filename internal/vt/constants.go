package vt

import "fmt"

// Control bytes.
const (
	// ESC introduces every escape sequence, sent or received.
	ESC byte = 0x1B

	// SO (shift out) selects the G1 slot; SI (shift in) selects G0.
	// Slot selection is a single byte so runs of same-slot text carry
	// no per-character overhead.
	SO byte = 0x0E
	SI byte = 0x0F
)

// Escape sequences, written on the wire after the introducer byte.
const (
	RequestStatus = "[5n" // DSR - device status report
	StatusOkay    = "[0n" // DSR response: terminal ready
	RequestCursor = "[6n" // CPR request

	HomeCursor   = "[H"
	ReverseIndex = "M" // RI - cursor up one line, scrolls at region top
	Index        = "D" // IND - cursor down one line, scrolls at region bottom

	ClearToScreenStart = "[1J" // ED 1 - erase from origin through cursor
	ClearScreen        = "[2J" // ED 2 - erase whole screen
	ClearToLineEnd     = "[0K" // EL 0 - erase from cursor to end of line
	ClearLine          = "[2K" // EL 2 - erase whole line

	Set132Columns = "[?3h" // DECCOLM
	Set80Columns  = "[?3l"

	RegionOn  = "[?6h" // DECOM - origin mode, confines cursor to region
	RegionOff = "[?6l"

	AutoWrapOn  = "[?7h" // DECAWM
	AutoWrapOff = "[?7l"

	SetBold      = "[1m"
	SetNormal    = "[0m" // clears every graphic attribute
	SetUnderline = "[4m"
	SetReverse   = "[7m"

	SaveCursor    = "7" // DECSC
	RestoreCursor = "8" // DECRC

	// Slot designations. G0 carries US-ASCII, G1 the DEC line-drawing
	// set; SI/SO switch between them afterward.
	DesignateASCII       = "(B"
	DesignateLineDrawing = ")0"
)

// Arrow-key frames as they arrive from the terminal. Syntactically
// indistinguishable from command responses; classified by membership
// in this fixed set.
const (
	ArrowUp    = "[A"
	ArrowDown  = "[B"
	ArrowRight = "[C"
	ArrowLeft  = "[D"
)

// MoveCursorSeq returns the CUP sequence addressing a one-based
// row and column.
func MoveCursorSeq(row, col int) string {
	return fmt.Sprintf("[%d;%dH", row, col)
}

// ScrollRegionSeq returns the DECSTBM sequence for a one-based,
// inclusive scroll region.
func ScrollRegionSeq(top, bottom int) string {
	return fmt.Sprintf("[%d;%dr", top, bottom)
}

// IsContinuation reports whether b may appear between an escape
// introducer and its terminator. The first byte outside this set
// terminates the frame and is part of it.
func IsContinuation(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b == ';' || b == '?' || b == '[':
		return true
	}
	return false
}
