package glyph

import "github.com/mattn/go-runewidth"

// Kind classifies how a rune is rendered on the wire.
type Kind int

const (
	// KindASCII is a single byte written in the US-ASCII slot.
	KindASCII Kind = iota

	// KindDrawing is a single byte written in the line-drawing slot.
	KindDrawing

	// KindShade is a line-drawing byte that only renders as the
	// intended fill density at a specific bold setting. The encoder
	// toggles bold around the byte when the current state disagrees.
	KindShade

	// KindBlock is the solid block, emulated as a reverse-video
	// space in the US-ASCII slot.
	KindBlock

	// KindDrop is a rune with no wire representation, skipped without
	// moving the cursor.
	KindDrop
)

func (k Kind) String() string {
	switch k {
	case KindASCII:
		return "ascii"
	case KindDrawing:
		return "drawing"
	case KindShade:
		return "shade"
	case KindBlock:
		return "block"
	case KindDrop:
		return "drop"
	}
	return "unknown"
}

// Glyph is the wire rendering of one rune.
type Glyph struct {
	Kind Kind
	Byte byte // payload for KindASCII, KindDrawing and KindShade
	Bold bool // for KindShade: the bold setting the fill requires
}

// Fallback renders runes with no better mapping.
const Fallback byte = 0x60 // diamond

// drawing maps box- and symbol-drawing runes to the DEC special
// graphics set.
var drawing = map[rune]byte{
	'─': 0x71, // horizontal line
	'│': 0x78, // vertical line
	'┌': 0x6C, // upper-left corner
	'┐': 0x6B, // upper-right corner
	'└': 0x6D, // lower-left corner
	'┘': 0x6A, // lower-right corner
	'├': 0x74, // left tee
	'┤': 0x75, // right tee
	'┬': 0x77, // top tee
	'┴': 0x76, // bottom tee
	'┼': 0x6E, // crossing lines
	'°': 0x66, // degree
	'±': 0x67, // plus/minus
	'≤': 0x79, // less than or equal
	'≥': 0x7A, // greater than or equal
	'π': 0x7B, // pi
	'≠': 0x7C, // not equal
	'£': 0x7D, // pound sterling
	'·': 0x7E, // centered dot
	'•': 0x7E, // bullet
}

// Lookup resolves a rune to its wire rendering. Every rune resolves;
// unmappable ones come back as the fallback drawing byte.
func Lookup(r rune) Glyph {
	if r < 0x80 {
		return Glyph{Kind: KindASCII, Byte: byte(r)}
	}
	if b, ok := drawing[r]; ok {
		return Glyph{Kind: KindDrawing, Byte: b}
	}
	switch r {
	case '░': // light shade: stipple only when unbolded
		return Glyph{Kind: KindShade, Byte: 0x6E, Bold: false}
	case '▒': // medium shade: checkerboard only when unbolded
		return Glyph{Kind: KindShade, Byte: 0x61, Bold: false}
	case '▓': // dark shade: checkerboard only when bolded
		return Glyph{Kind: KindShade, Byte: 0x61, Bold: true}
	case '█': // full block
		return Glyph{Kind: KindBlock, Byte: ' '}
	}
	if runewidth.RuneWidth(r) == 0 {
		return Glyph{Kind: KindDrop}
	}
	if b, ok := fold(r); ok {
		return Glyph{Kind: KindASCII, Byte: b}
	}
	return Glyph{Kind: KindDrawing, Byte: Fallback}
}
