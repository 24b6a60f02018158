package terminal

import (
	"bytes"

	"github.com/dshills/vtwire/internal/vt"
	"github.com/dshills/vtwire/internal/vt/glyph"
)

// SendText renders text at the cursor. Runes the hardware has no
// glyph for go through the glyph package: line-drawing bytes switch
// to the alternate charset slot, shades toggle bold around
// themselves, the solid block becomes a reverse-video space, accented
// letters and typographic punctuation transliterate, and the rest
// falls back to the diamond.
//
// Slot switches are elided across runs of same-slot output. The
// cursor cache is advanced through the text, so straight-line
// printing needs no cursor query afterward; control characters other
// than carriage return and newline move the cursor in ways the engine
// does not model and invalidate the cache instead.
func (t *Terminal) SendText(text string) error {
	var buf bytes.Buffer

	row, col, known := t.st.cursor()
	inAlt := t.st.boxMode
	prevCR := false

	alt := func() {
		if !inAlt {
			buf.WriteByte(vt.SO)
			inAlt = true
		}
	}
	norm := func() {
		if inAlt {
			buf.WriteByte(vt.SI)
			inAlt = false
		}
	}

	for _, r := range text {
		g := glyph.Lookup(r)
		if g.Kind == glyph.KindDrop {
			continue
		}

		// Track where the terminal will leave the cursor.
		if known {
			switch {
			case r == '\r':
				row++
				col = 1
			case r == '\n':
				if !prevCR {
					row++
					col = 1
				}
			case r < 0x20:
				known = false
			default:
				col++
				if col > t.st.columns {
					if t.st.autowrap {
						col = 1
						row++
					} else {
						col = t.st.columns
					}
				}
			}
			if known && row > t.st.rows {
				known = false
			}
		}
		prevCR = r == '\r'

		switch g.Kind {
		case glyph.KindASCII:
			norm()
			buf.WriteByte(g.Byte)
		case glyph.KindDrawing:
			alt()
			buf.WriteByte(g.Byte)
		case glyph.KindShade:
			alt()
			t.writeShade(&buf, g)
		case glyph.KindBlock:
			norm()
			t.writeBlock(&buf, g)
		}
	}

	if buf.Len() > 0 {
		if _, err := t.tr.Write(buf.Bytes()); err != nil {
			return err
		}
	}

	t.st.boxMode = inAlt
	if known {
		t.st.setCursor(row, col)
	} else {
		t.st.invalidateCursor()
	}
	return nil
}

// writeShade emits a shade glyph, toggling bold when the current
// rendition disagrees with the density the fill needs. The clearing
// sequence wipes every attribute, so whatever else is set is
// re-asserted in line. The rendition ends where it started and the
// mirrored state stays untouched.
func (t *Terminal) writeShade(buf *bytes.Buffer, g glyph.Glyph) {
	a := t.st.attrs
	if a.Bold == g.Bold {
		buf.WriteByte(g.Byte)
		return
	}
	if g.Bold {
		writeSeq(buf, vt.SetBold)
		buf.WriteByte(g.Byte)
		writeSeq(buf, vt.SetNormal)
		if a.Reverse {
			writeSeq(buf, vt.SetReverse)
		}
		if a.Underline {
			writeSeq(buf, vt.SetUnderline)
		}
		return
	}
	writeSeq(buf, vt.SetNormal)
	if a.Reverse {
		writeSeq(buf, vt.SetReverse)
	}
	if a.Underline {
		writeSeq(buf, vt.SetUnderline)
	}
	buf.WriteByte(g.Byte)
	writeSeq(buf, vt.SetBold)
}

// writeBlock emits the solid block as a space under flipped reverse
// video. One of the two toggles is the clearing sequence, so bold and
// underline are re-asserted afterward.
func (t *Terminal) writeBlock(buf *bytes.Buffer, g glyph.Glyph) {
	a := t.st.attrs
	if a.Reverse {
		writeSeq(buf, vt.SetNormal)
	} else {
		writeSeq(buf, vt.SetReverse)
	}
	buf.WriteByte(g.Byte)
	if a.Reverse {
		writeSeq(buf, vt.SetReverse)
	} else {
		writeSeq(buf, vt.SetNormal)
	}
	if a.Bold {
		writeSeq(buf, vt.SetBold)
	}
	if a.Underline {
		writeSeq(buf, vt.SetUnderline)
	}
}

func writeSeq(buf *bytes.Buffer, seq string) {
	buf.WriteByte(vt.ESC)
	buf.WriteString(seq)
}
