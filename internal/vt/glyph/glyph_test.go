package glyph

import "testing"

func TestLookupASCII(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', ' ', '~', '\r', '\n', '\t', 0x1B} {
		g := Lookup(r)
		if g.Kind != KindASCII || g.Byte != byte(r) {
			t.Errorf("Lookup(%q): expected ascii byte %#02x, got %v byte %#02x", r, byte(r), g.Kind, g.Byte)
		}
	}
}

func TestLookupDrawing(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'─', 0x71},
		{'│', 0x78},
		{'┌', 0x6C},
		{'┐', 0x6B},
		{'└', 0x6D},
		{'┘', 0x6A},
		{'├', 0x74},
		{'┤', 0x75},
		{'┬', 0x77},
		{'┴', 0x76},
		{'┼', 0x6E},
		{'°', 0x66},
		{'±', 0x67},
		{'≤', 0x79},
		{'≥', 0x7A},
		{'π', 0x7B},
		{'≠', 0x7C},
		{'£', 0x7D},
		{'·', 0x7E},
		{'•', 0x7E},
	}
	for _, tt := range tests {
		g := Lookup(tt.r)
		if g.Kind != KindDrawing || g.Byte != tt.want {
			t.Errorf("Lookup(%q): expected drawing byte %#02x, got %v byte %#02x", tt.r, tt.want, g.Kind, g.Byte)
		}
	}
}

func TestLookupShades(t *testing.T) {
	tests := []struct {
		r    rune
		b    byte
		bold bool
	}{
		{'░', 0x6E, false},
		{'▒', 0x61, false},
		{'▓', 0x61, true},
	}
	for _, tt := range tests {
		g := Lookup(tt.r)
		if g.Kind != KindShade || g.Byte != tt.b || g.Bold != tt.bold {
			t.Errorf("Lookup(%q): expected shade byte %#02x bold %v, got %v byte %#02x bold %v",
				tt.r, tt.b, tt.bold, g.Kind, g.Byte, g.Bold)
		}
	}
}

func TestLookupBlock(t *testing.T) {
	g := Lookup('█')
	if g.Kind != KindBlock || g.Byte != ' ' {
		t.Errorf("expected block rendered as space, got %v byte %#02x", g.Kind, g.Byte)
	}
}

func TestLookupDropsZeroWidth(t *testing.T) {
	for _, r := range []rune{'​', '́', '️'} {
		if g := Lookup(r); g.Kind != KindDrop {
			t.Errorf("Lookup(%U): expected drop, got %v", r, g.Kind)
		}
	}
}

func TestLookupFallback(t *testing.T) {
	for _, r := range []rune{'Æ', '♥', '☃'} {
		g := Lookup(r)
		if g.Kind != KindDrawing || g.Byte != Fallback {
			t.Errorf("Lookup(%q): expected fallback diamond, got %v byte %#02x", r, g.Kind, g.Byte)
		}
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindASCII, "ascii"},
		{KindDrawing, "drawing"},
		{KindShade, "shade"},
		{KindBlock, "block"},
		{KindDrop, "drop"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("expected %s, got %s", tt.want, got)
		}
	}
}
