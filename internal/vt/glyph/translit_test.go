package glyph

import "testing"

func TestFoldAccents(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'À', 'A'},
		{'Å', 'A'},
		{'Ç', 'C'},
		{'É', 'E'},
		{'Î', 'I'},
		{'Ñ', 'N'},
		{'Ö', 'O'},
		{'Ù', 'U'},
		{'Ý', 'Y'},
		{'á', 'a'},
		{'ç', 'c'},
		{'è', 'e'},
		{'ï', 'i'},
		{'ñ', 'n'},
		{'õ', 'o'},
		{'ü', 'u'},
		{'ÿ', 'y'},
		{'Ð', 'D'},
		{'ð', 'o'},
	}
	for _, tt := range tests {
		b, ok := fold(tt.r)
		if !ok || b != tt.want {
			t.Errorf("fold(%q): expected %q, got %q ok=%v", tt.r, tt.want, b, ok)
		}
	}
}

func TestFoldPunctuation(t *testing.T) {
	tests := []struct {
		r    rune
		want byte
	}{
		{'‘', '\''},
		{'’', '\''},
		{'′', '\''},
		{'“', '"'},
		{'”', '"'},
		{'″', '"'},
		{'⁎', '*'},
		{'⁏', ';'},
		{'⁒', '%'},
		{'⁓', '~'},
	}
	for _, tt := range tests {
		b, ok := fold(tt.r)
		if !ok || b != tt.want {
			t.Errorf("fold(%U): expected %q, got %q ok=%v", tt.r, tt.want, b, ok)
		}
	}
}

func TestFoldRejectsUnmappable(t *testing.T) {
	for _, r := range []rune{'Æ', 'ß', '♥', '世'} {
		if b, ok := fold(r); ok {
			t.Errorf("fold(%q): expected no mapping, got %q", r, b)
		}
	}
}
