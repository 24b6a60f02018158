package glyph

import (
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// variants folds typographic punctuation onto the plain ASCII forms
// the terminal can show.
var variants = map[rune]byte{
	'‘': '\'', // left single quotation
	'’': '\'', // right single quotation
	'‚': '\'', // low-9 single quotation
	'‛': '\'', // reversed-9 single quotation
	'′': '\'', // prime
	'‵': '\'', // reversed prime
	'“': '"',  // left double quotation
	'”': '"',  // right double quotation
	'„': '"',  // low-9 double quotation
	'‟': '"',  // reversed-9 double quotation
	'″': '"',  // double prime
	'‶': '"',  // reversed double prime
	'⁎': '*',  // low asterisk
	'⁕': '*',  // flower punctuation
	'⁏': ';',  // reversed semicolon
	'⁒': '%',  // commercial minus
	'⁓': '~',  // swung dash
}

// singletons covers letters decomposition cannot reach.
var singletons = map[rune]byte{
	'Ð': 'D', // capital eth
	'ð': 'o', // small eth
}

// fold transliterates r to a printable ASCII byte. Accented letters
// decompose and lose their combining marks, so the whole Latin-1
// accent range folds onto its base letters.
func fold(r rune) (byte, bool) {
	if b, ok := variants[r]; ok {
		return b, true
	}
	if b, ok := singletons[r]; ok {
		return b, true
	}
	strip := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	s, _, err := transform.String(strip, string(r))
	if err != nil || len(s) != 1 {
		return 0, false
	}
	b := s[0]
	if b < 0x20 || b > 0x7E {
		return 0, false
	}
	return b, true
}
