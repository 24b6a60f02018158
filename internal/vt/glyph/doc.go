// Package glyph maps Unicode runes onto what a VT100 can actually
// draw: US-ASCII bytes in the G0 slot, DEC special graphics bytes in
// the G1 slot, and a handful of emulations for runes the hardware has
// no glyph for.
//
// Shade characters are approximated with the stipple and checkerboard
// glyphs, whose apparent density depends on the bold attribute, and
// the solid block is drawn as a reverse-video space. Accented letters
// and typographic punctuation transliterate to their closest ASCII
// forms; zero-width runes are dropped; anything else falls back to
// the diamond glyph.
package glyph
