// Package width computes Unicode display-column width, the leaf utility
// backing every wrap and alignment decision in the serializer (heading
// underline length, table column width, paragraph wrapping).
//
// Width is measured in "display columns": 0 for combining marks,
// zero-width joiners and variation selectors; 2 for East-Asian Wide and
// Fullwidth characters; 1 otherwise. Grapheme clusters (an emoji ZWJ
// sequence, a base character plus combining marks) are measured as a
// cluster: the cluster's width is the sum of its member runes' individual
// widths.
package width

import (
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/graphemes"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
)

// RuneWidth returns the display width of a single rune.
func RuneWidth(r rune) int {
	if isZeroWidth(r) {
		return 0
	}
	return runewidth.RuneWidth(r)
}

// String returns the display width of s, honoring grapheme clustering so
// that combining marks and ZWJ emoji sequences are counted as the sum of
// their base runes rather than once per code point (which would already be
// correct here, since RuneWidth already assigns 0 to combining marks; the
// grapheme walk exists so future width refinements only need to change one
// function).
//
// Source text pasted from a terminal (a code span or fenced block copied
// from a tool that emits OSC8 hyperlinks or SGR color codes) can carry
// escape sequences that count as zero columns rather than as literal
// characters. ansi.Strip removes them before the grapheme walk runs.
func String(s string) int {
	if hasEscape(s) {
		s = ansi.Strip(s)
	}
	total := 0
	seg := graphemes.FromString(s)
	for seg.Next() {
		total += clusterWidth(seg.Value())
	}
	return total
}

// StripANSI removes SGR/OSC escape sequences from s, for callers that need
// to measure or print text after a color-aware step (diff rendering) has
// already run and the destination turns out not to be a terminal.
func StripANSI(s string) string {
	return ansi.Strip(s)
}

// hasEscape reports whether s contains an ESC byte, the cheap pre-check
// that lets the common escape-free case skip ansi.Strip entirely.
func hasEscape(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			return true
		}
	}
	return false
}

// isASCII reports whether every byte of s is a 7-bit ASCII byte.
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// clusterWidth sums the display width of every rune in a single grapheme
// cluster. A cluster with a Wide/Fullwidth base and trailing combining
// marks or variation selectors correctly reports the base's width only,
// since combining marks and variation selectors are zero-width.
func clusterWidth(cluster string) int {
	w := 0
	for _, r := range cluster {
		w += RuneWidth(r)
	}
	return w
}

// isZeroWidth reports whether r is a combining mark, zero-width joiner, or
// variation selector that go-runewidth may not already classify as zero.
func isZeroWidth(r rune) bool {
	switch {
	case r == 0x200D: // ZERO WIDTH JOINER
		return true
	case r >= 0xFE00 && r <= 0xFE0F: // variation selectors
		return true
	case r >= 0x0300 && r <= 0x036F: // combining diacritical marks
		return true
	case r == 0x200B, r == 0x200C: // ZWSP, ZWNJ
		return true
	default:
		return false
	}
}

// Truncate returns a prefix of s whose display width does not exceed limit,
// breaking only at rune boundaries.
func Truncate(s string, limit int) string {
	if isASCII(s) {
		// PrintableRuneWidth and String agree exactly on plain ASCII, so
		// this skips the grapheme-cluster walk for the common line.
		if ansi.PrintableRuneWidth(s) <= limit {
			return s
		}
	} else if String(s) <= limit {
		return s
	}
	w := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if w+rw > limit {
			return s[:i]
		}
		w += rw
	}
	return s
}

// LeadingRuneWidth is a small helper for callers that need the width of the
// first rune of a possibly-empty string without decoding twice.
func LeadingRuneWidth(s string) int {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return RuneWidth(r)
}
