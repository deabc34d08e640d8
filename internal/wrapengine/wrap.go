// Package wrapengine implements a greedy word-wrap algorithm: accumulate
// an unbreakable run, flush it against a column budget once the next atom
// would overflow the line. It works from a fully-tokenized atom slice
// rather than incremental input, since the serializer already holds the
// whole document.
package wrapengine

import "hongdown.dev/hongdown/internal/width"

// AtomKind classifies a wrap atom.
type AtomKind uint8

const (
	// Space is a breakable atom: a soft-break/space boundary between two
	// unbreakable runs.
	Space AtomKind = iota
	// Word is an unbreakable run: a word, a code span with its
	// delimiters, a link with its brackets, an image, or an autolink.
	Word
	// HardBreak forces a line terminator (backslash-newline).
	HardBreak
)

// Atom is one unit of wrap input. Text is the literal bytes to emit; Width
// is its precomputed display-column width (0 for Space/HardBreak, whose
// width is implicit).
type Atom struct {
	Kind  AtomKind
	Text  string
	Width int
}

// NewWordAtom builds a Word atom, computing its display width.
func NewWordAtom(text string) Atom {
	return Atom{Kind: Word, Text: text, Width: width.String(text)}
}

// Line is one physical output line produced by Wrap, without the line
// prefix (block-quote/list continuation), which the caller writes: Text is
// the wrapped content with no trailing spaces, and
// HardBreak indicates the line ends with a hard line break (backslash)
// rather than a natural wrap point or end of paragraph.
type Line struct {
	Text      string
	HardBreak bool
}

// Wrap runs the greedy word-wrap algorithm over atoms and returns the
// wrapped lines. prefixWidth is the display width consumed by the line
// prefix on every line (so line n has lineWidth-prefixWidth columns of
// budget); lineWidth is the total column budget.
func Wrap(atoms []Atom, prefixWidth, lineWidth int) []Line {
	var lines []Line
	var cur []byte
	col := prefixWidth
	haveContent := false

	flush := func(hardBreak bool) {
		lines = append(lines, Line{Text: string(cur), HardBreak: hardBreak})
		cur = cur[:0]
		col = prefixWidth
		haveContent = false
	}

	pendingSpace := false
	for _, a := range atoms {
		switch a.Kind {
		case Space:
			if haveContent {
				pendingSpace = true
			}
			continue
		case HardBreak:
			flush(true)
			pendingSpace = false
			continue
		}

		w := a.Width
		sep := 0
		if pendingSpace {
			sep = 1
		}
		if haveContent && col+sep+w > lineWidth && col > prefixWidth {
			flush(false)
			pendingSpace = false
			sep = 0
		}
		if pendingSpace {
			cur = append(cur, ' ')
			col++
			pendingSpace = false
		}
		cur = append(cur, a.Text...)
		col += w
		haveContent = true
	}
	if haveContent || len(lines) == 0 {
		lines = append(lines, Line{Text: string(cur)})
	}
	return lines
}
