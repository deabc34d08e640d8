package wrapengine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(ws ...string) []Atom {
	var atoms []Atom
	for i, w := range ws {
		if i > 0 {
			atoms = append(atoms, Atom{Kind: Space})
		}
		atoms = append(atoms, NewWordAtom(w))
	}
	return atoms
}

func TestWrapFitsOneLine(t *testing.T) {
	lines := Wrap(words("one", "two", "three"), 0, 80)
	require.Len(t, lines, 1)
	assert.Equal(t, "one two three", lines[0].Text)
}

func TestWrapBreaksAtWordBoundary(t *testing.T) {
	lines := Wrap(words("aaaa", "bbbb", "cccc"), 0, 10)
	require.Len(t, lines, 2)
	assert.Equal(t, "aaaa bbbb", lines[0].Text)
	assert.Equal(t, "cccc", lines[1].Text)
}

func TestWrapNeverEmitsTrailingSpace(t *testing.T) {
	lines := Wrap(words("aaaa", "bbbb", "cccc"), 0, 10)
	for _, l := range lines {
		assert.False(t, strings.HasSuffix(l.Text, " "))
	}
}

func TestWrapPrefixWidthReducesBudget(t *testing.T) {
	// With no prefix, "aaaa bb" (7 columns) fits a 7-wide line whole.
	lines := Wrap(words("aaaa", "bb"), 0, 7)
	require.Len(t, lines, 1)
	assert.Equal(t, "aaaa bb", lines[0].Text)

	// The same atoms with a 3-column prefix leave only 4 columns of
	// budget per line, so "aaaa" alone fills the line and "bb" wraps.
	lines = Wrap(words("aaaa", "bb"), 3, 7)
	require.Len(t, lines, 2)
	assert.Equal(t, "aaaa", lines[0].Text)
	assert.Equal(t, "bb", lines[1].Text)
}

func TestWrapSingleWordLongerThanBudgetStaysOnItsOwnLine(t *testing.T) {
	lines := Wrap(words("supercalifragilisticexpialidocious", "x"), 0, 10)
	require.Len(t, lines, 2)
	assert.Equal(t, "supercalifragilisticexpialidocious", lines[0].Text)
	assert.Equal(t, "x", lines[1].Text)
}

func TestWrapHardBreakForcesNewLine(t *testing.T) {
	atoms := append(words("one", "two"), Atom{Kind: HardBreak})
	atoms = append(atoms, NewWordAtom("three"))
	lines := Wrap(atoms, 0, 80)
	require.Len(t, lines, 2)
	assert.Equal(t, "one two", lines[0].Text)
	assert.True(t, lines[0].HardBreak)
	assert.Equal(t, "three", lines[1].Text)
	assert.False(t, lines[1].HardBreak)
}

func TestWrapEmptyAtomsProducesOneEmptyLine(t *testing.T) {
	lines := Wrap(nil, 0, 80)
	require.Len(t, lines, 1)
	assert.Equal(t, "", lines[0].Text)
}

func TestWrapLeadingSpaceAtomIsIgnored(t *testing.T) {
	atoms := append([]Atom{{Kind: Space}}, words("one")...)
	lines := Wrap(atoms, 0, 80)
	require.Len(t, lines, 1)
	assert.Equal(t, "one", lines[0].Text)
}

func TestNewWordAtomComputesWidth(t *testing.T) {
	a := NewWordAtom("日本")
	assert.Equal(t, 4, a.Width)
	assert.Equal(t, "日本", a.Text)
}
