package hongdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnorderedListDefaultMarkerAndSpacing(t *testing.T) {
	opts := DefaultOptions()
	out, err := Format([]byte("- one\n- two\n"), opts)
	require.NoError(t, err)
	marker := strings.Repeat(" ", opts.List.LeadingSpaces) + "-" + strings.Repeat(" ", opts.List.TrailingSpaces)
	assert.Equal(t, marker+"one\n"+marker+"two\n", out)
}

func TestUnorderedListCustomMarker(t *testing.T) {
	opts := DefaultOptions()
	opts.List.UnorderedMarker = MarkerAsterisk
	opts.List.LeadingSpaces = 0
	opts.List.TrailingSpaces = 1
	out, err := Format([]byte("- one\n- two\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, "* one\n* two\n", out)
}

func TestOrderedListSeparatorAlternatesByDepth(t *testing.T) {
	out, err := Format([]byte("1. top\n   1. nested\n   2. nested two\n2. top two\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "1. top")
	assert.Contains(t, out, "1) nested")
	assert.Contains(t, out, "2) nested two")
	assert.Contains(t, out, "2. top two")
}

func TestOrderedListPadStartWidensNarrowerNumbers(t *testing.T) {
	out, err := Format([]byte("9. nine\n10. ten\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, " 9. nine")
	assert.Contains(t, out, "10. ten")
}

func TestOrderedListPadEnd(t *testing.T) {
	opts := DefaultOptions()
	opts.OrderedList.Pad = PadEnd
	out, err := Format([]byte("9. nine\n10. ten\n"), opts)
	require.NoError(t, err)
	assert.Contains(t, out, "9.  nine")
	assert.Contains(t, out, "10. ten")
}

func TestTaskListMarker(t *testing.T) {
	out, err := Format([]byte("- [ ] todo\n- [x] done\n"), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "[ ] todo")
	assert.Contains(t, out, "[x] done")
}

func TestListContinuationIndentMatchesMarkerWidth(t *testing.T) {
	opts := DefaultOptions()
	opts.List.LeadingSpaces = 0
	opts.LineWidth = 30
	out, err := Format([]byte("- item continues with enough words that this paragraph wraps onto a second physical line here\n"), opts)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.True(t, len(lines) >= 2)
	marker := "-" + strings.Repeat(" ", opts.List.TrailingSpaces)
	assert.True(t, strings.HasPrefix(lines[1], strings.Repeat(" ", len(marker))))
}
