package hongdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/propernouns"
)

func TestTableColumnWidthAndAlignment(t *testing.T) {
	src := "" +
		"| Name | Age |\n" +
		"|:-----|----:|\n" +
		"| Ann  | 5   |\n" +
		"| Bartholomew | 42 |\n"
	out, err := Format([]byte(src), DefaultOptions())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "|"))
		assert.True(t, strings.HasSuffix(line, "|"))
	}

	// The Name column widens to fit "Bartholomew" (11 columns).
	wantHeader := "| Name" + strings.Repeat(" ", 11-len("Name")) + " | Age |"
	assert.Equal(t, wantHeader, lines[0])

	// Left-aligned first column, right-aligned second column.
	wantAlign := "| :" + strings.Repeat("-", 11-1) + " | " + strings.Repeat("-", 3-1) + ": |"
	assert.Equal(t, wantAlign, lines[1])
}

func TestTableEscapesPipeInCellText(t *testing.T) {
	s := newState(DefaultOptions(), nil, nil, propernouns.Builtin())

	cellText := func(text string) *hdast.Node {
		leaf := hdast.NewNode(hdast.KindText, 1)
		leaf.SetText(text)
		cell := hdast.NewNode(hdast.KindTableCell, 1)
		cell.Children = []*hdast.Node{leaf}
		return cell
	}
	row := func(cells ...*hdast.Node) *hdast.Node {
		r := hdast.NewNode(hdast.KindTableRow, 1)
		r.Children = cells
		return r
	}

	table := hdast.NewNode(hdast.KindTable, 1)
	table.Alignments = []hdast.Alignment{hdast.AlignNone, hdast.AlignNone}
	table.Children = []*hdast.Node{
		row(cellText("A"), cellText("B")),
		row(cellText("a|b"), cellText("c")),
	}

	s.renderTable(table)
	assert.Contains(t, s.out.String(), `a\|b`)
}

func TestTableInconsistentColumnsWarns(t *testing.T) {
	src := "| A | B |\n|---|---|\n| one |\n"
	_, warnings, err := FormatWithWarnings([]byte(src), DefaultOptions())
	require.NoError(t, err)
	require.NotEmpty(t, warnings)
	assert.Equal(t, WarnInconsistentTableColumns, warnings[0].Kind)
}

func TestPadCellAlignment(t *testing.T) {
	assert.Equal(t, "ab  ", padCell("ab", 4, hdast.AlignNone))
	assert.Equal(t, "  ab", padCell("ab", 4, hdast.AlignRight))
	assert.Equal(t, " ab ", padCell("ab", 4, hdast.AlignCenter))
}
