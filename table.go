package hongdown

import (
	"strings"

	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/width"
)

func (s *state) renderTable(n *hdast.Node) {
	var rows [][]string
	for _, row := range n.Children {
		var cells []string
		for _, cell := range row.Children {
			text := s.renderInlineFlat(cell.Children)
			text = strings.ReplaceAll(text, "|", `\|`)
			cells = append(cells, text)
		}
		rows = append(rows, cells)
	}
	if len(rows) == 0 {
		return
	}

	colCount := len(rows[0])
	for i, row := range rows {
		if len(row) != colCount {
			line := n.Line + i
			if i > 0 {
				line++ // the delimiter row sits between the header and the body
			}
			s.addWarning(line, WarnInconsistentTableColumns, "row has %d column(s), expected %d", len(row), colCount)
		}
	}

	widths := make([]int, colCount)
	for c := 0; c < colCount; c++ {
		widths[c] = 3
		for _, row := range rows {
			if c < len(row) {
				if w := width.String(row[c]); w > widths[c] {
					widths[c] = w
				}
			}
		}
	}

	align := n.Alignments

	s.writeLine(renderTableRow(rows[0], widths, align))
	s.writeLine(renderAlignmentRow(widths, align))
	for _, row := range rows[1:] {
		s.writeLine(renderTableRow(row, widths, align))
	}
}

func alignOf(align []hdast.Alignment, c int) hdast.Alignment {
	if c < len(align) {
		return align[c]
	}
	return hdast.AlignNone
}

func renderTableRow(cells []string, widths []int, align []hdast.Alignment) string {
	var b strings.Builder
	b.WriteByte('|')
	for c, w := range widths {
		cell := ""
		if c < len(cells) {
			cell = cells[c]
		}
		b.WriteByte(' ')
		b.WriteString(padCell(cell, w, alignOf(align, c)))
		b.WriteByte(' ')
		b.WriteByte('|')
	}
	return b.String()
}

func padCell(cell string, w int, a hdast.Alignment) string {
	pad := w - width.String(cell)
	if pad < 0 {
		pad = 0
	}
	switch a {
	case hdast.AlignRight:
		return strings.Repeat(" ", pad) + cell
	case hdast.AlignCenter:
		left := pad / 2
		right := pad - left
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", right)
	default:
		return cell + strings.Repeat(" ", pad)
	}
}

func renderAlignmentRow(widths []int, align []hdast.Alignment) string {
	var b strings.Builder
	b.WriteByte('|')
	for c, w := range widths {
		b.WriteByte(' ')
		switch alignOf(align, c) {
		case hdast.AlignLeft:
			b.WriteByte(':')
			b.WriteString(strings.Repeat("-", w-1))
		case hdast.AlignRight:
			b.WriteString(strings.Repeat("-", w-1))
			b.WriteByte(':')
		case hdast.AlignCenter:
			b.WriteByte(':')
			b.WriteString(strings.Repeat("-", w-2))
			b.WriteByte(':')
		default:
			b.WriteString(strings.Repeat("-", w))
		}
		b.WriteByte(' ')
		b.WriteByte('|')
	}
	return b.String()
}
