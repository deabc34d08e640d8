package hongdown

import (
	"strconv"
	"strings"

	"hongdown.dev/hongdown/internal/hdast"
)

func (s *state) renderList(n *hdast.Node) {
	s.renderListAtDepth(n, 1)
}

// renderListAtDepth renders a list, tracking nesting depth so ordered
// markers alternate `.`/`)` per level.
func (s *state) renderListAtDepth(n *hdast.Node, depth int) {
	if n.Ordered {
		s.renderOrderedList(n, depth)
		return
	}
	s.renderUnorderedList(n, depth)
}

func (s *state) renderUnorderedList(n *hdast.Node, depth int) {
	lo := s.opts.List
	marker := strings.Repeat(" ", lo.LeadingSpaces) + string(lo.UnorderedMarker) + strings.Repeat(" ", lo.TrailingSpaces)

	for i, item := range n.Children {
		if i > 0 && !n.Tight {
			s.blankLine()
		}
		itemMarker := marker
		if item.Task {
			itemMarker += taskBox(item.TaskDone)
		}
		s.renderListItemBody(item, itemMarker, len(itemMarker), n.Tight, depth)
	}
}

func (s *state) renderOrderedList(n *hdast.Node, depth int) {
	lo := s.opts.OrderedList
	sep := lo.OddLevelMarker
	if depth%2 == 0 {
		sep = lo.EvenLevelMarker
	}

	bases := make([]string, len(n.Children))
	markerWidth := 0
	for i := range n.Children {
		base := strconv.Itoa(n.OrderedStart+i) + string(sep)
		bases[i] = base
		if len(base) > markerWidth {
			markerWidth = len(base)
		}
	}

	for i, item := range n.Children {
		if i > 0 && !n.Tight {
			s.blankLine()
		}
		base := bases[i]
		pad := markerWidth - len(base)
		if pad < 0 {
			pad = 0
		}
		var core string
		if lo.Pad == PadEnd {
			core = base + strings.Repeat(" ", pad)
		} else {
			core = strings.Repeat(" ", pad) + base
		}
		itemMarker := core + " "
		if item.Task {
			itemMarker += taskBox(item.TaskDone)
		}
		s.renderListItemBody(item, itemMarker, len(itemMarker), n.Tight, depth)
	}
}

func taskBox(done bool) string {
	if done {
		return "[x] "
	}
	return "[ ] "
}

// renderListItemBody renders one item's children indented to contIndent
// columns (a run of spaces equal to the marker's width), then splices the
// real marker over the leading spaces of the first emitted line. This
// keeps continuation lines and nested-block rendering identical to any
// other indented container while letting the marker appear only once.
func (s *state) renderListItemBody(item *hdast.Node, marker string, contIndent int, tight bool, depth int) {
	contPrefix := strings.Repeat(" ", contIndent)
	startLen := s.out.Len()

	s.pushPrefix(contPrefix)
	fullContPrefix := s.prefix()
	s.renderItemChildren(item, tight, depth)
	s.popPrefix()

	fullMarkerPrefix := s.prefix() + marker

	body := s.out.String()[startLen:]
	s.out.Truncate(startLen)
	if strings.HasPrefix(body, fullContPrefix) {
		body = fullMarkerPrefix + body[len(fullContPrefix):]
	}
	s.out.WriteString(body)
}

func (s *state) renderItemChildren(item *hdast.Node, tight bool, depth int) {
	for i, c := range item.Children {
		if i > 0 && !tight {
			s.blankLinesBefore(c)
		}
		if c.Kind == hdast.KindList {
			s.renderListAtDepth(c, depth+1)
			continue
		}
		s.renderBlock(c)
	}
}
