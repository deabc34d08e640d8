package hongdown

import (
	"strings"

	"hongdown.dev/hongdown/internal/hdast"
)

func (s *state) renderDescriptionList(n *hdast.Node) {
	for i, item := range n.Children {
		if i > 0 {
			s.blankLine()
		}
		s.renderDescriptionItem(item)
	}
}

func (s *state) renderDescriptionItem(item *hdast.Node) {
	term := s.renderInlineFlat(item.Term.Children)
	s.writeLine(term)

	for i, def := range item.Definitions {
		if i > 0 {
			s.blankLine()
		}
		s.renderDefinition(def)
	}
}

// renderDefinition emits ":   " (colon, three spaces) followed by the
// definition's blocks, with the same marker-splice trick the list emitter
// uses so a multi-block definition (a second paragraph, a code block, a
// nested list) continues at a 4-space indent instead of losing everything
// past the first paragraph.
func (s *state) renderDefinition(def *hdast.Node) {
	const marker = ":   "
	contPrefix := strings.Repeat(" ", len(marker))
	startLen := s.out.Len()

	s.pushPrefix(contPrefix)
	fullContPrefix := s.prefix()
	s.renderBlocks(def.Children)
	s.popPrefix()

	fullMarkerPrefix := s.prefix() + marker

	body := s.out.String()[startLen:]
	s.out.Truncate(startLen)
	if strings.HasPrefix(body, fullContPrefix) {
		body = fullMarkerPrefix + body[len(fullContPrefix):]
	}
	s.out.WriteString(body)
}
