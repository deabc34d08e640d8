package hongdown

import (
	"strings"

	"hongdown.dev/hongdown/internal/hdast"
)

func (s *state) renderThematicBreak(_ *hdast.Node) {
	leading := strings.Repeat(" ", s.opts.ThematicBreak.LeadingSpaces)
	s.writeLine(leading + string(s.opts.ThematicBreak.Style))
}
