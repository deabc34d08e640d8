package hongdown

import (
	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/wrapengine"
)

func (s *state) renderParagraph(n *hdast.Node) {
	s.renderInlineWrapped(n.Children)
}

// renderInlineWrapped runs the wrap engine over an inline sequence and
// writes the resulting lines with the current prefix, respecting hard
// breaks (backslash before the newline).
func (s *state) renderInlineWrapped(children []*hdast.Node) {
	atoms := s.inlineAtoms(children)
	lines := wrapengine.Wrap(atoms, s.prefixWidth(), s.opts.LineWidth)
	for _, line := range lines {
		text := line.Text
		if line.HardBreak {
			text += "\\"
		}
		s.writeLine(text)
	}
	if len(lines) == 0 {
		s.blankLine()
	}
}
