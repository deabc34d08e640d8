package hongdown

import (
	"strings"

	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/width"
)

func (s *state) setextForLevel(level int) bool {
	switch level {
	case 1:
		return s.opts.Heading.SetextH1
	case 2:
		return s.opts.Heading.SetextH2
	default:
		return false
	}
}

func (s *state) renderHeading(n *hdast.Node) {
	if s.opts.Heading.SentenceCase {
		s.applySentenceCase(n.Children, &caseState{}, s.nouns)
	}
	text := s.renderInlineFlat(n.Children)

	if s.setextForLevel(n.Level) {
		s.writeLine(text)
		w := width.String(text)
		if w == 0 {
			w = 1
		}
		s.writeLine(strings.Repeat(string(setextChar(n.Level)), w))
		return
	}

	hashes := strings.Repeat("#", n.Level)
	s.writeLine(hashes + " " + text)
}

func setextChar(level int) rune {
	if level == 1 {
		return '='
	}
	return '-'
}
