package hongdown

import (
	"hongdown.dev/hongdown/internal/hdast"
)

func (s *state) renderBlockQuote(n *hdast.Node) {
	s.pushPrefix("> ")
	s.renderBlocks(n.Children)
	s.popPrefix()
}

func (s *state) renderAlert(n *hdast.Node) {
	s.writeLine("> [!" + n.Alert.String() + "]")
	s.pushPrefix("> ")
	if len(n.Children) > 0 {
		s.blankLine()
		s.renderBlocks(n.Children)
	}
	s.popPrefix()
}

// renderBlocks renders a sequence of sibling blocks with the standard
// blank-line policy: two blank lines before a non-first level-2
// Setext heading, one blank line between any other two siblings. It is
// used inside every container (block quotes, alerts, list items,
// description-item definitions); only the document root additionally
// tracks sections, references, and directives (see document.go).
func (s *state) renderBlocks(children []*hdast.Node) {
	for i, c := range children {
		if i > 0 {
			s.blankLinesBefore(c)
		}
		s.renderBlock(c)
	}
}

func (s *state) blankLinesBefore(n *hdast.Node) {
	count := 1
	if n.Kind == hdast.KindHeading && n.Level == 2 && s.setextForLevel(2) {
		count = 2
	}
	for i := 0; i < count; i++ {
		s.blankLine()
	}
}

func (s *state) renderBlock(n *hdast.Node) {
	switch n.Kind {
	case hdast.KindHeading:
		s.renderHeading(n)
	case hdast.KindParagraph:
		s.renderParagraph(n)
	case hdast.KindList:
		s.renderList(n)
	case hdast.KindCodeBlock:
		s.renderCodeBlock(n)
	case hdast.KindBlockQuote:
		s.renderBlockQuote(n)
	case hdast.KindAlert:
		s.renderAlert(n)
	case hdast.KindThematicBreak:
		s.renderThematicBreak(n)
	case hdast.KindTable:
		s.renderTable(n)
	case hdast.KindDescriptionList:
		s.renderDescriptionList(n)
	case hdast.KindFootnote:
		s.renderFootnoteDef(n)
	case hdast.KindHTMLBlock:
		s.writeRaw([]byte(n.Text()))
		if len(n.Text()) == 0 || n.Text()[len(n.Text())-1] != '\n' {
			s.out.WriteByte('\n')
		}
	case hdast.KindFrontMatter:
		s.writeRaw([]byte(n.Text()))
	}
}
