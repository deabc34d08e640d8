package hongdown

import (
	"strings"

	"hongdown.dev/hongdown/internal/hdast"
)

// renderFootnoteDef emits "[^label]: " followed by the footnote body, with
// continuation lines indented four spaces, using the same marker-splice
// trick as list items and description definitions.
func (s *state) renderFootnoteDef(n *hdast.Node) {
	marker := "[^" + n.Label + "]: "
	contPrefix := strings.Repeat(" ", 4)
	startLen := s.out.Len()

	s.pushPrefix(contPrefix)
	fullContPrefix := s.prefix()
	s.renderBlocks(n.Children)
	s.popPrefix()

	fullMarkerPrefix := s.prefix() + marker

	body := s.out.String()[startLen:]
	s.out.Truncate(startLen)
	if strings.HasPrefix(body, fullContPrefix) {
		body = fullMarkerPrefix + body[len(fullContPrefix):]
	}
	s.out.WriteString(body)
}

// collectFootnoteDefs pulls every KindFootnote node out of a flat sequence
// of top-level document children, returning the survivors (with footnote
// definitions removed, since they render at section-flush time instead of
// in reading-order position), a label -> node map, and the labels in
// source order so flushing stays deterministic.
func collectFootnoteDefs(children []*hdast.Node) ([]*hdast.Node, map[string]*hdast.Node, []string) {
	defs := map[string]*hdast.Node{}
	var order []string
	kept := make([]*hdast.Node, 0, len(children))
	for _, c := range children {
		if c.Kind == hdast.KindFootnote {
			label := strings.ToLower(c.Label)
			defs[label] = c
			order = append(order, label)
			continue
		}
		kept = append(kept, c)
	}
	return kept, defs, order
}

// footnoteLastSections walks the document computing, for every footnote
// label, the index of the section (0-based, incremented at each level<=2
// heading) containing its last reference. Section flush uses this to
// decide when a definition is due.
func footnoteLastSections(children []*hdast.Node) map[string]int {
	last := map[string]int{}
	section := 0
	var walk func(nodes []*hdast.Node)
	walk = func(nodes []*hdast.Node) {
		for _, n := range nodes {
			if n.Kind == hdast.KindHeading && n.Level <= 2 {
				section++
			}
			if n.Kind == hdast.KindFootnoteReference {
				last[strings.ToLower(n.Label)] = section
			}
			walk(n.Children)
		}
	}
	walk(children)
	return last
}
