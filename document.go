package hongdown

import "hongdown.dev/hongdown/internal/hdast"

// renderDocument walks the document's top-level children, applying the
// directive scanner, section/reference/footnote flushing, and the
// disabled-region byte-fidelity rule. Directives and section-scoped
// flushing are handled only at this top level; nested containers use the
// plain sibling policy in renderBlocks.
func (s *state) renderDocument(doc *hdast.Node) {
	children, footnoteDefs, order := collectFootnoteDefs(doc.Children)
	s.footnoteDefs = footnoteDefs
	s.footnoteOrder = order
	s.footnoteLastSection = footnoteLastSections(doc.Children)

	var (
		disabled            bool
		disableNextLine     bool
		disableNextSection  bool
		fileDisabledAt      = -1
		prevRendered        bool
		prevDisabled        bool
	)

	for i, c := range children {
		if c.Kind == hdast.KindHTMLBlock {
			if d := parseDirective(c.Text()); d.ok {
				s.applyDirective(d, &disabled, &disableNextLine, &disableNextSection, &fileDisabledAt, c.Line)
				if fileDisabledAt < 0 {
					// Keep the directive comment itself so the output
					// formats the same way when formatted again.
					if prevRendered && !prevDisabled {
						s.blankLinesBefore(c)
					}
					s.renderBlock(c)
					prevRendered = true
					prevDisabled = false
				}
				continue
			}
		}

		if fileDisabledAt >= 0 {
			break
		}

		if c.Kind == hdast.KindHeading && c.Level <= 2 {
			s.flushSection()
			disableNextSection = false
		}

		isDisabledNow := disabled || disableNextLine || disableNextSection

		if prevRendered && !prevDisabled {
			s.blankLinesBefore(c)
		}

		if isDisabledNow {
			s.emitRawBlock(children, i)
		} else {
			s.renderBlock(c)
		}

		prevRendered = true
		prevDisabled = isDisabledNow
		disableNextLine = false
	}

	if fileDisabledAt >= 0 {
		s.writeRaw(s.source[s.byteOffsetOfLine(fileDisabledAt):])
		return
	}
	s.flushSection()
}

// applyDirective interprets one hongdown-* directive, mutating the
// document-level disable state and the per-call proper/common noun set.
// Directives are idempotent: repeated disable/enable calls collapse to
// the same state rather than stacking.
func (s *state) applyDirective(d directive, disabled, disableNextLine, disableNextSection *bool, fileDisabledAt *int, line int) {
	switch d.name {
	case "disable-file":
		*fileDisabledAt = line
	case "disable":
		*disabled = true
	case "enable":
		*disabled = false
	case "disable-next-line":
		*disableNextLine = true
	case "disable-next-section":
		*disableNextSection = true
	case "proper-nouns":
		list := parseNounList(d.arg)
		if len(list) == 0 {
			s.addWarning(line, WarnInvalidDirectiveArgument, "hongdown-proper-nouns directive had no entries")
			return
		}
		s.nouns = s.nouns.Merge(list, nil)
	case "common-nouns":
		list := parseNounList(d.arg)
		if len(list) == 0 {
			s.addWarning(line, WarnInvalidDirectiveArgument, "hongdown-common-nouns directive had no entries")
			return
		}
		s.nouns = s.nouns.Merge(nil, list)
	}
}

// emitRawBlock copies the source bytes spanning children[i], from its own
// start line up to the next surviving sibling's start line (or EOF).
func (s *state) emitRawBlock(children []*hdast.Node, i int) {
	start := s.byteOffsetOfLine(children[i].Line)
	end := len(s.source)
	if i+1 < len(children) {
		end = s.byteOffsetOfLine(children[i+1].Line)
	}
	if start > end {
		start = end
	}
	s.writeRaw(s.source[start:end])
}

// flushSection emits pending reference definitions, then footnote
// definitions whose last reference falls in the section just closed, each
// preceded by a single blank line, then advances to the next section.
func (s *state) flushSection() {
	if len(s.pendingRefs) > 0 {
		s.blankLine()
		for _, r := range s.pendingRefs {
			line := "[" + r.label + "]: " + r.url
			if r.title != "" {
				line += ` "` + r.title + `"`
			}
			s.writeLine(line)
		}
		s.pendingRefs = nil
	}

	for _, label := range s.footnoteOrder {
		if s.emittedFootnotes[label] {
			continue
		}
		if s.footnoteLastSection[label] != s.currentSection {
			continue
		}
		s.blankLine()
		s.renderFootnoteDef(s.footnoteDefs[label])
		s.emittedFootnotes[label] = true
	}

	s.currentSection++
}
