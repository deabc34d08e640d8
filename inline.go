package hongdown

import (
	"strconv"
	"strings"
	"unicode"

	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/wrapengine"
)

// inlineAtoms flattens a sequence of inline nodes into the wrap engine's
// atom stream. Escaping and SmartyPants run here, at the leaf text level;
// emphasis/strong attach their delimiters to the first and last inner atom
// instead of becoming one opaque atom, so long emphasized runs still wrap
// word by word.
func (s *state) inlineAtoms(nodes []*hdast.Node) []wrapengine.Atom {
	var atoms []wrapengine.Atom
	for i, n := range nodes {
		switch n.Kind {
		case hdast.KindText:
			atoms = append(atoms, s.textAtoms(n.TextLiteral)...)
			for _, c := range n.Children {
				switch c.Kind {
				case hdast.KindSoftBreak:
					atoms = append(atoms, wrapengine.Atom{Kind: wrapengine.Space})
				case hdast.KindHardBreak:
					atoms = append(atoms, wrapengine.Atom{Kind: wrapengine.HardBreak})
				}
			}

		case hdast.KindSoftBreak:
			atoms = append(atoms, wrapengine.Atom{Kind: wrapengine.Space})

		case hdast.KindHardBreak:
			atoms = append(atoms, wrapengine.Atom{Kind: wrapengine.HardBreak})

		case hdast.KindCode:
			atoms = append(atoms, wrapengine.NewWordAtom(renderCodeSpan(n.TextLiteral)))

		case hdast.KindEmph:
			inner := s.inlineAtoms(n.Children)
			attachDelimiters(inner, emphasisDelimiter(n, 1))
			atoms = append(atoms, inner...)

		case hdast.KindStrong:
			inner := s.inlineAtoms(n.Children)
			attachDelimiters(inner, emphasisDelimiter(n, 2))
			atoms = append(atoms, inner...)

		case hdast.KindLink:
			collapse := i+1 < len(nodes) && startsWithOpenBracket(nodes[i+1])
			atoms = append(atoms, s.renderLinkLike(n, "", collapse))

		case hdast.KindImage:
			collapse := i+1 < len(nodes) && startsWithOpenBracket(nodes[i+1])
			atoms = append(atoms, s.renderLinkLike(n, "!", collapse))

		case hdast.KindHTMLInline:
			atoms = append(atoms, wrapengine.NewWordAtom(n.TextLiteral))

		case hdast.KindFootnoteReference:
			atoms = append(atoms, wrapengine.NewWordAtom("[^"+n.Label+"]"))

		default:
			atoms = append(atoms, s.inlineAtoms(n.Children)...)
		}
	}
	return atoms
}

// textAtoms tokenizes one Text node's literal into Word/Space atoms after
// running SmartyPants over the whole run (so multi-character patterns like
// "..." are recognized before word splitting).
func (s *state) textAtoms(literal string) []wrapengine.Atom {
	text := applySmartypants(literal, s.opts.Punctuation)
	var atoms []wrapengine.Atom
	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			atoms = append(atoms, wrapengine.NewWordAtom(escapeText(word.String())))
			word.Reset()
		}
	}
	for _, r := range text {
		if unicode.IsSpace(r) {
			flush()
			if len(atoms) == 0 || atoms[len(atoms)-1].Kind != wrapengine.Space {
				atoms = append(atoms, wrapengine.Atom{Kind: wrapengine.Space})
			}
			continue
		}
		word.WriteRune(r)
	}
	flush()
	return atoms
}

// renderInlineFlat renders inline children to a single unwrapped line,
// used by headings, table cells, and description terms, none of which
// wrap.
func (s *state) renderInlineFlat(children []*hdast.Node) string {
	atoms := s.inlineAtoms(children)
	var b strings.Builder
	needSpace := false
	for _, a := range atoms {
		switch a.Kind {
		case wrapengine.Space, wrapengine.HardBreak:
			if b.Len() > 0 {
				needSpace = true
			}
		default:
			if needSpace {
				b.WriteByte(' ')
				needSpace = false
			}
			b.WriteString(a.Text)
		}
	}
	return b.String()
}

// attachDelimiters prepends/appends delim to the first and last Word atom
// in atoms, so an emphasis/strong run's markers sit at its content
// boundary while its interior words remain individually wrappable.
func attachDelimiters(atoms []wrapengine.Atom, delim string) {
	if len(atoms) == 0 {
		return
	}
	first, last := -1, -1
	for i, a := range atoms {
		if a.Kind == wrapengine.Word {
			if first == -1 {
				first = i
			}
			last = i
		}
	}
	if first == -1 {
		return
	}
	atoms[first].Text = delim + atoms[first].Text
	atoms[first].Width += len(delim)
	atoms[last].Text = atoms[last].Text + delim
	atoms[last].Width += len(delim)
}

// emphasisDelimiter chooses `*`/`_` (doubled for strong) based on whether
// the content contains an unescaped `*` that would otherwise force
// backslash escaping.
func emphasisDelimiter(n *hdast.Node, level int) string {
	ch := "*"
	if strings.Contains(hdast.FlattenText(n), "*") {
		ch = "_"
	}
	return strings.Repeat(ch, level)
}

// renderCodeSpan wraps content in the shortest backtick fence that does
// not itself appear in content, padding with a single space on each side
// when needed to avoid an accidental fence collision at the boundary.
func renderCodeSpan(content string) string {
	n := 1
	for strings.Contains(content, strings.Repeat("`", n)) {
		n++
	}
	fence := strings.Repeat("`", n)
	pad := ""
	if content == "" || strings.HasPrefix(content, "`") || strings.HasSuffix(content, "`") {
		pad = " "
	}
	return fence + pad + content + pad + fence
}

// startsWithOpenBracket reports whether n renders as text starting with an
// unescaped "[" — true for a link and a footnote reference, the only inline
// kinds whose rendered form can start with that byte (plain text always
// backslash-escapes a literal "[").
func startsWithOpenBracket(n *hdast.Node) bool {
	switch n.Kind {
	case hdast.KindLink, hdast.KindFootnoteReference:
		return true
	default:
		return false
	}
}

// isExternalURL reports whether a link/image target should be converted
// to reference style rather than left inline.
func isExternalURL(u string) bool {
	lower := strings.ToLower(u)
	for _, scheme := range []string{"http://", "https://", "ftp://", "mailto:"} {
		if strings.HasPrefix(lower, scheme) {
			return true
		}
	}
	return strings.Contains(u, "://")
}

// renderLinkLike renders a link (prefix "") or image (prefix "!"). collapse
// is true when the next sibling in the same inline run starts with an
// unescaped "[" — a shortcut reference immediately followed by another "["
// is ambiguous with a full reference link, so that case emits the collapsed
// "[Text][]" form instead of the bare shortcut.
func (s *state) renderLinkLike(n *hdast.Node, prefix string, collapse bool) wrapengine.Atom {
	inner := s.renderInlineFlat(n.Children)
	flat := hdast.FlattenText(n)

	var text string
	if isExternalURL(n.URL) {
		label := s.registerRef(flat, n.URL, n.Title)
		if strings.EqualFold(label, flat) {
			text = prefix + "[" + inner + "]"
			if collapse {
				text += "[]"
			}
		} else {
			text = prefix + "[" + inner + "][" + label + "]"
		}
	} else {
		text = prefix + "[" + inner + "](" + n.URL
		if n.Title != "" {
			text += ` "` + n.Title + `"`
		}
		text += ")"
	}
	return wrapengine.NewWordAtom(text)
}

// registerRef records an external link/image target for reference-style
// emission, reusing an existing pending definition with the same target,
// and otherwise minting a label from the link text with a numeric suffix
// on collision, so a label is defined at most once.
func (s *state) registerRef(text, url, title string) string {
	for _, r := range s.pendingRefs {
		if r.url == url && r.title == title {
			return r.label
		}
	}
	base := strings.TrimSpace(text)
	if base == "" {
		base = "ref"
	}
	label := base
	n := 1
	for s.usedLabels[strings.ToLower(label)] {
		n++
		label = base + "-" + strconv.Itoa(n)
	}
	s.usedLabels[strings.ToLower(label)] = true
	s.pendingRefs = append(s.pendingRefs, &refDef{label: label, url: url, title: title})
	return label
}
