// Package mdast converts a github.com/yuin/goldmark AST (configured with
// the GFM, DefinitionList, and Footnote extensions) into hongdown's own
// tagged-variant Node tree. Goldmark owns parsing and source-offset
// tracking; this package's only job is translating its node kinds into
// hongdown's own AST shape, including recognizing GitHub-style alert
// blockquotes, which goldmark does not model natively.
package mdast

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	gtext "github.com/yuin/goldmark/text"

	"hongdown.dev/hongdown/internal/hdast"
)

// Warning mirrors the caller's warning shape without importing the root
// package (which imports mdast), so the conversion layer stays leaf-level.
type Warning struct {
	Line    int
	Kind    string
	Message string
}

// KindUnknownAlertKind tags a Warning produced when a blockquote's leading
// "[!KIND]" marker paragraph names a kind hdast.AlertKindFromString does not
// recognize. The caller maps this to its own WarnUnknownAlertKind constant.
const KindUnknownAlertKind = "unknown-alert-kind"

// Parse parses source with goldmark and converts the result into a
// hongdown Node tree rooted at KindDocument.
func Parse(md goldmark.Markdown, source []byte) (*hdast.Node, []Warning) {
	reader := gtext.NewReader(source)
	doc := md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))
	c := &converter{source: source, footnoteLabels: map[int]string{}}
	c.collectFootnoteLabels(doc)
	root := c.convertBlock(doc)
	return root, c.warnings
}

// collectFootnoteLabels pre-walks the tree so a FootnoteLink appearing
// before its Footnote definition (definitions are typically rendered at
// document end) can still resolve its original bracket label.
func (c *converter) collectFootnoteLabels(n gast.Node) {
	if fn, ok := n.(*east.Footnote); ok {
		c.footnoteLabels[fn.Index] = string(fn.Ref)
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		c.collectFootnoteLabels(child)
	}
}

type converter struct {
	source         []byte
	warnings       []Warning
	footnoteLabels map[int]string
}

func (c *converter) lineOfOffset(off int) int {
	return 1 + bytes.Count(c.source[:clamp(off, len(c.source))], []byte("\n"))
}

func clamp(n, max int) int {
	if n < 0 {
		return 0
	}
	if n > max {
		return max
	}
	return n
}

func (c *converter) convertChildren(dst *hdast.Node, n gast.Node) {
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if _, isCheckbox := child.(*east.TaskCheckBox); isCheckbox {
			continue // surfaced as Node.Task/TaskDone on the enclosing item
		}
		if _, isDescription := child.(*east.DefinitionDescription); isDescription {
			continue // consumed by convertDefinitionItem from the preceding term
		}
		if fnl, isFootnoteList := child.(*east.FootnoteList); isFootnoteList {
			// Flatten: a FootnoteList has no shape of its own, its Footnote
			// children become direct siblings of the surrounding blocks.
			for fn := fnl.FirstChild(); fn != nil; fn = fn.NextSibling() {
				if f, ok := fn.(*east.Footnote); ok {
					dst.Children = append(dst.Children, c.convertFootnote(f))
				}
			}
			continue
		}
		if child.Type() == gast.TypeBlock {
			dst.Children = append(dst.Children, c.convertBlock(child))
		} else {
			dst.Children = append(dst.Children, c.convertInline(child))
		}
	}
}

func (c *converter) convertBlock(n gast.Node) *hdast.Node {
	line := c.lineOfOffset(nodeOffset(n))
	switch v := n.(type) {
	case *gast.Document:
		doc := hdast.NewNode(hdast.KindDocument, line)
		c.convertChildren(doc, n)
		return doc

	case *gast.Heading:
		h := hdast.NewNode(hdast.KindHeading, line)
		h.Level = v.Level
		c.convertChildren(h, n)
		return h

	case *gast.Paragraph:
		p := hdast.NewNode(hdast.KindParagraph, line)
		c.convertChildren(p, n)
		return p

	case *gast.TextBlock:
		p := hdast.NewNode(hdast.KindParagraph, line)
		c.convertChildren(p, n)
		return p

	case *gast.List:
		l := hdast.NewNode(hdast.KindList, line)
		l.Ordered = v.Marker == '.' || v.Marker == ')'
		l.Tight = v.IsTight
		if l.Ordered {
			l.OrderedStart = v.Start
		}
		c.convertChildren(l, n)
		return l

	case *gast.ListItem:
		item := hdast.NewNode(hdast.KindItem, line)
		c.convertChildren(item, n)
		if box, ok := findTaskCheckBox(n); ok {
			item.Task = true
			item.TaskDone = box.IsChecked
		}
		return item

	case *gast.FencedCodeBlock:
		cb := hdast.NewNode(hdast.KindCodeBlock, line)
		if v.Info != nil {
			cb.Info = string(v.Info.Value(c.source))
		}
		cb.SetText(collectLines(v, c.source))
		return cb

	case *gast.CodeBlock:
		cb := hdast.NewNode(hdast.KindCodeBlock, line)
		cb.SetText(collectLines(v, c.source))
		return cb

	case *gast.Blockquote:
		kind, ok, unknownKind := detectAlertKind(n, c.source)
		if ok {
			a := hdast.NewNode(hdast.KindAlert, line)
			a.Alert = kind
			c.convertAlertChildren(a, v)
			return a
		}
		if unknownKind != "" {
			c.warnings = append(c.warnings, Warning{
				Line:    line,
				Kind:    KindUnknownAlertKind,
				Message: fmt.Sprintf("unrecognized alert kind %q, treating as a plain block quote", unknownKind),
			})
		}
		bq := hdast.NewNode(hdast.KindBlockQuote, line)
		c.convertChildren(bq, n)
		return bq

	case *gast.ThematicBreak:
		return hdast.NewNode(hdast.KindThematicBreak, line)

	case *gast.HTMLBlock:
		hb := hdast.NewNode(hdast.KindHTMLBlock, line)
		hb.SetText(collectHTMLLines(v, c.source))
		return hb

	case *east.Table:
		t := hdast.NewNode(hdast.KindTable, line)
		t.Alignments = convertAlignments(v.Alignments)
		for child := n.FirstChild(); child != nil; child = child.NextSibling() {
			t.Children = append(t.Children, c.convertTableRow(child))
		}
		return t

	case *east.TableHeader:
		return c.convertTableRow(n)

	case *east.TableRow:
		return c.convertTableRow(n)

	case *east.DefinitionList:
		dl := hdast.NewNode(hdast.KindDescriptionList, line)
		c.convertChildren(dl, n)
		return dl

	case *east.DefinitionDescription:
		// Grouped under DefinitionTerm by convertDefinitionItem; a bare
		// description outside that grouping still renders as a paragraph.
		p := hdast.NewNode(hdast.KindParagraph, line)
		c.convertChildren(p, n)
		return p

	case *east.Footnote:
		return c.convertFootnote(v)

	default:
		if term, ok := n.(*east.DefinitionTerm); ok {
			return c.convertDefinitionItem(term)
		}
		// Unknown block kind: degrade to an opaque paragraph so the
		// document still round-trips instead of losing content.
		p := hdast.NewNode(hdast.KindParagraph, line)
		c.convertChildren(p, n)
		return p
	}
}

func (c *converter) convertFootnote(fn *east.Footnote) *hdast.Node {
	line := c.lineOfOffset(nodeOffset(fn))
	f := hdast.NewNode(hdast.KindFootnote, line)
	f.Label = string(fn.Ref)
	c.footnoteLabels[fn.Index] = f.Label
	c.convertChildren(f, fn)
	return f
}

func (c *converter) convertDefinitionItem(term *east.DefinitionTerm) *hdast.Node {
	line := c.lineOfOffset(nodeOffset(term))
	item := hdast.NewNode(hdast.KindDescriptionItem, line)
	termNode := hdast.NewNode(hdast.KindParagraph, line)
	c.convertChildren(termNode, term)
	item.Term = termNode
	for sib := term.NextSibling(); sib != nil; sib = sib.NextSibling() {
		if _, ok := sib.(*east.DefinitionDescription); !ok {
			break
		}
		defNode := hdast.NewNode(hdast.KindParagraph, c.lineOfOffset(nodeOffset(sib)))
		c.convertChildren(defNode, sib)
		item.Definitions = append(item.Definitions, defNode)
	}
	return item
}

func (c *converter) convertTableRow(n gast.Node) *hdast.Node {
	line := c.lineOfOffset(nodeOffset(n))
	row := hdast.NewNode(hdast.KindTableRow, line)
	for cell := n.FirstChild(); cell != nil; cell = cell.NextSibling() {
		tc := hdast.NewNode(hdast.KindTableCell, line)
		c.convertChildren(tc, cell)
		row.Children = append(row.Children, tc)
	}
	return row
}

func convertAlignments(in []east.Alignment) []hdast.Alignment {
	out := make([]hdast.Alignment, len(in))
	for i, a := range in {
		switch a {
		case east.AlignLeft:
			out[i] = hdast.AlignLeft
		case east.AlignRight:
			out[i] = hdast.AlignRight
		case east.AlignCenter:
			out[i] = hdast.AlignCenter
		default:
			out[i] = hdast.AlignNone
		}
	}
	return out
}

// convertAlertChildren strips the leading `[!KIND]` marker paragraph from
// an alert blockquote's children before converting the rest.
func (c *converter) convertAlertChildren(a *hdast.Node, bq *gast.Blockquote) {
	first := bq.FirstChild()
	if first == nil {
		return
	}
	for child := first.NextSibling(); child != nil; child = child.NextSibling() {
		if child.Type() == gast.TypeBlock {
			a.Children = append(a.Children, c.convertBlock(child))
		} else {
			a.Children = append(a.Children, c.convertInline(child))
		}
	}
}

func (c *converter) convertInline(n gast.Node) *hdast.Node {
	line := c.lineOfOffset(nodeOffset(n))
	switch v := n.(type) {
	case *gast.Text:
		t := hdast.NewNode(hdast.KindText, line)
		t.SetText(string(v.Segment.Value(c.source)))
		if v.HardLineBreak() {
			t.Children = append(t.Children, hdast.NewNode(hdast.KindHardBreak, line))
		} else if v.SoftLineBreak() {
			t.Children = append(t.Children, hdast.NewNode(hdast.KindSoftBreak, line))
		}
		return t

	case *gast.String:
		t := hdast.NewNode(hdast.KindText, line)
		t.SetText(string(v.Value))
		return t

	case *gast.CodeSpan:
		code := hdast.NewNode(hdast.KindCode, line)
		code.SetText(inlineText(n, c.source))
		return code

	case *gast.Emphasis:
		if v.Level >= 2 {
			s := hdast.NewNode(hdast.KindStrong, line)
			c.convertChildren(s, n)
			return s
		}
		e := hdast.NewNode(hdast.KindEmph, line)
		c.convertChildren(e, n)
		return e

	case *east.Strikethrough:
		// No first-class strikethrough node kind; keep the `~~` markers
		// literal so the content round-trips instead of losing them.
		t := hdast.NewNode(hdast.KindText, line)
		t.SetText("~~" + inlineText(n, c.source) + "~~")
		return t

	case *gast.Link:
		l := hdast.NewNode(hdast.KindLink, line)
		l.URL = string(v.Destination)
		l.Title = string(v.Title)
		c.convertChildren(l, n)
		return l

	case *gast.Image:
		img := hdast.NewNode(hdast.KindImage, line)
		img.URL = string(v.Destination)
		img.Title = string(v.Title)
		c.convertChildren(img, n)
		return img

	case *gast.AutoLink:
		l := hdast.NewNode(hdast.KindLink, line)
		url := string(v.URL(c.source))
		l.URL = url
		txt := hdast.NewNode(hdast.KindText, line)
		txt.SetText(url)
		l.Children = append(l.Children, txt)
		return l

	case *gast.RawHTML:
		h := hdast.NewNode(hdast.KindHTMLInline, line)
		h.SetText(rawHTMLText(v, c.source))
		return h

	case *east.FootnoteLink:
		fref := hdast.NewNode(hdast.KindFootnoteReference, line)
		fref.Label = c.footnoteLabels[v.Index]
		return fref

	default:
		t := hdast.NewNode(hdast.KindText, line)
		t.SetText(inlineText(n, c.source))
		return t
	}
}

func inlineText(n gast.Node, source []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if txt, ok := c.(*gast.Text); ok {
			b.Write(txt.Segment.Value(source))
			continue
		}
		if seg, ok := c.(*gast.String); ok {
			b.Write(seg.Value)
			continue
		}
	}
	if b.Len() == 0 {
		if lines := n.Lines(); lines != nil && lines.Len() > 0 {
			for i := 0; i < lines.Len(); i++ {
				s := lines.At(i)
				b.Write(s.Value(source))
			}
		}
	}
	return b.String()
}

func rawHTMLText(n *gast.RawHTML, source []byte) string {
	var b strings.Builder
	for i := 0; i < n.Segments.Len(); i++ {
		seg := n.Segments.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func collectLines(n gast.Node, source []byte) string {
	lines := n.Lines()
	if lines == nil {
		return ""
	}
	var b strings.Builder
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		b.Write(line.Value(source))
	}
	return b.String()
}

func collectHTMLLines(n *gast.HTMLBlock, source []byte) string {
	var b strings.Builder
	if lines := n.Lines(); lines != nil {
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			b.Write(line.Value(source))
		}
	}
	if n.HasClosure() {
		b.Write(n.ClosureLine.Value(source))
	}
	return b.String()
}

func nodeOffset(n gast.Node) int {
	if lines := n.Lines(); lines != nil && lines.Len() > 0 {
		return lines.At(0).Start
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if off := nodeOffset(c); off > 0 {
			return off
		}
	}
	return 0
}

func findTaskCheckBox(item gast.Node) (*east.TaskCheckBox, bool) {
	for block := item.FirstChild(); block != nil; block = block.NextSibling() {
		for inline := block.FirstChild(); inline != nil; inline = inline.NextSibling() {
			if box, ok := inline.(*east.TaskCheckBox); ok {
				return box, true
			}
		}
	}
	return nil, false
}

// detectAlertKind recognizes a GitHub-style alert: a blockquote whose first
// child is a paragraph consisting solely of the text "[!KIND]". unknownKind
// distinguishes the two ways ok can be false: "" means no such marker
// paragraph is present at all (an ordinary block quote); non-empty means a
// marker paragraph was found but named a kind AlertKindFromString does not
// recognize, so the caller can warn instead of silently falling back.
func detectAlertKind(n gast.Node, source []byte) (kind hdast.AlertKind, ok bool, unknownKind string) {
	first := n.FirstChild()
	if first == nil {
		return 0, false, ""
	}
	para, isPara := first.(*gast.Paragraph)
	if !isPara {
		return 0, false, ""
	}
	text := strings.TrimSpace(inlineText(para, source))
	if !strings.HasPrefix(text, "[!") || !strings.HasSuffix(text, "]") {
		return 0, false, ""
	}
	kindStr := strings.ToUpper(text[2 : len(text)-1])
	kind, ok = hdast.AlertKindFromString(kindStr)
	if !ok {
		return 0, false, kindStr
	}
	return kind, true, ""
}
