package hdast

import "strings"

// NodeKind tags a Node with its variant. Hongdown uses a flat tagged-variant
// tree instead of an interface hierarchy so the emitter can exhaustively
// switch on Kind rather than relying on dynamic dispatch.
type NodeKind uint8

const (
	KindDocument NodeKind = iota
	KindFrontMatter
	KindHeading
	KindParagraph
	KindList
	KindItem
	KindCodeBlock
	KindBlockQuote
	KindAlert
	KindThematicBreak
	KindTable
	KindTableRow
	KindTableCell
	KindDescriptionList
	KindDescriptionItem
	KindFootnote
	KindReferenceDefinition

	// Inline kinds.
	KindText
	KindCode
	KindEmph
	KindStrong
	KindLink
	KindImage
	KindSoftBreak
	KindHardBreak
	KindFootnoteReference
	KindHTMLInline
	KindHTMLBlock
)

// AlertKind enumerates the GitHub-style alert callouts.
type AlertKind uint8

const (
	AlertNote AlertKind = iota
	AlertTip
	AlertImportant
	AlertWarning
	AlertCaution
)

// String renders the alert kind exactly as it appears in the `[!KIND]` header.
func (k AlertKind) String() string {
	switch k {
	case AlertNote:
		return "NOTE"
	case AlertTip:
		return "TIP"
	case AlertImportant:
		return "IMPORTANT"
	case AlertWarning:
		return "WARNING"
	case AlertCaution:
		return "CAUTION"
	default:
		return "NOTE"
	}
}

// AlertKindFromString parses a `[!KIND]` header token case-insensitively.
func AlertKindFromString(s string) (AlertKind, bool) {
	switch strings.ToUpper(s) {
	case "NOTE":
		return AlertNote, true
	case "TIP":
		return AlertTip, true
	case "IMPORTANT":
		return AlertImportant, true
	case "WARNING":
		return AlertWarning, true
	case "CAUTION":
		return AlertCaution, true
	default:
		return AlertNote, false
	}
}

// Alignment is a table column alignment.
type Alignment uint8

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// Node is a single element of the parsed document tree. Every node carries
// its 1-indexed source start line so the directive scanner and disabled
// regions can map back to source byte offsets.
type Node struct {
	Kind  NodeKind
	Line  int // 1-indexed source start line
	Start int // byte offset of the node's source span, or -1 if unknown
	End   int // byte offset one past the node's source span, or -1 if unknown

	Children []*Node

	// Heading
	Level       int
	ATXInSrc    bool // heading was written as ATX in the source
	SetextInSrc bool

	// List
	Ordered      bool
	OrderedStart int // ordered list starting number
	Tight        bool
	Task         bool
	TaskDone     bool

	// CodeBlock
	Info    string
	Literal string

	// Alert
	Alert AlertKind

	// Table
	Alignments []Alignment

	// DescriptionItem
	Term        *Node
	Definitions []*Node

	// Footnote / FootnoteReference / Link / Image / ReferenceDefinition
	Label string
	URL   string
	Title string
	// RefLabel is set on Link/Image when the source used a reference-style
	// link ([text][label]) rather than an inline (text)(url) form.
	RefLabel string

	// Text / Code / HTMLInline / HTMLBlock literal content.
	TextLiteral string
}

// NewNode allocates a Node of the given kind at the given source line.
func NewNode(kind NodeKind, line int) *Node {
	return &Node{Kind: kind, Line: line, Start: -1, End: -1}
}

// Text returns the literal text of a Text/Code/HTMLInline/HTMLBlock node.
func (n *Node) Text() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindText, KindHTMLInline, KindHTMLBlock, KindCode, KindFrontMatter:
		return n.TextLiteral
	default:
		return ""
	}
}

// SetText sets the literal text for Text/Code/HTMLInline/HTMLBlock nodes.
func (n *Node) SetText(s string) {
	n.TextLiteral = s
}

// FlattenText concatenates the literal text of all descendant Text and Code
// nodes, used to compute link labels and to choose emphasis delimiters.
func FlattenText(n *Node) string {
	if n == nil {
		return ""
	}
	var b []byte
	var walk func(*Node)
	walk = func(cur *Node) {
		switch cur.Kind {
		case KindText, KindCode:
			b = append(b, cur.TextLiteral...)
		case KindSoftBreak:
			b = append(b, ' ')
		case KindHardBreak:
			b = append(b, ' ')
		default:
			for _, c := range cur.Children {
				walk(c)
			}
		}
	}
	walk(n)
	return string(b)
}
