package hongdown

import "time"

// UnorderedMarker is the bullet character for unordered list items.
type UnorderedMarker byte

const (
	MarkerDash      UnorderedMarker = '-'
	MarkerAsterisk  UnorderedMarker = '*'
	MarkerPlus      UnorderedMarker = '+'
)

// OrderedSeparator is the character following an ordered list item number.
type OrderedSeparator byte

const (
	SeparatorDot    OrderedSeparator = '.'
	SeparatorParen  OrderedSeparator = ')'
)

// OrderedPad controls which side of an ordered marker absorbs padding.
type OrderedPad uint8

const (
	PadStart OrderedPad = iota
	PadEnd
)

// FenceChar selects the code-fence character.
type FenceChar byte

const (
	FenceBacktick FenceChar = '`'
	FenceTilde    FenceChar = '~'
)

// ThematicBreakStyle is the literal run emitted for a thematic break.
type ThematicBreakStyle string

const (
	ThematicBreakDashes    ThematicBreakStyle = "---"
	ThematicBreakAsterisks ThematicBreakStyle = "***"
	ThematicBreakUnderscores ThematicBreakStyle = "___"
)

// HeadingOptions configures heading style and the sentence-case transform.
type HeadingOptions struct {
	SetextH1     bool
	SetextH2     bool
	SentenceCase bool
	ProperNouns  []string
	CommonNouns  []string
}

// ListOptions configures unordered list marker geometry.
type ListOptions struct {
	UnorderedMarker UnorderedMarker
	LeadingSpaces   int
	TrailingSpaces  int
	IndentWidth     int
}

// OrderedListOptions configures ordered list marker geometry.
type OrderedListOptions struct {
	OddLevelMarker  OrderedSeparator
	EvenLevelMarker OrderedSeparator
	Pad             OrderedPad
	IndentWidth     int
}

// CodeFormatterSpec names an external command used to reformat fenced code
// of a given language. Command is invoked with Args, the code piped to
// stdin, and the reformatted code read from stdout.
type CodeFormatterSpec struct {
	Command string
	Args    []string
	Timeout time.Duration
}

// CodeBlockOptions configures fenced code block emission.
type CodeBlockOptions struct {
	FenceChar       FenceChar
	MinFenceLength  int
	SpaceAfterFence bool
	DefaultLanguage string
	Formatters      map[string]CodeFormatterSpec
}

// ThematicBreakOptions configures thematic break emission.
type ThematicBreakOptions struct {
	Style         ThematicBreakStyle
	LeadingSpaces int
}

// PunctuationOptions configures SmartyPants-style substitution.
type PunctuationOptions struct {
	CurlyDoubleQuotes bool
	CurlySingleQuotes bool
	CurlyApostrophes  bool
	Ellipsis          bool
	// EnDash is the pattern to substitute for an en dash, or "" to disable.
	EnDash string
	// EmDash is the pattern to substitute for an em dash, or "" to disable.
	EmDash string
}

// Options is the fully resolved set of serializer options. Every field has
// a documented default via DefaultOptions.
type Options struct {
	LineWidth int

	Heading      HeadingOptions
	List         ListOptions
	OrderedList  OrderedListOptions
	CodeBlock    CodeBlockOptions
	ThematicBreak ThematicBreakOptions
	Punctuation  PunctuationOptions
}

// DefaultOptions returns the built-in default option set. Defaults follow
// common prose-formatter conventions: ATX headings, `-` bullets, `.`
// ordered markers alternating with `)` at even nesting depth, tilde fences,
// and every SmartyPants substitution (quotes, apostrophes, ellipsis, dashes)
// disabled.
func DefaultOptions() Options {
	return Options{
		LineWidth: 80,
		Heading: HeadingOptions{
			SetextH1:     false,
			SetextH2:     false,
			SentenceCase: false,
		},
		List: ListOptions{
			UnorderedMarker: MarkerDash,
			LeadingSpaces:   1,
			TrailingSpaces:  2,
			IndentWidth:     2,
		},
		OrderedList: OrderedListOptions{
			OddLevelMarker:  SeparatorDot,
			EvenLevelMarker: SeparatorParen,
			Pad:             PadStart,
			IndentWidth:     2,
		},
		CodeBlock: CodeBlockOptions{
			FenceChar:       FenceTilde,
			MinFenceLength:  4,
			SpaceAfterFence: true,
		},
		ThematicBreak: ThematicBreakOptions{
			Style:         ThematicBreakDashes,
			LeadingSpaces: 0,
		},
		Punctuation: PunctuationOptions{},
	}
}
