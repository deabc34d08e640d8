package hongdown

import (
	"bytes"
	"strings"

	"hongdown.dev/hongdown/internal/codefmt"
	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/propernouns"
	"hongdown.dev/hongdown/internal/width"
)

// refDef is a pending reference-style link/image definition, collected as
// paragraphs are rendered and flushed at the end of each section.
type refDef struct {
	label string
	url   string
	title string
}

// state is the serializer's mutable working set for one invocation. It is
// created fresh per call to Format and discarded on return; nothing in it
// is shared across invocations except the read-only proper-noun table it
// was handed.
type state struct {
	opts Options
	out  bytes.Buffer

	prefixes []string

	warnings []Warning
	nouns    propernouns.Set
	hook     codefmt.Hook

	source      []byte
	lineOffsets []int

	pendingRefs []*refDef
	usedLabels  map[string]bool

	footnoteDefs        map[string]*hdast.Node
	footnoteOrder       []string
	footnoteLastSection map[string]int
	emittedFootnotes    map[string]bool
	currentSection      int
}

func newState(opts Options, source []byte, hook codefmt.Hook, nouns propernouns.Set) *state {
	s := &state{
		opts:                opts,
		hook:                hook,
		nouns:               nouns,
		source:              source,
		usedLabels:          map[string]bool{},
		footnoteDefs:        map[string]*hdast.Node{},
		footnoteLastSection: map[string]int{},
		emittedFootnotes:    map[string]bool{},
	}
	s.lineOffsets = computeLineOffsets(source)
	return s
}

func computeLineOffsets(src []byte) []int {
	offs := make([]int, 1, 64)
	offs[0] = 0
	for i, b := range src {
		if b == '\n' {
			offs = append(offs, i+1)
		}
	}
	return offs
}

// byteOffsetOfLine returns the byte offset of the start of the given
// 1-indexed line, clamped to the source length.
func (s *state) byteOffsetOfLine(line int) int {
	idx := line - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.lineOffsets) {
		return len(s.source)
	}
	return s.lineOffsets[idx]
}

func (s *state) addWarning(line int, kind WarningKind, format string, args ...any) {
	s.warnings = append(s.warnings, newWarning(line, kind, format, args...))
}

func (s *state) prefix() string {
	if len(s.prefixes) == 0 {
		return ""
	}
	return strings.Join(s.prefixes, "")
}

func (s *state) prefixWidth() int {
	return width.String(s.prefix())
}

func (s *state) pushPrefix(p string) {
	s.prefixes = append(s.prefixes, p)
}

func (s *state) popPrefix() {
	s.prefixes = s.prefixes[:len(s.prefixes)-1]
}

// writeRaw copies bytes verbatim, used for disabled regions, front matter,
// and HTML blocks where invariant 4 requires byte fidelity.
func (s *state) writeRaw(b []byte) {
	s.out.Write(b)
}

// writeLine emits the current prefix, then text with trailing whitespace
// trimmed, then a newline. No caller ever needs a trailing space. Code
// block literal lines do not go through it: they are written after the
// prefix without any trimming.
func (s *state) writeLine(text string) {
	s.out.WriteString(s.prefix())
	s.out.WriteString(strings.TrimRight(text, " \t"))
	s.out.WriteByte('\n')
}

// blankLine emits a blank continuation line: the current prefix with any
// trailing space trimmed (block quotes end a blank line at "> ", `>`, not
// "> "), then a newline.
func (s *state) blankLine() {
	s.out.WriteString(strings.TrimRight(s.prefix(), " "))
	s.out.WriteByte('\n')
}

// finalize trims the buffer to exactly one trailing newline (or produces
// an empty result if nothing was written), per the output guarantees.
func (s *state) finalize() string {
	out := s.out.String()
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return ""
	}
	return out + "\n"
}
