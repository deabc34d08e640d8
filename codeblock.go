package hongdown

import (
	"context"
	"errors"
	"strings"

	"hongdown.dev/hongdown/internal/codefmt"
	"hongdown.dev/hongdown/internal/hdast"
)

func (s *state) renderCodeBlock(n *hdast.Node) {
	literal := n.Text()
	info := n.Info

	if s.hook != nil && !hasNoFormatToken(info) {
		lang := languageFromInfo(info)
		if _, ok := s.opts.CodeBlock.Formatters[lang]; ok {
			formatted, err := s.hook.Format(context.Background(), lang, trimOneTrailingNewline(literal))
			if err != nil {
				if errors.Is(err, codefmt.ErrTimeout) {
					s.addWarning(n.Line, WarnExternalFormatterTimeout, "external formatter %q timed out: %s", lang, err)
				} else {
					s.addWarning(n.Line, WarnExternalFormatterFailed, "external formatter %q failed: %s", lang, err)
				}
			} else {
				literal = ensureTrailingNewline(formatted)
			}
		}
	}

	fenceLen := s.opts.CodeBlock.MinFenceLength
	if run := longestRun(literal, byte(s.opts.CodeBlock.FenceChar)) + 1; run > fenceLen {
		fenceLen = run
	}
	fence := strings.Repeat(string(s.opts.CodeBlock.FenceChar), fenceLen)

	infoOut := info
	if infoOut == "" && s.opts.CodeBlock.DefaultLanguage != "" {
		infoOut = s.opts.CodeBlock.DefaultLanguage
	}
	openLine := fence
	if infoOut != "" {
		if s.opts.CodeBlock.SpaceAfterFence {
			openLine += " "
		}
		openLine += infoOut
	}
	s.writeLine(openLine)

	for _, line := range splitLinesKeepEmpty(literal) {
		s.out.WriteString(s.prefix())
		s.out.WriteString(line)
		s.out.WriteByte('\n')
	}
	s.writeLine(fence)
}

// longestRun finds the longest run of consecutive occurrences of ch in s.
func longestRun(s string, ch byte) int {
	longest, cur := 0, 0
	for i := 0; i < len(s); i++ {
		if s[i] == ch {
			cur++
			if cur > longest {
				longest = cur
			}
		} else {
			cur = 0
		}
	}
	return longest
}

func trimOneTrailingNewline(s string) string {
	return strings.TrimSuffix(s, "\n")
}

func ensureTrailingNewline(s string) string {
	if strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

// splitLinesKeepEmpty splits literal on \n, dropping the final empty
// element produced by a trailing newline, so a literal "a\nb\n" yields
// ["a", "b"] and code block emission adds exactly one newline per line.
func splitLinesKeepEmpty(literal string) []string {
	if literal == "" {
		return nil
	}
	trimmed := strings.TrimSuffix(literal, "\n")
	return strings.Split(trimmed, "\n")
}
