package hongdown

import "strings"

// directive is a parsed hongdown-* HTML-comment instruction. arg is the
// raw text after the colon, unsplit.
type directive struct {
	name string
	arg  string
	ok   bool
}

// parseDirective recognizes an HTML comment literal as a hongdown
// directive. It returns ok=false for any comment that isn't one, so
// ordinary HTML comments in the document pass through unmodified.
func parseDirective(literal string) directive {
	s := strings.TrimSpace(literal)
	s = strings.TrimPrefix(s, "<!--")
	s = strings.TrimSuffix(s, "-->")
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "hongdown-") {
		return directive{}
	}
	s = strings.TrimPrefix(s, "hongdown-")
	if idx := strings.IndexByte(s, ':'); idx >= 0 {
		return directive{name: strings.TrimSpace(s[:idx]), arg: strings.TrimSpace(s[idx+1:]), ok: true}
	}
	return directive{name: strings.TrimSpace(s), ok: true}
}

// parseNounList splits a comma-separated directive argument into trimmed,
// non-empty entries.
func parseNounList(arg string) []string {
	if arg == "" {
		return nil
	}
	parts := strings.Split(arg, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// hasNoFormatToken reports whether a fenced code block's info string
// carries the hongdown-no-format suffix that suppresses the formatter hook.
func hasNoFormatToken(info string) bool {
	fields := strings.Fields(info)
	for _, f := range fields {
		if f == "hongdown-no-format" {
			return true
		}
	}
	return false
}

// languageFromInfo returns the leading word of an info string, which is
// the code fence's declared language.
func languageFromInfo(info string) string {
	fields := strings.Fields(info)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
