package hongdown

import "strings"

// escapeText backslash-escapes the characters that would otherwise be
// reinterpreted as Markdown syntax when this run is re-parsed, including
// standalone underscores: consistent cross-parser rendering matters more
// here than minimal escaping, so a leading `#`/`-`/`+`/digit-dot is left
// to the block emitters (they own line-start context) and this function
// only handles in-word characters.
func escapeText(s string) string {
	if !strings.ContainsAny(s, "\\`*_[]") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + 4)
	for _, r := range s {
		switch r {
		case '\\', '`', '*', '_', '[', ']':
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}
