// Package frontmatter detects a leading front-matter block (YAML `---`,
// TOML `+++`, or `;;;`-delimited) at the start of a document. Goldmark has
// no opinion on front matter, so hongdown splits it off before handing the
// remainder to the parser.
package frontmatter

import "bytes"

// Split returns the raw front-matter block (delimiters included) and the
// remaining document bytes. ok is false when src has no front matter, in
// which case rest equals src.
func Split(src []byte) (raw []byte, rest []byte, ok bool) {
	openLine, openNext, hasOpen := nextLine(src, 0)
	if !hasOpen {
		return nil, src, false
	}
	delim, isFrontMatter := parseOpeningDelimiter(openLine)
	if !isFrontMatter {
		return nil, src, false
	}

	secondLine, secondNext, hasSecond := nextLine(src, openNext)
	if !hasSecond || !metadataLikely(secondLine) {
		return nil, src, false
	}

	closeNext, found := findClosingDelimiter(src, secondNext, delim)
	if !found {
		return nil, src, false
	}
	return src[:closeNext], src[closeNext:], true
}

func nextLine(src []byte, start int) ([]byte, int, bool) {
	if start > len(src) {
		return nil, 0, false
	}
	if start == len(src) {
		return nil, 0, false
	}
	i := bytes.IndexByte(src[start:], '\n')
	if i < 0 {
		return trimCR(src[start:]), len(src), true
	}
	lineEnd := start + i
	return trimCR(src[start:lineEnd]), lineEnd + 1, true
}

func parseOpeningDelimiter(line []byte) ([]byte, bool) {
	trimmed := bytes.TrimSpace(trimBOM(line))
	switch {
	case bytes.Equal(trimmed, []byte("---")):
		return []byte("---"), true
	case bytes.Equal(trimmed, []byte("+++")):
		return []byte("+++"), true
	case bytes.Equal(trimmed, []byte(";;;")):
		return []byte(";;;"), true
	default:
		return nil, false
	}
}

func metadataLikely(line []byte) bool {
	trimmed := bytes.TrimSpace(line)
	if len(trimmed) == 0 {
		return false
	}
	if bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("[")) {
		return true
	}
	return bytes.Contains(trimmed, []byte(":")) || bytes.Contains(trimmed, []byte("="))
}

func findClosingDelimiter(src []byte, start int, delim []byte) (int, bool) {
	idx := start
	for idx <= len(src) {
		line, next, ok := nextLine(src, idx)
		if !ok {
			return 0, false
		}
		if bytes.Equal(bytes.TrimSpace(line), delim) {
			return next, true
		}
		if next == idx {
			return 0, false
		}
		idx = next
	}
	return 0, false
}

func trimCR(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}

func trimBOM(b []byte) []byte {
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		return b[3:]
	}
	return b
}
