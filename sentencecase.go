package hongdown

import (
	"sort"
	"strings"
	"unicode"

	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/propernouns"
)

// caseState carries capitalization decisions across every Text node inside
// one heading, so "seen the first word yet" and "just crossed a sentence
// delimiter" survive node boundaries (a heading is rarely more than one
// Text node, but links and code spans split it into several).
type caseState struct {
	seenFirst    bool
	sentenceInit bool
}

var pronounForms = map[string]string{
	"i": "I", "i'm": "I'm", "i've": "I've", "i'll": "I'll", "i'd": "I'd",
}

// applySentenceCase rewrites the Text node literals under children in
// place, tokenizing on whitespace and lowercasing everything except
// sentence-initial words and configured proper nouns. Non-text children
// (code spans, links, images) are treated as opaque tokens: they count toward
// "have we seen a first token yet" but their own content is left alone.
func (s *state) applySentenceCase(children []*hdast.Node, cs *caseState, nouns propernouns.Set) {
	var walk func(nodes []*hdast.Node)
	walk = func(nodes []*hdast.Node) {
		for _, n := range nodes {
			switch n.Kind {
			case hdast.KindText:
				n.TextLiteral = sentenceCaseText(n.TextLiteral, cs, nouns)
				for _, c := range n.Children {
					if c.Kind == hdast.KindSoftBreak {
						cs.sentenceInit = false
					}
				}
			case hdast.KindSoftBreak, hdast.KindHardBreak:
				// word boundary only, no case effect
			default:
				cs.seenFirst = true
				walk(n.Children)
			}
		}
	}
	walk(children)
}

// sentenceCaseText applies the word-by-word casing rules to one run of
// plain text. Multi-word proper-noun phrases (e.g. "GitHub Actions",
// "United States") are located first as protected byte spans and emitted
// verbatim in their canonical casing, so the per-word loop that follows
// never re-tokenizes and re-lowercases their internal words.
func sentenceCaseText(text string, cs *caseState, nouns propernouns.Set) string {
	spans := protectedPhraseSpans(text, nouns)
	spanIdx := 0

	var b strings.Builder
	i := 0
	n := len(text)
	for i < n {
		if spanIdx < len(spans) && i == spans[spanIdx].start {
			sp := spans[spanIdx]
			b.WriteString(sp.canonical)
			cs.seenFirst = true
			cs.sentenceInit = false
			i = sp.end
			spanIdx++
			continue
		}
		r := []rune(text[i:])
		c := r[0]
		switch {
		case unicode.IsSpace(c):
			b.WriteRune(c)
			i += len(string(c))
		case c == ':' || c == ';' || c == '—' || c == '–':
			b.WriteRune(c)
			cs.sentenceInit = true
			i += len(string(c))
		default:
			word, rest := takeWord(text[i:])
			if word == "" {
				b.WriteRune(c)
				i += len(string(c))
				continue
			}
			b.WriteString(caseWord(word, cs, nouns))
			cs.seenFirst = true
			cs.sentenceInit = false
			i += len(text[i:]) - len(rest)
		}
	}
	return b.String()
}

// protectedSpan marks a byte range of text occupied by a multi-word
// proper-noun match, to be emitted as canonical verbatim rather than
// tokenized word by word.
type protectedSpan struct {
	start, end int
	canonical  string
}

// protectedPhraseSpans finds every non-overlapping, word-boundary,
// case-insensitive occurrence of a multi-word proper noun in text, longest
// entry first so "GitHub Actions" claims its span before "GitHub" could.
func protectedPhraseSpans(text string, nouns propernouns.Set) []protectedSpan {
	lowerText := strings.ToLower(text)
	occupied := make([]bool, len(text))
	var spans []protectedSpan

	for _, phrase := range nouns.MultiWordEntries() {
		lowerPhrase := strings.ToLower(phrase)
		searchFrom := 0
		for searchFrom <= len(lowerText)-len(lowerPhrase) {
			idx := strings.Index(lowerText[searchFrom:], lowerPhrase)
			if idx < 0 {
				break
			}
			start := searchFrom + idx
			end := start + len(phrase)
			searchFrom = start + 1

			if !wordBoundaryOK(text, start, end) {
				continue
			}
			if spanOverlaps(occupied, start, end) {
				continue
			}
			for i := start; i < end; i++ {
				occupied[i] = true
			}
			spans = append(spans, protectedSpan{start: start, end: end, canonical: phrase})
		}
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	return spans
}

func spanOverlaps(occupied []bool, start, end int) bool {
	for i := start; i < end; i++ {
		if occupied[i] {
			return true
		}
	}
	return false
}

// takeWord consumes a run of letters, digits, apostrophes, and hyphens
// from the front of s, returning the word and the remainder. A dotted
// acronym (U.S.A., Ph.D., e.g.) is checked first so it comes back as one
// token instead of single letters split on the periods.
func takeWord(s string) (word, rest string) {
	if dotted, ok := takeDottedAcronym(s); ok {
		return dotted, s[len(dotted):]
	}
	i := 0
	for i < len(s) {
		r := []rune(s[i:])[0]
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' || r == '’' {
			i += len(string(r))
			continue
		}
		break
	}
	return s[:i], s[i:]
}

// takeDottedAcronym recognizes a run of two or more letter/digit segments
// each immediately followed by a period, with no other separator between
// segments (U.S.A., Ph.D., e.g.). An ordinary word followed by a single
// sentence-ending period only ever produces one segment and is rejected,
// leaving that period for the caller to emit on its own.
func takeDottedAcronym(s string) (word string, ok bool) {
	i, segments := 0, 0
	for {
		start := i
		for i < len(s) {
			r := []rune(s[i:])[0]
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				break
			}
			i += len(string(r))
		}
		if i == start {
			break
		}
		segments++
		if i < len(s) && s[i] == '.' {
			i++
			continue
		}
		break
	}
	if segments >= 2 && i > 0 && s[i-1] == '.' {
		return s[:i], true
	}
	return "", false
}

func wordBoundaryOK(text string, start, end int) bool {
	if start > 0 && isWordRune(rune(text[start-1])) {
		return false
	}
	if end < len(text) && isWordRune(rune(text[end])) {
		return false
	}
	return true
}

// caseWord applies the per-word preservation rules, then the
// first-word/sentence-initial/subsequent lowercase rule.
func caseWord(word string, cs *caseState, nouns propernouns.Set) string {
	lower := strings.ToLower(word)
	if canon, ok := pronounForms[lower]; ok {
		return canon
	}
	if canon, ok := nouns.Lookup(word); ok {
		return canon
	}
	if !containsLatin(word) {
		return word
	}
	if strings.Contains(word, ".") {
		return word // acronym with internal periods, e.g. U.S.A., Ph.D.
	}
	if isAllUpperIgnoringTrailingS(word) {
		return word
	}
	if strings.Contains(word, "-") {
		segments := strings.Split(word, "-")
		for i, seg := range segments {
			segCS := &caseState{seenFirst: cs.seenFirst || i > 0, sentenceInit: cs.sentenceInit && i == 0}
			segments[i] = caseWordSimple(seg, segCS, nouns)
		}
		return strings.Join(segments, "-")
	}
	return caseWordSimple(word, cs, nouns)
}

func caseWordSimple(word string, cs *caseState, nouns propernouns.Set) string {
	if word == "" {
		return word
	}
	lower := strings.ToLower(word)
	if canon, ok := pronounForms[lower]; ok {
		return canon
	}
	if canon, ok := nouns.Lookup(word); ok {
		return canon
	}
	if isAllUpperIgnoringTrailingS(word) {
		return word
	}
	if !cs.seenFirst || cs.sentenceInit {
		if isAllLower(word) {
			return capitalizeFirst(word)
		}
		return word
	}
	return lower
}

func containsLatin(word string) bool {
	for _, r := range word {
		if unicode.Is(unicode.Latin, r) {
			return true
		}
	}
	return false
}

func isAllLower(word string) bool {
	seenLetter := false
	for _, r := range word {
		if unicode.IsLetter(r) {
			seenLetter = true
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return seenLetter
}

func isAllUpperIgnoringTrailingS(word string) bool {
	core := word
	if strings.HasSuffix(core, "'s") {
		core = strings.TrimSuffix(core, "'s")
	} else if strings.HasSuffix(core, "s") && len(core) > 1 {
		core = strings.TrimSuffix(core, "s")
	}
	letters := 0
	for _, r := range core {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return letters >= 2
}

func capitalizeFirst(word string) string {
	r := []rune(word)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
