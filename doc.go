// Package hongdown re-emits a CommonMark/GFM document in a fixed,
// opinionated house style.
//
// The package owns the serializer only: it walks a parsed Markdown syntax
// tree (produced internally from github.com/yuin/goldmark) and emits
// formatted Markdown bytes, subject to style rules, a line-width budget
// measured in Unicode display columns, per-element configuration, and
// in-document disable/hint directives.
//
// Core properties:
//   - A single forward walk over the document, after a pre-pass that
//     locates footnote references; list items, definitions and footnotes
//     rewrite the first line of their own just-emitted output to splice
//     in their marker.
//   - Display width measured in Unicode East-Asian-Width columns, not
//     bytes or runes.
//   - Total over any parseable input: the serializer never errors, it
//     collects warnings and keeps going.
//
// Example:
//
//	out, warnings, err := hongdown.FormatWithWarnings([]byte("# hello\n"), hongdown.DefaultOptions())
//	if err != nil {
//		log.Fatal(err)
//	}
//	for _, w := range warnings {
//		log.Printf("line %d: %s", w.Line, w.Message)
//	}
//	os.Stdout.WriteString(out)
package hongdown
