package hongdown

import (
	"context"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"hongdown.dev/hongdown/internal/codefmt"
	"hongdown.dev/hongdown/internal/frontmatter"
	"hongdown.dev/hongdown/internal/hdast"
	"hongdown.dev/hongdown/internal/mdast"
	"hongdown.dev/hongdown/internal/propernouns"
	"hongdown.dev/hongdown/internal/validate"
)

// Hook is the external code-formatter collaborator: a single method the
// serializer depends on, so callers can supply a subprocess-backed
// implementation, a WASM callback, or a test double.
type Hook = codefmt.Hook

var markdownParser = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
	),
)

// Format renders source in hongdown's house style using opts, discarding
// any warnings. It is a convenience wrapper over FormatWithWarnings.
func Format(source []byte, opts Options) (string, error) {
	out, _, err := FormatWithWarnings(source, opts)
	return out, err
}

// FormatWithWarnings renders source and also returns the recoverable
// diagnostics collected along the way.
func FormatWithWarnings(source []byte, opts Options) (string, []Warning, error) {
	return FormatWithCodeFormatter(source, opts, defaultHook(opts))
}

// FormatWithCodeFormatter renders source using an explicit code-formatter
// hook (nil disables the formatter integration entirely), overriding
// whatever opts.CodeBlock.Formatters would otherwise wire up.
func FormatWithCodeFormatter(source []byte, opts Options, hook Hook) (string, []Warning, error) {
	if err := validate.Input(source); err != nil {
		return "", nil, fmt.Errorf("hongdown: %w", err)
	}

	front, body, hasFront := frontmatter.Split(source)

	root, parseWarnings := mdast.Parse(markdownParser, body)

	nouns := propernouns.Builtin().Merge(opts.Heading.ProperNouns, opts.Heading.CommonNouns)

	st := newState(opts, body, hook, nouns)
	for _, w := range parseWarnings {
		st.warnings = append(st.warnings, Warning{Line: w.Line, Kind: mdastWarningKind(w.Kind), Message: w.Message})
	}

	if hasFront {
		fm := hdast.NewNode(hdast.KindFrontMatter, 1)
		fm.SetText(string(front))
		st.renderBlock(fm)
		st.out.WriteByte('\n')
	}

	st.renderDocument(root)

	return st.finalize(), st.warnings, nil
}

// mdastWarningKind maps a mdast.Warning's string kind (kept string-typed so
// the conversion layer doesn't import this package) onto the root package's
// WarningKind taxonomy.
func mdastWarningKind(kind string) WarningKind {
	if kind == mdast.KindUnknownAlertKind {
		return WarnUnknownAlertKind
	}
	return WarnInvalidDirectiveArgument
}

// defaultHook builds the native subprocess formatter hook from
// opts.CodeBlock.Formatters, or nil if none are configured.
func defaultHook(opts Options) Hook {
	if len(opts.CodeBlock.Formatters) == 0 {
		return nil
	}
	return mapHook{formatters: opts.CodeBlock.Formatters}
}

type mapHook struct {
	formatters map[string]CodeFormatterSpec
}

func (m mapHook) Format(ctx context.Context, language, code string) (string, error) {
	spec, ok := m.formatters[language]
	if !ok {
		return code, nil
	}
	sp := codefmt.Subprocess{Command: spec.Command, Args: spec.Args, Timeout: spec.Timeout}
	return sp.Format(ctx, language, code)
}
