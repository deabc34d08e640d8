// Package config loads .hongdown.toml files and merges them with built-in
// defaults and command-line overrides. Merge precedence is flags over file
// over defaults, per the file-discovery and merge rules of the tools this
// project's stack favors for configuration (BurntSushi/toml; Load rejects
// any key the decode leaves in MetaData.Undecoded, so a typo in a config
// file surfaces immediately rather than being silently ignored).
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/BurntSushi/toml"

	"hongdown.dev/hongdown"
)

// FileConfig mirrors hongdown.Options in TOML-friendly shape. Every field
// is a pointer or a zero-value-distinguishable type so Merge can tell
// "not set in the file" apart from "explicitly set to the zero value".
type FileConfig struct {
	LineWidth *int `toml:"line_width"`

	// Include and Exclude are glob patterns, resolved relative to the
	// config file's directory, that let a project pin which files a
	// bare "hongdown" invocation (no paths on the command line) formats.
	// Empty Include means the CLI collects nothing from the config and,
	// without named files, reads stdin.
	Include []string `toml:"include"`
	Exclude []string `toml:"exclude"`

	Heading       *HeadingConfig       `toml:"heading"`
	List          *ListConfig          `toml:"list"`
	OrderedList   *OrderedListConfig   `toml:"ordered_list"`
	CodeBlock     *CodeBlockConfig     `toml:"code_block"`
	ThematicBreak *ThematicBreakConfig `toml:"thematic_break"`
	Punctuation   *PunctuationConfig   `toml:"punctuation"`
}

type HeadingConfig struct {
	SetextH1     *bool    `toml:"setext_h1"`
	SetextH2     *bool    `toml:"setext_h2"`
	SentenceCase *bool    `toml:"sentence_case"`
	ProperNouns  []string `toml:"proper_nouns"`
	CommonNouns  []string `toml:"common_nouns"`
}

type ListConfig struct {
	UnorderedMarker *string `toml:"unordered_marker"`
	LeadingSpaces   *int    `toml:"leading_spaces"`
	TrailingSpaces  *int    `toml:"trailing_spaces"`
	IndentWidth     *int    `toml:"indent_width"`
}

type OrderedListConfig struct {
	OddLevelMarker  *string `toml:"odd_level_marker"`
	EvenLevelMarker *string `toml:"even_level_marker"`
	Pad             *string `toml:"pad"`
	IndentWidth     *int    `toml:"indent_width"`
}

type CodeFormatterConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
	Timeout string   `toml:"timeout"`
}

type CodeBlockConfig struct {
	FenceChar       *string                        `toml:"fence_char"`
	MinFenceLength  *int                           `toml:"min_fence_length"`
	SpaceAfterFence *bool                          `toml:"space_after_fence"`
	DefaultLanguage *string                        `toml:"default_language"`
	Formatters      map[string]CodeFormatterConfig `toml:"formatters"`
}

type ThematicBreakConfig struct {
	Style         *string `toml:"style"`
	LeadingSpaces *int    `toml:"leading_spaces"`
}

type PunctuationConfig struct {
	CurlyDoubleQuotes *bool   `toml:"curly_double_quotes"`
	CurlySingleQuotes *bool   `toml:"curly_single_quotes"`
	CurlyApostrophes  *bool   `toml:"curly_apostrophes"`
	Ellipsis          *bool   `toml:"ellipsis"`
	EnDash            *string `toml:"en_dash"`
	EmDash            *string `toml:"em_dash"`
}

// FileName is the config file hongdown discovers by walking up from the
// current directory, mirroring the dotfile-in-cwd-or-ancestor convention.
const FileName = ".hongdown.toml"

// Discover walks up from dir looking for FileName, returning "" if none is
// found by the time it reaches the filesystem root.
func Discover(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Load decodes a TOML config file, rejecting unknown keys so a misspelled
// option is caught rather than silently ignored.
func Load(path string) (FileConfig, error) {
	var fc FileConfig
	meta, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return FileConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("config: %s: unknown key %q", path, undecoded[0].String())
	}
	return fc, nil
}

// CollectFiles expands fc.Include into a sorted, deduplicated list of
// regular files under baseDir, then drops any that match an fc.Exclude
// pattern. Patterns are joined onto baseDir before matching, so a config
// file's include/exclude list is always relative to its own directory
// rather than the process's working directory. An empty Include list
// returns no files: the CLI then falls back to reading stdin.
func CollectFiles(baseDir string, fc FileConfig) ([]string, error) {
	if len(fc.Include) == 0 {
		return nil, nil
	}

	seen := map[string]bool{}
	var files []string
	for _, pattern := range fc.Include {
		matches, err := filepath.Glob(filepath.Join(baseDir, pattern))
		if err != nil {
			return nil, fmt.Errorf("config: include pattern %q: %w", pattern, err)
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}
	sort.Strings(files)

	if len(fc.Exclude) == 0 {
		return files, nil
	}
	kept := files[:0]
	for _, f := range files {
		excluded := false
		for _, pattern := range fc.Exclude {
			ok, err := filepath.Match(filepath.Join(baseDir, pattern), f)
			if err != nil {
				return nil, fmt.Errorf("config: exclude pattern %q: %w", pattern, err)
			}
			if ok {
				excluded = true
				break
			}
		}
		if !excluded {
			kept = append(kept, f)
		}
	}
	return kept, nil
}

// Merge layers fc over base, returning a new Options. base is normally
// hongdown.DefaultOptions(); the caller then layers CLI flag overrides on
// top of the result, since flags win over the file per the project's
// configuration precedence.
func Merge(base hongdown.Options, fc FileConfig) hongdown.Options {
	out := base

	if fc.LineWidth != nil {
		out.LineWidth = *fc.LineWidth
	}
	if h := fc.Heading; h != nil {
		if h.SetextH1 != nil {
			out.Heading.SetextH1 = *h.SetextH1
		}
		if h.SetextH2 != nil {
			out.Heading.SetextH2 = *h.SetextH2
		}
		if h.SentenceCase != nil {
			out.Heading.SentenceCase = *h.SentenceCase
		}
		if h.ProperNouns != nil {
			out.Heading.ProperNouns = h.ProperNouns
		}
		if h.CommonNouns != nil {
			out.Heading.CommonNouns = h.CommonNouns
		}
	}
	if l := fc.List; l != nil {
		if l.UnorderedMarker != nil && len(*l.UnorderedMarker) > 0 {
			out.List.UnorderedMarker = hongdown.UnorderedMarker((*l.UnorderedMarker)[0])
		}
		if l.LeadingSpaces != nil {
			out.List.LeadingSpaces = *l.LeadingSpaces
		}
		if l.TrailingSpaces != nil {
			out.List.TrailingSpaces = *l.TrailingSpaces
		}
		if l.IndentWidth != nil {
			out.List.IndentWidth = *l.IndentWidth
		}
	}
	if ol := fc.OrderedList; ol != nil {
		if ol.OddLevelMarker != nil && len(*ol.OddLevelMarker) > 0 {
			out.OrderedList.OddLevelMarker = hongdown.OrderedSeparator((*ol.OddLevelMarker)[0])
		}
		if ol.EvenLevelMarker != nil && len(*ol.EvenLevelMarker) > 0 {
			out.OrderedList.EvenLevelMarker = hongdown.OrderedSeparator((*ol.EvenLevelMarker)[0])
		}
		if ol.Pad != nil {
			if *ol.Pad == "end" {
				out.OrderedList.Pad = hongdown.PadEnd
			} else {
				out.OrderedList.Pad = hongdown.PadStart
			}
		}
		if ol.IndentWidth != nil {
			out.OrderedList.IndentWidth = *ol.IndentWidth
		}
	}
	if cb := fc.CodeBlock; cb != nil {
		if cb.FenceChar != nil && len(*cb.FenceChar) > 0 {
			out.CodeBlock.FenceChar = hongdown.FenceChar((*cb.FenceChar)[0])
		}
		if cb.MinFenceLength != nil {
			out.CodeBlock.MinFenceLength = *cb.MinFenceLength
		}
		if cb.SpaceAfterFence != nil {
			out.CodeBlock.SpaceAfterFence = *cb.SpaceAfterFence
		}
		if cb.DefaultLanguage != nil {
			out.CodeBlock.DefaultLanguage = *cb.DefaultLanguage
		}
		if cb.Formatters != nil {
			out.CodeBlock.Formatters = make(map[string]hongdown.CodeFormatterSpec, len(cb.Formatters))
			for lang, f := range cb.Formatters {
				spec := hongdown.CodeFormatterSpec{Command: f.Command, Args: f.Args}
				if f.Timeout != "" {
					if d, err := time.ParseDuration(f.Timeout); err == nil {
						spec.Timeout = d
					}
				}
				out.CodeBlock.Formatters[lang] = spec
			}
		}
	}
	if tb := fc.ThematicBreak; tb != nil {
		if tb.Style != nil {
			out.ThematicBreak.Style = hongdown.ThematicBreakStyle(*tb.Style)
		}
		if tb.LeadingSpaces != nil {
			out.ThematicBreak.LeadingSpaces = *tb.LeadingSpaces
		}
	}
	if p := fc.Punctuation; p != nil {
		if p.CurlyDoubleQuotes != nil {
			out.Punctuation.CurlyDoubleQuotes = *p.CurlyDoubleQuotes
		}
		if p.CurlySingleQuotes != nil {
			out.Punctuation.CurlySingleQuotes = *p.CurlySingleQuotes
		}
		if p.CurlyApostrophes != nil {
			out.Punctuation.CurlyApostrophes = *p.CurlyApostrophes
		}
		if p.Ellipsis != nil {
			out.Punctuation.Ellipsis = *p.Ellipsis
		}
		if p.EnDash != nil {
			out.Punctuation.EnDash = *p.EnDash
		}
		if p.EmDash != nil {
			out.Punctuation.EmDash = *p.EmDash
		}
	}
	return out
}
