package main

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRunStdinFormatsToStdout(t *testing.T) {
	var out bytes.Buffer
	code := run(nil, strings.NewReader("# Hello\n\nWorld\n"), &out, io.Discard)
	assert.Equal(t, 0, code)
	assert.Equal(t, "# Hello\n\nWorld\n", out.String())
}

func TestRunFilesCheckReportsChanges(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("#  Untidy\nText\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{"--check", path}, nil, &out, io.Discard)
	assert.Equal(t, 1, code)

	unchanged, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "#  Untidy\nText\n", string(unchanged))
}

func TestRunFilesWriteRewritesInPlace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("#  Untidy\nText\n"), 0o644))

	code := run([]string{"--write", path}, nil, io.Discard, io.Discard)
	assert.Equal(t, 0, code)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotEqual(t, "#  Untidy\nText\n", string(got))
}

func TestRunFilesDiffAndWriteAreExclusive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "doc.md")
	require.NoError(t, os.WriteFile(path, []byte("# Hi\n"), 0o644))

	code := run([]string{"--write", "--diff", path}, nil, io.Discard, io.Discard)
	assert.Equal(t, 2, code)
}

func TestResolveOptionsDefaultsWithoutConfig(t *testing.T) {
	dir := t.TempDir()
	opts := resolveOptions("", 0, dir, silentLogger())
	assert.Equal(t, 80, opts.LineWidth)
}

func TestResolveOptionsLineWidthFlagWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".hongdown.toml"), []byte("line_width = 60\n"), 0o644))
	opts := resolveOptions("", 100, dir, silentLogger())
	assert.Equal(t, 100, opts.LineWidth)
}

func TestTryCollectFromConfigUsesIncludePatterns(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.md"), []byte("# A\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("skip"), 0o644))
	configPath := filepath.Join(dir, ".hongdown.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`include = ["*.md"]`+"\n"), 0o644))

	files := tryCollectFromConfig(configPath, silentLogger())
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "a.md"), files[0])
}

func TestTryCollectFromConfigNilWithoutIncludeList(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, ".hongdown.toml")
	require.NoError(t, os.WriteFile(configPath, []byte("line_width = 60\n"), 0o644))

	files := tryCollectFromConfig(configPath, silentLogger())
	assert.Nil(t, files)
}

func TestTryCollectFromConfigNilWhenConfigFileMissing(t *testing.T) {
	dir := t.TempDir()
	files := tryCollectFromConfig(filepath.Join(dir, "does-not-exist.toml"), silentLogger())
	assert.Nil(t, files)
}

// TestRunWithNoArgsUsesConfigIncludeList exercises the whole no-positional-
// arguments path end to end: an explicit --config file names an include
// glob, so run formats the files it names instead of falling back to stdin.
func TestRunWithNoArgsUsesConfigIncludeList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "note.md"), []byte("#  Messy\nText\n"), 0o644))
	configPath := filepath.Join(dir, ".hongdown.toml")
	require.NoError(t, os.WriteFile(configPath, []byte(`include = ["*.md"]`+"\n"), 0o644))

	var out bytes.Buffer
	code := run([]string{"--config", configPath}, nil, &out, io.Discard)
	assert.Equal(t, 0, code)
	assert.Contains(t, out.String(), "# Messy")
}
