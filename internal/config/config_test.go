package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hongdown.dev/hongdown"
)

func writeFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDiscoverFindsFileInCurrentDir(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "")
	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, FileName), found)
}

func TestDiscoverWalksUpToParent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, FileName, "")
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	found, err := Discover(child)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, FileName), found)
}

func TestDiscoverReturnsEmptyWhenNotFound(t *testing.T) {
	dir := t.TempDir()
	found, err := Discover(dir)
	require.NoError(t, err)
	assert.Equal(t, "", found)
}

func TestLoadDecodesKnownFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, `
line_width = 100

[heading]
setext_h1 = true
`)
	fc, err := Load(path)
	require.NoError(t, err)
	require.NotNil(t, fc.LineWidth)
	assert.Equal(t, 100, *fc.LineWidth)
	require.NotNil(t, fc.Heading)
	require.NotNil(t, fc.Heading.SetextH1)
	assert.True(t, *fc.Heading.SetextH1)
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, `line_wdith = 100`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownNestedKey(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, FileName, "[heading]\nsetex_h1 = true\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	base := hongdown.DefaultOptions()
	width := 100
	fc := FileConfig{LineWidth: &width}
	out := Merge(base, fc)
	assert.Equal(t, 100, out.LineWidth)
	assert.Equal(t, base.List.LeadingSpaces, out.List.LeadingSpaces)
}

func TestMergeLeavesBaseUntouchedWhenFileEmpty(t *testing.T) {
	base := hongdown.DefaultOptions()
	out := Merge(base, FileConfig{})
	assert.Equal(t, base, out)
}

func TestMergeOrderedListPadEndString(t *testing.T) {
	base := hongdown.DefaultOptions()
	end := "end"
	fc := FileConfig{OrderedList: &OrderedListConfig{Pad: &end}}
	out := Merge(base, fc)
	assert.Equal(t, hongdown.PadEnd, out.OrderedList.Pad)
}

func TestMergeUnorderedMarkerTakesFirstByte(t *testing.T) {
	base := hongdown.DefaultOptions()
	marker := "*"
	fc := FileConfig{List: &ListConfig{UnorderedMarker: &marker}}
	out := Merge(base, fc)
	assert.Equal(t, hongdown.MarkerAsterisk, out.List.UnorderedMarker)
}

func TestCollectFilesEmptyIncludeReturnsNil(t *testing.T) {
	dir := t.TempDir()
	files, err := CollectFiles(dir, FileConfig{})
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestCollectFilesExpandsGlobAndSorts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.md", "")
	writeFile(t, dir, "a.md", "")
	writeFile(t, dir, "notes.txt", "")

	files, err := CollectFiles(dir, FileConfig{Include: []string{"*.md"}})
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, filepath.Join(dir, "a.md"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.md"), files[1])
}

func TestCollectFilesSkipsDirectories(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub.md"), 0o755))
	writeFile(t, dir, "real.md", "")

	files, err := CollectFiles(dir, FileConfig{Include: []string{"*.md"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "real.md")}, files)
}

func TestCollectFilesDedupsOverlappingPatterns(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.md", "")

	files, err := CollectFiles(dir, FileConfig{Include: []string{"*.md", "a.*"}})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.md")}, files)
}

func TestCollectFilesAppliesExclude(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "keep.md", "")
	writeFile(t, dir, "draft.md", "")

	files, err := CollectFiles(dir, FileConfig{
		Include: []string{"*.md"},
		Exclude: []string{"draft.md"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "keep.md")}, files)
}
