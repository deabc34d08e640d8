package hongdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplySmartypantsEllipsis(t *testing.T) {
	p := PunctuationOptions{Ellipsis: true}
	assert.Equal(t, "wait…", applySmartypants("wait...", p))
}

func TestApplySmartypantsEllipsisDisabledByDefault(t *testing.T) {
	p := PunctuationOptions{}
	assert.Equal(t, "wait...", applySmartypants("wait...", p))
}

func TestApplySmartypantsEmDash(t *testing.T) {
	p := PunctuationOptions{EmDash: "--"}
	assert.Equal(t, "a—b", applySmartypants("a--b", p))
}

func TestApplySmartypantsEnDash(t *testing.T) {
	p := PunctuationOptions{EnDash: "~"}
	assert.Equal(t, "5–10", applySmartypants("5~10", p))
}

func TestApplySmartypantsCurlyDoubleQuotes(t *testing.T) {
	p := PunctuationOptions{CurlyDoubleQuotes: true}
	assert.Equal(t, "she said “hello” loudly", applySmartypants(`she said "hello" loudly`, p))
}

func TestApplySmartypantsCurlySingleQuotes(t *testing.T) {
	p := PunctuationOptions{CurlySingleQuotes: true}
	assert.Equal(t, "‘quoted’ text", applySmartypants("'quoted' text", p))
}

func TestApplySmartypantsCurlyApostrophes(t *testing.T) {
	p := PunctuationOptions{CurlyApostrophes: true}
	assert.Equal(t, "don’t stop", applySmartypants("don't stop", p))
}

func TestApplySmartypantsApostropheStaysStraightWhenDisabled(t *testing.T) {
	p := PunctuationOptions{}
	assert.Equal(t, "don't stop", applySmartypants("don't stop", p))
}

func TestApplySmartypantsDashRunsBeforeQuotes(t *testing.T) {
	p := PunctuationOptions{EmDash: "--", CurlyDoubleQuotes: true}
	got := applySmartypants(`"a--b"`, p)
	assert.Equal(t, "“a—b”", got)
}

func TestCurlyApostrophesLeavesLeadingApostropheStraight(t *testing.T) {
	got := curlyApostrophes("'twas a dark night")
	assert.Equal(t, "'twas a dark night", got)
}

func TestCurlyApostrophesLeavesTrailingApostropheStraight(t *testing.T) {
	got := curlyApostrophes("the dogs' bowls")
	// Only an apostrophe with a word character on both sides is curled;
	// the plural-possessive trailing apostrophe in "dogs'" has a space
	// after it here, so it stays straight.
	assert.Equal(t, "the dogs' bowls", got)
}

func TestIsWordRune(t *testing.T) {
	assert.True(t, isWordRune('a'))
	assert.True(t, isWordRune('9'))
	assert.False(t, isWordRune(' '))
	assert.False(t, isWordRune('\''))
}
