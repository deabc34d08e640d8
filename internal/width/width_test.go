package width

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuneWidthASCII(t *testing.T) {
	assert.Equal(t, 1, RuneWidth('a'))
	assert.Equal(t, 1, RuneWidth('9'))
}

func TestRuneWidthEastAsianWide(t *testing.T) {
	assert.Equal(t, 2, RuneWidth('日'))
	assert.Equal(t, 2, RuneWidth('本'))
}

func TestRuneWidthCombiningMarkIsZero(t *testing.T) {
	assert.Equal(t, 0, RuneWidth(0x0301)) // combining acute accent
}

func TestRuneWidthZeroWidthJoinerIsZero(t *testing.T) {
	assert.Equal(t, 0, RuneWidth(0x200D))
}

func TestStringPlainASCII(t *testing.T) {
	assert.Equal(t, 5, String("hello"))
}

func TestStringEastAsianWide(t *testing.T) {
	assert.Equal(t, 6, String("日本語"))
}

func TestStringCombiningMarkDoesNotAddWidth(t *testing.T) {
	// "e" followed by a combining acute accent (decomposed form) renders
	// as one visual column, not two.
	assert.Equal(t, 1, String("e\u0301"))
}

func TestStringStripsANSIEscapes(t *testing.T) {
	colored := "\x1b[31mred\x1b[0m"
	assert.Equal(t, 3, String(colored))
}

func TestStringEmptyIsZero(t *testing.T) {
	assert.Equal(t, 0, String(""))
}

func TestStripANSI(t *testing.T) {
	colored := "\x1b[31mred\x1b[0m text"
	assert.Equal(t, "red text", StripANSI(colored))
}

func TestHasEscape(t *testing.T) {
	assert.True(t, hasEscape("\x1b[31mred\x1b[0m"))
	assert.False(t, hasEscape("plain text"))
}

func TestIsASCII(t *testing.T) {
	assert.True(t, isASCII("plain text 123"))
	assert.False(t, isASCII("日本語"))
	assert.True(t, isASCII(""))
}

func TestTruncateASCIIFastPath(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello world", 5))
	assert.Equal(t, "hello world", Truncate("hello world", 20))
}

func TestTruncateWideRunes(t *testing.T) {
	// Each of the three runes is 2 columns wide; a limit of 4 keeps
	// exactly two of them.
	assert.Equal(t, "日本", Truncate("日本語", 4))
}

func TestTruncateExactBoundary(t *testing.T) {
	assert.Equal(t, "hello", Truncate("hello", 5))
}

func TestLeadingRuneWidthASCII(t *testing.T) {
	assert.Equal(t, 1, LeadingRuneWidth("abc"))
}

func TestLeadingRuneWidthWide(t *testing.T) {
	assert.Equal(t, 2, LeadingRuneWidth("日本"))
}

func TestLeadingRuneWidthEmpty(t *testing.T) {
	assert.Equal(t, 0, LeadingRuneWidth(""))
}
