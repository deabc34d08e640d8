package hongdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescriptionListSingleParagraphDefinition(t *testing.T) {
	src := "Term\n: A single-line definition.\n"
	out, err := Format([]byte(src), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "Term\n:   A single-line definition.\n")
}

func TestDescriptionListMultiBlockDefinitionKeepsCodeBlock(t *testing.T) {
	src := "Term\n: First paragraph.\n\n    ```\n    code line\n    ```\n"
	out, err := Format([]byte(src), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "First paragraph.")
	assert.Contains(t, out, "code line")
}

func TestDescriptionListMultiBlockDefinitionKeepsNestedList(t *testing.T) {
	src := "Term\n: First paragraph.\n\n    - one\n    - two\n"
	out, err := Format([]byte(src), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "First paragraph.")
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "two")
}

func TestDescriptionListMultipleDefinitionsForOneTerm(t *testing.T) {
	src := "Term\n: First meaning.\n: Second meaning.\n"
	out, err := Format([]byte(src), DefaultOptions())
	require.NoError(t, err)
	assert.Contains(t, out, "First meaning.")
	assert.Contains(t, out, "Second meaning.")
}
