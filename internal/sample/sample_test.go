package sample

import (
	"strings"
	"testing"

	"github.com/atomicstack/uwmips-editor/internal/syntax"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecSumHighlightsWithoutInvalidTokens(t *testing.T) {
	t.Parallel()

	require.NotEmpty(t, strings.TrimSpace(RecSum))
	g, err := syntax.Builtin().Lookup("mips_assembler")
	require.NoError(t, err)

	labels := 0
	for row, tokens := range g.Tokenize(RecSum) {
		for _, tok := range tokens {
			assert.NotContains(t, tok.Type, "invalid", "row %d: %q", row, tok.Text)
			if tok.Type == "entity.name.label" {
				labels++
			}
		}
	}
	assert.Equal(t, 3, labels)
}
