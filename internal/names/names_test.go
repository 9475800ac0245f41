package names

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggest(t *testing.T) {
	t.Parallel()

	known := []string{"mips_assembler", "plain_text"}
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "subsequence", input: "mips", want: "mips_assembler"},
		{name: "case folded", input: "PLAIN", want: "plain_text"},
		{name: "typo", input: "mips_assemblre", want: "mips_assembler"},
		{name: "nothing close", input: "cobol", want: ""},
		{name: "empty", input: "  ", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Suggest(tt.input, known))
		})
	}
}

func TestUnknownErrorMessageAndSentinel(t *testing.T) {
	t.Parallel()

	err := Unknown("theme", "monokia", []string{"monokai", "github"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknown))
	assert.Equal(t, `unknown theme "monokia" (did you mean "monokai"?); registered: github, monokai`, err.Error())

	var unknown *UnknownError
	require.True(t, errors.As(err, &unknown))
	assert.Equal(t, "monokia", unknown.Name)
}

func TestUnknownErrorWithEmptyRegistry(t *testing.T) {
	t.Parallel()

	err := Unknown("mode", "anything", nil)
	assert.Equal(t, `unknown mode "anything"; none registered`, err.Error())
}
