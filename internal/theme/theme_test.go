package theme

import (
	"errors"
	"testing"

	"github.com/atomicstack/uwmips-editor/internal/names"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStyleForFallsBackAlongDottedPrefixes(t *testing.T) {
	t.Parallel()

	keyword := lipgloss.NewStyle().Bold(true)
	directive := lipgloss.NewStyle().Italic(true)
	text := lipgloss.NewStyle().Underline(true)
	ed := &Editor{
		Name: "test",
		Text: text,
		Tokens: map[string]lipgloss.Style{
			"keyword":           keyword,
			"keyword.directive": directive,
		},
	}

	assert.True(t, ed.StyleFor("keyword.directive").GetItalic())
	assert.True(t, ed.StyleFor("keyword.instruction").GetBold())
	assert.True(t, ed.StyleFor("keyword.instruction.branch").GetBold())
	assert.True(t, ed.StyleFor("comment").GetUnderline())
	assert.True(t, ed.StyleFor("").GetUnderline())
}

func TestBuiltinRegistry(t *testing.T) {
	t.Parallel()

	reg := Builtin()
	assert.Equal(t, []string{"github", "monokai"}, reg.Names())

	mono, err := reg.Lookup("monokai")
	require.NoError(t, err)
	assert.Equal(t, "monokai", mono.Name)
	assert.True(t, mono.StyleFor("comment.line").GetItalic())

	_, err = reg.Lookup("monokia")
	require.Error(t, err)
	assert.True(t, errors.Is(err, names.ErrUnknown))
	assert.Contains(t, err.Error(), `did you mean "monokai"?`)

	require.Error(t, reg.Register(Monokai()))
	require.Error(t, reg.Register(&Editor{}))
	require.NoError(t, reg.Register(&Editor{Name: "plain"}))
	assert.Len(t, Builtin().Names(), 2)
}

func TestDefaultStylesArePopulated(t *testing.T) {
	t.Parallel()

	s := Default()
	for name, style := range map[string]*lipgloss.Style{
		"loading": s.Loading,
		"spinner": s.Spinner,
		"action":  s.Action,
		"error":   s.Error,
		"alert":   s.Alert,
		"footer":  s.Footer,
	} {
		assert.NotNil(t, style, name)
	}
}
