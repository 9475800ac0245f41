package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Editor is a named visual theme for the code surface. Token styles are
// keyed by grammar token type; lookups fall back along dotted prefixes.
type Editor struct {
	Name         string
	Text         lipgloss.Style
	Gutter       lipgloss.Style
	GutterActive lipgloss.Style
	ActiveLine   lipgloss.Style
	Cursor       lipgloss.Style
	Tokens       map[string]lipgloss.Style
}

// StyleFor resolves token ("keyword.instruction" → "keyword" → Text).
func (e *Editor) StyleFor(token string) lipgloss.Style {
	for key := token; key != ""; {
		if style, ok := e.Tokens[key]; ok {
			return style
		}
		idx := strings.LastIndexByte(key, '.')
		if idx < 0 {
			break
		}
		key = key[:idx]
	}
	return e.Text
}

// Monokai mirrors the classic dark palette.
func Monokai() *Editor {
	fg := lipgloss.Color("#F8F8F2")
	return &Editor{
		Name:         "monokai",
		Text:         lipgloss.NewStyle().Foreground(fg),
		Gutter:       lipgloss.NewStyle().Foreground(lipgloss.Color("#75715E")),
		GutterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#C2C2BF")),
		ActiveLine:   lipgloss.NewStyle().Background(lipgloss.Color("#3E3D32")),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("#272822")).Background(fg),
		Tokens: map[string]lipgloss.Style{
			"comment":           lipgloss.NewStyle().Foreground(lipgloss.Color("#75715E")).Italic(true),
			"keyword":           lipgloss.NewStyle().Foreground(lipgloss.Color("#F92672")),
			"keyword.directive": lipgloss.NewStyle().Foreground(lipgloss.Color("#66D9EF")).Italic(true),
			"variable":          lipgloss.NewStyle().Foreground(lipgloss.Color("#FD971F")),
			"variable.other":    lipgloss.NewStyle().Foreground(fg),
			"constant.numeric":  lipgloss.NewStyle().Foreground(lipgloss.Color("#AE81FF")),
			"entity.name":       lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E22E")),
			"invalid":           lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F0")).Background(lipgloss.Color("#F92672")),
			"punctuation":       lipgloss.NewStyle().Foreground(fg),
		},
	}
}

// GitHub is a light palette.
func GitHub() *Editor {
	fg := lipgloss.Color("#24292E")
	return &Editor{
		Name:         "github",
		Text:         lipgloss.NewStyle().Foreground(fg),
		Gutter:       lipgloss.NewStyle().Foreground(lipgloss.Color("#BABBBC")),
		GutterActive: lipgloss.NewStyle().Foreground(lipgloss.Color("#24292E")),
		ActiveLine:   lipgloss.NewStyle().Background(lipgloss.Color("#F6F8FA")),
		Cursor:       lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(fg),
		Tokens: map[string]lipgloss.Style{
			"comment":           lipgloss.NewStyle().Foreground(lipgloss.Color("#6A737D")).Italic(true),
			"keyword":           lipgloss.NewStyle().Foreground(lipgloss.Color("#D73A49")).Bold(true),
			"keyword.directive": lipgloss.NewStyle().Foreground(lipgloss.Color("#6F42C1")),
			"variable":          lipgloss.NewStyle().Foreground(lipgloss.Color("#E36209")),
			"variable.other":    lipgloss.NewStyle().Foreground(fg),
			"constant.numeric":  lipgloss.NewStyle().Foreground(lipgloss.Color("#005CC5")),
			"entity.name":       lipgloss.NewStyle().Foreground(lipgloss.Color("#22863A")).Bold(true),
			"invalid":           lipgloss.NewStyle().Foreground(lipgloss.Color("#B31D28")).Underline(true),
		},
	}
}
