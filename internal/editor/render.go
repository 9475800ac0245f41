package editor

import (
	"fmt"
	"strings"

	"github.com/atomicstack/uwmips-editor/internal/syntax"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const minGutterDigits = 2

func (h *Host) gutterWidth() int {
	digits := len(fmt.Sprint(h.buf.LineCount()))
	if digits < minGutterDigits {
		digits = minGutterDigits
	}
	return digits + 1
}

func (h *Host) textWidth() int {
	w := h.viewport.Width - h.gutterWidth()
	if w < 1 {
		w = 1
	}
	return w
}

// render draws every line: gutter, highlighted text clipped to the
// horizontal window, and the cursor cell.
func (h *Host) render() string {
	tokens := h.grammar.Tokenize(h.buf.Text())
	cur := h.buf.Cursor()
	gutterDigits := h.gutterWidth() - 1
	textWidth := h.textWidth()

	rows := make([]string, h.buf.LineCount())
	for row := range rows {
		active := row == cur.Row
		gutterStyle := h.theme.Gutter
		if active {
			gutterStyle = h.theme.GutterActive
		}
		var b strings.Builder
		b.WriteString(gutterStyle.Render(fmt.Sprintf("%*d ", gutterDigits, row+1)))
		cursorCol := -1
		if active {
			cursorCol = cur.Col
		}
		b.WriteString(h.renderText(tokens[row], cursorCol, textWidth))
		rows[row] = b.String()
	}
	return strings.Join(rows, "\n")
}

func (h *Host) renderText(tokens []syntax.Token, cursorCol, width int) string {
	active := cursorCol >= 0
	var b strings.Builder
	col := 0
	end := h.xOffset + width
	lineLen := 0
	if n := len(tokens); n > 0 {
		lineLen = tokens[n-1].End
	}

	style := func(token string) lipgloss.Style {
		st := h.theme.StyleFor(token)
		if active {
			st = st.Inherit(h.theme.ActiveLine)
		}
		return st
	}

outer:
	for _, tok := range tokens {
		st := style(tok.Type)
		var run strings.Builder
		flush := func() {
			if run.Len() > 0 {
				b.WriteString(st.Render(run.String()))
				run.Reset()
			}
		}
		for i, r := range []rune(tok.Text) {
			idx := tok.Start + i
			w := runeWidth(r, h.cfg.TabSize)
			if col < h.xOffset {
				col += w
				continue
			}
			if col+w > end {
				flush()
				break outer
			}
			cell := string(r)
			if r == '\t' {
				cell = spaces(w)
			}
			if idx == cursorCol {
				flush()
				b.WriteString(h.theme.Cursor.Render(cell))
			} else {
				run.WriteString(cell)
			}
			col += w
		}
		flush()
	}
	if active && cursorCol == lineLen && col >= h.xOffset && col < end {
		b.WriteString(h.theme.Cursor.Render(" "))
		col++
	}
	if active {
		if pad := end - maxInt(col, h.xOffset); pad > 0 {
			b.WriteString(h.theme.ActiveLine.Render(spaces(pad)))
		}
	}
	return b.String()
}

func runeWidth(r rune, tabSize int) int {
	if r == '\t' {
		return tabSize
	}
	return runewidth.RuneWidth(r)
}

func displayWidth(runes []rune, tabSize int) int {
	w := 0
	for _, r := range runes {
		w += runeWidth(r, tabSize)
	}
	return w
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
