package editor

import (
	"errors"
	"fmt"

	"github.com/atomicstack/uwmips-editor/internal/logging/events"
	"github.com/atomicstack/uwmips-editor/internal/syntax"
	"github.com/atomicstack/uwmips-editor/internal/theme"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultTabSize = 4
	fallbackWidth  = 80
	fallbackHeight = 20
)

// Props are options forwarded to the rendering substrate.
type Props struct {
	// BlockScrolling stops SetValue from scrolling the cursor into view.
	BlockScrolling bool
}

// Config configures a Host.
type Config struct {
	Mode  string
	Theme string

	// Width and Height size the surface in cells; zero defers to SetSize.
	Width  int
	Height int

	Props Props

	Grammars *syntax.Registry
	Themes   *theme.Registry

	// Value seeds the buffer.
	Value string

	// TabSize is the number of spaces tab inserts and a tab character renders as.
	TabSize int
}

// Host renders and edits a Buffer.
type Host struct {
	cfg     Config
	grammar *syntax.Grammar
	theme   *theme.Editor
	buf     *Buffer
	keys    KeyMap

	viewport viewport.Model
	xOffset  int
	// pinned holds the viewport where SetValue left it until the next
	// handled key, so resizes do not chase the cursor.
	pinned bool
}

// New resolves cfg.Mode and cfg.Theme and seeds the buffer with cfg.Value.
func New(cfg Config) (*Host, error) {
	if cfg.Grammars == nil {
		return nil, errors.New("editor: no grammar registry configured")
	}
	if cfg.Themes == nil {
		return nil, errors.New("editor: no theme registry configured")
	}
	grammar, err := cfg.Grammars.Lookup(cfg.Mode)
	if err != nil {
		err = fmt.Errorf("editor mode: %w", err)
		events.Editor.ConfigError(err)
		return nil, err
	}
	th, err := cfg.Themes.Lookup(cfg.Theme)
	if err != nil {
		err = fmt.Errorf("editor theme: %w", err)
		events.Editor.ConfigError(err)
		return nil, err
	}
	if cfg.TabSize <= 0 {
		cfg.TabSize = defaultTabSize
	}
	width, height := cfg.Width, cfg.Height
	if width <= 0 {
		width = fallbackWidth
	}
	if height <= 0 {
		height = fallbackHeight
	}
	h := &Host{
		cfg:      cfg,
		grammar:  grammar,
		theme:    th,
		buf:      NewBuffer(""),
		keys:     DefaultKeyMap(),
		viewport: viewport.New(width, height),
	}
	h.SetValue(cfg.Value)
	events.Editor.Mount(grammar.Name(), th.Name, h.buf.LineCount(), cfg.Props.BlockScrolling)
	return h, nil
}

func (h *Host) Value() string { return h.buf.Text() }

// SetValue replaces the buffer and puts the cursor at the end. Unless
// BlockScrolling is set the viewport then scrolls to the cursor.
func (h *Host) SetValue(text string) {
	h.buf.SetText(text)
	h.rebuild()
	h.pinned = h.cfg.Props.BlockScrolling
	if !h.pinned {
		h.followCursor()
	}
}

func (h *Host) Mode() string { return h.grammar.Name() }
func (h *Host) Theme() string { return h.theme.Name }
func (h *Host) Lines() int { return h.buf.LineCount() }
func (h *Host) Props() Props { return h.cfg.Props }
func (h *Host) YOffset() int { return h.viewport.YOffset }
func (h *Host) XOffset() int { return h.xOffset }
func (h *Host) Width() int { return h.viewport.Width }
func (h *Host) Height() int { return h.viewport.Height }
func (h *Host) Keys() KeyMap { return h.keys }
func (h *Host) Version() uint64 { return h.buf.Version() }
func (h *Host) Grammar() *syntax.Grammar { return h.grammar }

// Cursor returns the zero-based row and rune column.
func (h *Host) Cursor() (row, col int) {
	c := h.buf.Cursor()
	return c.Row, c.Col
}

// SetSize resizes the surface. Configured dimensions win over host sizes.
// A pinned viewport only has its offset clamped.
func (h *Host) SetSize(width, height int) {
	if h.cfg.Width > 0 {
		width = h.cfg.Width
	}
	if h.cfg.Height > 0 {
		height = h.cfg.Height
	}
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	h.viewport.Width = width
	h.viewport.Height = height
	h.rebuild()
	if h.pinned {
		h.viewport.SetYOffset(h.viewport.YOffset)
		return
	}
	h.followCursor()
}

// Update applies edit keys and mouse scrolling. Everything else is ignored.
func (h *Host) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if h.handleKey(msg) {
			h.pinned = false
			h.rebuild()
			h.followCursor()
		}
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		h.viewport, cmd = h.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (h *Host) handleKey(msg tea.KeyMsg) bool {
	b := h.buf
	switch {
	case msg.Type == tea.KeyRunes:
		b.Insert(string(msg.Runes))
	case msg.Type == tea.KeySpace:
		b.Insert(" ")
	case key.Matches(msg, h.keys.Enter):
		b.Newline()
	case key.Matches(msg, h.keys.Tab):
		b.Insert(spaces(h.cfg.TabSize))
	case key.Matches(msg, h.keys.Backspace):
		b.Backspace()
	case key.Matches(msg, h.keys.Delete):
		b.Delete()
	case key.Matches(msg, h.keys.Left):
		b.MoveLeft()
	case key.Matches(msg, h.keys.Right):
		b.MoveRight()
	case key.Matches(msg, h.keys.Up):
		b.MoveVertical(-1)
	case key.Matches(msg, h.keys.Down):
		b.MoveVertical(1)
	case key.Matches(msg, h.keys.PageUp):
		b.MoveVertical(-h.viewport.Height)
	case key.Matches(msg, h.keys.PageDown):
		b.MoveVertical(h.viewport.Height)
	case key.Matches(msg, h.keys.Home):
		b.MoveHome()
	case key.Matches(msg, h.keys.End):
		b.MoveEnd()
	case key.Matches(msg, h.keys.Top):
		b.MoveTop()
	case key.Matches(msg, h.keys.Bottom):
		b.MoveBottom()
	default:
		return false
	}
	return true
}

func (h *Host) View() string { return h.viewport.View() }

func (h *Host) rebuild() {
	h.viewport.SetContent(h.render())
}

// followCursor scrolls both axes so the cursor cell is visible.
func (h *Host) followCursor() {
	cur := h.buf.Cursor()
	if height := h.viewport.Height; height > 0 {
		y := h.viewport.YOffset
		if cur.Row < y {
			h.viewport.SetYOffset(cur.Row)
		} else if cur.Row >= y+height {
			h.viewport.SetYOffset(cur.Row - height + 1)
		}
	}
	textWidth := h.textWidth()
	cx := displayWidth([]rune(h.buf.Line(cur.Row))[:cur.Col], h.cfg.TabSize)
	before := h.xOffset
	if cx < h.xOffset {
		h.xOffset = cx
	} else if cx >= h.xOffset+textWidth {
		h.xOffset = cx - textWidth + 1
	}
	if h.xOffset != before {
		h.rebuild()
	}
}
