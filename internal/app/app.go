package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/atomicstack/uwmips-editor/internal/editor"
	"github.com/atomicstack/uwmips-editor/internal/format/table"
	"github.com/atomicstack/uwmips-editor/internal/logging"
	"github.com/atomicstack/uwmips-editor/internal/module"
	"github.com/atomicstack/uwmips-editor/internal/sample"
	"github.com/atomicstack/uwmips-editor/internal/syntax"
	"github.com/atomicstack/uwmips-editor/internal/theme"
	"github.com/atomicstack/uwmips-editor/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	Width          int
	Height         int
	Mode           string
	Theme          string
	BlockScrolling bool
	TabSize        int
	GrammarDir     string
	Module         string
	ModuleDelay    time.Duration
	ModuleTimeout  time.Duration
	ShowFooter     bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	model, err := NewModel(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeModule(model)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel wires the registries, sample buffer, and module acquirer into a UI model.
func NewModel(ctx context.Context, cfg Config) (*ui.Model, error) {
	grammars, themes, err := registries(cfg)
	if err != nil {
		return nil, err
	}
	return ui.NewModel(ui.Options{
		Editor: editor.Config{
			Mode:     cfg.Mode,
			Theme:    cfg.Theme,
			Props:    editor.Props{BlockScrolling: cfg.BlockScrolling},
			Grammars: grammars,
			Themes:   themes,
			Value:    sample.RecSum,
			TabSize:  cfg.TabSize,
		},
		Acquirer: module.FromSource(cfg.Module, module.Options{
			Delay:            cfg.ModuleDelay,
			HandshakeTimeout: cfg.ModuleTimeout,
		}),
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Context:    ctx,
	})
}

// List writes the registered modes and themes as a table.
func List(w io.Writer, cfg Config) error {
	grammars, themes, err := registries(cfg)
	if err != nil {
		return err
	}
	rows := [][]string{{"KIND", "NAME", "DETAIL"}}
	for _, name := range grammars.Names() {
		g, err := grammars.Lookup(name)
		if err != nil {
			return err
		}
		detail := g.Language()
		if exts := g.Extensions(); len(exts) > 0 {
			detail += " (" + strings.Join(exts, " ") + ")"
		}
		rows = append(rows, []string{"mode", markDefault(name, cfg.Mode), detail})
	}
	for _, name := range themes.Names() {
		rows = append(rows, []string{"theme", markDefault(name, cfg.Theme), ""})
	}
	return table.Write(w, rows, nil)
}

func markDefault(name, selected string) string {
	if name == selected {
		return name + " *"
	}
	return name
}

func registries(cfg Config) (*syntax.Registry, *theme.Registry, error) {
	grammars := syntax.Builtin()
	if cfg.GrammarDir != "" {
		if err := syntax.LoadDir(grammars, cfg.GrammarDir); err != nil {
			return nil, nil, fmt.Errorf("load grammars: %w", err)
		}
	}
	return grammars, theme.Builtin(), nil
}

// closeModule tears down an acquired module at exit. There is no unload path
// while the program runs.
func closeModule(model *ui.Model) {
	mod, ok := model.Module()
	if !ok {
		return
	}
	if err := mod.Close(); err != nil {
		logging.Error(fmt.Errorf("close module %s: %w", mod.Name(), err))
	}
}
