package command

import (
	"context"
	"errors"

	"github.com/atomicstack/uwmips-editor/internal/logging/events"
	"github.com/atomicstack/uwmips-editor/internal/module"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrNoModule is reported for a request that has no module to call.
var ErrNoModule = errors.New("command: no module to call")

// Request encapsulates a call into a module export.
type Request struct {
	ID     string
	Module module.Module
	Export string
	Arg    string
}

// Result is the message an executed Request produces.
type Result struct {
	ID     string
	Export string
	Arg    string
	Err    error
}

// Bus coordinates calls into the acquired module.
type Bus struct{}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{}
}

// Execute wraps a module call into a Bubble Tea command while emitting trace logs.
func (b *Bus) Execute(ctx context.Context, req Request) tea.Cmd {
	events.Command.Queue(req.ID, req.Export)
	return func() tea.Msg {
		res := Result{ID: req.ID, Export: req.Export, Arg: req.Arg}
		if req.Module == nil {
			events.Command.Skip(req.ID, req.Export)
			res.Err = ErrNoModule
			return res
		}
		res.Err = module.Call(ctx, req.Module, req.Export, req.Arg)
		outcome := "ok"
		if res.Err != nil {
			outcome = res.Err.Error()
		}
		events.Command.Result(req.ID, req.Export, outcome)
		return res
	}
}
