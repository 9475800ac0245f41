package ui

import (
	"fmt"
	"time"

	"github.com/atomicstack/uwmips-editor/internal/gate"
	"github.com/atomicstack/uwmips-editor/internal/logging"
	"github.com/atomicstack/uwmips-editor/internal/logging/events"
	"github.com/atomicstack/uwmips-editor/internal/module"
	"github.com/atomicstack/uwmips-editor/internal/ui/command"
	tea "github.com/charmbracelet/bubbletea"
)

// moduleSettledMsg carries the outcome of one acquisition.
type moduleSettledMsg struct {
	result  gate.Result
	elapsed time.Duration
}

type clipboardCopiedMsg struct {
	bytes int
	err   error
}

// startLoad begins an acquisition unless one is in flight or already done.
func (m *Model) startLoad() tea.Cmd {
	if err := m.gate.Begin(); err != nil {
		events.Module.LoadGuarded(m.gate.State().String())
		return nil
	}
	events.Module.LoadStart(sourceOf(m.acquirer), m.gate.Attempts())
	return tea.Batch(m.acquireCmd(), m.spinner.Tick)
}

func (m *Model) acquireCmd() tea.Cmd {
	ctx, acq, host := m.ctx, m.acquirer, m.alertHost()
	started := time.Now()
	return func() tea.Msg {
		res := gate.Acquire(ctx, acq, host)
		return moduleSettledMsg{result: res, elapsed: time.Since(started)}
	}
}

func (m *Model) handleModuleSettledMsg(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(moduleSettledMsg)
	if !ok {
		return nil
	}
	if err := m.gate.Settle(settled.result); err != nil {
		if settled.result.Module != nil {
			_ = settled.result.Module.Close()
		}
		logging.Error(err)
		return nil
	}
	if err := m.gate.Err(); err != nil {
		logging.Error(fmt.Errorf("module acquisition: %w", err))
		events.Module.LoadSettled("", settled.elapsed, err)
		return nil
	}
	mod, _ := m.gate.Module()
	events.Module.LoadSettled(mod.Name(), settled.elapsed, nil)
	return nil
}

// runDemo calls the greet export once. It never touches the gate.
func (m *Model) runDemo() tea.Cmd {
	if m.gate.State() != gate.Ready {
		return nil
	}
	mod, ok := m.gate.Module()
	if !ok {
		return nil
	}
	m.errMsg = ""
	return m.bus.Execute(m.ctx, command.Request{
		ID:     demoRequestID,
		Module: mod,
		Export: module.ExportGreet,
		Arg:    demoArg,
	})
}

func (m *Model) handleCommandResultMsg(msg tea.Msg) tea.Cmd {
	result, ok := msg.(command.Result)
	if !ok {
		return nil
	}
	if result.Err != nil {
		m.errMsg = result.Err.Error()
		m.infoMsg = ""
		events.Action.Error(result.Err)
		return nil
	}
	info := fmt.Sprintf("Called %s(%q)", result.Export, result.Arg)
	m.infoMsg = info
	events.Action.Success(info)
	return nil
}

func (m *Model) copyBuffer() tea.Cmd {
	text, write := m.editor.Value(), m.clipboard
	return func() tea.Msg {
		return clipboardCopiedMsg{bytes: len(text), err: write(text)}
	}
}

func (m *Model) handleClipboardCopiedMsg(msg tea.Msg) tea.Cmd {
	copied, ok := msg.(clipboardCopiedMsg)
	if !ok {
		return nil
	}
	events.Editor.Copy(copied.bytes, copied.err)
	if copied.err != nil {
		m.errMsg = fmt.Sprintf("Copy failed: %v", copied.err)
		m.infoMsg = ""
		return nil
	}
	m.errMsg = ""
	m.infoMsg = fmt.Sprintf("Copied %d bytes", copied.bytes)
	return nil
}

func sourceOf(acq module.Acquirer) string {
	if acq == nil {
		return ""
	}
	return acq.Source()
}
