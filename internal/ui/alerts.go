package ui

import (
	"context"

	"github.com/atomicstack/uwmips-editor/internal/logging/events"
	"github.com/atomicstack/uwmips-editor/internal/module"
	tea "github.com/charmbracelet/bubbletea"
)

type alertMsg struct {
	message string
}

// alertSink is the module.Host handed to acquirers. Modules alert from
// command goroutines, so it only ever touches the channel.
type alertSink struct {
	ctx context.Context
	ch  chan<- string
}

func (s alertSink) Alert(message string) {
	events.Module.Alert(message)
	select {
	case s.ch <- message:
	case <-s.ctx.Done():
	}
}

func (m *Model) alertHost() module.Host {
	return alertSink{ctx: m.ctx, ch: m.alertCh}
}

func waitForAlert(ch <-chan string) tea.Cmd {
	return func() tea.Msg {
		message, ok := <-ch
		if !ok {
			return nil
		}
		return alertMsg{message: message}
	}
}

func (m *Model) handleAlertMsg(msg tea.Msg) tea.Cmd {
	alert, ok := msg.(alertMsg)
	if !ok {
		return nil
	}
	m.alerts = append(m.alerts, alert.message)
	m.layout()
	return waitForAlert(m.alertCh)
}

func (m *Model) dismissAlert() {
	if len(m.alerts) == 0 {
		return
	}
	m.alerts = m.alerts[1:]
	m.layout()
}

// Alerts returns the alerts still on screen, oldest first.
func (m *Model) Alerts() []string {
	return append([]string(nil), m.alerts...)
}
