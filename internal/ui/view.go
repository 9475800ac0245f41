package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/uwmips-editor/internal/gate"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/reflow/truncate"
)

const (
	headerLines     = 1
	affordanceLines = 1
	statusLines     = 1
	footerLines     = 1

	headerSeparator = " · "
	ellipsis        = "…"
)

// View renders the header, editor, alerts, affordance line, status line,
// and footer, top to bottom.
func (m *Model) View() string {
	sections := []string{m.headerView(), m.editor.View()}
	if len(m.alerts) > 0 {
		sections = append(sections, m.alertView())
	}
	sections = append(sections, m.affordanceView(), m.statusView())
	if m.showFooter {
		sections = append(sections, m.footerView())
	}
	return m.clip(strings.Join(sections, "\n"))
}

func (m *Model) chromeHeight() int {
	n := headerLines + affordanceLines + statusLines
	if m.showFooter {
		n += footerLines
	}
	if len(m.alerts) > 0 {
		n += lipgloss.Height(m.alertView())
	}
	return n
}

func (m *Model) headerView() string {
	return render(styles.Header, strings.Join([]string{"uwmips", m.editor.Mode(), m.editor.Theme()}, headerSeparator))
}

// affordanceView shows exactly one of the load action, the progress
// indicator, or the demonstration action.
func (m *Model) affordanceView() string {
	switch m.gate.Affordance() {
	case gate.AffordanceProgress:
		return m.spinner.View() + " " + render(styles.Loading, "Loading...")
	case gate.AffordanceDemo:
		return actionView("ctrl+g", "Click me")
	default:
		line := actionView("ctrl+l", "Load library")
		if err := m.gate.Err(); err != nil {
			line += "  " + render(styles.Error, "Load failed: "+err.Error())
		}
		return line
	}
}

func actionView(binding, label string) string {
	return render(styles.ActionKey, "["+binding+"]") + render(styles.Action, " "+label)
}

func (m *Model) statusView() string {
	switch {
	case m.errMsg != "":
		return render(styles.Error, m.errMsg)
	case m.infoMsg != "":
		return render(styles.Info, m.infoMsg)
	}
	return ""
}

func (m *Model) alertView() string {
	if len(m.alerts) == 0 {
		return ""
	}
	title := render(styles.AlertTitle, "Alert")
	if n := len(m.alerts); n > 1 {
		title += render(styles.Info, fmt.Sprintf(" (1 of %d)", n))
	}
	body := strings.Join([]string{title, m.alerts[0], render(styles.Info, "esc to dismiss")}, "\n")
	return render(styles.Alert, body)
}

func (m *Model) footerView() string {
	keys := m.keys
	keys.Load.SetEnabled(m.gate.State() == gate.Idle)
	keys.Demo.SetEnabled(m.gate.State() == gate.Ready)
	keys.Dismiss.SetEnabled(len(m.alerts) > 0)
	row, col := m.editor.Cursor()
	position := fmt.Sprintf("%s%s%s%sLn %d, Col %d", m.editor.Mode(), headerSeparator, m.editor.Theme(), headerSeparator, row+1, col+1)
	return render(styles.Footer, position) + "  " + m.help.View(keys)
}

// clip truncates every line to the shell width without splitting escape
// sequences.
func (m *Model) clip(view string) string {
	if m.width <= 0 {
		return view
	}
	lines := strings.Split(view, "\n")
	for i, line := range lines {
		if ansi.StringWidth(line) > m.width {
			lines[i] = truncate.StringWithTail(line, uint(m.width-1), ellipsis)
		}
	}
	return strings.Join(lines, "\n")
}

func render(style *lipgloss.Style, text string) string {
	if style == nil {
		return text
	}
	return style.Render(text)
}
