package ui

import (
	"context"
	"reflect"

	"github.com/atomicstack/uwmips-editor/internal/editor"
	"github.com/atomicstack/uwmips-editor/internal/gate"
	"github.com/atomicstack/uwmips-editor/internal/module"
	"github.com/atomicstack/uwmips-editor/internal/theme"
	"github.com/atomicstack/uwmips-editor/internal/ui/command"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// demoArg is the fixed argument of the demonstration action.
	demoArg       = "boi"
	demoRequestID = "demo"

	alertBuffer = 16
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures NewModel.
type Options struct {
	Editor   editor.Config
	Acquirer module.Acquirer

	// Width and Height pin the shell size. Zero follows the terminal.
	Width  int
	Height int

	ShowFooter bool

	// Context scopes acquisition and module calls. Defaults to context.Background.
	Context context.Context

	// Clipboard receives copied buffer text. Defaults to the system clipboard.
	Clipboard func(string) error
}

// Model implements the Bubble Tea model for the editor shell.
type Model struct {
	editor    *editor.Host
	gate      *gate.Gate
	acquirer  module.Acquirer
	bus       *command.Bus
	ctx       context.Context
	clipboard func(string) error

	keys    keyMap
	help    help.Model
	spinner spinner.Model

	alertCh chan string
	alerts  []string

	errMsg      string
	infoMsg     string
	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	handlers map[reflect.Type]msgHandler
}

// NewModel mounts the editor and creates an Idle gate. Editor configuration
// errors are returned unchanged.
func NewModel(opts Options) (*Model, error) {
	host, err := editor.New(opts.Editor)
	if err != nil {
		return nil, err
	}
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}
	s := spinner.New(spinner.WithSpinner(spinner.Dot))
	if styles.Spinner != nil {
		s.Style = *styles.Spinner
	}
	m := &Model{
		editor:     host,
		gate:       gate.New(),
		acquirer:   opts.Acquirer,
		bus:        command.New(),
		ctx:        ctx,
		clipboard:  write,
		keys:       defaultKeyMap(),
		help:       help.New(),
		spinner:    s,
		alertCh:    make(chan string, alertBuffer),
		showFooter: opts.ShowFooter,
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.help.Width = m.width
	m.layout()
	m.registerHandlers()
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	return waitForAlert(m.alertCh)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if handler := m.handlerFor(msg); handler != nil {
		return m, handler(msg)
	}
	return m, m.editor.Update(msg)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(spinner.TickMsg{}):    m.handleSpinnerTickMsg,
		reflect.TypeOf(moduleSettledMsg{}):   m.handleModuleSettledMsg,
		reflect.TypeOf(command.Result{}):     m.handleCommandResultMsg,
		reflect.TypeOf(alertMsg{}):           m.handleAlertMsg,
		reflect.TypeOf(clipboardCopiedMsg{}): m.handleClipboardCopiedMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return tea.Quit
	case key.Matches(keyMsg, m.keys.Load):
		return m.startLoad()
	case key.Matches(keyMsg, m.keys.Demo):
		return m.runDemo()
	case key.Matches(keyMsg, m.keys.Copy):
		return m.copyBuffer()
	case key.Matches(keyMsg, m.keys.Dismiss) && len(m.alerts) > 0:
		m.dismissAlert()
		return nil
	}
	m.infoMsg = ""
	return m.editor.Update(keyMsg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	size, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = size.Width
	}
	if !m.fixedHeight {
		m.height = size.Height
	}
	m.help.Width = m.width
	m.layout()
	return nil
}

func (m *Model) handleSpinnerTickMsg(msg tea.Msg) tea.Cmd {
	if !m.gate.Loading() {
		return nil
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return cmd
}

// layout gives the editor whatever the chrome leaves over.
func (m *Model) layout() {
	if m.width <= 0 && m.height <= 0 {
		return
	}
	width := m.width
	if width <= 0 {
		width = m.editor.Width()
	}
	height := m.editor.Height()
	if m.height > 0 {
		height = m.height - m.chromeHeight()
	}
	m.editor.SetSize(width, height)
}

// State reports the gate state.
func (m *Model) State() gate.State { return m.gate.State() }

// Module returns the acquired module, if any.
func (m *Model) Module() (module.Module, bool) { return m.gate.Module() }

// Editor exposes the editor host.
func (m *Model) Editor() *editor.Host { return m.editor }
