package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/uwmips-editor/internal/app"
	"github.com/atomicstack/uwmips-editor/internal/config"
	"github.com/atomicstack/uwmips-editor/internal/logging"
	"github.com/atomicstack/uwmips-editor/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	if runtimeCfg.Features.List {
		if err := app.List(os.Stdout, runtimeCfg.App); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	traceStartup(runtimeCfg)

	err := app.Run(runtimeCfg.App)
	events.App.Exit(err)
	if err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func traceStartup(cfg config.Config) {
	events.App.Start(startupTracePayload(cfg))
}

// startupTracePayload describes the editor about to be mounted, followed by
// the raw flags and terminal state it was started with.
func startupTracePayload(cfg config.Config) map[string]interface{} {
	a := cfg.App
	payload := map[string]interface{}{
		"module":         a.Module,
		"mode":           a.Mode,
		"theme":          a.Theme,
		"blockScrolling": a.BlockScrolling,
		"tabSize":        a.TabSize,
		"footer":         a.ShowFooter,
		"size":           map[string]int{"width": a.Width, "height": a.Height},
		"trace":          cfg.Logging.Trace,
		"logFile":        cfg.Logging.FilePath,
		"flags":          cfg.Flags,
		"args":           cfg.Args,
		"terminal":       inspectTerminal(),
	}
	if a.GrammarDir != "" {
		payload["grammarDir"] = a.GrammarDir
	}
	if wd, err := os.Getwd(); err == nil {
		payload["workdir"] = wd
	}
	return payload
}

// terminalInfo is the size source picked for the initial layout plus the
// state of each standard stream.
type terminalInfo struct {
	Size    *terminalSize  `json:"size,omitempty"`
	Streams []streamStatus `json:"streams"`
}

type terminalSize struct {
	From   string `json:"from"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type streamStatus struct {
	Stream string `json:"stream"`
	TTY    bool   `json:"tty"`
	Err    string `json:"err,omitempty"`
}

func inspectTerminal() terminalInfo {
	streams := []struct {
		name string
		file *os.File
	}{
		{"stdin", os.Stdin},
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
	}
	var info terminalInfo
	for _, s := range streams {
		status := streamStatus{Stream: s.name}
		fd := int(s.file.Fd())
		if term.IsTerminal(fd) {
			status.TTY = true
			width, height, err := term.GetSize(fd)
			switch {
			case err != nil:
				status.Err = err.Error()
			case info.Size == nil:
				info.Size = &terminalSize{From: s.name, Width: width, Height: height}
			}
		}
		info.Streams = append(info.Streams, status)
	}
	return info
}
