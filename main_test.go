package main

import (
	"testing"
	"time"

	"github.com/atomicstack/uwmips-editor/internal/app"
	"github.com/atomicstack/uwmips-editor/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspectTerminalReportsStandardStreams(t *testing.T) {
	info := inspectTerminal()
	require.Len(t, info.Streams, 3)
	for i, name := range []string{"stdin", "stdout", "stderr"} {
		assert.Equal(t, name, info.Streams[i].Stream)
	}
	if info.Size != nil {
		assert.Contains(t, []string{"stdin", "stdout", "stderr"}, info.Size.From)
	}
}

func TestStartupTracePayloadDescribesEditor(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			Width:          80,
			Height:         24,
			Mode:           "mips_assembler",
			Theme:          "github",
			BlockScrolling: true,
			TabSize:        4,
			Module:         "./uwmips-module",
			ModuleTimeout:  5 * time.Second,
			ShowFooter:     true,
		},
		Logging: config.Logging{
			FilePath: "trace.log",
			Trace:    true,
		},
		Flags: map[string]string{"theme": "github", "module": "./uwmips-module"},
		Args:  []string{"-theme", "github", "-module", "./uwmips-module"},
	}

	payload := startupTracePayload(cfg)

	assert.Equal(t, "./uwmips-module", payload["module"])
	assert.Equal(t, "mips_assembler", payload["mode"])
	assert.Equal(t, "github", payload["theme"])
	assert.Equal(t, true, payload["blockScrolling"])
	assert.Equal(t, 4, payload["tabSize"])
	assert.Equal(t, true, payload["footer"])
	assert.Equal(t, map[string]int{"width": 80, "height": 24}, payload["size"])
	assert.Equal(t, true, payload["trace"])
	assert.Equal(t, "trace.log", payload["logFile"])
	assert.Equal(t, cfg.Flags, payload["flags"])
	assert.Equal(t, cfg.Args, payload["args"])
	assert.IsType(t, terminalInfo{}, payload["terminal"])
	assert.NotContains(t, payload, "grammarDir")
}
