package command

import (
	"context"
	"testing"

	"github.com/atomicstack/uwmips-editor/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	messages []string
}

func (r *recorder) Alert(message string) { r.messages = append(r.messages, message) }

func execute(t *testing.T, req Request) Result {
	t.Helper()
	cmd := New().Execute(context.Background(), req)
	require.NotNil(t, cmd)
	res, ok := cmd().(Result)
	require.True(t, ok, "expected Result message")
	return res
}

func TestExecuteCallsExport(t *testing.T) {
	host := &recorder{}
	res := execute(t, Request{
		ID:     "demo",
		Module: module.NewUWMIPS(host),
		Export: module.ExportGreet,
		Arg:    "boi",
	})
	require.NoError(t, res.Err)
	assert.Equal(t, Result{ID: "demo", Export: module.ExportGreet, Arg: "boi"}, res)
	assert.Equal(t, []string{"Hello, boi!"}, host.messages)
}

func TestExecuteReportsMissingExport(t *testing.T) {
	res := execute(t, Request{
		ID:     "demo",
		Module: module.NewUWMIPS(&recorder{}),
		Export: "assemble",
	})
	assert.ErrorIs(t, res.Err, module.ErrNoExport)
}

func TestExecuteWithoutModule(t *testing.T) {
	res := execute(t, Request{ID: "demo", Export: "greet"})
	assert.ErrorIs(t, res.Err, ErrNoModule)
}
