package module

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const helperEnv = "UWMIPS_HELPER_MODULE"

// TestHelperModuleProcess is not a real test: it is the child side when the
// test binary re-executes itself as an out-of-process module.
func TestHelperModuleProcess(t *testing.T) {
	if os.Getenv(helperEnv) != "1" {
		return
	}
	if err := Serve(context.Background(), os.Stdin, os.Stdout, NewUWMIPS); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	os.Exit(0)
}

func helperExec() Exec {
	return Exec{
		Path:             os.Args[0],
		Args:             []string{"-test.run=^TestHelperModuleProcess$"},
		Env:              []string{helperEnv + "=1"},
		HandshakeTimeout: 10 * time.Second,
	}
}

type syncRecorder struct {
	mu     sync.Mutex
	alerts []string
}

func (r *syncRecorder) Alert(message string) {
	r.mu.Lock()
	r.alerts = append(r.alerts, message)
	r.mu.Unlock()
}

func (r *syncRecorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.alerts...)
}

func TestExecAcquireAndCall(t *testing.T) {
	rec := &syncRecorder{}
	mod, err := helperExec().Acquire(context.Background(), rec)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mod.Close() })

	assert.Equal(t, Name, mod.Name())
	assert.Equal(t, []string{ExportGreet}, mod.Exports())

	require.NoError(t, Call(context.Background(), mod, ExportGreet, "boi"))
	require.NoError(t, Call(context.Background(), mod, ExportGreet, "again"))
	assert.Equal(t, []string{"Hello, boi!", "Hello, again!"}, rec.snapshot())

	err = Call(context.Background(), mod, "assemble", "")
	assert.True(t, errors.Is(err, ErrNoExport))

	require.NoError(t, mod.Close())
	err = Call(context.Background(), mod, ExportGreet, "late")
	assert.True(t, errors.Is(err, ErrClosed))
	require.NoError(t, mod.Close(), "close is idempotent")
}

func TestExecAcquireMissingBinary(t *testing.T) {
	t.Parallel()

	_, err := Exec{Path: "/nonexistent/uwmips-module"}.Acquire(context.Background(), &syncRecorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start module")
}

func TestExecAcquireBadHandshake(t *testing.T) {
	t.Parallel()

	echo, err := exec.LookPath("echo")
	if err != nil {
		t.Skip("echo not available")
	}
	_, err = Exec{Path: echo, Args: []string{"notjson"}, HandshakeTimeout: 5 * time.Second}.Acquire(context.Background(), &syncRecorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "handshake")

	_, err = Exec{Path: echo, Args: []string{`{"exports":["greet"]}`}, HandshakeTimeout: 5 * time.Second}.Acquire(context.Background(), &syncRecorder{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "without a module name")
}

func TestExecAcquireHandshakeTimeout(t *testing.T) {
	t.Parallel()

	cat, err := exec.LookPath("cat")
	if err != nil {
		t.Skip("cat not available")
	}
	_, err = Exec{Path: cat, HandshakeTimeout: 50 * time.Millisecond}.Acquire(context.Background(), &syncRecorder{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHandshakeTimeout))
}

func TestExecAcquireNilHost(t *testing.T) {
	t.Parallel()

	_, err := helperExec().Acquire(context.Background(), nil)
	require.Error(t, err)
}
