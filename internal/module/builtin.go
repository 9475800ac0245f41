package module

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"
)

const (
	// Name is the module name the uwmips unit reports.
	Name = "uwmips"
	// Version is reported in the exec handshake.
	Version = "0.1.0"
	// ExportGreet alerts a greeting for its argument.
	ExportGreet = "greet"
)

// Builtin acquires the uwmips module in-process.
type Builtin struct {
	// Delay simulates the cost of loading a heavy unit.
	Delay time.Duration
}

func (Builtin) Source() string { return SourceBuiltin }

func (b Builtin) Acquire(ctx context.Context, host Host) (Module, error) {
	if host == nil {
		return nil, errors.New("acquire uwmips: nil host")
	}
	if b.Delay > 0 {
		timer := time.NewTimer(b.Delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("acquire uwmips: %w", ctx.Err())
		}
	}
	return NewUWMIPS(host), nil
}

// Greeting is the alert text the greet export raises.
func Greeting(name string) string {
	return fmt.Sprintf("Hello, %s!", name)
}

// NewUWMIPS instantiates the module's export table bound to host.
func NewUWMIPS(host Host) Module {
	return newTable(Name, map[string]Func{
		ExportGreet: func(_ context.Context, arg string) error {
			host.Alert(Greeting(arg))
			return nil
		},
	})
}

// table is a Module backed by an in-memory export map.
type table struct {
	name    string
	exports map[string]Func
	closed  atomic.Bool
}

func newTable(name string, exports map[string]Func) *table {
	return &table{name: name, exports: exports}
}

func (t *table) Name() string { return t.name }

func (t *table) Exports() []string {
	out := make([]string, 0, len(t.exports))
	for name := range t.exports {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (t *table) Lookup(export string) (Func, bool) {
	fn, ok := t.exports[export]
	if !ok {
		return nil, false
	}
	return func(ctx context.Context, arg string) error {
		if t.closed.Load() {
			return fmt.Errorf("%s.%s: %w", t.name, export, ErrClosed)
		}
		return fn(ctx, arg)
	}, true
}

func (t *table) Close() error {
	t.closed.Store(true)
	return nil
}
