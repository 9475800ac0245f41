package module

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// SourceBuiltin selects the in-process module.
const SourceBuiltin = "builtin"

var (
	// ErrNoExport is wrapped when a module has no export of the requested name.
	ErrNoExport = errors.New("no such export")
	// ErrClosed is returned by exports of a module that has been closed.
	ErrClosed = errors.New("module closed")
)

// Func is a module export. It takes one argument; its result is not consumed.
type Func func(ctx context.Context, arg string) error

// Module is the acquired interface of the simulation/assembler unit.
type Module interface {
	Name() string
	Exports() []string
	Lookup(export string) (Func, bool)
	Close() error
}

// Host receives a module's externally observable effects.
type Host interface {
	Alert(message string)
}

// HostFunc adapts a function to Host.
type HostFunc func(message string)

func (f HostFunc) Alert(message string) { f(message) }

// Acquirer obtains a Module. Acquire may block and may fail.
type Acquirer interface {
	Acquire(ctx context.Context, host Host) (Module, error)
	Source() string
}

// Options tune the acquirers built by FromSource.
type Options struct {
	Delay            time.Duration
	HandshakeTimeout time.Duration
}

// FromSource maps the -module setting to an Acquirer: "builtin" (or empty)
// for the in-process module, otherwise a command line for an executable.
func FromSource(source string, opts Options) Acquirer {
	fields := strings.Fields(source)
	if len(fields) == 0 || (len(fields) == 1 && fields[0] == SourceBuiltin) {
		return Builtin{Delay: opts.Delay}
	}
	return Exec{Path: fields[0], Args: fields[1:], HandshakeTimeout: opts.HandshakeTimeout}
}

// Call invokes export on m with arg.
func Call(ctx context.Context, m Module, export, arg string) error {
	if m == nil {
		return fmt.Errorf("call %s: nil module", export)
	}
	fn, ok := m.Lookup(export)
	if !ok {
		return fmt.Errorf("%s: %q: %w", m.Name(), export, ErrNoExport)
	}
	return fn(ctx, arg)
}
