// Package gate is the state machine mediating on-demand acquisition of the
// uwmips module and deciding which affordance the shell presents.
//
//	Idle ──Begin──▶ Loading ──Settle(ok)──▶ Ready
//	  ▲                │
//	  └──Settle(fail)──┘
//
// Ready is terminal: nothing unloads a module within a session.
package gate

import (
	"context"
	"errors"
	"fmt"

	"github.com/atomicstack/uwmips-editor/internal/module"
)

// State is the acquisition state.
type State int

const (
	Idle State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

// Affordance is the single UI element a state presents.
type Affordance int

const (
	// AffordanceLoad is the load action.
	AffordanceLoad Affordance = iota
	// AffordanceProgress is the non-interactive progress indicator.
	AffordanceProgress
	// AffordanceDemo is the demonstration action bound to the module.
	AffordanceDemo
)

func (a Affordance) String() string {
	switch a {
	case AffordanceLoad:
		return "load"
	case AffordanceProgress:
		return "progress"
	case AffordanceDemo:
		return "demo"
	default:
		return "unknown"
	}
}

var (
	// ErrInFlight rejects Begin while an acquisition is running.
	ErrInFlight = errors.New("module acquisition already in flight")
	// ErrReady rejects Begin once a module is held.
	ErrReady = errors.New("module already loaded")
	// ErrNotLoading rejects Settle when no acquisition was begun.
	ErrNotLoading = errors.New("no module acquisition in flight")
	// ErrNoModule marks a successful acquisition that produced no module.
	ErrNoModule = errors.New("acquisition returned no module")
)

// Result is the outcome of one acquisition: a module or a reason.
type Result struct {
	Module module.Module
	Err    error
}

// Success wraps an acquired module.
func Success(m module.Module) Result { return Result{Module: m} }

// Failure wraps an acquisition error.
func Failure(err error) Result { return Result{Err: err} }

// OK reports whether r carries a usable module.
func (r Result) OK() bool { return r.Err == nil && r.Module != nil }

// Gate holds the loading flag and the module handle. It is not safe for
// concurrent use; the UI mutates it only from its update loop.
type Gate struct {
	state    State
	handle   module.Module
	lastErr  error
	attempts int
}

// New returns a Gate in Idle with no module.
func New() *Gate {
	return &Gate{state: Idle}
}

func (g *Gate) State() State { return g.state }

// Loading is the loading flag: true only between Begin and Settle.
func (g *Gate) Loading() bool { return g.state == Loading }

// Module returns the acquired module once Ready.
func (g *Gate) Module() (module.Module, bool) {
	return g.handle, g.handle != nil
}

// Err is the reason the most recent acquisition failed, cleared by Begin.
func (g *Gate) Err() error { return g.lastErr }

// Attempts counts accepted Begin calls.
func (g *Gate) Attempts() int { return g.attempts }

// Affordance maps the state to the element the UI shows.
func (g *Gate) Affordance() Affordance {
	switch g.state {
	case Loading:
		return AffordanceProgress
	case Ready:
		return AffordanceDemo
	default:
		return AffordanceLoad
	}
}

// Begin moves Idle to Loading. Any other state rejects the request without
// changing anything, so at most one acquisition is ever in flight.
func (g *Gate) Begin() error {
	switch g.state {
	case Loading:
		return ErrInFlight
	case Ready:
		return ErrReady
	}
	g.state = Loading
	g.lastErr = nil
	g.attempts++
	return nil
}

// Settle ends the in-flight acquisition. Success stores the module and
// enters Ready in the same step; failure returns to Idle with no module.
func (g *Gate) Settle(r Result) error {
	if g.state != Loading {
		return ErrNotLoading
	}
	if r.Err == nil && r.Module == nil {
		r.Err = ErrNoModule
	}
	if r.Err != nil {
		g.lastErr = r.Err
		g.state = Idle
		return nil
	}
	g.handle = r.Module
	g.state = Ready
	return nil
}

// Acquire runs acq and always yields a Result: errors, a nil module, and
// panics all become failures, so a Loading gate is always settled.
func Acquire(ctx context.Context, acq module.Acquirer, host module.Host) (res Result) {
	defer func() {
		if r := recover(); r != nil {
			res = Failure(fmt.Errorf("module acquisition panicked: %v", r))
		}
	}()
	if acq == nil {
		return Failure(errors.New("no module acquirer configured"))
	}
	m, err := acq.Acquire(ctx, host)
	if err != nil {
		if m != nil {
			_ = m.Close()
		}
		return Failure(err)
	}
	if m == nil {
		return Failure(ErrNoModule)
	}
	return Success(m)
}
