package gate

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/atomicstack/uwmips-editor/internal/module"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAcquirer struct {
	mod   module.Module
	err   error
	panic interface{}
	calls int
}

func (s *stubAcquirer) Source() string { return "stub" }

func (s *stubAcquirer) Acquire(context.Context, module.Host) (module.Module, error) {
	s.calls++
	if s.panic != nil {
		panic(s.panic)
	}
	return s.mod, s.err
}

func newModule() module.Module {
	return module.NewUWMIPS(module.HostFunc(func(string) {}))
}

func TestNewGateIsIdle(t *testing.T) {
	t.Parallel()

	g := New()
	assert.Equal(t, Idle, g.State())
	assert.False(t, g.Loading())
	_, ok := g.Module()
	assert.False(t, ok)
	assert.NoError(t, g.Err())
	assert.Equal(t, AffordanceLoad, g.Affordance())
}

func TestSuccessfulAcquisition(t *testing.T) {
	t.Parallel()

	g := New()
	require.NoError(t, g.Begin())
	assert.True(t, g.Loading())
	assert.Equal(t, AffordanceProgress, g.Affordance())

	mod := newModule()
	require.NoError(t, g.Settle(Success(mod)))
	assert.Equal(t, Ready, g.State())
	assert.False(t, g.Loading())
	got, ok := g.Module()
	require.True(t, ok)
	assert.Same(t, mod, got)
	assert.Equal(t, AffordanceDemo, g.Affordance())
}

func TestFailedAcquisitionReturnsToIdle(t *testing.T) {
	t.Parallel()

	g := New()
	boom := errors.New("fetch failed")
	require.NoError(t, g.Begin())
	require.NoError(t, g.Settle(Failure(boom)))

	assert.Equal(t, Idle, g.State())
	assert.False(t, g.Loading())
	_, ok := g.Module()
	assert.False(t, ok)
	assert.ErrorIs(t, g.Err(), boom)
	assert.Equal(t, AffordanceLoad, g.Affordance())

	require.NoError(t, g.Begin(), "retry is permitted")
	assert.NoError(t, g.Err(), "begin clears the previous failure")
	assert.Equal(t, 2, g.Attempts())
}

func TestSettleWithoutModuleIsFailure(t *testing.T) {
	t.Parallel()

	g := New()
	require.NoError(t, g.Begin())
	require.NoError(t, g.Settle(Result{}))
	assert.Equal(t, Idle, g.State())
	assert.ErrorIs(t, g.Err(), ErrNoModule)
}

func TestGuards(t *testing.T) {
	t.Parallel()

	g := New()
	assert.ErrorIs(t, g.Settle(Success(newModule())), ErrNotLoading)
	assert.Equal(t, Idle, g.State())

	require.NoError(t, g.Begin())
	assert.ErrorIs(t, g.Begin(), ErrInFlight)
	assert.Equal(t, 1, g.Attempts())

	require.NoError(t, g.Settle(Success(newModule())))
	assert.ErrorIs(t, g.Begin(), ErrReady)
	assert.ErrorIs(t, g.Settle(Failure(errors.New("late"))), ErrNotLoading)
	assert.Equal(t, Ready, g.State())
}

// TestRandomOperationSequences exercises the invariants over arbitrary
// interleavings of load requests and outcomes.
func TestRandomOperationSequences(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(241))
	for run := 0; run < 200; run++ {
		g := New()
		inFlight := 0
		everReady := false
		for step := 0; step < 40; step++ {
			switch rng.Intn(3) {
			case 0:
				if g.Begin() == nil {
					inFlight++
				}
			case 1:
				if g.Settle(Failure(errors.New("nope"))) == nil {
					inFlight--
				}
			case 2:
				if g.Settle(Success(newModule())) == nil {
					inFlight--
				}
			}
			require.LessOrEqual(t, inFlight, 1, "overlapping acquisitions")
			require.GreaterOrEqual(t, inFlight, 0)
			require.Equal(t, inFlight == 1, g.Loading())

			_, held := g.Module()
			if everReady {
				require.True(t, held, "module handle reverted to absent")
			}
			everReady = everReady || held
			require.Equal(t, held, g.State() == Ready)
			if g.Loading() {
				require.NotEqual(t, AffordanceLoad, g.Affordance())
			}
		}
	}
}

func TestAcquireAlwaysYieldsResult(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	host := module.HostFunc(func(string) {})

	ok := Acquire(ctx, &stubAcquirer{mod: newModule()}, host)
	assert.True(t, ok.OK())

	boom := errors.New("boom")
	failed := Acquire(ctx, &stubAcquirer{err: boom}, host)
	assert.False(t, failed.OK())
	assert.ErrorIs(t, failed.Err, boom)

	empty := Acquire(ctx, &stubAcquirer{}, host)
	assert.ErrorIs(t, empty.Err, ErrNoModule)

	panicked := Acquire(ctx, &stubAcquirer{panic: "kaboom"}, host)
	require.Error(t, panicked.Err)
	assert.Contains(t, panicked.Err.Error(), "kaboom")

	missing := Acquire(ctx, nil, host)
	require.Error(t, missing.Err)
}

func TestStringers(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "idle", Idle.String())
	assert.Equal(t, "loading", Loading.String())
	assert.Equal(t, "ready", Ready.String())
	assert.Equal(t, "unknown", State(9).String())
	assert.Equal(t, "load", AffordanceLoad.String())
	assert.Equal(t, "progress", AffordanceProgress.String())
	assert.Equal(t, "demo", AffordanceDemo.String())
	assert.Equal(t, "unknown", Affordance(9).String())
}
