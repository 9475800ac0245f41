package events

import (
	"time"

	"github.com/atomicstack/uwmips-editor/internal/logging"
)

type ModuleTracer struct{}

var Module = ModuleTracer{}

func (ModuleTracer) LoadStart(source string, attempt int) {
	logging.Trace("module.load.start", logging.Fields{"source": source, "attempt": attempt})
}

// LoadGuarded records a load request rejected because of the current gate state.
func (ModuleTracer) LoadGuarded(state string) {
	logging.Trace("module.load.guarded", logging.Fields{"state": state})
}

func (ModuleTracer) LoadSettled(name string, elapsed time.Duration, err error) {
	fields := logging.Fields{"elapsedMs": elapsed.Milliseconds()}
	if err != nil {
		fields["error"] = err.Error()
	} else {
		fields["module"] = name
	}
	logging.Trace("module.load.settled", fields)
}

func (ModuleTracer) Alert(message string) {
	logging.Trace("module.alert", logging.Fields{"message": message})
}
