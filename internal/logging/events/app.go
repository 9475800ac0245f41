package events

import "github.com/atomicstack/uwmips-editor/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(err error) {
	fields := logging.Fields{}
	if err != nil {
		fields["error"] = err.Error()
	}
	logging.Trace("app.exit", fields)
}
