package events

import "github.com/atomicstack/uwmips-editor/internal/logging"

type ActionTracer struct{}

type CommandTracer struct{}

var (
	Action  = ActionTracer{}
	Command = CommandTracer{}
)

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", logging.Fields{"error": err.Error()})
}

func (ActionTracer) Success(info string) {
	logging.Trace("action.success", logging.Fields{"info": info})
}

func (CommandTracer) Queue(id, label string) {
	logging.Trace("command.queue", logging.Fields{"id": id, "label": label})
}

func (CommandTracer) Skip(id, label string) {
	logging.Trace("command.skip", logging.Fields{"id": id, "label": label})
}

func (CommandTracer) Result(id, label, outcome string) {
	logging.Trace("command.result", logging.Fields{"id": id, "label": label, "outcome": outcome})
}
