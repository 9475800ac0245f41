package events

import "github.com/atomicstack/uwmips-editor/internal/logging"

type EditorTracer struct{}

var Editor = EditorTracer{}

func (EditorTracer) Mount(mode, theme string, lines int, blockScrolling bool) {
	logging.Trace("editor.mount", logging.Fields{
		"mode":           mode,
		"theme":          theme,
		"lines":          lines,
		"blockScrolling": blockScrolling,
	})
}

func (EditorTracer) ConfigError(err error) {
	if err == nil {
		return
	}
	logging.Trace("editor.config.error", logging.Fields{"error": err.Error()})
}

func (EditorTracer) Copy(bytes int, err error) {
	fields := logging.Fields{"bytes": bytes}
	if err != nil {
		fields["error"] = err.Error()
	}
	logging.Trace("editor.copy", fields)
}
