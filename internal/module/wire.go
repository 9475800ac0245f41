package module

// Hello is the handshake frame an out-of-process module writes first.
type Hello struct {
	Name    string   `json:"name"`
	Version string   `json:"version"`
	Exports []string `json:"exports"`
}

// Request asks the module to run one export.
type Request struct {
	ID     uint64 `json:"id"`
	Export string `json:"export"`
	Arg    string `json:"arg"`
}

// Response answers the Request with the same ID.
type Response struct {
	ID     uint64   `json:"id"`
	Alerts []string `json:"alerts,omitempty"`
	Error  string   `json:"error,omitempty"`
}

// RemoteError carries an export failure reported by an out-of-process module.
type RemoteError struct {
	Export  string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Export + ": " + e.Message
}
