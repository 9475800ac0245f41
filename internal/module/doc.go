// Package module defines the contract between the editor shell and the
// uwmips simulation/assembler module, plus the ways the shell can acquire one.
//
// A Module is a named set of single-argument exports. Exports produce their
// observable effects through the Host supplied at acquisition time; the shell
// consumes nothing else from a call except its error.
//
// Two acquirers exist. Builtin instantiates the module in-process, optionally
// after a simulated load delay. Exec starts an external executable (see
// cmd/uwmips-module) and speaks newline-delimited JSON with it:
//
//	module → shell: {"name":"uwmips","version":"0.1.0","exports":["greet"]}
//	shell → module: {"id":1,"export":"greet","arg":"boi"}
//	module → shell: {"id":1,"alerts":["Hello, boi!"]}
//
// The first frame is the handshake; every request gets exactly one response
// carrying the alerts raised while it ran and, on failure, an error string.
package module
