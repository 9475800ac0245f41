// Package ui contains the Bubble Tea program that hosts the uwmips editor.
// The Model owns two components that never talk to each other: the editor
// host (internal/editor) and the module gate (internal/gate).
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages. Update routes
//     each tea.Msg through a typed handler registry. Messages with no handler
//     (mouse events, for instance) go to the editor.
//   - Shell keys (load, demonstration action, copy, dismiss, quit) are
//     matched first; every other key press edits the buffer.
//
// Module acquisition:
//   - The load key calls gate.Begin. When the gate accepts, the model
//     returns an acquisition tea.Cmd alongside the spinner tick. The command
//     runs gate.Acquire, which always produces exactly one moduleSettledMsg
//     and Update settles the gate with it. The gate is only ever mutated on
//     the event loop.
//   - The demonstration action runs through the command bus
//     (internal/ui/command) and reports a command.Result. It never changes
//     gate state.
//
// Alerts:
//   - Modules report effects through a module.Host that feeds a channel.
//     Init waits on that channel and each alertMsg re-arms the wait, the
//     same way a backend event stream is consumed. Alerts stack in a box
//     until dismissed.
//
// Harness runs the model without a terminal for tests.
package ui
