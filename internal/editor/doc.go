// Package editor is the code surface of the shell: a text buffer rendered
// through a named syntax grammar and a named theme inside a bubbles viewport.
//
// Grammars and themes are resolved from registries handed to New; an
// identifier missing from either registry fails construction rather than
// falling back to unhighlighted text.
package editor
