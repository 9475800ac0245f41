// Package syntax holds declarative highlighting grammars and the tokenizer
// that applies them.
//
// A grammar is a YAML document naming a mode identifier, the language it
// highlights, and a set of named states. Each state is an ordered list of
// rules; at every position the first rule whose regex matches (anchored at
// that position) produces a token and may switch the tokenizer to another
// state for the rest of the line and the lines that follow.
//
// Grammars are registered into an explicit Registry that callers construct
// and pass to the editor; nothing is registered globally.
package syntax
