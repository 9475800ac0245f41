// Package sample holds the program the editor is seeded with.
package sample

import _ "embed"

// RecSum is a recursive summation routine in the uwmips dialect.
//
//go:embed recsum.asm
var RecSum string
