package ui

import (
	"github.com/atomicstack/uwmips-editor/internal/module"
	"github.com/atomicstack/uwmips-editor/internal/ui/command"
)

func commandRequest(mod module.Module, export string) command.Request {
	return command.Request{ID: demoRequestID, Module: mod, Export: export, Arg: demoArg}
}
