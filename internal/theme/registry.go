package theme

import (
	"errors"
	"fmt"
	"sort"

	"github.com/atomicstack/uwmips-editor/internal/names"
)

// Registry maps theme identifiers to editor themes.
type Registry struct {
	themes map[string]*Editor
}

// NewRegistry returns a registry holding themes. Duplicates panic.
func NewRegistry(themes ...*Editor) *Registry {
	r := &Registry{themes: make(map[string]*Editor, len(themes))}
	for _, t := range themes {
		if err := r.Register(t); err != nil {
			panic(err)
		}
	}
	return r
}

// Builtin returns a fresh registry with the bundled themes.
func Builtin() *Registry {
	return NewRegistry(Monokai(), GitHub())
}

// Register adds t. Registering a name twice is an error.
func (r *Registry) Register(t *Editor) error {
	if t == nil || t.Name == "" {
		return errors.New("theme must have a name")
	}
	if _, exists := r.themes[t.Name]; exists {
		return fmt.Errorf("theme %s already registered", t.Name)
	}
	r.themes[t.Name] = t
	return nil
}

// Lookup resolves a theme identifier. Unknown identifiers yield an error
// wrapping names.ErrUnknown.
func (r *Registry) Lookup(name string) (*Editor, error) {
	if t, ok := r.themes[name]; ok {
		return t, nil
	}
	return nil, names.Unknown("theme", name, r.Names())
}

// Names returns the registered theme identifiers, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.themes))
	for name := range r.themes {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
