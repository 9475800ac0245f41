package syntax

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/atomicstack/uwmips-editor/internal/names"
)

//go:embed grammars/*.yaml
var builtinFS embed.FS

// Registry maps mode identifiers to grammars.
type Registry struct {
	grammars map[string]*Grammar
}

// NewRegistry returns a registry holding grammars. Duplicates panic, since
// callers pass literal sets.
func NewRegistry(grammars ...*Grammar) *Registry {
	r := &Registry{grammars: make(map[string]*Grammar, len(grammars))}
	for _, g := range grammars {
		if err := r.Register(g); err != nil {
			panic(err)
		}
	}
	return r
}

// Builtin returns a fresh registry with the grammars shipped in the binary.
func Builtin() *Registry {
	entries, err := builtinFS.ReadDir("grammars")
	if err != nil {
		panic(err)
	}
	r := NewRegistry()
	for _, entry := range entries {
		data, err := builtinFS.ReadFile("grammars/" + entry.Name())
		if err != nil {
			panic(err)
		}
		if err := r.Register(MustParse(data)); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds g. Registering a name twice is an error.
func (r *Registry) Register(g *Grammar) error {
	if g == nil {
		return errors.New("nil grammar")
	}
	if _, exists := r.grammars[g.name]; exists {
		return fmt.Errorf("grammar %s already registered", g.name)
	}
	r.grammars[g.name] = g
	return nil
}

// Lookup resolves a mode identifier. Unknown identifiers yield an error
// wrapping names.ErrUnknown.
func (r *Registry) Lookup(name string) (*Grammar, error) {
	if g, ok := r.grammars[name]; ok {
		return g, nil
	}
	return nil, names.Unknown("mode", name, r.Names())
}

// Names returns the registered mode identifiers, sorted.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.grammars))
	for name := range r.grammars {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// ForLanguage returns the grammars highlighting lang, sorted by name.
func (r *Registry) ForLanguage(lang string) []*Grammar {
	var out []*Grammar
	for _, name := range r.Names() {
		if g := r.grammars[name]; g.language == lang {
			out = append(out, g)
		}
	}
	return out
}

// ForExtension returns the first grammar listing ext (with or without the dot).
func (r *Registry) ForExtension(ext string) (*Grammar, bool) {
	if ext == "" {
		return nil, false
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	for _, name := range r.Names() {
		g := r.grammars[name]
		for _, candidate := range g.extensions {
			if strings.EqualFold(candidate, ext) {
				return g, true
			}
		}
	}
	return nil, false
}

// LoadDir registers every .yaml/.yml grammar in dir.
func LoadDir(r *Registry, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read grammar dir: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".yaml", ".yml":
		default:
			continue
		}
		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read grammar %s: %w", path, err)
		}
		g, err := Parse(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if err := r.Register(g); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}
