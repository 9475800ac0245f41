package syntax

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// StartState is the state every line of a document begins in unless the
// previous line left the tokenizer elsewhere.
const StartState = "start"

// TextToken is the token type for input that no rule claims.
const TextToken = "text"

// RuleDef is the on-disk form of a single tokenizer rule.
type RuleDef struct {
	Token string `yaml:"token"`
	Regex string `yaml:"regex"`
	Next  string `yaml:"next,omitempty"`
}

// Definition is the on-disk form of a grammar.
type Definition struct {
	Name       string               `yaml:"name"`
	Language   string               `yaml:"language"`
	Extensions []string             `yaml:"extensions,omitempty"`
	States     map[string][]RuleDef `yaml:"states"`
}

type rule struct {
	token string
	re    *regexp.Regexp
	next  string
}

// Grammar is a compiled, immutable rule set.
type Grammar struct {
	name       string
	language   string
	extensions []string
	states     map[string][]rule
}

// Parse decodes a YAML grammar document and compiles it.
func Parse(data []byte) (*Grammar, error) {
	var def Definition
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("decode grammar: %w", err)
	}
	return Compile(def)
}

// MustParse is Parse for grammars embedded in the binary.
func MustParse(data []byte) *Grammar {
	g, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return g
}

// Compile validates def and compiles its regexes.
func Compile(def Definition) (*Grammar, error) {
	name := strings.TrimSpace(def.Name)
	if name == "" {
		return nil, errors.New("grammar name is required")
	}
	if _, ok := def.States[StartState]; !ok {
		return nil, fmt.Errorf("grammar %s: missing %q state", name, StartState)
	}
	g := &Grammar{
		name:       name,
		language:   strings.TrimSpace(def.Language),
		extensions: append([]string(nil), def.Extensions...),
		states:     make(map[string][]rule, len(def.States)),
	}
	if g.language == "" {
		g.language = name
	}
	for state, defs := range def.States {
		rules := make([]rule, 0, len(defs))
		for i, rs := range defs {
			if strings.TrimSpace(rs.Token) == "" {
				return nil, fmt.Errorf("grammar %s: state %s rule %d: token is required", name, state, i)
			}
			if rs.Regex == "" {
				return nil, fmt.Errorf("grammar %s: state %s rule %d: regex is required", name, state, i)
			}
			re, err := regexp.Compile(`^(?:` + rs.Regex + `)`)
			if err != nil {
				return nil, fmt.Errorf("grammar %s: state %s rule %d: %w", name, state, i, err)
			}
			if rs.Next != "" {
				if _, ok := def.States[rs.Next]; !ok {
					return nil, fmt.Errorf("grammar %s: state %s rule %d: unknown next state %q", name, state, i, rs.Next)
				}
			}
			rules = append(rules, rule{token: rs.Token, re: re, next: rs.Next})
		}
		g.states[state] = rules
	}
	return g, nil
}

// Name is the mode identifier editors configure.
func (g *Grammar) Name() string { return g.name }

// Language is the language identifier the mode highlights.
func (g *Grammar) Language() string { return g.language }

// Extensions lists file extensions associated with the grammar.
func (g *Grammar) Extensions() []string { return append([]string(nil), g.extensions...) }

// States returns the sorted state names.
func (g *Grammar) States() []string {
	out := make([]string, 0, len(g.states))
	for name := range g.states {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
