// Package names resolves user-facing identifiers (syntax modes, themes) and
// produces close-match suggestions when a lookup fails.
package names

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// ErrUnknown is wrapped by every UnknownError.
var ErrUnknown = errors.New("unknown identifier")

// maxEditDistance bounds how far a typo may drift before no suggestion is offered.
const maxEditDistance = 3

// UnknownError reports an identifier that is not registered.
type UnknownError struct {
	Kind  string
	Name  string
	Known []string
}

func (e *UnknownError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "unknown %s %q", e.Kind, e.Name)
	if s := Suggest(e.Name, e.Known); s != "" {
		fmt.Fprintf(&b, " (did you mean %q?)", s)
	}
	if len(e.Known) > 0 {
		fmt.Fprintf(&b, "; registered: %s", strings.Join(e.Known, ", "))
	} else {
		b.WriteString("; none registered")
	}
	return b.String()
}

func (e *UnknownError) Unwrap() error { return ErrUnknown }

// Unknown builds an UnknownError with a sorted copy of known.
func Unknown(kind, name string, known []string) error {
	sorted := append([]string(nil), known...)
	sort.Strings(sorted)
	return &UnknownError{Kind: kind, Name: name, Known: sorted}
}

// Suggest returns the known identifier closest to name, or "" when nothing is close.
func Suggest(name string, known []string) string {
	name = strings.TrimSpace(name)
	if name == "" || len(known) == 0 {
		return ""
	}
	if ranks := fuzzy.RankFindNormalizedFold(name, known); len(ranks) > 0 {
		sort.Sort(ranks)
		return ranks[0].Target
	}
	best := ""
	bestDist := maxEditDistance + 1
	lower := strings.ToLower(name)
	for _, candidate := range known {
		d := fuzzy.LevenshteinDistance(lower, strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
