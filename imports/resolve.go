package imports

import (
	"sort"
	"strings"
)

// Strategy is how the registration block binds an alias
type Strategy int

// Enumeration of resolution strategies
const (
	// GlobalLookup binds the alias to `global.<prefix>`
	GlobalLookup Strategy = iota

	// AncestorReuse binds the alias to `<prefix>` directly: the first segment
	// of the prefix is a source using already bound in the same block
	AncestorReuse
)

func (s Strategy) String() string {
	if s == AncestorReuse {
		return "ancestor"
	}

	return "global"
}

// Resolution is an entry annotated with its resolution strategy
type Resolution struct {
	Entry
	Strategy Strategy
}

// RootOf returns the first dotted segment of a prefix.  It returns false when
// the prefix has no `.` and thus no ancestor.
func RootOf(prefix string) (string, bool) {
	if i := strings.IndexByte(prefix, '.'); i >= 0 {
		return prefix[:i], true
	}

	return "", false
}

// Less orders source usings before library imports, then by prefix
func Less(a, b Entry) bool {
	if a.Origin != b.Origin {
		return a.Origin == SourceUsing
	}

	return a.Prefix < b.Prefix
}

// Resolve sorts a copy of the entries and decides a strategy for each.  The
// input slice is not modified.
func Resolve(entries []Entry) []Resolution {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return Less(sorted[i], sorted[j])
	})

	// only source usings can serve as ancestors
	usings := make(map[string]struct{})
	for _, e := range sorted {
		if e.Origin == SourceUsing {
			usings[e.Prefix] = struct{}{}
		}
	}

	resolved := make([]Resolution, len(sorted))
	for i, e := range sorted {
		resolved[i] = Resolution{Entry: e, Strategy: strategyOf(e, usings)}
	}

	return resolved
}

// strategyOf checks only the immediate root: deeper segments are assumed to be
// reachable as members of the root's runtime value
func strategyOf(e Entry, usings map[string]struct{}) Strategy {
	if e.Prefix == e.Alias {
		return GlobalLookup
	}

	root, ok := RootOf(e.Prefix)
	if !ok {
		return GlobalLookup
	}

	if _, ok := usings[root]; ok {
		return AncestorReuse
	}

	return GlobalLookup
}
