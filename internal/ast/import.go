package ast

import "drift/internal/source"

// ImportMode distinguishes the import statement forms.
type ImportMode uint8

const (
	// ImportModule is `import a::b;` or `import a::b as c;`. The module is
	// reachable through qualified names and its use can be tracked.
	ImportModule ImportMode = iota
	// ImportWildcard is `import a::b::*;`. The whole module is pulled in,
	// possibly only for its side effects; usage cannot be tracked by name.
	ImportWildcard
	// ImportGroup is `import a::b::{x, y as z};` with selected bindings.
	ImportGroup
)

// Import represents one import declaration.
type Import struct {
	Span    source.Span
	Path    []string // module path segments, never empty
	Alias   string   // local alias from `as`, "" if none
	Mode    ImportMode
	Members []ImportMember // only for ImportGroup
}

// ImportMember is a single binding inside an import group.
type ImportMember struct {
	Name  string
	Alias string
}

// Selective reports whether the import names specific sub-bindings.
func (i *Import) Selective() bool {
	return i.Mode == ImportGroup
}
