// Package ast defines the Drift syntax tree as a closed set of variant types.
//
// Every node category (declarations, type expressions, executable expressions)
// is a sealed interface implemented only by the structs in this package. Code
// that walks the tree dispatches with a type switch over the full variant set,
// so adding a node kind here forces every dispatcher to be updated.
package ast

// File is the parsed representation of one source file: the ordered import
// list followed by the ordered top-level declarations.
type File struct {
	Imports []*Import
	Decls   []Decl
}
