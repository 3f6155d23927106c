package ast

import "drift/internal/source"

// Decl is a top-level declaration. The set of implementations is closed:
// TypeDecl, VarDecl, ConstDecl, FnDecl.
type Decl interface {
	declNode()
}

// TypeDecl is `type Name = T;`.
type TypeDecl struct {
	Span source.Span
	Name string
	Type Type
}

// VarDecl is a top-level `let` group.
type VarDecl struct {
	Span     source.Span
	Bindings []Binding
}

// ConstDecl is a top-level `const` group.
type ConstDecl struct {
	Span     source.Span
	Bindings []Binding
}

// FnDecl is `fn Name(params) -> R { ... }`.
type FnDecl struct {
	Span   source.Span
	Name   string
	Params []Param
	Result Type // nil if the function returns nothing
	Body   *BlockExpr
}

// Binding is one `name[: type][= init]` inside a let/const group.
type Binding struct {
	Name string
	Type Type // nil if inferred
	Init Expr // nil if uninitialized
}

// Param is one function parameter.
type Param struct {
	Name     string
	Type     Type
	Variadic bool
}

func (*TypeDecl) declNode()  {}
func (*VarDecl) declNode()   {}
func (*ConstDecl) declNode() {}
func (*FnDecl) declNode()    {}
