package ast

import "drift/internal/source"

// Type is a type expression. The set of implementations is closed:
// NamedType, PointerType, ListType, FnType, EnumType, StructType, UnionType,
// TaggedUnionType, TupleType.
type Type interface {
	typeNode()
}

// NamedType is a (possibly qualified) reference to a declared type.
type NamedType struct {
	Span source.Span
	Path []string
}

// PointerType is `*T`.
type PointerType struct {
	Span source.Span
	Elem Type
}

// ListType is `[len]T` or, with Len == nil, the slice form `[]T`.
type ListType struct {
	Span source.Span
	Len  Expr
	Elem Type
}

// FnType is `fn(params) -> R`.
type FnType struct {
	Span   source.Span
	Params []Param
	Result Type
}

// EnumType is `enum base { A = expr, B }`. Base is a builtin storage type
// name and never a cross-module reference.
type EnumType struct {
	Span  source.Span
	Base  string
	Cases []EnumCase
}

// EnumCase is one enumeration member with an optional value initializer.
type EnumCase struct {
	Name  string
	Value Expr
}

// StructType is `struct { members }`.
type StructType struct {
	Span    source.Span
	Members []StructMember
}

// UnionType is `union { members }`.
type UnionType struct {
	Span    source.Span
	Members []StructMember
}

// StructMember is one member of a struct/union body, in one of three forms:
//   - field:    Name + Type
//   - embedded: Type only (a NamedType reference)
//   - alias:    Name + AliasOf (the aliased name is a reference)
//
// Offset, when present, is the compile-time `@offset(expr)` annotation.
type StructMember struct {
	Offset  Expr
	Name    string
	Type    Type
	AliasOf []string
}

// TaggedUnionType is `(A | B | C)`.
type TaggedUnionType struct {
	Span source.Span
	Alts []Type
}

// TupleType is `(A, B)`.
type TupleType struct {
	Span  source.Span
	Elems []Type
}

func (*NamedType) typeNode()       {}
func (*PointerType) typeNode()     {}
func (*ListType) typeNode()        {}
func (*FnType) typeNode()          {}
func (*EnumType) typeNode()        {}
func (*StructType) typeNode()      {}
func (*UnionType) typeNode()       {}
func (*TaggedUnionType) typeNode() {}
func (*TupleType) typeNode()       {}
