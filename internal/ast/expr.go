package ast

import (
	"drift/internal/source"
	"drift/internal/token"
)

// Expr is an executable expression. The set of implementations is closed;
// dispatchers must handle every variant below.
type Expr interface {
	exprNode()
}

// PathExpr is an identifier access: one segment for a local name, two or more
// for a qualified reference that may cross module boundaries.
type PathExpr struct {
	Span     source.Span
	Segments []string
}

// LitExpr is a literal (int, float, string, true/false, null).
type LitExpr struct {
	Span source.Span
	Kind token.Kind
	Text string
}

// CallExpr is `fn(args)`.
type CallExpr struct {
	Span source.Span
	Fn   Expr
	Args []Expr
}

// IndexExpr is `x[i]`.
type IndexExpr struct {
	Span  source.Span
	X     Expr
	Index Expr
}

// SliceExpr is `x[lo..hi]`; either bound may be nil.
type SliceExpr struct {
	Span source.Span
	X    Expr
	Lo   Expr
	Hi   Expr
}

// FieldExpr is `x.name`; for tuple elements Name holds the decimal index.
type FieldExpr struct {
	Span source.Span
	X    Expr
	Name string
}

// CastExpr is `x as T`.
type CastExpr struct {
	Span source.Span
	X    Expr
	Type Type
}

// UnaryExpr is a prefix operator application.
type UnaryExpr struct {
	Span source.Span
	Op   token.Kind
	X    Expr
}

// BinaryExpr is a binary operator application.
type BinaryExpr struct {
	Span source.Span
	Op   token.Kind
	X    Expr
	Y    Expr
}

// AssignExpr is `target op= value`.
type AssignExpr struct {
	Span   source.Span
	Op     token.Kind
	Target Expr
	Value  Expr
}

// LetExpr is a local binding group.
type LetExpr struct {
	Span     source.Span
	Bindings []Binding
}

// ArrayLit is `[e, e, e]`.
type ArrayLit struct {
	Span  source.Span
	Elems []Expr
}

// TupleLit is `(e, e)`.
type TupleLit struct {
	Span  source.Span
	Elems []Expr
}

// StructLit is `path { f = e, ... }`; the literal's type name is itself a
// reference.
type StructLit struct {
	Span   source.Span
	Name   []string
	Fields []FieldInit
}

// FieldInit is one field initializer inside a struct literal.
type FieldInit struct {
	Name  string
	Value Expr
}

// BlockExpr is `{ e; e; }`.
type BlockExpr struct {
	Span  source.Span
	Exprs []Expr
}

// IfExpr is `if (cond) then [else else]`.
type IfExpr struct {
	Span source.Span
	Cond Expr
	Then Expr
	Else Expr
}

// ForExpr is `for (init; cond; post) body`; any header slot may be nil.
type ForExpr struct {
	Span source.Span
	Init Expr
	Cond Expr
	Post Expr
	Body Expr
}

// MatchExpr is `match (x) { case T => ...; case => ...; }`.
type MatchExpr struct {
	Span      source.Span
	Scrutinee Expr
	Cases     []MatchCase
}

// MatchCase is one match arm; a nil Guard marks the default arm.
type MatchCase struct {
	Guard Type
	Body  []Expr
}

// SwitchExpr is `switch (x) { case a, b => ...; case => ...; }`.
type SwitchExpr struct {
	Span      source.Span
	Scrutinee Expr
	Cases     []SwitchCase
}

// SwitchCase is one switch arm; empty Values marks the default arm.
type SwitchCase struct {
	Values []Expr
	Body   []Expr
}

// DeferExpr is `defer e`.
type DeferExpr struct {
	Span source.Span
	X    Expr
}

// FreeExpr is `free(e)`.
type FreeExpr struct {
	Span source.Span
	X    Expr
}

// AllocExpr is `alloc(init[, cap])`.
type AllocExpr struct {
	Span source.Span
	Init Expr
	Cap  Expr
}

// AppendExpr is `append(target, v...[, spread...])` or, with Insert set,
// `insert(target[i], v...)`.
type AppendExpr struct {
	Span   source.Span
	Target Expr
	Values []Expr
	Spread Expr
	Insert bool
}

// AssertExpr is `assert(cond[, msg])`.
type AssertExpr struct {
	Span source.Span
	Cond Expr
	Msg  Expr
}

// SizeExpr is `size(T)`.
type SizeExpr struct {
	Span source.Span
	Type Type
}

// LenExpr is `len(e)`.
type LenExpr struct {
	Span source.Span
	X    Expr
}

// OffsetExpr is `offset(e)`.
type OffsetExpr struct {
	Span source.Span
	X    Expr
}

// BreakExpr is `break`.
type BreakExpr struct {
	Span source.Span
}

// ContinueExpr is `continue`.
type ContinueExpr struct {
	Span source.Span
}

// ReturnExpr is `return [e]`.
type ReturnExpr struct {
	Span  source.Span
	Value Expr
}

// YieldExpr is `yield [e]`.
type YieldExpr struct {
	Span  source.Span
	Value Expr
}

// SpreadExpr is the variadic extraction `e...`.
type SpreadExpr struct {
	Span source.Span
	X    Expr
}

func (*PathExpr) exprNode()     {}
func (*LitExpr) exprNode()      {}
func (*CallExpr) exprNode()     {}
func (*IndexExpr) exprNode()    {}
func (*SliceExpr) exprNode()    {}
func (*FieldExpr) exprNode()    {}
func (*CastExpr) exprNode()     {}
func (*UnaryExpr) exprNode()    {}
func (*BinaryExpr) exprNode()   {}
func (*AssignExpr) exprNode()   {}
func (*LetExpr) exprNode()      {}
func (*ArrayLit) exprNode()     {}
func (*TupleLit) exprNode()     {}
func (*StructLit) exprNode()    {}
func (*BlockExpr) exprNode()    {}
func (*IfExpr) exprNode()       {}
func (*ForExpr) exprNode()      {}
func (*MatchExpr) exprNode()    {}
func (*SwitchExpr) exprNode()   {}
func (*DeferExpr) exprNode()    {}
func (*FreeExpr) exprNode()     {}
func (*AllocExpr) exprNode()    {}
func (*AppendExpr) exprNode()   {}
func (*AssertExpr) exprNode()   {}
func (*SizeExpr) exprNode()     {}
func (*LenExpr) exprNode()      {}
func (*OffsetExpr) exprNode()   {}
func (*BreakExpr) exprNode()    {}
func (*ContinueExpr) exprNode() {}
func (*ReturnExpr) exprNode()   {}
func (*YieldExpr) exprNode()    {}
func (*SpreadExpr) exprNode()   {}
