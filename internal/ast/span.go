package ast

import (
	"fmt"

	"drift/internal/source"
)

// ExprSpan returns the source span of any expression variant.
// The switch is exhaustive over the closed set; a new variant that is not
// added here panics at first use.
func ExprSpan(e Expr) source.Span {
	switch e := e.(type) {
	case *PathExpr:
		return e.Span
	case *LitExpr:
		return e.Span
	case *CallExpr:
		return e.Span
	case *IndexExpr:
		return e.Span
	case *SliceExpr:
		return e.Span
	case *FieldExpr:
		return e.Span
	case *CastExpr:
		return e.Span
	case *UnaryExpr:
		return e.Span
	case *BinaryExpr:
		return e.Span
	case *AssignExpr:
		return e.Span
	case *LetExpr:
		return e.Span
	case *ArrayLit:
		return e.Span
	case *TupleLit:
		return e.Span
	case *StructLit:
		return e.Span
	case *BlockExpr:
		return e.Span
	case *IfExpr:
		return e.Span
	case *ForExpr:
		return e.Span
	case *MatchExpr:
		return e.Span
	case *SwitchExpr:
		return e.Span
	case *DeferExpr:
		return e.Span
	case *FreeExpr:
		return e.Span
	case *AllocExpr:
		return e.Span
	case *AppendExpr:
		return e.Span
	case *AssertExpr:
		return e.Span
	case *SizeExpr:
		return e.Span
	case *LenExpr:
		return e.Span
	case *OffsetExpr:
		return e.Span
	case *BreakExpr:
		return e.Span
	case *ContinueExpr:
		return e.Span
	case *ReturnExpr:
		return e.Span
	case *YieldExpr:
		return e.Span
	case *SpreadExpr:
		return e.Span
	default:
		panic(fmt.Sprintf("ast: unhandled expression %T", e))
	}
}

// DeclSpan returns the source span of any declaration variant.
func DeclSpan(d Decl) source.Span {
	switch d := d.(type) {
	case *TypeDecl:
		return d.Span
	case *VarDecl:
		return d.Span
	case *ConstDecl:
		return d.Span
	case *FnDecl:
		return d.Span
	default:
		panic(fmt.Sprintf("ast: unhandled declaration %T", d))
	}
}
