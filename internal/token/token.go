package token

import (
	"drift/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, boolean, string, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwImport, KwAs, KwType, KwLet, KwConst, KwFn, KwEnum, KwStruct, KwUnion,
		KwIf, KwElse, KwFor, KwMatch, KwSwitch, KwCase, KwDefer, KwReturn, KwYield,
		KwBreak, KwContinue, KwAlloc, KwFree, KwAppend, KwInsert, KwAssert,
		KwSize, KwLen, KwOffset, KwTrue, KwFalse, KwNull:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsAssignOp reports whether the token is an assignment operator.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign:
		return true
	default:
		return false
	}
}
