package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit

	// KwImport represents the 'import' keyword.
	KwImport // import
	// KwAs represents the 'as' keyword.
	KwAs // as
	// KwType represents the 'type' keyword.
	KwType // type
	// KwLet represents the 'let' keyword.
	KwLet // let
	// KwConst represents the 'const' keyword.
	KwConst // const
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwEnum represents the 'enum' keyword.
	KwEnum // enum
	// KwStruct represents the 'struct' keyword.
	KwStruct // struct
	// KwUnion represents the 'union' keyword.
	KwUnion // union
	// KwIf represents the 'if' keyword.
	KwIf // if
	// KwElse represents the 'else' keyword.
	KwElse // else
	// KwFor represents the 'for' keyword.
	KwFor // for
	// KwMatch represents the 'match' keyword.
	KwMatch // match
	// KwSwitch represents the 'switch' keyword.
	KwSwitch // switch
	// KwCase represents the 'case' keyword.
	KwCase // case
	// KwDefer represents the 'defer' keyword.
	KwDefer // defer
	// KwReturn represents the 'return' keyword.
	KwReturn // return
	// KwYield represents the 'yield' keyword.
	KwYield // yield
	// KwBreak represents the 'break' keyword.
	KwBreak // break
	// KwContinue represents the 'continue' keyword.
	KwContinue // continue
	// KwAlloc represents the 'alloc' builtin keyword.
	KwAlloc // alloc
	// KwFree represents the 'free' builtin keyword.
	KwFree // free
	// KwAppend represents the 'append' builtin keyword.
	KwAppend // append
	// KwInsert represents the 'insert' builtin keyword.
	KwInsert // insert
	// KwAssert represents the 'assert' builtin keyword.
	KwAssert // assert
	// KwSize represents the 'size' builtin keyword.
	KwSize // size
	// KwLen represents the 'len' builtin keyword.
	KwLen // len
	// KwOffset represents the 'offset' builtin keyword.
	KwOffset // offset
	// KwTrue represents the 'true' keyword.
	KwTrue // true
	// KwFalse represents the 'false' keyword.
	KwFalse // false
	// KwNull represents the 'null' keyword.
	KwNull // null

	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']'.
	RBracket // ]
	// Comma represents ','.
	Comma // ,
	// Semicolon represents ';'.
	Semicolon // ;
	// Colon represents ':'.
	Colon // :
	// ColonColon represents '::'.
	ColonColon // ::
	// Dot represents '.'.
	Dot // .
	// DotDot represents '..'.
	DotDot // ..
	// Ellipsis represents '...'.
	Ellipsis // ...
	// Arrow represents '->'.
	Arrow // ->
	// FatArrow represents '=>'.
	FatArrow // =>
	// At represents '@'.
	At // @

	// Plus represents '+'.
	Plus // +
	// Minus represents '-'.
	Minus // -
	// Star represents '*'.
	Star // *
	// Slash represents '/'.
	Slash // /
	// Percent represents '%'.
	Percent // %
	// Amp represents '&'.
	Amp // &
	// Pipe represents '|'.
	Pipe // |
	// Caret represents '^'.
	Caret // ^
	// Shl represents '<<'.
	Shl // <<
	// Shr represents '>>'.
	Shr // >>
	// Bang represents '!'.
	Bang // !

	// Assign represents '='.
	Assign // =
	// PlusAssign represents '+='.
	PlusAssign // +=
	// MinusAssign represents '-='.
	MinusAssign // -=
	// StarAssign represents '*='.
	StarAssign // *=
	// SlashAssign represents '/='.
	SlashAssign // /=
	// PercentAssign represents '%='.
	PercentAssign // %=

	// EqEq represents '=='.
	EqEq // ==
	// BangEq represents '!='.
	BangEq // !=
	// Lt represents '<'.
	Lt // <
	// LtEq represents '<='.
	LtEq // <=
	// Gt represents '>'.
	Gt // >
	// GtEq represents '>='.
	GtEq // >=
	// AndAnd represents '&&'.
	AndAnd // &&
	// OrOr represents '||'.
	OrOr // ||

	kindCount
)

var kindNames = [...]string{
	Invalid:       "Invalid",
	EOF:           "EOF",
	Ident:         "Ident",
	IntLit:        "IntLit",
	FloatLit:      "FloatLit",
	StringLit:     "StringLit",
	KwImport:      "import",
	KwAs:          "as",
	KwType:        "type",
	KwLet:         "let",
	KwConst:       "const",
	KwFn:          "fn",
	KwEnum:        "enum",
	KwStruct:      "struct",
	KwUnion:       "union",
	KwIf:          "if",
	KwElse:        "else",
	KwFor:         "for",
	KwMatch:       "match",
	KwSwitch:      "switch",
	KwCase:        "case",
	KwDefer:       "defer",
	KwReturn:      "return",
	KwYield:       "yield",
	KwBreak:       "break",
	KwContinue:    "continue",
	KwAlloc:       "alloc",
	KwFree:        "free",
	KwAppend:      "append",
	KwInsert:      "insert",
	KwAssert:      "assert",
	KwSize:        "size",
	KwLen:         "len",
	KwOffset:      "offset",
	KwTrue:        "true",
	KwFalse:       "false",
	KwNull:        "null",
	LParen:        "(",
	RParen:        ")",
	LBrace:        "{",
	RBrace:        "}",
	LBracket:      "[",
	RBracket:      "]",
	Comma:         ",",
	Semicolon:     ";",
	Colon:         ":",
	ColonColon:    "::",
	Dot:           ".",
	DotDot:        "..",
	Ellipsis:      "...",
	Arrow:         "->",
	FatArrow:      "=>",
	At:            "@",
	Plus:          "+",
	Minus:         "-",
	Star:          "*",
	Slash:         "/",
	Percent:       "%",
	Amp:           "&",
	Pipe:          "|",
	Caret:         "^",
	Shl:           "<<",
	Shr:           ">>",
	Bang:          "!",
	Assign:        "=",
	PlusAssign:    "+=",
	MinusAssign:   "-=",
	StarAssign:    "*=",
	SlashAssign:   "/=",
	PercentAssign: "%=",
	EqEq:          "==",
	BangEq:        "!=",
	Lt:            "<",
	LtEq:          "<=",
	Gt:            ">",
	GtEq:          ">=",
	AndAnd:        "&&",
	OrOr:          "||",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
