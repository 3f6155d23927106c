package lexer

import (
	"drift/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDigitByte(b)
}

func isDigitByte(b byte) bool {
	return b >= '0' && b <= '9'
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Offset()
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.Text(start)
	kind := token.Ident
	if kw, ok := token.LookupKeyword(text); ok {
		kind = kw
	}
	return token.Token{Kind: kind, Span: lx.cursor.Span(start), Text: text}
}
