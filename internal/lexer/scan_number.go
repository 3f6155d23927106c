package lexer

import (
	"drift/internal/diag"
	"drift/internal/token"
)

// scanNumber распознаёт целые и вещественные литералы.
// `1..3` — это IntLit DotDot IntLit, а не два FloatLit.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Offset()

	// Префиксы 0x / 0b / 0o
	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X', 'b', 'B', 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			digits := 0
			for !lx.cursor.EOF() && isRadixDigit(lx.cursor.Peek()) {
				lx.cursor.Bump()
				digits++
			}
			span := lx.cursor.Span(start)
			text := lx.cursor.Text(start)
			if digits == 0 {
				lx.reporter.Report(diag.LexBadNumber, diag.SevError, span,
					"missing digits after radix prefix", nil)
				return token.Token{Kind: token.Invalid, Span: span, Text: text}
			}
			return token.Token{Kind: token.IntLit, Span: span, Text: text}
		}
	}

	for !lx.cursor.EOF() && (isDigitByte(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
		lx.cursor.Bump()
	}

	kind := token.IntLit
	// Дробная часть: '.' и цифра (но не '..')
	if lx.cursor.Peek() == '.' && isDigitByte(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for !lx.cursor.EOF() && (isDigitByte(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
	}

	return token.Token{Kind: kind, Span: lx.cursor.Span(start), Text: lx.cursor.Text(start)}
}

func isRadixDigit(b byte) bool {
	return isDigitByte(b) ||
		(b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F') || b == '_'
}
