package lexer

import (
	"drift/internal/diag"
	"drift/internal/token"
)

// scanString распознаёт строковый литерал в двойных кавычках.
// Escape-последовательности не интерпретируются: для анализа импортов
// достаточно границ литерала, содержимое остаётся сырым текстом.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Offset()
	lx.cursor.Bump() // открывающая '"'

	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\\' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if ch == '"' {
			lx.cursor.Bump()
			return token.Token{
				Kind: token.StringLit,
				Span: lx.cursor.Span(start),
				Text: lx.cursor.Text(start),
			}
		}
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
	}

	span := lx.cursor.Span(start)
	lx.reporter.Report(diag.LexUnterminatedString, diag.SevError, span,
		"unterminated string literal", nil)
	return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.Text(start)}
}
