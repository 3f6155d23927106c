package lexer

import (
	"drift/internal/diag"
	"drift/internal/token"
)

// scanOperator распознаёт пунктуацию и операторы, от длинных к коротким.
func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Offset()
	ch := lx.cursor.Peek()
	next := lx.cursor.PeekAt(1)

	emit := func(kind token.Kind, length int) token.Token {
		for i := 0; i < length; i++ {
			lx.cursor.Bump()
		}
		return token.Token{Kind: kind, Span: lx.cursor.Span(start), Text: lx.cursor.Text(start)}
	}

	switch ch {
	case '(':
		return emit(token.LParen, 1)
	case ')':
		return emit(token.RParen, 1)
	case '{':
		return emit(token.LBrace, 1)
	case '}':
		return emit(token.RBrace, 1)
	case '[':
		return emit(token.LBracket, 1)
	case ']':
		return emit(token.RBracket, 1)
	case ',':
		return emit(token.Comma, 1)
	case ';':
		return emit(token.Semicolon, 1)
	case '@':
		return emit(token.At, 1)
	case ':':
		if next == ':' {
			return emit(token.ColonColon, 2)
		}
		return emit(token.Colon, 1)
	case '.':
		if next == '.' {
			if lx.cursor.PeekAt(2) == '.' {
				return emit(token.Ellipsis, 3)
			}
			return emit(token.DotDot, 2)
		}
		return emit(token.Dot, 1)
	case '-':
		if next == '>' {
			return emit(token.Arrow, 2)
		}
		if next == '=' {
			return emit(token.MinusAssign, 2)
		}
		return emit(token.Minus, 1)
	case '+':
		if next == '=' {
			return emit(token.PlusAssign, 2)
		}
		return emit(token.Plus, 1)
	case '*':
		if next == '=' {
			return emit(token.StarAssign, 2)
		}
		return emit(token.Star, 1)
	case '/':
		if next == '=' {
			return emit(token.SlashAssign, 2)
		}
		return emit(token.Slash, 1)
	case '%':
		if next == '=' {
			return emit(token.PercentAssign, 2)
		}
		return emit(token.Percent, 1)
	case '=':
		if next == '=' {
			return emit(token.EqEq, 2)
		}
		if next == '>' {
			return emit(token.FatArrow, 2)
		}
		return emit(token.Assign, 1)
	case '!':
		if next == '=' {
			return emit(token.BangEq, 2)
		}
		return emit(token.Bang, 1)
	case '<':
		if next == '<' {
			return emit(token.Shl, 2)
		}
		if next == '=' {
			return emit(token.LtEq, 2)
		}
		return emit(token.Lt, 1)
	case '>':
		if next == '>' {
			return emit(token.Shr, 2)
		}
		if next == '=' {
			return emit(token.GtEq, 2)
		}
		return emit(token.Gt, 1)
	case '&':
		if next == '&' {
			return emit(token.AndAnd, 2)
		}
		return emit(token.Amp, 1)
	case '|':
		if next == '|' {
			return emit(token.OrOr, 2)
		}
		return emit(token.Pipe, 1)
	case '^':
		return emit(token.Caret, 1)
	}

	tok := emit(token.Invalid, 1)
	lx.reporter.Report(diag.LexUnknownChar, diag.SevError, tok.Span,
		"unknown character "+quoteByte(ch), nil)
	return tok
}

func quoteByte(b byte) string {
	return "'" + string(rune(b)) + "'"
}
