package lexer

import (
	"drift/internal/diag"
	"drift/internal/source"
	"drift/internal/token"
)

// Lexer produces the значимые tokens of one file, skipping whitespace and
// comments. Lexical problems are reported through the diag.Reporter and an
// Invalid token is produced so the parser can resynchronize.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // 1-элементный буфер для Peek
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	if lx.look == nil {
		tok := lx.scan()
		lx.look = &tok
	}
	return *lx.look
}

// Next returns the next token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	return lx.scan()
}

func (lx *Lexer) scan() token.Token {
	lx.skipTrivia()

	if lx.cursor.EOF() {
		off := lx.cursor.Offset()
		return token.Token{
			Kind: token.EOF,
			Span: source.Span{File: lx.file.ID, Start: off, End: off},
		}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStartByte(ch):
		return lx.scanIdentOrKeyword()
	case isDigitByte(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperator()
	}
}

// skipTrivia съедает пробелы и комментарии (// и /* */).
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			start := lx.cursor.Offset()
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			if !closed {
				lx.reporter.Report(diag.LexUnterminatedBlockComment, diag.SevError,
					lx.cursor.Span(start), "unterminated block comment", nil)
			}
		default:
			return
		}
	}
}
