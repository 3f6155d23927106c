// Package parser builds the Drift AST with a hand-written recursive descent.
//
// Ошибка прерывает разбор текущего item; parseFile пропускает токены до
// ближайшей ';' и продолжает. Вызывающая сторона решает, фатальны ли
// накопленные ошибки.
package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/lexer"
	"drift/internal/source"
	"drift/internal/token"
)

type Parser struct {
	lx       *lexer.Lexer
	reporter diag.Reporter
	lastSpan source.Span
}

// ParseFile parses one source file into an AST. Diagnostics go to the
// reporter; the returned bool is false when at least one syntax or lexical
// error was reported.
func ParseFile(file *source.File, reporter diag.Reporter) (*ast.File, bool) {
	bag := diag.NewBag(64)
	multi := tee{a: diag.BagReporter{Bag: bag}, b: reporter}
	p := &Parser{
		lx:       lexer.New(file, multi),
		reporter: multi,
	}
	f := p.parseFile()
	return f, !bag.HasErrors()
}

// tee дублирует диагностики: во внутренний Bag (для подсчёта ошибок)
// и наружу вызывающей стороне.
type tee struct {
	a, b diag.Reporter
}

func (t tee) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	t.a.Report(code, sev, primary, msg, notes)
	if t.b != nil {
		t.b.Report(code, sev, primary, msg, notes)
	}
}

func (p *Parser) parseFile() *ast.File {
	f := &ast.File{}
	seenDecl := false
	for {
		switch p.peek().Kind {
		case token.EOF:
			return f
		case token.KwImport:
			// Импорты образуют сплошной блок в начале файла.
			if seenDecl {
				p.err(diag.SynImportAfterDecl, "import must precede all declarations")
				p.advance()
				p.recoverToSemicolon()
				continue
			}
			if imp, ok := p.parseImport(); ok {
				f.Imports = append(f.Imports, imp)
			} else {
				p.recoverToSemicolon()
			}
		case token.KwType, token.KwLet, token.KwConst, token.KwFn:
			seenDecl = true
			if d, ok := p.parseDecl(); ok {
				f.Decls = append(f.Decls, d)
			} else {
				p.recoverToSemicolon()
			}
		default:
			p.err(diag.SynUnexpectedTopLevel,
				"expected import or declaration, got '"+p.peek().Text+"'")
			p.advance()
			p.recoverToSemicolon()
		}
	}
}

// recoverToSemicolon пропускает токены до ';' включительно (или до EOF).
func (p *Parser) recoverToSemicolon() {
	for {
		switch p.peek().Kind {
		case token.EOF:
			return
		case token.Semicolon:
			p.advance()
			return
		default:
			p.advance()
		}
	}
}

func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// diagSpan — лучший span для диагностики: на EOF указываем за последним
// значимым токеном, иначе на текущий.
func (p *Parser) diagSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.reporter.Report(code, diag.SevError, sp, msg, nil)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.lx.Peek().Text}, false
}

func (p *Parser) err(code diag.Code, msg string) {
	p.reporter.Report(code, diag.SevError, p.diagSpan(), msg, nil)
}

// parseIdent — утилита: ожидает Ident и возвращает его текст.
func (p *Parser) parseIdent() (string, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return tok.Text, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got \""+p.peek().Text+"\"")
	return "", false
}
