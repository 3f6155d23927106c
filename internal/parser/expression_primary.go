package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/token"
)

func (p *Parser) parsePrimary() (ast.Expr, bool) {
	switch p.peek().Kind {
	case token.Ident:
		return p.parsePathOrStructLit()

	case token.IntLit, token.FloatLit, token.StringLit, token.KwTrue, token.KwFalse, token.KwNull:
		tok := p.advance()
		return &ast.LitExpr{Span: tok.Span, Kind: tok.Kind, Text: tok.Text}, true

	case token.LParen:
		return p.parseParenOrTuple()

	case token.LBracket:
		return p.parseArrayLit()

	case token.LBrace:
		return p.parseBlock()

	case token.KwLet:
		return p.parseLetExpr()

	case token.KwIf:
		return p.parseIfExpr()

	case token.KwFor:
		return p.parseForExpr()

	case token.KwMatch:
		return p.parseMatchExpr()

	case token.KwSwitch:
		return p.parseSwitchExpr()

	case token.KwDefer:
		deferTok := p.advance()
		x, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.DeferExpr{Span: deferTok.Span.Cover(p.lastSpan), X: x}, true

	case token.KwReturn:
		tok := p.advance()
		value, ok := p.parseOptionalValue()
		if !ok {
			return nil, false
		}
		return &ast.ReturnExpr{Span: tok.Span.Cover(p.lastSpan), Value: value}, true

	case token.KwYield:
		tok := p.advance()
		value, ok := p.parseOptionalValue()
		if !ok {
			return nil, false
		}
		return &ast.YieldExpr{Span: tok.Span.Cover(p.lastSpan), Value: value}, true

	case token.KwBreak:
		tok := p.advance()
		return &ast.BreakExpr{Span: tok.Span}, true

	case token.KwContinue:
		tok := p.advance()
		return &ast.ContinueExpr{Span: tok.Span}, true

	case token.KwAlloc:
		return p.parseAlloc()

	case token.KwFree:
		tok := p.advance()
		x, ok := p.parseBuiltinParenExpr("free")
		if !ok {
			return nil, false
		}
		return &ast.FreeExpr{Span: tok.Span.Cover(p.lastSpan), X: x}, true

	case token.KwAppend:
		return p.parseAppendOrInsert(false)

	case token.KwInsert:
		return p.parseAppendOrInsert(true)

	case token.KwAssert:
		return p.parseAssert()

	case token.KwSize:
		tok := p.advance()
		if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after size"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after size operand")
		if !ok {
			return nil, false
		}
		return &ast.SizeExpr{Span: tok.Span.Cover(closeTok.Span), Type: ty}, true

	case token.KwLen:
		tok := p.advance()
		x, ok := p.parseBuiltinParenExpr("len")
		if !ok {
			return nil, false
		}
		return &ast.LenExpr{Span: tok.Span.Cover(p.lastSpan), X: x}, true

	case token.KwOffset:
		tok := p.advance()
		x, ok := p.parseBuiltinParenExpr("offset")
		if !ok {
			return nil, false
		}
		return &ast.OffsetExpr{Span: tok.Span.Cover(p.lastSpan), X: x}, true

	default:
		p.err(diag.SynExpectExpr, "expected expression, got '"+p.peek().Text+"'")
		return nil, false
	}
}

// parsePathOrStructLit — путь; если сразу за ним идёт '{', это строковый
// литерал структуры: имя литерала само по себе ссылка на тип.
func (p *Parser) parsePathOrStructLit() (ast.Expr, bool) {
	first := p.advance()
	segments := []string{first.Text}
	span := first.Span

	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		segments = append(segments, seg)
		span = span.Cover(p.lastSpan)
	}

	if !p.at(token.LBrace) {
		return &ast.PathExpr{Span: span, Segments: segments}, true
	}

	// Струкурный литерал: path '{' [Ident '=' expr (',' ...)*] '}'
	p.advance()
	fields := make([]ast.FieldInit, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' in field initializer"); !ok {
			return nil, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		fields = append(fields, ast.FieldInit{Name: name, Value: value})

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close struct literal")
	if !ok {
		return nil, false
	}
	return &ast.StructLit{Span: span.Cover(closeTok.Span), Name: segments, Fields: fields}, true
}

// parseParenOrTuple — '(' expr ')' | '(' expr (',' expr)+ ')'
func (p *Parser) parseParenOrTuple() (ast.Expr, bool) {
	openTok := p.advance()

	first, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	if p.at(token.Comma) {
		elems := []ast.Expr{first}
		for p.at(token.Comma) {
			p.advance()
			e, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			elems = append(elems, e)
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tuple")
		if !ok {
			return nil, false
		}
		return &ast.TupleLit{Span: openTok.Span.Cover(closeTok.Span), Elems: elems}, true
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after expression"); !ok {
		return nil, false
	}
	return first, true
}

// parseArrayLit — '[' [expr (',' expr)*] ']'
func (p *Parser) parseArrayLit() (ast.Expr, bool) {
	openTok := p.advance()
	elems, ok := p.parseExprList(token.RBracket)
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	if !ok {
		return nil, false
	}
	return &ast.ArrayLit{Span: openTok.Span.Cover(closeTok.Span), Elems: elems}, true
}

// parseBlock — '{' (expr ';')* [expr] '}'
func (p *Parser) parseBlock() (*ast.BlockExpr, bool) {
	openTok := p.advance()

	exprs := make([]ast.Expr, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		exprs = append(exprs, e)

		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		// последнее выражение блока может быть без ';'
		break
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close block")
	if !ok {
		return nil, false
	}
	return &ast.BlockExpr{Span: openTok.Span.Cover(closeTok.Span), Exprs: exprs}, true
}

// parseLetExpr — локальная группа связываний: 'let' binding (',' binding)*
func (p *Parser) parseLetExpr() (ast.Expr, bool) {
	letTok := p.advance()
	bindings, ok := p.parseBindings()
	if !ok {
		return nil, false
	}
	return &ast.LetExpr{Span: letTok.Span.Cover(p.lastSpan), Bindings: bindings}, true
}

// parseOptionalValue — значение return/yield, если оно есть.
func (p *Parser) parseOptionalValue() (ast.Expr, bool) {
	switch p.peek().Kind {
	case token.Semicolon, token.RBrace, token.RParen, token.Comma, token.KwCase, token.EOF:
		return nil, true
	default:
		return p.parseExpr()
	}
}

// parseBuiltinParenExpr — '(' expr ')' после встроенного слова.
func (p *Parser) parseBuiltinParenExpr(name string) (ast.Expr, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+name); !ok {
		return nil, false
	}
	x, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after "+name+" operand"); !ok {
		return nil, false
	}
	return x, true
}
