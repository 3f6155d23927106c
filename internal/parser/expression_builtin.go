package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/token"
)

// parseAlloc — 'alloc' '(' expr [',' expr] ')'
func (p *Parser) parseAlloc() (ast.Expr, bool) {
	allocTok := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after alloc"); !ok {
		return nil, false
	}
	init, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	var capacity ast.Expr
	if p.at(token.Comma) {
		p.advance()
		capacity, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after alloc")
	if !ok {
		return nil, false
	}
	return &ast.AllocExpr{
		Span: allocTok.Span.Cover(closeTok.Span),
		Init: init,
		Cap:  capacity,
	}, true
}

// parseAppendOrInsert — 'append' '(' target (',' value)* ')' — замыкающий
// аргумент с '...' становится variadic spread, а не обычным значением.
func (p *Parser) parseAppendOrInsert(insert bool) (ast.Expr, bool) {
	kwTok := p.advance()
	name := "append"
	if insert {
		name = "insert"
	}

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+name); !ok {
		return nil, false
	}
	target, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	values := make([]ast.Expr, 0, 2)
	for p.at(token.Comma) {
		p.advance()
		v, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		values = append(values, v)
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after "+name)
	if !ok {
		return nil, false
	}

	out := &ast.AppendExpr{
		Span:   kwTok.Span.Cover(closeTok.Span),
		Target: target,
		Values: values,
		Insert: insert,
	}
	if n := len(out.Values); n > 0 {
		if spread, isSpread := out.Values[n-1].(*ast.SpreadExpr); isSpread {
			out.Spread = spread.X
			out.Values = out.Values[:n-1]
		}
	}
	return out, true
}

// parseAssert — 'assert' '(' expr [',' expr] ')'
func (p *Parser) parseAssert() (ast.Expr, bool) {
	assertTok := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after assert"); !ok {
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	var msg ast.Expr
	if p.at(token.Comma) {
		p.advance()
		msg, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}

	closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after assert")
	if !ok {
		return nil, false
	}
	return &ast.AssertExpr{
		Span: assertTok.Span.Cover(closeTok.Span),
		Cond: cond,
		Msg:  msg,
	}, true
}
