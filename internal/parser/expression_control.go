package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/token"
)

// parseIfExpr — 'if' '(' expr ')' expr ['else' expr]
func (p *Parser) parseIfExpr() (ast.Expr, bool) {
	ifTok := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after if"); !ok {
		return nil, false
	}
	cond, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after condition"); !ok {
		return nil, false
	}

	then, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	var elseExpr ast.Expr
	if p.at(token.KwElse) {
		p.advance()
		elseExpr, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}

	return &ast.IfExpr{
		Span: ifTok.Span.Cover(p.lastSpan),
		Cond: cond,
		Then: then,
		Else: elseExpr,
	}, true
}

// parseForExpr — 'for' '(' [init] ';' [cond] ';' [post] ')' expr
func (p *Parser) parseForExpr() (ast.Expr, bool) {
	forTok := p.advance()

	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after for"); !ok {
		return nil, false
	}

	var init, cond, post ast.Expr
	var ok bool

	if !p.at(token.Semicolon) {
		init, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for initializer"); !ok {
		return nil, false
	}

	if !p.at(token.Semicolon) {
		cond, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after for condition"); !ok {
		return nil, false
	}

	if !p.at(token.RParen) {
		post, ok = p.parseExpr()
		if !ok {
			return nil, false
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after for header"); !ok {
		return nil, false
	}

	body, ok := p.parseExpr()
	if !ok {
		return nil, false
	}

	return &ast.ForExpr{
		Span: forTok.Span.Cover(p.lastSpan),
		Init: init,
		Cond: cond,
		Post: post,
		Body: body,
	}, true
}

// parseMatchExpr — 'match' '(' expr ')' '{' ('case' [type] '=>' body)* '}'
func (p *Parser) parseMatchExpr() (ast.Expr, bool) {
	matchTok := p.advance()

	scrutinee, ok := p.parseScrutinee("match")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after match"); !ok {
		return nil, false
	}

	cases := make([]ast.MatchCase, 0, 2)
	for p.at(token.KwCase) {
		p.advance()

		var guard ast.Type
		if !p.at(token.FatArrow) {
			guard, ok = p.parseType()
			if !ok {
				return nil, false
			}
		}
		if _, ok := p.expect(token.FatArrow, diag.SynExpectFatArrow, "expected '=>' after case"); !ok {
			return nil, false
		}
		body, ok := p.parseCaseBody()
		if !ok {
			return nil, false
		}
		cases = append(cases, ast.MatchCase{Guard: guard, Body: body})
	}

	if len(cases) == 0 {
		p.err(diag.SynExpectCase, "match must have at least one case")
		return nil, false
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close match")
	if !ok {
		return nil, false
	}

	return &ast.MatchExpr{
		Span:      matchTok.Span.Cover(closeTok.Span),
		Scrutinee: scrutinee,
		Cases:     cases,
	}, true
}

// parseSwitchExpr — 'switch' '(' expr ')' '{' ('case' [exprs] '=>' body)* '}'
func (p *Parser) parseSwitchExpr() (ast.Expr, bool) {
	switchTok := p.advance()

	scrutinee, ok := p.parseScrutinee("switch")
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after switch"); !ok {
		return nil, false
	}

	cases := make([]ast.SwitchCase, 0, 2)
	for p.at(token.KwCase) {
		p.advance()

		var values []ast.Expr
		if !p.at(token.FatArrow) {
			for {
				v, ok := p.parseExpr()
				if !ok {
					return nil, false
				}
				values = append(values, v)
				if p.at(token.Comma) {
					p.advance()
					continue
				}
				break
			}
		}
		if _, ok := p.expect(token.FatArrow, diag.SynExpectFatArrow, "expected '=>' after case"); !ok {
			return nil, false
		}
		body, ok := p.parseCaseBody()
		if !ok {
			return nil, false
		}
		cases = append(cases, ast.SwitchCase{Values: values, Body: body})
	}

	if len(cases) == 0 {
		p.err(diag.SynExpectCase, "switch must have at least one case")
		return nil, false
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close switch")
	if !ok {
		return nil, false
	}

	return &ast.SwitchExpr{
		Span:      switchTok.Span.Cover(closeTok.Span),
		Scrutinee: scrutinee,
		Cases:     cases,
	}, true
}

func (p *Parser) parseScrutinee(kw string) (ast.Expr, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after "+kw); !ok {
		return nil, false
	}
	scrutinee, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after "+kw+" scrutinee"); !ok {
		return nil, false
	}
	return scrutinee, true
}

// parseCaseBody — выражения до следующего 'case' или '}'.
func (p *Parser) parseCaseBody() ([]ast.Expr, bool) {
	body := make([]ast.Expr, 0, 2)
	for !p.at(token.KwCase) && !p.at(token.RBrace) && !p.at(token.EOF) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		body = append(body, e)

		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		break
	}
	return body, true
}
