package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/token"
)

func (p *Parser) parseDecl() (ast.Decl, bool) {
	switch p.peek().Kind {
	case token.KwType:
		return p.parseTypeDecl()
	case token.KwLet:
		return p.parseVarDecl()
	case token.KwConst:
		return p.parseConstDecl()
	case token.KwFn:
		return p.parseFnDecl()
	default:
		// parseFile не должен сюда попадать
		p.err(diag.SynUnexpectedTopLevel, "expected declaration")
		return nil, false
	}
}

// parseTypeDecl — 'type' Ident '=' type ';'
func (p *Parser) parseTypeDecl() (ast.Decl, bool) {
	typeTok := p.advance()

	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after type name"); !ok {
		return nil, false
	}
	ty, ok := p.parseType()
	if !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected semicolon after type declaration")
	if !ok {
		return nil, false
	}

	return &ast.TypeDecl{
		Span: typeTok.Span.Cover(semi.Span),
		Name: name,
		Type: ty,
	}, true
}

// parseVarDecl — 'let' binding (',' binding)* ';'
func (p *Parser) parseVarDecl() (ast.Decl, bool) {
	letTok := p.advance()
	bindings, ok := p.parseBindings()
	if !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected semicolon after let declaration")
	if !ok {
		return nil, false
	}
	return &ast.VarDecl{Span: letTok.Span.Cover(semi.Span), Bindings: bindings}, true
}

// parseConstDecl — 'const' binding (',' binding)* ';'
func (p *Parser) parseConstDecl() (ast.Decl, bool) {
	constTok := p.advance()
	bindings, ok := p.parseBindings()
	if !ok {
		return nil, false
	}
	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected semicolon after const declaration")
	if !ok {
		return nil, false
	}
	return &ast.ConstDecl{Span: constTok.Span.Cover(semi.Span), Bindings: bindings}, true
}

// parseBindings — binding (',' binding)*; binding = Ident [':' type] ['=' expr]
func (p *Parser) parseBindings() ([]ast.Binding, bool) {
	bindings := make([]ast.Binding, 0, 1)
	for {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		b := ast.Binding{Name: name}

		if p.at(token.Colon) {
			p.advance()
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			b.Type = ty
		}
		if p.at(token.Assign) {
			p.advance()
			init, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			b.Init = init
		}

		bindings = append(bindings, b)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		return bindings, true
	}
}

// parseFnDecl — 'fn' Ident '(' params ')' ['->' type] block
func (p *Parser) parseFnDecl() (ast.Decl, bool) {
	fnTok := p.advance()

	name, ok := p.parseIdent()
	if !ok {
		return nil, false
	}
	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}

	var result ast.Type
	if p.at(token.Arrow) {
		p.advance()
		result, ok = p.parseType()
		if !ok {
			return nil, false
		}
	}

	if !p.at(token.LBrace) {
		p.err(diag.SynUnexpectedToken, "expected function body, got '"+p.peek().Text+"'")
		return nil, false
	}
	body, ok := p.parseBlock()
	if !ok {
		return nil, false
	}

	return &ast.FnDecl{
		Span:   fnTok.Span.Cover(body.Span),
		Name:   name,
		Params: params,
		Result: result,
		Body:   body,
	}, true
}

// parseParams — '(' [Ident ':' type ['...'] (',' ...)*] ')'
func (p *Parser) parseParams() ([]ast.Param, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '('"); !ok {
		return nil, false
	}

	params := make([]ast.Param, 0, 2)
	for !p.at(token.RParen) && !p.at(token.EOF) {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after parameter name"); !ok {
			return nil, false
		}
		ty, ok := p.parseType()
		if !ok {
			return nil, false
		}
		param := ast.Param{Name: name, Type: ty}
		if p.at(token.Ellipsis) {
			p.advance()
			param.Variadic = true
		}
		params = append(params, param)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after parameters"); !ok {
		return nil, false
	}
	return params, true
}
