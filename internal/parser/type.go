package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/source"
	"drift/internal/token"
)

// parseType разбирает типовое выражение.
func (p *Parser) parseType() (ast.Type, bool) {
	switch p.peek().Kind {
	case token.Star:
		starTok := p.advance()
		elem, ok := p.parseType()
		if !ok {
			return nil, false
		}
		return &ast.PointerType{Span: starTok.Span.Cover(p.lastSpan), Elem: elem}, true

	case token.LBracket:
		return p.parseListType()

	case token.KwFn:
		return p.parseFnType()

	case token.KwEnum:
		return p.parseEnumType()

	case token.KwStruct, token.KwUnion:
		return p.parseStructOrUnion()

	case token.LParen:
		return p.parseParenType()

	case token.Ident:
		path, span, ok := p.parseTypePath()
		if !ok {
			return nil, false
		}
		return &ast.NamedType{Span: span, Path: path}, true

	default:
		p.err(diag.SynExpectType, "expected type, got '"+p.peek().Text+"'")
		return nil, false
	}
}

// parseTypePath — Ident ('::' Ident)*
func (p *Parser) parseTypePath() ([]string, source.Span, bool) {
	first := p.advance() // Ident, проверено вызывающим
	path := []string{first.Text}
	span := first.Span

	for p.at(token.ColonColon) {
		p.advance()
		seg, ok := p.parseIdent()
		if !ok {
			return nil, span, false
		}
		path = append(path, seg)
		span = span.Cover(p.lastSpan)
	}
	return path, span, true
}

// parseListType — '[' [expr] ']' type
func (p *Parser) parseListType() (ast.Type, bool) {
	openTok := p.advance()

	var length ast.Expr
	if !p.at(token.RBracket) {
		l, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		length = l
	}
	if _, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in list type"); !ok {
		return nil, false
	}
	elem, ok := p.parseType()
	if !ok {
		return nil, false
	}
	return &ast.ListType{Span: openTok.Span.Cover(p.lastSpan), Len: length, Elem: elem}, true
}

// parseFnType — 'fn' '(' params ')' ['->' type]
func (p *Parser) parseFnType() (ast.Type, bool) {
	fnTok := p.advance()
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
	return &ast.FnType{Span: fnTok.Span.Cover(p.lastSpan), Params: params, Result: result}, true
}

// parseEnumType — 'enum' [Ident] '{' Ident ['=' expr] (',' ...)* '}'
func (p *Parser) parseEnumType() (ast.Type, bool) {
	enumTok := p.advance()

	base := ""
	if p.at(token.Ident) {
		base = p.advance().Text
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after enum"); !ok {
		return nil, false
	}

	cases := make([]ast.EnumCase, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, ok := p.parseIdent()
		if !ok {
			return nil, false
		}
		c := ast.EnumCase{Name: name}
		if p.at(token.Assign) {
			p.advance()
			value, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			c.Value = value
		}
		cases = append(cases, c)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close enum")
	if !ok {
		return nil, false
	}
	return &ast.EnumType{Span: enumTok.Span.Cover(closeTok.Span), Base: base, Cases: cases}, true
}

// parseStructOrUnion — ('struct'|'union') '{' member* '}'
//
// member: ['@offset' '(' expr ')'] ( Ident ':' type | Ident '=' path | path ) ';'
func (p *Parser) parseStructOrUnion() (ast.Type, bool) {
	kwTok := p.advance()
	isUnion := kwTok.Kind == token.KwUnion

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' after "+kwTok.Text); !ok {
		return nil, false
	}

	members := make([]ast.StructMember, 0, 4)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member, ok := p.parseStructMember()
		if !ok {
			return nil, false
		}
		members = append(members, member)
	}
	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close "+kwTok.Text)
	if !ok {
		return nil, false
	}

	span := kwTok.Span.Cover(closeTok.Span)
	if isUnion {
		return &ast.UnionType{Span: span, Members: members}, true
	}
	return &ast.StructType{Span: span, Members: members}, true
}

func (p *Parser) parseStructMember() (ast.StructMember, bool) {
	var member ast.StructMember

	// Опциональная аннотация '@offset(expr)'
	if p.at(token.At) {
		p.advance()
		if _, ok := p.expect(token.KwOffset, diag.SynBadStructMember, "expected 'offset' after '@'"); !ok {
			return member, false
		}
		if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' after @offset"); !ok {
			return member, false
		}
		off, ok := p.parseExpr()
		if !ok {
			return member, false
		}
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after @offset expression"); !ok {
			return member, false
		}
		member.Offset = off
	}

	if !p.at(token.Ident) {
		p.err(diag.SynBadStructMember, "expected member name or embedded type, got '"+p.peek().Text+"'")
		return member, false
	}
	first := p.advance()

	switch p.peek().Kind {
	case token.Colon:
		// Поле: Ident ':' type
		p.advance()
		ty, ok := p.parseType()
		if !ok {
			return member, false
		}
		member.Name = first.Text
		member.Type = ty

	case token.Assign:
		// Алиас поля: Ident '=' path; правая часть — ссылка на имя.
		p.advance()
		if !p.at(token.Ident) {
			p.err(diag.SynBadStructMember, "expected aliased name after '='")
			return member, false
		}
		aliasOf, _, ok := p.parseTypePath()
		if !ok {
			return member, false
		}
		member.Name = first.Text
		member.AliasOf = aliasOf

	default:
		// Встроенный (embedded) тип: path без имени.
		path := []string{first.Text}
		span := first.Span
		for p.at(token.ColonColon) {
			p.advance()
			seg, ok := p.parseIdent()
			if !ok {
				return member, false
			}
			path = append(path, seg)
			span = span.Cover(p.lastSpan)
		}
		member.Type = &ast.NamedType{Span: span, Path: path}
	}

	if _, ok := p.expect(token.Semicolon, diag.SynExpectMemberSemi, "expected ';' after member"); !ok {
		return member, false
	}
	return member, true
}

// parseParenType — '(' type ')' | '(' type ('|' type)+ ')' | '(' type (',' type)+ ')'
func (p *Parser) parseParenType() (ast.Type, bool) {
	openTok := p.advance()

	first, ok := p.parseType()
	if !ok {
		return nil, false
	}

	switch p.peek().Kind {
	case token.Pipe:
		alts := []ast.Type{first}
		for p.at(token.Pipe) {
			p.advance()
			alt, ok := p.parseType()
			if !ok {
				return nil, false
			}
			alts = append(alts, alt)
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tagged union")
		if !ok {
			return nil, false
		}
		return &ast.TaggedUnionType{Span: openTok.Span.Cover(closeTok.Span), Alts: alts}, true

	case token.Comma:
		elems := []ast.Type{first}
		for p.at(token.Comma) {
			p.advance()
			elem, ok := p.parseType()
			if !ok {
				return nil, false
			}
			elems = append(elems, elem)
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close tuple type")
		if !ok {
			return nil, false
		}
		return &ast.TupleType{Span: openTok.Span.Cover(closeTok.Span), Elems: elems}, true

	default:
		if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after type"); !ok {
			return nil, false
		}
		return first, true
	}
}
