package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/token"
)

// parseImport распознаёт формы:
//
//	import module::path ;                       // модуль под своим именем
//	import module::path as Ident ;              // модуль с алиасом
//	import module::path :: * ;                  // весь модуль (side effects)
//	import module::path :: { Ident, ... } ;     // выборочные элементы
//	import module::path :: { Ident as Ident } ; // элементы с алиасами
func (p *Parser) parseImport() (*ast.Import, bool) {
	importTok := p.advance() // съедаем KwImport; если мы здесь, то это точно KwImport

	if !p.at(token.Ident) {
		p.err(diag.SynExpectModuleSeg, "expected module segment, got '"+p.peek().Text+"'")
		return nil, false
	}
	firstSeg, _ := p.parseIdent()

	imp := &ast.Import{
		Path: []string{firstSeg},
		Mode: ast.ImportModule,
	}

	// Цикл по '::': следующий сегмент пути, '*' или группа.
segments:
	for p.at(token.ColonColon) {
		p.advance() // съедаем '::'

		switch p.peek().Kind {
		case token.Ident:
			seg, ok := p.parseIdent()
			if !ok {
				return nil, false
			}
			imp.Path = append(imp.Path, seg)

		case token.Star:
			p.advance()
			imp.Mode = ast.ImportWildcard
			break segments

		case token.LBrace:
			members, ok := p.parseImportGroup()
			if !ok {
				return nil, false
			}
			imp.Mode = ast.ImportGroup
			imp.Members = members
			break segments

		default:
			p.err(diag.SynExpectItemAfterDbl, "expected identifier, '*' or '{' after '::'")
			return nil, false
		}
	}

	if imp.Mode == ast.ImportModule && p.at(token.KwAs) {
		p.advance() // съедаем 'as'
		if !p.at(token.Ident) {
			p.err(diag.SynExpectIdentAfterAs, "expected identifier after 'as', got '"+p.peek().Text+"'")
			return nil, false
		}
		alias, _ := p.parseIdent()
		imp.Alias = alias
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected semicolon after import")
	if !ok {
		return nil, false
	}

	// Финальный span от 'import' до точки с запятой
	imp.Span = importTok.Span.Cover(semi.Span)
	return imp, true
}

// parseImportGroup — '{' Ident [as Ident] (',' Ident [as Ident])* '}'
func (p *Parser) parseImportGroup() ([]ast.ImportMember, bool) {
	p.advance() // съедаем '{'
	members := make([]ast.ImportMember, 0, 2)

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, ok := p.parseIdent()
		if !ok {
			break
		}

		alias := ""
		if p.at(token.KwAs) {
			p.advance()
			if !p.at(token.Ident) {
				p.err(diag.SynExpectIdentAfterAs, "expected identifier after 'as', got '"+p.peek().Text+"'")
				break
			}
			alias, _ = p.parseIdent()
		}

		members = append(members, ast.ImportMember{Name: name, Alias: alias})

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close import group"); !ok {
		return nil, false
	}
	if len(members) == 0 {
		p.err(diag.SynEmptyImportGroup, "import group must name at least one item")
		return nil, false
	}
	return members, true
}
