package parser

import (
	"drift/internal/ast"
	"drift/internal/diag"
	"drift/internal/token"
)

// parseExpr — входная точка выражений: уровень присваивания.
// Присваивание правоассоциативно: a = b = c разбирается как a = (b = c).
func (p *Parser) parseExpr() (ast.Expr, bool) {
	left, ok := p.parseBinary(1)
	if !ok {
		return nil, false
	}

	if p.peek().IsAssignOp() {
		opTok := p.advance()
		if !isAssignable(left) {
			p.err(diag.SynBadAssignTarget, "cannot assign to this expression")
			return nil, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		return &ast.AssignExpr{
			Span:   ast.ExprSpan(left).Cover(p.lastSpan),
			Op:     opTok.Kind,
			Target: left,
			Value:  value,
		}, true
	}
	return left, true
}

func isAssignable(e ast.Expr) bool {
	switch e := e.(type) {
	case *ast.PathExpr, *ast.IndexExpr, *ast.FieldExpr:
		return true
	case *ast.UnaryExpr:
		return e.Op == token.Star
	default:
		return false
	}
}

// binPrec — таблица приоритетов бинарных операторов (0 = не бинарный).
func binPrec(k token.Kind) int {
	switch k {
	case token.Star, token.Slash, token.Percent, token.Shl, token.Shr, token.Amp:
		return 5
	case token.Plus, token.Minus, token.Pipe, token.Caret:
		return 4
	case token.EqEq, token.BangEq, token.Lt, token.LtEq, token.Gt, token.GtEq:
		return 3
	case token.AndAnd:
		return 2
	case token.OrOr:
		return 1
	default:
		return 0
	}
}

func (p *Parser) parseBinary(minPrec int) (ast.Expr, bool) {
	left, ok := p.parseUnary()
	if !ok {
		return nil, false
	}

	for {
		prec := binPrec(p.peek().Kind)
		if prec == 0 || prec < minPrec {
			return left, true
		}
		opTok := p.advance()
		right, ok := p.parseBinary(prec + 1)
		if !ok {
			return nil, false
		}
		left = &ast.BinaryExpr{
			Span: ast.ExprSpan(left).Cover(p.lastSpan),
			Op:   opTok.Kind,
			X:    left,
			Y:    right,
		}
	}
}

func (p *Parser) parseUnary() (ast.Expr, bool) {
	switch p.peek().Kind {
	case token.Minus, token.Bang, token.Amp, token.Star:
		opTok := p.advance()
		x, ok := p.parseUnary()
		if !ok {
			return nil, false
		}
		return &ast.UnaryExpr{
			Span: opTok.Span.Cover(p.lastSpan),
			Op:   opTok.Kind,
			X:    x,
		}, true
	default:
		return p.parsePostfix()
	}
}

// parsePostfix — вызовы, индексация, срезы, поля, касты и '...'
func (p *Parser) parsePostfix() (ast.Expr, bool) {
	x, ok := p.parsePrimary()
	if !ok {
		return nil, false
	}

	for {
		switch p.peek().Kind {
		case token.LParen:
			p.advance()
			args, ok := p.parseExprList(token.RParen)
			if !ok {
				return nil, false
			}
			closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' after arguments")
			if !ok {
				return nil, false
			}
			x = &ast.CallExpr{Span: ast.ExprSpan(x).Cover(closeTok.Span), Fn: x, Args: args}

		case token.LBracket:
			x, ok = p.parseIndexOrSlice(x)
			if !ok {
				return nil, false
			}

		case token.Dot:
			p.advance()
			var name string
			switch p.peek().Kind {
			case token.Ident, token.IntLit:
				name = p.advance().Text
			default:
				p.err(diag.SynUnexpectedToken, "expected field name or tuple index after '.'")
				return nil, false
			}
			x = &ast.FieldExpr{Span: ast.ExprSpan(x).Cover(p.lastSpan), X: x, Name: name}

		case token.KwAs:
			p.advance()
			ty, ok := p.parseType()
			if !ok {
				return nil, false
			}
			x = &ast.CastExpr{Span: ast.ExprSpan(x).Cover(p.lastSpan), X: x, Type: ty}

		case token.Ellipsis:
			p.advance()
			x = &ast.SpreadExpr{Span: ast.ExprSpan(x).Cover(p.lastSpan), X: x}

		default:
			return x, true
		}
	}
}

// parseIndexOrSlice — '[' expr ']' | '[' [expr] '..' [expr] ']'
func (p *Parser) parseIndexOrSlice(x ast.Expr) (ast.Expr, bool) {
	p.advance() // съедаем '['

	var lo ast.Expr
	if !p.at(token.DotDot) {
		l, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		lo = l
		if !p.at(token.DotDot) {
			closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after index")
			if !ok {
				return nil, false
			}
			return &ast.IndexExpr{Span: ast.ExprSpan(x).Cover(closeTok.Span), X: x, Index: lo}, true
		}
	}

	p.advance() // съедаем '..'
	var hi ast.Expr
	if !p.at(token.RBracket) {
		h, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		hi = h
	}
	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' after slice")
	if !ok {
		return nil, false
	}
	return &ast.SliceExpr{Span: ast.ExprSpan(x).Cover(closeTok.Span), X: x, Lo: lo, Hi: hi}, true
}

// parseExprList — выражения через ',' до closer (closer не съедается).
func (p *Parser) parseExprList(closer token.Kind) ([]ast.Expr, bool) {
	exprs := make([]ast.Expr, 0, 4)
	for !p.at(closer) && !p.at(token.EOF) {
		e, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		exprs = append(exprs, e)
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	return exprs, true
}
