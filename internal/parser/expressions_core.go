package parser

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/token"
)

// parseExpression is the Pratt-parser core: a prefix parselet produces the
// left operand, then infix parselets fold in operators of higher precedence
// than the caller's (prefixParseFns/infixParseFns keyed by token type,
// precedence climbing via peekPrecedence/curPrecedence).
func (p *Parser) parseExpression(precedence int) ast.Expr {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.addErrorf(p.curToken.Position, "unexpected token %q in expression", p.curToken.Lexeme)
		return nil
	}
	left := prefix()

	for precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

// parseBinaryExpr handles every left-associative arithmetic/relational/
// logical operator by folding it into a CompoundExpr.
func (p *Parser) parseBinaryExpr(left ast.Expr) ast.Expr {
	pos := p.curToken.Position
	op := p.curToken.Lexeme
	prec := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(prec)
	return &ast.CompoundExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Left: left, Op: op, Right: right}
}

// parseAssignExpr handles `lhs = rhs`, right-associative.
func (p *Parser) parseAssignExpr(left ast.Expr) ast.Expr {
	pos := p.curToken.Position
	p.nextToken()
	right := p.parseExpression(ASSIGN_PREC - 1)
	return &ast.AssignExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, LHS: left, RHS: right}
}

// parseUnaryExpr handles prefix `-x` and `!x`.
func (p *Parser) parseUnaryExpr() ast.Expr {
	pos := p.curToken.Position
	op := p.curToken.Lexeme
	p.nextToken()
	right := p.parseExpression(PREFIX)
	return &ast.CompoundExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Op: op, Right: right}
}

func (p *Parser) parseGroupedExpr() ast.Expr {
	p.nextToken()
	exp := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return exp
	}
	return exp
}
