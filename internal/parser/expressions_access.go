package parser

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/token"
)

// parseIdentExpr parses a bare name, which is either a variable read or the
// start of an unqualified call — `foo` vs. `foo(args)`.
func (p *Parser) parseIdentExpr() ast.Expr {
	pos := p.curToken.Position
	name := &ast.Identifier{Base: ast.Base{Position: pos}, Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args := p.parseArgs()
		return &ast.CallExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Method: name, Args: args}
	}
	return &ast.IdentExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Name: name}
}

// parseArgs parses a parenthesized, comma-separated argument list.
// curToken is '(' on entry; curToken is ')' on return.
func (p *Parser) parseArgs() []ast.Expr {
	var args []ast.Expr
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}
	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.expectPeek(token.RPAREN)
	return args
}

// parseFieldAccessOrCall handles the infix `.` operator: `base.field` or
// `base.method(args)`.
func (p *Parser) parseFieldAccessOrCall(base ast.Expr) ast.Expr {
	pos := p.curToken.Position
	if !p.expectPeek(token.IDENT) {
		return base
	}
	name := &ast.Identifier{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		args := p.parseArgs()
		return &ast.CallExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Base: base, Method: name, Args: args}
	}
	return &ast.FieldAccessExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Base: base, Field: name}
}

// parseArrayAccess handles the infix `[` operator: `base[index]`.
func (p *Parser) parseArrayAccess(base ast.Expr) ast.Expr {
	pos := p.curToken.Position
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RBRACKET) {
		return &ast.ArrayAccessExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Base: base, Index: index}
	}
	return &ast.ArrayAccessExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Base: base, Index: index}
}

// parseNewExpr parses `new ClassName`.
func (p *Parser) parseNewExpr() ast.Expr {
	pos := p.curToken.Position
	if !p.expectPeek(token.IDENT) {
		return &ast.NewExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}}
	}
	ct := &ast.NamedType{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
	return &ast.NewExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, ClassType: ct}
}

// parseNewArrayExpr parses `NewArray(size, ElemType)`.
func (p *Parser) parseNewArrayExpr() ast.Expr {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return &ast.NewArrayExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}}
	}
	p.nextToken()
	size := p.parseExpression(LOWEST)
	if !p.expectPeek(token.COMMA) {
		return &ast.NewArrayExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Size: size}
	}
	p.nextToken()
	elem := p.parseType()
	if !p.expectPeek(token.RPAREN) {
		return &ast.NewArrayExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Size: size, Elem: elem}
	}
	return &ast.NewArrayExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Size: size, Elem: elem}
}
