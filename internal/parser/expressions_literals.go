package parser

import (
	"strconv"

	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/token"
)

func (p *Parser) parseIntLit() ast.Expr {
	pos := p.curToken.Position
	v, err := strconv.ParseInt(p.curToken.Lexeme, 0, 64)
	if err != nil {
		p.addErrorf(pos, "invalid integer literal %q", p.curToken.Lexeme)
	}
	return &ast.IntLit{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Value: v}
}

func (p *Parser) parseDoubleLit() ast.Expr {
	pos := p.curToken.Position
	v, err := strconv.ParseFloat(p.curToken.Lexeme, 64)
	if err != nil {
		p.addErrorf(pos, "invalid double literal %q", p.curToken.Lexeme)
	}
	return &ast.DoubleLit{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Value: v}
}

func (p *Parser) parseBoolLit() ast.Expr {
	pos := p.curToken.Position
	return &ast.BoolLit{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Value: p.curToken.Lexeme == "true"}
}

func (p *Parser) parseStringLit() ast.Expr {
	pos := p.curToken.Position
	return &ast.StringLit{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}, Value: p.curToken.Lexeme}
}

func (p *Parser) parseNullLit() ast.Expr {
	return &ast.NullLit{ExprBase: ast.ExprBase{Base: ast.Base{Position: p.curToken.Position}}}
}

func (p *Parser) parseThisExpr() ast.Expr {
	return &ast.ThisExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: p.curToken.Position}}}
}

func (p *Parser) parseReadIntegerExpr() ast.Expr {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return &ast.ReadIntegerExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}}
	}
	p.expectPeek(token.RPAREN)
	return &ast.ReadIntegerExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}}
}

func (p *Parser) parseReadLineExpr() ast.Expr {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return &ast.ReadLineExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}}
	}
	p.expectPeek(token.RPAREN)
	return &ast.ReadLineExpr{ExprBase: ast.ExprBase{Base: ast.Base{Position: pos}}}
}
