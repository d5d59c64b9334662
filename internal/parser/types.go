package parser

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/token"
)

// parseType parses a base type (primitive, void, or a named class/interface
// type) followed by zero or more `[]` suffixes. Assumes curToken is the
// first token of the type.
func (p *Parser) parseType() ast.Type {
	pos := p.curToken.Position
	var base ast.Type

	switch p.curToken.Type {
	case token.VOID:
		base = &ast.VoidType{Base: ast.Base{Position: pos}}
	case token.INT:
		base = &ast.IntType{Base: ast.Base{Position: pos}}
	case token.DOUBLE_KW:
		base = &ast.DoubleType{Base: ast.Base{Position: pos}}
	case token.BOOL:
		base = &ast.BoolType{Base: ast.Base{Position: pos}}
	case token.STRING_KW:
		base = &ast.StringType{Base: ast.Base{Position: pos}}
	case token.NULL:
		base = &ast.NullType{Base: ast.Base{Position: pos}}
	case token.IDENT:
		base = &ast.NamedType{Base: ast.Base{Position: pos}, Name: p.curToken.Lexeme}
	default:
		p.addErrorf(pos, "expected a type, got %q", p.curToken.Lexeme)
		return nil
	}

	for p.peekTokenIs(token.LBRACKET) {
		p.nextToken() // consume '['
		if !p.expectPeek(token.RBRACKET) {
			return nil
		}
		base = &ast.ArrayType{Base: ast.Base{Position: pos}, Elem: base}
	}

	return base
}
