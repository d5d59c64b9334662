package parser

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/token"
)

// parseDecl parses one top-level declaration: a class, an interface, or a
// `Type name ...` that is either a variable (`;`) or a function (`(`).
func (p *Parser) parseDecl() ast.Decl {
	switch p.curToken.Type {
	case token.CLASS:
		return p.parseClassDecl()
	case token.INTERFACE:
		return p.parseInterfaceDecl()
	default:
		return p.parseVarOrFnDecl()
	}
}

// parseVarOrFnDecl parses `Type Identifier` and then decides, from the
// token that follows the name, whether it is a VarDecl (`;`) or an FnDecl
// (`(` formals `)` body). Used both at top level and inside class bodies.
func (p *Parser) parseVarOrFnDecl() ast.Decl {
	pos := p.curToken.Position
	declType := p.parseType()
	if declType == nil {
		return nil
	}
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}

	if p.peekTokenIs(token.LPAREN) {
		return p.parseFnDecl(pos, name, declType)
	}

	if !p.expectPeek(token.SEMI) {
		return nil
	}
	return &ast.VarDecl{Base: ast.Base{Position: pos}, Name: name, DeclType: declType}
}

// parseFnDecl parses the `(` formals `)` body-or-`;` tail of a function or
// method declaration; curToken is the name identifier on entry.
func (p *Parser) parseFnDecl(pos token.Position, name *ast.Identifier, returnType ast.Type) *ast.FnDecl {
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	formals := p.parseFormals()

	fn := &ast.FnDecl{Base: ast.Base{Position: pos}, Name: name, ReturnType: returnType, Formals: formals}

	if p.peekTokenIs(token.SEMI) {
		p.nextToken() // abstract method: no body
		return fn
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	fn.Body = p.parseBlockBody()
	return fn
}

// parseFormals parses a parenthesized, comma-separated `Type name` list.
// curToken is '(' on entry; curToken is ')' on return.
func (p *Parser) parseFormals() []*ast.VarDecl {
	var formals []*ast.VarDecl
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return formals
	}
	p.nextToken()
	for {
		pos := p.curToken.Position
		t := p.parseType()
		if t == nil {
			break
		}
		if !p.expectPeek(token.IDENT) {
			break
		}
		name := &ast.Identifier{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
		formals = append(formals, &ast.VarDecl{Base: ast.Base{Position: pos}, Name: name, DeclType: t})
		if p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			continue
		}
		break
	}
	if !p.expectPeek(token.RPAREN) {
		return formals
	}
	return formals
}

// parseClassDecl parses `class Name [extends Base] [implements I, J] { members }`.
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	pos := p.curToken.Position
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
	cls := &ast.ClassDecl{Base: ast.Base{Position: pos}, Name: name}

	if p.peekTokenIs(token.EXTENDS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		cls.Extends = &ast.NamedType{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
	}

	if p.peekTokenIs(token.IMPLEMENTS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		cls.Implements = append(cls.Implements, &ast.NamedType{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme})
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			if !p.expectPeek(token.IDENT) {
				return nil
			}
			cls.Implements = append(cls.Implements, &ast.NamedType{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme})
		}
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		m := p.parseVarOrFnDecl()
		if m != nil {
			cls.Members = append(cls.Members, m)
		}
		p.nextToken()
	}
	return cls
}

// parseInterfaceDecl parses `interface Name { Type method(formals); ... }`.
func (p *Parser) parseInterfaceDecl() *ast.InterfaceDecl {
	pos := p.curToken.Position
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := &ast.Identifier{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
	iface := &ast.InterfaceDecl{Base: ast.Base{Position: pos}, Name: name}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		d := p.parseVarOrFnDecl()
		if fn, ok := d.(*ast.FnDecl); ok {
			iface.Members = append(iface.Members, fn)
		}
		p.nextToken()
	}
	return iface
}
