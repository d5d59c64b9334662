package parser

import (
	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/token"
)

// parseBlockBody parses the decls/stmts of a `{ ... }` block; curToken is
// '{' on entry, and the returned block's closing '}' is left as curToken.
// Decaf requires declarations to precede statements within a block, but a
// malformed program that interleaves them still parses (each VarDecl seen
// among the statements is simply appended to Decls) rather than wedging the
// parser — semantic issues like that are not this layer's concern.
func (p *Parser) parseBlockBody() *ast.StmtBlock {
	blk := &ast.StmtBlock{Base: ast.Base{Position: p.curToken.Position}}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		if p.looksLikeVarDecl() {
			pos := p.curToken.Position
			t := p.parseType()
			if t == nil {
				p.nextToken()
				continue
			}
			if !p.expectPeek(token.IDENT) {
				p.nextToken()
				continue
			}
			name := &ast.Identifier{Base: ast.Base{Position: p.curToken.Position}, Name: p.curToken.Lexeme}
			if p.expectPeek(token.SEMI) {
				blk.Decls = append(blk.Decls, &ast.VarDecl{Base: ast.Base{Position: pos}, Name: name, DeclType: t})
			}
			p.nextToken()
			continue
		}
		s := p.parseStmt()
		if s != nil {
			blk.Stmts = append(blk.Stmts, s)
		}
		p.nextToken()
	}
	return blk
}

// looksLikeVarDecl disambiguates `Type name;` from a bare expression
// statement at block scope: a primitive-type keyword always starts a
// declaration, and a bare IDENT only starts one when a second IDENT
// immediately follows it (`Foo x;` vs. `x = 1;` or `foo();`).
func (p *Parser) looksLikeVarDecl() bool {
	switch p.curToken.Type {
	case token.VOID, token.INT, token.DOUBLE_KW, token.BOOL, token.STRING_KW:
		return true
	case token.IDENT:
		return p.peekTokenIs(token.IDENT) || p.peekTokenIs(token.LBRACKET)
	default:
		return false
	}
}

// parseStmt dispatches on curToken to one statement kind.
func (p *Parser) parseStmt() ast.Stmt {
	switch p.curToken.Type {
	case token.LBRACE:
		return p.parseBlockBody()
	case token.IF:
		return p.parseIfStmt()
	case token.FOR:
		return p.parseForStmt()
	case token.WHILE:
		return p.parseWhileStmt()
	case token.RETURN:
		return p.parseReturnStmt()
	case token.BREAK:
		return p.parseBreakStmt()
	case token.PRINT:
		return p.parsePrintStmt()
	case token.SWITCH:
		return p.parseSwitchStmt()
	case token.SEMI:
		return nil // empty statement, silently skipped
	default:
		return p.parseExprStmt()
	}
}

func (p *Parser) parseIfStmt() *ast.IfStmt {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	test := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	then := p.parseStmt()
	stmt := &ast.IfStmt{Base: ast.Base{Position: pos}, Test: test, Then: then}
	if p.peekTokenIs(token.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Else = p.parseStmt()
	}
	return stmt
}

func (p *Parser) parseForStmt() *ast.ForStmt {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt := &ast.ForStmt{Base: ast.Base{Position: pos}}

	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Init = p.parseExprStmtNoConsume()
		if !p.expectPeek(token.SEMI) {
			return nil
		}
	}

	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if !p.expectPeek(token.SEMI) {
		return nil
	}

	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Step = p.parseExprStmtNoConsume()
		if !p.expectPeek(token.RPAREN) {
			return nil
		}
	}

	p.nextToken()
	stmt.Body = p.parseStmt()
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	test := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	p.nextToken()
	body := p.parseStmt()
	return &ast.WhileStmt{Base: ast.Base{Position: pos}, Test: test, Body: body}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	pos := p.curToken.Position
	stmt := &ast.ReturnStmt{Base: ast.Base{Position: pos}}
	if !p.peekTokenIs(token.SEMI) {
		p.nextToken()
		stmt.Value = p.parseExpression(LOWEST)
	}
	if !p.expectPeek(token.SEMI) {
		return stmt
	}
	return stmt
}

func (p *Parser) parseBreakStmt() *ast.BreakStmt {
	pos := p.curToken.Position
	if !p.expectPeek(token.SEMI) {
		return &ast.BreakStmt{Base: ast.Base{Position: pos}}
	}
	return &ast.BreakStmt{Base: ast.Base{Position: pos}}
}

func (p *Parser) parsePrintStmt() *ast.PrintStmt {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	stmt := &ast.PrintStmt{Base: ast.Base{Position: pos}}
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
	} else {
		p.nextToken()
		stmt.Args = append(stmt.Args, p.parseExpression(LOWEST))
		for p.peekTokenIs(token.COMMA) {
			p.nextToken()
			p.nextToken()
			stmt.Args = append(stmt.Args, p.parseExpression(LOWEST))
		}
		if !p.expectPeek(token.RPAREN) {
			return stmt
		}
	}
	if !p.expectPeek(token.SEMI) {
		return stmt
	}
	return stmt
}

// parseSwitchStmt parses `switch (tag) { case v: stmts... default: stmts... }`.
// Traversed but not otherwise semantically
// checked beyond typing the scrutinee.
func (p *Parser) parseSwitchStmt() *ast.SwitchStmt {
	pos := p.curToken.Position
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	p.nextToken()
	tag := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	stmt := &ast.SwitchStmt{Base: ast.Base{Position: pos}, Tag: tag}
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		c := p.parseCaseStmt()
		if c != nil {
			stmt.Cases = append(stmt.Cases, c)
		} else {
			p.nextToken()
		}
	}
	return stmt
}

func (p *Parser) parseCaseStmt() *ast.CaseStmt {
	pos := p.curToken.Position
	c := &ast.CaseStmt{Base: ast.Base{Position: pos}}
	switch p.curToken.Type {
	case token.CASE:
		p.nextToken()
		c.Value = p.parseExpression(LOWEST)
		if !p.expectPeek(token.COLON) {
			return nil
		}
	case token.DEFAULT:
		if !p.expectPeek(token.COLON) {
			return nil
		}
	default:
		p.addErrorf(pos, "expected 'case' or 'default', got %q", p.curToken.Lexeme)
		return nil
	}
	p.nextToken()
	for !p.curTokenIs(token.CASE) && !p.curTokenIs(token.DEFAULT) &&
		!p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		s := p.parseStmt()
		if s != nil {
			c.Body = append(c.Body, s)
		}
		p.nextToken()
	}
	return c
}

// parseExprStmt parses a bare expression statement terminated by ';'.
func (p *Parser) parseExprStmt() *ast.ExprStmt {
	pos := p.curToken.Position
	x := p.parseExpression(LOWEST)
	stmt := &ast.ExprStmt{Base: ast.Base{Position: pos}, X: x}
	if !p.expectPeek(token.SEMI) {
		return stmt
	}
	return stmt
}

// parseExprStmtNoConsume parses a bare expression statement without
// expecting a trailing ';' — used for a for-loop's init/step clause, whose
// terminator (';' or ')') the caller consumes itself.
func (p *Parser) parseExprStmtNoConsume() *ast.ExprStmt {
	pos := p.curToken.Position
	x := p.parseExpression(LOWEST)
	return &ast.ExprStmt{Base: ast.Base{Position: pos}, X: x}
}
