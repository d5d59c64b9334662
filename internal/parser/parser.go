// Package parser implements a recursive-descent / Pratt-hybrid parser that
// turns a Decaf token stream into the internal/ast tree the semantic core
// consumes. The file is split one concern per file (parser.go core plus
// expressions_core.go, statements.go, ...), with the grammar
// itself shaped around Decaf's own imperative/single-inheritance OOP model.
package parser

import (
	"fmt"

	"github.com/funvibe/decaf/internal/ast"
	"github.com/funvibe/decaf/internal/lexer"
	"github.com/funvibe/decaf/internal/token"
)

// Precedence levels, lowest to highest.
const (
	_ int = iota
	LOWEST
	ASSIGN_PREC
	OR_PREC
	AND_PREC
	EQUALS
	RELATIONAL
	SUM
	PRODUCT
	PREFIX
	POSTFIX
)

var precedences = map[token.Type]int{
	token.ASSIGN:   ASSIGN_PREC,
	token.OR:       OR_PREC,
	token.AND:      AND_PREC,
	token.EQ:       EQUALS,
	token.NE:       EQUALS,
	token.LT:       RELATIONAL,
	token.LE:       RELATIONAL,
	token.GT:       RELATIONAL,
	token.GE:       RELATIONAL,
	token.PLUS:     SUM,
	token.MINUS:    SUM,
	token.STAR:     PRODUCT,
	token.SLASH:    PRODUCT,
	token.PERCENT:  PRODUCT,
	token.DOT:      POSTFIX,
	token.LBRACKET: POSTFIX,
	token.LPAREN:   POSTFIX,
}

// Error is a parse-time diagnostic, kept separate from internal/diagnostics
// (the sema core's taxonomy) since parsing is an external collaborator per
// its own, much smaller error shape.
type Error struct {
	Position token.Position
	Message  string
}

func (e *Error) Error() string { return e.Message }

// Format renders a parse error in the same "*** Error line N." shape
// internal/diagnostics uses, so the CLI can interleave parse failures and
// semantic diagnostics in one stream.
func (e *Error) Format() string {
	if e.Position.LongString != "" {
		return fmt.Sprintf("*** Error line %d.\n%s\n%s", e.Position.Line, e.Position.LongString, e.Message)
	}
	return fmt.Sprintf("*** Error line %d.\n%s", e.Position.Line, e.Message)
}

type (
	prefixParseFn func() ast.Expr
	infixParseFn  func(ast.Expr) ast.Expr
)

type Parser struct {
	lex *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	Errors []*Error

	prefixParseFns map[token.Type]prefixParseFn
	infixParseFns  map[token.Type]infixParseFn
}

// New constructs a Parser reading from lex and primes curToken/peekToken.
func New(lex *lexer.Lexer) *Parser {
	p := &Parser{lex: lex}

	p.prefixParseFns = map[token.Type]prefixParseFn{
		token.INTLIT:      p.parseIntLit,
		token.DOUBLE:      p.parseDoubleLit,
		token.BOOLLIT:     p.parseBoolLit,
		token.STRING:      p.parseStringLit,
		token.NULL:        p.parseNullLit,
		token.THIS:        p.parseThisExpr,
		token.IDENT:       p.parseIdentExpr,
		token.NEW:         p.parseNewExpr,
		token.NEWARRAY:    p.parseNewArrayExpr,
		token.READINTEGER: p.parseReadIntegerExpr,
		token.READLINE:    p.parseReadLineExpr,
		token.LPAREN:      p.parseGroupedExpr,
		token.MINUS:       p.parseUnaryExpr,
		token.NOT:         p.parseUnaryExpr,
	}

	p.infixParseFns = map[token.Type]infixParseFn{
		token.ASSIGN:   p.parseAssignExpr,
		token.PLUS:     p.parseBinaryExpr,
		token.MINUS:    p.parseBinaryExpr,
		token.STAR:     p.parseBinaryExpr,
		token.SLASH:    p.parseBinaryExpr,
		token.PERCENT:  p.parseBinaryExpr,
		token.LT:       p.parseBinaryExpr,
		token.LE:       p.parseBinaryExpr,
		token.GT:       p.parseBinaryExpr,
		token.GE:       p.parseBinaryExpr,
		token.EQ:       p.parseBinaryExpr,
		token.NE:       p.parseBinaryExpr,
		token.AND:      p.parseBinaryExpr,
		token.OR:       p.parseBinaryExpr,
		token.DOT:      p.parseFieldAccessOrCall,
		token.LBRACKET: p.parseArrayAccess,
	}

	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.lex.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

// expectPeek advances past the peek token if it has the expected type,
// otherwise records an error and leaves the cursor in place.
func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.addErrorf(p.peekToken.Position, "expected next token to be %v, got %v (%q) instead",
		t, p.peekToken.Type, p.peekToken.Lexeme)
}

func (p *Parser) addErrorf(pos token.Position, format string, args ...any) {
	p.Errors = append(p.Errors, &Error{Position: pos, Message: fmt.Sprintf(format, args...)})
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if pr, ok := precedences[p.curToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram is the parser's entry point, producing the root of the tree
// the sema core's Analyze walks.
func ParseProgram(src string) (*ast.Program, []*Error) {
	l := lexer.New(src)
	p := New(l)
	prog := p.parseProgram()
	errs := p.Errors
	for _, le := range l.Errors {
		errs = append(errs, &Error{Position: le.Position, Message: le.Message})
	}
	return prog, errs
}

func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{Base: ast.Base{Position: p.curToken.Position}}
	for !p.curTokenIs(token.EOF) {
		d := p.parseDecl()
		if d != nil {
			prog.Decls = append(prog.Decls, d)
		}
		p.nextToken()
	}
	return prog
}
