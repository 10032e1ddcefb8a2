// Package parser implements C3: a recursive-descent parser over the
// internal/lexer lexeme stream, producing an internal/ast tree. Dispatch
// peeks the first significant keyword to select a statement rule; a
// Pratt-style precedence climber handles value expressions.
package parser

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/comment"
	"github.com/ritamzico/sqlkit/internal/lexer"
	"github.com/ritamzico/sqlkit/internal/token"
)

// Parser walks a lexeme stream with one token of lookahead.
type Parser struct {
	lexemes []token.Lexeme
	pos     int
}

func newParser(src string) (*Parser, error) {
	lxs, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}
	return &Parser{lexemes: lxs}, nil
}

// Parse parses src as a single SQL statement.
func Parse(src string) (ast.Statement, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	if p.atEnd() {
		return nil, ParseError{Kind: "UnknownStatement", Message: "empty input"}
	}
	stmt, err := p.parseStatement()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() && !p.curIsPunct(";") {
		return nil, unexpectedToken(p.curPos(), p.curText(), "end of input")
	}
	return stmt, nil
}

// ParseSelect parses src as a SELECT/VALUES/set-operator query.
func ParseSelect(src string) (ast.SelectQuery, error) {
	p, err := newParser(src)
	if err != nil {
		return nil, err
	}
	if p.atEnd() {
		return nil, ParseError{Kind: "UnknownStatement", Message: "empty input"}
	}
	q, err := p.parseSelectQuery()
	if err != nil {
		return nil, err
	}
	if !p.atEnd() && !p.curIsPunct(";") {
		return nil, unexpectedToken(p.curPos(), p.curText(), "end of input")
	}
	return q, nil
}

func (p *Parser) parseStatement() (ast.Statement, error) {
	kw := strings.ToUpper(p.firstSignificantKeyword())
	switch kw {
	case "SELECT", "VALUES", "WITH":
		q, err := p.parseSelectQuery()
		if err != nil {
			return nil, err
		}
		return &ast.SelectStmt{Header: ast.Header{Position: q.Pos()}, Query: q}, nil
	case "INSERT":
		return p.parseInsert()
	case "UPDATE":
		return p.parseUpdate()
	case "DELETE":
		return p.parseDelete()
	case "MERGE":
		return p.parseMerge()
	case "CREATE":
		return p.parseCreate()
	case "ALTER":
		return p.parseAlter()
	default:
		return nil, unknownStatement(p.curPos(), p.curText())
	}
}

// firstSignificantKeyword returns the dispatch keyword: the current token's
// text, or (if it is WITH) still "WITH" — dispatch itself decides whether a
// WITH prefixes a SELECT.
func (p *Parser) firstSignificantKeyword() string {
	if p.atEnd() {
		return ""
	}
	return p.lexemes[p.pos].Value
}

// --- low-level lexeme cursor helpers ---

func (p *Parser) atEnd() bool { return p.pos >= len(p.lexemes) }

func (p *Parser) cur() *token.Lexeme {
	if p.atEnd() {
		return nil
	}
	return &p.lexemes[p.pos]
}

func (p *Parser) peek() *token.Lexeme {
	if p.pos+1 >= len(p.lexemes) {
		return nil
	}
	return &p.lexemes[p.pos+1]
}

func (p *Parser) curPos() token.Position {
	if p.atEnd() {
		if len(p.lexemes) > 0 {
			last := p.lexemes[len(p.lexemes)-1]
			return token.Position{Offset: last.Position.Offset + last.Position.Length, Line: last.Position.Line, Column: last.Position.Column}
		}
		return token.Position{Line: 1, Column: 1}
	}
	return p.lexemes[p.pos].Position
}

func (p *Parser) curText() string {
	if p.atEnd() {
		return "<eof>"
	}
	return p.lexemes[p.pos].Value
}

func (p *Parser) advance() *token.Lexeme {
	if p.atEnd() {
		return nil
	}
	lx := &p.lexemes[p.pos]
	p.pos++
	return lx
}

func (p *Parser) curIsKeyword(word string) bool {
	lx := p.cur()
	return lx != nil && (lx.Kind == token.Keyword || lx.Kind == token.BooleanLiteral || lx.Kind == token.NullLiteral) && strings.EqualFold(lx.Value, word)
}

func (p *Parser) curIsIdentWord(word string) bool {
	lx := p.cur()
	return lx != nil && lx.Kind == token.Identifier && strings.EqualFold(lx.Value, word)
}

func (p *Parser) curIsPunct(s string) bool {
	lx := p.cur()
	return lx != nil && lx.Kind == token.Punctuation && lx.Value == s
}

func (p *Parser) curIsOperator(s string) bool {
	lx := p.cur()
	return lx != nil && lx.Kind == token.Operator && lx.Value == s
}

// peekIsKeyword reports whether the lookahead token is the given keyword.
func (p *Parser) peekIsKeyword(word string) bool {
	lx := p.peek()
	return lx != nil && (lx.Kind == token.Keyword || lx.Kind == token.BooleanLiteral || lx.Kind == token.NullLiteral) && strings.EqualFold(lx.Value, word)
}

// onSameLine reports whether b starts on the same source line as a ends.
func onSameLine(a, b *token.Lexeme) bool {
	if a == nil || b == nil {
		return false
	}
	return a.Position.Line == b.Position.Line
}

func (p *Parser) expectKeyword(word string) (*token.Lexeme, error) {
	if !p.curIsKeyword(word) {
		return nil, unexpectedToken(p.curPos(), p.curText(), word)
	}
	return p.advance(), nil
}

func (p *Parser) expectPunct(s string) (*token.Lexeme, error) {
	if !p.curIsPunct(s) {
		return nil, missingToken(p.curPos(), s)
	}
	return p.advance(), nil
}

// tryKeyword consumes the current token if it matches word, returning true.
func (p *Parser) tryKeyword(word string) bool {
	if p.curIsKeyword(word) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) tryPunct(s string) bool {
	if p.curIsPunct(s) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expectIdentLike() (*token.Lexeme, error) {
	lx := p.cur()
	if lx == nil || (lx.Kind != token.Identifier && lx.Kind != token.Keyword) {
		return nil, unexpectedToken(p.curPos(), p.curText(), "identifier")
	}
	return p.advance(), nil
}

func (p *Parser) parseIdent() (ast.Ident, error) {
	lx, err := p.expectIdentLike()
	if err != nil {
		return ast.Ident{}, err
	}
	return ast.Ident{Header: ast.Header{Position: lx.Position}, Name: lx.Value, Quoted: lx.QuotedIdentifier}, nil
}

// parseQName parses a dotted name path: a[.b[.c]].
func (p *Parser) parseQName() ([]ast.Ident, error) {
	first, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	parts := []ast.Ident{first}
	for p.curIsPunct(".") {
		p.advance()
		next, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	return parts, nil
}

func attach(node ast.Node, first, last *token.Lexeme) {
	comment.Attach(node, first, last)
}
