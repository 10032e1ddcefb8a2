package parser

import (
	"strconv"
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/lexer"
	"github.com/ritamzico/sqlkit/internal/token"
)

// parseExpr is the entry point of the Pratt-style precedence climber:
// OR < AND < NOT < comparison < BETWEEN/IN/LIKE/ILIKE/SIMILAR TO/IS <
// |/||/#/& < +/- < * / % < unary +/- < ^/::/[].
func (p *Parser) parseExpr() (ast.Value, error) { return p.parseOr() }

func (p *Parser) parseOr() (ast.Value, error) {
	lhs, err := p.parseAnd()
	if err != nil {
		return nil, err
	}
	for p.curIsKeyword("OR") {
		opPos := p.advance().Position
		rhs, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Header: ast.Header{Position: opPos}, Op: "OR", Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseAnd() (ast.Value, error) {
	lhs, err := p.parseNotLevel()
	if err != nil {
		return nil, err
	}
	for p.curIsKeyword("AND") {
		opPos := p.advance().Position
		rhs, err := p.parseNotLevel()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Header: ast.Header{Position: opPos}, Op: "AND", Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

// parseNotLevel handles prefix NOT: `NOT EXISTS (...)` negates the EXISTS
// predicate directly; any other `NOT x` wraps x as a generic unary NOT.
// Infix negation (`x NOT LIKE y`, `x NOT IN (...)`, `x NOT BETWEEN a AND b`)
// is parsed further down, inside parseBetweenLevel, since there NOT
// modifies an already-parsed left operand rather than prefixing one.
func (p *Parser) parseNotLevel() (ast.Value, error) {
	if p.curIsKeyword("NOT") {
		notPos := p.advance().Position
		if p.curIsKeyword("EXISTS") {
			ex, err := p.parseExists(true)
			if err != nil {
				return nil, err
			}
			return ex, nil
		}
		operand, err := p.parseNotLevel()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Header: ast.Header{Position: notPos}, Op: "NOT", Operand: operand}, nil
	}
	return p.parseComparison()
}

var comparisonOps = map[string]bool{
	"=": true, "<>": true, "!=": true, "<": true, ">": true, "<=": true, ">=": true,
}

// parseComparison is non-associative: only one comparison operator may
// appear at this level.
func (p *Parser) parseComparison() (ast.Value, error) {
	lhs, err := p.parseBetweenLevel()
	if err != nil {
		return nil, err
	}
	if lx := p.cur(); lx != nil && lx.Kind == token.Operator && comparisonOps[lx.Value] {
		op := p.advance()
		rhs, err := p.parseBetweenLevel()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Header: ast.Header{Position: op.Position}, Op: op.Value, Lhs: lhs, Rhs: rhs}, nil
	}
	return lhs, nil
}

// parseBetweenLevel parses the postfix predicate modifiers BETWEEN/IN/
// LIKE/ILIKE/SIMILAR TO/IS, each of which takes the already-parsed operand
// as its left-hand side.
func (p *Parser) parseBetweenLevel() (ast.Value, error) {
	expr, err := p.parseBitwise()
	if err != nil {
		return nil, err
	}

	negated := false
	if p.curIsKeyword("NOT") && p.peekIsNegatableModifier() {
		negated = true
		p.advance()
	}

	switch {
	case p.curIsKeyword("BETWEEN"):
		pos := p.advance().Position
		low, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("AND"); err != nil {
			return nil, err
		}
		high, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		if p.curIsKeyword("AND") {
			return nil, invalidExpression(p.curPos(), "ambiguous BETWEEN ... AND ... AND: wrap the outer condition in parentheses")
		}
		return &ast.BetweenExpr{Header: ast.Header{Position: pos}, Expr: expr, Negated: negated, Low: low, High: high}, nil

	case p.curIsKeyword("IN"):
		pos := p.advance().Position
		return p.parseInTail(expr, negated, pos)

	case p.curIsKeyword("LIKE"):
		pos := p.advance().Position
		pattern, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Header: ast.Header{Position: pos}, Op: "LIKE", Negated: negated, Lhs: expr, Rhs: pattern}, nil

	case p.curIsKeyword("ILIKE"):
		pos := p.advance().Position
		pattern, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Header: ast.Header{Position: pos}, Op: "ILIKE", Negated: negated, Lhs: expr, Rhs: pattern}, nil

	case p.curIsKeyword("SIMILAR"):
		pos := p.advance().Position
		if _, err := p.expectKeyword("TO"); err != nil {
			return nil, err
		}
		pattern, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Header: ast.Header{Position: pos}, Op: "SIMILAR TO", Negated: negated, Lhs: expr, Rhs: pattern}, nil

	case !negated && p.curIsKeyword("IS"):
		pos := p.advance().Position
		return p.parseIsTail(expr, pos)

	default:
		if negated {
			return nil, unexpectedToken(p.curPos(), p.curText(), "LIKE", "ILIKE", "SIMILAR TO", "IN", "BETWEEN")
		}
		return expr, nil
	}
}

// peekIsNegatableModifier reports whether the token after the current NOT
// is one of the modifiers NOT can negate in place.
func (p *Parser) peekIsNegatableModifier() bool {
	lx := p.peek()
	return lx != nil && lx.Kind == token.Keyword && lexer.IsNegatableModifier(lx.Value)
}

func (p *Parser) parseInTail(expr ast.Value, negated bool, pos token.Position) (ast.Value, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	if p.curIsKeyword("SELECT") || p.curIsKeyword("WITH") || p.curIsKeyword("VALUES") {
		q, err := p.parseSelectQuery()
		if err != nil {
			return nil, err
		}
		close_, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		n := &ast.InListExpr{Header: ast.Header{Position: pos}, Expr: expr, Negated: negated, Subquery: q}
		attach(n, open, close_)
		return n, nil
	}
	var items []ast.Value
	if !p.curIsPunct(")") {
		for {
			it, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, it)
			if !p.tryPunct(",") {
				break
			}
		}
	}
	close_, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	n := &ast.InListExpr{Header: ast.Header{Position: pos}, Expr: expr, Negated: negated, Items: items}
	attach(n, open, close_)
	return n, nil
}

func (p *Parser) parseIsTail(expr ast.Value, pos token.Position) (ast.Value, error) {
	negated := p.tryKeyword("NOT")
	switch {
	case p.tryKeyword("NULL"):
		rhs := ast.NewLiteral(ast.NullLit, "NULL", pos)
		return &ast.BinaryExpr{Header: ast.Header{Position: pos}, Op: "IS", Negated: negated, Lhs: expr, Rhs: rhs}, nil
	case p.curIsKeyword("TRUE") || p.curIsKeyword("FALSE"):
		lit := p.advance()
		rhs := ast.NewLiteral(ast.BooleanLit, lit.Value, lit.Position)
		return &ast.BinaryExpr{Header: ast.Header{Position: pos}, Op: "IS", Negated: negated, Lhs: expr, Rhs: rhs}, nil
	case p.tryKeyword("DISTINCT"):
		if _, err := p.expectKeyword("FROM"); err != nil {
			return nil, err
		}
		rhs, err := p.parseBitwise()
		if err != nil {
			return nil, err
		}
		return &ast.BinaryExpr{Header: ast.Header{Position: pos}, Op: "IS DISTINCT FROM", Negated: negated, Lhs: expr, Rhs: rhs}, nil
	default:
		return nil, unexpectedToken(p.curPos(), p.curText(), "NULL", "TRUE", "FALSE", "DISTINCT")
	}
}

var bitwiseOps = map[string]bool{"|": true, "||": true, "#": true, "&": true}

func (p *Parser) parseBitwise() (ast.Value, error) {
	lhs, err := p.parseAdditive()
	if err != nil {
		return nil, err
	}
	for {
		lx := p.cur()
		if lx == nil || lx.Kind != token.Operator || !bitwiseOps[lx.Value] {
			return lhs, nil
		}
		op := p.advance()
		rhs, err := p.parseAdditive()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Header: ast.Header{Position: op.Position}, Op: op.Value, Lhs: lhs, Rhs: rhs}
	}
}

func (p *Parser) parseAdditive() (ast.Value, error) {
	lhs, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.curIsOperator("+") || p.curIsOperator("-") {
		op := p.advance()
		rhs, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Header: ast.Header{Position: op.Position}, Op: op.Value, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseMultiplicative() (ast.Value, error) {
	lhs, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for p.curIsOperator("*") || p.curIsOperator("/") || p.curIsOperator("%") {
		op := p.advance()
		rhs, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		lhs = &ast.BinaryExpr{Header: ast.Header{Position: op.Position}, Op: op.Value, Lhs: lhs, Rhs: rhs}
	}
	return lhs, nil
}

func (p *Parser) parseUnary() (ast.Value, error) {
	if p.curIsOperator("+") || p.curIsOperator("-") {
		op := p.advance()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return &ast.UnaryExpr{Header: ast.Header{Position: op.Position}, Op: op.Value, Operand: operand}, nil
	}
	return p.parseCastLevel()
}

func (p *Parser) parseCastLevel() (ast.Value, error) {
	v, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.curIsOperator("::"):
			p.advance()
			typeName, err := p.parseTypeName()
			if err != nil {
				return nil, err
			}
			v = &ast.CastExpr{Header: ast.Header{Position: v.Pos()}, Expr: v, TypeName: typeName, Shorthand: true}
		case p.curIsPunct("["):
			p.advance()
			idx, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct("]"); err != nil {
				return nil, err
			}
			v = &ast.ArrayAccessExpr{Header: ast.Header{Position: v.Pos()}, Array: v, Index: idx}
		case p.curIsOperator("^"):
			op := p.advance()
			rhs, err := p.parsePrimary()
			if err != nil {
				return nil, err
			}
			v = &ast.BinaryExpr{Header: ast.Header{Position: op.Position}, Op: op.Value, Lhs: v, Rhs: rhs}
		default:
			return v, nil
		}
	}
}

func (p *Parser) parsePrimary() (ast.Value, error) {
	lx := p.cur()
	if lx == nil {
		return nil, unexpectedToken(p.curPos(), "<eof>", "expression")
	}
	switch {
	case lx.Kind == token.NumericLiteral:
		p.advance()
		return ast.NewLiteral(ast.NumericLit, lx.Value, lx.Position), nil
	case lx.Kind == token.StringLiteral:
		p.advance()
		return ast.NewLiteral(ast.StringLit, lx.Value, lx.Position), nil
	case lx.Kind == token.BooleanLiteral:
		p.advance()
		return ast.NewLiteral(ast.BooleanLit, lx.Value, lx.Position), nil
	case lx.Kind == token.NullLiteral:
		p.advance()
		return ast.NewLiteral(ast.NullLit, lx.Value, lx.Position), nil
	case lx.Kind == token.Parameter:
		p.advance()
		return buildParam(lx), nil
	case p.curIsKeyword("CASE"):
		return p.parseCase()
	case p.curIsKeyword("CAST"):
		return p.parseCast()
	case p.curIsKeyword("EXISTS"):
		return p.parseExists(false)
	case p.curIsPunct("("):
		return p.parseParenExprOrTuple()
	case lx.Kind == token.Operator && lx.Value == "*":
		p.advance()
		return &ast.Star{Header: ast.Header{Position: lx.Position}}, nil
	case lx.Kind == token.Identifier || lx.Kind == token.Keyword:
		return p.parseIdentOrCallOrStar()
	default:
		return nil, unexpectedToken(lx.Position, lx.Value, "expression")
	}
}

func buildParam(lx *token.Lexeme) *ast.Param {
	p := &ast.Param{Header: ast.Header{Position: lx.Position}, Form: lx.ParamForm}
	switch lx.ParamForm {
	case token.ParamQuestion:
		p.Kind = ast.ParamAnonymous
	case token.ParamColon, token.ParamAt:
		p.Kind = ast.ParamNamed
		p.Name = lx.Value[1:]
	case token.ParamDollarBrace:
		p.Kind = ast.ParamNamed
		p.Name = strings.TrimSuffix(strings.TrimPrefix(lx.Value, "${"), "}")
	case token.ParamDollarNum:
		p.Kind = ast.ParamPositional
		idx, _ := strconv.Atoi(lx.Value[1:])
		p.Index = idx
	}
	return p
}

func (p *Parser) parseIdentOrCallOrStar() (ast.Value, error) {
	startLx := p.cur()
	id, err := p.parseIdent()
	if err != nil {
		return nil, err
	}
	parts := []ast.Ident{id}
	for p.curIsPunct(".") {
		p.advance()
		if p.curIsOperator("*") {
			p.advance()
			return &ast.Star{Header: ast.Header{Position: startLx.Position}, Qualifier: parts}, nil
		}
		next, err := p.parseIdent()
		if err != nil {
			return nil, err
		}
		parts = append(parts, next)
	}
	if p.curIsPunct("(") {
		return p.parseFunctionCallTail(parts, startLx.Position)
	}
	if len(parts) == 1 {
		cp := parts[0]
		return &cp, nil
	}
	return ast.NewQualified(parts, startLx.Position)
}

func (p *Parser) parseFunctionCallTail(qname []ast.Ident, pos token.Position) (*ast.FunctionCall, error) {
	fc, err := ast.NewFunctionCall(qname, pos)
	if err != nil {
		return nil, err
	}
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	if p.tryKeyword("DISTINCT") {
		if err := fc.SetDistinct(true); err != nil {
			return nil, err
		}
	}
	if !p.curIsPunct(")") {
		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		fc.Args = append(fc.Args, arg)
		for p.tryPunct(",") {
			arg, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			fc.Args = append(fc.Args, arg)
		}
	}
	if p.tryKeyword("ORDER") {
		if _, err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		fc.ArgOrderBy = ob
	}
	close_, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	attach(fc, open, close_)

	if p.tryKeyword("WITHIN") {
		if _, err := p.expectKeyword("GROUP"); err != nil {
			return nil, err
		}
		if _, err := p.expectPunct("("); err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("ORDER"); err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		if err := fc.SetWithinGroup(ob); err != nil {
			return nil, err
		}
	}
	if p.tryKeyword("FILTER") {
		if _, err := p.expectPunct("("); err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("WHERE"); err != nil {
			return nil, err
		}
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(")"); err != nil {
			return nil, err
		}
		fc.Filter = cond
	}
	if p.tryKeyword("OVER") {
		if p.curIsPunct("(") {
			ws, err := p.parseWindowSpecInline()
			if err != nil {
				return nil, err
			}
			fc.Over = ws
		} else {
			name, err := p.parseIdent()
			if err != nil {
				return nil, err
			}
			fc.Over = &ast.WindowSpec{Header: ast.Header{Position: name.Header.Position}, Name: name.Name}
		}
	}
	return fc, nil
}

func (p *Parser) parseWindowSpecInline() (*ast.WindowSpec, error) {
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	ws := &ast.WindowSpec{Header: ast.Header{Position: open.Position}}
	if p.tryKeyword("PARTITION") {
		if _, err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		ws.PartitionBy = append(ws.PartitionBy, expr)
		for p.tryPunct(",") {
			expr, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			ws.PartitionBy = append(ws.PartitionBy, expr)
		}
	}
	if p.tryKeyword("ORDER") {
		if _, err := p.expectKeyword("BY"); err != nil {
			return nil, err
		}
		ob, err := p.parseOrderByItems()
		if err != nil {
			return nil, err
		}
		ws.OrderBy = ob
	}
	if p.curIsKeyword("ROWS") || p.curIsKeyword("RANGE") || p.curIsKeyword("GROUPS") {
		frame, err := p.parseWindowFrame()
		if err != nil {
			return nil, err
		}
		ws.Frame = frame
	}
	close_, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	attach(ws, open, close_)
	return ws, nil
}

func (p *Parser) parseWindowFrame() (*ast.WindowFrame, error) {
	kind := p.advance().Value
	if p.tryKeyword("BETWEEN") {
		start, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("AND"); err != nil {
			return nil, err
		}
		end, err := p.parseFrameBound()
		if err != nil {
			return nil, err
		}
		return &ast.WindowFrame{Kind: kind, StartBound: start, EndBound: end}, nil
	}
	start, err := p.parseFrameBound()
	if err != nil {
		return nil, err
	}
	return &ast.WindowFrame{Kind: kind, StartBound: start}, nil
}

func (p *Parser) parseFrameBound() (string, error) {
	if p.tryKeyword("UNBOUNDED") {
		if p.tryKeyword("PRECEDING") {
			return "UNBOUNDED PRECEDING", nil
		}
		if p.tryKeyword("FOLLOWING") {
			return "UNBOUNDED FOLLOWING", nil
		}
		return "", unexpectedToken(p.curPos(), p.curText(), "PRECEDING", "FOLLOWING")
	}
	if p.tryKeyword("CURRENT") {
		if _, err := p.expectKeyword("ROW"); err != nil {
			return "", err
		}
		return "CURRENT ROW", nil
	}
	lx, err := p.expectIdentLike()
	if err != nil {
		return "", err
	}
	if p.tryKeyword("PRECEDING") {
		return lx.Value + " PRECEDING", nil
	}
	if _, err := p.expectKeyword("FOLLOWING"); err != nil {
		return "", err
	}
	return lx.Value + " FOLLOWING", nil
}

func (p *Parser) parseOrderByItems() (*ast.OrderBy, error) {
	start := p.curPos()
	var items []ast.OrderByItem
	for {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		item := ast.OrderByItem{Header: ast.Header{Position: expr.Pos()}, Expr: expr}
		if p.tryKeyword("ASC") {
			// default
		} else if p.tryKeyword("DESC") {
			item.Descending = true
		}
		if p.tryKeyword("NULLS") {
			item.HasNulls = true
			if p.tryKeyword("FIRST") {
				item.NullsFirst = true
			} else if _, err := p.expectKeyword("LAST"); err != nil {
				return nil, err
			}
		}
		items = append(items, item)
		if !p.tryPunct(",") {
			break
		}
	}
	return &ast.OrderBy{Header: ast.Header{Position: start}, Items: items}, nil
}

func (p *Parser) parseExprList() ([]ast.Value, error) {
	var out []ast.Value
	for {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		out = append(out, v)
		if !p.tryPunct(",") {
			break
		}
	}
	return out, nil
}

func (p *Parser) parseCase() (ast.Value, error) {
	pos := p.advance().Position // CASE
	var operand ast.Value
	if !p.curIsKeyword("WHEN") {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		operand = v
	}
	var whens []ast.WhenClause
	for p.curIsKeyword("WHEN") {
		wpos := p.advance().Position
		cond, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expectKeyword("THEN"); err != nil {
			return nil, err
		}
		result, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		whens = append(whens, ast.WhenClause{Header: ast.Header{Position: wpos}, Condition: cond, Result: result})
	}
	if len(whens) == 0 {
		return nil, invalidExpression(pos, "CASE requires at least one WHEN clause")
	}
	var elseExpr ast.Value
	if p.tryKeyword("ELSE") {
		v, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		elseExpr = v
	}
	end, err := p.expectKeyword("END")
	if err != nil {
		return nil, err
	}
	c := &ast.CaseExpr{Header: ast.Header{Position: pos}, Operand: operand, Whens: whens, Else: elseExpr}
	_ = end
	return c, nil
}

func (p *Parser) parseCast() (ast.Value, error) {
	pos := p.advance().Position // CAST
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expectKeyword("AS"); err != nil {
		return nil, err
	}
	typeName, err := p.parseTypeName()
	if err != nil {
		return nil, err
	}
	close_, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	c := &ast.CastExpr{Header: ast.Header{Position: pos}, Expr: expr, TypeName: typeName}
	attach(c, open, close_)
	return c, nil
}

func (p *Parser) parseExists(negated bool) (ast.Value, error) {
	pos := p.advance().Position // EXISTS
	open, err := p.expectPunct("(")
	if err != nil {
		return nil, err
	}
	q, err := p.parseSelectQuery()
	if err != nil {
		return nil, err
	}
	close_, err := p.expectPunct(")")
	if err != nil {
		return nil, err
	}
	e := &ast.ExistsExpr{Header: ast.Header{Position: pos}, Negated: negated, Subquery: q}
	attach(e, open, close_)
	return e, nil
}

func (p *Parser) parseParenExprOrTuple() (ast.Value, error) {
	open := p.advance() // "("
	if p.curIsKeyword("SELECT") || p.curIsKeyword("VALUES") || p.curIsKeyword("WITH") {
		q, err := p.parseSelectQuery()
		if err != nil {
			return nil, err
		}
		close_, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		sub := &ast.SubqueryExpr{Header: ast.Header{Position: open.Position}, Query: q}
		attach(sub, open, close_)
		return sub, nil
	}
	first, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if p.curIsPunct(",") {
		items := []ast.Value{first}
		for p.tryPunct(",") {
			item, err := p.parseExpr()
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		close_, err := p.expectPunct(")")
		if err != nil {
			return nil, err
		}
		t := &ast.TupleExpr{Header: ast.Header{Position: open.Position}, Items: items}
		attach(t, open, close_)
		return t, nil
	}
	if _, err := p.expectPunct(")"); err != nil {
		return nil, err
	}
	return first, nil
}

func (p *Parser) parseTypeName() (string, error) {
	lx, err := p.expectIdentLike()
	if err != nil {
		return "", err
	}
	name := lx.Value
	if p.tryPunct("(") {
		var b strings.Builder
		b.WriteString(name)
		b.WriteString("(")
		for !p.curIsPunct(")") {
			if p.atEnd() {
				return "", missingToken(p.curPos(), ")")
			}
			t := p.advance()
			if t.Kind == token.Punctuation && t.Value == "," {
				b.WriteString(", ")
			} else {
				b.WriteString(t.Value)
			}
		}
		p.advance() // ")"
		b.WriteString(")")
		name = b.String()
	}
	for p.tryPunct("[") {
		if _, err := p.expectPunct("]"); err != nil {
			return "", err
		}
		name += "[]"
	}
	return name, nil
}
