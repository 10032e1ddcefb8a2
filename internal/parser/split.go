package parser

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/lexer"
	"github.com/ritamzico/sqlkit/internal/token"
)

// Statement is one top-level `;`-delimited segment of a multi-statement
// source text, as produced by SplitStatements.
type Statement struct {
	SQL     string
	IsEmpty bool // true if the segment carries no lexemes and only whitespace text; a comment-only segment is not empty
}

// SplitStatements breaks src into top-level statements on `;`, honoring
// string and comment state (a `;` inside a string literal or comment never
// splits) and paren depth (a `;` nested inside parentheses, e.g. inside a
// function body literal, never splits either). Each returned segment
// retains its exact source text, including surrounding whitespace and
// comments, except for the separating `;` itself.
func SplitStatements(src string) ([]Statement, error) {
	lexemes, err := lexer.Tokenize(src)
	if err != nil {
		return nil, err
	}

	var out []Statement
	segStartIdx := 0
	segStartOff := 0
	depth := 0

	for i := range lexemes {
		lx := &lexemes[i]
		switch {
		case lx.Kind == token.Punctuation && lx.Value == "(":
			depth++
		case lx.Kind == token.Punctuation && lx.Value == ")":
			depth--
		case lx.Kind == token.Punctuation && lx.Value == ";" && depth == 0:
			out = append(out, newStatement(src[segStartOff:lx.Position.Offset], lexemes[segStartIdx:i]))
			segStartIdx = i + 1
			segStartOff = lx.Position.Offset + 1
		}
	}

	if segStartOff < len(src) || segStartIdx < len(lexemes) {
		out = append(out, newStatement(src[segStartOff:], lexemes[segStartIdx:]))
	}
	return out, nil
}

func newStatement(sql string, lxs []token.Lexeme) Statement {
	return Statement{SQL: sql, IsEmpty: len(lxs) == 0 && strings.TrimSpace(sql) == ""}
}
