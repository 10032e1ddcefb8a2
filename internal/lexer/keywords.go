package lexer

import "strings"

// keywords is the case-insensitive reserved-word set. Classification only
// affects Lexeme.Kind; original casing is always preserved in Lexeme.Value.
var keywords = map[string]bool{
	"SELECT": true, "FROM": true, "WHERE": true, "GROUP": true, "BY": true,
	"HAVING": true, "ORDER": true, "LIMIT": true, "OFFSET": true, "WITH": true,
	"RECURSIVE": true, "AS": true, "DISTINCT": true, "ALL": true, "UNION": true,
	"INTERSECT": true, "EXCEPT": true, "VALUES": true, "INSERT": true, "INTO": true,
	"UPDATE": true, "SET": true, "DELETE": true, "MERGE": true, "USING": true,
	"WHEN": true, "MATCHED": true, "THEN": true, "NOT": true, "MATERIALIZED": true,
	"JOIN": true, "INNER": true, "OUTER": true, "LEFT": true, "RIGHT": true,
	"FULL": true, "CROSS": true, "ON": true, "LATERAL": true, "RETURNING": true,
	"CASE": true, "WHEN_": true, "ELSE": true, "END": true, "CAST": true,
	"BETWEEN": true, "AND": true, "OR": true, "IN": true, "LIKE": true,
	"ILIKE": true, "SIMILAR": true, "TO": true, "IS": true, "NULL": true,
	"TRUE": true, "FALSE": true, "EXISTS": true, "ASC": true, "DESC": true,
	"NULLS": true, "FIRST": true, "LAST": true, "OVER": true, "PARTITION": true,
	"WINDOW": true, "ROWS": true, "RANGE": true, "GROUPS": true, "UNBOUNDED": true,
	"PRECEDING": true, "FOLLOWING": true, "CURRENT": true, "ROW": true,
	"FILTER": true, "WITHIN": true, "QUALIFY": true, "FOR": true, "SHARE": true,
	"NOWAIT": true, "SKIP": true, "LOCKED": true, "CREATE": true, "TABLE": true,
	"INDEX": true, "UNIQUE": true, "PRIMARY": true, "KEY": true, "FOREIGN": true,
	"REFERENCES": true, "CHECK": true, "DEFAULT": true, "CONSTRAINT": true,
	"ALTER": true, "ADD": true, "COLUMN": true, "DROP": true, "IF": true,
	"ANY": true, "SOME": true,
}

// IsKeyword reports whether word (case-insensitively) is a reserved keyword.
func IsKeyword(word string) bool {
	return keywords[strings.ToUpper(word)]
}

// negatableModifiers are keywords that NOT negates in place rather than
// binding as a standalone prefix operator: "NOT LIKE" etc.
var negatableModifiers = map[string]bool{
	"LIKE": true, "ILIKE": true, "SIMILAR": true, "IN": true, "BETWEEN": true, "EXISTS": true,
}

func isNegatableModifier(word string) bool {
	return negatableModifiers[strings.ToUpper(word)]
}

// IsNegatableModifier reports whether word is a predicate keyword that NOT
// negates in place (`x NOT LIKE y`) rather than binding as a prefix operator.
func IsNegatableModifier(word string) bool {
	return isNegatableModifier(word)
}
