package ddldiff

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var catalogLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `(?i)\b(CREATE|TABLE|INDEX|UNIQUE|NOT|NULL|DEFAULT|CONSTRAINT|PRIMARY|KEY|FOREIGN|REFERENCES|CHECK|ON|AND|OR|IS|IN|LIKE|BETWEEN)\b`},
	{Name: "Float", Pattern: `\d+\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "String", Pattern: `'([^'\\]|\\.)*'`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Op", Pattern: `<>|<=|>=|[<>=!+\-*/]`},
	{Name: "Punct", Pattern: `[(),;]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var catalogParser = participle.MustBuild[grammarCatalog](
	participle.Lexer(catalogLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// grammarCatalog is the raw parse tree of a DDL corpus: a sequence of
// CREATE TABLE / CREATE [UNIQUE] INDEX statements, semicolon-separated.
type grammarCatalog struct {
	Statements []*createStmt `parser:"(@@ \";\"?)*"`
}

type createStmt struct {
	Table *createTableAST `parser:"\"CREATE\" \"TABLE\" @@"`
	Index *createIndexAST `parser:"| \"CREATE\" @@"`
}

type createTableAST struct {
	Name  string          `parser:"@Ident"`
	Items []*tableItemAST `parser:"\"(\" @@ (\",\" @@)* \")\""`
}

type tableItemAST struct {
	Constraint *constraintAST `parser:"  @@"`
	Column     *columnAST     `parser:"| @@"`
}

type colList struct {
	Columns []string `parser:"\"(\" @Ident (\",\" @Ident)* \")\""`
}

type foreignKeyAST struct {
	Columns    []string `parser:"\"(\" @Ident (\",\" @Ident)* \")\""`
	RefTable   string   `parser:"\"REFERENCES\" @Ident"`
	RefColumns []string `parser:"\"(\" @Ident (\",\" @Ident)* \")\""`
}

type constraintAST struct {
	Name    string         `parser:"(\"CONSTRAINT\" @Ident)?"`
	Primary *colList       `parser:"( \"PRIMARY\" \"KEY\" @@"`
	Unique  *colList       `parser:"| \"UNIQUE\" @@"`
	Check   *rawExpr       `parser:"| \"CHECK\" \"(\" @@ \")\""`
	Foreign *foreignKeyAST `parser:"| \"FOREIGN\" \"KEY\" @@ )"`
}

type typeAST struct {
	Name string   `parser:"@Ident"`
	Size []string `parser:"(\"(\" @(Int|Float) (\",\" @(Int|Float))* \")\")?"`
}

type columnAST struct {
	Name    string   `parser:"@Ident"`
	Type    typeAST  `parser:"@@"`
	NotNull bool     `parser:"@(\"NOT\" \"NULL\")?"`
	Default *rawExpr `parser:"(\"DEFAULT\" @@)?"`
}

type createIndexAST struct {
	Unique  bool     `parser:"@\"UNIQUE\"? \"INDEX\""`
	Name    string   `parser:"@Ident"`
	Table   string   `parser:"\"ON\" @Ident"`
	Columns []string `parser:"\"(\" @Ident (\",\" @Ident)* \")\""`
}

// rawExpr captures a balanced, paren-nesting-aware token run verbatim, used
// for CHECK predicates and DEFAULT expressions that this catalog grammar
// does not otherwise need to understand.
type rawExpr struct {
	Tokens []*rawTok `parser:"@@*"`
}

type rawTok struct {
	Nested *rawExpr `parser:"  \"(\" @@ \")\""`
	Atom   *string  `parser:"| @(Ident|Int|Float|String|Op|\"NOT\"|\"NULL\"|\"AND\"|\"OR\"|\"IS\"|\"IN\"|\"LIKE\"|\"BETWEEN\")"`
}

func parseGrammar(ddl string) (*grammarCatalog, error) {
	return catalogParser.ParseString("", ddl)
}
