package convert

import (
	"strings"
	"testing"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/format"
	"github.com/ritamzico/sqlkit/internal/parser"
	"github.com/ritamzico/sqlkit/internal/printtoken"
)

func renderNode(t *testing.T, n ast.Node) string {
	t.Helper()
	q, ok := n.(ast.SelectQuery)
	if !ok {
		t.Fatalf("expected a SelectQuery node, got %T", n)
	}
	toks := printtoken.EmitQuery(q)
	out, err := format.Format(toks, format.DefaultOptions())
	if err != nil {
		t.Fatalf("Format failed: %v", err)
	}
	return out
}

var usersFixture = FixtureTable{
	Name: "users",
	Columns: []FixtureColumn{
		{Name: "id", Type: "int"},
		{Name: "name", Type: "text"},
	},
	Rows: [][]string{
		{"1", "'alice'"},
		{"2", "'bob'"},
	},
}

func TestToSelectQuery_InsertReturningStar(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO users (id, name) VALUES (1, 'alice') RETURNING *`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts := Options{FixtureTables: []FixtureTable{usersFixture}}
	node, err := ToSelectQuery(stmt, opts)
	if err != nil {
		t.Fatalf("ToSelectQuery failed: %v", err)
	}
	out := renderNode(t, node)
	if !strings.Contains(out, "users_returning") {
		t.Errorf("expected a synthesized users_returning CTE, got %q", out)
	}
	if !strings.Contains(out, "alice") || !strings.Contains(out, "bob") {
		t.Errorf("expected both fixture rows rendered as literals, got %q", out)
	}
}

func TestToSelectQuery_UpdateReturningColumns(t *testing.T) {
	stmt, err := parser.Parse(`UPDATE users SET name = 'carol' WHERE id = 1 RETURNING id, name`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts := Options{FixtureTables: []FixtureTable{usersFixture}}
	node, err := ToSelectQuery(stmt, opts)
	if err != nil {
		t.Fatalf("ToSelectQuery failed: %v", err)
	}
	sel, ok := node.(*ast.SimpleSelect)
	if !ok {
		t.Fatalf("expected *ast.SimpleSelect, got %T", node)
	}
	if len(sel.SelectItems) != 2 {
		t.Fatalf("expected the RETURNING column list (id, name) to become the outer select items, got %d", len(sel.SelectItems))
	}
}

func TestToSelectQuery_DeleteWithEmptyFixtureRendersZeroRows(t *testing.T) {
	stmt, err := parser.Parse(`DELETE FROM users WHERE id = 1 RETURNING *`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts := Options{FixtureTables: []FixtureTable{{Name: "users", Columns: usersFixture.Columns}}}
	node, err := ToSelectQuery(stmt, opts)
	if err != nil {
		t.Fatalf("ToSelectQuery failed: %v", err)
	}
	out := renderNode(t, node)
	if !strings.Contains(out, "false") {
		t.Errorf("expected an empty fixture table to render as a zero-row WHERE FALSE select, got %q", out)
	}
}

func TestToSelectQuery_MergeReturning(t *testing.T) {
	stmt, err := parser.Parse(`MERGE INTO users USING staged ON users.id = staged.id WHEN MATCHED THEN UPDATE SET name = staged.name RETURNING id, name`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts := Options{FixtureTables: []FixtureTable{usersFixture}}
	node, err := ToSelectQuery(stmt, opts)
	if err != nil {
		t.Fatalf("ToSelectQuery failed: %v", err)
	}
	if _, ok := node.(*ast.SimpleSelect); !ok {
		t.Fatalf("expected *ast.SimpleSelect, got %T", node)
	}
}

func TestToSelectQuery_NoReturningPassthroughByDefault(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO users (id, name) VALUES (1, 'alice')`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts := Options{FixtureTables: []FixtureTable{usersFixture}}
	node, err := ToSelectQuery(stmt, opts)
	if err != nil {
		t.Fatalf("ToSelectQuery failed: %v", err)
	}
	if node != ast.Node(stmt) {
		t.Errorf("expected the original statement to pass through unchanged when there is no RETURNING clause")
	}
}

func TestToSelectQuery_MissingFixtureErrorsByDefault(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO orders (id) VALUES (1) RETURNING *`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	_, err = ToSelectQuery(stmt, Options{})
	if err == nil {
		t.Fatal("expected a FixtureMissing error when no fixture table is registered")
	}
	convErr, ok := err.(ConvertError)
	if !ok || convErr.Kind != "FixtureMissing" {
		t.Errorf("expected ConvertError{Kind: FixtureMissing}, got %#v", err)
	}
}

func TestToSelectQuery_MissingFixturePassthroughStrategy(t *testing.T) {
	stmt, err := parser.Parse(`INSERT INTO orders (id) VALUES (1) RETURNING *`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	node, err := ToSelectQuery(stmt, Options{MissingFixtureStrategy: StrategyPassthrough})
	if err != nil {
		t.Fatalf("expected passthrough strategy to avoid an error, got %v", err)
	}
	if node != ast.Node(stmt) {
		t.Errorf("expected the original statement to pass through unchanged under StrategyPassthrough")
	}
}

func TestLiteralFromLexeme_Classification(t *testing.T) {
	cases := map[string]ast.LiteralKind{
		"null":    ast.NullLit,
		"NULL":    ast.NullLit,
		"true":    ast.BooleanLit,
		"false":   ast.BooleanLit,
		"'hi'":    ast.StringLit,
		"42":      ast.NumericLit,
		"3.14":    ast.NumericLit,
	}
	for text, want := range cases {
		lit := literalFromLexeme(text)
		if lit.Kind != want {
			t.Errorf("literalFromLexeme(%q).Kind = %v, want %v", text, lit.Kind, want)
		}
	}
	if lit := literalFromLexeme("'hi'"); lit.Text != "hi" {
		t.Errorf("expected surrounding quotes stripped, got %q", lit.Text)
	}
}
