package ddldiff

import (
	"strings"
	"testing"
)

const usersCurrentDDL = `
CREATE TABLE users (
	id INT,
	name TEXT NOT NULL,
	PRIMARY KEY (id)
);
`

const usersExpectedDDL = `
CREATE TABLE users (
	id INT,
	name TEXT NOT NULL,
	email TEXT,
	created_at TIMESTAMP DEFAULT now(),
	PRIMARY KEY (id),
	UNIQUE (email)
);
`

func indexOf(t *testing.T, stmts []string, substr string) int {
	t.Helper()
	for i, s := range stmts {
		if strings.Contains(s, substr) {
			return i
		}
	}
	t.Fatalf("expected a statement containing %q, got %v", substr, stmts)
	return -1
}

func TestGenerateDiff_AddColumnsThenConstraint(t *testing.T) {
	stmts, err := GenerateDiff(usersCurrentDDL, usersExpectedDDL, Options{})
	if err != nil {
		t.Fatalf("GenerateDiff failed: %v", err)
	}
	if len(stmts) != 3 {
		t.Fatalf("expected exactly 3 statements, got %d: %v", len(stmts), stmts)
	}

	emailCol := indexOf(t, stmts, "ADD COLUMN email TEXT")
	createdCol := indexOf(t, stmts, "ADD COLUMN created_at TIMESTAMP")
	uniqueConstraint := indexOf(t, stmts, "ADD UNIQUE (email)")

	if emailCol > uniqueConstraint || createdCol > uniqueConstraint {
		t.Errorf("expected both ADD COLUMN statements to precede the ADD UNIQUE constraint, got %v", stmts)
	}
	if !strings.Contains(stmts[createdCol], "DEFAULT") {
		t.Errorf("expected the created_at column to carry its DEFAULT expression, got %q", stmts[createdCol])
	}
}

func TestGenerateDiff_NoChangesIsEmpty(t *testing.T) {
	stmts, err := GenerateDiff(usersCurrentDDL, usersCurrentDDL, Options{})
	if err != nil {
		t.Fatalf("GenerateDiff failed: %v", err)
	}
	if len(stmts) != 0 {
		t.Fatalf("expected no statements for an identical catalog, got %v", stmts)
	}
}

func TestGenerateDiff_CreateMissingTable(t *testing.T) {
	stmts, err := GenerateDiff("", `CREATE TABLE t (id INT, PRIMARY KEY (id));`, Options{})
	if err != nil {
		t.Fatalf("GenerateDiff failed: %v", err)
	}
	if len(stmts) != 1 || !strings.Contains(stmts[0], "CREATE TABLE t") {
		t.Fatalf("expected a single CREATE TABLE statement, got %v", stmts)
	}
}

func TestGenerateDiff_DropsGatedByOptions(t *testing.T) {
	current := `CREATE TABLE old_table (id INT);`
	expected := ``

	stmts, err := GenerateDiff(current, expected, Options{})
	if err != nil {
		t.Fatalf("GenerateDiff failed: %v", err)
	}
	if len(stmts) != 0 {
		t.Fatalf("expected no DROP statements when DropTables is unset, got %v", stmts)
	}

	stmts, err = GenerateDiff(current, expected, Options{DropTables: true})
	if err != nil {
		t.Fatalf("GenerateDiff with DropTables failed: %v", err)
	}
	if len(stmts) != 1 || !strings.Contains(stmts[0], "DROP TABLE old_table") {
		t.Fatalf("expected a single DROP TABLE statement, got %v", stmts)
	}
}

func TestGenerateDiff_AmbiguousRenameRefused(t *testing.T) {
	current := `CREATE TABLE old_name (id INT, label TEXT);`
	expected := `CREATE TABLE new_name (id INT, label TEXT);`

	_, err := GenerateDiff(current, expected, Options{DropTables: true})
	if err == nil {
		t.Fatal("expected an AmbiguousRename error when drop and create targets share column shape")
	}
	diffErr, ok := err.(DiffError)
	if !ok || diffErr.Kind != "AmbiguousRename" {
		t.Errorf("expected DiffError{Kind: AmbiguousRename}, got %#v", err)
	}
}

func TestGenerateDiff_CheckConstraintEqualityIgnoresWhitespace(t *testing.T) {
	current := `CREATE TABLE t (id INT, CHECK (id   >   0));`
	expected := `CREATE TABLE t (id INT, CHECK (id > 0));`

	stmts, err := GenerateDiff(current, expected, Options{})
	if err != nil {
		t.Fatalf("GenerateDiff failed: %v", err)
	}
	if len(stmts) != 0 {
		t.Fatalf("expected the differently-spaced but equivalent CHECK constraints to compare equal, got %v", stmts)
	}
}

func TestGenerateDiff_CatalogParseErrorIsTyped(t *testing.T) {
	_, err := GenerateDiff("not valid ddl {{{", "", Options{})
	if err == nil {
		t.Fatal("expected a CatalogParse error for invalid DDL")
	}
	diffErr, ok := err.(DiffError)
	if !ok || diffErr.Kind != "CatalogParse" {
		t.Errorf("expected DiffError{Kind: CatalogParse}, got %#v", err)
	}
}
