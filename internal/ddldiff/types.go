package ddldiff

import "strings"

// ConstraintKind enumerates the table-level constraint forms this catalog
// understands.
type ConstraintKind int

const (
	PrimaryKeyConstraint ConstraintKind = iota
	UniqueConstraint
	ForeignKeyConstraint
	CheckConstraint
)

// Column is one table column as parsed from DDL.
type Column struct {
	Name     string
	Type     string
	NotNull  bool
	Default  string
}

// Constraint is one table-level constraint. Predicate holds the normalized
// CHECK expression text; Columns/RefTable/RefColumns apply to PRIMARY
// KEY/UNIQUE/FOREIGN KEY.
type Constraint struct {
	Name       string
	Kind       ConstraintKind
	Columns    []string
	Predicate  string
	RefTable   string
	RefColumns []string
}

// Equal reports whether c and other describe the same constraint. CHECK
// constraints compare by normalized predicate only; when checkNames is
// true, the declared name must also match.
func (c Constraint) Equal(other Constraint, checkNames bool) bool {
	if c.Kind != other.Kind {
		return false
	}
	switch c.Kind {
	case CheckConstraint:
		if c.Predicate != other.Predicate {
			return false
		}
		if checkNames && c.Name != other.Name {
			return false
		}
		return true
	case ForeignKeyConstraint:
		return sameStrings(c.Columns, other.Columns) && c.RefTable == other.RefTable && sameStrings(c.RefColumns, other.RefColumns)
	default:
		return sameStrings(c.Columns, other.Columns)
	}
}

func sameStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Index is one CREATE [UNIQUE] INDEX definition.
type Index struct {
	Name    string
	Table   string
	Columns []string
	Unique  bool
}

// Table is one CREATE TABLE definition.
type Table struct {
	Name        string
	Columns     []Column
	Constraints []Constraint
}

func (t Table) column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// Catalog is the result of parsing a DDL corpus: its tables (in declaration
// order) and its indexes.
type Catalog struct {
	Tables     map[string]Table
	TableOrder []string
	Indexes    []Index
}

func (cat Catalog) table(name string) (Table, bool) {
	t, ok := cat.Tables[name]
	return t, ok
}

func parseCatalog(ddl string) (Catalog, error) {
	raw, err := parseGrammar(ddl)
	if err != nil {
		return Catalog{}, catalogParseError(err)
	}
	cat := Catalog{Tables: map[string]Table{}}
	for _, stmt := range raw.Statements {
		switch {
		case stmt.Table != nil:
			t := convertTable(stmt.Table)
			cat.Tables[t.Name] = t
			cat.TableOrder = append(cat.TableOrder, t.Name)
		case stmt.Index != nil:
			cat.Indexes = append(cat.Indexes, convertIndex(stmt.Index))
		}
	}
	return cat, nil
}

func convertTable(ast *createTableAST) Table {
	t := Table{Name: ast.Name}
	for _, item := range ast.Items {
		switch {
		case item.Column != nil:
			t.Columns = append(t.Columns, convertColumn(item.Column))
		case item.Constraint != nil:
			t.Constraints = append(t.Constraints, convertConstraint(item.Constraint))
		}
	}
	return t
}

func convertColumn(ast *columnAST) Column {
	return Column{
		Name:    ast.Name,
		Type:    renderType(ast.Type),
		NotNull: ast.NotNull,
		Default: renderRawExpr(ast.Default),
	}
}

func renderType(t typeAST) string {
	if len(t.Size) == 0 {
		return t.Name
	}
	return t.Name + "(" + strings.Join(t.Size, ",") + ")"
}

func convertConstraint(ast *constraintAST) Constraint {
	switch {
	case ast.Primary != nil:
		return Constraint{Name: ast.Name, Kind: PrimaryKeyConstraint, Columns: ast.Primary.Columns}
	case ast.Unique != nil:
		return Constraint{Name: ast.Name, Kind: UniqueConstraint, Columns: ast.Unique.Columns}
	case ast.Foreign != nil:
		return Constraint{
			Name:       ast.Name,
			Kind:       ForeignKeyConstraint,
			Columns:    ast.Foreign.Columns,
			RefTable:   ast.Foreign.RefTable,
			RefColumns: ast.Foreign.RefColumns,
		}
	case ast.Check != nil:
		return Constraint{Name: ast.Name, Kind: CheckConstraint, Predicate: renderRawExpr(ast.Check)}
	}
	return Constraint{Name: ast.Name}
}

func convertIndex(ast *createIndexAST) Index {
	return Index{Name: ast.Name, Table: ast.Table, Columns: ast.Columns, Unique: ast.Unique}
}

// renderRawExpr normalizes a captured predicate/default expression into a
// single-spaced, uppercased-keyword string so two syntactically equivalent
// expressions compare equal regardless of source whitespace or case.
func renderRawExpr(e *rawExpr) string {
	if e == nil {
		return ""
	}
	var parts []string
	for _, tok := range e.Tokens {
		switch {
		case tok.Nested != nil:
			parts = append(parts, "("+renderRawExpr(tok.Nested)+")")
		case tok.Atom != nil:
			parts = append(parts, normalizeAtom(*tok.Atom))
		}
	}
	return strings.Join(parts, " ")
}

func normalizeAtom(s string) string {
	switch strings.ToUpper(s) {
	case "AND", "OR", "NOT", "NULL", "IS", "IN", "LIKE", "BETWEEN":
		return strings.ToUpper(s)
	}
	return s
}
