package ddldiff

import (
	"fmt"
	"strings"
)

// Options configures GenerateDiff's output.
type Options struct {
	DropColumns          bool
	DropTables           bool
	DropConstraints      bool
	CheckConstraintNames bool
}

// GenerateDiff parses currentDdl and expectedDdl into catalogs and returns
// the ordered DDL statements that transform current into expected:
// create-missing-tables, then add/alter columns, then add constraints,
// then create indexes, then (if enabled) drops.
func GenerateDiff(currentDdl, expectedDdl string, opts Options) ([]string, error) {
	current, err := parseCatalog(currentDdl)
	if err != nil {
		return nil, err
	}
	expected, err := parseCatalog(expectedDdl)
	if err != nil {
		return nil, err
	}

	if err := checkAmbiguousRenames(current, expected, opts); err != nil {
		return nil, err
	}

	var out []string
	out = append(out, createMissingTables(current, expected)...)
	out = append(out, alterColumns(current, expected)...)
	out = append(out, addConstraints(current, expected, opts)...)
	out = append(out, createIndexes(current, expected)...)
	if opts.DropColumns || opts.DropTables || opts.DropConstraints {
		out = append(out, drops(current, expected, opts)...)
	}
	return out, nil
}

func checkAmbiguousRenames(current, expected Catalog, opts Options) error {
	if !opts.DropTables {
		return nil
	}
	for _, name := range current.TableOrder {
		if _, ok := expected.table(name); ok {
			continue
		}
		dropped := current.Tables[name]
		for _, other := range expected.TableOrder {
			if _, ok := current.table(other); ok {
				continue
			}
			if sameColumnShape(dropped, expected.Tables[other]) {
				return ambiguousRename(name)
			}
		}
	}
	return nil
}

func sameColumnShape(a, b Table) bool {
	if len(a.Columns) != len(b.Columns) {
		return false
	}
	for i := range a.Columns {
		if a.Columns[i].Name != b.Columns[i].Name || a.Columns[i].Type != b.Columns[i].Type {
			return false
		}
	}
	return true
}

func createMissingTables(current, expected Catalog) []string {
	var out []string
	for _, name := range expected.TableOrder {
		if _, ok := current.table(name); ok {
			continue
		}
		out = append(out, renderCreateTable(expected.Tables[name]))
	}
	return out
}

func alterColumns(current, expected Catalog) []string {
	var out []string
	for _, name := range expected.TableOrder {
		curTable, ok := current.table(name)
		if !ok {
			continue // handled by createMissingTables
		}
		expTable := expected.Tables[name]
		for _, col := range expTable.Columns {
			curCol, ok := curTable.column(col.Name)
			if !ok {
				out = append(out, fmt.Sprintf("ALTER TABLE %s ADD COLUMN %s", name, renderColumn(col)))
				continue
			}
			if curCol.Type != col.Type {
				out = append(out, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s TYPE %s", name, col.Name, col.Type))
			}
			if curCol.NotNull != col.NotNull {
				if col.NotNull {
					out = append(out, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET NOT NULL", name, col.Name))
				} else {
					out = append(out, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP NOT NULL", name, col.Name))
				}
			}
			if curCol.Default != col.Default {
				if col.Default == "" {
					out = append(out, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s DROP DEFAULT", name, col.Name))
				} else {
					out = append(out, fmt.Sprintf("ALTER TABLE %s ALTER COLUMN %s SET DEFAULT %s", name, col.Name, col.Default))
				}
			}
		}
	}
	return out
}

func addConstraints(current, expected Catalog, opts Options) []string {
	var out []string
	for _, name := range expected.TableOrder {
		curTable, ok := current.table(name)
		if !ok {
			continue
		}
		expTable := expected.Tables[name]
		for _, c := range expTable.Constraints {
			if constraintPresent(curTable.Constraints, c, opts.CheckConstraintNames) {
				continue
			}
			out = append(out, fmt.Sprintf("ALTER TABLE %s ADD %s", name, renderConstraint(c)))
		}
	}
	return out
}

func constraintPresent(existing []Constraint, c Constraint, checkNames bool) bool {
	for _, e := range existing {
		if e.Equal(c, checkNames) {
			return true
		}
	}
	return false
}

func createIndexes(current, expected Catalog) []string {
	var out []string
	for _, idx := range expected.Indexes {
		if indexPresent(current.Indexes, idx) {
			continue
		}
		out = append(out, renderIndex(idx))
	}
	return out
}

func indexPresent(existing []Index, idx Index) bool {
	for _, e := range existing {
		if e.Name == idx.Name {
			return true
		}
	}
	return false
}

func drops(current, expected Catalog, opts Options) []string {
	var out []string
	if opts.DropConstraints {
		for _, name := range current.TableOrder {
			curTable := current.Tables[name]
			expTable, ok := expected.table(name)
			for _, c := range curTable.Constraints {
				if ok && constraintPresent(expTable.Constraints, c, opts.CheckConstraintNames) {
					continue
				}
				if c.Name == "" {
					continue
				}
				out = append(out, fmt.Sprintf("ALTER TABLE %s DROP CONSTRAINT %s", name, c.Name))
			}
		}
	}
	if opts.DropColumns {
		for _, name := range current.TableOrder {
			curTable := current.Tables[name]
			expTable, ok := expected.table(name)
			for _, col := range curTable.Columns {
				if ok {
					if _, still := expTable.column(col.Name); still {
						continue
					}
				} else {
					continue // whole table is being dropped, not just the column
				}
				out = append(out, fmt.Sprintf("ALTER TABLE %s DROP COLUMN %s", name, col.Name))
			}
		}
	}
	if opts.DropTables {
		for _, name := range current.TableOrder {
			if _, ok := expected.table(name); ok {
				continue
			}
			out = append(out, "DROP TABLE "+name)
		}
	}
	return out
}

func renderCreateTable(t Table) string {
	var items []string
	for _, c := range t.Columns {
		items = append(items, renderColumn(c))
	}
	for _, c := range t.Constraints {
		items = append(items, renderConstraint(c))
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", t.Name, strings.Join(items, ", "))
}

func renderColumn(c Column) string {
	var b strings.Builder
	b.WriteString(c.Name)
	b.WriteString(" ")
	b.WriteString(c.Type)
	if c.NotNull {
		b.WriteString(" NOT NULL")
	}
	if c.Default != "" {
		b.WriteString(" DEFAULT ")
		b.WriteString(c.Default)
	}
	return b.String()
}

func renderConstraint(c Constraint) string {
	prefix := ""
	if c.Name != "" {
		prefix = "CONSTRAINT " + c.Name + " "
	}
	switch c.Kind {
	case PrimaryKeyConstraint:
		return prefix + "PRIMARY KEY (" + strings.Join(c.Columns, ", ") + ")"
	case UniqueConstraint:
		return prefix + "UNIQUE (" + strings.Join(c.Columns, ", ") + ")"
	case ForeignKeyConstraint:
		return prefix + "FOREIGN KEY (" + strings.Join(c.Columns, ", ") + ") REFERENCES " + c.RefTable + " (" + strings.Join(c.RefColumns, ", ") + ")"
	case CheckConstraint:
		return prefix + "CHECK (" + c.Predicate + ")"
	}
	return prefix
}

func renderIndex(idx Index) string {
	kw := "INDEX"
	if idx.Unique {
		kw = "UNIQUE INDEX"
	}
	return fmt.Sprintf("CREATE %s %s ON %s (%s)", kw, idx.Name, idx.Table, strings.Join(idx.Columns, ", "))
}
