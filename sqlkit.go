// Package sqlkit is the public facade over this module's dialect-aware SQL
// parsing, formatting, CTE-analysis, result-set conversion, and DDL-diff
// components.
package sqlkit

import (
	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/comment"
	"github.com/ritamzico/sqlkit/internal/convert"
	"github.com/ritamzico/sqlkit/internal/cte"
	"github.com/ritamzico/sqlkit/internal/ddldiff"
	"github.com/ritamzico/sqlkit/internal/format"
	"github.com/ritamzico/sqlkit/internal/parser"
	"github.com/ritamzico/sqlkit/internal/printtoken"
)

type (
	// Statement is the root of any parsed DML/DDL/SELECT statement.
	Statement = ast.Statement
	// SelectQuery is a SimpleSelect, BinarySelectQuery, or ValuesQuery.
	SelectQuery = ast.SelectQuery
	// Node is the common supertype every AST node satisfies.
	Node = ast.Node

	// FormatOptions configures Format's rendering.
	FormatOptions = format.Options

	// SplitResult is one segment returned by SplitStatements.
	SplitResult = parser.Statement

	// CteInfo describes one CTE's dependency edges, as returned by
	// CollectCTEs and DecomposeCTEs.
	CteInfo = cte.Info
	// CteEdit is one named CTE body passed to ComposeCTEs/SynchronizeCTEs.
	CteEdit = cte.Edit
	// ExtractedCte is the result of ExtractCTE.
	ExtractedCte = cte.Extracted

	// ConvertOptions configures ToSelectQuery's fixture simulation.
	ConvertOptions = convert.Options
	// FixtureTable is an in-memory stand-in for a table's post-statement rows.
	FixtureTable = convert.FixtureTable
	// FixtureColumn names one FixtureTable column.
	FixtureColumn = convert.FixtureColumn

	// DiffOptions configures GenerateDiff's output.
	DiffOptions = ddldiff.Options
)

const (
	StrategyError       = convert.StrategyError
	StrategyPassthrough = convert.StrategyPassthrough
)

// Parse parses a single SQL statement of any supported kind.
func Parse(text string) (Statement, error) {
	return parser.Parse(text)
}

// ParseSelect parses text as a SELECT query (SimpleSelect, set-operator
// chain, or bare VALUES).
func ParseSelect(text string) (SelectQuery, error) {
	return parser.ParseSelect(text)
}

// DefaultFormatOptions returns the library's documented default rendering
// style.
func DefaultFormatOptions() FormatOptions {
	return format.DefaultOptions()
}

// Format renders stmt's print-token stream under opts.
func Format(stmt Statement, opts FormatOptions) (string, error) {
	return format.Format(printtoken.Emit(stmt), opts)
}

// FormatQuery renders a bare SelectQuery (useful for CTE bodies and other
// query fragments that have no enclosing Statement).
func FormatQuery(q SelectQuery, opts FormatOptions) (string, error) {
	return format.Format(printtoken.EmitQuery(q), opts)
}

// SplitStatements breaks text into top-level `;`-delimited statements.
func SplitStatements(text string) ([]SplitResult, error) {
	return parser.SplitStatements(text)
}

// CollectCTEs returns every CTE reachable from query with its dependency
// edges and recursion/materialization flags, in per-scope topological order.
func CollectCTEs(query SelectQuery) ([]CteInfo, error) {
	return cte.Collect(query)
}

// DecomposeCTEs returns the same records as CollectCTEs, except each entry's
// Query is made self-contained by attaching a synthesized WITH clause
// carrying its transitive dependencies.
func DecomposeCTEs(query SelectQuery) ([]CteInfo, error) {
	return cte.Decompose(query)
}

// ComposeCTEs assembles a single `WITH ... SELECT` from edits and rootQuery.
func ComposeCTEs(edits []CteEdit, rootQuery string) (string, error) {
	return cte.Compose(edits, rootQuery)
}

// ExtractCTE returns a standalone runnable snippet for name plus its
// transitive dependency closure.
func ExtractCTE(query SelectQuery, name string) (*ExtractedCte, error) {
	return cte.Extract(query, name)
}

// SynchronizeCTEs expands WITH clauses nested inside edits into sibling
// CTEs and returns a normalized, topologically ordered CTE list.
func SynchronizeCTEs(edits []CteEdit, rootQuery string) ([]CteInfo, error) {
	return cte.Synchronize(edits, rootQuery)
}

// ToSelectQuery converts an INSERT/UPDATE/DELETE/MERGE statement into a
// SelectQuery simulating its RETURNING projection via opts.FixtureTables.
func ToSelectQuery(stmt Statement, opts ConvertOptions) (Node, error) {
	return convert.ToSelectQuery(stmt, opts)
}

// GenerateDiff parses currentDdl/expectedDdl as CREATE TABLE/INDEX corpora
// and returns the ordered DDL statements transforming current → expected.
func GenerateDiff(currentDdl, expectedDdl string, opts DiffOptions) ([]string, error) {
	return ddldiff.GenerateDiff(currentDdl, expectedDdl, opts)
}

// BaseTables collects every base-table reference reachable from root. When
// includeCTEs is false, references inside CTE bodies are excluded.
func BaseTables(root Node, includeCTEs bool) []*ast.BaseTable {
	return ast.BaseTableRefs(root, includeCTEs)
}

// Comment editing, re-exported for callers that want to mutate a parsed
// tree's attached comments before re-formatting.
var (
	AddComment                = comment.AddComment
	EditComment               = comment.EditComment
	DeleteComment             = comment.DeleteComment
	GetComments               = comment.GetComments
	CountComments             = comment.CountComments
	ReplaceInComments         = comment.ReplaceInComments
	CountAllComments          = comment.CountAllComments
	FindComponentsWithComment = comment.FindComponentsWithComment
)
