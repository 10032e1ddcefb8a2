// Package ast defines the typed AST produced by the parser: a tagged
// variant hierarchy for statements, queries, clauses, and value
// expressions. Every node exposes Children() so the comment editor and the
// print-token visitor can traverse the tree uniformly without a
// per-variant type switch at the call site.
package ast

import "github.com/ritamzico/sqlkit/internal/token"

// Node is the uniform traversal interface every AST node implements.
type Node interface {
	Pos() token.Position
	Children() []Node
	Comments() *Comments
}

// Comments holds the comment slots attached to a node after parsing. It is
// mutated only through the comment editor (internal/comment), never
// directly by the parser after attachComments runs once.
type Comments struct {
	Leading  []token.Comment
	Trailing []token.Comment
}

// Header carries the fields common to every AST node: its source position
// and its comment slots. Concrete node types embed it.
type Header struct {
	Position token.Position
	Own      Comments
}

func (h *Header) Pos() token.Position   { return h.Position }
func (h *Header) Comments() *Comments   { return &h.Own }
func (h *Header) setPos(p token.Position) { h.Position = p }

// Statement is the top-level sum type: SelectStmt | InsertStmt | UpdateStmt
// | DeleteStmt | MergeStmt | CreateTableStmt | CreateIndexStmt | AlterStmt.
type Statement interface {
	Node
	isStatement()
}

// Value is the value-expression sum type: Literal | Ident | Qualified |
// Param | BinaryExpr | UnaryExpr | FunctionCall | CaseExpr | CastExpr |
// BetweenExpr | InListExpr | ExistsExpr | SubqueryExpr | ArrayAccessExpr |
// TupleExpr | Star | WindowSpec | OrderBy, carrying comments/position in Header.
type Value interface {
	Node
	isValue()
}

// SelectQuery is Simple(SimpleSelect) | Binary(op, left, right) | Values(rows).
type SelectQuery interface {
	Node
	isSelectQuery()
}

// TableSource is BaseTable | DerivedTable | FunctionSource | JoinTable | Lateral.
type TableSource interface {
	Node
	isTableSource()
}

// children filters out omitted optional nodes. Callers pass an optional
// child only when its concrete pointer is non-nil (e.g. `if x.Where != nil
// { nodes = append(nodes, x.Where) }`), so children never has to guard
// against boxed typed-nil interfaces itself.
func children(nodes ...Node) []Node {
	out := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}
