// Package comment implements C4: attaching lexer-owned comments to AST
// nodes after each node is built, and the post-parse comment editing API.
package comment

import (
	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/token"
)

// Attach moves first's leading comments and last's trailing comments onto
// node, transferring ownership from lexeme to AST node (C-UNIQ: once moved,
// the lexeme no longer carries them). The parser calls this once per node,
// immediately after the node's closing lexeme is consumed, passing the
// first and last lexeme it actually owns — choosing those boundaries
// correctly is what keeps a trailing comment from migrating to the wrong
// sibling.
func Attach(node ast.Node, first, last *token.Lexeme) {
	if node == nil {
		return
	}
	c := node.Comments()
	if first != nil && len(first.LeadingComments) > 0 {
		c.Leading = append(c.Leading, first.LeadingComments...)
		first.LeadingComments = nil
	}
	if last != nil && len(last.TrailingComments) > 0 {
		c.Trailing = append(c.Trailing, last.TrailingComments...)
		last.TrailingComments = nil
	}
}

// AttachLeadingOnly moves only first's leading comments, leaving any
// trailing comment on last owned by the lexeme for the caller to reassign
// to a following sibling (used when a node's last lexeme is shared with
// the next sibling's opening boundary, e.g. a comma).
func AttachLeadingOnly(node ast.Node, first *token.Lexeme) {
	if node == nil || first == nil {
		return
	}
	c := node.Comments()
	if len(first.LeadingComments) > 0 {
		c.Leading = append(c.Leading, first.LeadingComments...)
		first.LeadingComments = nil
	}
}
