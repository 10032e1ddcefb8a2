package comment

import (
	"strings"

	"github.com/ritamzico/sqlkit/internal/ast"
	"github.com/ritamzico/sqlkit/internal/token"
)

// Placement selects which comment slot an edit operation targets.
type Placement = token.CommentPlacement

const (
	Leading  = token.Leading
	Trailing = token.Trailing
)

// combined returns node's comments as one ordered slice (leading first,
// then trailing) plus a setter to write it back split across the two
// slots. Index i < len(Leading) addresses a leading comment; the rest
// address trailing comments, in source order.
func combined(node ast.Node) (all []token.Comment, leadingCount int) {
	c := node.Comments()
	all = make([]token.Comment, 0, len(c.Leading)+len(c.Trailing))
	all = append(all, c.Leading...)
	all = append(all, c.Trailing...)
	return all, len(c.Leading)
}

// GetComments returns node's comments in source order (leading, then
// trailing).
func GetComments(node ast.Node) []token.Comment {
	all, _ := combined(node)
	return all
}

// CountComments returns the number of comments owned by node.
func CountComments(node ast.Node) int {
	c := node.Comments()
	return len(c.Leading) + len(c.Trailing)
}

// AddComment appends a new comment to node in the given placement.
func AddComment(node ast.Node, text string, style token.CommentStyle, placement Placement) {
	c := node.Comments()
	cm := token.Comment{Text: text, Style: style, Placement: placement}
	if placement == Trailing {
		c.Trailing = append(c.Trailing, cm)
	} else {
		c.Leading = append(c.Leading, cm)
	}
}

// EditComment rewrites the text of the comment at combined index idx.
func EditComment(node ast.Node, idx int, text string) error {
	c := node.Comments()
	if idx < 0 || idx >= len(c.Leading)+len(c.Trailing) {
		return invalidIndex(idx, len(c.Leading)+len(c.Trailing))
	}
	if idx < len(c.Leading) {
		c.Leading[idx].Text = text
		return nil
	}
	c.Trailing[idx-len(c.Leading)].Text = text
	return nil
}

// DeleteComment removes the comment at combined index idx.
func DeleteComment(node ast.Node, idx int) error {
	c := node.Comments()
	if idx < 0 || idx >= len(c.Leading)+len(c.Trailing) {
		return invalidIndex(idx, len(c.Leading)+len(c.Trailing))
	}
	if idx < len(c.Leading) {
		c.Leading = append(c.Leading[:idx], c.Leading[idx+1:]...)
		return nil
	}
	i := idx - len(c.Leading)
	c.Trailing = append(c.Trailing[:i], c.Trailing[i+1:]...)
	return nil
}

// FindComponentsWithComment returns every node under root that owns a
// comment containing substr.
func FindComponentsWithComment(root ast.Node, substr string) []ast.Node {
	var out []ast.Node
	ast.Walk(root, func(n ast.Node) {
		for _, cm := range GetComments(n) {
			if strings.Contains(cm.Text, substr) {
				out = append(out, n)
				return
			}
		}
	})
	return out
}

// ReplaceInComments rewrites every occurrence of from with to across all
// comments under root, returning the number of comments touched (not the
// number of individual replacements).
func ReplaceInComments(root ast.Node, from, to string) int {
	count := 0
	ast.Walk(root, func(n ast.Node) {
		c := n.Comments()
		for i := range c.Leading {
			if strings.Contains(c.Leading[i].Text, from) {
				c.Leading[i].Text = strings.ReplaceAll(c.Leading[i].Text, from, to)
				count++
			}
		}
		for i := range c.Trailing {
			if strings.Contains(c.Trailing[i].Text, from) {
				c.Trailing[i].Text = strings.ReplaceAll(c.Trailing[i].Text, from, to)
				count++
			}
		}
	})
	return count
}

// DeleteAllComments strips every comment from every node under root.
func DeleteAllComments(root ast.Node) {
	ast.Walk(root, func(n ast.Node) {
		c := n.Comments()
		c.Leading = nil
		c.Trailing = nil
	})
}

// CountAllComments returns the total comment count under root.
func CountAllComments(root ast.Node) int {
	total := 0
	ast.Walk(root, func(n ast.Node) {
		total += CountComments(n)
	})
	return total
}
