package ast

import "fmt"

// AstError reports a construction-time invariant violation or an
// unsupported node kind encountered while building or walking the tree.
type AstError struct {
	Kind    string
	Message string
}

func (e AstError) Error() string {
	return fmt.Sprintf("ast error (%s): %s", e.Kind, e.Message)
}

func invariantViolation(format string, args ...any) error {
	return AstError{Kind: "InvariantViolation", Message: fmt.Sprintf(format, args...)}
}

func unsupportedNode(format string, args ...any) error {
	return AstError{Kind: "UnsupportedNode", Message: fmt.Sprintf(format, args...)}
}
