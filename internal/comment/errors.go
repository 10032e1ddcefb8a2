package comment

import "fmt"

// CommentError reports an out-of-range comment index passed to Edit or Delete.
type CommentError struct {
	Kind    string
	Message string
}

func (e CommentError) Error() string {
	return fmt.Sprintf("comment error (%s): %s", e.Kind, e.Message)
}

func invalidIndex(idx, count int) error {
	return CommentError{
		Kind:    "InvalidCommentIndex",
		Message: fmt.Sprintf("comment index %d out of range [0,%d)", idx, count),
	}
}
