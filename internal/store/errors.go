package store

import "fmt"

// WriteError classifies a failed artifact write. It preserves the
// underlying error in the chain so callers can use errors.Is/errors.As
// rather than string matching.
type WriteError struct {
	// Op is the operation that failed ("write", "rename", "mkdir").
	Op string
	// Path is the artifact (or temp file) path involved.
	Path string
	// Err is the underlying error.
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As chain traversal.
func (e *WriteError) Unwrap() error {
	return e.Err
}
