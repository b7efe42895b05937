package domain

import "fmt"

// QueryError wraps a database driver error from a failed statement execution.
// It is propagated to the caller unmodified in substance; nothing in the
// module retries.
type QueryError struct {
	Op  string
	Err error
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("nav: %s: %v", e.Op, e.Err)
}

func (e *QueryError) Unwrap() error {
	return e.Err
}

// NewQueryError wraps err with the failing operation name.
func NewQueryError(op string, err error) *QueryError {
	return &QueryError{Op: op, Err: err}
}
