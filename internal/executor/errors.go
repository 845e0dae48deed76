package executor

import "fmt"

// RenameError wraps the I/O error of the pair that stopped execution.
type RenameError struct {
	From string
	To   string
	Err  error
}

func (e *RenameError) Error() string {
	return fmt.Sprintf("rename %s to %s: %v", e.From, e.To, e.Err)
}

func (e *RenameError) Unwrap() error { return e.Err }
