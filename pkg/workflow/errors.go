package workflow

import (
	"errors"
	"fmt"
)

// ErrAlreadyInitialized is returned by Initialize when the document exists.
var ErrAlreadyInitialized = errors.New("resume already initialized")

// BranchError reports a failed branch operation. Err is usually one of the
// vcs sentinel errors.
type BranchError struct {
	Op     string
	Branch string
	Err    error
}

func (e *BranchError) Error() string {
	if e.Branch == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Branch, e.Err)
}

func (e *BranchError) Unwrap() error { return e.Err }
