// Package vcs versions the résumé with git. It drives go-git over a billy
// filesystem, so the same code runs against a directory on disk or an
// in-memory tree in tests.
package vcs

import (
	"errors"
	"fmt"
)

// ErrNothingToCommit is returned by Commit when no staged change exists.
var ErrNothingToCommit = errors.New("nothing to commit")

// ErrBranchExists is returned when creating a branch that already exists.
var ErrBranchExists = errors.New("branch already exists")

// ErrBranchMissing is returned when checking out a branch that does not exist.
var ErrBranchMissing = errors.New("branch does not exist")

// ErrDirtyWorktree is returned when switching branches would carry or drop
// uncommitted changes to tracked files.
var ErrDirtyWorktree = errors.New("worktree has uncommitted changes")

// ErrNotRepository is returned when the directory holds no repository.
var ErrNotRepository = errors.New("not a git repository")

// ErrDetachedHead is returned when HEAD does not point at a branch.
var ErrDetachedHead = errors.New("HEAD is detached")

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
