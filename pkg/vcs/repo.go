package vcs

import (
	"errors"
	"log/slog"
	"slices"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/cache"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/filesystem"
)

// Signature identifies who commits.
type Signature struct {
	Name  string
	Email string
}

// Options configure how a repository is opened.
type Options struct {
	// FS is the worktree root; git data lives in its .git directory.
	FS     billy.Filesystem
	Author Signature
	Logger *slog.Logger
}

// Repo is a non-bare repository with a worktree.
type Repo struct {
	repo     *git.Repository
	worktree *git.Worktree
	author   Signature
	logger   *slog.Logger
	// now is swapped in tests that need stable commit times.
	now func() time.Time
}

func storage(fs billy.Filesystem) (*filesystem.Storage, error) {
	dotGit, err := fs.Chroot(git.GitDirName)
	if err != nil {
		return nil, wrap(err, "open .git directory")
	}
	return filesystem.NewStorage(dotGit, cache.NewObjectLRUDefault()), nil
}

func newRepo(r *git.Repository, opts Options) (*Repo, error) {
	wt, err := r.Worktree()
	if err != nil {
		return nil, wrap(err, "get worktree")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Repo{repo: r, worktree: wt, author: opts.Author, logger: logger, now: time.Now}, nil
}

// Init creates a repository whose HEAD points at mainBranch.
func Init(opts Options, mainBranch string) (*Repo, error) {
	st, err := storage(opts.FS)
	if err != nil {
		return nil, err
	}
	r, err := git.InitWithOptions(st, opts.FS, git.InitOptions{
		DefaultBranch: plumbing.NewBranchReferenceName(mainBranch),
	})
	if err != nil {
		return nil, wrap(err, "init repository")
	}
	return newRepo(r, opts)
}

// Open opens an existing repository.
func Open(opts Options) (*Repo, error) {
	st, err := storage(opts.FS)
	if err != nil {
		return nil, err
	}
	r, err := git.Open(st, opts.FS)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, ErrNotRepository
		}
		return nil, wrap(err, "open repository")
	}
	return newRepo(r, opts)
}

// OpenOrInit opens the repository, creating it first when there is none.
func OpenOrInit(opts Options, mainBranch string) (*Repo, error) {
	r, err := Open(opts)
	if errors.Is(err, ErrNotRepository) {
		return Init(opts, mainBranch)
	}
	return r, err
}

func (r *Repo) hasBranch(name string) bool {
	_, err := r.repo.Reference(plumbing.NewBranchReferenceName(name), true)
	return err == nil
}

// CurrentBranch returns the checked out branch. Before the first commit
// this is the branch HEAD will point at.
func (r *Repo) CurrentBranch() (string, error) {
	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return "", wrap(err, "read HEAD")
	}
	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}
	return "", ErrDetachedHead
}

// Branches lists local branch names in sorted order.
func (r *Repo) Branches() ([]string, error) {
	iter, err := r.repo.Branches()
	if err != nil {
		return nil, wrap(err, "list branches")
	}
	defer iter.Close()
	var names []string
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		names = append(names, ref.Name().Short())
		return nil
	})
	if err != nil {
		return nil, wrap(err, "list branches")
	}
	slices.Sort(names)
	return names, nil
}

// Checkout switches to branch. With create, the branch is made from HEAD
// and must not exist yet; without it, the branch must exist. Checking out
// the current branch is a no-op. A failed switch leaves HEAD, the index and
// the worktree as they were.
func (r *Repo) Checkout(branch string, create bool) error {
	exists := r.hasBranch(branch)
	switch {
	case create && exists:
		return wrap(ErrBranchExists, branch)
	case !create && !exists:
		return wrap(ErrBranchMissing, branch)
	}
	if current, err := r.CurrentBranch(); err == nil && current == branch && !create {
		return nil
	}
	if err := r.clean(); err != nil {
		return wrap(err, "checkout "+branch)
	}

	head, err := r.repo.Storer.Reference(plumbing.HEAD)
	if err != nil {
		return wrap(err, "read HEAD")
	}
	ref := plumbing.NewBranchReferenceName(branch)
	err = r.worktree.Checkout(&git.CheckoutOptions{Branch: ref, Create: create})
	if err != nil {
		// go-git moves HEAD before it updates the worktree.
		if rerr := r.repo.Storer.SetReference(head); rerr != nil {
			r.logger.Warn("could not restore HEAD", "error", rerr)
		}
		if create {
			_ = r.repo.Storer.RemoveReference(ref)
		}
		return wrap(err, "checkout "+branch)
	}
	r.logger.Debug("checked out branch", "branch", branch, "created", create)
	return nil
}

// clean returns ErrDirtyWorktree when a tracked file differs from HEAD.
// Untracked and ignored files do not count.
func (r *Repo) clean() error {
	status, err := r.worktree.Status()
	if err != nil {
		return wrap(err, "get worktree status")
	}
	for name, fs := range status {
		if fs.Staging == git.Untracked || fs.Worktree == git.Untracked {
			continue
		}
		if fs.Staging != git.Unmodified || fs.Worktree != git.Unmodified {
			r.logger.Debug("dirty worktree", "file", name)
			return ErrDirtyWorktree
		}
	}
	return nil
}

// AddAll stages every change the ignore file does not exclude.
func (r *Repo) AddAll() error {
	if err := r.worktree.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return wrap(err, "stage changes")
	}
	return nil
}

// Commit records the staged changes and returns the new commit hash. Empty
// commits are refused with ErrNothingToCommit.
func (r *Repo) Commit(msg string) (string, error) {
	status, err := r.worktree.Status()
	if err != nil {
		return "", wrap(err, "get worktree status")
	}
	staged := 0
	for _, fs := range status {
		if fs.Staging != git.Untracked && fs.Staging != git.Unmodified {
			staged++
		}
	}
	if staged == 0 {
		return "", ErrNothingToCommit
	}

	sig := &object.Signature{Name: r.author.Name, Email: r.author.Email, When: r.now()}
	hash, err := r.worktree.Commit(msg, &git.CommitOptions{
		Author:            sig,
		Committer:         sig,
		AllowEmptyCommits: false,
	})
	if err != nil {
		if errors.Is(err, git.ErrEmptyCommit) {
			return "", ErrNothingToCommit
		}
		return "", wrap(err, "commit")
	}
	r.logger.Debug("committed", "hash", hash.String(), "files", staged)
	return hash.String(), nil
}

// Discard resets the index and worktree to HEAD, dropping uncommitted
// changes to tracked files.
func (r *Repo) Discard() error {
	if _, err := r.repo.Head(); errors.Is(err, plumbing.ErrReferenceNotFound) {
		// nothing committed yet, so there is nothing to go back to
		return nil
	}
	if err := r.worktree.Reset(&git.ResetOptions{Mode: git.HardReset}); err != nil {
		return wrap(err, "discard changes")
	}
	r.logger.Debug("discarded worktree changes")
	return nil
}

// Head returns the hash of the current commit.
func (r *Repo) Head() (string, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return "", wrap(err, "read HEAD")
	}
	return ref.Hash().String(), nil
}

// Log returns commit messages reachable from branch, newest first.
func (r *Repo) Log(branch string) ([]string, error) {
	ref, err := r.repo.Reference(plumbing.NewBranchReferenceName(branch), true)
	if err != nil {
		return nil, wrap(ErrBranchMissing, branch)
	}
	iter, err := r.repo.Log(&git.LogOptions{From: ref.Hash()})
	if err != nil {
		return nil, wrap(err, "read log")
	}
	defer iter.Close()
	var msgs []string
	err = iter.ForEach(func(c *object.Commit) error {
		msgs = append(msgs, c.Message)
		return nil
	})
	return msgs, wrap(err, "read log")
}
