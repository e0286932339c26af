package vcs

import (
	"testing"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) (*Repo, billy.Filesystem) {
	t.Helper()
	fs := memfs.New()
	r, err := Init(Options{FS: fs, Author: Signature{Name: "rsm", Email: "rsm@localhost"}}, "main")
	require.NoError(t, err)
	return r, fs
}

func write(t *testing.T, fs billy.Filesystem, name, content string) {
	t.Helper()
	require.NoError(t, util.WriteFile(fs, name, []byte(content), 0o644))
}

func TestInitUsesMainBranch(t *testing.T) {
	r, _ := newTestRepo(t)
	branch, err := r.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", branch)
}

func TestOpenWithoutRepository(t *testing.T) {
	_, err := Open(Options{FS: memfs.New()})
	assert.ErrorIs(t, err, ErrNotRepository)
}

func TestOpenOrInit(t *testing.T) {
	fs := memfs.New()
	r, err := OpenOrInit(Options{FS: fs}, "main")
	require.NoError(t, err)
	require.NotNil(t, r)

	_, err = Open(Options{FS: fs})
	assert.NoError(t, err)
}

func TestCommitAndNothingToCommit(t *testing.T) {
	r, fs := newTestRepo(t)
	write(t, fs, "resume.yaml", "a: 1\n")
	require.NoError(t, r.AddAll())
	hash, err := r.Commit("Initial resume setup")
	require.NoError(t, err)
	assert.Len(t, hash, 40)

	require.NoError(t, r.AddAll())
	_, err = r.Commit("again")
	assert.ErrorIs(t, err, ErrNothingToCommit)

	head, err := r.Head()
	require.NoError(t, err)
	assert.Equal(t, hash, head)
}

func TestAddAllHonorsIgnoreFile(t *testing.T) {
	r, fs := newTestRepo(t)
	write(t, fs, ".gitignore", "*\n!.gitignore\n!resume.yaml\n")
	write(t, fs, "resume.yaml", "a: 1\n")
	write(t, fs, "resume.tex", "ignored")
	require.NoError(t, r.AddAll())
	_, err := r.Commit("init")
	require.NoError(t, err)

	status, err := r.worktree.Status()
	require.NoError(t, err)
	assert.True(t, status.IsClean(), "status: %v", status)
}

func TestBranches(t *testing.T) {
	r, fs := newTestRepo(t)
	write(t, fs, "resume.yaml", "a: 1\n")
	require.NoError(t, r.AddAll())
	_, err := r.Commit("init")
	require.NoError(t, err)

	require.NoError(t, r.Checkout("backend", true))
	current, err := r.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "backend", current)

	assert.ErrorIs(t, r.Checkout("backend", true), ErrBranchExists)
	assert.ErrorIs(t, r.Checkout("frontend", false), ErrBranchMissing)

	require.NoError(t, r.Checkout("main", false))
	names, err := r.Branches()
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "main"}, names)
}

func TestCheckoutRefusesDirtyWorktree(t *testing.T) {
	r, fs := newTestRepo(t)
	write(t, fs, "resume.yaml", "a: 1\n")
	require.NoError(t, r.AddAll())
	_, err := r.Commit("init")
	require.NoError(t, err)
	require.NoError(t, r.Checkout("backend", true))
	require.NoError(t, r.Checkout("main", false))

	write(t, fs, "resume.yaml", "a: 2\n")
	assert.ErrorIs(t, r.Checkout("backend", false), ErrDirtyWorktree)
	assert.ErrorIs(t, r.Checkout("frontend", true), ErrDirtyWorktree)

	current, err := r.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "main", current)
	names, err := r.Branches()
	require.NoError(t, err)
	assert.Equal(t, []string{"backend", "main"}, names)
	data, err := util.ReadFile(fs, "resume.yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 2\n", string(data))

	// Staying on the current branch keeps the edit.
	require.NoError(t, r.Checkout("main", false))

	// Untracked files do not block a switch.
	write(t, fs, "resume.yaml", "a: 1\n")
	write(t, fs, "notes.txt", "draft\n")
	require.NoError(t, r.Checkout("backend", false))
}

func TestDiscard(t *testing.T) {
	r, fs := newTestRepo(t)
	write(t, fs, "resume.yaml", "a: 1\n")
	require.NoError(t, r.AddAll())
	_, err := r.Commit("init")
	require.NoError(t, err)

	write(t, fs, "resume.yaml", "a: 2\n")
	require.NoError(t, r.AddAll())
	require.NoError(t, r.Discard())

	data, err := util.ReadFile(fs, "resume.yaml")
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", string(data))
}

func TestLog(t *testing.T) {
	r, fs := newTestRepo(t)
	write(t, fs, "resume.yaml", "a: 1\n")
	require.NoError(t, r.AddAll())
	_, err := r.Commit("first\n")
	require.NoError(t, err)
	write(t, fs, "resume.yaml", "a: 2\n")
	require.NoError(t, r.AddAll())
	_, err = r.Commit("second\n")
	require.NoError(t, err)

	msgs, err := r.Log("main")
	require.NoError(t, err)
	assert.Equal(t, []string{"second\n", "first\n"}, msgs)
}
