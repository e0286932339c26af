package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xrsl/rsm/pkg/edit"
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/store"
	"github.com/xrsl/rsm/pkg/vcs"
)

// NothingToCommit is the notice of a run whose save left the document as
// it was last committed.
const NothingToCommit = "No changes to commit."

// InitialMessage is the message of the first commit.
const InitialMessage = "Initial resume setup"

// State is a step of a run.
type State int

const (
	Idle State = iota
	BranchSwitched
	Loaded
	Mutated
	Summarized
	Committed
	NoOpSkipped
	BranchRestored
)

var stateNames = [...]string{
	Idle:           "idle",
	BranchSwitched: "branch switched",
	Loaded:         "loaded",
	Mutated:        "mutated",
	Summarized:     "summarized",
	Committed:      "committed",
	NoOpSkipped:    "no-op skipped",
	BranchRestored: "branch restored",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Options configure a Workflow.
type Options struct {
	Repo       *vcs.Repo
	Store      *store.Store
	MainBranch string
	Logger     *slog.Logger
}

// Workflow runs mutations against one repository and document.
type Workflow struct {
	repo   *vcs.Repo
	store  *store.Store
	main   string
	logger *slog.Logger
}

func New(opts Options) *Workflow {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	main := opts.MainBranch
	if main == "" {
		main = "main"
	}
	return &Workflow{repo: opts.Repo, store: opts.Store, main: main, logger: logger}
}

// MainBranch is the branch every run returns to.
func (w *Workflow) MainBranch() string { return w.main }

// Request is one mutation to run.
type Request struct {
	// Branch is the branch to mutate. Empty means the current branch.
	Branch   string
	Mutate   edit.Func
	Prompter prompt.Prompter
}

// Outcome describes a finished run.
type Outcome struct {
	Branch    string
	Message   string
	Commit    string
	Committed bool
	Notice    string
	Document  resume.Document
	Trace     []State
}

func (w *Workflow) step(out *Outcome, s State) {
	out.Trace = append(out.Trace, s)
	w.logger.Debug("workflow", "state", s.String(), "branch", out.Branch)
}

// Run executes req. A mutation that yields no change, or a save that does
// not change the committed document, is reported through Outcome.Notice
// and is not an error.
func (w *Workflow) Run(ctx context.Context, req Request) (out Outcome, err error) {
	out.Trace = []State{Idle}
	branch := req.Branch
	if branch == "" {
		if branch, err = w.repo.CurrentBranch(); err != nil {
			return out, &BranchError{Op: "resolve current branch", Err: err}
		}
	}
	out.Branch = branch
	if err := w.repo.Checkout(branch, false); err != nil {
		return out, &BranchError{Op: "checkout", Branch: branch, Err: err}
	}
	w.step(&out, BranchSwitched)
	defer func() {
		if rerr := w.restore(); rerr != nil {
			if err == nil {
				err = rerr
			}
			return
		}
		w.step(&out, BranchRestored)
	}()

	doc, err := w.store.Load()
	if err != nil {
		return out, err
	}
	w.step(&out, Loaded)

	next, change, err := req.Mutate(doc, req.Prompter)
	if err != nil {
		return out, err
	}
	out.Document = next
	w.step(&out, Mutated)

	out.Message = change.Message()
	out.Notice = change.Notice
	w.step(&out, Summarized)
	if out.Message == "" {
		w.step(&out, NoOpSkipped)
		return out, nil
	}

	if err := ctx.Err(); err != nil {
		return out, err
	}
	hash, err := w.persist(next, out.Message)
	if errors.Is(err, vcs.ErrNothingToCommit) {
		out.Notice = NothingToCommit
		w.step(&out, NoOpSkipped)
		return out, nil
	}
	if err != nil {
		return out, err
	}
	out.Commit = hash
	out.Committed = true
	w.step(&out, Committed)
	return out, nil
}

// persist validates, saves, stages and commits doc. Once the file has been
// written, any failure resets the worktree.
func (w *Workflow) persist(doc resume.Document, msg string) (hash string, err error) {
	if err := resume.Validate(doc); err != nil {
		return "", err
	}
	if err := w.store.Save(doc); err != nil {
		return "", w.discard(err)
	}
	if err := w.repo.AddAll(); err != nil {
		return "", w.discard(err)
	}
	hash, err = w.repo.Commit(msg)
	if err != nil {
		return "", w.discard(err)
	}
	return hash, nil
}

func (w *Workflow) discard(cause error) error {
	if err := w.repo.Discard(); err != nil {
		w.logger.Warn("could not discard changes", "error", err)
		return errors.Join(cause, err)
	}
	return cause
}

func (w *Workflow) restore() error {
	if err := w.repo.Checkout(w.main, false); err != nil {
		return &BranchError{Op: "restore", Branch: w.main, Err: err}
	}
	return nil
}

func validBranchName(name string) error {
	if strings.TrimSpace(name) == "" {
		return &resume.ValidationError{Problems: []string{"branch name cannot be empty"}}
	}
	if strings.ContainsAny(name, " \t~^:?*[\\") || strings.Contains(name, "..") {
		return &resume.ValidationError{Problems: []string{fmt.Sprintf("invalid branch name %q", name)}}
	}
	return nil
}

// CreateRoleBranch creates branch name from main and returns to main.
func (w *Workflow) CreateRoleBranch(ctx context.Context, name string) error {
	if err := validBranchName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := w.repo.Checkout(w.main, false); err != nil {
		return &BranchError{Op: "checkout", Branch: w.main, Err: err}
	}
	if err := w.repo.Checkout(name, true); err != nil {
		return &BranchError{Op: "create", Branch: name, Err: err}
	}
	w.logger.Debug("created role branch", "branch", name)
	return w.restore()
}

// Read loads the document as committed on branch, then returns to main.
// An empty branch reads the current working copy without switching.
func (w *Workflow) Read(ctx context.Context, branch string) (resume.Document, error) {
	if branch == "" {
		return w.store.Load()
	}
	if err := ctx.Err(); err != nil {
		return resume.Document{}, err
	}
	if err := w.repo.Checkout(branch, false); err != nil {
		return resume.Document{}, &BranchError{Op: "checkout", Branch: branch, Err: err}
	}
	doc, err := w.store.Load()
	if rerr := w.restore(); rerr != nil && err == nil {
		err = rerr
	}
	return doc, err
}

// Initialize writes the first document and ignore file and commits them on
// the current branch.
func (w *Workflow) Initialize(ctx context.Context, doc resume.Document) (string, error) {
	if w.store.Exists() {
		return "", fmt.Errorf("%s: %w", w.store.Path(), ErrAlreadyInitialized)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := resume.Validate(doc); err != nil {
		return "", err
	}
	if err := w.store.EnsureIgnore(); err != nil {
		return "", err
	}
	if err := w.store.Save(doc); err != nil {
		return "", err
	}
	if err := w.repo.AddAll(); err != nil {
		return "", err
	}
	hash, err := w.repo.Commit(InitialMessage)
	if err != nil {
		return "", err
	}
	w.logger.Debug("initialized resume", "commit", hash)
	return hash, nil
}

// Branches lists the local branches.
func (w *Workflow) Branches() ([]string, error) {
	return w.repo.Branches()
}

// Current returns the checked out branch.
func (w *Workflow) Current() (string, error) {
	return w.repo.CurrentBranch()
}
