package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/config"
	"github.com/xrsl/rsm/pkg/edit"
	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/log"
	"github.com/xrsl/rsm/pkg/prompt"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/store"
	"github.com/xrsl/rsm/pkg/style"
	"github.com/xrsl/rsm/pkg/vcs"
	"github.com/xrsl/rsm/pkg/workflow"
)

// project bundles everything a command needs to touch the résumé in the
// current directory.
type project struct {
	cfg   *config.Config
	fs    billy.Filesystem
	repo  *vcs.Repo
	store *store.Store
	wf    *workflow.Workflow
}

// openProject opens the repository in the working directory. With create,
// a missing repository is initialized on the main branch.
func openProject(create bool) (*project, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	fs := osfs.New(wd)
	opts := vcs.Options{
		FS:     fs,
		Author: vcs.Signature{Name: cfg.AuthorName, Email: cfg.AuthorEmail},
		Logger: log.Logger(),
	}
	var repo *vcs.Repo
	if create {
		repo, err = vcs.OpenOrInit(opts, cfg.MainBranch)
	} else {
		repo, err = vcs.Open(opts)
	}
	if err != nil {
		return nil, err
	}
	st := store.New(fs, cfg.Document, cfg.IgnoreFile)
	return &project{
		cfg:   cfg,
		fs:    fs,
		repo:  repo,
		store: st,
		wf: workflow.New(workflow.Options{
			Repo:       repo,
			Store:      st,
			MainBranch: cfg.MainBranch,
			Logger:     log.Logger(),
		}),
	}, nil
}

// term is shared by every question of one command so buffered input is
// never dropped between prompts.
var term *prompt.Terminal

func terminal(cmd *cobra.Command) prompt.Prompter {
	if term == nil {
		term = prompt.NewTerminal(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
	}
	return term
}

// sectionFor resolves the section argument, asking when it is missing.
// Only sections supporting op are offered or accepted.
func sectionFor(cmd *cobra.Command, args []string, op edit.Op) (resume.Section, error) {
	if len(args) > 0 {
		s, err := resume.ParseSection(args[0])
		if err != nil {
			return 0, err
		}
		if _, err := edit.For(s, op); err != nil {
			return 0, err
		}
		return s, nil
	}
	sections := edit.Supports(op)
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.String()
	}
	i, err := terminal(cmd).Select(fmt.Sprintf("Select section to %s:", op), names)
	if err != nil {
		return 0, err
	}
	return sections[i], nil
}

// completeSections offers section keys for shell completion.
func completeSections(op edit.Op) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		var keys []string
		for _, s := range edit.Supports(op) {
			keys = append(keys, s.Key())
		}
		return keys, cobra.ShellCompDirectiveNoFileComp
	}
}

// runMutation runs one section mutation through the workflow and prints
// its result line.
func runMutation(cmd *cobra.Command, branch string, mutate edit.Func) error {
	p, err := openProject(false)
	if err != nil {
		return err
	}
	out, err := p.wf.Run(cmd.Context(), workflow.Request{
		Branch:   branch,
		Mutate:   mutate,
		Prompter: terminal(cmd),
	})
	if err != nil {
		return err
	}
	reportOutcome(cmd.OutOrStdout(), out)
	return nil
}

func reportOutcome(w io.Writer, out workflow.Outcome) {
	if !out.Committed {
		notice := out.Notice
		if notice == "" {
			notice = workflow.NothingToCommit
		}
		style.Info(w, "%s", notice)
		return
	}
	title, _, _ := strings.Cut(out.Message, "\n")
	style.Ok(w, "%s on %s %s", title, style.C(style.Cyan, out.Branch), style.C(style.Gray, short(out.Commit)))
}

func short(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	return hash
}

// report renders an error as the single failure line of a command.
func report(w io.Writer, err error) {
	var (
		verr  *resume.ValidationError
		berr  *workflow.BranchError
		perr  *latex.PreconditionError
		procE *latex.ProcessError
	)
	switch {
	case errors.Is(err, prompt.ErrAborted):
		style.Fail(w, "Aborted")
	case errors.Is(err, vcs.ErrNotRepository):
		style.Fail(w, "Not a résumé repository. Run %s first", style.C(style.Cyan, "rsm init"))
	case errors.Is(err, store.ErrNotFound):
		style.Fail(w, "%v. Run %s first", err, style.C(style.Cyan, "rsm init"))
	case errors.As(err, &verr):
		style.Fail(w, "Invalid input")
		for _, p := range verr.Problems {
			style.Detail(w, "%s", p)
		}
	case errors.As(err, &berr):
		style.Fail(w, "Branch error: %v", berr)
	case errors.As(err, &perr):
		style.Fail(w, "Document not compiled: %d problem(s)", len(perr.Violations))
		for _, v := range perr.Violations {
			style.Detail(w, "%s", v)
		}
	case errors.As(err, &procE):
		style.Fail(w, "%v", procE)
		fmt.Fprint(w, procE.Output)
	default:
		style.Fail(w, "%v", err)
	}
}

// runSectionOp resolves the section from args and runs op on it.
func runSectionOp(cmd *cobra.Command, args []string, op edit.Op, branch string) error {
	s, err := sectionFor(cmd, args, op)
	if err != nil {
		return err
	}
	mutate, err := edit.For(s, op)
	if err != nil {
		return err
	}
	return runMutation(cmd, branch, mutate)
}
