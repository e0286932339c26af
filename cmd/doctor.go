package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/config"
	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/resume"
	"github.com/xrsl/rsm/pkg/store"
	"github.com/xrsl/rsm/pkg/style"
	"github.com/xrsl/rsm/pkg/vcs"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the setup rsm depends on",
	Long:  `Verify the LaTeX compiler, the git repository and the résumé document.`,
	Args:  cobra.NoArgs,
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "%s Checking rsm setup\n\n", style.C(style.Blue, "→"))

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	allGood := true

	// Check 1: compiler on PATH
	compiler := latex.Compiler{Command: cfg.Compiler}
	if path, ok := compiler.Available(); ok {
		style.Ok(w, "%s installed (%s)", cfg.Compiler, path)
	} else {
		style.Fail(w, "%s is not installed", cfg.Compiler)
		style.Detail(w, "Install a TeX distribution, e.g. https://tug.org/texlive/")
		allGood = false
	}

	// Check 2: repository
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	fs := osfs.New(wd)
	repo, err := vcs.Open(vcs.Options{FS: fs})
	switch {
	case errors.Is(err, vcs.ErrNotRepository):
		style.Fail(w, "Not a git repository")
		style.Detail(w, "Fix: rsm init")
		allGood = false
	case err != nil:
		style.Fail(w, "Repository: %v", err)
		allGood = false
	default:
		if branch, err := repo.CurrentBranch(); err == nil {
			style.Ok(w, "Git repository on %s", style.C(style.Cyan, branch))
		} else {
			style.Warn(w, "Git repository: %v", err)
		}
	}

	// Check 3: document
	st := store.New(fs, cfg.Document, cfg.IgnoreFile)
	doc, err := st.Load()
	if err == nil {
		err = resume.Validate(doc)
	}
	var verr *resume.ValidationError
	switch {
	case err == nil:
		style.Ok(w, "%s is valid", cfg.Document)
	case errors.As(err, &verr):
		style.Fail(w, "%s is invalid", cfg.Document)
		for _, p := range verr.Problems {
			style.Detail(w, "%s", p)
		}
		allGood = false
	default:
		style.Fail(w, "%v", err)
		allGood = false
	}

	// Check 4: ignore file
	if _, err := fs.Stat(st.IgnorePath()); err != nil {
		style.Warn(w, "%s missing (generated files may be committed)", st.IgnorePath())
	} else {
		style.Ok(w, "%s present", st.IgnorePath())
	}

	fmt.Fprintln(w)
	if !allGood {
		return fmt.Errorf("setup issues detected")
	}
	style.Ok(w, "Setup OK")
	return nil
}
