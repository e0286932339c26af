package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/edit"
	"github.com/xrsl/rsm/pkg/style"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Start a résumé repository in this directory",
	Long: `Create a git repository (if needed), collect your personal information
and the sections you want to fill, then commit the first version.

Creates:
  resume.yaml    The résumé document
  .gitignore     Keeps everything but the document out of git`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	w := cmd.OutOrStdout()
	p, err := openProject(true)
	if err != nil {
		return err
	}
	if p.store.Exists() {
		style.Info(w, "Already initialized (%s)", p.store.Path())
		return nil
	}

	fmt.Fprintf(w, "%s\n\n", style.C(style.Gray, "Press Enter to accept defaults shown in brackets."))
	doc, err := edit.Initialize(terminal(cmd))
	if err != nil {
		return err
	}
	hash, err := p.wf.Initialize(cmd.Context(), doc)
	if err != nil {
		return err
	}
	style.Ok(w, "Initialized %s on %s %s", p.store.Path(), style.C(style.Cyan, p.wf.MainBranch()), style.C(style.Gray, short(hash)))
	return nil
}
