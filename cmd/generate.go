package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/style"
)

var (
	generateBranch string
	generateOutput string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Render the résumé to LaTeX",
	Long: `Render the document to LaTeX markup.

Without -b the working copy is rendered. With -b the document committed on
that branch is rendered and the main branch is checked out again.

Examples:
  rsm generate
  rsm generate -b backend -o backend.tex`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(false)
		if err != nil {
			return err
		}
		out, err := generate(cmd, p, generateBranch, generateOutput)
		if err != nil {
			return err
		}
		style.Ok(cmd.OutOrStdout(), "Generated %s", out)
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVarP(&generateBranch, "branch", "b", "", "Branch to render (default: working copy)")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Output file (default: output config)")
	rootCmd.AddCommand(generateCmd)
}

// generate renders the document of branch into output, or into the
// configured output file, and returns the path written.
func generate(cmd *cobra.Command, p *project, branch, output string) (string, error) {
	if output == "" {
		output = p.cfg.Output
	}
	doc, err := p.wf.Read(cmd.Context(), branch)
	if err != nil {
		return "", err
	}
	markup, err := latex.Render(doc)
	if err != nil {
		return "", err
	}
	if err := util.WriteFile(p.fs, output, []byte(markup), 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", output, err)
	}
	return output, nil
}
