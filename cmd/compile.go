package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-git/go-billy/v5/util"
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/latex"
	"github.com/xrsl/rsm/pkg/log"
	"github.com/xrsl/rsm/pkg/style"
)

var (
	compileGenerate bool
	compileClean    bool
	compileOpen     bool
	compileBranch   string
)

var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Typeset the résumé to PDF",
	Long: `Generate the LaTeX markup and run the configured compiler on it.

The markup is checked before the compiler starts; structural problems are
listed and nothing is compiled.

Examples:
  rsm compile
  rsm compile --clean --open
  rsm compile -b backend
  rsm compile --generate=false`,
	Args: cobra.NoArgs,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().BoolVar(&compileGenerate, "generate", true, "Render the markup before compiling")
	compileCmd.Flags().BoolVar(&compileClean, "clean", false, "Remove auxiliary files afterwards")
	compileCmd.Flags().BoolVar(&compileOpen, "open", false, "Open the PDF when done")
	compileCmd.Flags().StringVarP(&compileBranch, "branch", "b", "", "Branch to render (default: working copy)")
	rootCmd.AddCommand(compileCmd)
}

func runCompile(cmd *cobra.Command, args []string) error {
	p, err := openProject(false)
	if err != nil {
		return err
	}
	tex := p.cfg.Output
	if compileGenerate {
		if tex, err = generate(cmd, p, compileBranch, ""); err != nil {
			return err
		}
	}

	markup, err := util.ReadFile(p.fs, tex)
	if err != nil {
		return fmt.Errorf("read %s: %w", tex, err)
	}
	if err := latex.Validate(string(markup)); err != nil {
		return err
	}

	compiler := latex.Compiler{Command: p.cfg.Compiler}
	if _, ok := compiler.Available(); !ok {
		return fmt.Errorf("%s not found in PATH (run rsm doctor)", p.cfg.Compiler)
	}
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	pdf, err := compiler.Compile(cmd.Context(), filepath.Join(wd, tex))
	if err != nil {
		return err
	}

	if compileClean {
		removed, err := latex.Clean(filepath.Join(wd, tex))
		if err != nil {
			return err
		}
		log.Debug("cleaned auxiliary files", "files", removed)
	}
	if compileOpen {
		if err := latex.Open(pdf); err != nil {
			return err
		}
	}
	rel, err := filepath.Rel(wd, pdf)
	if err != nil {
		rel = pdf
	}
	style.Ok(cmd.OutOrStdout(), "Compiled %s", rel)
	return nil
}
