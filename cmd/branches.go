package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/style"
)

var branchesCmd = &cobra.Command{
	Use:   "branches",
	Short: "List role branches",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(false)
		if err != nil {
			return err
		}
		names, err := p.wf.Branches()
		if err != nil {
			return err
		}
		current, err := p.wf.Current()
		if err != nil {
			return err
		}
		w := cmd.OutOrStdout()
		for _, name := range names {
			if name == current {
				fmt.Fprintf(w, "%s %s\n", style.C(style.Green, "*"), style.C(style.Cyan, name))
				continue
			}
			fmt.Fprintf(w, "  %s\n", name)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(branchesCmd)
}
