package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/edit"
)

var removeBranch string

var removeCmd = &cobra.Command{
	Use:     "remove [section]",
	Aliases: []string{"rm"},
	Short:   "Remove entries from a section",
	Long: `Remove selected entries from a section and commit the change.

Examples:
  rsm remove projects
  rsm rm certifications -b data-engineer`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSections(edit.Remove),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSectionOp(cmd, args, edit.Remove, removeBranch)
	},
}

func init() {
	removeCmd.Flags().StringVarP(&removeBranch, "branch", "b", "", "Branch to edit (default: current branch)")
	rootCmd.AddCommand(removeCmd)
}
