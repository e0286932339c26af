package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/edit"
)

var reorderBranch string

var reorderCmd = &cobra.Command{
	Use:   "reorder [section]",
	Short: "Reorder sections or the entries of one section",
	Long: `Without a section, change the order sections render in and optionally
reorder the entries of one of them. With a section, reorder its entries.

Examples:
  rsm reorder
  rsm reorder experience -b backend`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSections(edit.Reorder),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runMutation(cmd, reorderBranch, edit.ReorderSections)
		}
		return runSectionOp(cmd, args, edit.Reorder, reorderBranch)
	},
}

func init() {
	reorderCmd.Flags().StringVarP(&reorderBranch, "branch", "b", "", "Branch to edit (default: current branch)")
	rootCmd.AddCommand(reorderCmd)
}
