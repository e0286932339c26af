package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/edit"
)

var updateBranch string

var updateCmd = &cobra.Command{
	Use:   "update [section]",
	Short: "Edit entries of a section",
	Long: `Edit selected entries field by field and commit the change.

Press Enter to keep the value shown in brackets. Personal information can
only be updated.

Examples:
  rsm update personal_info
  rsm update experience -b backend`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSections(edit.Update),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSectionOp(cmd, args, edit.Update, updateBranch)
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateBranch, "branch", "b", "", "Branch to edit (default: current branch)")
	rootCmd.AddCommand(updateCmd)
}
