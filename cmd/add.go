package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/edit"
)

var addBranch string

var addCmd = &cobra.Command{
	Use:   "add [section]",
	Short: "Add entries to a section",
	Long: `Add one or more entries to a section and commit the change.

Technical skills are merged into existing categories instead of being
inserted at a position.

Examples:
  rsm add education
  rsm add experience -b backend
  rsm add technical_skills`,
	Args:              cobra.MaximumNArgs(1),
	ValidArgsFunction: completeSections(edit.Add),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSectionOp(cmd, args, edit.Add, addBranch)
	},
}

func init() {
	addCmd.Flags().StringVarP(&addBranch, "branch", "b", "", "Branch to edit (default: current branch)")
	rootCmd.AddCommand(addCmd)
}
