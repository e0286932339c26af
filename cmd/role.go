package cmd

import (
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/style"
)

var roleCmd = &cobra.Command{
	Use:   "role <name>",
	Short: "Create a branch for a target role",
	Long: `Create a role branch from the main branch. Edit it with -b on add,
remove, update and reorder.

Examples:
  rsm role backend
  rsm add experience -b backend`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := openProject(false)
		if err != nil {
			return err
		}
		if err := p.wf.CreateRoleBranch(cmd.Context(), args[0]); err != nil {
			return err
		}
		style.Ok(cmd.OutOrStdout(), "Created role branch %s", style.C(style.Cyan, args[0]))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(roleCmd)
}
