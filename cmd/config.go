package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/config"
	"github.com/xrsl/rsm/pkg/style"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rsm configuration",
	Long: `Show or change settings stored in .rsm-config.yaml.

Settings in the user config file ($XDG_CONFIG_HOME/rsm/config.yaml) apply
to every project unless .rsm-config.yaml or an RSM_* variable overrides them.

Run without subcommand to list every setting:
  rsm config

Or use subcommands:
  rsm config list
  rsm config get <key>
  rsm config set <key> <value>`,
	Args: cobra.NoArgs,
	RunE: runConfigList,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Long: `Set a configuration value.

Keys:
  document      Résumé document path (resume.yaml)
  ignore_file   Ignore file path (.gitignore)
  output        Generated LaTeX path (resume.tex)
  main_branch   Branch every edit returns to (main)
  compiler      LaTeX compiler executable (pdflatex)
  author_name   Commit author name
  author_email  Commit author email

Examples:
  rsm config set compiler xelatex
  rsm config set author_name "Ada Lovelace"`,
	Args: cobra.ExactArgs(2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) == 0 {
			return config.Keys, cobra.ShellCompDirectiveNoFileComp
		}
		return nil, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return err
		}
		style.Ok(cmd.OutOrStdout(), "Set %s = %s", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:       "get <key>",
	Short:     "Get a config value",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys,
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := config.Get(args[0])
		if err != nil {
			return err
		}
		if value == "" {
			fmt.Fprintln(cmd.OutOrStdout(), "(not set)")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), value)
		}
		return nil
	},
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all config values",
	Args:  cobra.NoArgs,
	RunE:  runConfigList,
}

func runConfigList(cmd *cobra.Command, args []string) error {
	all, err := config.All()
	if err != nil {
		return err
	}
	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "\n%s\n", style.C(style.Bold+style.Cyan, "rsm config"))
	fmt.Fprintf(w, "%s\n", style.C(style.Gray, config.Path()))
	fmt.Fprintf(w, "%s\n\n", style.C(style.Gray, config.UserPath()))
	for _, key := range config.Keys {
		printConfigRow(cmd, key, all[key])
	}
	fmt.Fprintln(w)
	return nil
}

func printConfigRow(cmd *cobra.Command, key, value string) {
	if value == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-13s %s\n", key, style.C(style.Gray, "(not set)"))
		return
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  %-13s %s\n", key, style.C(style.Green, value))
}

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configListCmd)
	rootCmd.AddCommand(configCmd)
}
