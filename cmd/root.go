package cmd

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/xrsl/rsm/pkg/log"
	"github.com/xrsl/rsm/pkg/signal"
	"github.com/xrsl/rsm/pkg/style"
)

var (
	quiet   bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "rsm",
	Short: "Version your résumé, one branch per role",
	Long: `rsm keeps a résumé as structured YAML in a git repository.

Every edit is a commit with a generated summary, and each target role gets
its own branch. The document renders to LaTeX for typesetting.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return log.Configure(verbose, quiet)
	},
}

func Execute() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, stop := signal.WithInterrupt(context.Background())
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		report(os.Stderr, err)
		stop()
		os.Exit(1)
	}
	stop()
}

func init() {
	style.SetupHelp(rootCmd)

	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug details")
}
