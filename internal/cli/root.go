package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/commands"
	"github.com/summarly-app/summarly/internal/logger"
)

var version = "dev" // Will be set during build

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "summarly",
	Short: "Summarly - AI document summaries for your team",
	Long: `Summarly CLI - Upload documents and get AI-generated summaries.

Summarly turns contracts, reports and research papers into brief, standard
or detailed summaries, shared across your workspace.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// A local .env can hold SUMMARLY_API_URL / SUMMARLY_EMAIL for dev.
		_ = godotenv.Load()

		level := "warn"
		if verbose {
			level = "debug"
		}
		logger.Init(level, "console")
	},
}

func init() {
	rootCmd.PersistentFlags().String("api-url", "", "API base URL (or set SUMMARLY_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	// Add version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("summarly version %s\n", version)
		},
	})

	// Add all subcommands
	rootCmd.AddCommand(commands.NewLoginCmd())
	rootCmd.AddCommand(commands.NewLogoutCmd())
	rootCmd.AddCommand(commands.NewSignupCmd())
	rootCmd.AddCommand(commands.NewWhoamiCmd())
	rootCmd.AddCommand(commands.NewAcceptInvitationCmd())
	rootCmd.AddCommand(commands.NewForgotPasswordCmd())
	rootCmd.AddCommand(commands.NewDocsCmd())
	rootCmd.AddCommand(commands.NewSummarizeCmd())
	rootCmd.AddCommand(commands.NewSummariesCmd())
	rootCmd.AddCommand(commands.NewTeamCmd())
	rootCmd.AddCommand(commands.NewWorkspaceCmd())
	rootCmd.AddCommand(commands.NewBillingCmd())
	rootCmd.AddCommand(commands.NewStatsCmd())
	rootCmd.AddCommand(commands.NewUsageCmd())
	rootCmd.AddCommand(commands.NewActivityCmd())
	rootCmd.AddCommand(commands.NewDashCmd())
	rootCmd.AddCommand(commands.NewConfigCmd())
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
