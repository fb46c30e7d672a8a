package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// defaultAppURL is the hosted web dashboard.
const defaultAppURL = "https://app.summarly.io"

// NewDashCmd creates the dash command
func NewDashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dash",
		Short: "Open the web dashboard in browser",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDash()
		},
	}
}

func runDash() error {
	dashboardURL := os.Getenv("SUMMARLY_APP_URL")
	if dashboardURL == "" {
		dashboardURL = defaultAppURL
	}

	fmt.Printf("Opening dashboard...\nURL: %s\n", dashboardURL)

	if err := openBrowser(dashboardURL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, dashboardURL)
	}

	return nil
}
