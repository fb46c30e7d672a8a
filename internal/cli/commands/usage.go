package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewUsageCmd creates the usage command
func NewUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage",
		Short: "Show summary generation over the last 30 days",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUsage(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

const usageBarWidth = 40

func runUsage(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	usage, err := mgr.Client().GetUsageOverTime(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	max := 0
	for _, point := range usage {
		if point.Summaries > max {
			max = point.Summaries
		}
	}

	if max == 0 {
		fmt.Println("No summaries generated in the last 30 days.")
		return nil
	}

	for _, point := range usage {
		width := point.Summaries * usageBarWidth / max
		fmt.Printf("%-8s %s %d\n", point.Date, strings.Repeat("█", width), point.Summaries)
	}

	return nil
}
