package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewStatsCmd creates the stats command
func NewStatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show workspace dashboard statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runStats(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	stats, err := mgr.Client().GetStats(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("Documents processed:  %d\n", stats.DocumentsProcessed)
	fmt.Printf("Summaries this month: %d (%d remaining)\n", stats.SummariesThisMonth, stats.SummariesRemaining)
	fmt.Printf("Active team members:  %d\n", stats.ActiveTeamMembers)
	fmt.Printf("Storage used:         %.2f/%.0f GB\n", stats.StorageUsedGB, stats.StorageLimitGB)

	recent, err := mgr.Client().GetRecentDocuments(ctx, 5)
	if err != nil {
		return authError(mgr, err)
	}

	if len(recent) == 0 {
		return nil
	}

	fmt.Println("\nRecent documents:")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSTATUS\tUPLOADED BY\tUPLOADED AT\tSIZE")
	for _, doc := range recent {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			doc.Name, doc.Status, doc.UploadedBy, doc.UploadedAt, humanSize(doc.Size))
	}
	w.Flush()

	return nil
}
