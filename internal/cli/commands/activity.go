package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewActivityCmd creates the activity command
func NewActivityCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show the workspace audit log",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runActivity(cmd.Context(), sessionFromCmd(cmd), limit)
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 50, "Maximum number of entries")

	return cmd
}

func runActivity(ctx context.Context, mgr *session.Manager, limit int) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	entries, err := mgr.Client().ListActivity(ctx, limit)
	if err != nil {
		return authError(mgr, err)
	}

	if len(entries) == 0 {
		fmt.Println("No activity recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TIME\tUSER\tACTION\tTARGET\tDETAILS")
	for _, entry := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			entry.CreatedAt, entry.UserName, entry.ActionType, entry.Target, entry.Details)
	}
	w.Flush()

	return nil
}
