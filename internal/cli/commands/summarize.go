package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/api"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewSummarizeCmd creates the summarize command
func NewSummarizeCmd() *cobra.Command {
	var summaryType string

	cmd := &cobra.Command{
		Use:   "summarize <document-id>",
		Short: "Generate an AI summary for a document",
		Long: `Generate an AI summary for a document.

Generation is synchronous and counts against your workspace's monthly
summary limit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummarize(cmd.Context(), sessionFromCmd(cmd), args[0], summaryType)
		},
	}

	cmd.Flags().StringVar(&summaryType, "type", "standard", "Summary type: brief, standard or detailed")

	return cmd
}

func runSummarize(ctx context.Context, mgr *session.Manager, documentID, summaryType string) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	switch summaryType {
	case api.SummaryTypeBrief, api.SummaryTypeStandard, api.SummaryTypeDetailed:
	default:
		return fmt.Errorf("invalid summary type '%s', must be brief, standard or detailed", summaryType)
	}

	fmt.Printf("Generating %s summary...\n", summaryType)

	summary, err := mgr.Client().CreateSummary(ctx, documentID, summaryType)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("✓ Summary %s created.\n\n", summary.ID)
	fmt.Println(summary.SummaryText)
	if summary.TokensUsed != nil {
		fmt.Printf("\n(%d tokens used)\n", *summary.TokensUsed)
	}

	return nil
}
