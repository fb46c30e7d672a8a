package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/api"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewSummariesCmd creates the summaries command group
func NewSummariesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summaries",
		Short: "Browse generated summaries",
	}

	cmd.AddCommand(newSummariesListCmd())
	cmd.AddCommand(newSummariesGetCmd())
	cmd.AddCommand(newSummariesDeleteCmd())

	return cmd
}

func newSummariesListCmd() *cobra.Command {
	var documentID string

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List summaries",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummariesList(cmd.Context(), sessionFromCmd(cmd), documentID)
		},
	}

	cmd.Flags().StringVar(&documentID, "document", "", "Only show summaries of this document")

	return cmd
}

func runSummariesList(ctx context.Context, mgr *session.Manager, documentID string) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	var summaries []api.Summary
	var err error
	if documentID != "" {
		summaries, err = mgr.Client().ListDocumentSummaries(ctx, documentID)
	} else {
		summaries, err = mgr.Client().ListSummaries(ctx)
	}
	if err != nil {
		return authError(mgr, err)
	}

	if len(summaries) == 0 {
		fmt.Println("No summaries found.")
		fmt.Println("\nGenerate one with: summarly summarize <document-id>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDOCUMENT\tTYPE\tCREATED")
	fmt.Fprintln(w, "──\t────────\t────\t───────")

	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.ID, s.DocumentID, s.SummaryType, s.CreatedAt)
	}

	w.Flush()
	return nil
}

func newSummariesGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <summary-id>",
		Short: "Print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummariesGet(cmd.Context(), sessionFromCmd(cmd), args[0])
		},
	}
}

func runSummariesGet(ctx context.Context, mgr *session.Manager, summaryID string) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	summary, err := mgr.Client().GetSummary(ctx, summaryID)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("Summary %s (%s) of document %s, created %s\n\n",
		summary.ID, summary.SummaryType, summary.DocumentID, summary.CreatedAt)
	fmt.Println(summary.SummaryText)

	return nil
}

func newSummariesDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <summary-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a summary",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummariesDelete(cmd.Context(), sessionFromCmd(cmd), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runSummariesDelete(ctx context.Context, mgr *session.Manager, summaryID string, force bool) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	if !force {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete summary %s", summaryID),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Canceled.")
			return nil
		}
	}

	if err := mgr.Client().DeleteSummary(ctx, summaryID); err != nil {
		return authError(mgr, err)
	}

	fmt.Println("✓ Summary deleted.")
	return nil
}
