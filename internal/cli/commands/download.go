package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

func newDocsDownloadCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "download <document-id>",
		Short: "Download the original document file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsDownload(cmd.Context(), sessionFromCmd(cmd), args[0], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output path (defaults to the original filename)")

	return cmd
}

func runDocsDownload(ctx context.Context, mgr *session.Manager, documentID, output string) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	if output == "" {
		doc, err := mgr.Client().GetDocument(ctx, documentID)
		if err != nil {
			return authError(mgr, err)
		}
		output = doc.OriginalFilename
	}

	file, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := mgr.Client().DownloadDocument(ctx, documentID, file); err != nil {
		// Remove the empty/partial file so a failed download leaves nothing behind.
		os.Remove(output)
		return authError(mgr, err)
	}

	fmt.Printf("✓ Saved to %s\n", output)
	return nil
}
