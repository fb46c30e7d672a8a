package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

func newDocsUploadCmd() *cobra.Command {
	var summarize bool
	var summaryType string

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsUpload(cmd.Context(), sessionFromCmd(cmd), args[0], summarize, summaryType)
		},
	}

	cmd.Flags().BoolVar(&summarize, "summarize", false, "Generate a summary right after the upload")
	cmd.Flags().StringVar(&summaryType, "type", "standard", "Summary type when --summarize is set: brief, standard or detailed")

	return cmd
}

func runDocsUpload(ctx context.Context, mgr *session.Manager, path string, summarize bool, summaryType string) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	fmt.Printf("Uploading %s...\n", path)

	doc, err := mgr.Client().UploadDocument(ctx, path, file)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Println("✓ Upload complete!")
	fmt.Printf("  ID:     %s\n", doc.ID)
	fmt.Printf("  Name:   %s\n", doc.OriginalFilename)
	fmt.Printf("  Size:   %s\n", humanSize(doc.FileSize))
	fmt.Printf("  Status: %s\n", doc.Status)

	if doc.Status == "failed" {
		return fmt.Errorf("text extraction failed; the document cannot be summarized")
	}

	if summarize {
		return runSummarize(ctx, mgr, doc.ID, summaryType)
	}

	fmt.Printf("\nGenerate a summary with: summarly summarize %s\n", doc.ID)
	return nil
}
