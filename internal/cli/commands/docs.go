package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewDocsCmd creates the docs command group
func NewDocsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docs",
		Short: "Manage documents in your workspace",
	}

	cmd.AddCommand(newDocsListCmd())
	cmd.AddCommand(newDocsGetCmd())
	cmd.AddCommand(newDocsDeleteCmd())
	cmd.AddCommand(newDocsUploadCmd())
	cmd.AddCommand(newDocsDownloadCmd())

	return cmd
}

func newDocsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List all documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsList(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runDocsList(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	docs, err := mgr.Client().ListDocuments(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	if len(docs) == 0 {
		fmt.Println("No documents found.")
		fmt.Println("\nUpload a document with: summarly docs upload <file>")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tPAGES\tSTATUS\tUPLOADED")
	fmt.Fprintln(w, "──\t────\t────\t─────\t──────\t────────")

	for _, doc := range docs {
		pages := "-"
		if doc.PageCount != nil {
			pages = fmt.Sprintf("%d", *doc.PageCount)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			doc.ID,
			doc.OriginalFilename,
			humanSize(doc.FileSize),
			pages,
			doc.Status,
			doc.CreatedAt,
		)
	}

	w.Flush()
	return nil
}

func newDocsGetCmd() *cobra.Command {
	var showText bool

	cmd := &cobra.Command{
		Use:   "get <document-id>",
		Short: "Show a document's details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsGet(cmd.Context(), sessionFromCmd(cmd), args[0], showText)
		},
	}

	cmd.Flags().BoolVar(&showText, "text", false, "Print the extracted text")

	return cmd
}

func runDocsGet(ctx context.Context, mgr *session.Manager, documentID string, showText bool) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	doc, err := mgr.Client().GetDocument(ctx, documentID)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("Name:     %s\n", doc.OriginalFilename)
	fmt.Printf("ID:       %s\n", doc.ID)
	fmt.Printf("Type:     %s\n", doc.FileType)
	fmt.Printf("Size:     %s\n", humanSize(doc.FileSize))
	if doc.PageCount != nil {
		fmt.Printf("Pages:    %d\n", *doc.PageCount)
	}
	fmt.Printf("Status:   %s\n", doc.Status)
	fmt.Printf("Uploaded: %s\n", doc.CreatedAt)

	if showText {
		fmt.Printf("\n%s\n", doc.ExtractedText)
	}

	return nil
}

func newDocsDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <document-id>",
		Aliases: []string{"delete"},
		Short:   "Delete a document",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDocsDelete(cmd.Context(), sessionFromCmd(cmd), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runDocsDelete(ctx context.Context, mgr *session.Manager, documentID string, force bool) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	if !force {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Delete document %s and its stored file", documentID),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Canceled.")
			return nil
		}
	}

	if err := mgr.Client().DeleteDocument(ctx, documentID); err != nil {
		return authError(mgr, err)
	}

	fmt.Println("✓ Document deleted.")
	return nil
}
