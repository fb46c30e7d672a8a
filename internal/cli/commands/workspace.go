package commands

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/api"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewWorkspaceCmd creates the workspace command group
func NewWorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Show and manage workspace settings",
	}

	cmd.AddCommand(newWorkspaceShowCmd())
	cmd.AddCommand(newWorkspaceUpdateCmd())
	cmd.AddCommand(newWorkspaceDeleteCmd())

	return cmd
}

func newWorkspaceShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the current workspace",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspaceShow(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runWorkspaceShow(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	org, err := mgr.Client().GetOrganization(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("Workspace: %s\n", org.Name)
	fmt.Printf("ID:        %s\n", org.ID)
	if org.Domain != "" {
		fmt.Printf("Domain:    %s\n", org.Domain)
	}
	fmt.Printf("Plan:      %s (%s)\n", org.PlanType, org.SubscriptionStatus)
	fmt.Printf("Summaries: %d/%d used this month\n", org.SummariesUsedCurrentMonth, org.SummariesLimit)
	fmt.Println("\nSettings:")
	fmt.Printf("  Auto-generate summaries: %t\n", org.AutoGenerateSummaries)
	fmt.Printf("  Email notifications:     %t\n", org.EmailNotifications)
	fmt.Printf("  Require approval:        %t\n", org.RequireApproval)
	fmt.Printf("  Two-factor auth:         %t\n", org.TwoFactorAuth)
	fmt.Printf("  Document retention:      %d days\n", org.DocumentRetentionDays)
	fmt.Printf("  Allow data export:       %t\n", org.AllowDataExport)

	return nil
}

func newWorkspaceUpdateCmd() *cobra.Command {
	var name, domain string
	var autoSummaries, emailNotifications, requireApproval, twoFactor, allowExport bool
	var retentionDays int

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update workspace settings (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Only flags the user actually set travel in the request;
			// everything else stays untouched server-side.
			req := api.UpdateOrganizationRequest{}
			if cmd.Flags().Changed("name") {
				req.Name = &name
			}
			if cmd.Flags().Changed("domain") {
				req.Domain = &domain
			}
			if cmd.Flags().Changed("auto-summaries") {
				req.AutoGenerateSummaries = &autoSummaries
			}
			if cmd.Flags().Changed("email-notifications") {
				req.EmailNotifications = &emailNotifications
			}
			if cmd.Flags().Changed("require-approval") {
				req.RequireApproval = &requireApproval
			}
			if cmd.Flags().Changed("two-factor") {
				req.TwoFactorAuth = &twoFactor
			}
			if cmd.Flags().Changed("retention-days") {
				req.DocumentRetentionDays = &retentionDays
			}
			if cmd.Flags().Changed("allow-export") {
				req.AllowDataExport = &allowExport
			}

			return runWorkspaceUpdate(cmd.Context(), sessionFromCmd(cmd), req)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Workspace name")
	cmd.Flags().StringVar(&domain, "domain", "", "Workspace domain")
	cmd.Flags().BoolVar(&autoSummaries, "auto-summaries", false, "Auto-generate summaries on upload")
	cmd.Flags().BoolVar(&emailNotifications, "email-notifications", false, "Send email notifications")
	cmd.Flags().BoolVar(&requireApproval, "require-approval", false, "Require approval for uploads")
	cmd.Flags().BoolVar(&twoFactor, "two-factor", false, "Require two-factor authentication")
	cmd.Flags().IntVar(&retentionDays, "retention-days", 0, "Document retention in days")
	cmd.Flags().BoolVar(&allowExport, "allow-export", false, "Allow data export")

	return cmd
}

func runWorkspaceUpdate(ctx context.Context, mgr *session.Manager, req api.UpdateOrganizationRequest) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	if req == (api.UpdateOrganizationRequest{}) {
		return fmt.Errorf("nothing to update; pass at least one setting flag")
	}

	org, err := mgr.Client().UpdateOrganization(ctx, req)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("✓ Workspace %s updated.\n", org.Name)
	return nil
}

func newWorkspaceDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the workspace and all its data (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWorkspaceDelete(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runWorkspaceDelete(ctx context.Context, mgr *session.Manager) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	org, err := mgr.Client().GetOrganization(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("This permanently deletes the workspace %q with all its documents, summaries and members.\n", org.Name)

	prompt := promptui.Prompt{
		Label: fmt.Sprintf("Type the workspace name (%s) to confirm", org.Name),
		Validate: func(input string) error {
			if input != org.Name {
				return fmt.Errorf("name does not match")
			}
			return nil
		},
	}
	if _, err := prompt.Run(); err != nil {
		fmt.Println("Canceled.")
		return nil
	}

	if err := mgr.Client().DeleteOrganization(ctx); err != nil {
		return authError(mgr, err)
	}

	// The workspace is gone, so the session is meaningless now.
	_ = mgr.Logout()

	fmt.Println("✓ Workspace deleted.")
	return nil
}
