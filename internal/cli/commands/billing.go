package commands

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewBillingCmd creates the billing command group
func NewBillingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "billing",
		Short: "Subscription and plan management",
	}

	cmd.AddCommand(newBillingStatusCmd())
	cmd.AddCommand(newBillingUpgradeCmd())
	cmd.AddCommand(newBillingCancelCmd())

	return cmd
}

func newBillingStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current subscription",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillingStatus(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runBillingStatus(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	sub, err := mgr.Client().GetSubscription(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("Plan:      %s\n", sub.PlanType)
	fmt.Printf("Status:    %s\n", sub.SubscriptionStatus)
	fmt.Printf("Summaries: %d/%d used this month\n", sub.SummariesUsedCurrentMonth, sub.SummariesLimit)

	return nil
}

func newBillingUpgradeCmd() *cobra.Command {
	var plan string

	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "Upgrade the workspace plan (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillingUpgrade(cmd.Context(), sessionFromCmd(cmd), plan)
		},
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan: basic or pro (prompts if not provided)")

	return cmd
}

func runBillingUpgrade(ctx context.Context, mgr *session.Manager, plan string) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	if plan == "" {
		prompt := promptui.Select{
			Label: "Select a plan",
			Items: []string{"basic", "pro"},
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("upgrade canceled: %w", err)
		}
		plan = selected
	}

	if plan != "basic" && plan != "pro" {
		return fmt.Errorf("invalid plan '%s', must be basic or pro", plan)
	}

	checkout, err := mgr.Client().CreateCheckoutSession(ctx, plan)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Println("Opening checkout in your browser...")
	fmt.Printf("URL: %s\n", checkout.URL)

	if err := openBrowser(checkout.URL); err != nil {
		return fmt.Errorf("failed to open browser: %w\nPlease visit: %s", err, checkout.URL)
	}

	return nil
}

func newBillingCancelCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "cancel",
		Short: "Cancel the subscription (admin)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBillingCancel(cmd.Context(), sessionFromCmd(cmd), force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runBillingCancel(ctx context.Context, mgr *session.Manager, force bool) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	if !force {
		prompt := promptui.Prompt{
			Label:     "Cancel the subscription at the end of the billing period",
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Canceled.")
			return nil
		}
	}

	if err := mgr.Client().CancelSubscription(ctx); err != nil {
		return authError(mgr, err)
	}

	fmt.Println("✓ Subscription canceled.")
	return nil
}
