package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/forms"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewForgotPasswordCmd creates the forgot-password command
func NewForgotPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Send a password reset email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runForgotPassword(cmd.Context(), sessionFromCmd(cmd), args[0])
		},
	}
}

func runForgotPassword(ctx context.Context, mgr *session.Manager, email string) error {
	if err := forms.ValidateEmail(email); err != nil {
		return err
	}

	if err := mgr.Client().ForgotPassword(ctx, email); err != nil {
		return err
	}

	fmt.Printf("If an account exists for %s, a reset email is on its way.\n", email)
	return nil
}
