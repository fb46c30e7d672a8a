package commands

import (
	"context"
	"fmt"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/summarly-app/summarly/internal/cli/forms"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewAcceptInvitationCmd creates the accept-invitation command
func NewAcceptInvitationCmd() *cobra.Command {
	var token, password, email string

	cmd := &cobra.Command{
		Use:   "accept-invitation",
		Short: "Activate an invited account by setting a password",
		Long: `Activate an invited account by setting a password.

The invitation token is in the invite email. If you only know the email
address, pass --email to look the token up first.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAcceptInvitation(cmd.Context(), sessionFromCmd(cmd), token, password, email)
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Invitation token from the invite email")
	cmd.Flags().StringVar(&password, "password", "", "New password (min. 8 characters, will prompt if not provided)")
	cmd.Flags().StringVar(&email, "email", "", "Look up a pending invitation by email")

	return cmd
}

func runAcceptInvitation(ctx context.Context, mgr *session.Manager, token, password, email string) error {
	if token == "" && email != "" {
		if err := forms.ValidateEmail(email); err != nil {
			return err
		}

		status, err := mgr.Client().CheckInvitation(ctx, email)
		if err != nil {
			return err
		}
		if !status.HasInvitation {
			return fmt.Errorf("no pending invitation for %s", email)
		}
		token = status.InvitationToken
		fmt.Printf("Found pending invitation for %s\n", email)
	}

	if password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("New password (min. 8 characters): ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag)")
		}
	}

	if err := forms.ValidateAcceptInvitation(token, password); err != nil {
		return err
	}

	sess, err := mgr.AcceptInvitation(ctx, token, password)
	if err != nil {
		return fmt.Errorf("failed to accept invitation: %w", err)
	}

	fmt.Println("✓ Invitation accepted, you are logged in!")
	fmt.Printf("  User: %s (%s)\n", sess.FullName, sess.Email)

	return nil
}
