package commands

import (
	"context"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/summarly-app/summarly/internal/cli/api"
	"github.com/summarly-app/summarly/internal/cli/forms"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewSignupCmd creates the signup command
func NewSignupCmd() *cobra.Command {
	var opts signupOptions

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create a new workspace and admin account",
		Long: `Create a new workspace and admin account.

The first user of a workspace is its admin. New workspaces start on a
14-day free trial; no payment details required.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSignup(cmd.Context(), sessionFromCmd(cmd), opts)
		},
	}

	cmd.Flags().StringVar(&opts.organization, "org", "", "Organization name")
	cmd.Flags().StringVar(&opts.fullName, "name", "", "Your full name")
	cmd.Flags().StringVar(&opts.email, "email", "", "Work email address")
	cmd.Flags().StringVar(&opts.password, "password", "", "Password (min. 8 characters, will prompt if not provided)")

	return cmd
}

type signupOptions struct {
	organization string
	fullName     string
	email        string
	password     string
}

func runSignup(ctx context.Context, mgr *session.Manager, opts signupOptions) error {
	if opts.password == "" {
		if term.IsTerminal(int(syscall.Stdin)) {
			fmt.Print("Password (min. 8 characters): ")
			bytePassword, err := term.ReadPassword(int(syscall.Stdin))
			if err != nil {
				return fmt.Errorf("failed to read password: %w", err)
			}
			opts.password = string(bytePassword)
			fmt.Println()
		} else {
			return fmt.Errorf("password is required in non-interactive mode (use --password flag)")
		}
	}

	form := forms.Signup{
		OrganizationName: opts.organization,
		FullName:         opts.fullName,
		Email:            opts.email,
		Password:         opts.password,
	}
	if err := forms.ValidateSignup(form); err != nil {
		return err
	}

	sess, err := mgr.Signup(ctx, api.SignupRequest{
		OrganizationName: opts.organization,
		FullName:         opts.fullName,
		Email:            opts.email,
		Password:         opts.password,
	})
	if err != nil {
		return fmt.Errorf("signup failed: %w", err)
	}

	fmt.Println("✓ Workspace created!")
	fmt.Printf("  User: %s (%s)\n", sess.FullName, sess.Email)
	fmt.Println("  Role: Admin")
	fmt.Fprintln(os.Stdout, "\nYour 14-day free trial has started. Upload a document with: summarly docs upload <file>")

	return nil
}
