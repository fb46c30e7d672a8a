package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewWhoamiCmd creates the whoami command
func NewWhoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWhoami(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runWhoami(ctx context.Context, mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}

	user, err := mgr.Client().CurrentUser(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("User:         %s\n", user.Email)
	if user.FullName != "" {
		fmt.Printf("Name:         %s\n", user.FullName)
	}
	fmt.Printf("Role:         %s\n", user.Role)
	fmt.Printf("Workspace:    %s\n", user.OrganizationID)

	// Token expiry is informational only; validity is the backend's call.
	if sess, err := mgr.Current(); err == nil && sess.AccessToken != "" {
		if info, err := session.InspectToken(sess.AccessToken); err == nil && !info.ExpiresAt.IsZero() {
			fmt.Printf("Token expiry: %s\n", info.ExpiresAt.Local().Format(time.RFC1123))
		}
	}

	return nil
}
