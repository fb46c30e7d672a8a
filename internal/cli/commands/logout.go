package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewLogoutCmd creates the logout command
func NewLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout(sessionFromCmd(cmd))
		},
	}
}

// runLogout clears both tokens and the cached profile. No server round
// trip; token invalidation, if any, is the backend's concern.
func runLogout(mgr *session.Manager) error {
	if err := mgr.Logout(); err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}

	fmt.Println("✓ Logged out.")
	return nil
}
