package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/summarly-app/summarly/internal/cli/api"
	"github.com/summarly-app/summarly/internal/cli/forms"
	"github.com/summarly-app/summarly/internal/cli/session"
)

// NewTeamCmd creates the team command group
func NewTeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "team",
		Short: "Manage workspace members (admin)",
	}

	cmd.AddCommand(newTeamListCmd())
	cmd.AddCommand(newTeamInviteCmd())
	cmd.AddCommand(newTeamRoleCmd())
	cmd.AddCommand(newTeamRemoveCmd())

	return cmd
}

// requireAdmin is a client-side affordance check; the backend re-enforces
// the admin role on every privileged endpoint.
func requireAdmin(mgr *session.Manager) error {
	if err := mgr.RequireAuthentication(); err != nil {
		return err
	}
	if !mgr.IsAdmin() {
		return fmt.Errorf("this command requires the admin role")
	}
	return nil
}

func newTeamListCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List workspace members",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamList(cmd.Context(), sessionFromCmd(cmd))
		},
	}
}

func runTeamList(ctx context.Context, mgr *session.Manager) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	users, err := mgr.Client().ListUsers(ctx)
	if err != nil {
		return authError(mgr, err)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tEMAIL\tNAME\tROLE\tSTATUS")
	fmt.Fprintln(w, "──\t─────\t────\t────\t──────")

	for _, u := range users {
		status := "active"
		if !u.IsActive {
			status = "disabled"
		} else if !u.IsVerified && u.OAuthProvider == "" {
			status = "invited"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Email, u.FullName, u.Role, status)
	}

	w.Flush()
	return nil
}

func newTeamInviteCmd() *cobra.Command {
	var fullName, role string

	cmd := &cobra.Command{
		Use:   "invite <email>",
		Short: "Invite a new member",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamInvite(cmd.Context(), sessionFromCmd(cmd), args[0], fullName, role)
		},
	}

	cmd.Flags().StringVar(&fullName, "name", "", "Invitee's full name")
	cmd.Flags().StringVar(&role, "role", "", "Role: admin or member (prompts if not provided)")

	return cmd
}

func runTeamInvite(ctx context.Context, mgr *session.Manager, email, fullName, role string) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	if err := forms.ValidateEmail(email); err != nil {
		return err
	}

	if role == "" {
		prompt := promptui.Select{
			Label: "Role for the new member",
			Items: []string{"member", "admin"},
		}
		_, selected, err := prompt.Run()
		if err != nil {
			return fmt.Errorf("invite canceled: %w", err)
		}
		role = selected
	}

	if role != "admin" && role != "member" {
		return fmt.Errorf("invalid role '%s', must be admin or member", role)
	}

	user, err := mgr.Client().InviteUser(ctx, api.InviteUserRequest{
		Email:    email,
		FullName: fullName,
		Role:     role,
	})
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("✓ Invited %s as %s. They will receive an email with the invitation link.\n", user.Email, user.Role)
	return nil
}

func newTeamRoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "role <user-id> <admin|member>",
		Short: "Change a member's role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamRole(cmd.Context(), sessionFromCmd(cmd), args[0], args[1])
		},
	}
}

func runTeamRole(ctx context.Context, mgr *session.Manager, userID, role string) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	if role != "admin" && role != "member" {
		return fmt.Errorf("invalid role '%s', must be admin or member", role)
	}

	user, err := mgr.Client().UpdateUser(ctx, userID, api.UpdateUserRequest{Role: &role})
	if err != nil {
		return authError(mgr, err)
	}

	fmt.Printf("✓ %s is now %s.\n", user.Email, user.Role)
	return nil
}

func newTeamRemoveCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:     "rm <user-id>",
		Aliases: []string{"remove"},
		Short:   "Remove a member from the workspace",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTeamRemove(cmd.Context(), sessionFromCmd(cmd), args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip the confirmation prompt")

	return cmd
}

func runTeamRemove(ctx context.Context, mgr *session.Manager, userID string, force bool) error {
	if err := requireAdmin(mgr); err != nil {
		return err
	}

	if !force {
		prompt := promptui.Prompt{
			Label:     fmt.Sprintf("Remove member %s from the workspace", userID),
			IsConfirm: true,
		}
		if _, err := prompt.Run(); err != nil {
			fmt.Println("Canceled.")
			return nil
		}
	}

	if err := mgr.Client().DeleteUser(ctx, userID); err != nil {
		return authError(mgr, err)
	}

	fmt.Println("✓ Member removed.")
	return nil
}
