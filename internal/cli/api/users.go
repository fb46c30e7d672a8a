package api

import (
	"context"
	"fmt"
	"net/http"
)

// User represents a member of the workspace.
type User struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FullName       string `json:"full_name"`
	Role           string `json:"role"`
	OrganizationID string `json:"organization_id"`
	IsActive       bool   `json:"is_active"`
	IsVerified     bool   `json:"is_verified"`
	OAuthProvider  string `json:"oauth_provider"`
	CreatedAt      string `json:"created_at"`
	LastLogin      string `json:"last_login"`
}

// InviteUserRequest invites a new member into the workspace. The backend
// generates the invitation token and leaves the password unset until the
// invitee accepts.
type InviteUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}

// UpdateUserRequest changes a member's profile. Nil fields are left as-is.
type UpdateUserRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// CurrentUser returns the profile of the authenticated user.
func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var user User
	if err := c.do(ctx, http.MethodGet, "/api/users/me", nil, nil, "", &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// ListUsers returns all members of the workspace (admin only).
func (c *Client) ListUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.do(ctx, http.MethodGet, "/api/users/", nil, nil, "", &users); err != nil {
		return nil, err
	}

	return users, nil
}

// InviteUser creates a pending member account (admin only).
func (c *Client) InviteUser(ctx context.Context, req InviteUserRequest) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPost, "/api/users/", nil, req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// UpdateUser changes a member's role or status (admin only).
func (c *Client) UpdateUser(ctx context.Context, userID string, req UpdateUserRequest) (*User, error) {
	var user User
	if err := c.doJSON(ctx, http.MethodPut, fmt.Sprintf("/api/users/%s", userID), nil, req, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// DeleteUser removes a member from the workspace (admin only).
func (c *Client) DeleteUser(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/users/%s", userID), nil, nil, "", nil)
}
