package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// TokenPair is the response of every credential exchange endpoint.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

// SignupRequest creates a new organization with its first admin user.
type SignupRequest struct {
	OrganizationName string `json:"organization_name"`
	FullName         string `json:"full_name"`
	Email            string `json:"email"`
	Password         string `json:"password"`
}

// AcceptInvitationRequest activates an invited member account.
type AcceptInvitationRequest struct {
	InvitationToken string `json:"invitation_token"`
	Password        string `json:"password"`
}

// InvitationStatus is the response of the invitation lookup endpoint.
type InvitationStatus struct {
	HasInvitation   bool   `json:"has_invitation"`
	InvitationToken string `json:"invitation_token"`
	FullName        string `json:"full_name"`
	OrganizationID  string `json:"organization_id"`
}

// Login exchanges credentials for a token pair. The backend speaks the
// OAuth2 password flow, so the email travels in the "username" field of a
// form-encoded body. Single attempt; a 4xx surfaces the backend's message.
func (c *Client) Login(ctx context.Context, email, password string) (*TokenPair, error) {
	form := url.Values{}
	form.Set("username", email)
	form.Set("password", password)

	var tokens TokenPair
	if err := c.doForm(ctx, "/api/auth/login", form, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

// Signup creates an organization plus admin account and returns a token pair.
func (c *Client) Signup(ctx context.Context, req SignupRequest) (*TokenPair, error) {
	var tokens TokenPair
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/signup", nil, req, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

// AcceptInvitation sets the password on an invited account and returns a
// token pair for the now-active member.
func (c *Client) AcceptInvitation(ctx context.Context, invitationToken, password string) (*TokenPair, error) {
	req := AcceptInvitationRequest{
		InvitationToken: invitationToken,
		Password:        password,
	}

	var tokens TokenPair
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/accept-invitation", nil, req, &tokens); err != nil {
		return nil, err
	}

	return &tokens, nil
}

// CheckInvitation reports whether an email has a pending invitation.
func (c *Client) CheckInvitation(ctx context.Context, email string) (*InvitationStatus, error) {
	req := struct {
		Email string `json:"email"`
	}{Email: email}

	var status InvitationStatus
	if err := c.doJSON(ctx, http.MethodPost, "/api/auth/check-invitation", nil, req, &status); err != nil {
		return nil, err
	}

	return &status, nil
}

// ForgotPassword triggers a password reset email.
func (c *Client) ForgotPassword(ctx context.Context, email string) error {
	req := struct {
		Email string `json:"email"`
	}{Email: email}

	return c.doJSON(ctx, http.MethodPost, "/api/auth/forgot-password", nil, req, nil)
}

// OAuthLoginURL returns the browser URL that begins the OAuth flow for the
// given provider ("google" or "microsoft"). The backend redirects back with
// the token pair in the callback query string.
func (c *Client) OAuthLoginURL(provider string) string {
	return fmt.Sprintf("%s/api/auth/%s/login", c.baseURL, provider)
}
