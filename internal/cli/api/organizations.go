package api

import (
	"context"
	"net/http"
)

// Organization is the workspace that owns all documents, summaries, and
// members of the authenticated user.
type Organization struct {
	ID                        string `json:"id"`
	Name                      string `json:"name"`
	Domain                    string `json:"domain"`
	SubscriptionStatus        string `json:"subscription_status"`
	PlanType                  string `json:"plan_type"`
	SummariesLimit            int    `json:"summaries_limit"`
	SummariesUsedCurrentMonth int    `json:"summaries_used_current_month"`
	IsActive                  bool   `json:"is_active"`
	AutoGenerateSummaries     bool   `json:"auto_generate_summaries"`
	EmailNotifications        bool   `json:"email_notifications"`
	RequireApproval           bool   `json:"require_approval"`
	TwoFactorAuth             bool   `json:"two_factor_auth"`
	DocumentRetentionDays     int    `json:"document_retention_days"`
	AllowDataExport           bool   `json:"allow_data_export"`
	CreatedAt                 string `json:"created_at"`
}

// UpdateOrganizationRequest changes workspace settings. Nil fields are
// left untouched by the backend.
type UpdateOrganizationRequest struct {
	Name                  *string `json:"name,omitempty"`
	Domain                *string `json:"domain,omitempty"`
	IsActive              *bool   `json:"is_active,omitempty"`
	AutoGenerateSummaries *bool   `json:"auto_generate_summaries,omitempty"`
	EmailNotifications    *bool   `json:"email_notifications,omitempty"`
	RequireApproval       *bool   `json:"require_approval,omitempty"`
	TwoFactorAuth         *bool   `json:"two_factor_auth,omitempty"`
	DocumentRetentionDays *int    `json:"document_retention_days,omitempty"`
	AllowDataExport       *bool   `json:"allow_data_export,omitempty"`
}

// GetOrganization returns the current user's workspace.
func (c *Client) GetOrganization(ctx context.Context) (*Organization, error) {
	var org Organization
	if err := c.do(ctx, http.MethodGet, "/api/organizations/", nil, nil, "", &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// CreateOrganization creates a new workspace.
func (c *Client) CreateOrganization(ctx context.Context, name string) (*Organization, error) {
	req := struct {
		Name string `json:"name"`
	}{Name: name}

	var org Organization
	if err := c.doJSON(ctx, http.MethodPost, "/api/organizations/", nil, req, &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// UpdateOrganization changes workspace settings (admin only).
func (c *Client) UpdateOrganization(ctx context.Context, req UpdateOrganizationRequest) (*Organization, error) {
	var org Organization
	if err := c.doJSON(ctx, http.MethodPut, "/api/organizations/", nil, req, &org); err != nil {
		return nil, err
	}

	return &org, nil
}

// DeleteOrganization deletes the workspace and everything in it (admin only).
func (c *Client) DeleteOrganization(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/organizations/", nil, nil, "", nil)
}
