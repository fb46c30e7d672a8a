package api

import (
	"context"
	"net/http"
	"net/url"
)

// Subscription is the billing status of the workspace.
type Subscription struct {
	OrganizationID            string `json:"organization_id"`
	SubscriptionStatus        string `json:"subscription_status"`
	PlanType                  string `json:"plan_type"`
	StripeSubscriptionID      string `json:"stripe_subscription_id"`
	SummariesLimit            int    `json:"summaries_limit"`
	SummariesUsedCurrentMonth int    `json:"summaries_used_current_month"`
}

// CheckoutSession points the user at a hosted checkout page.
type CheckoutSession struct {
	SessionID string `json:"session_id"`
	URL       string `json:"url"`
}

// GetSubscription returns the workspace's subscription status.
func (c *Client) GetSubscription(ctx context.Context) (*Subscription, error) {
	var sub Subscription
	if err := c.do(ctx, http.MethodGet, "/api/billing/subscription", nil, nil, "", &sub); err != nil {
		return nil, err
	}

	return &sub, nil
}

// CreateCheckoutSession starts an upgrade to the given plan ("basic" or
// "pro") and returns the checkout URL to open in a browser (admin only).
func (c *Client) CreateCheckoutSession(ctx context.Context, planType string) (*CheckoutSession, error) {
	query := url.Values{}
	query.Set("plan_type", planType)

	var session CheckoutSession
	if err := c.do(ctx, http.MethodPost, "/api/billing/create-checkout-session", query, nil, "", &session); err != nil {
		return nil, err
	}

	return &session, nil
}

// CancelSubscription cancels the active subscription (admin only).
func (c *Client) CancelSubscription(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/billing/cancel-subscription", nil, nil, "", nil)
}
