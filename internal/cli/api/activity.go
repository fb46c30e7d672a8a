package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// ActivityEntry is one row of the workspace audit log.
type ActivityEntry struct {
	ID             string `json:"id"`
	UserID         string `json:"user_id"`
	OrganizationID string `json:"organization_id"`
	ActionType     string `json:"action_type"`
	Target         string `json:"target"`
	Details        string `json:"details"`
	CreatedAt      string `json:"created_at"`
	UserName       string `json:"user_name"`
}

// ListActivity returns the most recent audit log entries.
func (c *Client) ListActivity(ctx context.Context, limit int) ([]ActivityEntry, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var entries []ActivityEntry
	if err := c.do(ctx, http.MethodGet, "/api/activity/", query, nil, "", &entries); err != nil {
		return nil, err
	}

	return entries, nil
}
