package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Stats is the dashboard overview for the workspace.
type Stats struct {
	DocumentsProcessed int     `json:"documents_processed"`
	SummariesThisMonth int     `json:"summaries_this_month"`
	SummariesRemaining int     `json:"summaries_remaining"`
	ActiveTeamMembers  int     `json:"active_team_members"`
	StorageUsedGB      float64 `json:"storage_used_gb"`
	StorageLimitGB     float64 `json:"storage_limit_gb"`
}

// RecentDocument is a dashboard row; field names follow the backend's
// camelCase for this endpoint.
type RecentDocument struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	UploadedBy string `json:"uploadedBy"`
	UploadedAt string `json:"uploadedAt"`
	Size       int64  `json:"size"`
}

// UsagePoint is one day of summary generation counts.
type UsagePoint struct {
	Date      string `json:"date"`
	Summaries int    `json:"summaries"`
}

// GetStats returns dashboard statistics.
func (c *Client) GetStats(ctx context.Context) (*Stats, error) {
	var stats Stats
	if err := c.do(ctx, http.MethodGet, "/api/analytics/stats", nil, nil, "", &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetRecentDocuments returns the most recently uploaded documents.
func (c *Client) GetRecentDocuments(ctx context.Context, limit int) ([]RecentDocument, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var docs []RecentDocument
	if err := c.do(ctx, http.MethodGet, "/api/analytics/recent-documents", query, nil, "", &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// GetUsageOverTime returns per-day summary counts for the last 30 days.
func (c *Client) GetUsageOverTime(ctx context.Context) ([]UsagePoint, error) {
	var usage []UsagePoint
	if err := c.do(ctx, http.MethodGet, "/api/analytics/usage-overtime", nil, nil, "", &usage); err != nil {
		return nil, err
	}

	return usage, nil
}
