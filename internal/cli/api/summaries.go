package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// Summary levels supported by the backend.
const (
	SummaryTypeBrief    = "brief"
	SummaryTypeStandard = "standard"
	SummaryTypeDetailed = "detailed"
)

// Summary is an AI-generated summary of a document.
type Summary struct {
	ID             string `json:"id"`
	DocumentID     string `json:"document_id"`
	SummaryText    string `json:"summary_text"`
	SummaryType    string `json:"summary_type"`
	TokensUsed     *int   `json:"tokens_used"`
	OrganizationID string `json:"organization_id"`
	CreatedAt      string `json:"created_at"`
}

// CreateSummary asks the backend to generate a summary for a document.
// Generation is synchronous and counts against the monthly limit; a 403
// means the limit is reached.
func (c *Client) CreateSummary(ctx context.Context, documentID, summaryType string) (*Summary, error) {
	query := url.Values{}
	query.Set("document_id", documentID)
	query.Set("summary_type", summaryType)

	var summary Summary
	if err := c.do(ctx, http.MethodPost, "/api/summaries/", query, nil, "", &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// ListSummaries returns all summaries in the workspace.
func (c *Client) ListSummaries(ctx context.Context) ([]Summary, error) {
	var summaries []Summary
	if err := c.do(ctx, http.MethodGet, "/api/summaries/", nil, nil, "", &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// ListDocumentSummaries returns all summaries for one document.
func (c *Client) ListDocumentSummaries(ctx context.Context, documentID string) ([]Summary, error) {
	var summaries []Summary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/summaries/document/%s", documentID), nil, nil, "", &summaries); err != nil {
		return nil, err
	}

	return summaries, nil
}

// GetSummary returns a single summary.
func (c *Client) GetSummary(ctx context.Context, summaryID string) (*Summary, error) {
	var summary Summary
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/summaries/%s", summaryID), nil, nil, "", &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}

// DeleteSummary removes a summary.
func (c *Client) DeleteSummary(ctx context.Context, summaryID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/summaries/%s", summaryID), nil, nil, "", nil)
}
