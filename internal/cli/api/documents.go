package api

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
)

// Document represents an uploaded document.
type Document struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"original_filename"`
	FileType         string `json:"file_type"`
	FileSize         int64  `json:"file_size"`
	Status           string `json:"status"`
	PageCount        *int   `json:"page_count"`
	OrganizationID   string `json:"organization_id"`
	UploadedBy       string `json:"uploaded_by"`
	CreatedAt        string `json:"created_at"`
}

// DocumentWithText is a document plus its extracted text.
type DocumentWithText struct {
	Document
	ExtractedText string `json:"extracted_text"`
}

// UploadDocument uploads a file as multipart form data. The backend
// extracts text inline, so the returned document already carries its final
// status ("completed" or "failed").
func (c *Client) UploadDocument(ctx context.Context, filename string, contents io.Reader) (*Document, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("file", filepath.Base(filename))
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, contents); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	var doc Document
	if err := c.do(ctx, http.MethodPost, "/api/documents/upload", nil, pr, writer.FormDataContentType(), &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// ListDocuments returns all documents in the workspace.
func (c *Client) ListDocuments(ctx context.Context) ([]Document, error) {
	var docs []Document
	if err := c.do(ctx, http.MethodGet, "/api/documents/", nil, nil, "", &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// GetDocument returns a document with its extracted text.
func (c *Client) GetDocument(ctx context.Context, documentID string) (*DocumentWithText, error) {
	var doc DocumentWithText
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/documents/%s", documentID), nil, nil, "", &doc); err != nil {
		return nil, err
	}

	return &doc, nil
}

// DeleteDocument removes a document and its stored file.
func (c *Client) DeleteDocument(ctx context.Context, documentID string) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/documents/%s", documentID), nil, nil, "", nil)
}

// DownloadDocument streams the original file contents to w.
func (c *Client) DownloadDocument(ctx context.Context, documentID string, w io.Writer) error {
	return c.download(ctx, fmt.Sprintf("/api/documents/%s/download", documentID), w)
}
