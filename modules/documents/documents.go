// Package documents is the endpoint client for task attachments. Uploads
// go out as multipart form data; downloads come back as opaque byte
// streams the client never interprets.
package documents

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/Adnan7389/Compliance-Tracker-client/pkg/apiclient"
)

// downloadLimit caps a single attachment transfer at 64MB.
const downloadLimit = 64 << 20

// Document describes an attachment stored against a task.
type Document struct {
	ID       string `json:"id"`
	TaskID   string `json:"task_id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
}

// documentsEnvelope is the response body wrapping attachment listings.
type documentsEnvelope struct {
	Documents []Document `json:"documents"`
}

// Client calls the document endpoints through the shared transport.
type Client struct {
	api *apiclient.Client
}

// NewClient creates a document endpoint client.
func NewClient(api *apiclient.Client) *Client {
	return &Client{api: api}
}

// ListForTask fetches the attachments of a task.
func (c *Client) ListForTask(ctx context.Context, taskID string) ([]Document, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/tasks/%s/documents", taskID),
	})
	if err != nil {
		return nil, err
	}

	var envelope documentsEnvelope
	if err := resp.Decode(&envelope); err != nil {
		return nil, err
	}
	return envelope.Documents, nil
}

// Upload attaches a file to a task. The content is streamed into a
// multipart body under the "file" field; bytes are transmitted as-is.
func (c *Client) Upload(ctx context.Context, taskID, filename string, content io.Reader) (Document, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return Document{}, fmt.Errorf("documents: build multipart body: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return Document{}, fmt.Errorf("documents: read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return Document{}, fmt.Errorf("documents: finalize multipart body: %w", err)
	}

	resp, err := c.api.Do(ctx, apiclient.Request{
		Method:      http.MethodPost,
		Path:        fmt.Sprintf("/tasks/%s/documents", taskID),
		RawBody:     &buf,
		ContentType: writer.FormDataContentType(),
	})
	if err != nil {
		return Document{}, err
	}

	var doc Document
	if err := resp.Decode(&doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

// Download fetches an attachment's raw bytes. The caller must close the
// returned reader.
func (c *Client) Download(ctx context.Context, documentID string) (io.ReadCloser, error) {
	resp, err := c.api.Do(ctx, apiclient.Request{
		Method:           http.MethodGet,
		Path:             fmt.Sprintf("/documents/%s", documentID),
		MaxResponseBytes: downloadLimit,
	})
	if err != nil {
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(resp.Body)), nil
}

// Delete removes an attachment.
func (c *Client) Delete(ctx context.Context, documentID string) error {
	_, err := c.api.Do(ctx, apiclient.Request{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/documents/%s", documentID),
	})
	return err
}
