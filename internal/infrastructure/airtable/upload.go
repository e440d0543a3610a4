package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
)

// Attachment is the content host's description of an uploaded file. The
// ID is what ticket records reference.
type Attachment struct {
	ID       string `json:"id"`
	Filename string `json:"filename"`
	Size     int64  `json:"size"`
	URL      string `json:"url"`
}

// Uploader pushes binary attachments to the store's content host.
type Uploader interface {
	UploadAttachment(ctx context.Context, filename, contentType string, data []byte) (*Attachment, error)
}

var _ Uploader = (*HTTPClient)(nil)

// UploadAttachment posts the file as multipart form data to the content
// host and returns the attachment reference.
func (c *HTTPClient) UploadAttachment(ctx context.Context, filename, contentType string, data []byte) (*Attachment, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write upload form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize upload form: %w", err)
	}

	endpoint := c.contentURL + "/uploads"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("attachment upload failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		storeErr := &StoreError{StatusCode: resp.StatusCode}
		var errResp errorResponse
		if jsonErr := json.Unmarshal(payload, &errResp); jsonErr == nil {
			storeErr.Type = errResp.Error.Type
			storeErr.Message = errResp.Error.Message
		}
		return nil, storeErr
	}

	var attachment Attachment
	if err := json.Unmarshal(payload, &attachment); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}

	return &attachment, nil
}

// UploadImage is the primitive-typed variant used by the application
// layer, which only needs the attachment ID and URL.
func (c *HTTPClient) UploadImage(ctx context.Context, filename, contentType string, data []byte) (string, string, error) {
	attachment, err := c.UploadAttachment(ctx, filename, contentType, data)
	if err != nil {
		return "", "", err
	}
	return attachment.ID, attachment.URL, nil
}
