// Package airtable is the adapter for the external tabular record store
// that acts as the system of record. It exposes generic table-scoped
// CRUD plus attachment upload against the separate content host.
package airtable

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"residconnect/internal/shared/logger"
)

const (
	requestTimeout = 15 * time.Second
	// Maximum response body size for record store calls (4MB).
	maxResponseSize = 4 << 20
)

// Record is one row of a table. Fields are keyed by field name in
// responses; writes may address fields by field ID.
type Record struct {
	ID          string                 `json:"id"`
	Fields      map[string]interface{} `json:"fields"`
	CreatedTime time.Time              `json:"createdTime"`
}

// SortField orders a list call on the store side.
type SortField struct {
	Field     string
	Direction string
}

// Client is the generic record store surface the repositories build on.
type Client interface {
	List(ctx context.Context, tableID string, filterFormula string, sorts []SortField) ([]Record, error)
	Get(ctx context.Context, tableID, recordID string) (*Record, error)
	Create(ctx context.Context, tableID string, fields map[string]interface{}) (*Record, error)
	Update(ctx context.Context, tableID, recordID string, fields map[string]interface{}) (*Record, error)
	Delete(ctx context.Context, tableID, recordID string) error
}

// StoreError is a non-2xx reply from the record store.
type StoreError struct {
	StatusCode int
	Type       string
	Message    string
}

func (e *StoreError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("record store error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("record store error %d", e.StatusCode)
}

type listResponse struct {
	Records []Record `json:"records"`
	Offset  string   `json:"offset,omitempty"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

type HTTPClient struct {
	baseURL    string
	contentURL string
	token      string
	httpClient *http.Client
	logger     logger.Interface
}

func NewHTTPClient(baseURL, contentURL, token string, log logger.Interface) *HTTPClient {
	return &HTTPClient{
		baseURL:    baseURL,
		contentURL: contentURL,
		token:      token,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     log,
	}
}

var _ Client = (*HTTPClient)(nil)

// List fetches every matching record, following pagination offsets
// until the store reports no more pages.
func (c *HTTPClient) List(ctx context.Context, tableID string, filterFormula string, sorts []SortField) ([]Record, error) {
	var records []Record
	offset := ""

	for {
		params := url.Values{}
		if filterFormula != "" {
			params.Set("filterByFormula", filterFormula)
		}
		for i, s := range sorts {
			params.Set(fmt.Sprintf("sort[%d][field]", i), s.Field)
			params.Set(fmt.Sprintf("sort[%d][direction]", i), s.Direction)
		}
		if offset != "" {
			params.Set("offset", offset)
		}

		endpoint := fmt.Sprintf("%s/%s", c.baseURL, tableID)
		if encoded := params.Encode(); encoded != "" {
			endpoint += "?" + encoded
		}

		var page listResponse
		if err := c.do(ctx, http.MethodGet, endpoint, nil, &page); err != nil {
			return nil, err
		}

		records = append(records, page.Records...)

		if page.Offset == "" {
			return records, nil
		}
		offset = page.Offset
	}
}

// Get returns (nil, nil) when the record does not exist.
func (c *HTTPClient) Get(ctx context.Context, tableID, recordID string) (*Record, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, tableID, recordID)

	var record Record
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &record); err != nil {
		var storeErr *StoreError
		if errors.As(err, &storeErr) && storeErr.StatusCode == http.StatusNotFound {
			return nil, nil
		}
		return nil, err
	}

	return &record, nil
}

func (c *HTTPClient) Create(ctx context.Context, tableID string, fields map[string]interface{}) (*Record, error) {
	endpoint := fmt.Sprintf("%s/%s", c.baseURL, tableID)
	body := map[string]interface{}{"fields": fields}

	var record Record
	if err := c.do(ctx, http.MethodPost, endpoint, body, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (c *HTTPClient) Update(ctx context.Context, tableID, recordID string, fields map[string]interface{}) (*Record, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, tableID, recordID)
	body := map[string]interface{}{"fields": fields}

	var record Record
	if err := c.do(ctx, http.MethodPatch, endpoint, body, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

func (c *HTTPClient) Delete(ctx context.Context, tableID, recordID string) error {
	endpoint := fmt.Sprintf("%s/%s/%s", c.baseURL, tableID, recordID)
	return c.do(ctx, http.MethodDelete, endpoint, nil, nil)
}

func (c *HTTPClient) do(ctx context.Context, method, endpoint string, body interface{}, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("record store request failed: %w", err)
	}
	defer resp.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Errorf("failed to read record store response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		storeErr := &StoreError{StatusCode: resp.StatusCode}
		var errResp errorResponse
		if jsonErr := json.Unmarshal(payload, &errResp); jsonErr == nil {
			storeErr.Type = errResp.Error.Type
			storeErr.Message = errResp.Error.Message
		}
		c.logger.Warnw("record store call failed",
			"method", method,
			"status", resp.StatusCode,
			"store_error", storeErr.Message,
		)
		return storeErr
	}

	if out != nil {
		if err := json.Unmarshal(payload, out); err != nil {
			return fmt.Errorf("failed to decode record store response: %w", err)
		}
	}

	return nil
}
