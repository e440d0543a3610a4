package airtable

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residconnect/internal/shared/logger"
)

type noopLogger struct{}

func (m *noopLogger) Debug(msg string, args ...any)                   {}
func (m *noopLogger) Info(msg string, args ...any)                    {}
func (m *noopLogger) Warn(msg string, args ...any)                    {}
func (m *noopLogger) Error(msg string, args ...any)                   {}
func (m *noopLogger) Fatal(msg string, args ...any)                   {}
func (m *noopLogger) With(args ...any) logger.Interface               { return m }
func (m *noopLogger) Named(name string) logger.Interface              { return m }
func (m *noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *noopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

func TestHTTPClient_ListFollowsPagination(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		switch r.URL.Query().Get("offset") {
		case "":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"records": []map[string]interface{}{
					{"id": "rec1", "fields": map[string]interface{}{"title": "Fuite"}},
				},
				"offset": "page2",
			})
		case "page2":
			json.NewEncoder(w).Encode(map[string]interface{}{
				"records": []map[string]interface{}{
					{"id": "rec2", "fields": map[string]interface{}{"title": "Panne"}},
				},
			})
		default:
			t.Errorf("unexpected offset %q", r.URL.Query().Get("offset"))
		}
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.URL, "test-token", &noopLogger{})

	records, err := client.List(context.Background(), "tblTickets", "", nil)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "rec1", records[0].ID)
	assert.Equal(t, "rec2", records[1].ID)
	assert.Equal(t, 2, calls)
}

func TestHTTPClient_ListEncodesFilterAndSort(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, `LOWER(TRIM({email}))="alice@example.com"`, q.Get("filterByFormula"))
		assert.Equal(t, "created_at", q.Get("sort[0][field]"))
		assert.Equal(t, "desc", q.Get("sort[0][direction]"))
		json.NewEncoder(w).Encode(map[string]interface{}{"records": []map[string]interface{}{}})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.URL, "test-token", &noopLogger{})

	_, err := client.List(context.Background(), "tblTickets",
		`LOWER(TRIM({email}))="alice@example.com"`,
		[]SortField{{Field: "created_at", Direction: "desc"}},
	)
	require.NoError(t, err)
}

func TestHTTPClient_GetMissingRecordReturnsNil(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"type": "NOT_FOUND", "message": "Record not found"},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.URL, "test-token", &noopLogger{})

	record, err := client.Get(context.Background(), "tblTickets", "recMissing")
	require.NoError(t, err)
	assert.Nil(t, record)
}

func TestHTTPClient_CreateSendsFields(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Fuite sous l'évier", body["fields"]["fld51ebPXV9129Tof"])

		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":     "recNew1",
			"fields": map[string]interface{}{"title": "Fuite sous l'évier"},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.URL, "test-token", &noopLogger{})

	record, err := client.Create(context.Background(), "tblTickets", map[string]interface{}{
		"fld51ebPXV9129Tof": "Fuite sous l'évier",
	})
	require.NoError(t, err)
	assert.Equal(t, "recNew1", record.ID)
}

func TestHTTPClient_SurfacesStoreError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{
				"type":    "INVALID_VALUE_FOR_COLUMN",
				"message": "Field validation failed",
			},
		})
	}))
	defer server.Close()

	client := NewHTTPClient(server.URL, server.URL, "test-token", &noopLogger{})

	_, err := client.Update(context.Background(), "tblTickets", "rec1", map[string]interface{}{"bad": true})
	require.Error(t, err)

	storeErr, ok := err.(*StoreError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnprocessableEntity, storeErr.StatusCode)
	assert.Equal(t, "INVALID_VALUE_FOR_COLUMN", storeErr.Type)
	assert.Equal(t, "Field validation failed", storeErr.Message)
}
