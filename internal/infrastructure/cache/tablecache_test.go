package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/shared/logger"
)

type nopLogger struct{}

func (l *nopLogger) Debug(msg string, args ...any)                   {}
func (l *nopLogger) Info(msg string, args ...any)                    {}
func (l *nopLogger) Warn(msg string, args ...any)                    {}
func (l *nopLogger) Error(msg string, args ...any)                   {}
func (l *nopLogger) Fatal(msg string, args ...any)                   {}
func (l *nopLogger) With(args ...any) logger.Interface               { return l }
func (l *nopLogger) Named(name string) logger.Interface              { return l }
func (l *nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (l *nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (l *nopLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

type countingClient struct {
	listCalls int
	records   []airtable.Record
}

func (c *countingClient) List(ctx context.Context, tableID string, filterFormula string, sorts []airtable.SortField) ([]airtable.Record, error) {
	c.listCalls++
	return c.records, nil
}

func (c *countingClient) Get(ctx context.Context, tableID, recordID string) (*airtable.Record, error) {
	return nil, nil
}

func (c *countingClient) Create(ctx context.Context, tableID string, fields map[string]interface{}) (*airtable.Record, error) {
	return &airtable.Record{ID: "recNew"}, nil
}

func (c *countingClient) Update(ctx context.Context, tableID, recordID string, fields map[string]interface{}) (*airtable.Record, error) {
	return &airtable.Record{ID: recordID}, nil
}

func (c *countingClient) Delete(ctx context.Context, tableID, recordID string) error {
	return nil
}

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	mr, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, func() {
		client.Close()
		mr.Close()
	}
}

func TestCachedClient_ListServesSnapshot(t *testing.T) {
	rdb, cleanup := setupTestRedis(t)
	defer cleanup()

	inner := &countingClient{records: []airtable.Record{{ID: "rec1"}}}
	client := NewCachedClient(inner, rdb, time.Minute, &nopLogger{})

	ctx := context.Background()

	first, err := client.List(ctx, "tblTickets", "", nil)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := client.List(ctx, "tblTickets", "", nil)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "rec1", second[0].ID)

	assert.Equal(t, 1, inner.listCalls, "second read should come from the snapshot")
}

func TestCachedClient_WriteInvalidatesSnapshots(t *testing.T) {
	rdb, cleanup := setupTestRedis(t)
	defer cleanup()

	inner := &countingClient{records: []airtable.Record{{ID: "rec1"}}}
	client := NewCachedClient(inner, rdb, time.Minute, &nopLogger{})

	ctx := context.Background()

	_, err := client.List(ctx, "tblTickets", "", nil)
	require.NoError(t, err)

	_, err = client.Create(ctx, "tblTickets", map[string]interface{}{"title": "Fuite"})
	require.NoError(t, err)

	_, err = client.List(ctx, "tblTickets", "", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.listCalls, "write should orphan the previous snapshot")
}

func TestCachedClient_DistinctQueriesCacheSeparately(t *testing.T) {
	rdb, cleanup := setupTestRedis(t)
	defer cleanup()

	inner := &countingClient{records: []airtable.Record{{ID: "rec1"}}}
	client := NewCachedClient(inner, rdb, time.Minute, &nopLogger{})

	ctx := context.Background()

	_, err := client.List(ctx, "tblTickets", `{email}="a@b.fr"`, nil)
	require.NoError(t, err)
	_, err = client.List(ctx, "tblTickets", `{email}="c@d.fr"`, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, inner.listCalls)
}

func TestCachedClient_RedisOutageFallsThrough(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	mr.Close()
	defer rdb.Close()

	inner := &countingClient{records: []airtable.Record{{ID: "rec1"}}}
	client := NewCachedClient(inner, rdb, time.Minute, &nopLogger{})

	records, listErr := client.List(context.Background(), "tblTickets", "", nil)
	require.NoError(t, listErr)
	require.Len(t, records, 1)
	assert.Equal(t, 1, inner.listCalls)
}
