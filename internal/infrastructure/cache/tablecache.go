// Package cache wraps the record store client with a short-lived Redis
// snapshot cache for list queries. Every write bumps a per-table
// version counter, so stale snapshots become unreachable instead of
// being deleted one by one.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"residconnect/internal/infrastructure/airtable"
	"residconnect/internal/shared/logger"
)

type CachedClient struct {
	inner  airtable.Client
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewCachedClient(inner airtable.Client, rdb *redis.Client, ttl time.Duration, log logger.Interface) *CachedClient {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachedClient{
		inner:  inner,
		redis:  rdb,
		ttl:    ttl,
		logger: log,
	}
}

var _ airtable.Client = (*CachedClient)(nil)

func versionKey(tableID string) string {
	return "records:version:" + tableID
}

// snapshotKey embeds the table version so that bumping the version on a
// write orphans every cached snapshot for that table at once.
func (c *CachedClient) snapshotKey(ctx context.Context, tableID, filterFormula string, sorts []airtable.SortField) (string, error) {
	version, err := c.redis.Get(ctx, versionKey(tableID)).Result()
	if err == redis.Nil {
		version = "0"
	} else if err != nil {
		return "", err
	}

	h := sha256.New()
	h.Write([]byte(filterFormula))
	for _, s := range sorts {
		h.Write([]byte{0})
		h.Write([]byte(s.Field))
		h.Write([]byte{0})
		h.Write([]byte(s.Direction))
	}

	return fmt.Sprintf("records:snapshot:%s:%s:%s", tableID, version, hex.EncodeToString(h.Sum(nil))), nil
}

func (c *CachedClient) invalidate(ctx context.Context, tableID string) {
	if err := c.redis.Incr(ctx, versionKey(tableID)).Err(); err != nil {
		c.logger.Warnw("failed to bump table cache version", "table", tableID, "error", err)
	}
}

// List serves from the snapshot cache when possible. Cache failures are
// soft: the call falls through to the record store.
func (c *CachedClient) List(ctx context.Context, tableID string, filterFormula string, sorts []airtable.SortField) ([]airtable.Record, error) {
	key, err := c.snapshotKey(ctx, tableID, filterFormula, sorts)
	if err != nil {
		c.logger.Warnw("table cache unavailable, querying store directly", "table", tableID, "error", err)
		return c.inner.List(ctx, tableID, filterFormula, sorts)
	}

	if cached, err := c.redis.Get(ctx, key).Bytes(); err == nil {
		var records []airtable.Record
		if err := json.Unmarshal(cached, &records); err == nil {
			return records, nil
		}
		c.logger.Warnw("discarding corrupt table snapshot", "table", tableID, "key", key)
	}

	records, err := c.inner.List(ctx, tableID, filterFormula, sorts)
	if err != nil {
		return nil, err
	}

	if encoded, err := json.Marshal(records); err == nil {
		if err := c.redis.Set(ctx, key, encoded, c.ttl).Err(); err != nil {
			c.logger.Warnw("failed to store table snapshot", "table", tableID, "error", err)
		}
	}

	return records, nil
}

func (c *CachedClient) Get(ctx context.Context, tableID, recordID string) (*airtable.Record, error) {
	return c.inner.Get(ctx, tableID, recordID)
}

func (c *CachedClient) Create(ctx context.Context, tableID string, fields map[string]interface{}) (*airtable.Record, error) {
	record, err := c.inner.Create(ctx, tableID, fields)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, tableID)
	return record, nil
}

func (c *CachedClient) Update(ctx context.Context, tableID, recordID string, fields map[string]interface{}) (*airtable.Record, error) {
	record, err := c.inner.Update(ctx, tableID, recordID, fields)
	if err != nil {
		return nil, err
	}
	c.invalidate(ctx, tableID)
	return record, nil
}

func (c *CachedClient) Delete(ctx context.Context, tableID, recordID string) error {
	if err := c.inner.Delete(ctx, tableID, recordID); err != nil {
		return err
	}
	c.invalidate(ctx, tableID)
	return nil
}
