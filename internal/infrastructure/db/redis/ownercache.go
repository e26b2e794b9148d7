package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/clientportal/project-portal/internal/api/metrics"
)

const ownerTTL = 10 * time.Minute

// OwnerCache caches project ownership lookups in Redis.
// Key format: owner:<project_id>. Entries are written only after a project
// was successfully loaded, so a hit implies the project exists. Ownership
// never transfers and projects are never deleted, so the TTL is purely a
// memory bound.
type OwnerCache struct {
	client *redis.Client
	log    zerolog.Logger
}

// NewOwnerCache creates an OwnerCache wrapping the given Redis client.
func NewOwnerCache(client *redis.Client, log zerolog.Logger) *OwnerCache {
	return &OwnerCache{client: client, log: log}
}

// Get returns the cached owner id. Backend failures are degraded to misses.
func (c *OwnerCache) Get(ctx context.Context, projectID string) (string, bool) {
	owner, err := c.client.Get(ctx, c.key(projectID)).Result()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Str("project_id", projectID).Msg("owner cache read failed")
		}
		metrics.OwnerCacheTotal.WithLabelValues("miss").Inc()
		return "", false
	}
	metrics.OwnerCacheTotal.WithLabelValues("hit").Inc()
	return owner, true
}

// Set records the project's owner. Failures are logged and ignored; the
// cache is an optimization, not a source of truth.
func (c *OwnerCache) Set(ctx context.Context, projectID, ownerID string) {
	if err := c.client.Set(ctx, c.key(projectID), ownerID, ownerTTL).Err(); err != nil {
		c.log.Warn().Err(err).Str("project_id", projectID).Msg("owner cache write failed")
	}
}

func (c *OwnerCache) key(projectID string) string {
	return "owner:" + projectID
}
