package usecase

import (
	"context"
	"time"
)

// InsightCache fronts the insight store with a best-effort JSON cache.
// Implementations must degrade to misses when the cache is unavailable.
type InsightCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// InsightCacheKey names the cached dashboard rendering for an
// industry; the scheduled refresh invalidates it too.
func InsightCacheKey(industry string) string {
	return "insights:industry:" + industry
}
