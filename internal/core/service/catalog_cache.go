package service

import (
	"context"
	"time"
)

// Cache keys for catalog list reads.
const (
	cacheKeyCourses     = "catalog:courses"
	cacheKeyInternships = "catalog:internships:active"
	cacheKeyArticles    = "catalog:articles"

	catalogCacheTTL = 5 * time.Minute
)

// CatalogCache abstracts the read-through cache (Redis) in front of the
// catalog collections. Get reports a miss with found=false; errors from the
// cache are never fatal to a request.
type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}
