package cache

import (
	"context"
	"fmt"
	"time"
)

// Cache TTLs. Discovery projections tolerate short staleness; user records
// are invalidated explicitly on write.
const (
	UserTTL      = 5 * time.Minute
	DiscoveryTTL = 30 * time.Second
)

// Keys for cached discovery projections.
const (
	TopPostsKey     = "discovery:top_posts"
	TopTattooersKey = "discovery:top_tattooers"
)

// UserKey returns the cache key for a user record.
func UserKey(id uint) string {
	return fmt.Sprintf("user:%d", id)
}

// InvalidateUser drops the cached record for a user.
func InvalidateUser(ctx context.Context, id uint) {
	Delete(ctx, UserKey(id))
}

// InvalidateTopPosts drops the cached top-liked posts projection.
func InvalidateTopPosts(ctx context.Context) {
	Delete(ctx, TopPostsKey)
}

// InvalidateTopTattooers drops the cached top-ranked tattooers projection.
func InvalidateTopTattooers(ctx context.Context) {
	Delete(ctx, TopTattooersKey)
}
