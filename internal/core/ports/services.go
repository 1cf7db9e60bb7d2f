package ports

import (
	"context"

	"github.com/samirrijal/dronegeo/internal/core/domain"
)

// EventPublisher publishes geometry events to a message broker.
type EventPublisher interface {
	PublishRegionCheck(ctx context.Context, event *domain.RegionCheckEvent) error
}

// CacheService provides read-through caching.
type CacheService interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttlSeconds int) error
	Delete(ctx context.Context, key string) error
}
