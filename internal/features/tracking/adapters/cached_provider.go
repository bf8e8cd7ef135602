package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ctenvios-tracker/internal/core/cache"
	"ctenvios-tracker/internal/core/logger"
	"ctenvios-tracker/internal/features/tracking/domain"
	"ctenvios-tracker/internal/features/tracking/ports"

	"go.uber.org/zap"
)

// CachedShipmentProvider wraps a ShipmentProvider with a read-through cache.
// Only the raw upstream payload is cached; effective statuses and warehouses
// are always recomputed from it on read, so a cache hit never serves stale
// derivations of its own data.
type CachedShipmentProvider struct {
	inner ports.ShipmentProvider
	cache cache.Cache
	ttl   time.Duration
}

// NewCachedShipmentProvider creates a caching decorator around inner.
func NewCachedShipmentProvider(inner ports.ShipmentProvider, c cache.Cache, ttl time.Duration) *CachedShipmentProvider {
	return &CachedShipmentProvider{
		inner: inner,
		cache: c,
		ttl:   ttl,
	}
}

func cacheKey(manifestID string) string {
	return "manifest_tracking:" + manifestID
}

// GetManifestShipments serves the manifest payload from the cache when
// present, falling back to the inner provider. Cache failures are logged and
// degrade to a direct fetch; they never fail the request.
func (p *CachedShipmentProvider) GetManifestShipments(ctx context.Context, manifestID string) (*domain.ManifestShipments, error) {
	key := cacheKey(manifestID)

	data, err := p.cache.Get(ctx, key)
	if err == nil {
		var cached domain.ManifestShipments
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
		logger.Get().Warn("Discarding unreadable cache entry", zap.String("key", key))
	} else if !errors.Is(err, cache.ErrCacheMiss) {
		logger.Get().Warn("Cache read failed", zap.String("key", key), zap.Error(err))
	}

	result, err := p.inner.GetManifestShipments(ctx, manifestID)
	if err != nil || result == nil {
		return result, err
	}

	data, err = json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest payload: %w", err)
	}
	if err := p.cache.Set(ctx, key, data, p.ttl); err != nil {
		logger.Get().Warn("Cache write failed", zap.String("key", key), zap.Error(err))
	}

	return result, nil
}
