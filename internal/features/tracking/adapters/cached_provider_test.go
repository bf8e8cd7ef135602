package adapter

import (
	"context"
	"testing"
	"time"

	"ctenvios-tracker/internal/core/cache"
	"ctenvios-tracker/internal/features/tracking/domain"
	"ctenvios-tracker/internal/features/tracking/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingProvider counts calls so cache hits are observable.
type countingProvider struct {
	calls   int
	payload *domain.ManifestShipments
}

func (p *countingProvider) GetManifestShipments(ctx context.Context, manifestID string) (*domain.ManifestShipments, error) {
	p.calls++
	return p.payload, nil
}

func newCacheForTest(t *testing.T) cache.Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })
	return adapter
}

// TestCachedShipmentProvider_SecondReadHitsCache verifies the second fetch is
// served from Redis without touching the inner provider.
func TestCachedShipmentProvider_SecondReadHitsCache(t *testing.T) {
	inner := &countingProvider{payload: &domain.ManifestShipments{
		Manifest:  domain.ManifestInfo{ID: "m1"},
		Shipments: []domain.Shipment{{TrackingCode: "CT001", DeclaredStatus: "Recibido"}},
	}}

	var provider ports.ShipmentProvider = NewCachedShipmentProvider(inner, newCacheForTest(t), time.Minute)

	ctx := context.Background()

	first, err := provider.GetManifestShipments(ctx, "m1")
	require.NoError(t, err)
	require.Equal(t, 1, inner.calls)

	second, err := provider.GetManifestShipments(ctx, "m1")
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)
	assert.Equal(t, first, second)
}

// TestCachedShipmentProvider_DistinctManifests verifies keys do not collide.
func TestCachedShipmentProvider_DistinctManifests(t *testing.T) {
	inner := &countingProvider{payload: &domain.ManifestShipments{}}
	provider := NewCachedShipmentProvider(inner, newCacheForTest(t), time.Minute)

	ctx := context.Background()

	_, err := provider.GetManifestShipments(ctx, "m1")
	require.NoError(t, err)
	_, err = provider.GetManifestShipments(ctx, "m2")
	require.NoError(t, err)

	assert.Equal(t, 2, inner.calls)
}

// TestCachedShipmentProvider_MissingManifestNotCached verifies (nil, nil)
// results pass through without creating a cache entry.
func TestCachedShipmentProvider_MissingManifestNotCached(t *testing.T) {
	inner := &countingProvider{}
	provider := NewCachedShipmentProvider(inner, newCacheForTest(t), time.Minute)

	ctx := context.Background()

	payload, err := provider.GetManifestShipments(ctx, "missing")
	require.NoError(t, err)
	assert.Nil(t, payload)

	_, err = provider.GetManifestShipments(ctx, "missing")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.calls)
}
