package ports

import (
	"context"

	"ctenvios-tracker/internal/features/tracking/domain"
)

// ShipmentProvider defines the interface for fetching a manifest's shipments
// with full tracking history from the upstream system.
// This is a Secondary Port (Driven Port).
type ShipmentProvider interface {
	// GetManifestShipments retrieves the tracking payload for a manifest.
	// Returns (nil, nil) when the manifest does not exist upstream.
	GetManifestShipments(ctx context.Context, manifestID string) (*domain.ManifestShipments, error)
}
