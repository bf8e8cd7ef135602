package ports

import (
	"context"

	"ctenvios-tracker/internal/features/receiving/domain"
)

// DispatchAPI defines the interface for the upstream dispatch endpoints used
// during receiving. This is a Secondary Port (Driven Port).
type DispatchAPI interface {
	// GetParcels retrieves the declared parcel lines of a dispatch.
	GetParcels(ctx context.Context, dispatchID string) ([]domain.ManifestLine, error)

	// ReceiveParcel marks one parcel of a dispatch as received. The returned
	// error carries the upstream rejection message when the call fails.
	ReceiveParcel(ctx context.Context, dispatchID, trackingNumber string) error

	// CompleteReceive finalizes the receiving of a dispatch.
	CompleteReceive(ctx context.Context, dispatchID string) error

	// CreateDispatch creates a dispatch from accumulated tracking numbers and
	// returns the upstream's per-line verdicts.
	CreateDispatch(ctx context.Context, trackingNumbers []string) (*domain.DispatchResult, error)
}
