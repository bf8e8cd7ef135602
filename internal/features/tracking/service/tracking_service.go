package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"ctenvios-tracker/internal/features/tracking/domain"
	"ctenvios-tracker/internal/features/tracking/ports"
)

// ErrManifestNotFound is returned when the manifest does not exist upstream.
var ErrManifestNotFound = errors.New("manifest not found")

// ResolvedShipment is a shipment row with the derived values the back office
// displays. Derived fields are recomputed on every read, never persisted.
type ResolvedShipment struct {
	// ID is the upstream shipment identifier.
	ID string `json:"id"`
	// TrackingCode is the parcel barcode.
	TrackingCode string `json:"tracking_code"`
	// RecipientName is the destination customer.
	RecipientName string `json:"recipient_name"`
	// DeclaredStatus is the raw upstream status.
	DeclaredStatus string `json:"declared_status"`
	// EffectiveStatus is the inferred status; filtering operates on this value.
	EffectiveStatus string `json:"effective_status"`
	// DisplayStatus is the user-facing label for EffectiveStatus.
	DisplayStatus string `json:"display_status"`
	// CurrentWarehouse is the inferred warehouse, empty when unknown.
	CurrentWarehouse string `json:"current_warehouse,omitempty"`
	// LastUpdatedAt is the upstream last-modification timestamp.
	LastUpdatedAt time.Time `json:"last_updated_at"`
}

// ManifestView is the resolved, filtered view of one manifest's shipments,
// plus the facet sets that drive the filter dropdowns.
type ManifestView struct {
	// Manifest is the manifest header.
	Manifest domain.ManifestInfo `json:"manifest"`
	// Shipments are the resolved rows after filtering.
	Shipments []ResolvedShipment `json:"shipments"`
	// Warehouses is the sorted facet of every warehouse seen in any history.
	Warehouses []string `json:"warehouses"`
	// Statuses is the sorted facet of effective statuses across all rows.
	Statuses []string `json:"statuses"`
	// WarehouseFilter echoes the applied warehouse filter; a selection absent
	// from the recomputed facet comes back as the "all" sentinel.
	WarehouseFilter string `json:"warehouse_filter"`
	// StatusFilter echoes the applied status filter, reset the same way.
	StatusFilter string `json:"status_filter"`
}

// TrackingService resolves shipment statuses and warehouses for display.
type TrackingService struct {
	provider ports.ShipmentProvider
}

// NewTrackingService creates a new TrackingService with the given provider.
func NewTrackingService(provider ports.ShipmentProvider) *TrackingService {
	return &TrackingService{
		provider: provider,
	}
}

// GetManifestView fetches a manifest's shipments, resolves every row and
// applies the requested facet filters. Facets are always computed from the
// full unfiltered set, so a filtered view still offers every valid selection.
func (s *TrackingService) GetManifestView(ctx context.Context, manifestID, warehouseFilter, statusFilter string) (*ManifestView, error) {
	payload, err := s.provider.GetManifestShipments(ctx, manifestID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch manifest tracking: %w", err)
	}
	if payload == nil {
		return nil, ErrManifestNotFound
	}

	rows := make([]ResolvedShipment, 0, len(payload.Shipments))
	statusSet := make(map[string]bool)
	for _, shipment := range payload.Shipments {
		effective := domain.ResolveStatus(shipment)
		statusSet[effective] = true
		rows = append(rows, ResolvedShipment{
			ID:               shipment.ID,
			TrackingCode:     shipment.TrackingCode,
			RecipientName:    shipment.RecipientName,
			DeclaredStatus:   shipment.DeclaredStatus,
			EffectiveStatus:  effective,
			DisplayStatus:    domain.DisplayStatus(effective),
			CurrentWarehouse: domain.ResolveWarehouse(shipment),
			LastUpdatedAt:    shipment.LastUpdatedAt,
		})
	}

	warehouses := domain.AllWarehouses(payload.Shipments)

	statuses := make([]string, 0, len(statusSet))
	for status := range statusSet {
		statuses = append(statuses, status)
	}
	sort.Strings(statuses)

	warehouseFilter = domain.NormalizeFilter(warehouseFilter, warehouses)
	statusFilter = domain.NormalizeFilter(statusFilter, statuses)

	filtered := rows[:0:0]
	for _, row := range rows {
		if warehouseFilter != domain.FilterAll && row.CurrentWarehouse != warehouseFilter {
			continue
		}
		if statusFilter != domain.FilterAll && row.EffectiveStatus != statusFilter {
			continue
		}
		filtered = append(filtered, row)
	}

	return &ManifestView{
		Manifest:        payload.Manifest,
		Shipments:       filtered,
		Warehouses:      warehouses,
		Statuses:        statuses,
		WarehouseFilter: warehouseFilter,
		StatusFilter:    statusFilter,
	}, nil
}
