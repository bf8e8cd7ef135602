package service

import (
	"context"
	"errors"
	"testing"

	"ctenvios-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockShipmentProvider is a mock implementation of ShipmentProvider for testing.
type mockShipmentProvider struct {
	returnPayload *domain.ManifestShipments
	returnError   error
}

// GetManifestShipments implements ShipmentProvider.
func (m *mockShipmentProvider) GetManifestShipments(ctx context.Context, manifestID string) (*domain.ManifestShipments, error) {
	if m.returnError != nil {
		return nil, m.returnError
	}
	return m.returnPayload, nil
}

func payloadFixture() *domain.ManifestShipments {
	return &domain.ManifestShipments{
		Manifest: domain.ManifestInfo{ID: "m1", Name: "Manifiesto 2026-08"},
		Shipments: []domain.Shipment{
			{
				ID:             "1",
				TrackingCode:   "CT001",
				DeclaredStatus: "Recibido",
				History: []domain.HistoryEvent{
					{Kind: "entrada", Detail: "Se da entrada en el almacén HAVANA."},
					{Kind: "despacho", EventName: "Despachado"},
				},
			},
			{
				ID:             "2",
				TrackingCode:   "CT002",
				DeclaredStatus: "Recibido",
				History: []domain.HistoryEvent{
					{Kind: "entrada", Detail: "Se da entrada en el almacén MIAMI."},
				},
			},
			{
				ID:             "3",
				TrackingCode:   "CT003",
				DeclaredStatus: "En Agencia",
			},
		},
	}
}

// TestTrackingService_GetManifestView_Resolution verifies rows carry the
// derived status and warehouse plus the facet sets.
func TestTrackingService_GetManifestView_Resolution(t *testing.T) {
	svc := NewTrackingService(&mockShipmentProvider{returnPayload: payloadFixture()})

	view, err := svc.GetManifestView(context.Background(), "m1", "", "")

	require.NoError(t, err)
	require.Len(t, view.Shipments, 3)

	assert.Equal(t, "Despachado", view.Shipments[0].EffectiveStatus)
	assert.Equal(t, "HAVANA", view.Shipments[0].CurrentWarehouse)

	assert.Equal(t, "Recibido", view.Shipments[1].EffectiveStatus)
	assert.Equal(t, "En Almacén", view.Shipments[1].DisplayStatus)
	assert.Equal(t, "MIAMI", view.Shipments[1].CurrentWarehouse)

	// Empty history: declared status passes through, warehouse absent.
	assert.Equal(t, "En Agencia", view.Shipments[2].EffectiveStatus)
	assert.Empty(t, view.Shipments[2].CurrentWarehouse)

	assert.Equal(t, []string{"HAVANA", "MIAMI"}, view.Warehouses)
	assert.Equal(t, []string{"Despachado", "En Agencia", "Recibido"}, view.Statuses)
	assert.Equal(t, domain.FilterAll, view.WarehouseFilter)
}

// TestTrackingService_GetManifestView_WarehouseFilter verifies row filtering
// while facets stay computed from the full set.
func TestTrackingService_GetManifestView_WarehouseFilter(t *testing.T) {
	svc := NewTrackingService(&mockShipmentProvider{returnPayload: payloadFixture()})

	view, err := svc.GetManifestView(context.Background(), "m1", "MIAMI", "")

	require.NoError(t, err)
	require.Len(t, view.Shipments, 1)
	assert.Equal(t, "CT002", view.Shipments[0].TrackingCode)
	assert.Equal(t, "MIAMI", view.WarehouseFilter)
	assert.Equal(t, []string{"HAVANA", "MIAMI"}, view.Warehouses)
}

// TestTrackingService_GetManifestView_StatusFilterUsesRawValue verifies the
// status filter matches the pre-normalization effective status, not the
// display label.
func TestTrackingService_GetManifestView_StatusFilterUsesRawValue(t *testing.T) {
	svc := NewTrackingService(&mockShipmentProvider{returnPayload: payloadFixture()})

	view, err := svc.GetManifestView(context.Background(), "m1", "", "Recibido")
	require.NoError(t, err)
	require.Len(t, view.Shipments, 1)
	assert.Equal(t, "CT002", view.Shipments[0].TrackingCode)

	// The display label is not a filterable value.
	view, err = svc.GetManifestView(context.Background(), "m1", "", "En Almacén")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, view.StatusFilter)
	assert.Len(t, view.Shipments, 3)
}

// TestTrackingService_GetManifestView_StaleFilterReset verifies a selection
// absent from the recomputed facet set resets to the "all" sentinel.
func TestTrackingService_GetManifestView_StaleFilterReset(t *testing.T) {
	svc := NewTrackingService(&mockShipmentProvider{returnPayload: payloadFixture()})

	view, err := svc.GetManifestView(context.Background(), "m1", "SANTIAGO", "")

	require.NoError(t, err)
	assert.Equal(t, domain.FilterAll, view.WarehouseFilter)
	assert.Len(t, view.Shipments, 3)
}

// TestTrackingService_GetManifestView_NotFound verifies the sentinel for a
// missing manifest.
func TestTrackingService_GetManifestView_NotFound(t *testing.T) {
	svc := NewTrackingService(&mockShipmentProvider{})

	view, err := svc.GetManifestView(context.Background(), "missing", "", "")

	assert.Nil(t, view)
	assert.ErrorIs(t, err, ErrManifestNotFound)
}

// TestTrackingService_GetManifestView_ProviderError verifies error wrapping.
func TestTrackingService_GetManifestView_ProviderError(t *testing.T) {
	svc := NewTrackingService(&mockShipmentProvider{returnError: errors.New("upstream down")})

	view, err := svc.GetManifestView(context.Background(), "m1", "", "")

	assert.Nil(t, view)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch manifest tracking")
}
