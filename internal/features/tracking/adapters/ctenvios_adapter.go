package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"ctenvios-tracker/internal/core/config"
	"ctenvios-tracker/internal/core/httpclient"
	"ctenvios-tracker/internal/core/logger"
	"ctenvios-tracker/internal/features/tracking/domain"

	"go.uber.org/zap"
)

// CTEnviosAdapter implements the ShipmentProvider interface using the
// CTEnvíos REST API.
type CTEnviosAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the CTEnvíos connection details.
	config config.CTEnviosConfig
}

// NewCTEnviosAdapter creates a new instance of CTEnviosAdapter.
func NewCTEnviosAdapter(cfg config.CTEnviosConfig) *CTEnviosAdapter {
	return &CTEnviosAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// manifestTrackingResponse represents the JSON structure returned by the
// CTEnvíos tracking endpoint. Field names are the upstream Spanish ones.
type manifestTrackingResponse struct {
	Manifest struct {
		ID            string `json:"id"`
		Nombre        string `json:"nombre"`
		FechaCreacion string `json:"fecha_creacion"`
	} `json:"manifest"`
	Envios []struct {
		ID                  string `json:"id"`
		Envio               string `json:"envio"`
		NombreDestinatario  string `json:"nombre_destinatario"`
		Estado              string `json:"estado"`
		UltimaActualizacion string `json:"ultima_actualizacion"`
		Historial           []struct {
			Tipo    string `json:"tipo"`
			Fecha   string `json:"fecha"`
			Evento  string `json:"evento"`
			Detalle string `json:"detalle"`
			Usuario string `json:"usuario"`
		} `json:"historial"`
	} `json:"envios"`
}

// GetManifestShipments fetches the tracking payload for a manifest and maps it
// to the domain model. Returns (nil, nil) when the manifest does not exist.
func (a *CTEnviosAdapter) GetManifestShipments(ctx context.Context, manifestID string) (*domain.ManifestShipments, error) {
	url := fmt.Sprintf("%s/manifests/%s/tracking", a.config.URL, manifestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("ctenvios API returned status: %d", resp.StatusCode)
	}

	var payload manifestTrackingResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return a.mapToDomain(payload), nil
}

// Layout used by the upstream API for every date field: "2023-12-28 10:50:44".
const dateLayout = "2006-01-02 15:04:05"

// mapToDomain converts the upstream response to the domain structure. Dates
// that fail to parse are left at the zero value; the resolvers never depend
// on timestamps.
func (a *CTEnviosAdapter) mapToDomain(payload manifestTrackingResponse) *domain.ManifestShipments {
	createdAt, _ := time.Parse(dateLayout, payload.Manifest.FechaCreacion)

	result := &domain.ManifestShipments{
		Manifest: domain.ManifestInfo{
			ID:        payload.Manifest.ID,
			Name:      payload.Manifest.Nombre,
			CreatedAt: createdAt,
		},
		Shipments: make([]domain.Shipment, 0, len(payload.Envios)),
	}

	for _, envio := range payload.Envios {
		updatedAt, err := time.Parse(dateLayout, envio.UltimaActualizacion)
		if err != nil && envio.UltimaActualizacion != "" {
			logger.Get().Warn("Unparseable shipment date",
				zap.String("tracking_code", envio.Envio),
				zap.String("value", envio.UltimaActualizacion),
			)
		}

		shipment := domain.Shipment{
			ID:             envio.ID,
			TrackingCode:   envio.Envio,
			RecipientName:  envio.NombreDestinatario,
			DeclaredStatus: envio.Estado,
			LastUpdatedAt:  updatedAt,
			History:        make([]domain.HistoryEvent, 0, len(envio.Historial)),
		}

		for _, item := range envio.Historial {
			ts, _ := time.Parse(dateLayout, item.Fecha)
			shipment.History = append(shipment.History, domain.HistoryEvent{
				Kind:      item.Tipo,
				Timestamp: ts,
				EventName: item.Evento,
				Detail:    item.Detalle,
				Actor:     item.Usuario,
			})
		}

		result.Shipments = append(result.Shipments, shipment)
	}

	return result
}
