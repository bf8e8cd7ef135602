package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"ctenvios-tracker/internal/core/config"
	"ctenvios-tracker/internal/core/httpclient"
	"ctenvios-tracker/internal/features/receiving/domain"
)

// CTEnviosDispatchAdapter implements the DispatchAPI interface using the
// CTEnvíos REST API.
type CTEnviosDispatchAdapter struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// config holds the CTEnvíos connection details.
	config config.CTEnviosConfig
}

// NewCTEnviosDispatchAdapter creates a new instance of CTEnviosDispatchAdapter.
func NewCTEnviosDispatchAdapter(cfg config.CTEnviosConfig) *CTEnviosDispatchAdapter {
	return &CTEnviosDispatchAdapter{
		client: httpclient.NewClient(10 * time.Second),
		config: cfg,
	}
}

// parcelsResponse represents the dispatch parcel listing returned by the API.
type parcelsResponse struct {
	Paquetes []struct {
		TrackingNumber string `json:"tracking_number"`
		Descripcion    string `json:"descripcion"`
		Status         string `json:"status"`
	} `json:"paquetes"`
}

// GetParcels retrieves the declared parcel lines of a dispatch.
func (a *CTEnviosDispatchAdapter) GetParcels(ctx context.Context, dispatchID string) ([]domain.ManifestLine, error) {
	url := fmt.Sprintf("%s/despachos/%s/paquetes", a.config.URL, dispatchID)

	body, err := a.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var payload parcelsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode parcels response: %w", err)
	}

	lines := make([]domain.ManifestLine, 0, len(payload.Paquetes))
	for _, p := range payload.Paquetes {
		lines = append(lines, domain.ManifestLine{
			TrackingNumber: p.TrackingNumber,
			Description:    p.Descripcion,
			Status:         p.Status,
		})
	}
	return lines, nil
}

// ReceiveParcel marks one parcel of a dispatch as received.
func (a *CTEnviosDispatchAdapter) ReceiveParcel(ctx context.Context, dispatchID, trackingNumber string) error {
	url := fmt.Sprintf("%s/despachos/%s/recibir", a.config.URL, dispatchID)

	payload := map[string]string{"tracking_number": trackingNumber}
	_, err := a.do(ctx, http.MethodPost, url, payload)
	return err
}

// CompleteReceive finalizes the receiving of a dispatch.
func (a *CTEnviosDispatchAdapter) CompleteReceive(ctx context.Context, dispatchID string) error {
	url := fmt.Sprintf("%s/despachos/%s/finalizar", a.config.URL, dispatchID)

	_, err := a.do(ctx, http.MethodPost, url, nil)
	return err
}

// CreateDispatch creates a dispatch from the accumulated tracking numbers.
func (a *CTEnviosDispatchAdapter) CreateDispatch(ctx context.Context, trackingNumbers []string) (*domain.DispatchResult, error) {
	url := fmt.Sprintf("%s/despachos", a.config.URL)

	payload := map[string][]string{"tracking_numbers": trackingNumbers}
	body, err := a.do(ctx, http.MethodPost, url, payload)
	if err != nil {
		return nil, err
	}

	var result domain.DispatchResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode dispatch response: %w", err)
	}
	return &result, nil
}

// errorResponse is the upstream error body shape.
type errorResponse struct {
	Message string `json:"message"`
}

// do executes one authenticated request and returns the response body. On a
// non-2xx status it surfaces the upstream "message" field when present, since
// that text is shown to the scanning operator verbatim.
func (a *CTEnviosDispatchAdapter) do(ctx context.Context, method, url string, payload interface{}) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+a.config.APIKey)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody errorResponse
		if json.Unmarshal(body, &errBody) == nil && errBody.Message != "" {
			return nil, fmt.Errorf("%s", errBody.Message)
		}
		return nil, fmt.Errorf("ctenvios API returned status: %d", resp.StatusCode)
	}

	return body, nil
}
