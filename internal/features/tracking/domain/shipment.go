package domain

import "time"

// HistoryEvent represents a single entry in a shipment's tracking history.
// Every text field is free-form: the upstream system never committed to a
// closed status enum, so classification works by matching the Spanish labels
// the warehouse operators actually type (see priority.go).
type HistoryEvent struct {
	// Kind is the event category label (upstream "tipo", e.g. "entrada", "despacho").
	Kind string `json:"kind"`
	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`
	// EventName is the event headline (upstream "evento", e.g. "Despachado").
	EventName string `json:"event_name"`
	// Detail is the free-text description; it may embed a warehouse name.
	Detail string `json:"detail"`
	// Actor is the operator who logged the event (upstream "usuario").
	Actor string `json:"actor"`
}

// Shipment is a tracked parcel as declared on a manifest, together with its
// full event history. It is read-only to this package; every derived value is
// recomputed on demand and never stored back.
type Shipment struct {
	// ID is the upstream identifier of the shipment.
	ID string `json:"id"`
	// TrackingCode is the barcode printed on the parcel.
	TrackingCode string `json:"tracking_code"`
	// RecipientName is the destination customer.
	RecipientName string `json:"recipient_name"`
	// DeclaredStatus is the raw status string reported by the upstream system.
	DeclaredStatus string `json:"declared_status"`
	// LastUpdatedAt is the upstream last-modification timestamp.
	LastUpdatedAt time.Time `json:"last_updated_at"`
	// History contains the shipment's events. Order follows the upstream
	// response; no timestamp ordering is guaranteed.
	History []HistoryEvent `json:"history"`
}

// ManifestInfo is the header of a shipping manifest.
type ManifestInfo struct {
	// ID is the manifest identifier.
	ID string `json:"id"`
	// Name is the human-facing manifest label.
	Name string `json:"name"`
	// CreatedAt is when the manifest was opened.
	CreatedAt time.Time `json:"created_at"`
}

// ManifestShipments is the upstream tracking payload for one manifest.
type ManifestShipments struct {
	// Manifest is the manifest header.
	Manifest ManifestInfo `json:"manifest"`
	// Shipments are the manifest's parcels with full history.
	Shipments []Shipment `json:"shipments"`
}
