package domain

// DispatchLineResult is the upstream's verdict on one tracking number of a
// bulk dispatch creation.
type DispatchLineResult struct {
	// TrackingNumber is the submitted barcode.
	TrackingNumber string `json:"tracking_number"`
	// Status is the per-line verdict (e.g. "added", "skipped").
	Status string `json:"status"`
	// Reason explains a skip; empty for added lines.
	Reason string `json:"reason,omitempty"`
}

// DispatchResult is the authoritative outcome of a bulk dispatch creation.
// The session's duplicate check is only an optimistic pre-filter; the
// upstream decides per entry, and every skip detail must reach the operator.
type DispatchResult struct {
	// DispatchID is the created dispatch identifier.
	DispatchID string `json:"dispatch"`
	// Added is the number of accepted tracking numbers.
	Added int `json:"added"`
	// Skipped is the number of rejected tracking numbers.
	Skipped int `json:"skipped"`
	// Details lists the per-line verdicts.
	Details []DispatchLineResult `json:"details"`
}
