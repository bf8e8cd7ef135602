package domain

import "strings"

// Outcome classifies a scan against the declared manifest and the session's
// previous scans.
type Outcome string

const (
	// OutcomeMatched means the scan hit a pending manifest line.
	OutcomeMatched Outcome = "matched"
	// OutcomeSurplus means the scan was received but is not on the manifest.
	OutcomeSurplus Outcome = "surplus"
	// OutcomeDuplicate means the number was already scanned or received.
	OutcomeDuplicate Outcome = "duplicate"
	// OutcomeVerified means the scan was accepted locally in manifest-less
	// mode, pending authoritative validation by the bulk dispatch creation.
	OutcomeVerified Outcome = "verified"
)

// Mode selects how a receiving session validates scans.
type Mode string

const (
	// ModeWithManifest reconciles scans against a declared dispatch manifest,
	// confirming each one upstream before it is recorded.
	ModeWithManifest Mode = "with_manifest"
	// ModeWithoutManifest accumulates scans locally and defers validation to
	// the single create-dispatch call at the end of the session.
	ModeWithoutManifest Mode = "without_manifest"
)

// Manifest line statuses used by the upstream parcel listing.
const (
	LineStatusPending  = "pending-in-dispatch"
	LineStatusReceived = "received-in-dispatch"
)

// ManifestLine is a declared parcel on a dispatch manifest.
type ManifestLine struct {
	// TrackingNumber is the declared barcode.
	TrackingNumber string `json:"tracking_number"`
	// Description is an optional human-facing parcel description.
	Description string `json:"description,omitempty"`
	// Status is the upstream line status (pending-in-dispatch, ...).
	Status string `json:"status"`
}

// ScanRecord is one accepted scan in a receiving session.
type ScanRecord struct {
	// TrackingNumber is the normalized barcode.
	TrackingNumber string `json:"tracking_number"`
	// Outcome is the scan classification.
	Outcome Outcome `json:"outcome"`
	// Description is carried over from the matched manifest line, if any.
	Description string `json:"description,omitempty"`
}

// Feedback is the transient last-scan slot shown to the operator. Every scan
// overwrites it; only the accepted scans accumulate in the session list.
type Feedback struct {
	// TrackingNumber is the normalized barcode of the scan.
	TrackingNumber string `json:"tracking_number"`
	// Outcome is the scan classification; empty on upstream failure.
	Outcome Outcome `json:"outcome,omitempty"`
	// Message is the operator-facing feedback text.
	Message string `json:"message"`
	// Description is carried over from the matched manifest line, if any.
	Description string `json:"description,omitempty"`
	// OK is false for duplicates and upstream failures.
	OK bool `json:"ok"`
}

// Stats are the derived counters of a receiving session. They are recomputed
// from current state on every call, never maintained incrementally, so they
// cannot desync from the scan list. matched+missing need not equal declared
// when surplus scans exist; surplus parcels are additions outside the
// manifest and must not be balanced away.
type Stats struct {
	// Declared is the size of the full manifest, regardless of line status.
	Declared int `json:"declared"`
	// Matched counts previously received lines not re-scanned this session
	// plus this session's matched scans.
	Matched int `json:"matched"`
	// Surplus counts this session's surplus scans.
	Surplus int `json:"surplus"`
	// Missing counts pending lines not scanned this session.
	Missing int `json:"missing"`
}

// Operator feedback messages, kept in the upstream system's language.
const (
	msgAlreadyScanned  = "Ya escaneado"
	msgAlreadyReceived = "Ya fue recibido anteriormente"
	msgMatched         = "Recibido"
	msgSurplus         = "No está en el manifiesto"
	msgVerified        = "Verificado"
)

// NormalizeTrackingNumber trims whitespace and uppercases a raw barcode read.
// Every comparison in a session uses the normalized form.
func NormalizeTrackingNumber(raw string) string {
	return strings.ToUpper(strings.TrimSpace(raw))
}

// Session is the state of one receiving run. It lives only for the duration
// of the run and is discarded when the operator finishes, clears it or
// navigates away. All methods are synchronous and in-memory; upstream
// confirmation happens in the service layer before Record is called.
type Session struct {
	// ID identifies the session towards the UI.
	ID string `json:"id"`
	// DispatchID is the dispatch being received, empty in manifest-less mode.
	DispatchID string `json:"dispatch_id,omitempty"`
	// Mode is the session's validation mode.
	Mode Mode `json:"mode"`

	manifest []ManifestLine
	pending  map[string]ManifestLine
	received map[string]bool
	scans    []ScanRecord
	scanned  map[string]bool
	lastScan *Feedback
}

// NewSession creates a session over the given manifest snapshot. The snapshot
// may be nil in manifest-less mode.
func NewSession(id, dispatchID string, mode Mode, manifest []ManifestLine) *Session {
	s := &Session{
		ID:         id,
		DispatchID: dispatchID,
		Mode:       mode,
		scanned:    make(map[string]bool),
	}
	s.RefreshManifest(manifest)
	return s
}

// RefreshManifest replaces the manifest snapshot, rebuilding the pending and
// received indexes. Called after each confirmed receive so the pending counts
// track the upstream state. Scans already recorded are unaffected.
func (s *Session) RefreshManifest(manifest []ManifestLine) {
	s.manifest = manifest
	s.pending = make(map[string]ManifestLine, len(manifest))
	s.received = make(map[string]bool)
	for _, line := range manifest {
		tn := NormalizeTrackingNumber(line.TrackingNumber)
		switch line.Status {
		case LineStatusPending:
			s.pending[tn] = line
		case LineStatusReceived:
			s.received[tn] = true
		}
	}
}

// CheckDuplicate reports whether the normalized number was already scanned
// this session or already received upstream. It updates only the feedback
// slot, never the scan list, and it runs before any network call so a failed
// receive can be retried without being flagged as a duplicate.
func (s *Session) CheckDuplicate(tn string) (*Feedback, bool) {
	if s.scanned[tn] {
		s.lastScan = &Feedback{TrackingNumber: tn, Outcome: OutcomeDuplicate, Message: msgAlreadyScanned}
		return s.lastScan, true
	}
	if s.received[tn] {
		s.lastScan = &Feedback{TrackingNumber: tn, Outcome: OutcomeDuplicate, Message: msgAlreadyReceived}
		return s.lastScan, true
	}
	return nil, false
}

// Record classifies and appends a confirmed scan. With a manifest, a number
// on a pending line comes back matched and anything else surplus; without
// one every scan is verified locally. The caller must have passed
// CheckDuplicate for the same number first.
func (s *Session) Record(tn string) ScanRecord {
	rec := ScanRecord{TrackingNumber: tn, Outcome: OutcomeVerified}
	message := msgVerified

	if s.Mode == ModeWithManifest {
		if line, ok := s.pending[tn]; ok {
			rec.Outcome = OutcomeMatched
			rec.Description = line.Description
			message = msgMatched
		} else {
			rec.Outcome = OutcomeSurplus
			message = msgSurplus
		}
	}

	s.scans = append(s.scans, rec)
	s.scanned[tn] = true
	s.lastScan = &Feedback{
		TrackingNumber: tn,
		Outcome:        rec.Outcome,
		Message:        message,
		Description:    rec.Description,
		OK:             true,
	}
	return rec
}

// Fail records a failed upstream confirmation in the feedback slot. The scan
// list stays untouched so the operator can retry the same number.
func (s *Session) Fail(tn, message string) *Feedback {
	s.lastScan = &Feedback{TrackingNumber: tn, Message: message}
	return s.lastScan
}

// Scans returns a copy of the accepted scans in scan order.
func (s *Session) Scans() []ScanRecord {
	out := make([]ScanRecord, len(s.scans))
	copy(out, s.scans)
	return out
}

// LastScan returns the transient last-scan feedback, nil before any scan.
func (s *Session) LastScan() *Feedback {
	return s.lastScan
}

// TrackingNumbers returns every accepted tracking number in scan order, the
// payload for the bulk create-dispatch call.
func (s *Session) TrackingNumbers() []string {
	out := make([]string, 0, len(s.scans))
	for _, rec := range s.scans {
		out = append(out, rec.TrackingNumber)
	}
	return out
}

// Stats derives the session counters from the current manifest snapshot and
// scan list.
func (s *Session) Stats() Stats {
	st := Stats{Declared: len(s.manifest)}

	for _, line := range s.manifest {
		tn := NormalizeTrackingNumber(line.TrackingNumber)
		if s.scanned[tn] {
			continue
		}
		switch line.Status {
		case LineStatusReceived:
			st.Matched++
		case LineStatusPending:
			st.Missing++
		}
	}

	for _, rec := range s.scans {
		switch rec.Outcome {
		case OutcomeMatched:
			st.Matched++
		case OutcomeSurplus:
			st.Surplus++
		}
	}

	return st
}
