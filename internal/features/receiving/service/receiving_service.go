package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"ctenvios-tracker/internal/core/logger"
	"ctenvios-tracker/internal/features/receiving/domain"
	"ctenvios-tracker/internal/features/receiving/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	// ErrSessionNotFound is returned when the session does not exist or has
	// already been discarded.
	ErrSessionNotFound = errors.New("session not found")
	// ErrInvalidMode is returned when the requested mode is unknown.
	ErrInvalidMode = errors.New("invalid session mode")
	// ErrWrongMode is returned when an operation is not available in the
	// session's mode.
	ErrWrongMode = errors.New("operation not available in this session mode")
	// ErrEmptyTrackingNumber is returned when a scan normalizes to nothing.
	ErrEmptyTrackingNumber = errors.New("tracking number is required")
	// ErrEmptySession is returned when creating a dispatch with no scans.
	ErrEmptySession = errors.New("session has no scans")
)

// SessionView is the session snapshot returned to the UI: the accepted scan
// list, the derived counters and the transient last-scan feedback.
type SessionView struct {
	// ID identifies the session.
	ID string `json:"id"`
	// DispatchID is the dispatch being received, empty in manifest-less mode.
	DispatchID string `json:"dispatch_id,omitempty"`
	// Mode is the session's validation mode.
	Mode domain.Mode `json:"mode"`
	// Scans are the accepted scans in scan order.
	Scans []domain.ScanRecord `json:"scans"`
	// Stats are the derived counters, recomputed for this view.
	Stats domain.Stats `json:"stats"`
	// LastScan is the transient feedback slot, nil before any scan.
	LastScan *domain.Feedback `json:"last_scan,omitempty"`
}

// sessionEntry pairs a session with its own lock. Scans for one session are
// serialized through a single input field, but different sessions must not
// block each other on their upstream calls.
type sessionEntry struct {
	mu      sync.Mutex
	session *domain.Session
}

// ReceivingService owns the active receiving sessions and orchestrates scans
// against the upstream dispatch API.
type ReceivingService struct {
	api ports.DispatchAPI

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

// NewReceivingService creates a new ReceivingService backed by the given API.
func NewReceivingService(api ports.DispatchAPI) *ReceivingService {
	return &ReceivingService{
		api:      api,
		sessions: make(map[string]*sessionEntry),
	}
}

// StartSession opens a receiving session. With-manifest sessions load the
// dispatch's declared parcel lines before the first scan; manifest-less
// sessions start empty.
func (s *ReceivingService) StartSession(ctx context.Context, dispatchID string, mode domain.Mode) (*SessionView, error) {
	var manifest []domain.ManifestLine

	switch mode {
	case domain.ModeWithManifest:
		lines, err := s.api.GetParcels(ctx, dispatchID)
		if err != nil {
			return nil, fmt.Errorf("failed to load dispatch manifest: %w", err)
		}
		manifest = lines
	case domain.ModeWithoutManifest:
		dispatchID = ""
	default:
		return nil, ErrInvalidMode
	}

	session := domain.NewSession(uuid.NewString(), dispatchID, mode, manifest)

	s.mu.Lock()
	s.sessions[session.ID] = &sessionEntry{session: session}
	s.mu.Unlock()

	logger.Get().Info("Receiving session started",
		zap.String("session_id", session.ID),
		zap.String("dispatch_id", dispatchID),
		zap.String("mode", string(mode)),
	)

	return view(session), nil
}

// Scan runs one barcode read through the session: normalize, duplicate check,
// then upstream confirmation (with-manifest) or local append (manifest-less).
// A failed upstream call leaves the session unmutated so the same number can
// be retried without being flagged as a duplicate.
func (s *ReceivingService) Scan(ctx context.Context, sessionID, raw string) (*domain.Feedback, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}

	tn := domain.NormalizeTrackingNumber(raw)
	if tn == "" {
		return nil, ErrEmptyTrackingNumber
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	if fb, dup := session.CheckDuplicate(tn); dup {
		return fb, nil
	}

	if session.Mode == domain.ModeWithManifest {
		if err := s.api.ReceiveParcel(ctx, session.DispatchID, tn); err != nil {
			logger.Get().Warn("Receive call failed",
				zap.String("session_id", session.ID),
				zap.String("tracking_number", tn),
				zap.Error(err),
			)
			return session.Fail(tn, err.Error()), nil
		}

		session.Record(tn)

		// Best-effort refresh of the pending counts; the next successful scan
		// or read picks up whatever this one missed.
		if lines, err := s.api.GetParcels(ctx, session.DispatchID); err == nil {
			session.RefreshManifest(lines)
		} else {
			logger.Get().Warn("Manifest refresh failed",
				zap.String("session_id", session.ID),
				zap.Error(err),
			)
		}

		return session.LastScan(), nil
	}

	session.Record(tn)
	return session.LastScan(), nil
}

// GetSession returns the current view of a session.
func (s *ReceivingService) GetSession(sessionID string) (*SessionView, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	return view(entry.session), nil
}

// Complete finalizes a with-manifest session upstream and discards it. On
// failure the session is kept so the operator can retry.
func (s *ReceivingService) Complete(ctx context.Context, sessionID string) error {
	entry, err := s.entry(sessionID)
	if err != nil {
		return err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	if session.Mode != domain.ModeWithManifest {
		return ErrWrongMode
	}

	if err := s.api.CompleteReceive(ctx, session.DispatchID); err != nil {
		return fmt.Errorf("failed to complete receive: %w", err)
	}

	s.drop(sessionID)
	logger.Get().Info("Receiving session completed",
		zap.String("session_id", sessionID),
		zap.String("dispatch_id", session.DispatchID),
	)
	return nil
}

// CreateDispatch submits a manifest-less session's accumulated tracking
// numbers in one bulk call, surfaces the upstream per-line verdicts and
// discards the session. On failure the session is kept for retry.
func (s *ReceivingService) CreateDispatch(ctx context.Context, sessionID string) (*domain.DispatchResult, error) {
	entry, err := s.entry(sessionID)
	if err != nil {
		return nil, err
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()
	session := entry.session

	if session.Mode != domain.ModeWithoutManifest {
		return nil, ErrWrongMode
	}

	numbers := session.TrackingNumbers()
	if len(numbers) == 0 {
		return nil, ErrEmptySession
	}

	result, err := s.api.CreateDispatch(ctx, numbers)
	if err != nil {
		return nil, fmt.Errorf("failed to create dispatch: %w", err)
	}

	s.drop(sessionID)
	logger.Get().Info("Dispatch created from session",
		zap.String("session_id", sessionID),
		zap.String("dispatch_id", result.DispatchID),
		zap.Int("added", result.Added),
		zap.Int("skipped", result.Skipped),
	)
	return result, nil
}

// Clear discards a session without any upstream call (explicit back/clear).
func (s *ReceivingService) Clear(sessionID string) error {
	if _, err := s.entry(sessionID); err != nil {
		return err
	}
	s.drop(sessionID)
	return nil
}

func (s *ReceivingService) entry(sessionID string) (*sessionEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.sessions[sessionID]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return entry, nil
}

func (s *ReceivingService) drop(sessionID string) {
	s.mu.Lock()
	delete(s.sessions, sessionID)
	s.mu.Unlock()
}

func view(session *domain.Session) *SessionView {
	return &SessionView{
		ID:         session.ID,
		DispatchID: session.DispatchID,
		Mode:       session.Mode,
		Scans:      session.Scans(),
		Stats:      session.Stats(),
		LastScan:   session.LastScan(),
	}
}
