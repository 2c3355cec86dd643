package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/recon-server/internal/logging"
	"github.com/carson-networks/recon-server/internal/recon"
)

var ErrSessionNotFound = errors.New("session not found")

// ReconciliationService owns the live reconciliation sessions. Each caller
// works on its own session, addressed by ID.
type ReconciliationService struct {
	source recon.TransactionSource
	poster recon.Poster
	logger logrus.FieldLogger

	mu       sync.RWMutex
	sessions map[uuid.UUID]*recon.Session
}

// NewReconciliationService creates a ReconciliationService.
func NewReconciliationService(source recon.TransactionSource, poster recon.Poster, logger logrus.FieldLogger) *ReconciliationService {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReconciliationService{
		source:   source,
		poster:   poster,
		logger:   logger,
		sessions: make(map[uuid.UUID]*recon.Session),
	}
}

// CreateSession starts an idle session and returns its ID.
func (s *ReconciliationService) CreateSession(ctx context.Context) uuid.UUID {
	id := uuid.Must(uuid.NewV4())
	session := recon.NewSession(s.source, s.poster, s.logger.WithField("sessionID", id.String()))

	s.mu.Lock()
	s.sessions[id] = session
	s.mu.Unlock()

	logging.GetLogData(ctx).AddData("sessionID", id.String())
	return id
}

// DeleteSession drops a session and its unreconciled working data.
func (s *ReconciliationService) DeleteSession(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	logging.GetLogData(ctx).AddData("sessionID", id.String())
	return nil
}

// GetSession returns a snapshot of the session.
func (s *ReconciliationService) GetSession(ctx context.Context, id uuid.UUID) (recon.Snapshot, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return recon.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// Fetch loads open transactions into the session and returns its snapshot.
func (s *ReconciliationService) Fetch(ctx context.Context, id uuid.UUID, filter recon.AccountFilter, dates recon.DateRange) (recon.Snapshot, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return recon.Snapshot{}, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("bankAccount", filter.BankAccount)
	endTimer := logData.AddTiming("fetch")
	err = session.Fetch(ctx, filter, dates)
	endTimer()
	if err != nil {
		return recon.Snapshot{}, err
	}
	return session.Snapshot(), nil
}

// Allocate matches the selected rows and returns the new batch.
func (s *ReconciliationService) Allocate(ctx context.Context, id uuid.UUID, sel recon.Selection) (*recon.AllocationBatch, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}
	return session.AllocateSelected(sel)
}

// Reconcile posts the session's allocated batch.
func (s *ReconciliationService) Reconcile(ctx context.Context, id uuid.UUID) (recon.ReconciliationResult, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return recon.ReconciliationResult{}, err
	}

	endTimer := logging.GetLogData(ctx).AddTiming("reconcile")
	defer endTimer()
	return session.Reconcile(ctx)
}

// Unreconcile reverses the session's reconciled matches for the references.
func (s *ReconciliationService) Unreconcile(ctx context.Context, id uuid.UUID, voucherRefs []string, clearingDate time.Time) ([]recon.Match, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return nil, err
	}

	endTimer := logging.GetLogData(ctx).AddTiming("unreconcile")
	defer endTimer()
	return session.Unreconcile(ctx, voucherRefs, clearingDate)
}

// Balances returns the balance summary of the session's account.
func (s *ReconciliationService) Balances(ctx context.Context, id uuid.UUID) (recon.BalanceSummary, error) {
	session, err := s.session(ctx, id)
	if err != nil {
		return recon.BalanceSummary{}, err
	}
	return session.Balances(ctx)
}

// AllocateOpenItems knocks open debit entries off against open credits.
func (s *ReconciliationService) AllocateOpenItems(ctx context.Context, debits, credits []recon.OpenItem) recon.OpenItemResult {
	res := recon.AllocateOpenItems(debits, credits)
	logging.GetLogData(ctx).AddData("openItemAllocations", len(res.Allocations))
	return res
}

func (s *ReconciliationService) session(ctx context.Context, id uuid.UUID) (*recon.Session, error) {
	s.mu.RLock()
	session, ok := s.sessions[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	logging.GetLogData(ctx).AddData("sessionID", id.String())
	return session, nil
}
