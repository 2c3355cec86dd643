package recon

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Posting is what the ledger collaborator needs to link one bank transaction
// to one ledger document. ReversalID is set on unreconciliation and names
// the Unreconciled match that voids MatchID.
type Posting struct {
	MatchID           uuid.UUID
	ReversalID        uuid.UUID
	BankTransactionID string
	LedgerID          string
	MatchedAmount     decimal.Decimal
	ReferenceID       string
	ReferenceDocType  string
}

// Poster commits and reverses postings against the ledger.
//
//go:generate mockery --name Poster --inpackage --with-expecter
type Poster interface {
	PostReconciliation(ctx context.Context, posting Posting) error
	PostUnreconciliation(ctx context.Context, posting Posting, clearingDate time.Time) error
}

// WorkingSet is the pair of record tables an allocation is validated against.
type WorkingSet struct {
	Statement []TransactionRecord
	Ledger    []TransactionRecord
}

func (w WorkingSet) ids() (map[string]struct{}, map[string]struct{}) {
	stmt := make(map[string]struct{}, len(w.Statement))
	for _, r := range w.Statement {
		stmt[r.ID] = struct{}{}
	}
	ledger := make(map[string]struct{}, len(w.Ledger))
	for _, r := range w.Ledger {
		ledger[r.ID] = struct{}{}
	}
	return stmt, ledger
}

// ReconciliationResult is returned by a successful Reconcile.
type ReconciliationResult struct {
	BatchID    uuid.UUID
	Reconciled []Match
	Total      decimal.Decimal
}

// AllocationLedger turns candidates into matches, posts them and keeps the
// audit trail of everything it reconciled or reversed.
type AllocationLedger struct {
	poster  Poster
	now     func() time.Time
	history []Match
}

func NewAllocationLedger(poster Poster) *AllocationLedger {
	return &AllocationLedger{
		poster: poster,
		now:    time.Now,
	}
}

// Allocate validates candidates against the working set and returns a batch
// of Allocated matches.
func (l *AllocationLedger) Allocate(candidates []MatchCandidate, working WorkingSet) (*AllocationBatch, error) {
	stmtIDs, ledgerIDs := working.ids()

	batch := &AllocationBatch{
		ID:        uuid.Must(uuid.NewV4()),
		Matches:   make([]Match, 0, len(candidates)),
		CreatedAt: l.now(),
	}
	for i, c := range candidates {
		if !c.MatchedAmount.IsPositive() {
			return nil, fmt.Errorf("%w: candidate %d has matched amount %s", ErrInvalidAllocation, i, c.MatchedAmount)
		}
		if _, ok := stmtIDs[c.StatementID]; !ok {
			return nil, fmt.Errorf("%w: unknown statement transaction %q", ErrInvalidAllocation, c.StatementID)
		}
		if _, ok := ledgerIDs[c.LedgerID]; !ok {
			return nil, fmt.Errorf("%w: unknown ledger transaction %q", ErrInvalidAllocation, c.LedgerID)
		}
		batch.Matches = append(batch.Matches, Match{
			ID:               uuid.Must(uuid.NewV4()),
			StatementID:      c.StatementID,
			LedgerID:         c.LedgerID,
			Reference:        c.Reference,
			ReferenceDocType: c.ReferenceDocType,
			MatchedAmount:    c.MatchedAmount,
			Status:           StatusAllocated,
			OverMatch:        c.OverMatch,
		})
	}
	return batch, nil
}

// Reconcile posts every match in the batch in order. The first rejected
// posting fails the whole batch and leaves every match Allocated.
//
// Postings accepted before the failure are NOT reversed. The caller sees how
// many went through in PostingError.Posted and has to reconcile that by hand
// or unreconcile the references.
func (l *AllocationLedger) Reconcile(ctx context.Context, batch *AllocationBatch) (ReconciliationResult, error) {
	if batch == nil || len(batch.Matches) == 0 {
		return ReconciliationResult{}, ErrNoCandidates
	}

	for i, m := range batch.Matches {
		if err := l.poster.PostReconciliation(ctx, postingFor(m)); err != nil {
			return ReconciliationResult{}, &PostingError{
				MatchID:     m.ID.String(),
				StatementID: m.StatementID,
				LedgerID:    m.LedgerID,
				Posted:      i,
				Err:         err,
			}
		}
	}

	reconciled := make([]Match, len(batch.Matches))
	for i, m := range batch.Matches {
		m.Status = StatusReconciled
		reconciled[i] = m
		batch.Matches[i].Status = StatusReconciled
	}
	l.history = append(l.history, reconciled...)

	return ReconciliationResult{
		BatchID:    batch.ID,
		Reconciled: reconciled,
		Total:      batch.Total(),
	}, nil
}

// Unreconcile reverses every reconciled match whose reference is listed and
// records a complementary Unreconciled match for each one. Targets come from
// this ledger's history and from persisted, reconciled matches written by
// earlier runs.
func (l *AllocationLedger) Unreconcile(ctx context.Context, voucherRefs []string, clearingDate time.Time, persisted []Match) ([]Match, error) {
	targets := l.unreconcileTargets(voucherRefs, persisted)
	if len(targets) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrNothingToUnreconcile, voucherRefs)
	}

	reversals := make([]Match, 0, len(targets))
	for _, m := range targets {
		reversalID := uuid.Must(uuid.NewV4())
		posting := postingFor(m)
		posting.ReversalID = reversalID
		if err := l.poster.PostUnreconciliation(ctx, posting, clearingDate); err != nil {
			l.history = append(l.history, reversals...)
			return reversals, &PostingError{
				MatchID:     m.ID.String(),
				StatementID: m.StatementID,
				LedgerID:    m.LedgerID,
				Posted:      len(reversals),
				Err:         err,
			}
		}
		original := m.ID
		cleared := clearingDate
		reversals = append(reversals, Match{
			ID:               reversalID,
			StatementID:      m.StatementID,
			LedgerID:         m.LedgerID,
			Reference:        m.Reference,
			ReferenceDocType: m.ReferenceDocType,
			MatchedAmount:    m.MatchedAmount,
			Status:           StatusUnreconciled,
			ClearingDate:     &cleared,
			ReversalOf:       &original,
		})
	}
	l.history = append(l.history, reversals...)
	return reversals, nil
}

// unreconcileTargets returns the reconciled matches carrying one of the
// references that no reversal in the history voids yet. A match known both
// from history and from persisted rows is returned once.
func (l *AllocationLedger) unreconcileTargets(voucherRefs []string, persisted []Match) []Match {
	refs := make(map[string]struct{}, len(voucherRefs))
	for _, r := range voucherRefs {
		refs[r] = struct{}{}
	}

	skip := make(map[uuid.UUID]struct{})
	for _, m := range l.history {
		if m.ReversalOf != nil {
			skip[*m.ReversalOf] = struct{}{}
		}
	}

	var targets []Match
	for _, candidates := range [][]Match{l.history, persisted} {
		for _, m := range candidates {
			if m.Status != StatusReconciled {
				continue
			}
			if _, ok := refs[m.Reference]; !ok {
				continue
			}
			if _, ok := skip[m.ID]; ok {
				continue
			}
			skip[m.ID] = struct{}{}
			targets = append(targets, m)
		}
	}
	return targets
}

// History returns a copy of the audit trail in the order it was written.
func (l *AllocationLedger) History() []Match {
	out := make([]Match, len(l.history))
	copy(out, l.history)
	return out
}

func postingFor(m Match) Posting {
	return Posting{
		MatchID:           m.ID,
		BankTransactionID: m.StatementID,
		LedgerID:          m.LedgerID,
		MatchedAmount:     m.MatchedAmount,
		ReferenceID:       m.Reference,
		ReferenceDocType:  m.ReferenceDocType,
	}
}
