package recon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// TransactionSource loads unreconciled transactions, balances and the
// reconciled matches that are still in effect.
//
//go:generate mockery --name TransactionSource --inpackage --with-expecter
type TransactionSource interface {
	FetchStatementTransactions(ctx context.Context, filter AccountFilter, dates DateRange) ([]TransactionRecord, error)
	FetchLedgerTransactions(ctx context.Context, filter AccountFilter, dates DateRange) ([]TransactionRecord, error)
	AccountOpeningBalance(ctx context.Context, account AccountFilter, asOf time.Time) (decimal.Decimal, error)
	// ReconciledMatches returns the account's reconciled matches for the
	// references that have not been reversed.
	ReconciledMatches(ctx context.Context, account AccountFilter, references []string) ([]Match, error)
}

// State is a step of the reconciliation workflow.
type State int8

const (
	StateIdle State = iota
	StateFetching
	StateMatched
	StateAllocated
	// StateReconciled is never observed from outside: a successful Reconcile
	// clears the working tables and the session reports StateIdle.
	StateReconciled
	StateUnreconciling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateMatched:
		return "matched"
	case StateAllocated:
		return "allocated"
	case StateReconciled:
		return "reconciled"
	case StateUnreconciling:
		return "unreconciling"
	default:
		return "unknown"
	}
}

// Selection restricts an allocation to a subset of loaded rows. An empty
// side means every row on that side.
type Selection struct {
	StatementIDs []string
	LedgerIDs    []string
}

// Snapshot is a copy of a session's working data.
type Snapshot struct {
	State      State
	Filter     AccountFilter
	Dates      DateRange
	Statement  []TransactionRecord
	Ledger     []TransactionRecord
	Candidates []MatchCandidate
	Batch      *AllocationBatch
	History    []Match
}

// Session drives one reconciliation run. It owns the working record tables
// and the match table until they are reconciled.
type Session struct {
	source TransactionSource
	ledger *AllocationLedger
	logger logrus.FieldLogger

	mu         sync.Mutex
	generation uint64
	state      State
	filter     AccountFilter
	dates      DateRange
	fetched    bool
	statement  []TransactionRecord
	ledgerRows []TransactionRecord
	result     *MatchResult
	batch      *AllocationBatch
}

func NewSession(source TransactionSource, poster Poster, logger logrus.FieldLogger) *Session {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Session{
		source: source,
		ledger: NewAllocationLedger(poster),
		logger: logger,
		state:  StateIdle,
	}
}

// State returns the current workflow state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Fetch loads statement and ledger records for the filter. A record whose ID
// is already loaded replaces the loaded copy, so repeating a fetch adds
// nothing and picks up amounts changed in the store. When a newer Fetch
// starts before this one returns, this result is discarded.
func (s *Session) Fetch(ctx context.Context, filter AccountFilter, dates DateRange) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	stmts, err := s.source.FetchStatementTransactions(ctx, filter, dates)
	if err != nil {
		return fmt.Errorf("fetch statement transactions: %w", err)
	}
	ledgers, err := s.source.FetchLedgerTransactions(ctx, filter, dates)
	if err != nil {
		return fmt.Errorf("fetch ledger transactions: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return ErrSuperseded
	}

	if s.fetched && s.filter != filter {
		s.statement = nil
		s.ledgerRows = nil
	}
	s.filter = filter
	s.dates = dates
	s.fetched = true

	var addedStmts, addedLedger int
	s.statement, addedStmts = mergeFetched(s.statement, stmts, SourceStatement)
	s.ledgerRows, addedLedger = mergeFetched(s.ledgerRows, ledgers, SourceLedger)

	s.result = nil
	s.batch = nil
	s.state = StateFetching

	s.logger.WithFields(logrus.Fields{
		"bankAccount":     filter.BankAccount,
		"statementAdded":  addedStmts,
		"ledgerAdded":     addedLedger,
		"statementLoaded": len(s.statement),
		"ledgerLoaded":    len(s.ledgerRows),
		"fetchGeneration": gen,
	}).Debug("Session.Fetch.Complete")
	return nil
}

// mergeFetched adds records whose ID is not yet present and replaces the
// ones that are. Zero-amount records are ignored. It returns how many records
// were added.
func mergeFetched(existing, incoming []TransactionRecord, source Source) ([]TransactionRecord, int) {
	index := make(map[string]int, len(existing)+len(incoming))
	for i, r := range existing {
		index[r.ID] = i
	}
	added := 0
	for _, r := range incoming {
		if r.Amount.Value.IsZero() {
			continue
		}
		r.Source = source
		if r.Remaining.IsZero() || r.Remaining.GreaterThan(r.Amount.Value) {
			r.Remaining = r.Amount.Value
		}
		if i, ok := index[r.ID]; ok {
			existing[i] = r
			continue
		}
		index[r.ID] = len(existing)
		existing = append(existing, r)
		added++
	}
	return existing, added
}

// Allocate matches all loaded records and allocates the candidates.
func (s *Session) Allocate() (*AllocationBatch, error) {
	return s.AllocateSelected(Selection{})
}

// AllocateSelected matches the selected rows and allocates the candidates.
// It always starts from the fetched records, so it can be repeated.
func (s *Session) AllocateSelected(sel Selection) (*AllocationBatch, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateFetching, StateMatched, StateAllocated:
	default:
		return nil, fmt.Errorf("%w: cannot allocate in state %s", ErrInvalidState, s.state)
	}

	working := WorkingSet{
		Statement: pick(s.statement, sel.StatementIDs),
		Ledger:    pick(s.ledgerRows, sel.LedgerIDs),
	}
	result := MatchRecords(working.Statement, working.Ledger)
	s.result = &result
	s.batch = nil
	s.state = StateMatched

	if len(result.Candidates) == 0 {
		return nil, ErrNoCandidates
	}

	batch, err := s.ledger.Allocate(result.Candidates, working)
	if err != nil {
		return nil, err
	}
	s.batch = batch
	s.state = StateAllocated

	s.logger.WithFields(logrus.Fields{
		"batchID":     batch.ID.String(),
		"matches":     len(batch.Matches),
		"overMatches": result.OverMatches(),
		"total":       batch.Total().String(),
	}).Debug("Session.Allocate.Complete")
	return batch, nil
}

func pick(records []TransactionRecord, ids []string) []TransactionRecord {
	if len(ids) == 0 {
		out := make([]TransactionRecord, len(records))
		copy(out, records)
		return out
	}
	want := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		want[id] = struct{}{}
	}
	var out []TransactionRecord
	for _, r := range records {
		if _, ok := want[r.ID]; ok {
			out = append(out, r)
		}
	}
	return out
}

// Reconcile posts the allocated batch. On success the working tables are
// cleared and the session is idle again. On failure nothing changes and the
// call can be retried.
func (s *Session) Reconcile(ctx context.Context) (ReconciliationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != StateAllocated || s.batch == nil {
		return ReconciliationResult{}, fmt.Errorf("%w: cannot reconcile in state %s", ErrInvalidState, s.state)
	}

	res, err := s.ledger.Reconcile(ctx, s.batch)
	if err != nil {
		s.logger.WithError(err).WithField("batchID", s.batch.ID.String()).Error("Session.Reconcile.Error")
		return ReconciliationResult{}, err
	}

	s.statement = nil
	s.ledgerRows = nil
	s.result = nil
	s.batch = nil
	s.state = StateIdle

	s.logger.WithFields(logrus.Fields{
		"batchID": res.BatchID.String(),
		"matches": len(res.Reconciled),
		"total":   res.Total.String(),
	}).Info("Session.Reconcile.Complete")
	return res, nil
}

// Unreconcile reverses reconciled matches for the given references on the
// fetched account, whether they were reconciled by this session or an
// earlier one. It then reloads the working tables with the last filter so
// the reopened records come back with their amounts restored.
func (s *Session) Unreconcile(ctx context.Context, voucherRefs []string, clearingDate time.Time) ([]Match, error) {
	s.mu.Lock()
	filter, dates := s.filter, s.dates
	if filter.BankAccount == "" {
		state := s.state
		s.mu.Unlock()
		return nil, fmt.Errorf("%w: no account fetched in state %s", ErrInvalidState, state)
	}

	persisted, err := s.source.ReconciledMatches(ctx, filter, voucherRefs)
	if err != nil {
		s.mu.Unlock()
		return nil, fmt.Errorf("reconciled matches: %w", err)
	}

	prev := s.state
	s.state = StateUnreconciling
	reversals, err := s.ledger.Unreconcile(ctx, voucherRefs, clearingDate, persisted)
	if err != nil {
		if len(reversals) == 0 {
			s.state = prev
		}
		s.mu.Unlock()
		return reversals, err
	}
	s.mu.Unlock()

	if err := s.Fetch(ctx, filter, dates); err != nil {
		return reversals, err
	}
	return reversals, nil
}

// Balances computes opening, closing and difference amounts for the loaded
// account. The opening balance is taken the day before the range starts.
func (s *Session) Balances(ctx context.Context) (BalanceSummary, error) {
	s.mu.Lock()
	filter, dates := s.filter, s.dates
	stmts := append([]TransactionRecord(nil), s.statement...)
	ledgers := append([]TransactionRecord(nil), s.ledgerRows...)
	s.mu.Unlock()

	if filter.BankAccount == "" {
		return BalanceSummary{}, fmt.Errorf("%w: no account fetched", ErrInvalidState)
	}

	asOf := dates.From.AddDate(0, 0, -1)
	opening, err := s.source.AccountOpeningBalance(ctx, filter, asOf)
	if err != nil {
		return BalanceSummary{}, fmt.Errorf("account opening balance: %w", err)
	}
	return Summarize(opening, stmts, ledgers), nil
}

// Snapshot returns a copy of the session's data.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		State:     s.state,
		Filter:    s.filter,
		Dates:     s.dates,
		Statement: append([]TransactionRecord(nil), s.statement...),
		Ledger:    append([]TransactionRecord(nil), s.ledgerRows...),
		History:   s.ledger.History(),
	}
	if s.result != nil {
		snap.Candidates = append([]MatchCandidate(nil), s.result.Candidates...)
		snap.Statement = overlay(snap.Statement, s.result.Statement, nil)
		snap.Ledger = overlay(snap.Ledger, s.result.Ledger, s.result.Dropped)
	}
	if s.batch != nil {
		b := *s.batch
		b.Matches = append([]Match(nil), s.batch.Matches...)
		snap.Batch = &b
	}
	return snap
}

// overlay replaces rows with their post-matching copies and removes dropped
// rows, leaving rows outside the last selection untouched.
func overlay(rows, matched, dropped []TransactionRecord) []TransactionRecord {
	updated := make(map[string]TransactionRecord, len(matched))
	for _, r := range matched {
		updated[r.ID] = r
	}
	gone := make(map[string]struct{}, len(dropped))
	for _, r := range dropped {
		gone[r.ID] = struct{}{}
	}
	out := make([]TransactionRecord, 0, len(rows))
	for _, r := range rows {
		if _, ok := gone[r.ID]; ok {
			continue
		}
		if u, ok := updated[r.ID]; ok {
			r = u
		}
		out = append(out, r)
	}
	return out
}
