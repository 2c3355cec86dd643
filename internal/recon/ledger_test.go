package recon

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func threePairs() WorkingSet {
	return WorkingSet{
		Statement: []TransactionRecord{stmt("S1", "INV-1", "100"), stmt("S2", "INV-2", "200"), stmt("S3", "INV-3", "300")},
		Ledger:    []TransactionRecord{ledgerRow("L1", "INV-1", "100"), ledgerRow("L2", "INV-2", "200"), ledgerRow("L3", "INV-3", "300")},
	}
}

func bankTx(id string) interface{} {
	return mock.MatchedBy(func(p Posting) bool { return p.BankTransactionID == id })
}

func TestAllocate_Success(t *testing.T) {
	ledger := NewAllocationLedger(NewMockPoster(t))
	ws := threePairs()
	result := MatchRecords(ws.Statement, ws.Ledger)

	batch, err := ledger.Allocate(result.Candidates, ws)

	require.NoError(t, err)
	require.Len(t, batch.Matches, 3)
	for _, m := range batch.Matches {
		assert.Equal(t, StatusAllocated, m.Status)
		assert.NotEqual(t, "", m.ID.String())
	}
	assertAmount(t, "600", batch.Total())
}

func TestAllocate_RejectsNonPositiveAmount(t *testing.T) {
	ledger := NewAllocationLedger(NewMockPoster(t))
	ws := threePairs()

	_, err := ledger.Allocate([]MatchCandidate{{StatementID: "S1", LedgerID: "L1", MatchedAmount: dec("0")}}, ws)

	assert.ErrorIs(t, err, ErrInvalidAllocation)
}

func TestAllocate_RejectsUnknownTransaction(t *testing.T) {
	ledger := NewAllocationLedger(NewMockPoster(t))
	ws := threePairs()

	tests := []struct {
		name      string
		candidate MatchCandidate
	}{
		{name: "unknown statement", candidate: MatchCandidate{StatementID: "S9", LedgerID: "L1", MatchedAmount: dec("1")}},
		{name: "unknown ledger", candidate: MatchCandidate{StatementID: "S1", LedgerID: "L9", MatchedAmount: dec("1")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			batch, err := ledger.Allocate([]MatchCandidate{tt.candidate}, ws)
			assert.ErrorIs(t, err, ErrInvalidAllocation)
			assert.Nil(t, batch)
		})
	}
}

func TestReconcile_PostsEveryMatch(t *testing.T) {
	poster := NewMockPoster(t)
	ledger := NewAllocationLedger(poster)
	ws := threePairs()
	batch, err := ledger.Allocate(MatchRecords(ws.Statement, ws.Ledger).Candidates, ws)
	require.NoError(t, err)

	poster.EXPECT().PostReconciliation(mock.Anything, mock.MatchedBy(func(p Posting) bool {
		return p.BankTransactionID == "S1" &&
			p.LedgerID == "L1" &&
			p.ReferenceID == "INV-1" &&
			p.ReferenceDocType == "Payment Entry" &&
			p.MatchedAmount.Equal(dec("100"))
	})).Return(nil).Once()
	poster.EXPECT().PostReconciliation(mock.Anything, bankTx("S2")).Return(nil).Once()
	poster.EXPECT().PostReconciliation(mock.Anything, bankTx("S3")).Return(nil).Once()

	res, err := ledger.Reconcile(context.Background(), batch)

	require.NoError(t, err)
	assert.Equal(t, batch.ID, res.BatchID)
	assert.Len(t, res.Reconciled, 3)
	assertAmount(t, "600", res.Total)
	for _, m := range batch.Matches {
		assert.Equal(t, StatusReconciled, m.Status)
	}
	assert.Len(t, ledger.History(), 3)
}

func TestReconcile_SecondPostingFails(t *testing.T) {
	poster := NewMockPoster(t)
	ledger := NewAllocationLedger(poster)
	ws := threePairs()
	batch, err := ledger.Allocate(MatchRecords(ws.Statement, ws.Ledger).Candidates, ws)
	require.NoError(t, err)

	rejected := errors.New("bank transaction is cancelled")
	poster.EXPECT().PostReconciliation(mock.Anything, bankTx("S1")).Return(nil).Once()
	poster.EXPECT().PostReconciliation(mock.Anything, bankTx("S2")).Return(rejected).Once()

	_, err = ledger.Reconcile(context.Background(), batch)

	var postErr *PostingError
	require.ErrorAs(t, err, &postErr)
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, "S2", postErr.StatementID)
	assert.Equal(t, 1, postErr.Posted)
	for _, m := range batch.Matches {
		assert.Equal(t, StatusAllocated, m.Status)
	}
	assert.Empty(t, ledger.History())
}

func TestReconcile_EmptyBatch(t *testing.T) {
	ledger := NewAllocationLedger(NewMockPoster(t))

	_, err := ledger.Reconcile(context.Background(), &AllocationBatch{})

	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestUnreconcile_AppendsComplementaryRecords(t *testing.T) {
	poster := NewMockPoster(t)
	ledger := NewAllocationLedger(poster)
	ws := threePairs()
	batch, err := ledger.Allocate(MatchRecords(ws.Statement, ws.Ledger).Candidates, ws)
	require.NoError(t, err)
	poster.EXPECT().PostReconciliation(mock.Anything, mock.Anything).Return(nil).Times(3)
	_, err = ledger.Reconcile(context.Background(), batch)
	require.NoError(t, err)

	clearing := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	var posted Posting
	poster.EXPECT().PostUnreconciliation(mock.Anything, bankTx("S2"), clearing).
		Run(func(_ context.Context, p Posting, _ time.Time) { posted = p }).
		Return(nil).Once()

	reversals, err := ledger.Unreconcile(context.Background(), []string{"INV-2"}, clearing, nil)

	require.NoError(t, err)
	require.Len(t, reversals, 1)
	r := reversals[0]
	assert.Equal(t, StatusUnreconciled, r.Status)
	require.NotNil(t, r.ReversalOf)
	assert.Equal(t, batch.Matches[1].ID, *r.ReversalOf)
	require.NotNil(t, r.ClearingDate)
	assert.True(t, clearing.Equal(*r.ClearingDate))
	assertAmount(t, "200", r.MatchedAmount)
	assert.Equal(t, r.ID, posted.ReversalID, "the posted reversal carries the recorded ID")
	assert.Equal(t, batch.Matches[1].ID, posted.MatchID)

	history := ledger.History()
	assert.Len(t, history, 4, "reconciled records are kept next to the reversal")

	// The store may still report the voided match until the reversal lands.
	_, err = ledger.Unreconcile(context.Background(), []string{"INV-2"}, clearing, []Match{batch.Matches[1]})
	assert.ErrorIs(t, err, ErrNothingToUnreconcile, "a voided match is not reversed twice")
}

func TestUnreconcile_UnknownReference(t *testing.T) {
	ledger := NewAllocationLedger(NewMockPoster(t))

	_, err := ledger.Unreconcile(context.Background(), []string{"INV-404"}, day, nil)

	assert.ErrorIs(t, err, ErrNothingToUnreconcile)
}

func persistedMatch(statementID, ledgerID, reference, amount string) Match {
	return Match{
		ID:               uuid.Must(uuid.NewV4()),
		StatementID:      statementID,
		LedgerID:         ledgerID,
		Reference:        reference,
		ReferenceDocType: "Payment Entry",
		MatchedAmount:    dec(amount),
		Status:           StatusReconciled,
	}
}

func TestUnreconcile_PersistedMatches(t *testing.T) {
	poster := NewMockPoster(t)
	ledger := NewAllocationLedger(poster)
	earlier := persistedMatch("S7", "L7", "INV-7", "70")
	other := persistedMatch("S8", "L8", "INV-8", "80")

	poster.EXPECT().PostUnreconciliation(mock.Anything, mock.MatchedBy(func(p Posting) bool {
		return p.MatchID == earlier.ID && p.BankTransactionID == "S7" && p.MatchedAmount.Equal(dec("70"))
	}), day).Return(nil).Once()

	reversals, err := ledger.Unreconcile(context.Background(), []string{"INV-7"}, day, []Match{earlier, other})

	require.NoError(t, err)
	require.Len(t, reversals, 1)
	require.NotNil(t, reversals[0].ReversalOf)
	assert.Equal(t, earlier.ID, *reversals[0].ReversalOf)
	assert.Len(t, ledger.History(), 1)
}

func TestUnreconcile_HistoryAndPersistedCountOnce(t *testing.T) {
	poster := NewMockPoster(t)
	ledger := NewAllocationLedger(poster)
	ws := threePairs()
	batch, err := ledger.Allocate(MatchRecords(ws.Statement, ws.Ledger).Candidates, ws)
	require.NoError(t, err)
	poster.EXPECT().PostReconciliation(mock.Anything, mock.Anything).Return(nil).Times(3)
	_, err = ledger.Reconcile(context.Background(), batch)
	require.NoError(t, err)

	stored := batch.Matches[0]
	poster.EXPECT().PostUnreconciliation(mock.Anything, bankTx("S1"), day).Return(nil).Once()

	reversals, err := ledger.Unreconcile(context.Background(), []string{"INV-1"}, day, []Match{stored})

	require.NoError(t, err)
	assert.Len(t, reversals, 1)
}

func TestUnreconcile_PartialFailure(t *testing.T) {
	poster := NewMockPoster(t)
	ledger := NewAllocationLedger(poster)
	first := persistedMatch("S1", "L1", "INV-1", "10")
	second := persistedMatch("S2", "L2", "INV-1", "20")
	third := persistedMatch("S3", "L3", "INV-1", "30")

	rejected := errors.New("payment entry is cancelled")
	poster.EXPECT().PostUnreconciliation(mock.Anything, bankTx("S1"), day).Return(nil).Once()
	poster.EXPECT().PostUnreconciliation(mock.Anything, bankTx("S2"), day).Return(rejected).Once()

	reversals, err := ledger.Unreconcile(context.Background(), []string{"INV-1"}, day, []Match{first, second, third})

	var postErr *PostingError
	require.ErrorAs(t, err, &postErr)
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, 1, postErr.Posted)
	assert.Equal(t, "S2", postErr.StatementID)
	require.Len(t, reversals, 1)
	assert.Equal(t, first.ID, *reversals[0].ReversalOf)
	assert.Len(t, ledger.History(), 1, "accepted reversals are recorded")

	poster.EXPECT().PostUnreconciliation(mock.Anything, bankTx("S2"), day).Return(nil).Once()
	poster.EXPECT().PostUnreconciliation(mock.Anything, bankTx("S3"), day).Return(nil).Once()

	retried, err := ledger.Unreconcile(context.Background(), []string{"INV-1"}, day, []Match{first, second, third})

	require.NoError(t, err)
	assert.Len(t, retried, 2, "the retry skips the match already reversed")
}
