package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

var (
	march = recon.DateRange{
		From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC),
	}
	checking = recon.AccountFilter{Company: "Acme", BankAccount: "Checking - ACME"}
)

func newTestSource(t *testing.T) (*Source, *sqlconfig.MockIStatementTable, *sqlconfig.MockILedgerTable) {
	t.Helper()
	source, statements, ledger, _ := newTestSourceWithMatches(t)
	return source, statements, ledger
}

func newTestSourceWithMatches(t *testing.T) (*Source, *sqlconfig.MockIStatementTable, *sqlconfig.MockILedgerTable, *sqlconfig.MockIMatchTable) {
	t.Helper()
	statements := sqlconfig.NewMockIStatementTable(t)
	ledger := sqlconfig.NewMockILedgerTable(t)
	matches := sqlconfig.NewMockIMatchTable(t)
	return NewSource(&Storage{Statements: statements, Ledger: ledger, Matches: matches}), statements, ledger, matches
}

func matchesFilter(f *sqlconfig.TransactionFilter) bool {
	return f.BankAccount == "Checking - ACME" && f.Company == "Acme" && f.From.Equal(march.From) && f.To.Equal(march.To)
}

func TestSource_FetchStatementTransactions(t *testing.T) {
	source, statements, _ := newTestSource(t)
	statements.EXPECT().ListOpen(mock.Anything, mock.MatchedBy(matchesFilter)).Return([]*sqlconfig.StatementTransaction{
		{
			ID:                "BT-1",
			TransactionDate:   march.From,
			Reference:         "INV-1",
			Description:       "customer payment",
			Deposit:           decimal.RequireFromString("100"),
			Withdrawal:        decimal.Zero,
			UnallocatedAmount: decimal.RequireFromString("40"),
		},
	}, nil)

	records, err := source.FetchStatementTransactions(context.Background(), checking, march)

	require.NoError(t, err)
	require.Len(t, records, 1)
	r := records[0]
	assert.Equal(t, "BT-1", r.ID)
	assert.Equal(t, recon.SourceStatement, r.Source)
	assert.Equal(t, recon.Credit, r.Amount.Kind)
	assert.Equal(t, "customer payment", r.Description)
	assert.True(t, r.Remaining.Equal(decimal.RequireFromString("40")))
}

func TestSource_FetchLedgerTransactions(t *testing.T) {
	source, _, ledger := newTestSource(t)
	ledger.EXPECT().ListOpen(mock.Anything, mock.MatchedBy(matchesFilter)).Return([]*sqlconfig.LedgerTransaction{
		{
			ID:                 "PE-1",
			DocType:            "Journal Entry",
			PostingDate:        march.From,
			Reference:          "INV-1",
			Withdrawal:         decimal.RequireFromString("75"),
			Deposit:            decimal.Zero,
			UnreconciledAmount: decimal.RequireFromString("75"),
		},
	}, nil)

	records, err := source.FetchLedgerTransactions(context.Background(), checking, march)

	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, recon.SourceLedger, records[0].Source)
	assert.Equal(t, recon.Debit, records[0].Amount.Kind)
	assert.Equal(t, "Journal Entry", records[0].ReferenceDocType)
}

func TestSource_RejectsAmbiguousRows(t *testing.T) {
	source, statements, _ := newTestSource(t)
	statements.EXPECT().ListOpen(mock.Anything, mock.Anything).Return([]*sqlconfig.StatementTransaction{
		{ID: "BT-9", Deposit: decimal.RequireFromString("1"), Withdrawal: decimal.RequireFromString("1")},
	}, nil)

	_, err := source.FetchStatementTransactions(context.Background(), checking, march)

	assert.ErrorIs(t, err, recon.ErrAmbiguousAmount)
	assert.Contains(t, err.Error(), "BT-9")
}

func TestSource_ListError(t *testing.T) {
	source, _, ledger := newTestSource(t)
	ledger.EXPECT().ListOpen(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	records, err := source.FetchLedgerTransactions(context.Background(), checking, march)

	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, records)
}

func TestSource_AccountOpeningBalance(t *testing.T) {
	source, _, ledger := newTestSource(t)
	asOf := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
	ledger.EXPECT().BalanceAsOf(mock.Anything, "Acme", "Checking - ACME", asOf).Return(decimal.RequireFromString("812.40"), nil)

	balance, err := source.AccountOpeningBalance(context.Background(), checking, asOf)

	require.NoError(t, err)
	assert.Equal(t, "812.4", balance.String())
}

func TestSource_ReconciledMatches(t *testing.T) {
	source, _, _, matches := newTestSourceWithMatches(t)
	id := uuid.Must(uuid.NewV4())
	matches.EXPECT().ListReconciled(mock.Anything, &sqlconfig.MatchFilter{
		Company:     "Acme",
		BankAccount: "Checking - ACME",
		References:  []string{"INV-1"},
	}).Return([]*sqlconfig.ReconciliationMatch{
		{
			ID:               id,
			StatementID:      "BT-1",
			LedgerID:         "PE-1",
			Reference:        "INV-1",
			ReferenceDocType: "Payment Entry",
			MatchedAmount:    decimal.RequireFromString("100"),
			Status:           sqlconfig.MatchStatusReconciled,
		},
	}, nil)

	got, err := source.ReconciledMatches(context.Background(), checking, []string{"INV-1"})

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "BT-1", got[0].StatementID)
	assert.Equal(t, "PE-1", got[0].LedgerID)
	assert.Equal(t, recon.StatusReconciled, got[0].Status)
	assert.Nil(t, got[0].ReversalOf)
	assert.True(t, got[0].MatchedAmount.Equal(decimal.RequireFromString("100")))
}

func TestSource_ReconciledMatchesError(t *testing.T) {
	source, _, _, matches := newTestSourceWithMatches(t)
	matches.EXPECT().ListReconciled(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	got, err := source.ReconciledMatches(context.Background(), checking, []string{"INV-1"})

	assert.EqualError(t, err, "connection refused")
	assert.Nil(t, got)
}
