//go:build integration

package storage

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

func newIntegrationStorage(t *testing.T) *Storage {
	t.Helper()
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("recon"),
		postgres.WithUsername("recon"),
		postgres.WithPassword("recon"),
		postgres.BasicWaitStrategies(),
	)
	testcontainers.CleanupContainer(t, container)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, post, err := Migrate(db, "file://../../migrations")
	require.NoError(t, err)
	require.Equal(t, uint(4), post)

	return NewStorageFromDB(db)
}

func TestIntegration_ImportFetchAndPost(t *testing.T) {
	store := newIntegrationStorage(t)
	ctx := context.Background()
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	inserted, err := store.Statements.Insert(ctx, &sqlconfig.StatementTransactionCreate{
		ID: "BT-1", Company: "Acme", BankAccount: "Checking", TransactionDate: day,
		Reference: "INV-1", Deposit: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = store.Statements.Insert(ctx, &sqlconfig.StatementTransactionCreate{
		ID: "BT-1", Company: "Acme", BankAccount: "Checking", TransactionDate: day,
		Reference: "INV-1", Deposit: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	assert.False(t, inserted, "duplicate IDs are skipped")

	_, err = store.Ledger.Insert(ctx, &sqlconfig.LedgerTransactionCreate{
		ID: "PE-1", Company: "Acme", BankAccount: "Checking", PostingDate: day,
		Reference: "INV-1", Deposit: decimal.RequireFromString("100"),
	})
	require.NoError(t, err)
	_, err = store.Ledger.Insert(ctx, &sqlconfig.LedgerTransactionCreate{
		ID: "PE-0", Company: "Acme", BankAccount: "Checking", PostingDate: day.AddDate(0, -1, 0),
		Reference: "OPENING", Deposit: decimal.RequireFromString("500"),
	})
	require.NoError(t, err)
	_, err = store.Ledger.Insert(ctx, &sqlconfig.LedgerTransactionCreate{
		ID: "PE-X", Company: "Other Co", BankAccount: "Checking", PostingDate: day.AddDate(0, -1, 0),
		Reference: "OPENING", Deposit: decimal.RequireFromString("999"),
	})
	require.NoError(t, err)

	source := NewSource(store)
	dates := recon.DateRange{From: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), To: time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)}
	filter := recon.AccountFilter{Company: "Acme", BankAccount: "Checking"}

	stmts, err := source.FetchStatementTransactions(ctx, filter, dates)
	require.NoError(t, err)
	require.Len(t, stmts, 1)
	ledgers, err := source.FetchLedgerTransactions(ctx, filter, dates)
	require.NoError(t, err)
	require.Len(t, ledgers, 1)
	assert.Equal(t, "Payment Entry", ledgers[0].ReferenceDocType)

	opening, err := source.AccountOpeningBalance(ctx, filter, dates.From.AddDate(0, 0, -1))
	require.NoError(t, err)
	assert.True(t, opening.Equal(decimal.RequireFromString("500")), "other companies are excluded: %s", opening.String())

	writer, err := store.Write(ctx)
	require.NoError(t, err)
	row, err := writer.Statements.FindByIDForUpdate(ctx, "BT-1")
	require.NoError(t, err)
	require.NoError(t, writer.Statements.UpdateUnallocated(ctx, row.ID, decimal.Zero, sqlconfig.StatementStatusReconciled))
	require.NoError(t, writer.Ledger.UpdateUnreconciled(ctx, "PE-1", decimal.Zero, null.From(day)))
	matchID := uuid.Must(uuid.NewV4())
	require.NoError(t, writer.Matches.Insert(ctx, &sqlconfig.ReconciliationMatch{
		ID: matchID, StatementID: "BT-1", LedgerID: "PE-1", Reference: "INV-1",
		ReferenceDocType: "Payment Entry", MatchedAmount: decimal.RequireFromString("100"),
		Status: recon.StatusReconciled.String(),
	}))
	require.NoError(t, writer.Commit(ctx))

	stmts, err = source.FetchStatementTransactions(ctx, filter, dates)
	require.NoError(t, err)
	assert.Empty(t, stmts, "reconciled lines are no longer open")

	reconciled, err := source.ReconciledMatches(ctx, filter, []string{"INV-1"})
	require.NoError(t, err)
	require.Len(t, reconciled, 1)
	assert.Equal(t, matchID, reconciled[0].ID)

	reconciled, err = source.ReconciledMatches(ctx, recon.AccountFilter{Company: "Other Co", BankAccount: "Checking"}, []string{"INV-1"})
	require.NoError(t, err)
	assert.Empty(t, reconciled)

	writer, err = store.Write(ctx)
	require.NoError(t, err)
	require.NoError(t, writer.Matches.Insert(ctx, &sqlconfig.ReconciliationMatch{
		ID: uuid.Must(uuid.NewV4()), StatementID: "BT-1", LedgerID: "PE-1", Reference: "INV-1",
		ReferenceDocType: "Payment Entry", MatchedAmount: decimal.RequireFromString("100"),
		Status: recon.StatusUnreconciled.String(), ClearingDate: null.From(day), ReversalOf: null.From(matchID),
	}))
	require.NoError(t, writer.Commit(ctx))

	reconciled, err = source.ReconciledMatches(ctx, filter, []string{"INV-1"})
	require.NoError(t, err)
	assert.Empty(t, reconciled, "reversed matches are not returned")

	_, err = store.Statements.FindByIDForUpdate(ctx, "BT-404")
	assert.ErrorIs(t, err, sqlconfig.ErrNotFound)
}
