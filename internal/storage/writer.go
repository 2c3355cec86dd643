package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

// TxCloser ends a database transaction.
type TxCloser interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Writer exposes the tables bound to one open transaction.
type Writer struct {
	tx         TxCloser
	Statements sqlconfig.IStatementTable
	Ledger     sqlconfig.ILedgerTable
	Matches    sqlconfig.IMatchTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:         tx,
		Statements: sqlconfig.NewStatementsTable(tx),
		Ledger:     sqlconfig.NewLedgerTable(tx),
		Matches:    sqlconfig.NewMatchesTable(tx),
	}
}

// NewWriterWithTables builds a Writer from already bound tables.
func NewWriterWithTables(tx TxCloser, statements sqlconfig.IStatementTable, ledger sqlconfig.ILedgerTable, matches sqlconfig.IMatchTable) *Writer {
	return &Writer{
		tx:         tx,
		Statements: statements,
		Ledger:     ledger,
		Matches:    matches,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
