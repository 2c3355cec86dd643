package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
)

// LedgerTransaction is a row of ledger_transactions.
type LedgerTransaction struct {
	ID                 string              `db:"id"`
	Company            string              `db:"company"`
	BankAccount        string              `db:"bank_account"`
	DocType            string              `db:"doc_type"`
	PostingDate        time.Time           `db:"posting_date"`
	Reference          string              `db:"reference"`
	Description        string              `db:"description"`
	Withdrawal         decimal.Decimal     `db:"withdrawal"`
	Deposit            decimal.Decimal     `db:"deposit"`
	UnreconciledAmount decimal.Decimal     `db:"unreconciled_amount"`
	ClearanceDate      null.Val[time.Time] `db:"clearance_date"`
	CreatedAt          time.Time           `db:"created_at"`
}

// LedgerTransactionCreate is the input for importing a ledger entry.
type LedgerTransactionCreate struct {
	ID          string
	Company     string
	BankAccount string
	DocType     string
	PostingDate time.Time
	Reference   string
	Description string
	Withdrawal  decimal.Decimal
	Deposit     decimal.Decimal
}

// ILedgerTable defines the storage operations on ledger transactions.
//
//go:generate mockery --name ILedgerTable --inpackage --with-expecter
type ILedgerTable interface {
	ListOpen(ctx context.Context, filter *TransactionFilter) ([]*LedgerTransaction, error)
	Insert(ctx context.Context, create *LedgerTransactionCreate) (bool, error)
	FindByIDForUpdate(ctx context.Context, id string) (*LedgerTransaction, error)
	UpdateUnreconciled(ctx context.Context, id string, unreconciled decimal.Decimal, clearanceDate null.Val[time.Time]) error
	BalanceAsOf(ctx context.Context, company, bankAccount string, asOf time.Time) (decimal.Decimal, error)
}
