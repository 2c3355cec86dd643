package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatementStatusUnreconciled = "Unreconciled"
	StatementStatusReconciled   = "Reconciled"
)

// StatementTransaction is a row of statement_transactions.
type StatementTransaction struct {
	ID                string          `db:"id"`
	Company           string          `db:"company"`
	BankAccount       string          `db:"bank_account"`
	TransactionDate   time.Time       `db:"transaction_date"`
	Reference         string          `db:"reference"`
	Description       string          `db:"description"`
	Withdrawal        decimal.Decimal `db:"withdrawal"`
	Deposit           decimal.Decimal `db:"deposit"`
	UnallocatedAmount decimal.Decimal `db:"unallocated_amount"`
	Status            string          `db:"status"`
	CreatedAt         time.Time       `db:"created_at"`
}

// StatementTransactionCreate is the input for importing a statement line.
type StatementTransactionCreate struct {
	ID              string
	Company         string
	BankAccount     string
	TransactionDate time.Time
	Reference       string
	Description     string
	Withdrawal      decimal.Decimal
	Deposit         decimal.Decimal
}

// TransactionFilter selects open rows of one bank account in a date range.
// Zero dates leave that side of the range open.
type TransactionFilter struct {
	Company     string
	BankAccount string
	From        time.Time
	To          time.Time
}

// IStatementTable defines the storage operations on statement transactions.
//
//go:generate mockery --name IStatementTable --inpackage --with-expecter
type IStatementTable interface {
	ListOpen(ctx context.Context, filter *TransactionFilter) ([]*StatementTransaction, error)
	Insert(ctx context.Context, create *StatementTransactionCreate) (bool, error)
	FindByIDForUpdate(ctx context.Context, id string) (*StatementTransaction, error)
	UpdateUnallocated(ctx context.Context, id string, unallocated decimal.Decimal, status string) error
}
