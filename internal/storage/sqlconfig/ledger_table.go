package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const ledgerTable = "ledger_transactions"

var ledgerColumns = []any{
	"id", "company", "bank_account", "doc_type", "posting_date", "reference", "description",
	"withdrawal", "deposit", "unreconciled_amount", "clearance_date", "created_at",
}

// LedgerTable provides access to the ledger_transactions table.
type LedgerTable struct {
	exec bob.Executor
}

// Ensure LedgerTable implements ILedgerTable at compile time.
var _ ILedgerTable = (*LedgerTable)(nil)

// NewLedgerTable creates a LedgerTable on a database or transaction.
func NewLedgerTable(exec bob.Executor) *LedgerTable {
	return &LedgerTable{exec: exec}
}

// ListOpen returns entries with an unreconciled amount left, oldest first.
func (t *LedgerTable) ListOpen(ctx context.Context, filter *TransactionFilter) ([]*LedgerTransaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(ledgerColumns...),
		sm.From(ledgerTable),
		sm.Where(psql.Quote("unreconciled_amount").GT(psql.Arg(decimal.Zero))),
	}
	queryMods = append(queryMods, filterMods(filter, "posting_date")...)
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("posting_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*LedgerTransaction]())
}

// Insert adds a ledger entry, skipping IDs that already exist.
func (t *LedgerTable) Insert(ctx context.Context, create *LedgerTransactionCreate) (bool, error) {
	docType := create.DocType
	if docType == "" {
		docType = "Payment Entry"
	}
	unreconciled := create.Deposit.Add(create.Withdrawal)

	q := psql.Insert(
		im.Into(ledgerTable,
			"id", "company", "bank_account", "doc_type", "posting_date", "reference", "description",
			"withdrawal", "deposit", "unreconciled_amount",
		),
		im.Values(
			psql.Arg(create.ID), psql.Arg(create.Company), psql.Arg(create.BankAccount),
			psql.Arg(docType), psql.Arg(create.PostingDate), psql.Arg(create.Reference),
			psql.Arg(create.Description), psql.Arg(create.Withdrawal), psql.Arg(create.Deposit),
			psql.Arg(unreconciled),
		),
		im.OnConflict("id").DoNothing(),
	)
	return execInserted(ctx, t.exec, q)
}

// FindByIDForUpdate loads an entry and locks it until the transaction ends.
func (t *LedgerTable) FindByIDForUpdate(ctx context.Context, id string) (*LedgerTransaction, error) {
	q := psql.Select(
		sm.Columns(ledgerColumns...),
		sm.From(ledgerTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*LedgerTransaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}

// UpdateUnreconciled sets the unreconciled amount and clearance date.
func (t *LedgerTable) UpdateUnreconciled(ctx context.Context, id string, unreconciled decimal.Decimal, clearanceDate null.Val[time.Time]) error {
	q := psql.Update(
		um.Table(ledgerTable),
		um.SetCol("unreconciled_amount").ToArg(unreconciled),
		um.SetCol("clearance_date").ToArg(clearanceDate),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// BalanceAsOf sums deposits minus withdrawals posted on or before asOf for
// one company's bank account.
func (t *LedgerTable) BalanceAsOf(ctx context.Context, company, bankAccount string, asOf time.Time) (decimal.Decimal, error) {
	q := psql.Select(
		sm.Columns(psql.Raw("COALESCE(SUM(deposit - withdrawal), 0)")),
		sm.From(ledgerTable),
		sm.Where(psql.Quote("company").EQ(psql.Arg(company))),
		sm.Where(psql.Quote("bank_account").EQ(psql.Arg(bankAccount))),
		sm.Where(psql.Quote("posting_date").LTE(psql.Arg(asOf))),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[decimal.Decimal])
}
