package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

const statementTable = "statement_transactions"

var statementColumns = []any{
	"id", "company", "bank_account", "transaction_date", "reference", "description",
	"withdrawal", "deposit", "unallocated_amount", "status", "created_at",
}

// ErrNotFound is returned when a row looked up by ID does not exist.
var ErrNotFound = errors.New("row not found")

// StatementsTable provides access to the statement_transactions table.
type StatementsTable struct {
	exec bob.Executor
}

// Ensure StatementsTable implements IStatementTable at compile time.
var _ IStatementTable = (*StatementsTable)(nil)

// NewStatementsTable creates a StatementsTable on a database or transaction.
func NewStatementsTable(exec bob.Executor) *StatementsTable {
	return &StatementsTable{exec: exec}
}

// ListOpen returns rows with an unallocated amount left, oldest first.
func (t *StatementsTable) ListOpen(ctx context.Context, filter *TransactionFilter) ([]*StatementTransaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(statementColumns...),
		sm.From(statementTable),
		sm.Where(psql.Quote("unallocated_amount").GT(psql.Arg(decimal.Zero))),
	}
	queryMods = append(queryMods, filterMods(filter, "transaction_date")...)
	queryMods = append(queryMods,
		sm.OrderBy(psql.Quote("transaction_date")).Asc(),
		sm.OrderBy(psql.Quote("id")).Asc(),
	)

	return bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[*StatementTransaction]())
}

// Insert adds a statement line. Lines whose ID already exists are left
// alone and Insert reports false.
func (t *StatementsTable) Insert(ctx context.Context, create *StatementTransactionCreate) (bool, error) {
	unallocated := create.Deposit.Add(create.Withdrawal)

	q := psql.Insert(
		im.Into(statementTable,
			"id", "company", "bank_account", "transaction_date", "reference", "description",
			"withdrawal", "deposit", "unallocated_amount", "status",
		),
		im.Values(
			psql.Arg(create.ID), psql.Arg(create.Company), psql.Arg(create.BankAccount),
			psql.Arg(create.TransactionDate), psql.Arg(create.Reference), psql.Arg(create.Description),
			psql.Arg(create.Withdrawal), psql.Arg(create.Deposit), psql.Arg(unallocated),
			psql.Arg(StatementStatusUnreconciled),
		),
		im.OnConflict("id").DoNothing(),
	)
	return execInserted(ctx, t.exec, q)
}

// FindByIDForUpdate loads a row and locks it until the transaction ends.
func (t *StatementsTable) FindByIDForUpdate(ctx context.Context, id string) (*StatementTransaction, error) {
	q := psql.Select(
		sm.Columns(statementColumns...),
		sm.From(statementTable),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
		sm.ForUpdate(),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[*StatementTransaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return row, err
}

// UpdateUnallocated sets the unallocated amount and status of a row.
func (t *StatementsTable) UpdateUnallocated(ctx context.Context, id string, unallocated decimal.Decimal, status string) error {
	q := psql.Update(
		um.Table(statementTable),
		um.SetCol("unallocated_amount").ToArg(unallocated),
		um.SetCol("status").ToArg(status),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func filterMods(filter *TransactionFilter, dateColumn string) []bob.Mod[*dialect.SelectQuery] {
	if filter == nil {
		return nil
	}
	var queryMods []bob.Mod[*dialect.SelectQuery]
	if filter.BankAccount != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("bank_account").EQ(psql.Arg(filter.BankAccount))))
	}
	if filter.Company != "" {
		queryMods = append(queryMods, sm.Where(psql.Quote("company").EQ(psql.Arg(filter.Company))))
	}
	if !filter.From.IsZero() {
		queryMods = append(queryMods, sm.Where(psql.Quote(dateColumn).GTE(psql.Arg(filter.From))))
	}
	if !filter.To.IsZero() {
		queryMods = append(queryMods, sm.Where(psql.Quote(dateColumn).LTE(psql.Arg(filter.To))))
	}
	return queryMods
}

func execInserted(ctx context.Context, exec bob.Executor, q bob.Query) (bool, error) {
	res, err := bob.Exec(ctx, exec, q)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
