package sqlconfig

import (
	"context"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const matchTable = "reconciliation_matches"

var matchColumns = []any{
	"id", "statement_id", "ledger_id", "reference", "reference_doc_type",
	"matched_amount", "status", "clearing_date", "reversal_of", "created_at",
}

// MatchesTable provides access to the reconciliation_matches table.
type MatchesTable struct {
	exec bob.Executor
}

// Ensure MatchesTable implements IMatchTable at compile time.
var _ IMatchTable = (*MatchesTable)(nil)

func NewMatchesTable(exec bob.Executor) *MatchesTable {
	return &MatchesTable{exec: exec}
}

func (t *MatchesTable) Insert(ctx context.Context, match *ReconciliationMatch) error {
	q := psql.Insert(
		im.Into(matchTable,
			"id", "statement_id", "ledger_id", "reference", "reference_doc_type",
			"matched_amount", "status", "clearing_date", "reversal_of",
		),
		im.Values(
			psql.Arg(match.ID), psql.Arg(match.StatementID), psql.Arg(match.LedgerID),
			psql.Arg(match.Reference), psql.Arg(match.ReferenceDocType), psql.Arg(match.MatchedAmount),
			psql.Arg(match.Status), psql.Arg(match.ClearingDate), psql.Arg(match.ReversalOf),
		),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListReconciled returns the reconciled matches on the filter's account whose
// reference is listed and that no Unreconciled row has voided yet, oldest
// first.
func (t *MatchesTable) ListReconciled(ctx context.Context, filter *MatchFilter) ([]*ReconciliationMatch, error) {
	if len(filter.References) == 0 {
		return nil, nil
	}
	refs := make([]any, len(filter.References))
	for i, r := range filter.References {
		refs[i] = r
	}

	q := psql.Select(
		sm.Columns(matchColumns...),
		sm.From(matchTable),
		sm.Where(psql.Quote("status").EQ(psql.Arg(MatchStatusReconciled))),
		sm.Where(psql.Quote("reference").In(psql.Arg(refs...))),
		sm.Where(psql.Raw(
			"EXISTS (SELECT 1 FROM statement_transactions s WHERE s.id = reconciliation_matches.statement_id AND s.company = ? AND s.bank_account = ?)",
			filter.Company, filter.BankAccount,
		)),
		sm.Where(psql.Raw(
			"NOT EXISTS (SELECT 1 FROM reconciliation_matches r WHERE r.reversal_of = reconciliation_matches.id)",
		)),
		sm.OrderBy(psql.Quote("created_at")).Asc(),
	)
	return bob.All(ctx, t.exec, q, scan.StructMapper[*ReconciliationMatch]())
}
