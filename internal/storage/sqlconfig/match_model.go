package sqlconfig

import (
	"context"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// MatchStatusReconciled is the status of a match row that linked a
// statement line to a ledger entry.
const MatchStatusReconciled = "reconciled"

// ReconciliationMatch is a row of reconciliation_matches. Rows are never
// updated; a reversal is a new row pointing at the one it voids.
type ReconciliationMatch struct {
	ID               uuid.UUID           `db:"id"`
	StatementID      string              `db:"statement_id"`
	LedgerID         string              `db:"ledger_id"`
	Reference        string              `db:"reference"`
	ReferenceDocType string              `db:"reference_doc_type"`
	MatchedAmount    decimal.Decimal     `db:"matched_amount"`
	Status           string              `db:"status"`
	ClearingDate     null.Val[time.Time] `db:"clearing_date"`
	ReversalOf       null.Val[uuid.UUID] `db:"reversal_of"`
	CreatedAt        time.Time           `db:"created_at"`
}

// MatchFilter selects reconciled matches on one account by reference.
type MatchFilter struct {
	Company     string
	BankAccount string
	References  []string
}

// IMatchTable defines the storage operations on reconciliation matches.
//
//go:generate mockery --name IMatchTable --inpackage --with-expecter
type IMatchTable interface {
	Insert(ctx context.Context, match *ReconciliationMatch) error
	ListReconciled(ctx context.Context, filter *MatchFilter) ([]*ReconciliationMatch, error)
}
