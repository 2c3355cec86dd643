package actions

import (
	"context"
	"errors"
	"fmt"

	"github.com/aarondl/opt/null"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/storage"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

var (
	ErrStatementOverAllocated = errors.New("matched amount exceeds unallocated statement amount")
	ErrLedgerOverAllocated    = errors.New("matched amount exceeds unreconciled ledger amount")
)

// PostReconciliation links one statement line to one ledger entry: both
// open amounts shrink by the matched amount and a Reconciled match row is
// written.
type PostReconciliation struct {
	Posting recon.Posting

	IAction
}

func (p *PostReconciliation) Perform(ctx context.Context, writer *storage.Writer) error {
	amount := p.Posting.MatchedAmount

	stmt, err := writer.Statements.FindByIDForUpdate(ctx, p.Posting.BankTransactionID)
	if err != nil {
		return fmt.Errorf("statement transaction %s: %w", p.Posting.BankTransactionID, err)
	}
	if amount.GreaterThan(stmt.UnallocatedAmount) {
		return fmt.Errorf("%w: %s > %s on %s", ErrStatementOverAllocated, amount, stmt.UnallocatedAmount, stmt.ID)
	}

	entry, err := writer.Ledger.FindByIDForUpdate(ctx, p.Posting.LedgerID)
	if err != nil {
		return fmt.Errorf("ledger transaction %s: %w", p.Posting.LedgerID, err)
	}
	if amount.GreaterThan(entry.UnreconciledAmount) {
		return fmt.Errorf("%w: %s > %s on %s", ErrLedgerOverAllocated, amount, entry.UnreconciledAmount, entry.ID)
	}

	unallocated := stmt.UnallocatedAmount.Sub(amount)
	status := sqlconfig.StatementStatusUnreconciled
	if unallocated.IsZero() {
		status = sqlconfig.StatementStatusReconciled
	}
	if err := writer.Statements.UpdateUnallocated(ctx, stmt.ID, unallocated, status); err != nil {
		return err
	}

	unreconciled := entry.UnreconciledAmount.Sub(amount)
	clearance := entry.ClearanceDate
	if unreconciled.IsZero() {
		clearance = null.From(stmt.TransactionDate)
	}
	if err := writer.Ledger.UpdateUnreconciled(ctx, entry.ID, unreconciled, clearance); err != nil {
		return err
	}

	return writer.Matches.Insert(ctx, &sqlconfig.ReconciliationMatch{
		ID:               p.Posting.MatchID,
		StatementID:      stmt.ID,
		LedgerID:         entry.ID,
		Reference:        p.Posting.ReferenceID,
		ReferenceDocType: p.Posting.ReferenceDocType,
		MatchedAmount:    amount,
		Status:           recon.StatusReconciled.String(),
	})
}
