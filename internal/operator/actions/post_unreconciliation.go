package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/aarondl/opt/null"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/storage"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

// PostUnreconciliation gives the matched amount back to both sides and
// records an Unreconciled row that voids the original match. The row takes
// the posting's ReversalID when one is set.
type PostUnreconciliation struct {
	Posting      recon.Posting
	ClearingDate time.Time

	IAction
}

func (p *PostUnreconciliation) Perform(ctx context.Context, writer *storage.Writer) error {
	amount := p.Posting.MatchedAmount

	stmt, err := writer.Statements.FindByIDForUpdate(ctx, p.Posting.BankTransactionID)
	if err != nil {
		return fmt.Errorf("statement transaction %s: %w", p.Posting.BankTransactionID, err)
	}
	entry, err := writer.Ledger.FindByIDForUpdate(ctx, p.Posting.LedgerID)
	if err != nil {
		return fmt.Errorf("ledger transaction %s: %w", p.Posting.LedgerID, err)
	}

	stmtTotal := stmt.Deposit.Add(stmt.Withdrawal)
	unallocated := decimal.Min(stmt.UnallocatedAmount.Add(amount), stmtTotal)
	if err := writer.Statements.UpdateUnallocated(ctx, stmt.ID, unallocated, sqlconfig.StatementStatusUnreconciled); err != nil {
		return err
	}

	entryTotal := entry.Deposit.Add(entry.Withdrawal)
	unreconciled := decimal.Min(entry.UnreconciledAmount.Add(amount), entryTotal)
	if err := writer.Ledger.UpdateUnreconciled(ctx, entry.ID, unreconciled, null.FromPtr[time.Time](nil)); err != nil {
		return err
	}

	reversalID := p.Posting.ReversalID
	if reversalID.IsNil() {
		reversalID = uuid.Must(uuid.NewV4())
	}
	return writer.Matches.Insert(ctx, &sqlconfig.ReconciliationMatch{
		ID:               reversalID,
		StatementID:      stmt.ID,
		LedgerID:         entry.ID,
		Reference:        p.Posting.ReferenceID,
		ReferenceDocType: p.Posting.ReferenceDocType,
		MatchedAmount:    amount,
		Status:           recon.StatusUnreconciled.String(),
		ClearingDate:     null.From(p.ClearingDate),
		ReversalOf:       null.From(p.Posting.MatchID),
	})
}
