package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

// Source reads open statement and ledger rows and the reconciled match trail
// for a reconciliation session.
type Source struct {
	statements sqlconfig.IStatementTable
	ledger     sqlconfig.ILedgerTable
	matches    sqlconfig.IMatchTable
}

var _ recon.TransactionSource = (*Source)(nil)

func NewSource(store *Storage) *Source {
	return &Source{
		statements: store.Statements,
		ledger:     store.Ledger,
		matches:    store.Matches,
	}
}

func (s *Source) FetchStatementTransactions(ctx context.Context, filter recon.AccountFilter, dates recon.DateRange) ([]recon.TransactionRecord, error) {
	rows, err := s.statements.ListOpen(ctx, transactionFilter(filter, dates))
	if err != nil {
		return nil, err
	}

	records := make([]recon.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		amount, err := recon.NewSignedAmount(row.Withdrawal, row.Deposit)
		if err != nil {
			return nil, fmt.Errorf("statement transaction %s: %w", row.ID, err)
		}
		record := recon.NewStatementRecord(row.ID, row.TransactionDate, amount, row.Reference)
		record.Description = row.Description
		record.Remaining = row.UnallocatedAmount
		records = append(records, record)
	}
	return records, nil
}

func (s *Source) FetchLedgerTransactions(ctx context.Context, filter recon.AccountFilter, dates recon.DateRange) ([]recon.TransactionRecord, error) {
	rows, err := s.ledger.ListOpen(ctx, transactionFilter(filter, dates))
	if err != nil {
		return nil, err
	}

	records := make([]recon.TransactionRecord, 0, len(rows))
	for _, row := range rows {
		amount, err := recon.NewSignedAmount(row.Withdrawal, row.Deposit)
		if err != nil {
			return nil, fmt.Errorf("ledger transaction %s: %w", row.ID, err)
		}
		record := recon.NewLedgerRecord(row.ID, row.PostingDate, amount, row.Reference, row.DocType)
		record.Description = row.Description
		record.Remaining = row.UnreconciledAmount
		records = append(records, record)
	}
	return records, nil
}

func (s *Source) AccountOpeningBalance(ctx context.Context, account recon.AccountFilter, asOf time.Time) (decimal.Decimal, error) {
	return s.ledger.BalanceAsOf(ctx, account.Company, account.BankAccount, asOf)
}

func (s *Source) ReconciledMatches(ctx context.Context, account recon.AccountFilter, references []string) ([]recon.Match, error) {
	rows, err := s.matches.ListReconciled(ctx, &sqlconfig.MatchFilter{
		Company:     account.Company,
		BankAccount: account.BankAccount,
		References:  references,
	})
	if err != nil {
		return nil, err
	}

	matches := make([]recon.Match, 0, len(rows))
	for _, row := range rows {
		matches = append(matches, recon.Match{
			ID:               row.ID,
			StatementID:      row.StatementID,
			LedgerID:         row.LedgerID,
			Reference:        row.Reference,
			ReferenceDocType: row.ReferenceDocType,
			MatchedAmount:    row.MatchedAmount,
			Status:           recon.StatusReconciled,
		})
	}
	return matches, nil
}

func transactionFilter(filter recon.AccountFilter, dates recon.DateRange) *sqlconfig.TransactionFilter {
	return &sqlconfig.TransactionFilter{
		Company:     filter.Company,
		BankAccount: filter.BankAccount,
		From:        dates.From,
		To:          dates.To,
	}
}
