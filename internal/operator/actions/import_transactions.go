package actions

import (
	"context"
	"fmt"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/storage"
	"github.com/carson-networks/recon-server/internal/storage/sqlconfig"
)

// ImportTransactions stores parsed statement or ledger records for one bank
// account. Records whose ID is already stored are skipped. Inserted holds
// the number of new rows once Perform returns.
type ImportTransactions struct {
	Filter  recon.AccountFilter
	Records []recon.TransactionRecord

	Inserted int

	IAction
}

func (i *ImportTransactions) Perform(ctx context.Context, writer *storage.Writer) error {
	i.Inserted = 0
	for _, r := range i.Records {
		var (
			inserted bool
			err      error
		)
		switch r.Source {
		case recon.SourceStatement:
			inserted, err = writer.Statements.Insert(ctx, &sqlconfig.StatementTransactionCreate{
				ID:              r.ID,
				Company:         i.Filter.Company,
				BankAccount:     i.Filter.BankAccount,
				TransactionDate: r.Date,
				Reference:       r.Reference,
				Description:     r.Description,
				Withdrawal:      r.Amount.Withdraw(),
				Deposit:         r.Amount.Deposit(),
			})
		case recon.SourceLedger:
			inserted, err = writer.Ledger.Insert(ctx, &sqlconfig.LedgerTransactionCreate{
				ID:          r.ID,
				Company:     i.Filter.Company,
				BankAccount: i.Filter.BankAccount,
				DocType:     r.ReferenceDocType,
				PostingDate: r.Date,
				Reference:   r.Reference,
				Description: r.Description,
				Withdrawal:  r.Amount.Withdraw(),
				Deposit:     r.Amount.Deposit(),
			})
		default:
			return fmt.Errorf("record %s: unknown source %v", r.ID, r.Source)
		}
		if err != nil {
			return fmt.Errorf("import %s %s: %w", r.Source, r.ID, err)
		}
		if inserted {
			i.Inserted++
		}
	}
	return nil
}
