package recon

import "github.com/shopspring/decimal"

// BalanceSummary compares the account as the bank sees it with the account
// as the ledger sees it.
type BalanceSummary struct {
	Opening          decimal.Decimal
	ClosingStatement decimal.Decimal
	ClosingLedger    decimal.Decimal
	Difference       decimal.Decimal
}

// ClosingBalance applies deposits and withdrawals to the opening balance.
func ClosingBalance(opening decimal.Decimal, records []TransactionRecord) decimal.Decimal {
	closing := opening
	for _, r := range records {
		closing = closing.Add(r.Amount.Signed())
	}
	return closing
}

// Summarize builds a BalanceSummary. Difference is statement minus ledger.
func Summarize(opening decimal.Decimal, statement, ledger []TransactionRecord) BalanceSummary {
	stmt := ClosingBalance(opening, statement)
	led := ClosingBalance(opening, ledger)
	return BalanceSummary{
		Opening:          opening,
		ClosingStatement: stmt,
		ClosingLedger:    led,
		Difference:       stmt.Sub(led),
	}
}
