package recon

import "github.com/shopspring/decimal"

// OpenItem is an unreconciled GL entry with its outstanding amount.
type OpenItem struct {
	GLEntry     string
	VoucherType string
	VoucherNo   string
	Outstanding decimal.Decimal
}

// OpenItemAllocation links a debit entry to a credit entry.
type OpenItemAllocation struct {
	DebitGL   string
	CreditGL  string
	Allocated decimal.Decimal
}

// OpenItemResult holds the allocations and the outstanding amounts left on
// each side afterwards.
type OpenItemResult struct {
	Allocations []OpenItemAllocation
	Debits      []OpenItem
	Credits     []OpenItem
}

// AllocateOpenItems knocks debits off against credits. Debits are taken in
// order and each consumes credits in order until either side runs out.
func AllocateOpenItems(debits, credits []OpenItem) OpenItemResult {
	res := OpenItemResult{
		Debits:  append([]OpenItem(nil), debits...),
		Credits: append([]OpenItem(nil), credits...),
	}

	ci := 0
	for di := range res.Debits {
		d := &res.Debits[di]
		for d.Outstanding.IsPositive() && ci < len(res.Credits) {
			c := &res.Credits[ci]
			if !c.Outstanding.IsPositive() {
				ci++
				continue
			}

			amount := decimal.Min(d.Outstanding, c.Outstanding)
			d.Outstanding = d.Outstanding.Sub(amount)
			c.Outstanding = c.Outstanding.Sub(amount)
			res.Allocations = append(res.Allocations, OpenItemAllocation{
				DebitGL:   d.GLEntry,
				CreditGL:  c.GLEntry,
				Allocated: amount,
			})
			if c.Outstanding.IsZero() {
				ci++
			}
		}
		if ci >= len(res.Credits) {
			break
		}
	}
	return res
}

// Totals returns the sum of outstanding amounts on each side.
func (r OpenItemResult) Totals() (debit, credit decimal.Decimal) {
	debit, credit = decimal.Zero, decimal.Zero
	for _, d := range r.Debits {
		debit = debit.Add(d.Outstanding)
	}
	for _, c := range r.Credits {
		credit = credit.Add(c.Outstanding)
	}
	return debit, credit
}
