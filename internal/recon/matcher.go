package recon

import "github.com/shopspring/decimal"

// MatchResult holds the candidates from one matching pass together with
// updated copies of both sides. Over-matched ledger records are not in Ledger.
type MatchResult struct {
	Candidates []MatchCandidate
	Statement  []TransactionRecord
	Ledger     []TransactionRecord
	Dropped    []TransactionRecord
}

// OverMatches counts the candidates that hit the over-match branch.
func (r MatchResult) OverMatches() int {
	n := 0
	for _, c := range r.Candidates {
		if c.OverMatch {
			n++
		}
	}
	return n
}

// MatchRecords pairs statement records with ledger records that carry the same
// reference. Statements are visited in order and each consumes ledger records
// with its reference in order until it is fully matched.
//
// When a statement exceeds the ledger remaining the statement is still
// clamped to zero and the ledger record is dropped from further matching.
// Totals computed downstream rely on this, so it is kept as is.
func MatchRecords(statement, ledger []TransactionRecord) MatchResult {
	stmts := make([]TransactionRecord, len(statement))
	copy(stmts, statement)
	ledgers := make([]TransactionRecord, len(ledger))
	copy(ledgers, ledger)

	byReference := make(map[string][]int, len(ledgers))
	for i, l := range ledgers {
		if l.Reference == "" {
			continue
		}
		byReference[l.Reference] = append(byReference[l.Reference], i)
	}

	dropped := make([]bool, len(ledgers))
	var candidates []MatchCandidate

	for si := range stmts {
		s := &stmts[si]
		if s.Reference == "" {
			continue
		}
		for _, li := range byReference[s.Reference] {
			if !s.IsOpen() {
				break
			}
			l := &ledgers[li]
			if dropped[li] || !l.IsOpen() {
				continue
			}

			delta := l.Remaining.Sub(s.Remaining)
			if delta.GreaterThanOrEqual(decimal.Zero) {
				candidates = append(candidates, newCandidate(s, l, s.Remaining, false))
				l.Remaining = delta
				s.Remaining = decimal.Zero
				continue
			}

			candidates = append(candidates, newCandidate(s, l, l.Remaining, true))
			s.Remaining = decimal.Zero
			l.Remaining = decimal.Zero
			dropped[li] = true
		}
	}

	result := MatchResult{
		Candidates: candidates,
		Statement:  stmts,
		Ledger:     make([]TransactionRecord, 0, len(ledgers)),
	}
	for i, l := range ledgers {
		if dropped[i] {
			result.Dropped = append(result.Dropped, l)
			continue
		}
		result.Ledger = append(result.Ledger, l)
	}
	return result
}

func newCandidate(s, l *TransactionRecord, amount decimal.Decimal, over bool) MatchCandidate {
	return MatchCandidate{
		StatementID:      s.ID,
		LedgerID:         l.ID,
		Reference:        s.Reference,
		ReferenceDocType: l.ReferenceDocType,
		MatchedAmount:    amount,
		OverMatch:        over,
	}
}
