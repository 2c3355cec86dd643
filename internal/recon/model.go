package recon

import (
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Source identifies which side of a reconciliation a record came from.
type Source int8

const (
	SourceStatement Source = iota
	SourceLedger
)

func (s Source) String() string {
	switch s {
	case SourceStatement:
		return "statement"
	case SourceLedger:
		return "ledger"
	default:
		return "unknown"
	}
}

// ParseSource parses "statement" or "ledger".
func ParseSource(s string) (Source, error) {
	switch s {
	case "statement":
		return SourceStatement, nil
	case "ledger":
		return SourceLedger, nil
	default:
		return 0, fmt.Errorf("unknown source %q", s)
	}
}

// AmountKind is the direction of a movement. Debit is money leaving the
// account (withdraw), Credit is money arriving (deposit).
type AmountKind int8

const (
	Debit AmountKind = iota
	Credit
)

func (k AmountKind) String() string {
	if k == Credit {
		return "credit"
	}
	return "debit"
}

// SignedAmount is an unsigned magnitude tagged with its direction.
type SignedAmount struct {
	Kind  AmountKind
	Value decimal.Decimal
}

// Withdrawal returns a debit amount.
func Withdrawal(v decimal.Decimal) SignedAmount {
	return SignedAmount{Kind: Debit, Value: v.Abs()}
}

// Deposit returns a credit amount.
func Deposit(v decimal.Decimal) SignedAmount {
	return SignedAmount{Kind: Credit, Value: v.Abs()}
}

// NewSignedAmount builds an amount from a withdraw/deposit column pair.
// Exactly one of the two must be non-zero and neither may be negative.
func NewSignedAmount(withdraw, deposit decimal.Decimal) (SignedAmount, error) {
	switch {
	case withdraw.IsNegative():
		return SignedAmount{}, fmt.Errorf("%w: withdraw %s", ErrNegativeAmount, withdraw)
	case deposit.IsNegative():
		return SignedAmount{}, fmt.Errorf("%w: deposit %s", ErrNegativeAmount, deposit)
	case !withdraw.IsZero() && deposit.IsZero():
		return Withdrawal(withdraw), nil
	case withdraw.IsZero() && !deposit.IsZero():
		return Deposit(deposit), nil
	default:
		return SignedAmount{}, ErrAmbiguousAmount
	}
}

// Signed returns the amount as seen by the account balance: deposits
// positive, withdrawals negative.
func (a SignedAmount) Signed() decimal.Decimal {
	if a.Kind == Debit {
		return a.Value.Neg()
	}
	return a.Value
}

// Withdraw returns the value if the amount is a debit, zero otherwise.
func (a SignedAmount) Withdraw() decimal.Decimal {
	if a.Kind == Debit {
		return a.Value
	}
	return decimal.Zero
}

// Deposit returns the value if the amount is a credit, zero otherwise.
func (a SignedAmount) Deposit() decimal.Decimal {
	if a.Kind == Credit {
		return a.Value
	}
	return decimal.Zero
}

// TransactionRecord is one movement on either side of a reconciliation.
type TransactionRecord struct {
	ID               string
	Date             time.Time
	Amount           SignedAmount
	Reference        string
	ReferenceDocType string
	Description      string
	Source           Source
	Remaining        decimal.Decimal
}

// NewStatementRecord creates an open statement-side record.
func NewStatementRecord(id string, date time.Time, amount SignedAmount, reference string) TransactionRecord {
	return TransactionRecord{
		ID:        id,
		Date:      date,
		Amount:    amount,
		Reference: reference,
		Source:    SourceStatement,
		Remaining: amount.Value,
	}
}

// NewLedgerRecord creates an open ledger-side record.
func NewLedgerRecord(id string, date time.Time, amount SignedAmount, reference, docType string) TransactionRecord {
	return TransactionRecord{
		ID:               id,
		Date:             date,
		Amount:           amount,
		Reference:        reference,
		ReferenceDocType: docType,
		Source:           SourceLedger,
		Remaining:        amount.Value,
	}
}

// IsOpen reports whether the record still has an amount left to match.
func (t TransactionRecord) IsOpen() bool {
	return t.Remaining.IsPositive()
}

// MatchCandidate is a proposed pairing produced by the matcher.
type MatchCandidate struct {
	StatementID      string
	LedgerID         string
	Reference        string
	ReferenceDocType string
	MatchedAmount    decimal.Decimal
	// OverMatch is set when the statement exceeded the ledger remaining. The
	// statement was clamped to zero and the ledger record dropped.
	OverMatch bool
}

// MatchStatus is the lifecycle state of an allocation.
type MatchStatus int8

const (
	StatusAllocated MatchStatus = iota
	StatusReconciled
	StatusUnreconciled
)

func (s MatchStatus) String() string {
	switch s {
	case StatusAllocated:
		return "allocated"
	case StatusReconciled:
		return "reconciled"
	case StatusUnreconciled:
		return "unreconciled"
	default:
		return "unknown"
	}
}

// Match is an allocation record. Reconciled matches are never removed; a
// correction appends an Unreconciled record pointing at the one it voids.
type Match struct {
	ID               uuid.UUID
	StatementID      string
	LedgerID         string
	Reference        string
	ReferenceDocType string
	MatchedAmount    decimal.Decimal
	Status           MatchStatus
	OverMatch        bool
	ClearingDate     *time.Time
	ReversalOf       *uuid.UUID
}

// AllocationBatch groups the matches produced by one Allocate call.
type AllocationBatch struct {
	ID        uuid.UUID
	Matches   []Match
	CreatedAt time.Time
}

// Total returns the sum of matched amounts in the batch.
func (b *AllocationBatch) Total() decimal.Decimal {
	total := decimal.Zero
	for _, m := range b.Matches {
		total = total.Add(m.MatchedAmount)
	}
	return total
}

// AccountFilter selects which account's transactions are fetched.
type AccountFilter struct {
	Company     string
	BankAccount string
}

// DateRange bounds a fetch. Zero values leave that side open.
type DateRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t falls inside the range, both ends inclusive.
func (r DateRange) Contains(t time.Time) bool {
	if !r.From.IsZero() && t.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && t.After(r.To) {
		return false
	}
	return true
}
