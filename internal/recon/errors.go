package recon

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAllocation is returned when a candidate has no positive amount
	// or references a transaction outside the working set.
	ErrInvalidAllocation = errors.New("invalid allocation")
	// ErrNoCandidates is returned when matching produced nothing to allocate.
	ErrNoCandidates = errors.New("no match candidates")
	// ErrInvalidState is returned when an operation is called out of order.
	ErrInvalidState = errors.New("invalid session state")
	// ErrSuperseded is returned to a fetch whose result was discarded because a
	// newer fetch started while it was in flight.
	ErrSuperseded = errors.New("fetch superseded by a newer fetch")
	// ErrNothingToUnreconcile is returned when none of the given references
	// has a reconciled match.
	ErrNothingToUnreconcile = errors.New("nothing to unreconcile")
	// ErrAmbiguousAmount is returned when a withdraw/deposit pair does not have
	// exactly one non-zero side.
	ErrAmbiguousAmount = errors.New("exactly one of withdraw or deposit must be non-zero")
	// ErrNegativeAmount is returned when a withdraw or deposit column holds a
	// negative value.
	ErrNegativeAmount = errors.New("withdraw and deposit must not be negative")
)

// PostingError reports that the ledger collaborator rejected a posting.
// Postings accepted before the failure stay posted.
type PostingError struct {
	MatchID     string
	StatementID string
	LedgerID    string
	Posted      int
	Err         error
}

func (e *PostingError) Error() string {
	return fmt.Sprintf("posting match %s (statement %s, ledger %s) failed after %d accepted postings: %v",
		e.MatchID, e.StatementID, e.LedgerID, e.Posted, e.Err)
}

func (e *PostingError) Unwrap() error {
	return e.Err
}
