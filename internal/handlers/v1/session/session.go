package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/recon"
	"github.com/carson-networks/recon-server/internal/service"
)

const dateLayout = "2006-01-02"

// Row is the API response model for a statement or ledger row.
type Row struct {
	ID               string `json:"id" doc:"Transaction ID"`
	Date             string `json:"date" doc:"Transaction date, YYYY-MM-DD"`
	Withdraw         string `json:"withdraw" doc:"Decimal withdrawal amount"`
	Deposit          string `json:"deposit" doc:"Decimal deposit amount"`
	Remaining        string `json:"remaining" doc:"Decimal amount still unmatched"`
	Reference        string `json:"reference" doc:"Voucher reference"`
	ReferenceDocType string `json:"referenceDocType,omitempty" doc:"Ledger document type"`
	Description      string `json:"description,omitempty" doc:"Free text description"`
}

// Match is the API response model for an allocation record.
type Match struct {
	ID               string `json:"id" doc:"Match UUID"`
	StatementID      string `json:"statementID" doc:"Bank transaction ID"`
	LedgerID         string `json:"ledgerID" doc:"Ledger transaction ID"`
	Reference        string `json:"reference" doc:"Voucher reference"`
	ReferenceDocType string `json:"referenceDocType" doc:"Ledger document type"`
	MatchedAmount    string `json:"matchedAmount" doc:"Decimal matched amount"`
	Status           string `json:"status" enum:"allocated,reconciled,unreconciled" doc:"Match status"`
	OverMatch        bool   `json:"overMatch,omitempty" doc:"Statement exceeded the ledger remaining"`
	ClearingDate     string `json:"clearingDate,omitempty" doc:"Clearing date of a reversal, YYYY-MM-DD"`
	ReversalOf       string `json:"reversalOf,omitempty" doc:"Match UUID this record reverses"`
}

// Batch is the API response model for an allocation batch.
type Batch struct {
	ID      string  `json:"id" doc:"Batch UUID"`
	Total   string  `json:"total" doc:"Decimal sum of matched amounts"`
	Matches []Match `json:"matches" doc:"Matches in the batch"`
}

// Session is the API response model for a reconciliation session.
type Session struct {
	ID          string  `json:"id" doc:"Session UUID"`
	State       string  `json:"state" doc:"Workflow state"`
	Company     string  `json:"company,omitempty" doc:"Company of the loaded account"`
	BankAccount string  `json:"bankAccount,omitempty" doc:"Loaded bank account"`
	FromDate    string  `json:"fromDate,omitempty" doc:"Start of the fetched range, YYYY-MM-DD"`
	ToDate      string  `json:"toDate,omitempty" doc:"End of the fetched range, YYYY-MM-DD"`
	Statement   []Row   `json:"statement" doc:"Open bank statement rows"`
	Ledger      []Row   `json:"ledger" doc:"Open ledger rows"`
	Batch       *Batch  `json:"batch,omitempty" doc:"Current allocation batch"`
	History     []Match `json:"history" doc:"Reconciled and reversed matches"`
}

// SessionPath identifies a session in the URL.
type SessionPath struct {
	ID string `path:"id" format:"uuid" doc:"Session UUID"`
}

func parseSessionID(raw string) (uuid.UUID, error) {
	id, err := uuid.FromString(raw)
	if err != nil {
		return uuid.Nil, huma.NewError(http.StatusBadRequest, "invalid session id", err)
	}
	return id, nil
}

func parseDate(field, raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, huma.NewError(http.StatusBadRequest, "invalid "+field, err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// toHumaError maps reconciliation errors onto HTTP statuses.
func toHumaError(msg string, err error) error {
	var postErr *recon.PostingError
	switch {
	case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, recon.ErrNothingToUnreconcile):
		return huma.NewError(http.StatusNotFound, msg, err)
	case errors.Is(err, recon.ErrInvalidAllocation):
		return huma.NewError(http.StatusUnprocessableEntity, msg, err)
	case errors.Is(err, recon.ErrNoCandidates), errors.Is(err, recon.ErrInvalidState), errors.Is(err, recon.ErrSuperseded):
		return huma.NewError(http.StatusConflict, msg, err)
	case errors.As(err, &postErr):
		return huma.NewError(http.StatusBadGateway, msg, err)
	default:
		return huma.NewError(http.StatusInternalServerError, msg, err)
	}
}

func toRows(records []recon.TransactionRecord) []Row {
	out := make([]Row, len(records))
	for i, r := range records {
		out[i] = Row{
			ID:               r.ID,
			Date:             formatDate(r.Date),
			Withdraw:         r.Amount.Withdraw().String(),
			Deposit:          r.Amount.Deposit().String(),
			Remaining:        r.Remaining.String(),
			Reference:        r.Reference,
			ReferenceDocType: r.ReferenceDocType,
			Description:      r.Description,
		}
	}
	return out
}

func toMatch(m recon.Match) Match {
	out := Match{
		ID:               m.ID.String(),
		StatementID:      m.StatementID,
		LedgerID:         m.LedgerID,
		Reference:        m.Reference,
		ReferenceDocType: m.ReferenceDocType,
		MatchedAmount:    m.MatchedAmount.String(),
		Status:           m.Status.String(),
		OverMatch:        m.OverMatch,
	}
	if m.ClearingDate != nil {
		out.ClearingDate = formatDate(*m.ClearingDate)
	}
	if m.ReversalOf != nil {
		out.ReversalOf = m.ReversalOf.String()
	}
	return out
}

func toMatches(matches []recon.Match) []Match {
	out := make([]Match, len(matches))
	for i, m := range matches {
		out[i] = toMatch(m)
	}
	return out
}

func toBatch(b *recon.AllocationBatch) *Batch {
	if b == nil {
		return nil
	}
	return &Batch{
		ID:      b.ID.String(),
		Total:   b.Total().String(),
		Matches: toMatches(b.Matches),
	}
}

func toSession(id uuid.UUID, snap recon.Snapshot) Session {
	return Session{
		ID:          id.String(),
		State:       snap.State.String(),
		Company:     snap.Filter.Company,
		BankAccount: snap.Filter.BankAccount,
		FromDate:    formatDate(snap.Dates.From),
		ToDate:      formatDate(snap.Dates.To),
		Statement:   toRows(snap.Statement),
		Ledger:      toRows(snap.Ledger),
		Batch:       toBatch(snap.Batch),
		History:     toMatches(snap.History),
	}
}
