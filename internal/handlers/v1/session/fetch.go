package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/recon"
)

// FetchBody is the request body for loading open transactions.
type FetchBody struct {
	Company     string `json:"company" doc:"Company filter"`
	BankAccount string `json:"bankAccount" minLength:"1" doc:"Bank account to reconcile"`
	FromDate    string `json:"fromDate,omitempty" doc:"Inclusive start date, YYYY-MM-DD"`
	ToDate      string `json:"toDate,omitempty" doc:"Inclusive end date, YYYY-MM-DD"`
}

// FetchInput is the Huma input for loading open transactions.
type FetchInput struct {
	SessionPath
	Body FetchBody
}

type transactionFetcher interface {
	Fetch(ctx context.Context, id uuid.UUID, filter recon.AccountFilter, dates recon.DateRange) (recon.Snapshot, error)
}

// FetchHandler handles POST /v1/sessions/{id}/fetch.
type FetchHandler struct {
	ReconciliationService transactionFetcher
}

func NewFetchHandler(svc transactionFetcher) *FetchHandler {
	return &FetchHandler{ReconciliationService: svc}
}

// Register registers the fetch endpoint with the Huma API.
func (h *FetchHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "fetch-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/fetch",
		Summary:     "Fetch open transactions",
		Description: "Loads unreconciled statement and ledger rows for the account and date range. Rows already loaded are kept.",
		Tags:        []string{"Sessions"},
	}, h.handle)
}

func parseFetchInput(input *FetchInput) (uuid.UUID, recon.AccountFilter, recon.DateRange, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return uuid.Nil, recon.AccountFilter{}, recon.DateRange{}, err
	}
	from, err := parseDate("fromDate", input.Body.FromDate)
	if err != nil {
		return uuid.Nil, recon.AccountFilter{}, recon.DateRange{}, err
	}
	to, err := parseDate("toDate", input.Body.ToDate)
	if err != nil {
		return uuid.Nil, recon.AccountFilter{}, recon.DateRange{}, err
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return uuid.Nil, recon.AccountFilter{}, recon.DateRange{}, huma.NewError(http.StatusBadRequest, "toDate is before fromDate")
	}

	filter := recon.AccountFilter{Company: input.Body.Company, BankAccount: input.Body.BankAccount}
	return id, filter, recon.DateRange{From: from, To: to}, nil
}

func (h *FetchHandler) handle(ctx context.Context, input *FetchInput) (*SessionOutput, error) {
	id, filter, dates, err := parseFetchInput(input)
	if err != nil {
		return nil, err
	}

	snap, err := h.ReconciliationService.Fetch(ctx, id, filter, dates)
	if err != nil {
		return nil, toHumaError("failed to fetch transactions", err)
	}
	return &SessionOutput{Body: toSession(id, snap)}, nil
}
