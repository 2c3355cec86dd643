package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/recon"
)

// BalancesInput is the Huma input for the balance summary.
type BalancesInput struct {
	SessionPath
}

// BalancesResponse compares statement and ledger balances.
type BalancesResponse struct {
	Opening          string `json:"opening" doc:"Ledger balance the day before the fetched range"`
	ClosingStatement string `json:"closingStatement" doc:"Opening plus open statement rows"`
	ClosingLedger    string `json:"closingLedger" doc:"Opening plus open ledger rows"`
	Difference       string `json:"difference" doc:"Statement minus ledger closing balance"`
}

// BalancesOutput is the Huma output for the balance summary.
type BalancesOutput struct {
	Body BalancesResponse
}

type balanceSummarizer interface {
	Balances(ctx context.Context, id uuid.UUID) (recon.BalanceSummary, error)
}

// BalancesHandler handles GET /v1/sessions/{id}/balances.
type BalancesHandler struct {
	ReconciliationService balanceSummarizer
}

func NewBalancesHandler(svc balanceSummarizer) *BalancesHandler {
	return &BalancesHandler{ReconciliationService: svc}
}

// Register registers the balances endpoint with the Huma API.
func (h *BalancesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balances",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}/balances",
		Summary:     "Get balances",
		Description: "Returns opening and closing balances for the fetched account.",
		Tags:        []string{"Sessions"},
	}, h.handle)
}

func (h *BalancesHandler) handle(ctx context.Context, input *BalancesInput) (*BalancesOutput, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return nil, err
	}

	summary, err := h.ReconciliationService.Balances(ctx, id)
	if err != nil {
		return nil, toHumaError("failed to compute balances", err)
	}
	return &BalancesOutput{Body: BalancesResponse{
		Opening:          summary.Opening.String(),
		ClosingStatement: summary.ClosingStatement.String(),
		ClosingLedger:    summary.ClosingLedger.String(),
		Difference:       summary.Difference.String(),
	}}, nil
}
