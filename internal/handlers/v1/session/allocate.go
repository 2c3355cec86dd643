package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/logging"
	"github.com/carson-networks/recon-server/internal/recon"
)

// AllocateBody is the request body for allocating matches.
type AllocateBody struct {
	StatementIDs []string `json:"statementIDs,omitempty" doc:"Statement rows to match, all rows when empty"`
	LedgerIDs    []string `json:"ledgerIDs,omitempty" doc:"Ledger rows to match, all rows when empty"`
}

// AllocateInput is the Huma input for allocating matches.
type AllocateInput struct {
	SessionPath
	Body AllocateBody
}

// BatchOutput returns an allocation batch.
type BatchOutput struct {
	Body Batch
}

type matchAllocator interface {
	Allocate(ctx context.Context, id uuid.UUID, sel recon.Selection) (*recon.AllocationBatch, error)
}

// AllocateHandler handles POST /v1/sessions/{id}/allocate.
type AllocateHandler struct {
	ReconciliationService matchAllocator
}

func NewAllocateHandler(svc matchAllocator) *AllocateHandler {
	return &AllocateHandler{ReconciliationService: svc}
}

// Register registers the allocate endpoint with the Huma API.
func (h *AllocateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "allocate-matches",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/allocate",
		Summary:     "Allocate matches",
		Description: "Matches the selected rows by reference and records the allocations. Replaces any earlier unposted batch.",
		Tags:        []string{"Sessions"},
	}, h.handle)
}

func (h *AllocateHandler) handle(ctx context.Context, input *AllocateInput) (*BatchOutput, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return nil, err
	}

	sel := recon.Selection{StatementIDs: input.Body.StatementIDs, LedgerIDs: input.Body.LedgerIDs}
	batch, err := h.ReconciliationService.Allocate(ctx, id, sel)
	if err != nil {
		return nil, toHumaError("failed to allocate", err)
	}

	logging.GetLogData(ctx).AddData("matchCount", len(batch.Matches))
	return &BatchOutput{Body: *toBatch(batch)}, nil
}
