package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/recon"
)

// ReconcileInput is the Huma input for posting the allocated batch.
type ReconcileInput struct {
	SessionPath
}

// ReconcileResponse is the response body for a successful reconcile.
type ReconcileResponse struct {
	BatchID    string  `json:"batchID" doc:"Posted batch UUID"`
	Total      string  `json:"total" doc:"Decimal sum of reconciled amounts"`
	Reconciled []Match `json:"reconciled" doc:"Reconciled matches"`
}

// ReconcileOutput is the Huma output for a successful reconcile.
type ReconcileOutput struct {
	Body ReconcileResponse
}

type batchReconciler interface {
	Reconcile(ctx context.Context, id uuid.UUID) (recon.ReconciliationResult, error)
}

// ReconcileHandler handles POST /v1/sessions/{id}/reconcile.
type ReconcileHandler struct {
	ReconciliationService batchReconciler
}

func NewReconcileHandler(svc batchReconciler) *ReconcileHandler {
	return &ReconcileHandler{ReconciliationService: svc}
}

// Register registers the reconcile endpoint with the Huma API.
func (h *ReconcileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "reconcile",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/reconcile",
		Summary:     "Reconcile allocated batch",
		Description: "Posts every allocated match to the ledger. Postings accepted before a failure stay posted.",
		Tags:        []string{"Sessions"},
	}, h.handle)
}

func (h *ReconcileHandler) handle(ctx context.Context, input *ReconcileInput) (*ReconcileOutput, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return nil, err
	}

	res, err := h.ReconciliationService.Reconcile(ctx, id)
	if err != nil {
		return nil, toHumaError("failed to reconcile", err)
	}
	return &ReconcileOutput{Body: ReconcileResponse{
		BatchID:    res.BatchID.String(),
		Total:      res.Total.String(),
		Reconciled: toMatches(res.Reconciled),
	}}, nil
}
