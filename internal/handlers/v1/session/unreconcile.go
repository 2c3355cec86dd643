package session

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/recon"
)

// UnreconcileBody is the request body for reversing reconciliations.
type UnreconcileBody struct {
	VoucherRefs  []string `json:"voucherRefs" minItems:"1" doc:"References whose reconciled matches are reversed"`
	ClearingDate string   `json:"clearingDate,omitempty" doc:"Clearing date of the reversal, YYYY-MM-DD, defaults to today"`
}

// UnreconcileInput is the Huma input for reversing reconciliations.
type UnreconcileInput struct {
	SessionPath
	Body UnreconcileBody
}

// UnreconcileResponse lists the reversal records.
type UnreconcileResponse struct {
	Reversals []Match `json:"reversals" doc:"Appended unreconciled records"`
}

// UnreconcileOutput is the Huma output for reversing reconciliations.
type UnreconcileOutput struct {
	Body UnreconcileResponse
}

type matchUnreconciler interface {
	Unreconcile(ctx context.Context, id uuid.UUID, voucherRefs []string, clearingDate time.Time) ([]recon.Match, error)
}

// UnreconcileHandler handles POST /v1/sessions/{id}/unreconcile.
type UnreconcileHandler struct {
	ReconciliationService matchUnreconciler
	now                   func() time.Time
}

func NewUnreconcileHandler(svc matchUnreconciler) *UnreconcileHandler {
	return &UnreconcileHandler{ReconciliationService: svc, now: time.Now}
}

// Register registers the unreconcile endpoint with the Huma API.
func (h *UnreconcileHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "unreconcile",
		Method:      http.MethodPost,
		Path:        "/v1/sessions/{id}/unreconcile",
		Summary:     "Unreconcile matches",
		Description: "Reverses reconciled matches for the given references and reloads the freed rows.",
		Tags:        []string{"Sessions"},
	}, h.handle)
}

func (h *UnreconcileHandler) handle(ctx context.Context, input *UnreconcileInput) (*UnreconcileOutput, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return nil, err
	}
	clearingDate, err := parseDate("clearingDate", input.Body.ClearingDate)
	if err != nil {
		return nil, err
	}
	if clearingDate.IsZero() {
		y, m, d := h.now().Date()
		clearingDate = time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	reversals, err := h.ReconciliationService.Unreconcile(ctx, id, input.Body.VoucherRefs, clearingDate)
	if err != nil {
		return nil, toHumaError("failed to unreconcile", err)
	}
	return &UnreconcileOutput{Body: UnreconcileResponse{Reversals: toMatches(reversals)}}, nil
}
