package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// DeleteSessionInput is the Huma input for deleting a session.
type DeleteSessionInput struct {
	SessionPath
}

type sessionDeleter interface {
	DeleteSession(ctx context.Context, id uuid.UUID) error
}

// DeleteSessionHandler handles DELETE /v1/sessions/{id}.
type DeleteSessionHandler struct {
	ReconciliationService sessionDeleter
}

func NewDeleteSessionHandler(svc sessionDeleter) *DeleteSessionHandler {
	return &DeleteSessionHandler{ReconciliationService: svc}
}

// Register registers the delete session endpoint with the Huma API.
func (h *DeleteSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "delete-session",
		Method:        http.MethodDelete,
		Path:          "/v1/sessions/{id}",
		Summary:       "Delete reconciliation session",
		Description:   "Discards the session. Posted reconciliations are not affected.",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *DeleteSessionHandler) handle(ctx context.Context, input *DeleteSessionInput) (*struct{}, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return nil, err
	}
	if err := h.ReconciliationService.DeleteSession(ctx, id); err != nil {
		return nil, toHumaError("failed to delete session", err)
	}
	return nil, nil
}
