package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/recon-server/internal/recon"
)

// GetSessionInput is the Huma input for reading a session.
type GetSessionInput struct {
	SessionPath
}

// SessionOutput returns a full session.
type SessionOutput struct {
	Body Session
}

type sessionGetter interface {
	GetSession(ctx context.Context, id uuid.UUID) (recon.Snapshot, error)
}

// GetSessionHandler handles GET /v1/sessions/{id}.
type GetSessionHandler struct {
	ReconciliationService sessionGetter
}

func NewGetSessionHandler(svc sessionGetter) *GetSessionHandler {
	return &GetSessionHandler{ReconciliationService: svc}
}

// Register registers the get session endpoint with the Huma API.
func (h *GetSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-session",
		Method:      http.MethodGet,
		Path:        "/v1/sessions/{id}",
		Summary:     "Get reconciliation session",
		Description: "Returns the session's rows, current batch and match history.",
		Tags:        []string{"Sessions"},
	}, h.handle)
}

func (h *GetSessionHandler) handle(ctx context.Context, input *GetSessionInput) (*SessionOutput, error) {
	id, err := parseSessionID(input.ID)
	if err != nil {
		return nil, err
	}

	snap, err := h.ReconciliationService.GetSession(ctx, id)
	if err != nil {
		return nil, toHumaError("failed to get session", err)
	}
	return &SessionOutput{Body: toSession(id, snap)}, nil
}
