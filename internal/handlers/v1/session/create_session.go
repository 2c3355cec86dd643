package session

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
)

// CreateSessionResponse is the response body for creating a session.
type CreateSessionResponse struct {
	ID string `json:"id" doc:"Created session UUID"`
}

// CreateSessionOutput is the response for creating a session.
type CreateSessionOutput struct {
	Status int
	Body   CreateSessionResponse
}

type sessionCreator interface {
	CreateSession(ctx context.Context) uuid.UUID
}

// CreateSessionHandler handles POST /v1/sessions.
type CreateSessionHandler struct {
	ReconciliationService sessionCreator
}

func NewCreateSessionHandler(svc sessionCreator) *CreateSessionHandler {
	return &CreateSessionHandler{ReconciliationService: svc}
}

// Register registers the create session endpoint with the Huma API.
func (h *CreateSessionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-session",
		Method:        http.MethodPost,
		Path:          "/v1/sessions",
		Summary:       "Create reconciliation session",
		Description:   "Starts an idle reconciliation session.",
		Tags:          []string{"Sessions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateSessionHandler) handle(ctx context.Context, _ *struct{}) (*CreateSessionOutput, error) {
	id := h.ReconciliationService.CreateSession(ctx)
	return &CreateSessionOutput{
		Status: http.StatusCreated,
		Body:   CreateSessionResponse{ID: id.String()},
	}, nil
}
