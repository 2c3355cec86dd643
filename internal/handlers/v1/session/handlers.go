package session

import (
	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/recon-server/internal/service"
)

// Register wires every session endpoint to the reconciliation service.
func Register(api huma.API, svc *service.ReconciliationService) {
	NewCreateSessionHandler(svc).Register(api)
	NewGetSessionHandler(svc).Register(api)
	NewDeleteSessionHandler(svc).Register(api)
	NewFetchHandler(svc).Register(api)
	NewAllocateHandler(svc).Register(api)
	NewReconcileHandler(svc).Register(api)
	NewUnreconcileHandler(svc).Register(api)
	NewBalancesHandler(svc).Register(api)
}
