package service

import (
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/recon-server/internal/operator"
	"github.com/carson-networks/recon-server/internal/recon"
)

// Service holds all business logic services.
type Service struct {
	Reconciliation *ReconciliationService
	Import         *ImportService
}

// NewService creates a new Service reading through source and writing
// through the operator.
func NewService(source recon.TransactionSource, processor operator.Processor, logger logrus.FieldLogger) *Service {
	return &Service{
		Reconciliation: NewReconciliationService(source, operator.NewPoster(processor), logger),
		Import:         NewImportService(processor),
	}
}
