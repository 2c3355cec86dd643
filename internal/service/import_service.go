package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/recon-server/internal/logging"
	"github.com/carson-networks/recon-server/internal/operator"
	"github.com/carson-networks/recon-server/internal/operator/actions"
	"github.com/carson-networks/recon-server/internal/recon"
)

// ImportService stores statement and ledger lines so sessions can fetch them.
type ImportService struct {
	processor operator.Processor
}

func NewImportService(processor operator.Processor) *ImportService {
	return &ImportService{processor: processor}
}

// Import writes the records in one transaction and returns how many were
// new. Every record must belong to the given side.
func (s *ImportService) Import(ctx context.Context, side recon.Source, filter recon.AccountFilter, records []recon.TransactionRecord) (int, error) {
	for _, r := range records {
		if r.Source != side {
			return 0, fmt.Errorf("record %s is a %s record, expected %s", r.ID, r.Source, side)
		}
	}

	action := &actions.ImportTransactions{Filter: filter, Records: records}
	if err := s.processor.Process(ctx, action); err != nil {
		return 0, err
	}

	logData := logging.GetLogData(ctx)
	logData.AddData("importSide", side.String())
	logData.AddData("imported", action.Inserted)
	return action.Inserted, nil
}
