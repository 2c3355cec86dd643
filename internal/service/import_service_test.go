package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/recon-server/internal/operator"
	"github.com/carson-networks/recon-server/internal/operator/actions"
	"github.com/carson-networks/recon-server/internal/recon"
)

func TestImportService_Import(t *testing.T) {
	processor := operator.NewMockProcessor(t)
	svc := NewImportService(processor)
	records := []recon.TransactionRecord{
		recon.NewStatementRecord("BT-1", day, recon.Deposit(dec("10")), "INV-1"),
		recon.NewStatementRecord("BT-2", day, recon.Deposit(dec("20")), "INV-2"),
	}

	processor.EXPECT().Process(mock.Anything, mock.AnythingOfType("*actions.ImportTransactions")).
		RunAndReturn(func(_ context.Context, action actions.IAction) error {
			imp := action.(*actions.ImportTransactions)
			assert.Equal(t, checking, imp.Filter)
			assert.Len(t, imp.Records, 2)
			imp.Inserted = 1
			return nil
		})

	n, err := svc.Import(context.Background(), recon.SourceStatement, checking, records)

	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestImportService_RejectsMixedSides(t *testing.T) {
	svc := NewImportService(operator.NewMockProcessor(t))
	records := []recon.TransactionRecord{
		recon.NewLedgerRecord("PE-1", day, recon.Deposit(dec("10")), "INV-1", "Payment Entry"),
	}

	_, err := svc.Import(context.Background(), recon.SourceStatement, checking, records)

	assert.ErrorContains(t, err, "PE-1")
}

func TestImportService_ProcessError(t *testing.T) {
	processor := operator.NewMockProcessor(t)
	svc := NewImportService(processor)
	processor.EXPECT().Process(mock.Anything, mock.Anything).Return(errors.New("connection reset"))

	n, err := svc.Import(context.Background(), recon.SourceLedger, checking, nil)

	assert.EqualError(t, err, "connection reset")
	assert.Zero(t, n)
}
