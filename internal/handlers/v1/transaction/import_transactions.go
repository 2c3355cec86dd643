package transaction

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/recon-server/internal/logging"
	"github.com/carson-networks/recon-server/internal/recon"
)

// ImportTransactionsBody is the request body for importing transactions.
type ImportTransactionsBody struct {
	Side         string        `json:"side" enum:"statement,ledger" doc:"Which side the lines belong to"`
	Company      string        `json:"company" doc:"Company owning the account"`
	BankAccount  string        `json:"bankAccount" minLength:"1" doc:"Bank account the lines belong to"`
	Transactions []Transaction `json:"transactions" minItems:"1" doc:"Lines to import"`
}

// ImportTransactionsInput is the Huma input for importing transactions.
type ImportTransactionsInput struct {
	Body ImportTransactionsBody
}

// ImportTransactionsResponse is the response body for importing transactions.
type ImportTransactionsResponse struct {
	Inserted int `json:"inserted" doc:"Lines stored, duplicates of existing IDs excluded"`
	Skipped  int `json:"skipped" doc:"Lines whose ID already existed"`
}

// ImportTransactionsOutput is the Huma output for importing transactions.
type ImportTransactionsOutput struct {
	Status int
	Body   ImportTransactionsResponse
}

type transactionImporter interface {
	Import(ctx context.Context, side recon.Source, filter recon.AccountFilter, records []recon.TransactionRecord) (int, error)
}

// ImportTransactionsHandler handles POST /v1/transactions/import.
type ImportTransactionsHandler struct {
	ImportService transactionImporter
}

// NewImportTransactionsHandler creates a new ImportTransactionsHandler.
func NewImportTransactionsHandler(svc transactionImporter) *ImportTransactionsHandler {
	return &ImportTransactionsHandler{ImportService: svc}
}

// Register registers the import endpoint with the Huma API.
func (h *ImportTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "import-transactions",
		Method:        http.MethodPost,
		Path:          "/v1/transactions/import",
		Summary:       "Import transactions",
		Description:   "Stores bank statement or ledger lines so sessions can fetch them. Lines with an existing ID are skipped.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

// parseImportTransactionsInput validates the body and converts it to records.
func parseImportTransactionsInput(input *ImportTransactionsInput) (recon.Source, recon.AccountFilter, []recon.TransactionRecord, error) {
	side, err := recon.ParseSource(input.Body.Side)
	if err != nil {
		return 0, recon.AccountFilter{}, nil, huma.NewError(http.StatusBadRequest, "invalid side", err)
	}

	records := make([]recon.TransactionRecord, len(input.Body.Transactions))
	for i, tx := range input.Body.Transactions {
		record, err := toRecord(side, tx)
		if err != nil {
			return 0, recon.AccountFilter{}, nil, huma.NewError(http.StatusBadRequest, fmt.Sprintf("invalid transaction %s", tx.ID), err)
		}
		records[i] = record
	}

	filter := recon.AccountFilter{Company: input.Body.Company, BankAccount: input.Body.BankAccount}
	return side, filter, records, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(raw)
}

func toRecord(side recon.Source, tx Transaction) (recon.TransactionRecord, error) {
	date, err := time.Parse("2006-01-02", tx.Date)
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("date: %w", err)
	}
	withdraw, err := parseAmount(tx.Withdraw)
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("withdraw: %w", err)
	}
	deposit, err := parseAmount(tx.Deposit)
	if err != nil {
		return recon.TransactionRecord{}, fmt.Errorf("deposit: %w", err)
	}
	amount, err := recon.NewSignedAmount(withdraw, deposit)
	if err != nil {
		return recon.TransactionRecord{}, err
	}

	var record recon.TransactionRecord
	if side == recon.SourceLedger {
		record = recon.NewLedgerRecord(tx.ID, date, amount, tx.Reference, tx.ReferenceDocType)
	} else {
		record = recon.NewStatementRecord(tx.ID, date, amount, tx.Reference)
	}
	record.Description = tx.Description
	return record, nil
}

func (h *ImportTransactionsHandler) handle(ctx context.Context, input *ImportTransactionsInput) (*ImportTransactionsOutput, error) {
	side, filter, records, err := parseImportTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	stopTimer := logging.GetLogData(ctx).AddTiming("importMs")
	inserted, err := h.ImportService.Import(ctx, side, filter, records)
	stopTimer()
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to import transactions", err)
	}

	return &ImportTransactionsOutput{
		Status: http.StatusCreated,
		Body: ImportTransactionsResponse{
			Inserted: inserted,
			Skipped:  len(records) - inserted,
		},
	}, nil
}
