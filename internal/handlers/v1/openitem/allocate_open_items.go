package openitem

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/recon-server/internal/recon"
)

// OpenItem is an unreconciled GL entry in request and response bodies.
type OpenItem struct {
	GLEntry     string `json:"glEntry" minLength:"1" doc:"GL entry ID"`
	VoucherType string `json:"voucherType,omitempty" doc:"Voucher type"`
	VoucherNo   string `json:"voucherNo,omitempty" doc:"Voucher number"`
	Outstanding string `json:"outstanding" doc:"Decimal outstanding amount"`
}

// Allocation links a debit entry to a credit entry.
type Allocation struct {
	DebitGL   string `json:"debitGL" doc:"Debit GL entry ID"`
	CreditGL  string `json:"creditGL" doc:"Credit GL entry ID"`
	Allocated string `json:"allocated" doc:"Decimal allocated amount"`
}

// AllocateOpenItemsBody is the request body for allocating open items.
type AllocateOpenItemsBody struct {
	Debits  []OpenItem `json:"debits" doc:"Open debit entries in allocation order"`
	Credits []OpenItem `json:"credits" doc:"Open credit entries in allocation order"`
}

// AllocateOpenItemsInput is the Huma input for allocating open items.
type AllocateOpenItemsInput struct {
	Body AllocateOpenItemsBody
}

// AllocateOpenItemsResponse is the response body for allocating open items.
type AllocateOpenItemsResponse struct {
	Allocations       []Allocation `json:"allocations" doc:"Debit to credit allocations"`
	Debits            []OpenItem   `json:"debits" doc:"Debit entries with their remaining outstanding amount"`
	Credits           []OpenItem   `json:"credits" doc:"Credit entries with their remaining outstanding amount"`
	DebitOutstanding  string       `json:"debitOutstanding" doc:"Sum of remaining debit amounts"`
	CreditOutstanding string       `json:"creditOutstanding" doc:"Sum of remaining credit amounts"`
}

// AllocateOpenItemsOutput is the Huma output for allocating open items.
type AllocateOpenItemsOutput struct {
	Body AllocateOpenItemsResponse
}

type openItemAllocator interface {
	AllocateOpenItems(ctx context.Context, debits, credits []recon.OpenItem) recon.OpenItemResult
}

// AllocateOpenItemsHandler handles POST /v1/open-items/allocate.
type AllocateOpenItemsHandler struct {
	ReconciliationService openItemAllocator
}

// NewAllocateOpenItemsHandler creates a new AllocateOpenItemsHandler.
func NewAllocateOpenItemsHandler(svc openItemAllocator) *AllocateOpenItemsHandler {
	return &AllocateOpenItemsHandler{ReconciliationService: svc}
}

// Register registers the open item allocation endpoint with the Huma API.
func (h *AllocateOpenItemsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "allocate-open-items",
		Method:      http.MethodPost,
		Path:        "/v1/open-items/allocate",
		Summary:     "Allocate open items",
		Description: "Knocks open debit GL entries off against open credit entries, in the order given.",
		Tags:        []string{"Open Items"},
	}, h.handle)
}

func parseOpenItems(field string, items []OpenItem) ([]recon.OpenItem, error) {
	out := make([]recon.OpenItem, len(items))
	for i, item := range items {
		amount, err := decimal.NewFromString(item.Outstanding)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid "+field+" outstanding for "+item.GLEntry, err)
		}
		if amount.IsNegative() {
			return nil, huma.NewError(http.StatusBadRequest, field+" outstanding must not be negative for "+item.GLEntry)
		}
		out[i] = recon.OpenItem{
			GLEntry:     item.GLEntry,
			VoucherType: item.VoucherType,
			VoucherNo:   item.VoucherNo,
			Outstanding: amount,
		}
	}
	return out, nil
}

func toOpenItems(items []recon.OpenItem) []OpenItem {
	out := make([]OpenItem, len(items))
	for i, item := range items {
		out[i] = OpenItem{
			GLEntry:     item.GLEntry,
			VoucherType: item.VoucherType,
			VoucherNo:   item.VoucherNo,
			Outstanding: item.Outstanding.String(),
		}
	}
	return out
}

func (h *AllocateOpenItemsHandler) handle(ctx context.Context, input *AllocateOpenItemsInput) (*AllocateOpenItemsOutput, error) {
	debits, err := parseOpenItems("debit", input.Body.Debits)
	if err != nil {
		return nil, err
	}
	credits, err := parseOpenItems("credit", input.Body.Credits)
	if err != nil {
		return nil, err
	}

	res := h.ReconciliationService.AllocateOpenItems(ctx, debits, credits)

	resp := AllocateOpenItemsResponse{
		Allocations: make([]Allocation, len(res.Allocations)),
		Debits:      toOpenItems(res.Debits),
		Credits:     toOpenItems(res.Credits),
	}
	for i, a := range res.Allocations {
		resp.Allocations[i] = Allocation{DebitGL: a.DebitGL, CreditGL: a.CreditGL, Allocated: a.Allocated.String()}
	}
	debit, credit := res.Totals()
	resp.DebitOutstanding = debit.String()
	resp.CreditOutstanding = credit.String()

	return &AllocateOpenItemsOutput{Body: resp}, nil
}
