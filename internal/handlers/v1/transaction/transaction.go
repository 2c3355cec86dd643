package transaction

// Transaction is the API request model for one imported statement or ledger
// line. Exactly one of withdraw and deposit must be non-zero.
type Transaction struct {
	ID               string `json:"id" minLength:"1" doc:"Transaction ID, unique per side"`
	Date             string `json:"date" doc:"Transaction or posting date, YYYY-MM-DD"`
	Reference        string `json:"reference" doc:"Voucher reference used for matching"`
	Withdraw         string `json:"withdraw,omitempty" doc:"Decimal withdrawal amount"`
	Deposit          string `json:"deposit,omitempty" doc:"Decimal deposit amount"`
	Description      string `json:"description,omitempty" doc:"Free text description"`
	ReferenceDocType string `json:"referenceDocType,omitempty" doc:"Ledger document type, ledger side only"`
}
