package models

// InstructionRequest is the body of POST /payment-instructions.
type InstructionRequest struct {
	// Accounts is the full set of accounts the instruction may reference.
	Accounts []Account `json:"accounts"`

	// Instruction is the raw instruction sentence to parse and settle.
	Instruction string `json:"instruction"`
}

// SettlementResponse describes the outcome of one payment instruction.
//
// The echoed instruction fields are pointers: when parsing fails they were
// never extracted and must serialize as JSON null.
type SettlementResponse struct {
	// Type is "DEBIT" or "CREDIT", matching the instruction's leading keyword.
	Type *string `json:"type"`

	// Amount is the transfer amount in whole currency units.
	Amount *int64 `json:"amount"`

	// Currency is the upper-cased 3-letter currency code.
	Currency *string `json:"currency"`

	// DebitAccount is the account losing money, case-preserved.
	DebitAccount *string `json:"debit_account"`

	// CreditAccount is the account receiving money, case-preserved.
	CreditAccount *string `json:"credit_account"`

	// ExecuteBy is the requested execution date (YYYY-MM-DD), or null for
	// immediate transfers.
	ExecuteBy *string `json:"execute_by"`

	// Status is "successful", "pending" or "failed".
	Status string `json:"status"`

	// StatusReason is a human-readable explanation of the status.
	StatusReason string `json:"status_reason"`

	// StatusCode is the stable short code for the outcome (AP00, AC01, ...).
	StatusCode string `json:"status_code"`

	// Accounts lists the two involved accounts with their pre-transfer
	// balances. Empty when the instruction never reached execution.
	Accounts []ResponseAccount `json:"accounts"`
}
