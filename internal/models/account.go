package models

// Account is an account snapshot supplied by the caller on every request.
type Account struct {
	// ID is the account identifier (case-sensitive).
	ID string `json:"id"`

	// Currency is the 3-letter currency code the account is held in.
	Currency string `json:"currency"`

	// Balance is the current balance in whole currency units.
	Balance int64 `json:"balance"`
}

// ResponseAccount is an account involved in a settlement, annotated with the
// balance it had before the transfer was applied.
type ResponseAccount struct {
	ID       string `json:"id"`
	Currency string `json:"currency"`

	// Balance is the balance after the transfer (unchanged for pending ones).
	Balance int64 `json:"balance"`

	// BalanceBefore is the balance at the time the request was received.
	BalanceBefore int64 `json:"balance_before"`
}
