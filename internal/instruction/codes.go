package instruction

import (
	"errors"
	"fmt"
)

// Status and error codes carried in settlement responses. They are part of
// the API contract; callers match on them, so the values are frozen.
const (
	CodeMissingKeyword      = "SY01" // instruction does not start with DEBIT or CREDIT
	CodeKeywordOrder        = "SY02" // keywords out of order for the chosen form
	CodeMalformed           = "SY03" // generic malformed instruction
	CodeInvalidAmount       = "AM01" // amount not a positive integer
	CodeCurrencyMismatch    = "CU01" // account currency differs from instruction currency
	CodeUnsupportedCurrency = "CU02" // currency outside the supported set
	CodeInsufficientFunds   = "AC01" // debit account cannot cover an immediate transfer
	CodeSameAccount         = "AC02" // debit and credit accounts are identical
	CodeAccountNotFound     = "AC03" // referenced account not in the supplied set
	CodeInvalidAccountID    = "AC04" // account identifier contains invalid characters
	CodeInvalidDate         = "DT01" // execution date malformed or out of range
	CodeExecuted            = "AP00" // immediate transfer applied
	CodePending             = "AP02" // accepted, awaiting its execution date
)

// Settlement statuses.
const (
	StatusSuccessful = "successful"
	StatusPending    = "pending"
	StatusFailed     = "failed"
)

// Error is a coded rejection from the parser or validator. The code ends up
// as the response's status_code, the reason as its status_reason.
type Error struct {
	Code   string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Reason)
}

func newError(code, format string, args ...any) *Error {
	return &Error{Code: code, Reason: fmt.Sprintf(format, args...)}
}

// AsError extracts the coded error from err, if it carries one.
func AsError(err error) (*Error, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}
