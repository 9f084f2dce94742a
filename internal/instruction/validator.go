package instruction

import (
	"strconv"
	"strings"

	"github.com/mayowa-id/payment-instructions-api/internal/models"
)

var supportedCurrencies = map[string]bool{
	"NGN": true,
	"USD": true,
	"GBP": true,
	"GHS": true,
}

// Validate checks a parsed instruction against the supplied account
// snapshot. It never modifies accounts. Rules run in a fixed order so the
// same bad input always reports the same code; today is the request's UTC
// calendar date in YYYY-MM-DD form, shared with Execute.
func Validate(p *Parsed, accounts []models.Account, today string) error {
	if p.Amount <= 0 {
		return newError(CodeInvalidAmount, "Amount must be a positive integer")
	}

	if !supportedCurrencies[p.Currency] {
		return newError(CodeUnsupportedCurrency, "Unsupported currency. Only NGN, USD, GBP, and GHS are supported")
	}

	debitAcc, ok := findAccount(accounts, p.DebitAccount)
	if !ok {
		return newError(CodeAccountNotFound, "Account not found: %s", p.DebitAccount)
	}
	creditAcc, ok := findAccount(accounts, p.CreditAccount)
	if !ok {
		return newError(CodeAccountNotFound, "Account not found: %s", p.CreditAccount)
	}
	if p.DebitAccount == p.CreditAccount {
		return newError(CodeSameAccount, "Debit and credit accounts cannot be the same")
	}

	if !strings.EqualFold(debitAcc.Currency, p.Currency) || !strings.EqualFold(creditAcc.Currency, p.Currency) {
		return newError(CodeCurrencyMismatch, "Account currency mismatch")
	}

	if !isValidAccountID(p.DebitAccount) || !isValidAccountID(p.CreditAccount) {
		return newError(CodeInvalidAccountID, "Invalid account ID format")
	}

	if p.ExecuteBy != "" && !isPlausibleDate(p.ExecuteBy) {
		return newError(CodeInvalidDate, "Invalid date format or value")
	}

	// Funds only matter for transfers that settle now.
	if isImmediate(p.ExecuteBy, today) && debitAcc.Balance < p.Amount {
		return newError(CodeInsufficientFunds,
			"Insufficient funds in debit account %s: has %d %s, needs %d %s",
			p.DebitAccount, debitAcc.Balance, p.Currency, p.Amount, p.Currency)
	}

	return nil
}

// isImmediate reports whether a transfer settles now: no execution date, or
// one on or before today. Lexicographic comparison of YYYY-MM-DD strings is
// chronological.
func isImmediate(executeBy, today string) bool {
	return executeBy == "" || executeBy <= today
}

func findAccount(accounts []models.Account, id string) (models.Account, bool) {
	for _, acc := range accounts {
		if acc.ID == id {
			return acc, true
		}
	}
	return models.Account{}, false
}

// isValidAccountID accepts alphanumerics plus '-', '.' and '@'.
func isValidAccountID(id string) bool {
	if id == "" {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '-' || c == '.' || c == '@':
		default:
			return false
		}
	}
	return true
}

// isPlausibleDate bounds-checks the date segments: year 1000-3000, month
// 1-12, day 1-31. Per-month day counts and leap years are deliberately not
// checked.
func isPlausibleDate(dateStr string) bool {
	if !isDateShape(dateStr) {
		return false
	}
	year, _ := strconv.Atoi(dateStr[:4])
	month, _ := strconv.Atoi(dateStr[5:7])
	day, _ := strconv.Atoi(dateStr[8:])
	if year < 1000 || year > 3000 {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	if day < 1 || day > 31 {
		return false
	}
	return true
}
