package instruction

import (
	"github.com/mayowa-id/payment-instructions-api/internal/models"
)

// Execute applies a validated instruction and assembles the settlement
// response. The two involved accounts are copied into the response with
// their pre-transfer balances; the caller's slice is never touched.
// Immediate transfers move the amount between the copies; future-dated ones
// are reported as pending without any balance change. today must be the
// same UTC date string that Validate saw.
func Execute(p *Parsed, accounts []models.Account, today string) models.SettlementResponse {
	involved := involvedAccounts(accounts, p.DebitAccount, p.CreditAccount)

	var status, statusCode, statusReason string
	if isImmediate(p.ExecuteBy, today) {
		for i := range involved {
			switch involved[i].ID {
			case p.DebitAccount:
				involved[i].Balance -= p.Amount
			case p.CreditAccount:
				involved[i].Balance += p.Amount
			}
		}
		status = StatusSuccessful
		statusCode = CodeExecuted
		statusReason = "Transaction executed successfully"
	} else {
		status = StatusPending
		statusCode = CodePending
		statusReason = "Transaction scheduled for future execution"
	}

	var executeBy *string
	if p.ExecuteBy != "" {
		executeBy = &p.ExecuteBy
	}

	return models.SettlementResponse{
		Type:          &p.Type,
		Amount:        &p.Amount,
		Currency:      &p.Currency,
		DebitAccount:  &p.DebitAccount,
		CreditAccount: &p.CreditAccount,
		ExecuteBy:     executeBy,
		Status:        status,
		StatusReason:  statusReason,
		StatusCode:    statusCode,
		Accounts:      involved,
	}
}

// involvedAccounts copies the accounts referenced by the instruction,
// annotated with their balance at call time. Input order is preserved.
func involvedAccounts(accounts []models.Account, debitID, creditID string) []models.ResponseAccount {
	involved := make([]models.ResponseAccount, 0, 2)
	for _, acc := range accounts {
		if acc.ID == debitID || acc.ID == creditID {
			involved = append(involved, models.ResponseAccount{
				ID:            acc.ID,
				Currency:      acc.Currency,
				Balance:       acc.Balance,
				BalanceBefore: acc.Balance,
			})
		}
	}
	return involved
}

// FailureResponse builds the envelope returned when any stage rejects an
// instruction: all echoed fields null, no accounts, status failed. Errors
// without a code fall back to SY03 with a generic reason.
func FailureResponse(err error) models.SettlementResponse {
	code := CodeMalformed
	reason := "Malformed instruction: unable to parse keywords"
	if coded, ok := AsError(err); ok {
		if coded.Code != "" {
			code = coded.Code
		}
		if coded.Reason != "" {
			reason = coded.Reason
		}
	}

	return models.SettlementResponse{
		Status:       StatusFailed,
		StatusReason: reason,
		StatusCode:   code,
		Accounts:     []models.ResponseAccount{},
	}
}
