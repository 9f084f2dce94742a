package service

import (
	"log/slog"
	"time"

	"github.com/mayowa-id/payment-instructions-api/internal/instruction"
	"github.com/mayowa-id/payment-instructions-api/internal/models"
)

// InstructionService runs the parse → validate → execute pipeline over one
// request's account snapshot. It holds no per-request state; accounts live
// only for the duration of a Process call.
type InstructionService struct {
	now func() time.Time
}

// NewInstructionService creates a service using the system clock.
func NewInstructionService() *InstructionService {
	return &InstructionService{now: time.Now}
}

// NewInstructionServiceWithClock creates a service with a fixed clock, used
// by tests to pin the immediate-vs-deferred decision.
func NewInstructionServiceWithClock(now func() time.Time) *InstructionService {
	return &InstructionService{now: now}
}

// Process interprets one instruction against the supplied accounts and
// returns the settlement response, or the coded error of the first stage
// that rejected it. The UTC calendar date is read once here and shared by
// the validator and executor, so both agree across a midnight boundary.
func (s *InstructionService) Process(instructionText string, accounts []models.Account) (models.SettlementResponse, error) {
	today := s.now().UTC().Format(time.DateOnly)

	parsed, err := instruction.Parse(instructionText)
	if err != nil {
		slog.Warn("instruction rejected by parser", "error", err)
		return models.SettlementResponse{}, err
	}
	slog.Debug("instruction parsed",
		"type", parsed.Type,
		"amount", parsed.Amount,
		"currency", parsed.Currency,
		"execute_by", parsed.ExecuteBy,
	)

	if err := instruction.Validate(parsed, accounts, today); err != nil {
		slog.Warn("instruction rejected by validator", "error", err)
		return models.SettlementResponse{}, err
	}

	resp := instruction.Execute(parsed, accounts, today)
	slog.Info("instruction settled",
		"type", parsed.Type,
		"status", resp.Status,
		"status_code", resp.StatusCode,
	)
	return resp, nil
}
