package server

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mayowa-id/payment-instructions-api/internal/instruction"
	"github.com/mayowa-id/payment-instructions-api/internal/models"
)

// InstructionProcessor runs one instruction through the settlement pipeline.
type InstructionProcessor interface {
	Process(instructionText string, accounts []models.Account) (models.SettlementResponse, error)
}

// Controller exposes the payment-instructions API over HTTP.
type Controller struct {
	service InstructionProcessor
}

func NewController(service InstructionProcessor) *Controller {
	return &Controller{service: service}
}

// RegisterRoutes mounts all API routes on the mux, including the catch-all
// 404 handler.
func (c *Controller) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/payment-instructions", c.settle)
	mux.HandleFunc("/health", c.health)
	mux.HandleFunc("/", c.index)
}

// settle handles POST /payment-instructions: decode, run the pipeline, and
// map any coded failure to a 400 with the uniform failure envelope.
func (c *Controller) settle(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
		return
	}

	var req models.InstructionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Warn("settle: invalid request body", "error", err)
		writeFailure(w, &instruction.Error{
			Code:   instruction.CodeMalformed,
			Reason: "Invalid or missing accounts/instruction",
		})
		return
	}

	if len(req.Accounts) == 0 || strings.TrimSpace(req.Instruction) == "" {
		writeFailure(w, &instruction.Error{
			Code:   instruction.CodeMalformed,
			Reason: "Invalid or missing accounts/instruction",
		})
		return
	}

	resp, err := c.service.Process(req.Instruction, req.Accounts)
	if err != nil {
		writeFailure(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// health is the liveness probe.
func (c *Controller) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// index serves the service banner on exactly "/" and 404s everything else,
// so unmatched routes get a JSON error instead of the default text page.
func (c *Controller) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "Route not found"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Payment Instructions API",
		"endpoints": map[string]string{
			"health":              "/health",
			"paymentInstructions": "/payment-instructions",
		},
	})
}

func writeFailure(w http.ResponseWriter, err error) {
	writeJSON(w, http.StatusBadRequest, instruction.FailureResponse(err))
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Error("write response", "error", err)
	}
}
