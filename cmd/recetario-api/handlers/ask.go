// Package handlers provides HTTP handlers for the recipe question API.
package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/recetario-ai/recetario/internal/observability"
)

// Asker is the slice of the query service the HTTP layer needs.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// AskHandler handles question requests.
type AskHandler struct {
	logger  *observability.Logger
	service Asker
}

// NewAskHandler creates a new ask handler.
func NewAskHandler(logger *observability.Logger, service Asker) *AskHandler {
	return &AskHandler{
		logger:  logger.Component("http"),
		service: service,
	}
}

// AskRequestDTO represents the API request.
type AskRequestDTO struct {
	Question string `json:"question"`
}

// AskResponseDTO represents the API response.
type AskResponseDTO struct {
	Answer string `json:"answer"`
}

// ErrorDTO represents an API error response.
type ErrorDTO struct {
	Error string `json:"error"`
}

// Ask handles POST /ask.
func (h *AskHandler) Ask(w http.ResponseWriter, r *http.Request) {
	var req AskRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "invalid request body"})
		return
	}

	question := strings.TrimSpace(req.Question)
	if question == "" {
		writeJSON(w, http.StatusBadRequest, ErrorDTO{Error: "question is required"})
		return
	}

	answer, err := h.service.Ask(r.Context(), question)
	if err != nil {
		h.logger.Error().Err(err).Msg("Question failed")
		writeJSON(w, http.StatusBadGateway, ErrorDTO{Error: "failed to answer question"})
		return
	}

	writeJSON(w, http.StatusOK, AskResponseDTO{Answer: answer})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
