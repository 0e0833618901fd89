package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"griddle/app/logger"
	"griddle/app/repositories"
	"griddle/app/services"
)

// Error categories reported in the envelope's error field.
const (
	ErrKindMalformedInput   = "malformed_input"
	ErrKindValidationFailed = "validation_failed"
	ErrKindNotFound         = "not_found"
	ErrKindMethodNotAllowed = "method_not_allowed"
	ErrKindInternal         = "internal_error"
)

// Envelope is the uniform response body shape every endpoint renders.
type Envelope struct {
	Success          bool        `json:"success"`
	Data             interface{} `json:"data,omitempty"`
	Count            *int        `json:"count,omitempty"`
	Message          string      `json:"message,omitempty"`
	Error            string      `json:"error,omitempty"`
	ValidationErrors []string    `json:"validation_errors,omitempty"`
}

// WriteJSON renders an envelope with the given status code.
func WriteJSON(w http.ResponseWriter, status int, env Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(env); err != nil {
		logger.Get().Error().Err(err).Msg("failed to encode response")
	}
}

func respondData(w http.ResponseWriter, status int, data interface{}, message string) {
	WriteJSON(w, status, Envelope{Success: true, Data: data, Message: message})
}

func respondList(w http.ResponseWriter, data interface{}, count int) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Count: &count})
}

func respondMessage(w http.ResponseWriter, message string) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: message})
}

func respondError(w http.ResponseWriter, status int, kind, message string) {
	WriteJSON(w, status, Envelope{Success: false, Error: kind, Message: message})
}

// respondServiceError maps a workflow error onto the envelope taxonomy.
// Internal failures are logged with their detail and rendered generically.
func respondServiceError(w http.ResponseWriter, r *http.Request, err error, notFoundMessage string) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		WriteJSON(w, http.StatusBadRequest, Envelope{
			Success:          false,
			Error:            ErrKindValidationFailed,
			Message:          "validation failed",
			ValidationErrors: verr.Violations,
		})
	case errors.Is(err, repositories.ErrNotFound):
		respondError(w, http.StatusNotFound, ErrKindNotFound, notFoundMessage)
	default:
		logger.FromRequest(r).Error().Err(err).Msg("request failed")
		respondError(w, http.StatusInternalServerError, ErrKindInternal, "internal server error")
	}
}
