package rest

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/DanielPopoola/centroeduc-checkout/internal/application"
)

// Result is the body of every response: a success flag, a message for the
// customer and optional data. Error codes are never exposed.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// WriteSuccess writes a 200 result.
func WriteSuccess(w http.ResponseWriter, message string, data any) {
	WriteJSON(w, http.StatusOK, Result{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// WriteError maps application errors to HTTP responses
func WriteError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status := application.ToHTTPStatus(err)

	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "status", status, "error", err)
	} else {
		logger.Debug("request rejected",
			"status", status,
			"category", application.CategorizeError(err),
			"error", err,
		)
	}

	WriteJSON(w, status, Result{
		Success: false,
		Message: application.ToMessage(err),
	})
}
