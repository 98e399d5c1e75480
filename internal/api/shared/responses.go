// Package shared holds the JSON response helpers used by every handler.
package shared

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// ErrorResponse defines the standard error response structure.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  int    `json:"-"` // Not serialized to JSON, used for logging
}

// RespondWithJSON writes a JSON response with the given status code and data.
func RespondWithJSON(w http.ResponseWriter, r *http.Request, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err, "path", r.URL.Path)
	}
}

// RespondWithError writes a JSON error response with the given status
// code and sanitized message, logging the full error server-side only.
// 5xx responses log at ERROR level, everything else at DEBUG.
func RespondWithError(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	logAttrs := []any{
		"status_code", status,
		"path", r.URL.Path,
		"method", r.Method,
		"user_message", message,
	}
	if err != nil {
		logAttrs = append(logAttrs, "error", err)
	}
	if status >= 500 {
		slog.Error("request failed", logAttrs...)
	} else {
		slog.Debug("sending error response", logAttrs...)
	}

	RespondWithJSON(w, r, status, ErrorResponse{Error: message, Code: status})
}
