// Package respond writes API responses in the uniform envelope every
// endpoint shares, and sanitizes error messages so internal details never
// reach a client.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"newsdesk/internal/domain/entity"
)

// Envelope is the body shape of every API response.
type Envelope struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Data    any      `json:"data,omitempty"`
	Errors  []string `json:"errors"`
}

// JSON writes a JSON response with the given status code and body.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are gone; all we can do is log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// OK writes a success envelope.
func OK(w http.ResponseWriter, code int, message string, data any) {
	JSON(w, code, Envelope{Success: true, Message: message, Data: data, Errors: []string{}})
}

// Fail writes a failure envelope with the given user-facing message.
func Fail(w http.ResponseWriter, code int, message string, errs ...string) {
	if errs == nil {
		errs = []string{}
	}
	JSON(w, code, Envelope{Success: false, Message: message, Errors: errs})
}

// Validation writes a 400 envelope from a field validation failure.
func Validation(w http.ResponseWriter, ve *entity.ValidationError) {
	Fail(w, http.StatusBadRequest, "validation failed", ve.Error())
}

// InternalError logs the real error (sanitized) and returns a generic 500
// envelope. The error text is never echoed to the client.
func InternalError(w http.ResponseWriter, err error) {
	slog.Default().Error("internal server error",
		slog.String("error", SanitizeError(err)))
	Fail(w, http.StatusInternalServerError, "internal server error")
}
