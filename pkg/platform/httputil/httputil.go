// Package httputil provides JSON response helpers shared by all handlers.
package httputil

import (
	"encoding/json"
	"net/http"

	dErrors "tessera/pkg/domain-errors"
)

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

type errorBody struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// WriteError maps a domain error code to an HTTP status and writes the error
// body. Internal causes are not leaked to clients.
func WriteError(w http.ResponseWriter, err error) {
	code := dErrors.CodeOf(err)
	status := statusFor(code)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal error"
	}
	WriteJSON(w, status, errorBody{Error: message, Code: string(code)})
}

func statusFor(code dErrors.Code) int {
	switch code {
	case dErrors.CodeInvalidInput, dErrors.CodeBadRequest:
		return http.StatusBadRequest
	case dErrors.CodeNotFound:
		return http.StatusNotFound
	case dErrors.CodeConflict, dErrors.CodeInvariantViolation:
		return http.StatusConflict
	case dErrors.CodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
