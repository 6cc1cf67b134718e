package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"solarcast/internal/forecast"
	"solarcast/internal/manager"
	"solarcast/pkg/types"
)

const (
	internalErrorDetail = "Internal server error"
	shuttingDownDetail  = "Server is shutting down"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps service errors to a status code and a client-safe message.
// Unknown errors become 500 with a generic message.
func statusFor(err error) (int, string) {
	switch {
	case manager.IsInvalidSelector(err), forecast.IsParseError(err), forecast.IsYearRange(err):
		return http.StatusBadRequest, err.Error()
	case manager.IsMissingField(err):
		return http.StatusUnprocessableEntity, err.Error()
	}
	var he HTTPError
	if errors.As(err, &he) {
		return he.StatusCode(), he.Error()
	}
	return http.StatusInternalServerError, internalErrorDetail
}

// writeJSON marshals v before writing so encoding failures can still become a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeJSONError(w, http.StatusInternalServerError, internalErrorDetail)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(append(b, '\n'))
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Detail: msg})
}
