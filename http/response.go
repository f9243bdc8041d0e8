package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"refinance-agent/client"
	"refinance-agent/logger"
)

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// writeJSON encodes into a buffer first so a failed encode does not leave a
// half-written 200 behind.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("error writing response", "error", err)
	}
}

// writeError maps upstream and request failures onto a status code.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorStatus(err)

	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed", "error", err, "status", status)
	} else {
		log.Warn("request rejected", "error", err, "status", status)
	}

	writeJSON(w, status, body)
}

func errorStatus(err error) (int, errorResponse) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, client.ErrMissingAuthorization):
		return http.StatusUnauthorized, errorResponse{Error: "Authorization header is required"}
	case errors.As(err, &apiErr):
		status := apiErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, errorResponse{Error: apiErr.Message, Details: apiErr.Details}
	case errors.Is(err, client.ErrUpstream):
		return http.StatusBadGateway, errorResponse{Error: "bank API is unavailable"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
	}
}
