package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"livecontent/internal/common"
)

// respondJSON writes a JSON response with the given status code. The payload
// is marshaled first so an encoding failure cannot produce a half-written
// body after headers are sent.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	payload, err := json.Marshal(data)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to encode response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}

// respondError writes an error response as {"error": "..."}.
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// mapError maps sentinel errors to HTTP status codes.
func mapError(err error) (int, string) {
	switch {
	case errors.Is(err, common.ErrUnauthorized):
		return http.StatusUnauthorized, "invalid token"
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, common.ErrInvalidPayload):
		return http.StatusBadRequest, "invalid payload"
	case errors.Is(err, common.ErrPayloadTooLarge):
		return http.StatusRequestEntityTooLarge, "payload too large"
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, common.ErrServerMisconfigured):
		return http.StatusInternalServerError, "server not configured"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// respondMapped writes the response for a service-layer error.
func respondMapped(w http.ResponseWriter, err error) {
	status, message := mapError(err)
	respondError(w, status, message)
}
