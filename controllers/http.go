package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"skillswap_server/models"
)

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ Failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondServiceError translates service sentinel errors into HTTP statuses.
// Anything unclassified is logged and surfaced as a generic 500.
func respondServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrInvalidTransition):
		respondError(w, http.StatusBadRequest, "Request already resolved")
	case errors.Is(err, models.ErrUnauthorized):
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, models.ErrForbidden):
		respondError(w, http.StatusForbidden, "Not authorized")
	case errors.Is(err, models.ErrNotFound):
		respondError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, models.ErrEmailTaken):
		respondError(w, http.StatusConflict, "Email already in use")
	default:
		log.Printf("❌ Internal error: %v", err)
		respondError(w, http.StatusInternalServerError, "Server error")
	}
}
