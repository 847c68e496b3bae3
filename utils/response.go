package utils

import (
	"encoding/json"
	"log"
	"net/http"

	"recipebook/apperr"
)

// RespondWithError writes the uniform error body used by every route.
func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// RespondWithAppError maps a contract error to its HTTP status and body.
// Store failures are the only kind logged with detail; the caller just sees
// a generic message for those.
func RespondWithAppError(w http.ResponseWriter, err error) {
	if apperr.KindOf(err) == apperr.StoreFailure {
		log.Printf("store failure: %v", err)
	}
	RespondWithError(w, apperr.Status(err), apperr.Message(err))
}

// RespondWithJSON sends a JSON response with the given status code.
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

type M map[string]interface{}
