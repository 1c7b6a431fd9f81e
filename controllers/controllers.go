package controllers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"wishlink_server/services"

	"github.com/go-playground/validator/v10"
)

// validate checks request payload constraints declared via struct tags
var validate = validator.New()

// respondJSON writes a JSON response with the given status code
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

// handleServiceError maps service errors onto HTTP statuses
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrNotOwner):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, services.ErrAlreadyMember),
		errors.Is(err, services.ErrAlreadyFriends),
		errors.Is(err, services.ErrSelfCode),
		errors.Is(err, services.ErrCannotRemoveOwner):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, services.ErrPhotoTooLarge):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Printf("Internal error: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
