package controllers

import (
	"encoding/json"
	"net/http"

	"wishlink_server/services"

	"github.com/gorilla/mux"
)

type ActivityController struct {
	ActivityService *services.ActivityService
}

// GetActivitiesHandler returns the target user's feed, newest first
func (c *ActivityController) GetActivitiesHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	activities, err := c.ActivityService.GetActivitiesForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, activities)
}

// ClearActivityHandler dismisses a single record from the feed
func (c *ActivityController) ClearActivityHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID    string `json:"userId" validate:"required"`
		CreatedAt string `json:"createdAt" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.ActivityService.ClearActivity(r.Context(), payload.UserID, payload.CreatedAt); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Activity cleared"})
}
