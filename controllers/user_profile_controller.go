package controllers

import (
	"encoding/json"
	"net/http"

	"wishlink_server/models"
	"wishlink_server/services"

	"github.com/gorilla/mux"
)

type UserProfileController struct {
	UserProfileService *services.UserProfileService
}

// CreateProfileHandler completes signup: the identity provider has issued a
// stable uid; this persists the profile document and allocates both codes.
func (c *UserProfileController) CreateProfileHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID    string `json:"userId" validate:"required"`
		FirstName string `json:"firstName" validate:"required"`
		Surname   string `json:"surname"`
		Email     string `json:"email" validate:"required,email"`
		Username  string `json:"username" validate:"omitempty,alphanum,min=3,max=20"`
		PhotoURL  string `json:"photoURL"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	profile := models.UserProfile{
		UserID:    payload.UserID,
		FirstName: payload.FirstName,
		Surname:   payload.Surname,
		Email:     payload.Email,
		Username:  payload.Username,
		PhotoURL:  payload.PhotoURL,
	}

	created, err := c.UserProfileService.AddUserProfile(r.Context(), profile)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, created)
}

// GetProfileHandler retrieves a profile by user id
func (c *UserProfileController) GetProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetUserProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// GetDashboardProfileHandler is the dashboard load: missing shareable codes
// are generated and persisted before the profile is returned
func (c *UserProfileController) GetDashboardProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	profile, err := c.UserProfileService.GetDashboardProfile(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// UpdateProfileHandler applies settings edits (name parts, username, photo,
// privacy flags)
func (c *UserProfileController) UpdateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	var payload struct {
		FirstName            *string `json:"firstName"`
		Surname              *string `json:"surname"`
		Username             *string `json:"username" validate:"omitempty,alphanum,min=3,max=20"`
		PhotoURL             *string `json:"photoURL"`
		PrivacyVisibility    *bool   `json:"privacyVisibility"`
		PrivacyNotifications *bool   `json:"privacyNotifications"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if payload.Username != nil {
		if err := validate.Struct(payload); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	}

	updates := map[string]interface{}{}
	if payload.FirstName != nil {
		updates["firstName"] = *payload.FirstName
	}
	if payload.Surname != nil {
		updates["surname"] = *payload.Surname
	}
	if payload.Username != nil {
		updates["username"] = *payload.Username
	}
	if payload.PhotoURL != nil {
		updates["photoURL"] = *payload.PhotoURL
	}
	if payload.PrivacyVisibility != nil {
		updates["privacyVisibility"] = *payload.PrivacyVisibility
	}
	if payload.PrivacyNotifications != nil {
		updates["privacyNotifications"] = *payload.PrivacyNotifications
	}
	if len(updates) == 0 {
		http.Error(w, "No fields to update", http.StatusBadRequest)
		return
	}

	updated, err := c.UserProfileService.UpdateUserProfile(r.Context(), userID, updates)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
