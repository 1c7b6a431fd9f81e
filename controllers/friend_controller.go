package controllers

import (
	"encoding/json"
	"net/http"

	"wishlink_server/services"

	"github.com/gorilla/mux"
)

type FriendController struct {
	FriendService *services.FriendService
}

// AddFriendHandler links two users by friend code
func (c *FriendController) AddFriendHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId" validate:"required"` // Acting user
		Code   string `json:"code" validate:"required,numeric,len=6"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.FriendService.AddFriend(r.Context(), payload.UserID, payload.Code); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Friend added successfully"})
}

// GetFriendsHandler lists the user's friends with display names and photos
func (c *FriendController) GetFriendsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	friends, err := c.FriendService.GetFriends(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, friends)
}
