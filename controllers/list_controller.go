package controllers

import (
	"encoding/json"
	"net/http"

	"wishlink_server/services"

	"github.com/gorilla/mux"
)

type ListController struct {
	ListService *services.ListService
}

// CreateListHandler creates a list owned by the acting user
func (c *ListController) CreateListHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID   string   `json:"userId" validate:"required"` // Acting user, becomes owner
		Title    string   `json:"title"`
		Members  []string `json:"members"`
		Category string   `json:"category"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := c.ListService.CreateList(r.Context(), payload.UserID, payload.Title, payload.Members, payload.Category)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, list)
}

// JoinListHandler adds the acting user to the list an invite code resolves to
func (c *ListController) JoinListHandler(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID string `json:"userId" validate:"required"`
		Code   string `json:"code" validate:"required,numeric,len=5"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	list, err := c.ListService.JoinListByInviteCode(r.Context(), payload.UserID, payload.Code)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, list)
}

// GetUserListsHandler returns the user's lists grouped personal/paired/group
func (c *ListController) GetUserListsHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userId"]

	lists, err := c.ListService.GetListsForUser(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, lists)
}

// RenameListHandler sets a new title (owner-only)
func (c *ListController) RenameListHandler(w http.ResponseWriter, r *http.Request) {
	listID := mux.Vars(r)["listId"]

	var payload struct {
		UserID string `json:"userId" validate:"required"`
		Title  string `json:"title" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.ListService.RenameList(r.Context(), payload.UserID, listID, payload.Title); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "List renamed successfully"})
}

// DeleteListHandler deletes the list document (owner-only)
func (c *ListController) DeleteListHandler(w http.ResponseWriter, r *http.Request) {
	listID := mux.Vars(r)["listId"]
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	if err := c.ListService.DeleteList(r.Context(), userID, listID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "List deleted successfully"})
}

// AddMemberHandler adds a user to the member set (owner-only)
func (c *ListController) AddMemberHandler(w http.ResponseWriter, r *http.Request) {
	listID := mux.Vars(r)["listId"]

	var payload struct {
		UserID   string `json:"userId" validate:"required"` // Acting user (must be owner)
		MemberID string `json:"memberId" validate:"required"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := c.ListService.AddMember(r.Context(), payload.UserID, listID, payload.MemberID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Member added successfully"})
}

// RemoveMemberHandler removes a user from the member set (owner-only)
func (c *ListController) RemoveMemberHandler(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	listID := vars["listId"]
	memberID := vars["memberId"]
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	if err := c.ListService.RemoveMember(r.Context(), userID, listID, memberID); err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Member removed successfully"})
}
