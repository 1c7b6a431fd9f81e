package controllers

import (
	"net/http"

	"wishlink_server/services"
)

type SearchController struct {
	SearchService *services.SearchService
}

// SearchHandler fuzzy-searches the acting user's friends and lists
func (c *SearchController) SearchHandler(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	term := r.URL.Query().Get("q")

	if userID == "" {
		http.Error(w, "Missing userId", http.StatusBadRequest)
		return
	}

	results, err := c.SearchService.Search(r.Context(), userID, term)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, results)
}
