package routes

import (
	"wishlink_server/controllers"
	"wishlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterSearchRoutes sets up the omni-search endpoint
func RegisterSearchRoutes(router *mux.Router, searchService *services.SearchService) {
	controller := &controllers.SearchController{SearchService: searchService}

	router.HandleFunc("/api/search", controller.SearchHandler).Methods("GET")
}
