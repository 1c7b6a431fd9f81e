package routes

import (
	"wishlink_server/controllers"
	"wishlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterActivityRoutes registers activity routes under `/api/activity`
func RegisterActivityRoutes(router *mux.Router, activityService *services.ActivityService) {
	controller := &controllers.ActivityController{ActivityService: activityService}

	activityRouter := router.PathPrefix("/api/activity").Subrouter()
	activityRouter.HandleFunc("/{userId}", controller.GetActivitiesHandler).Methods("GET") // Fetch feed
	activityRouter.HandleFunc("", controller.ClearActivityHandler).Methods("DELETE")       // Dismiss one record
}
