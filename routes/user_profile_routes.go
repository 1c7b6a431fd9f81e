package routes

import (
	"wishlink_server/controllers"
	"wishlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserProfileRoutes registers profile routes under `/api/profiles`
func RegisterUserProfileRoutes(router *mux.Router, userProfileService *services.UserProfileService) {
	controller := &controllers.UserProfileController{UserProfileService: userProfileService}

	profileRouter := router.PathPrefix("/api/profiles").Subrouter()
	profileRouter.HandleFunc("", controller.CreateProfileHandler).Methods("POST")                          // Complete signup
	profileRouter.HandleFunc("/{userId}", controller.GetProfileHandler).Methods("GET")                     // Fetch a profile
	profileRouter.HandleFunc("/{userId}/dashboard", controller.GetDashboardProfileHandler).Methods("GET")  // Dashboard load, backfills codes
	profileRouter.HandleFunc("/{userId}", controller.UpdateProfileHandler).Methods("PUT")                  // Settings edit
}
