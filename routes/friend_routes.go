package routes

import (
	"wishlink_server/controllers"
	"wishlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterFriendRoutes registers friend routes under `/api/friends`
func RegisterFriendRoutes(router *mux.Router, friendService *services.FriendService) {
	controller := &controllers.FriendController{FriendService: friendService}

	friendRouter := router.PathPrefix("/api/friends").Subrouter()
	friendRouter.HandleFunc("", controller.AddFriendHandler).Methods("POST")            // Add friend by code
	friendRouter.HandleFunc("/{userId}", controller.GetFriendsHandler).Methods("GET")   // List friends
}
