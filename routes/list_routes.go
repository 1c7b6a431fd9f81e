package routes

import (
	"wishlink_server/controllers"
	"wishlink_server/services"

	"github.com/gorilla/mux"
)

// RegisterListRoutes registers list routes under `/api/lists`
func RegisterListRoutes(router *mux.Router, listService *services.ListService) {
	controller := &controllers.ListController{ListService: listService}

	listRouter := router.PathPrefix("/api/lists").Subrouter()
	listRouter.HandleFunc("", controller.CreateListHandler).Methods("POST")                                // Create a list
	listRouter.HandleFunc("/join", controller.JoinListHandler).Methods("POST")                             // Join by invite code
	listRouter.HandleFunc("/user/{userId}", controller.GetUserListsHandler).Methods("GET")                 // Classified listing
	listRouter.HandleFunc("/{listId}/title", controller.RenameListHandler).Methods("PUT")                  // Rename (owner-only)
	listRouter.HandleFunc("/{listId}", controller.DeleteListHandler).Methods("DELETE")                     // Delete (owner-only)
	listRouter.HandleFunc("/{listId}/members", controller.AddMemberHandler).Methods("POST")                // Add member (owner-only)
	listRouter.HandleFunc("/{listId}/members/{memberId}", controller.RemoveMemberHandler).Methods("DELETE") // Remove member (owner-only)
}
