package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"wishlink_server/config"
	"wishlink_server/routes"
	"wishlink_server/services"
	"wishlink_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	cfg := config.Load()

	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient(cfg.AWSRegion)
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Socket.IO server delivers activity snapshots to subscribed sessions
	socketServer := socket.NewSocketServer()
	go func() {
		if err := socketServer.Serve(); err != nil {
			log.Fatalf("Socket server error: %v", err)
		}
	}()
	defer socketServer.Close()

	// Initialize Services
	codeService := &services.CodeService{Dynamo: dynamoService}
	userProfileService := &services.UserProfileService{Dynamo: dynamoService, Codes: codeService}
	activityService := &services.ActivityService{
		Dynamo:   dynamoService,
		Notifier: &socket.ActivityBroadcaster{Server: socketServer},
	}
	friendService := &services.FriendService{
		Dynamo:   dynamoService,
		Profiles: userProfileService,
		Activity: activityService,
	}
	listService := &services.ListService{
		Dynamo:   dynamoService,
		Codes:    codeService,
		Profiles: userProfileService,
		Activity: activityService,
	}
	searchService := &services.SearchService{Friends: friendService, Lists: listService}
	s3Service := services.NewS3Service(cfg.AWSRegion, cfg.S3BucketName)

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to Wishlink")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		response := map[string]string{"status": "healthy"}
		json.NewEncoder(w).Encode(response)
	}).Methods("GET")

	// Register routes
	routes.RegisterUserProfileRoutes(r, userProfileService)
	routes.RegisterFriendRoutes(r, friendService)
	routes.RegisterListRoutes(r, listService)
	routes.RegisterActivityRoutes(r, activityService)
	routes.RegisterSearchRoutes(r, searchService)
	routes.RegisterS3Routes(r, s3Service)

	// Mount the socket endpoint
	r.Handle("/socket.io/", socketServer)

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Adjust for specific domains if needed
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, corsHandler))
}
