package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"

	"skillswap_server/auth"
	"skillswap_server/routes"
	"skillswap_server/services"
	"skillswap_server/socket"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

func main() {
	// Initialize DynamoDB client and service
	log.Println("Initializing DynamoDB client...")
	dynamoClient := services.InitializeDynamoDBClient()
	dynamoService := &services.DynamoService{Client: dynamoClient}
	log.Println("DynamoDB client initialized.")

	// Token signing secret
	secret := []byte(os.Getenv("JWT_SECRET"))
	if len(secret) == 0 {
		log.Fatal("JWT_SECRET must be set")
	}

	// Initialize services
	userService := &services.UserService{Dynamo: dynamoService}
	skillRequestService := &services.SkillRequestService{Dynamo: dynamoService, Users: userService}
	chatService := &services.ChatService{Dynamo: dynamoService}

	s3Service, err := services.NewS3Service(os.Getenv("AWS_REGION"), os.Getenv("S3_BUCKET_NAME"))
	if err != nil {
		log.Fatalf("Failed to initialize S3 service: %v", err)
	}

	// Authorization guard shared by all protected routes
	guard := auth.Middleware(secret, userService)

	// Set up the server port
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Allowed origin for cross-origin calls and the websocket upgrade
	origin := os.Getenv("CLIENT_ORIGIN")
	if origin == "" {
		origin = "*"
	}

	// Initialize the router
	r := mux.NewRouter()

	// Register a welcome route
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintln(w, "Welcome to SkillSwap")
	}).Methods("GET")

	// Register a health check endpoint
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}).Methods("GET")

	// Register routes
	routes.RegisterAuthRoutes(r, userService, secret, guard)
	routes.RegisterUserRoutes(r, userService, s3Service, guard)
	routes.RegisterSkillRoutes(r, skillRequestService, guard)
	routes.RegisterChatRoutes(r, chatService, guard)

	// Realtime relay
	hub := socket.NewHub()
	r.HandleFunc("/ws", socket.ServeWS(hub, origin))

	// Add CORS middleware
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{origin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}).Handler(r)

	// Start the HTTP server
	log.Printf("Starting server on port %s...\n", port)
	log.Fatal(http.ListenAndServe(":"+port, corsHandler))
}
