package routes

import (
	"net/http"

	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterAuthRoutes sets up routes for registration, login, and /me under
// /api/auth. Register and login are the only unauthenticated API routes.
func RegisterAuthRoutes(r *mux.Router, users *services.UserService, secret []byte, guard mux.MiddlewareFunc) {
	controller := controllers.NewAuthController(users, secret)

	authRouter := r.PathPrefix("/api/auth").Subrouter()
	authRouter.HandleFunc("/register", controller.Register).Methods("POST")
	authRouter.HandleFunc("/login", controller.Login).Methods("POST")
	authRouter.Handle("/me", guard(http.HandlerFunc(controller.Me))).Methods("GET")
}
