package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterChatRoutes sets up the persisted chat routes under /api/chat
func RegisterChatRoutes(r *mux.Router, chat *services.ChatService, guard mux.MiddlewareFunc) {
	controller := controllers.NewChatController(chat)

	chatRouter := r.PathPrefix("/api/chat").Subrouter()
	chatRouter.Use(guard)

	chatRouter.HandleFunc("", controller.SendMessage).Methods("POST")
	chatRouter.HandleFunc("/{userId}", controller.GetConversation).Methods("GET")
}
