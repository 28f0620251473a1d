package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterSkillRoutes sets up the skill-request routes under /api/skills
func RegisterSkillRoutes(r *mux.Router, requests *services.SkillRequestService, guard mux.MiddlewareFunc) {
	controller := controllers.NewSkillRequestController(requests)

	skillRouter := r.PathPrefix("/api/skills").Subrouter()
	skillRouter.Use(guard)

	skillRouter.HandleFunc("/request", controller.CreateRequest).Methods("POST")
	skillRouter.HandleFunc("/received", controller.GetReceived).Methods("GET")
	skillRouter.HandleFunc("/sent", controller.GetSent).Methods("GET")
	skillRouter.HandleFunc("/{id}/status", controller.UpdateStatus).Methods("PUT")
}
