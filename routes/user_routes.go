package routes

import (
	"skillswap_server/controllers"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// RegisterUserRoutes sets up the directory, search, profile, and avatar
// routes under /api/users. All of them require authentication.
func RegisterUserRoutes(r *mux.Router, users *services.UserService, s3 *services.S3Service, guard mux.MiddlewareFunc) {
	controller := controllers.NewUserController(users)
	s3Controller := controllers.NewS3Controller(s3)

	userRouter := r.PathPrefix("/api/users").Subrouter()
	userRouter.Use(guard)

	userRouter.HandleFunc("/all", controller.GetAllUsers).Methods("GET")
	userRouter.HandleFunc("/search", controller.SearchUsers).Methods("GET")
	userRouter.HandleFunc("/profile", controller.UpdateProfile).Methods("PUT")
	userRouter.HandleFunc("/avatar-upload-url", s3Controller.GenerateUploadURL).Methods("POST")
	userRouter.HandleFunc("/avatar-read-url", s3Controller.GenerateReadURL).Methods("POST")
}
