package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/auth"
	"skillswap_server/models"
	"skillswap_server/services"
)

// UserController handles the directory, search, and profile edits
type UserController struct {
	Users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{Users: users}
}

// GetAllUsers returns every account except the caller's
func (c *UserController) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	profiles, err := c.Users.ListOthers(r.Context(), user.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profiles)
}

// SearchUsers matches ?q= against names and skill tags, excluding the caller
func (c *UserController) SearchUsers(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	query := r.URL.Query().Get("q")

	profiles, err := c.Users.Search(r.Context(), user.UserID, query)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, profiles)
}

// UpdateProfile applies a partial edit to the caller's own profile
func (c *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	updated, err := c.Users.UpdateProfile(r.Context(), user.UserID, update)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, updated.Public())
}
