package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/auth"
	"skillswap_server/models"
	"skillswap_server/services"
)

// AuthController handles registration, login, and the caller's own profile
type AuthController struct {
	Users  *services.UserService
	Secret []byte
}

func NewAuthController(users *services.UserService, secret []byte) *AuthController {
	return &AuthController{Users: users, Secret: secret}
}

type authResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
	Token  string   `json:"token"`
}

// Register creates an account and returns its public fields plus a token
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name     string   `json:"name"`
		Email    string   `json:"email"`
		Password string   `json:"password"`
		Skills   []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Name == "" || payload.Email == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide name, email, and password")
		return
	}

	user, err := c.Users.Register(r.Context(), payload.Name, payload.Email, payload.Password, payload.Skills)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	c.respondWithToken(w, http.StatusCreated, user)
}

// Login verifies credentials and returns the same shape as Register
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Email == "" || payload.Password == "" {
		respondError(w, http.StatusBadRequest, "Please provide email and password")
		return
	}

	user, err := c.Users.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	c.respondWithToken(w, http.StatusOK, user)
}

// Me returns the caller's own public profile
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	respondJSON(w, http.StatusOK, user.Public())
}

func (c *AuthController) respondWithToken(w http.ResponseWriter, status int, user *models.User) {
	token, err := auth.GenerateToken(user.UserID, c.Secret, auth.TokenValidity)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, status, authResponse{
		ID:     user.UserID,
		Name:   user.Name,
		Email:  user.EmailID,
		Skills: user.Skills,
		Token:  token,
	})
}
