package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/auth"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// SkillRequestController handles the skill-exchange request lifecycle
type SkillRequestController struct {
	Requests *services.SkillRequestService
}

func NewSkillRequestController(requests *services.SkillRequestService) *SkillRequestController {
	return &SkillRequestController{Requests: requests}
}

// CreateRequest sends a new pending skill request to another user
func (c *SkillRequestController) CreateRequest(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var payload struct {
		ToUserID string   `json:"toUserId"`
		Skills   []string `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.ToUserID == "" || len(payload.Skills) == 0 {
		respondError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	request, err := c.Requests.CreateRequest(r.Context(), user.UserID, payload.ToUserID, payload.Skills)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Skill request sent successfully!",
		"request": request,
	})
}

// GetReceived lists requests addressed to the caller, newest first
func (c *SkillRequestController) GetReceived(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	requests, err := c.Requests.ListReceived(r.Context(), user.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// GetSent lists requests the caller sent, newest first
func (c *SkillRequestController) GetSent(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	requests, err := c.Requests.ListSent(r.Context(), user.UserID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, requests)
}

// UpdateStatus accepts or rejects a pending request addressed to the caller
func (c *SkillRequestController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	requestID := mux.Vars(r)["id"]

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if !models.IsTerminalStatus(payload.Status) {
		respondError(w, http.StatusBadRequest, "Invalid status")
		return
	}

	if err := c.Requests.SetStatus(r.Context(), user.UserID, requestID, payload.Status); err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "Request " + payload.Status})
}
