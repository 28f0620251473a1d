package controllers

import (
	"encoding/json"
	"net/http"

	"skillswap_server/auth"
	"skillswap_server/services"

	"github.com/gorilla/mux"
)

// ChatController handles the persisted chat path. Live delivery is the
// websocket relay's job.
type ChatController struct {
	Chat *services.ChatService
}

func NewChatController(chat *services.ChatService) *ChatController {
	return &ChatController{Chat: chat}
}

// GetConversation returns all messages between the caller and a peer,
// oldest first.
func (c *ChatController) GetConversation(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	peerID := mux.Vars(r)["userId"]

	messages, err := c.Chat.GetConversation(r.Context(), user.UserID, peerID)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, messages)
}

// SendMessage persists a new chat message from the caller
func (c *ChatController) SendMessage(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())

	var payload struct {
		ToUser  string `json:"toUser"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.ToUser == "" || payload.Message == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields: toUser, message")
		return
	}

	message, err := c.Chat.SendMessage(r.Context(), user.UserID, payload.ToUser, payload.Message)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, message)
}
