package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillswap_server/auth"
	"skillswap_server/models"
	"skillswap_server/services"

	"github.com/stretchr/testify/assert"
)

func authedRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	ctx := auth.ContextWithUser(req.Context(), &models.User{UserID: "caller-id", Name: "Caller"})
	return req.WithContext(ctx)
}

func TestCreateRequestRejectsMissingFields(t *testing.T) {
	controller := NewSkillRequestController(&services.SkillRequestService{})

	tests := []struct {
		name string
		body string
	}{
		{"no recipient", `{"skills":["Go"]}`},
		{"no skills", `{"toUserId":"bo-id"}`},
		{"empty skills", `{"toUserId":"bo-id","skills":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			controller.CreateRequest(rec, authedRequest("POST", "/api/skills/request", tt.body))
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestUpdateStatusRejectsInvalidStatus(t *testing.T) {
	controller := NewSkillRequestController(&services.SkillRequestService{})

	for _, status := range []string{"pending", "bogus", ""} {
		rec := httptest.NewRecorder()
		controller.UpdateStatus(rec, authedRequest("PUT", "/api/skills/abc/status", `{"status":"`+status+`"}`))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid status")
	}
}

func TestSendMessageRejectsMissingFields(t *testing.T) {
	controller := NewChatController(&services.ChatService{})

	for _, body := range []string{`{"toUser":"bo-id"}`, `{"message":"hi"}`, `{}`} {
		rec := httptest.NewRecorder()
		controller.SendMessage(rec, authedRequest("POST", "/api/chat", body))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}
