package controllers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"skillswap_server/services"

	"github.com/stretchr/testify/assert"
)

// Validation happens before any service call, so a zero-value service is safe
// for these cases.
func newTestAuthController() *AuthController {
	return NewAuthController(&services.UserService{}, []byte("test-secret"))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	controller := newTestAuthController()

	tests := []struct {
		name string
		body string
	}{
		{"no name", `{"email":"ann@x.io","password":"pw1"}`},
		{"no email", `{"name":"Ann","password":"pw1"}`},
		{"no password", `{"name":"Ann","email":"ann@x.io"}`},
		{"not json", `not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/api/auth/register", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			controller.Register(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestLoginRejectsMissingFields(t *testing.T) {
	controller := newTestAuthController()

	req := httptest.NewRequest("POST", "/api/auth/login", strings.NewReader(`{"email":"ann@x.io"}`))
	rec := httptest.NewRecorder()
	controller.Login(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
