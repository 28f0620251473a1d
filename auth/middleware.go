package auth

import (
	"context"
	"net/http"
	"strings"

	"skillswap_server/models"

	"github.com/gorilla/mux"
)

type contextKey string

const userContextKey contextKey = "user"

// AccountLoader resolves a token's account id to the stored account.
// *services.UserService satisfies it.
type AccountLoader interface {
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
}

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if the request did not pass through the middleware.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// ContextWithUser returns a context carrying the authenticated user
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// Middleware returns a mux middleware that requires a valid bearer token,
// loads the referenced account, and injects it into the request context.
// Missing token, bad signature, expiry, and a vanished account all yield 401.
func Middleware(secret []byte, users AccountLoader) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString := bearerToken(r)
			if tokenString == "" {
				unauthorized(w)
				return
			}

			userID, err := ParseToken(tokenString, secret)
			if err != nil {
				unauthorized(w)
				return
			}

			user, err := users.GetUserByID(r.Context(), userID)
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(header, "Bearer ")
}

func unauthorized(w http.ResponseWriter) {
	http.Error(w, `{"error": "Not authorized"}`, http.StatusUnauthorized)
}
