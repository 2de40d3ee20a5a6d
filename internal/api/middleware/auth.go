package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"Agora/internal/api/handlers"
	"Agora/internal/auth"
)

type contextKey string

const userIDKey contextKey = "userID"

// AuthMiddleware verifies bearer tokens and injects the authenticated
// user id into the request context
type AuthMiddleware struct {
	provider *auth.Provider
}

// NewAuthMiddleware creates auth middleware backed by the token provider
func NewAuthMiddleware(provider *auth.Provider) *AuthMiddleware {
	return &AuthMiddleware{provider: provider}
}

// RequireAuth rejects requests without a valid bearer token
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := m.verify(r)
		if !ok {
			handlers.WriteError(w, http.StatusUnauthorized, "AuthRequired", "Authentication required")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}

// OptionalAuth injects the user id when a valid token is present and
// passes the request through anonymously otherwise
func (m *AuthMiddleware) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := m.verify(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, userID))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *AuthMiddleware) verify(r *http.Request) (int64, bool) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return 0, false
	}
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return 0, false
	}

	userID, err := m.provider.Verify(raw)
	if err != nil {
		slog.Debug("token verification failed", "error", err)
		return 0, false
	}
	return userID, true
}

// GetUserID returns the authenticated user id from the request context,
// or 0 for anonymous requests
func GetUserID(r *http.Request) int64 {
	if id, ok := r.Context().Value(userIDKey).(int64); ok {
		return id
	}
	return 0
}
