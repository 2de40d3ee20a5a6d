package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/user"
	"Agora/internal/api/middleware"
	"Agora/internal/core/users"
)

// RegisterUserRoutes registers account and session endpoints on the router
func RegisterUserRoutes(r chi.Router, service users.Service, authMiddleware *middleware.AuthMiddleware) {
	registerHandler := user.NewRegisterHandler(service)
	loginHandler := user.NewLoginHandler(service)
	refreshHandler := user.NewRefreshHandler(service)
	logoutHandler := user.NewLogoutHandler(service)

	r.Post("/api/users", registerHandler.HandleRegister)
	r.Post("/api/auth/login", loginHandler.HandleLogin)
	r.Post("/api/auth/refresh", refreshHandler.HandleRefresh)
	r.With(authMiddleware.RequireAuth).Post("/api/auth/logout", logoutHandler.HandleLogout)
}
