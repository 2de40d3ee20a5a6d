package routes

import (
	"github.com/go-chi/chi/v5"

	"Agora/internal/api/handlers/board"
	"Agora/internal/core/boards"
)

// RegisterBoardRoutes registers board lookup endpoints on the router
func RegisterBoardRoutes(r chi.Router, service boards.Service) {
	listHandler := board.NewListBoardsHandler(service)
	getHandler := board.NewGetBoardHandler(service)

	r.Get("/api/boards", listHandler.HandleListBoards)
	r.Get("/api/boards/{slug}", getHandler.HandleGetBoard)
}
