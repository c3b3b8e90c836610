package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSavedList(
	r chi.Router,
	savedListHandler *adaptor.SavedListHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	// Saved lists are private to their owner.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/lists/{type} - Own watchlist/favorites/watched with movies
		r.Get("/api/lists/{type}", savedListHandler.GetList)

		// POST /api/lists/{type}/movies - Add a movie to the list
		r.Post("/api/lists/{type}/movies", savedListHandler.AddToList)

		// DELETE /api/lists/{type}/movies/{movieId} - Remove a movie from the list
		r.Delete("/api/lists/{type}/movies/{movieId}", savedListHandler.RemoveFromList)
	})
}
