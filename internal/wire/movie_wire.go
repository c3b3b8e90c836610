package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireMovie(
	r chi.Router,
	movieHandler *adaptor.MovieHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/movies/{id} - View movie details
	r.Get("/api/movies/{id}", movieHandler.GetMovie)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/movies/lookup - Resolve an IMDB id, creating the row on first sight
		r.Post("/api/movies/lookup", movieHandler.LookupMovie)
	})
}
