package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireCustomList(
	r chi.Router,
	customListHandler *adaptor.CustomListHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/custom-lists/public - Browse public lists
	r.Get("/api/custom-lists/public", customListHandler.GetPublicLists)

	// GET /api/custom-lists/{id} - One list with movies. Private lists resolve
	// for their owner only, so the session is read when present.
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthOptional(repo.Session, log))
		r.Get("/api/custom-lists/{id}", customListHandler.GetList)
	})

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/custom-lists - Create a list
		r.Post("/api/custom-lists", customListHandler.CreateList)

		// GET /api/custom-lists - Own lists with movie counts
		r.Get("/api/custom-lists", customListHandler.GetOwnLists)

		// PUT /api/custom-lists/{id} - Update list (owner only)
		r.Put("/api/custom-lists/{id}", customListHandler.UpdateList)

		// DELETE /api/custom-lists/{id} - Delete list; entries cascade
		r.Delete("/api/custom-lists/{id}", customListHandler.DeleteList)

		// POST /api/custom-lists/{id}/movies - Add a movie (owner only)
		r.Post("/api/custom-lists/{id}/movies", customListHandler.AddMovie)

		// DELETE /api/custom-lists/{id}/movies/{movieId} - Remove a movie (owner only)
		r.Delete("/api/custom-lists/{id}/movies/{movieId}", customListHandler.RemoveMovie)
	})
}
