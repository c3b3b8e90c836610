package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireReview(
	r chi.Router,
	reviewHandler *adaptor.ReviewHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews - Public review feed, newest first
	r.Get("/api/reviews", reviewHandler.GetPublicReviews)

	// GET /api/reviews/{id} - One public review with author + movie
	r.Get("/api/reviews/{id}", reviewHandler.GetReview)

	// GET /api/users/{id}/reviews - A user's public reviews
	r.Get("/api/users/{id}/reviews", reviewHandler.GetUserReviews)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/reviews - Create new review
		r.Post("/api/reviews", reviewHandler.CreateReview)

		// PUT /api/reviews/{id} - Update review (owner only)
		r.Put("/api/reviews/{id}", reviewHandler.UpdateReview)

		// DELETE /api/reviews/{id} - Delete review (owner only)
		r.Delete("/api/reviews/{id}", reviewHandler.DeleteReview)
	})
}
