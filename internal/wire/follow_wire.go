package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireFollow(
	r chi.Router,
	followHandler *adaptor.FollowHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/users/{id}/followers - Who follows this user
	r.Get("/api/users/{id}/followers", followHandler.GetFollowers)

	// GET /api/users/{id}/following - Who this user follows
	r.Get("/api/users/{id}/following", followHandler.GetFollowing)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/users/{id}/follow - Follow a user
		r.Post("/api/users/{id}/follow", followHandler.FollowUser)

		// DELETE /api/users/{id}/follow - Unfollow a user
		r.Delete("/api/users/{id}/follow", followHandler.UnfollowUser)

		// GET /api/users/{id}/follow - Am I following this user
		r.Get("/api/users/{id}/follow", followHandler.IsFollowing)
	})
}
