package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProfile(
	r chi.Router,
	profileHandler *adaptor.ProfileHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/users/{id} - View a profile by user id
	r.Get("/api/users/{id}", profileHandler.GetProfileByID)

	// GET /api/profiles/{username} - View a profile by username
	r.Get("/api/profiles/{username}", profileHandler.GetProfileByUsername)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/profile - View own profile
		r.Get("/api/profile", profileHandler.GetOwnProfile)

		// PUT /api/profile - Update own profile (username/display_name/bio/avatar)
		r.Put("/api/profile", profileHandler.UpdateProfile)
	})
}
