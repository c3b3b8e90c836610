package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create account + profile
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Exchange credentials for a session token
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/logout - Revoke the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
