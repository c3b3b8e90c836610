// internal/wire/wire.go
package wire

import (
	"net/http"

	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/internal/realtime"
	"cinelog/internal/usecase"
	"cinelog/pkg/database"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App menyimpan semua dependencies
type App struct {
	Router *chi.Mux
}

// Wiring menginisialisasi semua dependencies
func Wiring(db database.PgxIface, repo *repository.Repository, hub *realtime.Hub, config *utils.Config, logger *zap.Logger) *App {
	// Initialize services dan handlers
	service := usecase.NewService(db, repo, config, logger)
	handler := adaptor.NewHandler(service, hub, logger)

	// Setup router
	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter konfigurasi Chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Apply routes
	wireAuth(r, handler.Auth, repo, config, logger)
	wireProfile(r, handler.Profile, repo, config, logger)
	wireMovie(r, handler.Movie, repo, config, logger)
	wireReview(r, handler.Review, repo, config, logger)
	wireComment(r, handler.Comment, repo, config, logger)
	wireFollow(r, handler.Follow, repo, config, logger)
	wireSavedList(r, handler.SavedList, repo, config, logger)
	wireCustomList(r, handler.CustomList, repo, config, logger)
	wireRealtime(r, handler.Realtime, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
