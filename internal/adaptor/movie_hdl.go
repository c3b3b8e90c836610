package adaptor

import (
	"encoding/json"
	"net/http"
	"strings"

	"cinelog/internal/dto/request"
	"cinelog/internal/usecase"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MovieHandler struct {
	service usecase.MovieService
	log     *zap.Logger
}

func NewMovieHandler(service usecase.MovieService, log *zap.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie")),
	}
}

// GetMovie handles GET /api/movies/{id} (public)
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "id")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	movie, err := h.service.GetMovie(r.Context(), movieID)
	if err != nil {
		h.handleServiceError(w, err, "get movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// LookupMovie handles POST /api/movies/lookup (protected).
// Resolves an IMDB id to an internal movie row, creating it on first sight.
func (h *MovieHandler) LookupMovie(w http.ResponseWriter, r *http.Request) {
	var req request.LookupMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	movie, err := h.service.GetOrCreateMovie(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "lookup movie")
		return
	}

	utils.ResponseSuccess(w, "success", movie)
}

// handleServiceError handles errors untuk movie operations
func (h *MovieHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
