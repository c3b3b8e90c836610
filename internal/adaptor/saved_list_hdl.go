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

// SavedListHandler covers the three fixed lists: watchlist, favorites, watched.
type SavedListHandler struct {
	service usecase.SavedListService
	log     *zap.Logger
}

func NewSavedListHandler(service usecase.SavedListService, log *zap.Logger) *SavedListHandler {
	return &SavedListHandler{
		service: service,
		log:     log.With(zap.String("handler", "saved_list")),
	}
}

// AddToList handles POST /api/lists/{type}/movies (protected)
func (h *SavedListHandler) AddToList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listType := chi.URLParam(r, "type")

	var req request.AddToListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}
	req.ListType = listType

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	saved, err := h.service.AddToList(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add to list")
		return
	}

	utils.ResponseCreated(w, "success", saved)
}

// RemoveFromList handles DELETE /api/lists/{type}/movies/{movieId} (protected)
func (h *SavedListHandler) RemoveFromList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listType := chi.URLParam(r, "type")
	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	if err := h.service.RemoveFromList(r.Context(), userID.String(), movieID, listType); err != nil {
		h.handleServiceError(w, err, "remove from list")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetList handles GET /api/lists/{type} (protected, own list)
func (h *SavedListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listType := chi.URLParam(r, "type")

	entries, err := h.service.GetUserList(r.Context(), userID.String(), listType)
	if err != nil {
		h.handleServiceError(w, err, "get list")
		return
	}

	utils.ResponseSuccess(w, "success", entries)
}

// handleServiceError handles errors untuk saved list operations
func (h *SavedListHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already in"):
		h.log.Warn(operation+" failed - duplicate entry", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation, zap.Error(err), zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
