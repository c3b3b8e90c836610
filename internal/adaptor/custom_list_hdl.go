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

type CustomListHandler struct {
	service usecase.CustomListService
	log     *zap.Logger
}

func NewCustomListHandler(service usecase.CustomListService, log *zap.Logger) *CustomListHandler {
	return &CustomListHandler{
		service: service,
		log:     log.With(zap.String("handler", "custom_list")),
	}
}

// CreateList handles POST /api/custom-lists (protected)
func (h *CustomListHandler) CreateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCustomListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	list, err := h.service.CreateList(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create list")
		return
	}

	utils.ResponseCreated(w, "success", list)
}

// GetOwnLists handles GET /api/custom-lists (protected, own lists with counts)
func (h *CustomListHandler) GetOwnLists(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	lists, err := h.service.GetUserLists(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get own lists")
		return
	}

	utils.ResponseSuccess(w, "success", lists)
}

// GetPublicLists handles GET /api/custom-lists/public (public browse)
func (h *CustomListHandler) GetPublicLists(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r.URL.Query().Get("limit"), usecase.DefaultPublicListLimit, 100)

	lists, err := h.service.GetPublicLists(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, err, "get public lists")
		return
	}

	utils.ResponseSuccess(w, "success", lists)
}

// GetList handles GET /api/custom-lists/{id}.
// Public lists resolve for anyone; private lists only for their owner,
// so the viewer is taken from the session when one is present.
func (h *CustomListHandler) GetList(w http.ResponseWriter, r *http.Request) {
	listID := chi.URLParam(r, "id")
	if listID == "" {
		utils.ResponseBadRequest(w, "List ID is required", nil)
		return
	}

	viewerID := ""
	if userID, ok := utils.GetUserIDFromContext(r.Context()); ok {
		viewerID = userID.String()
	}

	list, err := h.service.GetListByID(r.Context(), listID, viewerID)
	if err != nil {
		h.handleServiceError(w, err, "get list")
		return
	}

	utils.ResponseSuccess(w, "success", list)
}

// UpdateList handles PUT /api/custom-lists/{id} (protected, owner only)
func (h *CustomListHandler) UpdateList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listID := chi.URLParam(r, "id")
	if listID == "" {
		utils.ResponseBadRequest(w, "List ID is required", nil)
		return
	}

	var req request.UpdateCustomListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	list, err := h.service.UpdateList(r.Context(), listID, userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update list")
		return
	}

	utils.ResponseSuccess(w, "success", list)
}

// DeleteList handles DELETE /api/custom-lists/{id} (protected, owner only)
func (h *CustomListHandler) DeleteList(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listID := chi.URLParam(r, "id")
	if listID == "" {
		utils.ResponseBadRequest(w, "List ID is required", nil)
		return
	}

	if err := h.service.DeleteList(r.Context(), listID, userID.String()); err != nil {
		h.handleServiceError(w, err, "delete list")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// AddMovie handles POST /api/custom-lists/{id}/movies (protected, owner only)
func (h *CustomListHandler) AddMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listID := chi.URLParam(r, "id")
	if listID == "" {
		utils.ResponseBadRequest(w, "List ID is required", nil)
		return
	}

	var req request.AddListMovieRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	entry, err := h.service.AddMovieToList(r.Context(), listID, userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "add movie to list")
		return
	}

	utils.ResponseCreated(w, "success", entry)
}

// RemoveMovie handles DELETE /api/custom-lists/{id}/movies/{movieId} (protected, owner only)
func (h *CustomListHandler) RemoveMovie(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	listID := chi.URLParam(r, "id")
	movieID := chi.URLParam(r, "movieId")
	if listID == "" || movieID == "" {
		utils.ResponseBadRequest(w, "List ID and movie ID are required", nil)
		return
	}

	if err := h.service.RemoveMovieFromList(r.Context(), listID, movieID, userID.String()); err != nil {
		h.handleServiceError(w, err, "remove movie from list")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk custom list operations
func (h *CustomListHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already in list"):
		h.log.Warn(operation+" failed - duplicate entry", zap.Error(err))
		utils.ResponseConflict(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"):
		h.log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
