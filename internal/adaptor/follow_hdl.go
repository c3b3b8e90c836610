package adaptor

import (
	"net/http"
	"strings"

	"cinelog/internal/usecase"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type FollowHandler struct {
	service usecase.FollowService
	log     *zap.Logger
}

func NewFollowHandler(service usecase.FollowService, log *zap.Logger) *FollowHandler {
	return &FollowHandler{
		service: service,
		log:     log.With(zap.String("handler", "follow")),
	}
}

// FollowUser handles POST /api/users/{id}/follow (protected)
func (h *FollowHandler) FollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	followingID := chi.URLParam(r, "id")
	if followingID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	follow, err := h.service.FollowUser(r.Context(), userID.String(), followingID)
	if err != nil {
		h.handleServiceError(w, err, "follow user")
		return
	}

	utils.ResponseCreated(w, "success", follow)
}

// UnfollowUser handles DELETE /api/users/{id}/follow (protected)
func (h *FollowHandler) UnfollowUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	followingID := chi.URLParam(r, "id")
	if followingID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	if err := h.service.UnfollowUser(r.Context(), userID.String(), followingID); err != nil {
		h.handleServiceError(w, err, "unfollow user")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetFollowers handles GET /api/users/{id}/followers (public)
func (h *FollowHandler) GetFollowers(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	followers, err := h.service.GetFollowers(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get followers")
		return
	}

	utils.ResponseSuccess(w, "success", followers)
}

// GetFollowing handles GET /api/users/{id}/following (public)
func (h *FollowHandler) GetFollowing(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	following, err := h.service.GetFollowing(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get following")
		return
	}

	utils.ResponseSuccess(w, "success", following)
}

// IsFollowing handles GET /api/users/{id}/follow (protected)
func (h *FollowHandler) IsFollowing(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	followingID := chi.URLParam(r, "id")
	if followingID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	state, err := h.service.IsFollowing(r.Context(), userID.String(), followingID)
	if err != nil {
		h.handleServiceError(w, err, "check follow state")
		return
	}

	utils.ResponseSuccess(w, "success", state)
}

// handleServiceError handles errors untuk follow operations
func (h *FollowHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already following"):
		h.log.Warn(operation+" failed - duplicate edge", zap.Error(err))
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
