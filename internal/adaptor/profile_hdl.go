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

type ProfileHandler struct {
	service usecase.ProfileService
	log     *zap.Logger
}

func NewProfileHandler(service usecase.ProfileService, log *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		service: service,
		log:     log.With(zap.String("handler", "profile")),
	}
}

// GetOwnProfile handles GET /api/profile (protected)
func (h *ProfileHandler) GetOwnProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID.String())
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetProfileByID handles GET /api/users/{id} (public)
func (h *ProfileHandler) GetProfileByID(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	profile, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// GetProfileByUsername handles GET /api/profiles/{username} (public)
func (h *ProfileHandler) GetProfileByUsername(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")
	if username == "" {
		utils.ResponseBadRequest(w, "Username is required", nil)
		return
	}

	profile, err := h.service.GetProfileByUsername(r.Context(), username)
	if err != nil {
		h.handleServiceError(w, err, "get profile by username")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// UpdateProfile handles PUT /api/profile (protected)
func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	profile, err := h.service.UpdateProfile(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update profile")
		return
	}

	utils.ResponseSuccess(w, "success", profile)
}

// handleServiceError handles errors untuk profile operations
func (h *ProfileHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg)

	case strings.Contains(errMsg, "already taken"):
		h.log.Warn(operation+" failed - username taken", zap.Error(err))
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
