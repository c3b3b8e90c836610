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

type ReviewHandler struct {
	service usecase.ReviewService
	log     *zap.Logger
}

func NewReviewHandler(service usecase.ReviewService, log *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		log:     log.With(zap.String("handler", "review")),
	}
}

// CreateReview handles POST /api/reviews (protected)
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.CreateReview(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create review")
		return
	}

	utils.ResponseCreated(w, "success", review)
}

// GetPublicReviews handles GET /api/reviews (public feed, newest first)
func (h *ReviewHandler) GetPublicReviews(w http.ResponseWriter, r *http.Request) {
	limit := utils.ParseLimit(r.URL.Query().Get("limit"), usecase.DefaultPublicReviewLimit, 100)

	reviews, err := h.service.GetPublicReviews(r.Context(), limit)
	if err != nil {
		h.handleServiceError(w, err, "get public reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// GetReview handles GET /api/reviews/{id} (public; private reviews 404)
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	review, err := h.service.GetReviewByID(r.Context(), reviewID)
	if err != nil {
		h.handleServiceError(w, err, "get review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// GetUserReviews handles GET /api/users/{id}/reviews (public reviews of a user)
func (h *ReviewHandler) GetUserReviews(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")
	if userID == "" {
		utils.ResponseBadRequest(w, "User ID is required", nil)
		return
	}

	reviews, err := h.service.GetUserReviews(r.Context(), userID)
	if err != nil {
		h.handleServiceError(w, err, "get user reviews")
		return
	}

	utils.ResponseSuccess(w, "success", reviews)
}

// UpdateReview handles PUT /api/reviews/{id} (protected, owner only)
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	var req request.UpdateReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	review, err := h.service.UpdateReview(r.Context(), reviewID, userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "update review")
		return
	}

	utils.ResponseSuccess(w, "success", review)
}

// DeleteReview handles DELETE /api/reviews/{id} (protected, owner only)
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	if err := h.service.DeleteReview(r.Context(), reviewID, userID.String()); err != nil {
		h.handleServiceError(w, err, "delete review")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// handleServiceError handles errors untuk review operations
func (h *ReviewHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	errMsg := err.Error()

	switch {
	case strings.Contains(errMsg, "not found"):
		h.log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

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
