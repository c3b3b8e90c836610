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

// CommentHandler covers comments and their votes.
type CommentHandler struct {
	comments usecase.CommentService
	votes    usecase.VoteService
	log      *zap.Logger
}

func NewCommentHandler(comments usecase.CommentService, votes usecase.VoteService, log *zap.Logger) *CommentHandler {
	return &CommentHandler{
		comments: comments,
		votes:    votes,
		log:      log.With(zap.String("handler", "comment")),
	}
}

// CreateComment handles POST /api/comments (protected)
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var req request.CreateCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	comment, err := h.comments.CreateComment(r.Context(), userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "create comment")
		return
	}

	utils.ResponseCreated(w, "success", comment)
}

// GetReviewComments handles GET /api/reviews/{id}/comments (public, oldest first)
func (h *CommentHandler) GetReviewComments(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "id")
	if reviewID == "" {
		utils.ResponseBadRequest(w, "Review ID is required", nil)
		return
	}

	comments, err := h.comments.GetReviewComments(r.Context(), reviewID)
	if err != nil {
		h.handleServiceError(w, err, "get review comments")
		return
	}

	utils.ResponseSuccess(w, "success", comments)
}

// DeleteComment handles DELETE /api/comments/{id} (protected, owner only)
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "id")
	if commentID == "" {
		utils.ResponseBadRequest(w, "Comment ID is required", nil)
		return
	}

	if err := h.comments.DeleteComment(r.Context(), commentID, userID.String()); err != nil {
		h.handleServiceError(w, err, "delete comment")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// VoteOnComment handles PUT /api/comments/{id}/vote (protected).
// Revoting replaces the stored polarity.
func (h *CommentHandler) VoteOnComment(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "id")
	if commentID == "" {
		utils.ResponseBadRequest(w, "Comment ID is required", nil)
		return
	}

	var req request.VoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	vote, err := h.votes.VoteOnComment(r.Context(), commentID, userID.String(), &req)
	if err != nil {
		h.handleServiceError(w, err, "vote on comment")
		return
	}

	utils.ResponseSuccess(w, "success", vote)
}

// RemoveVote handles DELETE /api/comments/{id}/vote (protected)
func (h *CommentHandler) RemoveVote(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	commentID := chi.URLParam(r, "id")
	if commentID == "" {
		utils.ResponseBadRequest(w, "Comment ID is required", nil)
		return
	}

	if err := h.votes.RemoveVote(r.Context(), commentID, userID.String()); err != nil {
		h.handleServiceError(w, err, "remove vote")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

// GetCommentVotes handles GET /api/comments/{id}/votes (public)
func (h *CommentHandler) GetCommentVotes(w http.ResponseWriter, r *http.Request) {
	commentID := chi.URLParam(r, "id")
	if commentID == "" {
		utils.ResponseBadRequest(w, "Comment ID is required", nil)
		return
	}

	counts, err := h.votes.GetCommentVotes(r.Context(), commentID)
	if err != nil {
		h.handleServiceError(w, err, "get comment votes")
		return
	}

	utils.ResponseSuccess(w, "success", counts)
}

// handleServiceError handles errors untuk comment operations
func (h *CommentHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
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
