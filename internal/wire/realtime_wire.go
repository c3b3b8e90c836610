package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRealtime(
	r chi.Router,
	realtimeHandler *adaptor.RealtimeHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// SSE streams follow the read visibility of their parents: comments on
	// a public review and votes on its comments are publicly readable.

	// GET /api/reviews/{id}/comments/stream - Live comments on a review
	r.Get("/api/reviews/{id}/comments/stream", realtimeHandler.StreamReviewComments)

	// GET /api/comments/{id}/votes/stream - Live vote changes on a comment
	r.Get("/api/comments/{id}/votes/stream", realtimeHandler.StreamCommentVotes)
}
