package wire

import (
	"cinelog/internal/adaptor"
	"cinelog/internal/data/repository"
	"cinelog/pkg/middleware"
	"cinelog/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireComment(
	r chi.Router,
	commentHandler *adaptor.CommentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/reviews/{id}/comments - A review's comments, oldest first
	r.Get("/api/reviews/{id}/comments", commentHandler.GetReviewComments)

	// GET /api/comments/{id}/votes - Vote counts for a comment
	r.Get("/api/comments/{id}/votes", commentHandler.GetCommentVotes)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/comments - Comment on a review
		r.Post("/api/comments", commentHandler.CreateComment)

		// DELETE /api/comments/{id} - Delete comment (owner only)
		r.Delete("/api/comments/{id}", commentHandler.DeleteComment)

		// PUT /api/comments/{id}/vote - Up/down vote; revote replaces polarity
		r.Put("/api/comments/{id}/vote", commentHandler.VoteOnComment)

		// DELETE /api/comments/{id}/vote - Withdraw own vote
		r.Delete("/api/comments/{id}/vote", commentHandler.RemoveVote)
	})
}
