package repository

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VoteRepository interface {
	Upsert(ctx context.Context, vote *entity.CommentVote) (*entity.CommentVote, error)
	Delete(ctx context.Context, commentID, userID uuid.UUID) error
	CountByCommentID(ctx context.Context, commentID uuid.UUID) (*entity.VoteCounts, error)
}

type voteRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVoteRepository(db database.PgxIface, log *zap.Logger) VoteRepository {
	return &voteRepository{
		db:  db,
		log: log.With(zap.String("repository", "vote")),
	}
}

// Upsert keyed on (comment_id, user_id): a second vote by the same user
// replaces the stored polarity instead of creating a duplicate row.
func (r *voteRepository) Upsert(ctx context.Context, vote *entity.CommentVote) (*entity.CommentVote, error) {
	query := `
		INSERT INTO comment_votes (id, comment_id, user_id, vote_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (comment_id, user_id)
		DO UPDATE SET vote_type = EXCLUDED.vote_type
		RETURNING id, comment_id, user_id, vote_type, created_at
	`

	var stored entity.CommentVote
	err := r.db.QueryRow(ctx, query,
		vote.ID,
		vote.CommentID,
		vote.UserID,
		vote.VoteType,
		vote.CreatedAt,
	).Scan(
		&stored.ID,
		&stored.CommentID,
		&stored.UserID,
		&stored.VoteType,
		&stored.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to upsert vote",
			zap.Error(err),
			zap.String("comment_id", vote.CommentID.String()),
			zap.String("user_id", vote.UserID.String()),
		)
		return nil, fmt.Errorf("vote on comment %s: %w", vote.CommentID.String(), err)
	}

	return &stored, nil
}

// Delete removes the caller's vote row for a comment.
func (r *voteRepository) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	query := `DELETE FROM comment_votes WHERE comment_id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, commentID, userID)
	if err != nil {
		r.log.Error("Failed to remove vote",
			zap.Error(err),
			zap.String("comment_id", commentID.String()),
		)
		return fmt.Errorf("remove vote on comment %s: %w", commentID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}

// CountByCommentID aggregates in SQL so the counts stay consistent under
// concurrent votes.
func (r *voteRepository) CountByCommentID(ctx context.Context, commentID uuid.UUID) (*entity.VoteCounts, error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE vote_type = 1)  AS upvotes,
		       COUNT(*) FILTER (WHERE vote_type = -1) AS downvotes
		FROM comment_votes
		WHERE comment_id = $1
	`

	var counts entity.VoteCounts
	err := r.db.QueryRow(ctx, query, commentID).Scan(&counts.Upvotes, &counts.Downvotes)
	if err != nil {
		r.log.Error("Failed to count votes",
			zap.Error(err),
			zap.String("comment_id", commentID.String()),
		)
		return nil, fmt.Errorf("count votes for comment %s: %w", commentID.String(), err)
	}

	return &counts, nil
}
