package repository

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *entity.Comment) (*entity.CommentWithUser, error)
	FindByReviewID(ctx context.Context, reviewID uuid.UUID) ([]*entity.CommentWithUser, error)
	OnPublicReview(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type commentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewCommentRepository(db database.PgxIface, log *zap.Logger) CommentRepository {
	return &commentRepository{
		db:  db,
		log: log.With(zap.String("repository", "comment")),
	}
}

// Create inserts the comment and returns it joined with the author projection,
// so the caller can render it without a second query.
func (r *commentRepository) Create(ctx context.Context, comment *entity.Comment) (*entity.CommentWithUser, error) {
	query := `
		WITH inserted AS (
			INSERT INTO comments (id, review_id, user_id, comment_text, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, review_id, user_id, comment_text, created_at, updated_at
		)
		SELECT i.id, i.review_id, i.user_id, i.comment_text, i.created_at, i.updated_at,
		       p.username, p.display_name, p.avatar_url
		FROM inserted i
		JOIN profiles p ON p.id = i.user_id
	`

	var created entity.CommentWithUser
	err := r.db.QueryRow(ctx, query,
		comment.ID,
		comment.ReviewID,
		comment.UserID,
		comment.CommentText,
		comment.CreatedAt,
		comment.UpdatedAt,
	).Scan(
		&created.ID,
		&created.ReviewID,
		&created.UserID,
		&created.CommentText,
		&created.CreatedAt,
		&created.UpdatedAt,
		&created.User.Username,
		&created.User.DisplayName,
		&created.User.AvatarURL,
	)

	if err != nil {
		r.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", comment.ReviewID.String()),
			zap.String("user_id", comment.UserID.String()),
		)
		return nil, fmt.Errorf("create comment on review %s: %w", comment.ReviewID.String(), err)
	}

	return &created, nil
}

// FindByReviewID returns a review's comments oldest-first with the author
// projection. A hidden or unknown review answers ErrNotFound, the same as its
// detail endpoint, so comments never outlive the review's visibility.
func (r *commentRepository) FindByReviewID(ctx context.Context, reviewID uuid.UUID) ([]*entity.CommentWithUser, error) {
	var isPublic bool
	err := r.db.QueryRow(ctx,
		`SELECT is_public FROM reviews WHERE id = $1`, reviewID,
	).Scan(&isPublic)
	if err == pgx.ErrNoRows || (err == nil && !isPublic) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to check review visibility",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return nil, fmt.Errorf("check review visibility %s: %w", reviewID.String(), err)
	}

	query := `
		SELECT c.id, c.review_id, c.user_id, c.comment_text, c.created_at, c.updated_at,
		       p.username, p.display_name, p.avatar_url
		FROM comments c
		JOIN profiles p ON p.id = c.user_id
		WHERE c.review_id = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.Query(ctx, query, reviewID)
	if err != nil {
		r.log.Error("Failed to find comments by review ID",
			zap.Error(err),
			zap.String("review_id", reviewID.String()),
		)
		return nil, fmt.Errorf("find comments by review ID %s: %w", reviewID.String(), err)
	}
	defer rows.Close()

	var comments []*entity.CommentWithUser
	for rows.Next() {
		var comment entity.CommentWithUser
		err := rows.Scan(
			&comment.ID,
			&comment.ReviewID,
			&comment.UserID,
			&comment.CommentText,
			&comment.CreatedAt,
			&comment.UpdatedAt,
			&comment.User.Username,
			&comment.User.DisplayName,
			&comment.User.AvatarURL,
		)
		if err != nil {
			r.log.Error("Failed to scan comment row", zap.Error(err))
			return nil, fmt.Errorf("scan comment row: %w", err)
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// OnPublicReview reports whether the comment exists and its review is public.
func (r *commentRepository) OnPublicReview(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1
			FROM comments c
			JOIN reviews r ON r.id = c.review_id
			WHERE c.id = $1 AND r.is_public
		)
	`

	var visible bool
	if err := r.db.QueryRow(ctx, query, id).Scan(&visible); err != nil {
		r.log.Error("Failed to check comment visibility",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return false, fmt.Errorf("check comment visibility %s: %w", id.String(), err)
	}

	return visible, nil
}

func (r *commentRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM comments WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete comment",
			zap.Error(err),
			zap.String("comment_id", id.String()),
		)
		return fmt.Errorf("delete comment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}
