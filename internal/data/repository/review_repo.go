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

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	FindPublic(ctx context.Context, limit int) ([]*entity.ReviewWithDetails, error)
	FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithFullDetails, error)
	FindPublicByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewWithMovie, error)
	Update(ctx context.Context, id, userID uuid.UUID, patch *entity.ReviewUpdate) (*entity.Review, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type reviewRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewReviewRepository(db database.PgxIface, log *zap.Logger) ReviewRepository {
	return &reviewRepository{
		db:  db,
		log: log.With(zap.String("repository", "review")),
	}
}

func (r *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, movie_id, rating, review_text, is_public,
		                     created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.db.Exec(ctx, query,
		review.ID,
		review.UserID,
		review.MovieID,
		review.Rating,
		review.ReviewText,
		review.IsPublic,
		review.CreatedAt,
		review.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", review.UserID.String()),
			zap.String("movie_id", review.MovieID.String()),
		)
		return fmt.Errorf("create review for movie %s by user %s: %w",
			review.MovieID.String(), review.UserID.String(), err)
	}

	return nil
}

// FindPublic returns the newest public reviews joined with the author and
// movie projections for the feed.
func (r *reviewRepository) FindPublic(ctx context.Context, limit int) ([]*entity.ReviewWithDetails, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_text, r.is_public,
		       r.created_at, r.updated_at,
		       p.username, p.display_name, p.avatar_url,
		       m.id, m.title, m.poster_url, m.year
		FROM reviews r
		JOIN profiles p ON p.id = r.user_id
		JOIN movies m ON m.id = r.movie_id
		WHERE r.is_public = TRUE
		ORDER BY r.created_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		r.log.Error("Failed to find public reviews",
			zap.Error(err),
			zap.Int("limit", limit),
		)
		return nil, fmt.Errorf("find public reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithDetails
	for rows.Next() {
		var review entity.ReviewWithDetails
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.ReviewText,
			&review.IsPublic,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.User.Username,
			&review.User.DisplayName,
			&review.User.AvatarURL,
			&review.Movie.ID,
			&review.Movie.Title,
			&review.Movie.PosterURL,
			&review.Movie.Year,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

// FindPublicByID returns one review with full author and movie records.
// Private or absent reviews are both not-found.
func (r *reviewRepository) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithFullDetails, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_text, r.is_public,
		       r.created_at, r.updated_at,
		       p.id, p.username, p.display_name, p.bio, p.avatar_url, p.created_at, p.updated_at,
		       m.id, m.imdb_id, m.title, m.year, m.poster_url, m.plot, m.genre,
		       m.director, m.actors, m.imdb_rating, m.created_at, m.updated_at
		FROM reviews r
		JOIN profiles p ON p.id = r.user_id
		JOIN movies m ON m.id = r.movie_id
		WHERE r.id = $1 AND r.is_public = TRUE
	`

	var review entity.ReviewWithFullDetails
	err := r.db.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.ReviewText,
		&review.IsPublic,
		&review.CreatedAt,
		&review.UpdatedAt,
		&review.User.ID,
		&review.User.Username,
		&review.User.DisplayName,
		&review.User.Bio,
		&review.User.AvatarURL,
		&review.User.CreatedAt,
		&review.User.UpdatedAt,
		&review.Movie.ID,
		&review.Movie.IMDBID,
		&review.Movie.Title,
		&review.Movie.Year,
		&review.Movie.PosterURL,
		&review.Movie.Plot,
		&review.Movie.Genre,
		&review.Movie.Director,
		&review.Movie.Actors,
		&review.Movie.IMDBRating,
		&review.Movie.CreatedAt,
		&review.Movie.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find review by ID",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("find review by ID %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) FindPublicByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewWithMovie, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.rating, r.review_text, r.is_public,
		       r.created_at, r.updated_at,
		       m.id, m.title, m.poster_url, m.year
		FROM reviews r
		JOIN movies m ON m.id = r.movie_id
		WHERE r.user_id = $1 AND r.is_public = TRUE
		ORDER BY r.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		r.log.Error("Failed to find reviews by user ID",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find reviews by user ID %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var reviews []*entity.ReviewWithMovie
	for rows.Next() {
		var review entity.ReviewWithMovie
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&review.MovieID,
			&review.Rating,
			&review.ReviewText,
			&review.IsPublic,
			&review.CreatedAt,
			&review.UpdatedAt,
			&review.Movie.ID,
			&review.Movie.Title,
			&review.Movie.PosterURL,
			&review.Movie.Year,
		)
		if err != nil {
			r.log.Error("Failed to scan review row", zap.Error(err))
			return nil, fmt.Errorf("scan review row: %w", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, rows.Err()
}

// Update patches rating, text and visibility only. The user_id predicate is
// the ownership policy: someone else's review is simply not found.
func (r *reviewRepository) Update(ctx context.Context, id, userID uuid.UUID, patch *entity.ReviewUpdate) (*entity.Review, error) {
	query := `
		UPDATE reviews
		SET rating      = COALESCE($3, rating),
		    review_text = COALESCE($4, review_text),
		    is_public   = COALESCE($5, is_public),
		    updated_at  = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, movie_id, rating, review_text, is_public, created_at, updated_at
	`

	var review entity.Review
	err := r.db.QueryRow(ctx, query, id, userID,
		patch.Rating,
		patch.ReviewText,
		patch.IsPublic,
	).Scan(
		&review.ID,
		&review.UserID,
		&review.MovieID,
		&review.Rating,
		&review.ReviewText,
		&review.IsPublic,
		&review.CreatedAt,
		&review.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to update review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return nil, fmt.Errorf("update review %s: %w", id.String(), err)
	}

	return &review, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id, userID uuid.UUID) error {
	query := `DELETE FROM reviews WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		r.log.Error("Failed to delete review",
			zap.Error(err),
			zap.String("review_id", id.String()),
		)
		return fmt.Errorf("delete review %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	r.log.Info("Review deleted", zap.String("review_id", id.String()))
	return nil
}
