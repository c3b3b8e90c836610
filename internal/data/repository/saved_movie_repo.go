package repository

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SavedMovieRepository interface {
	Create(ctx context.Context, saved *entity.SavedMovie) error
	Delete(ctx context.Context, userID, movieID uuid.UUID, listType entity.ListType) error
	FindByUserAndList(ctx context.Context, userID uuid.UUID, listType entity.ListType) ([]*entity.SavedMovieWithMovie, error)
}

type savedMovieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSavedMovieRepository(db database.PgxIface, log *zap.Logger) SavedMovieRepository {
	return &savedMovieRepository{
		db:  db,
		log: log.With(zap.String("repository", "saved_movie")),
	}
}

// Create adds a movie to one of the typed lists. Duplicate entries surface
// as a unique violation ("already in list").
func (r *savedMovieRepository) Create(ctx context.Context, saved *entity.SavedMovie) error {
	query := `
		INSERT INTO saved_movies (id, user_id, movie_id, list_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.db.Exec(ctx, query,
		saved.ID,
		saved.UserID,
		saved.MovieID,
		saved.ListType,
		saved.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to save movie to list",
			zap.Error(err),
			zap.String("user_id", saved.UserID.String()),
			zap.String("movie_id", saved.MovieID.String()),
			zap.String("list_type", string(saved.ListType)),
		)
		return fmt.Errorf("add movie %s to %s: %w", saved.MovieID.String(), saved.ListType, err)
	}

	return nil
}

func (r *savedMovieRepository) Delete(ctx context.Context, userID, movieID uuid.UUID, listType entity.ListType) error {
	query := `
		DELETE FROM saved_movies
		WHERE user_id = $1 AND movie_id = $2 AND list_type = $3
	`

	result, err := r.db.Exec(ctx, query, userID, movieID, listType)
	if err != nil {
		r.log.Error("Failed to remove movie from list",
			zap.Error(err),
			zap.String("movie_id", movieID.String()),
			zap.String("list_type", string(listType)),
		)
		return fmt.Errorf("remove movie %s from %s: %w", movieID.String(), listType, err)
	}

	if result.RowsAffected() == 0 {
		return database.ErrNotFound
	}

	return nil
}

// FindByUserAndList returns a user's saved entries newest-first joined with
// the full movie record.
func (r *savedMovieRepository) FindByUserAndList(ctx context.Context, userID uuid.UUID, listType entity.ListType) ([]*entity.SavedMovieWithMovie, error) {
	query := `
		SELECT s.id, s.user_id, s.movie_id, s.list_type, s.created_at,
		       m.id, m.imdb_id, m.title, m.year, m.poster_url, m.plot, m.genre,
		       m.director, m.actors, m.imdb_rating, m.created_at, m.updated_at
		FROM saved_movies s
		JOIN movies m ON m.id = s.movie_id
		WHERE s.user_id = $1 AND s.list_type = $2
		ORDER BY s.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, userID, listType)
	if err != nil {
		r.log.Error("Failed to find saved movies",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("list_type", string(listType)),
		)
		return nil, fmt.Errorf("find %s list for user %s: %w", listType, userID.String(), err)
	}
	defer rows.Close()

	var saved []*entity.SavedMovieWithMovie
	for rows.Next() {
		var entry entity.SavedMovieWithMovie
		err := rows.Scan(
			&entry.ID,
			&entry.UserID,
			&entry.MovieID,
			&entry.ListType,
			&entry.CreatedAt,
			&entry.Movie.ID,
			&entry.Movie.IMDBID,
			&entry.Movie.Title,
			&entry.Movie.Year,
			&entry.Movie.PosterURL,
			&entry.Movie.Plot,
			&entry.Movie.Genre,
			&entry.Movie.Director,
			&entry.Movie.Actors,
			&entry.Movie.IMDBRating,
			&entry.Movie.CreatedAt,
			&entry.Movie.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan saved movie row", zap.Error(err))
			return nil, fmt.Errorf("scan saved movie row: %w", err)
		}
		saved = append(saved, &entry)
	}

	return saved, rows.Err()
}
