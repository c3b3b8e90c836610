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

type MovieRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error)
	FindIDByIMDBID(ctx context.Context, imdbID string) (uuid.UUID, error)
	GetOrCreate(ctx context.Context, movie *entity.Movie) (*entity.Movie, error)
}

type movieRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewMovieRepository(db database.PgxIface, log *zap.Logger) MovieRepository {
	return &movieRepository{
		db:  db,
		log: log.With(zap.String("repository", "movie")),
	}
}

const movieColumns = `id, imdb_id, title, year, poster_url, plot, genre,
	       director, actors, imdb_rating, created_at, updated_at`

func scanMovie(row pgx.Row, movie *entity.Movie) error {
	return row.Scan(
		&movie.ID,
		&movie.IMDBID,
		&movie.Title,
		&movie.Year,
		&movie.PosterURL,
		&movie.Plot,
		&movie.Genre,
		&movie.Director,
		&movie.Actors,
		&movie.IMDBRating,
		&movie.CreatedAt,
		&movie.UpdatedAt,
	)
}

func (r *movieRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	query := `SELECT ` + movieColumns + ` FROM movies WHERE id = $1`

	var movie entity.Movie
	err := scanMovie(r.db.QueryRow(ctx, query, id), &movie)

	if err == pgx.ErrNoRows {
		return nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find movie by ID",
			zap.Error(err),
			zap.String("movie_id", id.String()),
		)
		return nil, fmt.Errorf("find movie by ID %s: %w", id.String(), err)
	}

	return &movie, nil
}

// FindIDByIMDBID fetches only the internal id for an external id.
func (r *movieRepository) FindIDByIMDBID(ctx context.Context, imdbID string) (uuid.UUID, error) {
	query := `SELECT id FROM movies WHERE imdb_id = $1`

	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, imdbID).Scan(&id)

	if err == pgx.ErrNoRows {
		return uuid.Nil, database.ErrNotFound
	}
	if err != nil {
		r.log.Error("Failed to find movie by IMDB ID",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
		)
		return uuid.Nil, fmt.Errorf("find movie by IMDB ID %s: %w", imdbID, err)
	}

	return id, nil
}

// GetOrCreate inserts the movie keyed on its external id, or returns the
// existing row when another caller got there first. ON CONFLICT DO NOTHING
// plus re-fetch keeps concurrent calls converging on a single row.
func (r *movieRepository) GetOrCreate(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	insert := `
		INSERT INTO movies (id, imdb_id, title, year, poster_url, plot, genre,
		                    director, actors, imdb_rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		ON CONFLICT (imdb_id) DO NOTHING
		RETURNING ` + movieColumns

	var created entity.Movie
	err := scanMovie(r.db.QueryRow(ctx, insert,
		movie.ID,
		movie.IMDBID,
		movie.Title,
		movie.Year,
		movie.PosterURL,
		movie.Plot,
		movie.Genre,
		movie.Director,
		movie.Actors,
		movie.IMDBRating,
		movie.CreatedAt,
		movie.UpdatedAt,
	), &created)

	if err == nil {
		r.log.Info("Movie created",
			zap.String("movie_id", created.ID.String()),
			zap.String("imdb_id", created.IMDBID),
		)
		return &created, nil
	}

	if err != pgx.ErrNoRows {
		r.log.Error("Failed to insert movie",
			zap.Error(err),
			zap.String("imdb_id", movie.IMDBID),
		)
		return nil, fmt.Errorf("insert movie %s: %w", movie.IMDBID, err)
	}

	// Conflict: someone else just created it, re-fetch their row
	query := `SELECT ` + movieColumns + ` FROM movies WHERE imdb_id = $1`

	var existing entity.Movie
	if err := scanMovie(r.db.QueryRow(ctx, query, movie.IMDBID), &existing); err != nil {
		r.log.Error("Failed to re-fetch movie after conflict",
			zap.Error(err),
			zap.String("imdb_id", movie.IMDBID),
		)
		return nil, fmt.Errorf("re-fetch movie %s: %w", movie.IMDBID, err)
	}

	return &existing, nil
}
