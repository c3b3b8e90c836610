package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cinelog/internal/data/entity"
	"cinelog/internal/data/repository"
	"cinelog/internal/dto/request"
	"cinelog/internal/dto/response"
	"cinelog/pkg/database"
	"cinelog/pkg/omdb"
	"cinelog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MovieSource resolves external movie metadata; satisfied by the OMDB client.
type MovieSource interface {
	ByIMDBID(ctx context.Context, imdbID string) (*omdb.Movie, error)
}

type MovieService interface {
	GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error)
	GetOrCreateMovie(ctx context.Context, req *request.LookupMovieRequest) (*response.MovieResponse, error)
}

type movieService struct {
	movies repository.MovieRepository
	source MovieSource
	log    *zap.Logger
}

func NewMovieService(movies repository.MovieRepository, source MovieSource, log *zap.Logger) MovieService {
	return &movieService{
		movies: movies,
		source: source,
		log:    log.With(zap.String("service", "movie")),
	}
}

func (s *movieService) GetMovie(ctx context.Context, movieID string) (*response.MovieResponse, error) {
	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	movie, err := s.movies.FindByID(ctx, movieUUID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("movie %s not found", movieID)
		}
		s.log.Error("Failed to get movie", zap.Error(err), zap.String("movie_id", movieID))
		return nil, fmt.Errorf("get movie: %w", err)
	}

	resp := response.MovieToResponse(movie)
	return &resp, nil
}

// GetOrCreateMovie resolves an external id to our movie row, creating it on
// first reference. Metadata comes inline from the request or, failing that,
// from the external source. Racing lookups converge on one row.
func (s *movieService) GetOrCreateMovie(ctx context.Context, req *request.LookupMovieRequest) (*response.MovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Movie lookup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Fast path: already cached locally
	if id, err := s.movies.FindIDByIMDBID(ctx, req.IMDBID); err == nil {
		movie, err := s.movies.FindByID(ctx, id)
		if err != nil {
			s.log.Error("Failed to fetch existing movie",
				zap.Error(err), zap.String("imdb_id", req.IMDBID))
			return nil, fmt.Errorf("get movie: %w", err)
		}
		resp := response.MovieToResponse(movie)
		return &resp, nil
	} else if !database.IsNotFound(err) {
		s.log.Error("Failed to look up movie", zap.Error(err), zap.String("imdb_id", req.IMDBID))
		return nil, fmt.Errorf("look up movie: %w", err)
	}

	movie, err := s.buildMovie(ctx, req)
	if err != nil {
		return nil, err
	}

	created, err := s.movies.GetOrCreate(ctx, movie)
	if err != nil {
		s.log.Error("Failed to create movie", zap.Error(err), zap.String("imdb_id", req.IMDBID))
		return nil, fmt.Errorf("create movie: %w", err)
	}

	resp := response.MovieToResponse(created)
	return &resp, nil
}

func (s *movieService) buildMovie(ctx context.Context, req *request.LookupMovieRequest) (*entity.Movie, error) {
	now := time.Now()
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		IMDBID: req.IMDBID,
	}

	if req.Title != nil {
		// Client supplied the source payload inline
		movie.Title = *req.Title
		if req.Year != nil {
			movie.Year = *req.Year
		}
		if req.PosterURL != nil {
			movie.PosterURL = *req.PosterURL
		}
		movie.Plot = req.Plot
		movie.Genre = req.Genre
		movie.Director = req.Director
		movie.Actors = req.Actors
		movie.IMDBRating = req.IMDBRating
		return movie, nil
	}

	// Resolve via the external source
	data, err := s.source.ByIMDBID(ctx, req.IMDBID)
	if err != nil {
		if errors.Is(err, omdb.ErrNotFound) {
			return nil, fmt.Errorf("movie %s not found", req.IMDBID)
		}
		s.log.Error("Failed to fetch movie from source",
			zap.Error(err), zap.String("imdb_id", req.IMDBID))
		return nil, fmt.Errorf("fetch movie metadata: %w", err)
	}

	movie.Title = data.Title
	movie.Year = data.Year
	movie.PosterURL = data.Poster
	movie.Plot = optional(data.Plot)
	movie.Genre = optional(data.Genre)
	movie.Director = optional(data.Director)
	movie.Actors = optional(data.Actors)
	movie.IMDBRating = optional(data.IMDBRating)

	return movie, nil
}

// optional maps OMDB's "N/A" placeholder and empty strings to NULL
func optional(value string) *string {
	if value == "" || value == "N/A" {
		return nil
	}
	return &value
}
