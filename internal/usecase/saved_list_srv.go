package usecase

import (
	"context"
	"fmt"
	"time"

	"cinelog/internal/data/entity"
	"cinelog/internal/data/repository"
	"cinelog/internal/dto/request"
	"cinelog/internal/dto/response"
	"cinelog/pkg/database"
	"cinelog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SavedListService interface {
	AddToList(ctx context.Context, userID string, req *request.AddToListRequest) (*response.SavedMovieResponse, error)
	RemoveFromList(ctx context.Context, userID, movieID, listType string) error
	GetUserList(ctx context.Context, userID, listType string) ([]response.SavedMovieWithMovieResponse, error)
}

type savedListService struct {
	savedMovies repository.SavedMovieRepository
	log         *zap.Logger
}

func NewSavedListService(savedMovies repository.SavedMovieRepository, log *zap.Logger) SavedListService {
	return &savedListService{
		savedMovies: savedMovies,
		log:         log.With(zap.String("service", "saved_list")),
	}
}

func parseListType(listType string) (entity.ListType, error) {
	switch entity.ListType(listType) {
	case entity.ListWatchlist, entity.ListFavorites, entity.ListWatched:
		return entity.ListType(listType), nil
	default:
		return "", fmt.Errorf("invalid list type %s", listType)
	}
}

func (s *savedListService) AddToList(ctx context.Context, userID string, req *request.AddToListRequest) (*response.SavedMovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add to list validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	movieUUID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	saved := &entity.SavedMovie{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		UserID:   userUUID,
		MovieID:  movieUUID,
		ListType: entity.ListType(req.ListType),
	}

	if err := s.savedMovies.Create(ctx, saved); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("movie already in %s", req.ListType)
		}
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("movie %s not found", req.MovieID)
		}
		s.log.Error("Failed to add movie to list",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("movie_id", req.MovieID),
			zap.String("list_type", req.ListType),
		)
		return nil, fmt.Errorf("add movie to list: %w", err)
	}

	s.log.Info("Movie added to list",
		zap.String("user_id", userID),
		zap.String("movie_id", req.MovieID),
		zap.String("list_type", req.ListType),
	)

	resp := response.SavedMovieToResponse(saved)
	return &resp, nil
}

func (s *savedListService) RemoveFromList(ctx context.Context, userID, movieID, listType string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	parsed, err := parseListType(listType)
	if err != nil {
		return err
	}

	if err := s.savedMovies.Delete(ctx, userUUID, movieUUID, parsed); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("movie not found in %s", listType)
		}
		s.log.Error("Failed to remove movie from list",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("movie_id", movieID),
			zap.String("list_type", listType),
		)
		return fmt.Errorf("remove movie from list: %w", err)
	}

	return nil
}

func (s *savedListService) GetUserList(ctx context.Context, userID, listType string) ([]response.SavedMovieWithMovieResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	parsed, err := parseListType(listType)
	if err != nil {
		return nil, err
	}

	entries, err := s.savedMovies.FindByUserAndList(ctx, userUUID, parsed)
	if err != nil {
		s.log.Error("Failed to get user list",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("list_type", listType),
		)
		return nil, fmt.Errorf("get user list: %w", err)
	}

	return response.SavedMoviesToResponse(entries), nil
}
