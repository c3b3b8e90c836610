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

// DefaultPublicListLimit caps the public list browse when the caller
// does not ask for a specific page size.
const DefaultPublicListLimit = 20

type CustomListService interface {
	CreateList(ctx context.Context, userID string, req *request.CreateCustomListRequest) (*response.CustomListResponse, error)
	GetUserLists(ctx context.Context, userID string) ([]response.CustomListWithCountResponse, error)
	GetListByID(ctx context.Context, listID, viewerID string) (*response.CustomListDetailResponse, error)
	GetPublicLists(ctx context.Context, limit int) ([]response.PublicCustomListResponse, error)
	UpdateList(ctx context.Context, listID, userID string, req *request.UpdateCustomListRequest) (*response.CustomListResponse, error)
	DeleteList(ctx context.Context, listID, userID string) error
	AddMovieToList(ctx context.Context, listID, userID string, req *request.AddListMovieRequest) (*response.CustomListMovieResponse, error)
	RemoveMovieFromList(ctx context.Context, listID, movieID, userID string) error
}

type customListService struct {
	lists repository.CustomListRepository
	log   *zap.Logger
}

func NewCustomListService(lists repository.CustomListRepository, log *zap.Logger) CustomListService {
	return &customListService{
		lists: lists,
		log:   log.With(zap.String("service", "custom_list")),
	}
}

func (s *customListService) CreateList(ctx context.Context, userID string, req *request.CreateCustomListRequest) (*response.CustomListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create list validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	isPublic := false
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := time.Now()
	list := &entity.CustomList{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:      userUUID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    isPublic,
	}

	if err := s.lists.Create(ctx, list); err != nil {
		s.log.Error("Failed to create custom list",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("name", req.Name),
		)
		return nil, fmt.Errorf("create custom list: %w", err)
	}

	s.log.Info("Custom list created",
		zap.String("list_id", list.ID.String()),
		zap.String("user_id", userID),
	)

	resp := response.CustomListToResponse(list)
	return &resp, nil
}

func (s *customListService) GetUserLists(ctx context.Context, userID string) ([]response.CustomListWithCountResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	lists, err := s.lists.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user lists", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user lists: %w", err)
	}

	return response.CustomListsWithCountToResponse(lists), nil
}

// GetListByID resolves one list with its movies. viewerID may be empty for
// anonymous callers; private lists then behave as not-found.
func (s *customListService) GetListByID(ctx context.Context, listID, viewerID string) (*response.CustomListDetailResponse, error) {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return nil, fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	viewerUUID := uuid.Nil
	if viewerID != "" {
		viewerUUID, err = uuid.Parse(viewerID)
		if err != nil {
			return nil, fmt.Errorf("invalid user ID format %s: %w", viewerID, err)
		}
	}

	detail, err := s.lists.FindByID(ctx, listUUID, viewerUUID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("list not found")
		}
		s.log.Error("Failed to get custom list", zap.Error(err), zap.String("list_id", listID))
		return nil, fmt.Errorf("get custom list: %w", err)
	}

	resp := response.CustomListDetailToResponse(detail)
	return &resp, nil
}

func (s *customListService) GetPublicLists(ctx context.Context, limit int) ([]response.PublicCustomListResponse, error) {
	if limit <= 0 {
		limit = DefaultPublicListLimit
	}
	if limit > 100 {
		limit = 100
	}

	lists, err := s.lists.FindPublic(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get public lists", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("get public lists: %w", err)
	}

	return response.PublicCustomListsToResponse(lists), nil
}

func (s *customListService) UpdateList(ctx context.Context, listID, userID string, req *request.UpdateCustomListRequest) (*response.CustomListResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update list validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return nil, fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	patch := &entity.CustomListUpdate{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	}

	updated, err := s.lists.Update(ctx, listUUID, userUUID, patch)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("list not found")
		}
		s.log.Error("Failed to update custom list", zap.Error(err), zap.String("list_id", listID))
		return nil, fmt.Errorf("update custom list: %w", err)
	}

	resp := response.CustomListToResponse(updated)
	return &resp, nil
}

func (s *customListService) DeleteList(ctx context.Context, listID, userID string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.lists.Delete(ctx, listUUID, userUUID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("list not found")
		}
		s.log.Error("Failed to delete custom list", zap.Error(err), zap.String("list_id", listID))
		return fmt.Errorf("delete custom list: %w", err)
	}

	return nil
}

func (s *customListService) AddMovieToList(ctx context.Context, listID, userID string, req *request.AddListMovieRequest) (*response.CustomListMovieResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Add list movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return nil, fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	movieUUID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	entry, err := s.lists.AddMovie(ctx, listUUID, movieUUID, userUUID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("list not found")
		}
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("movie already in list")
		}
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("movie %s not found", req.MovieID)
		}
		s.log.Error("Failed to add movie to custom list",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("add movie to custom list: %w", err)
	}

	resp := response.CustomListMovieToResponse(entry)
	return &resp, nil
}

func (s *customListService) RemoveMovieFromList(ctx context.Context, listID, movieID, userID string) error {
	listUUID, err := uuid.Parse(listID)
	if err != nil {
		return fmt.Errorf("invalid list ID format %s: %w", listID, err)
	}

	movieUUID, err := uuid.Parse(movieID)
	if err != nil {
		return fmt.Errorf("invalid movie ID format %s: %w", movieID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.lists.RemoveMovie(ctx, listUUID, movieUUID, userUUID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("movie not found in list")
		}
		s.log.Error("Failed to remove movie from custom list",
			zap.Error(err),
			zap.String("list_id", listID),
			zap.String("movie_id", movieID),
		)
		return fmt.Errorf("remove movie from custom list: %w", err)
	}

	return nil
}
