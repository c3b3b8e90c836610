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

const DefaultPublicReviewLimit = 10

type ReviewService interface {
	CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error)
	GetPublicReviews(ctx context.Context, limit int) ([]response.ReviewFeedResponse, error)
	GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewDetailResponse, error)
	GetUserReviews(ctx context.Context, userID string) ([]response.ReviewWithMovieResponse, error)
	UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error)
	DeleteReview(ctx context.Context, reviewID, userID string) error
}

type reviewService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewReviewService(repo *repository.Repository, log *zap.Logger) ReviewService {
	return &reviewService{
		repo: repo,
		log:  log.With(zap.String("service", "review")),
	}
}

func (s *reviewService) CreateReview(ctx context.Context, userID string, req *request.CreateReviewRequest) (*response.ReviewResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Parse IDs
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	movieID, err := uuid.Parse(req.MovieID)
	if err != nil {
		return nil, fmt.Errorf("invalid movie ID format %s: %w", req.MovieID, err)
	}

	// Check if movie exists
	if _, err := s.repo.Movie.FindByID(ctx, movieID); err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("movie %s not found", req.MovieID)
		}
		s.log.Error("Failed to check movie", zap.Error(err), zap.String("movie_id", req.MovieID))
		return nil, fmt.Errorf("check movie: %w", err)
	}

	// Reviews are public unless stated otherwise
	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	now := time.Now()
	review := &entity.Review{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     userUUID,
		MovieID:    movieID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		IsPublic:   isPublic,
	}

	if err := s.repo.Review.Create(ctx, review); err != nil {
		s.log.Error("Failed to create review",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("movie_id", req.MovieID),
		)
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.log.Info("Review created",
		zap.String("review_id", review.ID.String()),
		zap.String("user_id", userID),
		zap.String("movie_id", req.MovieID),
		zap.Int("rating", req.Rating),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

// GetPublicReviews returns the newest public reviews with author and movie
// projections. Limit defaults to 10 and never exceeds 100.
func (s *reviewService) GetPublicReviews(ctx context.Context, limit int) ([]response.ReviewFeedResponse, error) {
	if limit < 1 {
		limit = DefaultPublicReviewLimit
	}
	if limit > 100 {
		limit = 100
	}

	reviews, err := s.repo.Review.FindPublic(ctx, limit)
	if err != nil {
		s.log.Error("Failed to get public reviews", zap.Error(err), zap.Int("limit", limit))
		return nil, fmt.Errorf("get public reviews: %w", err)
	}

	return response.ReviewFeedToResponse(reviews), nil
}

// GetReviewByID returns one public review with full details. Private and
// absent reviews are both not-found.
func (s *reviewService) GetReviewByID(ctx context.Context, reviewID string) (*response.ReviewDetailResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	review, err := s.repo.Review.FindPublicByID(ctx, reviewUUID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("review not found")
		}
		s.log.Error("Failed to get review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("get review: %w", err)
	}

	resp := response.ReviewDetailToResponse(review)
	return &resp, nil
}

func (s *reviewService) GetUserReviews(ctx context.Context, userID string) ([]response.ReviewWithMovieResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reviews, err := s.repo.Review.FindPublicByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user reviews", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user reviews: %w", err)
	}

	return response.ReviewsWithMovieToResponse(reviews), nil
}

func (s *reviewService) UpdateReview(ctx context.Context, reviewID, userID string, req *request.UpdateReviewRequest) (*response.ReviewResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update review validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	patch := &entity.ReviewUpdate{
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
		IsPublic:   req.IsPublic,
	}

	review, err := s.repo.Review.Update(ctx, reviewUUID, userUUID, patch)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("review not found")
		}
		s.log.Error("Failed to update review", zap.Error(err), zap.String("review_id", reviewID))
		return nil, fmt.Errorf("update review: %w", err)
	}

	s.log.Info("Review updated",
		zap.String("review_id", reviewID),
		zap.String("user_id", userID),
	)

	resp := response.ReviewToResponse(review)
	return &resp, nil
}

func (s *reviewService) DeleteReview(ctx context.Context, reviewID, userID string) error {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.repo.Review.Delete(ctx, reviewUUID, userUUID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("review not found")
		}
		s.log.Error("Failed to delete review", zap.Error(err), zap.String("review_id", reviewID))
		return fmt.Errorf("delete review: %w", err)
	}

	return nil
}
