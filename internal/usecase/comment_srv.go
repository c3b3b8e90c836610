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

type CommentService interface {
	CreateComment(ctx context.Context, userID string, req *request.CreateCommentRequest) (*response.CommentResponse, error)
	GetReviewComments(ctx context.Context, reviewID string) ([]response.CommentResponse, error)
	CommentVisible(ctx context.Context, commentID string) (bool, error)
	DeleteComment(ctx context.Context, commentID, userID string) error
}

type commentService struct {
	comments repository.CommentRepository
	log      *zap.Logger
}

func NewCommentService(comments repository.CommentRepository, log *zap.Logger) CommentService {
	return &commentService{
		comments: comments,
		log:      log.With(zap.String("service", "comment")),
	}
}

func (s *commentService) CreateComment(ctx context.Context, userID string, req *request.CreateCommentRequest) (*response.CommentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create comment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	reviewUUID, err := uuid.Parse(req.ReviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", req.ReviewID, err)
	}

	now := time.Now()
	comment := &entity.Comment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ReviewID:    reviewUUID,
		UserID:      userUUID,
		CommentText: req.CommentText,
	}

	created, err := s.comments.Create(ctx, comment)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("review %s not found", req.ReviewID)
		}
		s.log.Error("Failed to create comment",
			zap.Error(err),
			zap.String("review_id", req.ReviewID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("create comment: %w", err)
	}

	s.log.Info("Comment created",
		zap.String("comment_id", created.ID.String()),
		zap.String("review_id", req.ReviewID),
	)

	resp := response.CommentToResponse(created)
	return &resp, nil
}

// GetReviewComments returns a public review's comments oldest-first. A hidden
// review answers not-found, the same as its detail endpoint.
func (s *commentService) GetReviewComments(ctx context.Context, reviewID string) ([]response.CommentResponse, error) {
	reviewUUID, err := uuid.Parse(reviewID)
	if err != nil {
		return nil, fmt.Errorf("invalid review ID format %s: %w", reviewID, err)
	}

	comments, err := s.comments.FindByReviewID(ctx, reviewUUID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("review %s not found", reviewID)
		}
		s.log.Error("Failed to get review comments",
			zap.Error(err),
			zap.String("review_id", reviewID),
		)
		return nil, fmt.Errorf("get review comments: %w", err)
	}

	return response.CommentsToResponse(comments), nil
}

// CommentVisible reports whether the comment sits on a public review.
func (s *commentService) CommentVisible(ctx context.Context, commentID string) (bool, error) {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return false, fmt.Errorf("invalid comment ID format %s: %w", commentID, err)
	}

	visible, err := s.comments.OnPublicReview(ctx, commentUUID)
	if err != nil {
		s.log.Error("Failed to check comment visibility",
			zap.Error(err),
			zap.String("comment_id", commentID),
		)
		return false, fmt.Errorf("check comment visibility: %w", err)
	}

	return visible, nil
}

func (s *commentService) DeleteComment(ctx context.Context, commentID, userID string) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return fmt.Errorf("invalid comment ID format %s: %w", commentID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.comments.Delete(ctx, commentUUID, userUUID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("comment not found")
		}
		s.log.Error("Failed to delete comment", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("delete comment: %w", err)
	}

	return nil
}
