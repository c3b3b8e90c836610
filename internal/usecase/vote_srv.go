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

type VoteService interface {
	VoteOnComment(ctx context.Context, commentID, userID string, req *request.VoteRequest) (*response.VoteResponse, error)
	RemoveVote(ctx context.Context, commentID, userID string) error
	GetCommentVotes(ctx context.Context, commentID string) (*entity.VoteCounts, error)
}

type voteService struct {
	votes repository.VoteRepository
	log   *zap.Logger
}

func NewVoteService(votes repository.VoteRepository, log *zap.Logger) VoteService {
	return &voteService{
		votes: votes,
		log:   log.With(zap.String("service", "vote")),
	}
}

// VoteOnComment records an up or down vote. Voting again with a different
// polarity replaces the previous vote, it never stacks.
func (s *voteService) VoteOnComment(ctx context.Context, commentID, userID string, req *request.VoteRequest) (*response.VoteResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Vote validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format %s: %w", commentID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	vote := &entity.CommentVote{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		CommentID: commentUUID,
		UserID:    userUUID,
		VoteType:  req.VoteType,
	}

	stored, err := s.votes.Upsert(ctx, vote)
	if err != nil {
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("comment %s not found", commentID)
		}
		s.log.Error("Failed to vote on comment",
			zap.Error(err),
			zap.String("comment_id", commentID),
			zap.String("user_id", userID),
		)
		return nil, fmt.Errorf("vote on comment: %w", err)
	}

	resp := response.VoteToResponse(stored)
	return &resp, nil
}

func (s *voteService) RemoveVote(ctx context.Context, commentID, userID string) error {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return fmt.Errorf("invalid comment ID format %s: %w", commentID, err)
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	if err := s.votes.Delete(ctx, commentUUID, userUUID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("vote not found")
		}
		s.log.Error("Failed to remove vote", zap.Error(err), zap.String("comment_id", commentID))
		return fmt.Errorf("remove vote: %w", err)
	}

	return nil
}

func (s *voteService) GetCommentVotes(ctx context.Context, commentID string) (*entity.VoteCounts, error) {
	commentUUID, err := uuid.Parse(commentID)
	if err != nil {
		return nil, fmt.Errorf("invalid comment ID format %s: %w", commentID, err)
	}

	counts, err := s.votes.CountByCommentID(ctx, commentUUID)
	if err != nil {
		s.log.Error("Failed to count comment votes",
			zap.Error(err),
			zap.String("comment_id", commentID),
		)
		return nil, fmt.Errorf("count comment votes: %w", err)
	}

	return counts, nil
}
