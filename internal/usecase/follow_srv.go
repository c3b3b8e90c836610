package usecase

import (
	"context"
	"fmt"
	"time"

	"cinelog/internal/data/entity"
	"cinelog/internal/data/repository"
	"cinelog/internal/dto/response"
	"cinelog/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type FollowService interface {
	FollowUser(ctx context.Context, followerID, followingID string) (*response.FollowResponse, error)
	UnfollowUser(ctx context.Context, followerID, followingID string) error
	GetFollowers(ctx context.Context, userID string) ([]response.ProfileResponse, error)
	GetFollowing(ctx context.Context, userID string) ([]response.ProfileResponse, error)
	IsFollowing(ctx context.Context, followerID, followingID string) (*response.IsFollowingResponse, error)
}

type followService struct {
	follows repository.FollowRepository
	log     *zap.Logger
}

func NewFollowService(follows repository.FollowRepository, log *zap.Logger) FollowService {
	return &followService{
		follows: follows,
		log:     log.With(zap.String("service", "follow")),
	}
}

func (s *followService) FollowUser(ctx context.Context, followerID, followingID string) (*response.FollowResponse, error) {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", followerID, err)
	}

	followingUUID, err := uuid.Parse(followingID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", followingID, err)
	}

	if followerUUID == followingUUID {
		return nil, fmt.Errorf("validation failed: cannot follow yourself")
	}

	follow := &entity.UserFollow{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		FollowerID:  followerUUID,
		FollowingID: followingUUID,
	}

	if err := s.follows.Create(ctx, follow); err != nil {
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("already following this user")
		}
		if database.IsForeignKeyViolation(err) {
			return nil, fmt.Errorf("user %s not found", followingID)
		}
		s.log.Error("Failed to follow user",
			zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID),
		)
		return nil, fmt.Errorf("follow user: %w", err)
	}

	s.log.Info("User followed",
		zap.String("follower_id", followerID),
		zap.String("following_id", followingID),
	)

	resp := response.FollowToResponse(follow)
	return &resp, nil
}

func (s *followService) UnfollowUser(ctx context.Context, followerID, followingID string) error {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", followerID, err)
	}

	followingUUID, err := uuid.Parse(followingID)
	if err != nil {
		return fmt.Errorf("invalid user ID format %s: %w", followingID, err)
	}

	if err := s.follows.Delete(ctx, followerUUID, followingUUID); err != nil {
		if database.IsNotFound(err) {
			return fmt.Errorf("follow not found")
		}
		s.log.Error("Failed to unfollow user",
			zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID),
		)
		return fmt.Errorf("unfollow user: %w", err)
	}

	return nil
}

func (s *followService) GetFollowers(ctx context.Context, userID string) ([]response.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	profiles, err := s.follows.FindFollowers(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get followers", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get followers: %w", err)
	}

	return response.ProfilesToResponse(profiles), nil
}

func (s *followService) GetFollowing(ctx context.Context, userID string) ([]response.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	profiles, err := s.follows.FindFollowing(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get following", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get following: %w", err)
	}

	return response.ProfilesToResponse(profiles), nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followingID string) (*response.IsFollowingResponse, error) {
	followerUUID, err := uuid.Parse(followerID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", followerID, err)
	}

	followingUUID, err := uuid.Parse(followingID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", followingID, err)
	}

	following, err := s.follows.Exists(ctx, followerUUID, followingUUID)
	if err != nil {
		s.log.Error("Failed to check follow state",
			zap.Error(err),
			zap.String("follower_id", followerID),
			zap.String("following_id", followingID),
		)
		return nil, fmt.Errorf("check follow state: %w", err)
	}

	return &response.IsFollowingResponse{IsFollowing: following}, nil
}
