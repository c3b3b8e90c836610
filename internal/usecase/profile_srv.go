package usecase

import (
	"context"
	"fmt"

	"cinelog/internal/data/entity"
	"cinelog/internal/data/repository"
	"cinelog/internal/dto/request"
	"cinelog/internal/dto/response"
	"cinelog/pkg/database"
	"cinelog/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)
	GetProfileByUsername(ctx context.Context, username string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
}

type profileService struct {
	profiles repository.ProfileRepository
	log      *zap.Logger
}

func NewProfileService(profiles repository.ProfileRepository, log *zap.Logger) ProfileService {
	return &profileService{
		profiles: profiles,
		log:      log.With(zap.String("service", "profile")),
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	profile, err := s.profiles.FindByID(ctx, userUUID)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("profile not found")
		}
		s.log.Error("Failed to get profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get profile: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

func (s *profileService) GetProfileByUsername(ctx context.Context, username string) (*response.ProfileResponse, error) {
	if username == "" {
		return nil, fmt.Errorf("invalid username")
	}

	profile, err := s.profiles.FindByUsername(ctx, username)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("profile not found")
		}
		s.log.Error("Failed to get profile by username", zap.Error(err), zap.String("username", username))
		return nil, fmt.Errorf("get profile by username: %w", err)
	}

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}

// UpdateProfile patches the whitelisted profile fields. A username collision
// is surfaced for user-facing messaging, not retried.
func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	patch := &entity.ProfileUpdate{
		Username:    req.Username,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		AvatarURL:   req.AvatarURL,
	}

	profile, err := s.profiles.Update(ctx, userUUID, patch)
	if err != nil {
		if database.IsNotFound(err) {
			return nil, fmt.Errorf("profile not found")
		}
		if database.IsUniqueViolation(err) {
			return nil, fmt.Errorf("username already taken")
		}
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("update profile: %w", err)
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	resp := response.ProfileToResponse(profile)
	return &resp, nil
}
