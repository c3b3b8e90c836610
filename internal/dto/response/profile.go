package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type ProfileResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName *string   `json:"display_name,omitempty"`
	Bio         *string   `json:"bio,omitempty"`
	AvatarURL   *string   `json:"avatar_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ProfileBriefResponse is the author projection embedded in feed rows
type ProfileBriefResponse struct {
	Username    string  `json:"username"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
}

func ProfileToResponse(profile *entity.Profile) ProfileResponse {
	return ProfileResponse{
		ID:          profile.ID.String(),
		Username:    profile.Username,
		DisplayName: profile.DisplayName,
		Bio:         profile.Bio,
		AvatarURL:   profile.AvatarURL,
		CreatedAt:   profile.CreatedAt,
		UpdatedAt:   profile.UpdatedAt,
	}
}

func ProfileBriefToResponse(brief entity.ProfileBrief) ProfileBriefResponse {
	return ProfileBriefResponse{
		Username:    brief.Username,
		DisplayName: brief.DisplayName,
		AvatarURL:   brief.AvatarURL,
	}
}

func ProfilesToResponse(profiles []*entity.Profile) []ProfileResponse {
	responses := make([]ProfileResponse, len(profiles))
	for i, profile := range profiles {
		responses[i] = ProfileToResponse(profile)
	}
	return responses
}
