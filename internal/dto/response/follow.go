package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type FollowResponse struct {
	ID          string    `json:"id"`
	FollowerID  string    `json:"follower_id"`
	FollowingID string    `json:"following_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type IsFollowingResponse struct {
	IsFollowing bool `json:"is_following"`
}

func FollowToResponse(follow *entity.UserFollow) FollowResponse {
	return FollowResponse{
		ID:          follow.ID.String(),
		FollowerID:  follow.FollowerID.String(),
		FollowingID: follow.FollowingID.String(),
		CreatedAt:   follow.CreatedAt,
	}
}
