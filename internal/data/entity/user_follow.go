package entity

import (
	"github.com/google/uuid"
)

// UserFollow is a follow edge, unique per (follower_id, following_id).
type UserFollow struct {
	BaseSimple
	FollowerID  uuid.UUID `db:"follower_id"`
	FollowingID uuid.UUID `db:"following_id"`
}
