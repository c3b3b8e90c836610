package entity

import (
	"github.com/google/uuid"
)

type Comment struct {
	Base
	ReviewID    uuid.UUID `db:"review_id"`
	UserID      uuid.UUID `db:"user_id"`
	CommentText string    `db:"comment_text"`
}

type CommentWithUser struct {
	Comment
	User ProfileBrief
}
