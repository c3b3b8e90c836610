package entity

import (
	"github.com/google/uuid"
)

const (
	VoteUp   = 1
	VoteDown = -1
)

// CommentVote holds at most one row per (comment_id, user_id);
// voting again replaces the stored polarity.
type CommentVote struct {
	BaseSimple
	CommentID uuid.UUID `db:"comment_id"`
	UserID    uuid.UUID `db:"user_id"`
	VoteType  int       `db:"vote_type"` // +1 or -1
}

type VoteCounts struct {
	Upvotes   int64 `db:"upvotes" json:"upvotes"`
	Downvotes int64 `db:"downvotes" json:"downvotes"`
}
