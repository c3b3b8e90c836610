package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type CommentResponse struct {
	ID          string               `json:"id"`
	ReviewID    string               `json:"review_id"`
	UserID      string               `json:"user_id"`
	CommentText string               `json:"comment_text"`
	User        ProfileBriefResponse `json:"user"`
	CreatedAt   time.Time            `json:"created_at"`
}

func CommentToResponse(comment *entity.CommentWithUser) CommentResponse {
	return CommentResponse{
		ID:          comment.ID.String(),
		ReviewID:    comment.ReviewID.String(),
		UserID:      comment.UserID.String(),
		CommentText: comment.CommentText,
		User:        ProfileBriefToResponse(comment.User),
		CreatedAt:   comment.CreatedAt,
	}
}

func CommentsToResponse(comments []*entity.CommentWithUser) []CommentResponse {
	responses := make([]CommentResponse, len(comments))
	for i, comment := range comments {
		responses[i] = CommentToResponse(comment)
	}
	return responses
}

type VoteResponse struct {
	ID        string    `json:"id"`
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	VoteType  int       `json:"vote_type"`
	CreatedAt time.Time `json:"created_at"`
}

func VoteToResponse(vote *entity.CommentVote) VoteResponse {
	return VoteResponse{
		ID:        vote.ID.String(),
		CommentID: vote.CommentID.String(),
		UserID:    vote.UserID.String(),
		VoteType:  vote.VoteType,
		CreatedAt: vote.CreatedAt,
	}
}
