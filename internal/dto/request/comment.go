package request

type CreateCommentRequest struct {
	ReviewID    string `json:"review_id" validate:"required,uuid4"`
	CommentText string `json:"comment_text" validate:"required,min=1,max=2000"`
}

type VoteRequest struct {
	VoteType int `json:"vote_type" validate:"required,oneof=1 -1"`
}
