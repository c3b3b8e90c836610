package request

type CreateReviewRequest struct {
	MovieID    string  `json:"movie_id" validate:"required,uuid4"`
	Rating     int     `json:"rating" validate:"required,min=1,max=10"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=5000"`
	IsPublic   *bool   `json:"is_public,omitempty"` // default true
}

type UpdateReviewRequest struct {
	Rating     *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=10"`
	ReviewText *string `json:"review_text,omitempty" validate:"omitempty,max=5000"`
	IsPublic   *bool   `json:"is_public,omitempty"`
}
