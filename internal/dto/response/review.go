package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type ReviewResponse struct {
	ID         string    `json:"id"`
	UserID     string    `json:"user_id"`
	MovieID    string    `json:"movie_id"`
	Rating     int       `json:"rating"`
	ReviewText *string   `json:"review_text,omitempty"`
	IsPublic   bool      `json:"is_public"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// ReviewFeedResponse is a feed row: review plus author and movie projections
type ReviewFeedResponse struct {
	ReviewResponse
	User  ProfileBriefResponse `json:"user"`
	Movie MovieBriefResponse   `json:"movie"`
}

// ReviewDetailResponse is the detail page: review plus full author and movie
type ReviewDetailResponse struct {
	ReviewResponse
	User  ProfileResponse `json:"user"`
	Movie MovieResponse   `json:"movie"`
}

// ReviewWithMovieResponse is a row in a user's own review list
type ReviewWithMovieResponse struct {
	ReviewResponse
	Movie MovieBriefResponse `json:"movie"`
}

func ReviewToResponse(review *entity.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID.String(),
		UserID:     review.UserID.String(),
		MovieID:    review.MovieID.String(),
		Rating:     review.Rating,
		ReviewText: review.ReviewText,
		IsPublic:   review.IsPublic,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}

func ReviewFeedToResponse(reviews []*entity.ReviewWithDetails) []ReviewFeedResponse {
	responses := make([]ReviewFeedResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewFeedResponse{
			ReviewResponse: ReviewToResponse(&review.Review),
			User:           ProfileBriefToResponse(review.User),
			Movie:          MovieBriefToResponse(review.Movie),
		}
	}
	return responses
}

func ReviewDetailToResponse(review *entity.ReviewWithFullDetails) ReviewDetailResponse {
	return ReviewDetailResponse{
		ReviewResponse: ReviewToResponse(&review.Review),
		User:           ProfileToResponse(&review.User),
		Movie:          MovieToResponse(&review.Movie),
	}
}

func ReviewsWithMovieToResponse(reviews []*entity.ReviewWithMovie) []ReviewWithMovieResponse {
	responses := make([]ReviewWithMovieResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = ReviewWithMovieResponse{
			ReviewResponse: ReviewToResponse(&review.Review),
			Movie:          MovieBriefToResponse(review.Movie),
		}
	}
	return responses
}
