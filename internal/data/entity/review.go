package entity

import (
	"github.com/google/uuid"
)

type Review struct {
	Base
	UserID     uuid.UUID `db:"user_id"`
	MovieID    uuid.UUID `db:"movie_id"`
	Rating     int       `db:"rating"` // 1-10
	ReviewText *string   `db:"review_text"`
	IsPublic   bool      `db:"is_public"`
}

// ReviewWithDetails joins the minimal author and movie projections (feed rows)
type ReviewWithDetails struct {
	Review
	User  ProfileBrief
	Movie MovieBrief
}

// ReviewWithFullDetails joins full author and movie records (detail page)
type ReviewWithFullDetails struct {
	Review
	User  Profile
	Movie Movie
}

// ReviewWithMovie joins only the movie projection (a user's own review list)
type ReviewWithMovie struct {
	Review
	Movie MovieBrief
}
