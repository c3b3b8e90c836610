package entity

import (
	"github.com/google/uuid"
)

type ListType string

const (
	ListWatchlist ListType = "watchlist"
	ListFavorites ListType = "favorites"
	ListWatched   ListType = "watched"
)

// SavedMovie is one entry in a user's typed movie list,
// unique per (user_id, movie_id, list_type).
type SavedMovie struct {
	BaseSimple
	UserID   uuid.UUID `db:"user_id"`
	MovieID  uuid.UUID `db:"movie_id"`
	ListType ListType  `db:"list_type"`
}

type SavedMovieWithMovie struct {
	SavedMovie
	Movie Movie
}
