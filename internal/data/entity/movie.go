package entity

import (
	"github.com/google/uuid"
)

// Movie is cached metadata from the external movie source, keyed by IMDB id.
// Rows are get-or-create on first reference and never mutated afterwards.
type Movie struct {
	Base
	IMDBID     string  `db:"imdb_id"` // unique
	Title      string  `db:"title"`
	Year       string  `db:"year"`
	PosterURL  string  `db:"poster_url"`
	Plot       *string `db:"plot"`
	Genre      *string `db:"genre"`
	Director   *string `db:"director"`
	Actors     *string `db:"actors"`
	IMDBRating *string `db:"imdb_rating"`
}

// MovieBrief is the minimal projection joined into review feeds
type MovieBrief struct {
	ID        uuid.UUID `db:"id"`
	Title     string    `db:"title"`
	PosterURL string    `db:"poster_url"`
	Year      string    `db:"year"`
}
