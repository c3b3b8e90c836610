package request

// LookupMovieRequest resolves an external movie reference to an internal row.
// When only the IMDB id is supplied the metadata is fetched from the source;
// a client that already holds the source payload can inline it.
type LookupMovieRequest struct {
	IMDBID     string  `json:"imdb_id" validate:"required,max=20"`
	Title      *string `json:"title,omitempty" validate:"omitempty,max=300"`
	Year       *string `json:"year,omitempty" validate:"omitempty,max=10"`
	PosterURL  *string `json:"poster_url,omitempty" validate:"omitempty,max=500"`
	Plot       *string `json:"plot,omitempty"`
	Genre      *string `json:"genre,omitempty"`
	Director   *string `json:"director,omitempty"`
	Actors     *string `json:"actors,omitempty"`
	IMDBRating *string `json:"imdb_rating,omitempty"`
}
