package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type MovieResponse struct {
	ID         string    `json:"id"`
	IMDBID     string    `json:"imdb_id"`
	Title      string    `json:"title"`
	Year       string    `json:"year"`
	PosterURL  string    `json:"poster_url"`
	Plot       *string   `json:"plot,omitempty"`
	Genre      *string   `json:"genre,omitempty"`
	Director   *string   `json:"director,omitempty"`
	Actors     *string   `json:"actors,omitempty"`
	IMDBRating *string   `json:"imdb_rating,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MovieBriefResponse is the movie projection embedded in feed rows
type MovieBriefResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	PosterURL string `json:"poster_url"`
	Year      string `json:"year"`
}

func MovieToResponse(movie *entity.Movie) MovieResponse {
	return MovieResponse{
		ID:         movie.ID.String(),
		IMDBID:     movie.IMDBID,
		Title:      movie.Title,
		Year:       movie.Year,
		PosterURL:  movie.PosterURL,
		Plot:       movie.Plot,
		Genre:      movie.Genre,
		Director:   movie.Director,
		Actors:     movie.Actors,
		IMDBRating: movie.IMDBRating,
		CreatedAt:  movie.CreatedAt,
	}
}

func MovieBriefToResponse(brief entity.MovieBrief) MovieBriefResponse {
	return MovieBriefResponse{
		ID:        brief.ID.String(),
		Title:     brief.Title,
		PosterURL: brief.PosterURL,
		Year:      brief.Year,
	}
}
