package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type SavedMovieResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	MovieID   string    `json:"movie_id"`
	ListType  string    `json:"list_type"`
	CreatedAt time.Time `json:"created_at"`
}

type SavedMovieWithMovieResponse struct {
	SavedMovieResponse
	Movie MovieResponse `json:"movie"`
}

func SavedMovieToResponse(saved *entity.SavedMovie) SavedMovieResponse {
	return SavedMovieResponse{
		ID:        saved.ID.String(),
		UserID:    saved.UserID.String(),
		MovieID:   saved.MovieID.String(),
		ListType:  string(saved.ListType),
		CreatedAt: saved.CreatedAt,
	}
}

func SavedMoviesToResponse(saved []*entity.SavedMovieWithMovie) []SavedMovieWithMovieResponse {
	responses := make([]SavedMovieWithMovieResponse, len(saved))
	for i, entry := range saved {
		responses[i] = SavedMovieWithMovieResponse{
			SavedMovieResponse: SavedMovieToResponse(&entry.SavedMovie),
			Movie:              MovieToResponse(&entry.Movie),
		}
	}
	return responses
}
