package response

import (
	"time"

	"cinelog/internal/data/entity"
)

type CustomListResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	IsPublic    bool      `json:"is_public"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CustomListWithCountResponse struct {
	CustomListResponse
	MovieCount int64 `json:"movie_count"`
}

type CustomListEntryResponse struct {
	ID      string        `json:"id"`
	AddedAt time.Time     `json:"added_at"`
	Movie   MovieResponse `json:"movie"`
}

type CustomListDetailResponse struct {
	CustomListResponse
	Movies []CustomListEntryResponse `json:"movies"`
}

type PublicCustomListResponse struct {
	CustomListResponse
	User       ProfileBriefResponse `json:"user"`
	MovieCount int64                `json:"movie_count"`
}

type CustomListMovieResponse struct {
	ID      string    `json:"id"`
	ListID  string    `json:"list_id"`
	MovieID string    `json:"movie_id"`
	AddedAt time.Time `json:"added_at"`
}

func CustomListToResponse(list *entity.CustomList) CustomListResponse {
	return CustomListResponse{
		ID:          list.ID.String(),
		UserID:      list.UserID.String(),
		Name:        list.Name,
		Description: list.Description,
		IsPublic:    list.IsPublic,
		CreatedAt:   list.CreatedAt,
		UpdatedAt:   list.UpdatedAt,
	}
}

func CustomListsWithCountToResponse(lists []*entity.CustomListWithCount) []CustomListWithCountResponse {
	responses := make([]CustomListWithCountResponse, len(lists))
	for i, list := range lists {
		responses[i] = CustomListWithCountResponse{
			CustomListResponse: CustomListToResponse(&list.CustomList),
			MovieCount:         list.MovieCount,
		}
	}
	return responses
}

func CustomListDetailToResponse(detail *entity.CustomListDetail) CustomListDetailResponse {
	entries := make([]CustomListEntryResponse, len(detail.Entries))
	for i, entry := range detail.Entries {
		entries[i] = CustomListEntryResponse{
			ID:      entry.ID.String(),
			AddedAt: entry.AddedAt,
			Movie:   MovieToResponse(&entry.Movie),
		}
	}

	return CustomListDetailResponse{
		CustomListResponse: CustomListToResponse(&detail.CustomList),
		Movies:             entries,
	}
}

func PublicCustomListsToResponse(lists []*entity.CustomListWithUserAndCount) []PublicCustomListResponse {
	responses := make([]PublicCustomListResponse, len(lists))
	for i, list := range lists {
		responses[i] = PublicCustomListResponse{
			CustomListResponse: CustomListToResponse(&list.CustomList),
			User:               ProfileBriefToResponse(list.User),
			MovieCount:         list.MovieCount,
		}
	}
	return responses
}

func CustomListMovieToResponse(entry *entity.CustomListMovie) CustomListMovieResponse {
	return CustomListMovieResponse{
		ID:      entry.ID.String(),
		ListID:  entry.ListID.String(),
		MovieID: entry.MovieID.String(),
		AddedAt: entry.AddedAt,
	}
}
