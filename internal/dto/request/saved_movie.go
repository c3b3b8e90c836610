package request

type AddToListRequest struct {
	MovieID  string `json:"movie_id" validate:"required,uuid4"`
	ListType string `json:"list_type" validate:"required,oneof=watchlist favorites watched"`
}
