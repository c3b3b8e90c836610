package adaptor

import (
	"cinelog/internal/realtime"
	"cinelog/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth       *AuthHandler
	Profile    *ProfileHandler
	Movie      *MovieHandler
	Review     *ReviewHandler
	Comment    *CommentHandler
	Follow     *FollowHandler
	SavedList  *SavedListHandler
	CustomList *CustomListHandler
	Realtime   *RealtimeHandler
}

func NewHandler(service *usecase.Service, hub *realtime.Hub, log *zap.Logger) *Handler {
	return &Handler{
		Auth:       NewAuthHandler(service.Auth, log),
		Profile:    NewProfileHandler(service.Profile, log),
		Movie:      NewMovieHandler(service.Movie, log),
		Review:     NewReviewHandler(service.Review, log),
		Comment:    NewCommentHandler(service.Comment, service.Vote, log),
		Follow:     NewFollowHandler(service.Follow, log),
		SavedList:  NewSavedListHandler(service.SavedList, log),
		CustomList: NewCustomListHandler(service.CustomList, log),
		Realtime:   NewRealtimeHandler(hub, service.Review, service.Comment, log),
	}
}
