package usecase

import (
	"cinelog/internal/data/repository"
	"cinelog/pkg/database"
	"cinelog/pkg/omdb"
	"cinelog/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth       AuthService
	Profile    ProfileService
	Movie      MovieService
	Review     ReviewService
	Comment    CommentService
	Vote       VoteService
	Follow     FollowService
	SavedList  SavedListService
	CustomList CustomListService
}

func NewService(db database.PgxIface, repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	omdbClient := omdb.NewClient(config.OMDB, log)

	return &Service{
		Auth:       NewAuthService(db, repo, config, log),
		Profile:    NewProfileService(repo.Profile, log),
		Movie:      NewMovieService(repo.Movie, omdbClient, log),
		Review:     NewReviewService(repo, log),
		Comment:    NewCommentService(repo.Comment, log),
		Vote:       NewVoteService(repo.Vote, log),
		Follow:     NewFollowService(repo.Follow, log),
		SavedList:  NewSavedListService(repo.SavedMovie, log),
		CustomList: NewCustomListService(repo.CustomList, log),
	}
}
