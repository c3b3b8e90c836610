package repository

import (
	"cinelog/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User       UserRepository
	Session    SessionRepository
	Profile    ProfileRepository
	Movie      MovieRepository
	Review     ReviewRepository
	Comment    CommentRepository
	Vote       VoteRepository
	Follow     FollowRepository
	SavedMovie SavedMovieRepository
	CustomList CustomListRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:       NewUserRepository(db, log),
		Session:    NewSessionRepository(db, log),
		Profile:    NewProfileRepository(db, log),
		Movie:      NewMovieRepository(db, log),
		Review:     NewReviewRepository(db, log),
		Comment:    NewCommentRepository(db, log),
		Vote:       NewVoteRepository(db, log),
		Follow:     NewFollowRepository(db, log),
		SavedMovie: NewSavedMovieRepository(db, log),
		CustomList: NewCustomListRepository(db, log),
	}
}
