package usecase

import (
	"context"

	"cinelog/internal/data/entity"
	"cinelog/pkg/database"
	"cinelog/pkg/omdb"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory repository fakes. They mirror the SQL semantics the real
// repositories lean on: owner-scoped writes, unique violations, upserts.

var (
	errUnique = &pgconn.PgError{Code: "23505"}
	errFK     = &pgconn.PgError{Code: "23503"}
)

type fakeMovieRepo struct {
	movies map[uuid.UUID]*entity.Movie
}

func newFakeMovieRepo() *fakeMovieRepo {
	return &fakeMovieRepo{movies: make(map[uuid.UUID]*entity.Movie)}
}

func (f *fakeMovieRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	movie, ok := f.movies[id]
	if !ok {
		return nil, database.ErrNotFound
	}
	return movie, nil
}

func (f *fakeMovieRepo) FindIDByIMDBID(ctx context.Context, imdbID string) (uuid.UUID, error) {
	for id, movie := range f.movies {
		if movie.IMDBID == imdbID {
			return id, nil
		}
	}
	return uuid.Nil, database.ErrNotFound
}

func (f *fakeMovieRepo) GetOrCreate(ctx context.Context, movie *entity.Movie) (*entity.Movie, error) {
	for _, existing := range f.movies {
		if existing.IMDBID == movie.IMDBID {
			return existing, nil
		}
	}
	f.movies[movie.ID] = movie
	return movie, nil
}

type fakeReviewRepo struct {
	reviews map[uuid.UUID]*entity.Review
}

func newFakeReviewRepo() *fakeReviewRepo {
	return &fakeReviewRepo{reviews: make(map[uuid.UUID]*entity.Review)}
}

func (f *fakeReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	stored := *review
	f.reviews[review.ID] = &stored
	return nil
}

func (f *fakeReviewRepo) FindPublic(ctx context.Context, limit int) ([]*entity.ReviewWithDetails, error) {
	var out []*entity.ReviewWithDetails
	for _, review := range f.reviews {
		if !review.IsPublic || len(out) >= limit {
			continue
		}
		out = append(out, &entity.ReviewWithDetails{Review: *review})
	}
	return out, nil
}

func (f *fakeReviewRepo) FindPublicByID(ctx context.Context, id uuid.UUID) (*entity.ReviewWithFullDetails, error) {
	review, ok := f.reviews[id]
	if !ok || !review.IsPublic {
		return nil, database.ErrNotFound
	}
	return &entity.ReviewWithFullDetails{Review: *review}, nil
}

func (f *fakeReviewRepo) FindPublicByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.ReviewWithMovie, error) {
	var out []*entity.ReviewWithMovie
	for _, review := range f.reviews {
		if review.UserID == userID && review.IsPublic {
			out = append(out, &entity.ReviewWithMovie{Review: *review})
		}
	}
	return out, nil
}

func (f *fakeReviewRepo) Update(ctx context.Context, id, userID uuid.UUID, patch *entity.ReviewUpdate) (*entity.Review, error) {
	review, ok := f.reviews[id]
	if !ok || review.UserID != userID {
		return nil, database.ErrNotFound
	}
	if patch.Rating != nil {
		review.Rating = *patch.Rating
	}
	if patch.ReviewText != nil {
		review.ReviewText = patch.ReviewText
	}
	if patch.IsPublic != nil {
		review.IsPublic = *patch.IsPublic
	}
	return review, nil
}

func (f *fakeReviewRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	review, ok := f.reviews[id]
	if !ok || review.UserID != userID {
		return database.ErrNotFound
	}
	delete(f.reviews, id)
	return nil
}

type fakeCommentRepo struct {
	comments      map[uuid.UUID]*entity.CommentWithUser
	publicReviews map[uuid.UUID]bool // review id -> is_public
}

func newFakeCommentRepo() *fakeCommentRepo {
	return &fakeCommentRepo{
		comments:      make(map[uuid.UUID]*entity.CommentWithUser),
		publicReviews: make(map[uuid.UUID]bool),
	}
}

func (f *fakeCommentRepo) Create(ctx context.Context, comment *entity.Comment) (*entity.CommentWithUser, error) {
	if _, ok := f.publicReviews[comment.ReviewID]; !ok {
		return nil, errFK
	}
	created := &entity.CommentWithUser{Comment: *comment}
	f.comments[comment.ID] = created
	return created, nil
}

func (f *fakeCommentRepo) FindByReviewID(ctx context.Context, reviewID uuid.UUID) ([]*entity.CommentWithUser, error) {
	if !f.publicReviews[reviewID] {
		return nil, database.ErrNotFound
	}
	var out []*entity.CommentWithUser
	for _, comment := range f.comments {
		if comment.ReviewID == reviewID {
			out = append(out, comment)
		}
	}
	return out, nil
}

func (f *fakeCommentRepo) OnPublicReview(ctx context.Context, id uuid.UUID) (bool, error) {
	comment, ok := f.comments[id]
	if !ok {
		return false, nil
	}
	return f.publicReviews[comment.ReviewID], nil
}

func (f *fakeCommentRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	comment, ok := f.comments[id]
	if !ok || comment.UserID != userID {
		return database.ErrNotFound
	}
	delete(f.comments, id)
	return nil
}

type voteKey struct {
	commentID uuid.UUID
	userID    uuid.UUID
}

type fakeVoteRepo struct {
	votes map[voteKey]*entity.CommentVote
}

func newFakeVoteRepo() *fakeVoteRepo {
	return &fakeVoteRepo{votes: make(map[voteKey]*entity.CommentVote)}
}

func (f *fakeVoteRepo) Upsert(ctx context.Context, vote *entity.CommentVote) (*entity.CommentVote, error) {
	key := voteKey{vote.CommentID, vote.UserID}
	if existing, ok := f.votes[key]; ok {
		existing.VoteType = vote.VoteType
		return existing, nil
	}
	stored := *vote
	f.votes[key] = &stored
	return &stored, nil
}

func (f *fakeVoteRepo) Delete(ctx context.Context, commentID, userID uuid.UUID) error {
	key := voteKey{commentID, userID}
	if _, ok := f.votes[key]; !ok {
		return database.ErrNotFound
	}
	delete(f.votes, key)
	return nil
}

func (f *fakeVoteRepo) CountByCommentID(ctx context.Context, commentID uuid.UUID) (*entity.VoteCounts, error) {
	counts := &entity.VoteCounts{}
	for key, vote := range f.votes {
		if key.commentID != commentID {
			continue
		}
		if vote.VoteType == entity.VoteUp {
			counts.Upvotes++
		} else {
			counts.Downvotes++
		}
	}
	return counts, nil
}

type followKey struct {
	followerID  uuid.UUID
	followingID uuid.UUID
}

type fakeFollowRepo struct {
	edges map[followKey]*entity.UserFollow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{edges: make(map[followKey]*entity.UserFollow)}
}

func (f *fakeFollowRepo) Create(ctx context.Context, follow *entity.UserFollow) error {
	key := followKey{follow.FollowerID, follow.FollowingID}
	if _, ok := f.edges[key]; ok {
		return errUnique
	}
	f.edges[key] = follow
	return nil
}

func (f *fakeFollowRepo) Delete(ctx context.Context, followerID, followingID uuid.UUID) error {
	key := followKey{followerID, followingID}
	if _, ok := f.edges[key]; !ok {
		return database.ErrNotFound
	}
	delete(f.edges, key)
	return nil
}

func (f *fakeFollowRepo) FindFollowers(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for key := range f.edges {
		if key.followingID == userID {
			out = append(out, &entity.Profile{Base: entity.Base{ID: key.followerID}})
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) FindFollowing(ctx context.Context, userID uuid.UUID) ([]*entity.Profile, error) {
	var out []*entity.Profile
	for key := range f.edges {
		if key.followerID == userID {
			out = append(out, &entity.Profile{Base: entity.Base{ID: key.followingID}})
		}
	}
	return out, nil
}

func (f *fakeFollowRepo) Exists(ctx context.Context, followerID, followingID uuid.UUID) (bool, error) {
	_, ok := f.edges[followKey{followerID, followingID}]
	return ok, nil
}

type savedKey struct {
	userID   uuid.UUID
	movieID  uuid.UUID
	listType entity.ListType
}

type fakeSavedMovieRepo struct {
	entries map[savedKey]*entity.SavedMovie
}

func newFakeSavedMovieRepo() *fakeSavedMovieRepo {
	return &fakeSavedMovieRepo{entries: make(map[savedKey]*entity.SavedMovie)}
}

func (f *fakeSavedMovieRepo) Create(ctx context.Context, saved *entity.SavedMovie) error {
	key := savedKey{saved.UserID, saved.MovieID, saved.ListType}
	if _, ok := f.entries[key]; ok {
		return errUnique
	}
	f.entries[key] = saved
	return nil
}

func (f *fakeSavedMovieRepo) Delete(ctx context.Context, userID, movieID uuid.UUID, listType entity.ListType) error {
	key := savedKey{userID, movieID, listType}
	if _, ok := f.entries[key]; !ok {
		return database.ErrNotFound
	}
	delete(f.entries, key)
	return nil
}

func (f *fakeSavedMovieRepo) FindByUserAndList(ctx context.Context, userID uuid.UUID, listType entity.ListType) ([]*entity.SavedMovieWithMovie, error) {
	var out []*entity.SavedMovieWithMovie
	for key, saved := range f.entries {
		if key.userID == userID && key.listType == listType {
			out = append(out, &entity.SavedMovieWithMovie{SavedMovie: *saved})
		}
	}
	return out, nil
}

type fakeCustomListRepo struct {
	lists   map[uuid.UUID]*entity.CustomList
	entries map[uuid.UUID]map[uuid.UUID]*entity.CustomListMovie // list id -> movie id
}

func newFakeCustomListRepo() *fakeCustomListRepo {
	return &fakeCustomListRepo{
		lists:   make(map[uuid.UUID]*entity.CustomList),
		entries: make(map[uuid.UUID]map[uuid.UUID]*entity.CustomListMovie),
	}
}

func (f *fakeCustomListRepo) Create(ctx context.Context, list *entity.CustomList) error {
	stored := *list
	f.lists[list.ID] = &stored
	return nil
}

func (f *fakeCustomListRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CustomListWithCount, error) {
	var out []*entity.CustomListWithCount
	for id, list := range f.lists {
		if list.UserID == userID {
			out = append(out, &entity.CustomListWithCount{
				CustomList: *list,
				MovieCount: int64(len(f.entries[id])),
			})
		}
	}
	return out, nil
}

func (f *fakeCustomListRepo) FindByID(ctx context.Context, id, viewerID uuid.UUID) (*entity.CustomListDetail, error) {
	list, ok := f.lists[id]
	if !ok || (!list.IsPublic && list.UserID != viewerID) {
		return nil, database.ErrNotFound
	}

	detail := &entity.CustomListDetail{CustomList: *list}
	for _, entry := range f.entries[id] {
		detail.Entries = append(detail.Entries, entity.CustomListEntry{
			ID:      entry.ID,
			AddedAt: entry.AddedAt,
			Movie:   entity.Movie{Base: entity.Base{ID: entry.MovieID}},
		})
	}
	return detail, nil
}

func (f *fakeCustomListRepo) FindPublic(ctx context.Context, limit int) ([]*entity.CustomListWithUserAndCount, error) {
	var out []*entity.CustomListWithUserAndCount
	for id, list := range f.lists {
		if !list.IsPublic || len(out) >= limit {
			continue
		}
		out = append(out, &entity.CustomListWithUserAndCount{
			CustomList: *list,
			MovieCount: int64(len(f.entries[id])),
		})
	}
	return out, nil
}

func (f *fakeCustomListRepo) Update(ctx context.Context, id, userID uuid.UUID, patch *entity.CustomListUpdate) (*entity.CustomList, error) {
	list, ok := f.lists[id]
	if !ok || list.UserID != userID {
		return nil, database.ErrNotFound
	}
	if patch.Name != nil {
		list.Name = *patch.Name
	}
	if patch.Description != nil {
		list.Description = patch.Description
	}
	if patch.IsPublic != nil {
		list.IsPublic = *patch.IsPublic
	}
	return list, nil
}

func (f *fakeCustomListRepo) Delete(ctx context.Context, id, userID uuid.UUID) error {
	list, ok := f.lists[id]
	if !ok || list.UserID != userID {
		return database.ErrNotFound
	}
	delete(f.lists, id)
	delete(f.entries, id) // cascade
	return nil
}

func (f *fakeCustomListRepo) AddMovie(ctx context.Context, listID, movieID, userID uuid.UUID) (*entity.CustomListMovie, error) {
	list, ok := f.lists[listID]
	if !ok || list.UserID != userID {
		return nil, database.ErrNotFound
	}
	if f.entries[listID] == nil {
		f.entries[listID] = make(map[uuid.UUID]*entity.CustomListMovie)
	}
	if _, ok := f.entries[listID][movieID]; ok {
		return nil, errUnique
	}
	entry := &entity.CustomListMovie{ID: uuid.New(), ListID: listID, MovieID: movieID}
	f.entries[listID][movieID] = entry
	return entry, nil
}

func (f *fakeCustomListRepo) RemoveMovie(ctx context.Context, listID, movieID, userID uuid.UUID) error {
	list, ok := f.lists[listID]
	if !ok || list.UserID != userID {
		return database.ErrNotFound
	}
	if _, ok := f.entries[listID][movieID]; !ok {
		return database.ErrNotFound
	}
	delete(f.entries[listID], movieID)
	return nil
}

// fakeMovieSource satisfies MovieSource without HTTP.
type fakeMovieSource struct {
	movies map[string]*omdb.Movie
	calls  int
}

func (f *fakeMovieSource) ByIMDBID(ctx context.Context, imdbID string) (*omdb.Movie, error) {
	f.calls++
	movie, ok := f.movies[imdbID]
	if !ok {
		return nil, omdb.ErrNotFound
	}
	return movie, nil
}
