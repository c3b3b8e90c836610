package usecase

import (
	"context"
	"testing"
	"time"

	"cinelog/internal/data/entity"
	"cinelog/internal/data/repository"
	"cinelog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReviewTestService(t *testing.T) (ReviewService, *fakeReviewRepo, *fakeMovieRepo) {
	t.Helper()

	reviews := newFakeReviewRepo()
	movies := newFakeMovieRepo()
	repo := &repository.Repository{Review: reviews, Movie: movies}

	return NewReviewService(repo, zap.NewNop()), reviews, movies
}

func seedMovie(movies *fakeMovieRepo) *entity.Movie {
	movie := &entity.Movie{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		IMDBID:    "tt0133093",
		Title:     "The Matrix",
		Year:      "1999",
		PosterURL: "https://img.test/matrix.jpg",
	}
	movies.movies[movie.ID] = movie
	return movie
}

func TestCreateReviewDefaultsToPublic(t *testing.T) {
	service, reviews, movies := newReviewTestService(t)
	movie := seedMovie(movies)
	userID := uuid.New().String()

	resp, err := service.CreateReview(context.Background(), userID, &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  8,
	})
	require.NoError(t, err)
	assert.True(t, resp.IsPublic)
	assert.Equal(t, 8, resp.Rating)

	stored := reviews.reviews[uuid.MustParse(resp.ID)]
	require.NotNil(t, stored)
	assert.True(t, stored.IsPublic)
}

func TestCreateReviewUnknownMovie(t *testing.T) {
	service, _, _ := newReviewTestService(t)

	_, err := service.CreateReview(context.Background(), uuid.New().String(), &request.CreateReviewRequest{
		MovieID: uuid.New().String(),
		Rating:  5,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCreateReviewInvalidRating(t *testing.T) {
	service, _, movies := newReviewTestService(t)
	movie := seedMovie(movies)

	_, err := service.CreateReview(context.Background(), uuid.New().String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  11,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

// Partial update: only fields the patch names change; the rest keep
// their values.
func TestUpdateReviewPartialPatch(t *testing.T) {
	service, _, movies := newReviewTestService(t)
	movie := seedMovie(movies)
	userID := uuid.New().String()

	text := "great rewatch"
	created, err := service.CreateReview(context.Background(), userID, &request.CreateReviewRequest{
		MovieID:    movie.ID.String(),
		Rating:     7,
		ReviewText: &text,
	})
	require.NoError(t, err)

	newRating := 9
	updated, err := service.UpdateReview(context.Background(), created.ID, userID, &request.UpdateReviewRequest{
		Rating: &newRating,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, updated.Rating)
	require.NotNil(t, updated.ReviewText)
	assert.Equal(t, "great rewatch", *updated.ReviewText)
	assert.True(t, updated.IsPublic)
}

// Someone else's review behaves as absent on update.
func TestUpdateReviewOwnerScoped(t *testing.T) {
	service, _, movies := newReviewTestService(t)
	movie := seedMovie(movies)

	created, err := service.CreateReview(context.Background(), uuid.New().String(), &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  7,
	})
	require.NoError(t, err)

	rating := 1
	_, err = service.UpdateReview(context.Background(), created.ID, uuid.New().String(), &request.UpdateReviewRequest{
		Rating: &rating,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review not found")
}

// Create, fetch, hide, then the detail fetch returns not-found.
func TestReviewVisibilityScenario(t *testing.T) {
	service, _, movies := newReviewTestService(t)
	movie := seedMovie(movies)
	userID := uuid.New().String()

	created, err := service.CreateReview(context.Background(), userID, &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  6,
	})
	require.NoError(t, err)

	detail, err := service.GetReviewByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.ID)

	hidden := false
	_, err = service.UpdateReview(context.Background(), created.ID, userID, &request.UpdateReviewRequest{
		IsPublic: &hidden,
	})
	require.NoError(t, err)

	_, err = service.GetReviewByID(context.Background(), created.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review not found")

	feed, err := service.GetPublicReviews(context.Background(), 10)
	require.NoError(t, err)
	assert.Empty(t, feed)
}

func TestDeleteReview(t *testing.T) {
	service, reviews, movies := newReviewTestService(t)
	movie := seedMovie(movies)
	userID := uuid.New().String()

	created, err := service.CreateReview(context.Background(), userID, &request.CreateReviewRequest{
		MovieID: movie.ID.String(),
		Rating:  4,
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteReview(context.Background(), created.ID, userID))
	assert.Empty(t, reviews.reviews)

	err = service.DeleteReview(context.Background(), created.ID, userID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review not found")
}
