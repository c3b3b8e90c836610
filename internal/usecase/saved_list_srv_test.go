package usecase

import (
	"context"
	"testing"

	"cinelog/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestAddToListAndGetBack(t *testing.T) {
	service := NewSavedListService(newFakeSavedMovieRepo(), zap.NewNop())

	userID := uuid.New().String()
	movieID := uuid.New().String()

	saved, err := service.AddToList(context.Background(), userID, &request.AddToListRequest{
		MovieID:  movieID,
		ListType: "watchlist",
	})
	require.NoError(t, err)
	assert.Equal(t, "watchlist", saved.ListType)
	assert.Equal(t, movieID, saved.MovieID)

	watchlist, err := service.GetUserList(context.Background(), userID, "watchlist")
	require.NoError(t, err)
	require.Len(t, watchlist, 1)
	assert.Equal(t, movieID, watchlist[0].MovieID)

	// Lists are independent per type.
	favorites, err := service.GetUserList(context.Background(), userID, "favorites")
	require.NoError(t, err)
	assert.Empty(t, favorites)
}

func TestAddToListDuplicate(t *testing.T) {
	service := NewSavedListService(newFakeSavedMovieRepo(), zap.NewNop())

	userID := uuid.New().String()
	req := &request.AddToListRequest{MovieID: uuid.New().String(), ListType: "favorites"}

	_, err := service.AddToList(context.Background(), userID, req)
	require.NoError(t, err)

	_, err = service.AddToList(context.Background(), userID, req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie already in favorites")
}

func TestAddToListInvalidType(t *testing.T) {
	service := NewSavedListService(newFakeSavedMovieRepo(), zap.NewNop())

	_, err := service.AddToList(context.Background(), uuid.New().String(), &request.AddToListRequest{
		MovieID:  uuid.New().String(),
		ListType: "backlog",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = service.GetUserList(context.Background(), uuid.New().String(), "backlog")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid list type")
}

func TestRemoveFromList(t *testing.T) {
	service := NewSavedListService(newFakeSavedMovieRepo(), zap.NewNop())

	userID := uuid.New().String()
	movieID := uuid.New().String()

	_, err := service.AddToList(context.Background(), userID, &request.AddToListRequest{
		MovieID:  movieID,
		ListType: "watched",
	})
	require.NoError(t, err)

	require.NoError(t, service.RemoveFromList(context.Background(), userID, movieID, "watched"))

	watched, err := service.GetUserList(context.Background(), userID, "watched")
	require.NoError(t, err)
	assert.Empty(t, watched)

	err = service.RemoveFromList(context.Background(), userID, movieID, "watched")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie not found in watched")
}
