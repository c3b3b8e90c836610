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

func boolPtr(b bool) *bool { return &b }

func TestCreateListDefaultsPrivate(t *testing.T) {
	service := NewCustomListService(newFakeCustomListRepo(), zap.NewNop())

	userID := uuid.New().String()
	list, err := service.CreateList(context.Background(), userID, &request.CreateCustomListRequest{
		Name: "Noir favourites",
	})
	require.NoError(t, err)
	assert.False(t, list.IsPublic)
	assert.Equal(t, userID, list.UserID)
}

func TestGetListByIDVisibility(t *testing.T) {
	service := NewCustomListService(newFakeCustomListRepo(), zap.NewNop())

	ownerID := uuid.New().String()
	created, err := service.CreateList(context.Background(), ownerID, &request.CreateCustomListRequest{
		Name: "Private picks",
	})
	require.NoError(t, err)

	// Owner sees it.
	detail, err := service.GetListByID(context.Background(), created.ID, ownerID)
	require.NoError(t, err)
	assert.Equal(t, "Private picks", detail.Name)

	// Stranger and anonymous don't.
	_, err = service.GetListByID(context.Background(), created.ID, uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list not found")

	_, err = service.GetListByID(context.Background(), created.ID, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list not found")

	// Flip public, anonymous sees it.
	_, err = service.UpdateList(context.Background(), created.ID, ownerID, &request.UpdateCustomListRequest{
		IsPublic: boolPtr(true),
	})
	require.NoError(t, err)

	detail, err = service.GetListByID(context.Background(), created.ID, "")
	require.NoError(t, err)
	assert.True(t, detail.IsPublic)
}

func TestUpdateListOwnerScoped(t *testing.T) {
	service := NewCustomListService(newFakeCustomListRepo(), zap.NewNop())

	ownerID := uuid.New().String()
	created, err := service.CreateList(context.Background(), ownerID, &request.CreateCustomListRequest{
		Name: "Watch soon",
	})
	require.NoError(t, err)

	name := "Watch eventually"
	_, err = service.UpdateList(context.Background(), created.ID, uuid.New().String(), &request.UpdateCustomListRequest{
		Name: &name,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list not found")

	updated, err := service.UpdateList(context.Background(), created.ID, ownerID, &request.UpdateCustomListRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, name, updated.Name)
}

func TestListMovieMembership(t *testing.T) {
	service := NewCustomListService(newFakeCustomListRepo(), zap.NewNop())

	ownerID := uuid.New().String()
	created, err := service.CreateList(context.Background(), ownerID, &request.CreateCustomListRequest{
		Name:     "Heist movies",
		IsPublic: boolPtr(true),
	})
	require.NoError(t, err)

	movieID := uuid.New().String()
	entry, err := service.AddMovieToList(context.Background(), created.ID, ownerID, &request.AddListMovieRequest{
		MovieID: movieID,
	})
	require.NoError(t, err)
	assert.Equal(t, movieID, entry.MovieID)

	_, err = service.AddMovieToList(context.Background(), created.ID, ownerID, &request.AddListMovieRequest{
		MovieID: movieID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie already in list")

	// Only the owner can add.
	_, err = service.AddMovieToList(context.Background(), created.ID, uuid.New().String(), &request.AddListMovieRequest{
		MovieID: uuid.New().String(),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list not found")

	detail, err := service.GetListByID(context.Background(), created.ID, "")
	require.NoError(t, err)
	require.Len(t, detail.Movies, 1)

	require.NoError(t, service.RemoveMovieFromList(context.Background(), created.ID, movieID, ownerID))

	err = service.RemoveMovieFromList(context.Background(), created.ID, movieID, ownerID)
	require.Error(t, err)
}

func TestGetUserAndPublicLists(t *testing.T) {
	repo := newFakeCustomListRepo()
	service := NewCustomListService(repo, zap.NewNop())

	ownerID := uuid.New().String()
	_, err := service.CreateList(context.Background(), ownerID, &request.CreateCustomListRequest{
		Name: "Private one",
	})
	require.NoError(t, err)
	public, err := service.CreateList(context.Background(), ownerID, &request.CreateCustomListRequest{
		Name:     "Public one",
		IsPublic: boolPtr(true),
	})
	require.NoError(t, err)

	mine, err := service.GetUserLists(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)

	browse, err := service.GetPublicLists(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, browse, 1)
	assert.Equal(t, public.ID, browse[0].ID)
}

func TestDeleteListCascades(t *testing.T) {
	repo := newFakeCustomListRepo()
	service := NewCustomListService(repo, zap.NewNop())

	ownerID := uuid.New().String()
	created, err := service.CreateList(context.Background(), ownerID, &request.CreateCustomListRequest{
		Name: "Short lived",
	})
	require.NoError(t, err)

	_, err = service.AddMovieToList(context.Background(), created.ID, ownerID, &request.AddListMovieRequest{
		MovieID: uuid.New().String(),
	})
	require.NoError(t, err)

	require.NoError(t, service.DeleteList(context.Background(), created.ID, ownerID))
	assert.Empty(t, repo.lists)
	assert.Empty(t, repo.entries)

	err = service.DeleteList(context.Background(), created.ID, ownerID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "list not found")
}
