package usecase

import (
	"context"
	"testing"

	"cinelog/internal/dto/request"
	"cinelog/pkg/omdb"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMovieTestService() (MovieService, *fakeMovieRepo, *fakeMovieSource) {
	movies := newFakeMovieRepo()
	source := &fakeMovieSource{movies: make(map[string]*omdb.Movie)}
	return NewMovieService(movies, source, zap.NewNop()), movies, source
}

func TestGetOrCreateMovieFromSource(t *testing.T) {
	service, _, source := newMovieTestService()
	source.movies["tt0137523"] = &omdb.Movie{
		IMDBID:     "tt0137523",
		Title:      "Fight Club",
		Year:       "1999",
		Poster:     "https://example.com/fc.jpg",
		Plot:       "An insomniac and a soap maker.",
		Director:   "David Fincher",
		Genre:      "N/A",
		IMDBRating: "8.8",
	}

	movie, err := service.GetOrCreateMovie(context.Background(), &request.LookupMovieRequest{
		IMDBID: "tt0137523",
	})
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, "1999", movie.Year)
	require.NotNil(t, movie.Director)
	assert.Equal(t, "David Fincher", *movie.Director)
	// "N/A" from the source becomes absent
	assert.Nil(t, movie.Genre)
}

func TestGetOrCreateMovieInlineMetadata(t *testing.T) {
	service, _, source := newMovieTestService()

	title := "Heat"
	year := "1995"
	movie, err := service.GetOrCreateMovie(context.Background(), &request.LookupMovieRequest{
		IMDBID: "tt0113277",
		Title:  &title,
		Year:   &year,
	})
	require.NoError(t, err)
	assert.Equal(t, "Heat", movie.Title)
	assert.Zero(t, source.calls, "inline metadata must not hit the source")
}

func TestGetOrCreateMovieIdempotent(t *testing.T) {
	service, _, source := newMovieTestService()
	source.movies["tt0068646"] = &omdb.Movie{IMDBID: "tt0068646", Title: "The Godfather", Year: "1972"}

	first, err := service.GetOrCreateMovie(context.Background(), &request.LookupMovieRequest{IMDBID: "tt0068646"})
	require.NoError(t, err)

	second, err := service.GetOrCreateMovie(context.Background(), &request.LookupMovieRequest{IMDBID: "tt0068646"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, source.calls, "second lookup must use the stored row")
}

func TestGetOrCreateMovieUnknownIMDBID(t *testing.T) {
	service, _, _ := newMovieTestService()

	_, err := service.GetOrCreateMovie(context.Background(), &request.LookupMovieRequest{IMDBID: "tt0000000"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "movie tt0000000 not found")
}

func TestGetMovie(t *testing.T) {
	service, _, source := newMovieTestService()
	source.movies["tt0110912"] = &omdb.Movie{IMDBID: "tt0110912", Title: "Pulp Fiction", Year: "1994"}

	created, err := service.GetOrCreateMovie(context.Background(), &request.LookupMovieRequest{IMDBID: "tt0110912"})
	require.NoError(t, err)

	fetched, err := service.GetMovie(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Pulp Fiction", fetched.Title)

	_, err = service.GetMovie(context.Background(), uuid.New().String())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = service.GetMovie(context.Background(), "not-a-uuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid movie ID format")
}
