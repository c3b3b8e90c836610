package omdb

import (
	"context"
	"testing"

	"cinelog/pkg/utils"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()

	client := NewClient(utils.OMDBConfig{
		BaseURL: "https://omdb.test/",
		APIKey:  "test-key",
	}, zap.NewNop())

	httpmock.ActivateNonDefault(client.httpClient)
	t.Cleanup(httpmock.DeactivateAndReset)

	return client
}

func TestByIMDBID(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://omdb\.test/`,
		httpmock.NewStringResponder(200, `{
			"Response": "True",
			"imdbID": "tt0133093",
			"Title": "The Matrix",
			"Year": "1999",
			"Poster": "https://img.test/matrix.jpg",
			"Plot": "A hacker learns the truth.",
			"Genre": "Action, Sci-Fi",
			"Director": "Lana Wachowski, Lilly Wachowski",
			"Actors": "Keanu Reeves",
			"imdbRating": "8.7"
		}`))

	movie, err := client.ByIMDBID(context.Background(), "tt0133093")
	require.NoError(t, err)
	assert.Equal(t, "tt0133093", movie.IMDBID)
	assert.Equal(t, "The Matrix", movie.Title)
	assert.Equal(t, "1999", movie.Year)
	assert.Equal(t, "8.7", movie.IMDBRating)
}

func TestByIMDBIDNotFound(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://omdb\.test/`,
		httpmock.NewStringResponder(200, `{"Response": "False", "Error": "Incorrect IMDb ID."}`))

	_, err := client.ByIMDBID(context.Background(), "tt0000000")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestByIMDBIDServerError(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://omdb\.test/`,
		httpmock.NewStringResponder(500, "boom"))

	_, err := client.ByIMDBID(context.Background(), "tt0133093")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

// The second lookup for the same id must come from cache, not HTTP.
func TestByIMDBIDCachesHits(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://omdb\.test/`,
		httpmock.NewStringResponder(200, `{
			"Response": "True",
			"imdbID": "tt0111161",
			"Title": "The Shawshank Redemption",
			"Year": "1994",
			"Poster": "https://img.test/shawshank.jpg"
		}`))

	first, err := client.ByIMDBID(context.Background(), "tt0111161")
	require.NoError(t, err)

	second, err := client.ByIMDBID(context.Background(), "tt0111161")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

// Misses are not cached; a later retry hits the source again.
func TestByIMDBIDDoesNotCacheMisses(t *testing.T) {
	client := newTestClient(t)

	httpmock.RegisterResponder("GET", `=~^https://omdb\.test/`,
		httpmock.NewStringResponder(200, `{"Response": "False", "Error": "Incorrect IMDb ID."}`))

	_, err := client.ByIMDBID(context.Background(), "tt0000000")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = client.ByIMDBID(context.Background(), "tt0000000")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, 2, httpmock.GetTotalCallCount())
}
