package omdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"cinelog/pkg/utils"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Movie is the subset of the OMDB payload we persist.
type Movie struct {
	IMDBID     string `json:"imdbID"`
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	IMDBRating string `json:"imdbRating"`
}

type apiResponse struct {
	Movie
	Response string `json:"Response"` // "True" or "False"
	Error    string `json:"Error"`
}

// ErrNotFound is returned when OMDB has no record for the requested id.
var ErrNotFound = fmt.Errorf("movie not found in OMDB")

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *cache.Cache
	log        *zap.Logger
}

func NewClient(config utils.OMDBConfig, log *zap.Logger) *Client {
	return &Client{
		baseURL: config.BaseURL,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		// OMDB data barely changes, cache lookups for an hour
		cache: cache.New(1*time.Hour, 10*time.Minute),
		log:   log.With(zap.String("client", "omdb")),
	}
}

// ByIMDBID fetches movie metadata for an IMDB id, serving repeats from cache.
func (c *Client) ByIMDBID(ctx context.Context, imdbID string) (*Movie, error) {
	if cached, found := c.cache.Get(imdbID); found {
		movie := cached.(Movie)
		return &movie, nil
	}

	reqURL := fmt.Sprintf("%s?i=%s&plot=full&apikey=%s",
		c.baseURL, url.QueryEscape(imdbID), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build OMDB request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("OMDB request failed",
			zap.Error(err),
			zap.String("imdb_id", imdbID),
		)
		return nil, fmt.Errorf("fetch movie %s from OMDB: %w", imdbID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("OMDB returned non-200",
			zap.Int("status", resp.StatusCode),
			zap.String("imdb_id", imdbID),
		)
		return nil, fmt.Errorf("OMDB returned status %d for %s", resp.StatusCode, imdbID)
	}

	var payload apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode OMDB response for %s: %w", imdbID, err)
	}

	if payload.Response != "True" {
		c.log.Warn("OMDB lookup miss",
			zap.String("imdb_id", imdbID),
			zap.String("omdb_error", payload.Error),
		)
		return nil, ErrNotFound
	}

	c.cache.Set(imdbID, payload.Movie, cache.DefaultExpiration)

	return &payload.Movie, nil
}
