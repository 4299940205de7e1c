package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
	"golang.org/x/text/cases"

	"medialog/pkg/cache"
	mhttp "medialog/pkg/http"
	"medialog/pkg/logger"
)

const airDateLayout = "2006-01-02"

// Config holds what the TMDB client needs to reach the API.
type Config struct {
	Scheme     string
	Host       string
	APIKey     string
	CacheTTL   time.Duration
	MaxRetries uint
}

// TMDB implements Client against the TMDB v3 API.
type TMDB struct {
	cfg        Config
	client     mhttp.HTTPClient
	structures *cache.Cache[int64, *ShowStructure]
}

func NewTMDB(cfg Config, client mhttp.HTTPClient) *TMDB {
	if cfg.Scheme == "" {
		cfg.Scheme = "https"
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = 3
	}
	if client == nil {
		client = mhttp.NewRateLimitedHTTPClient()
	}

	return &TMDB{
		cfg:        cfg,
		client:     client,
		structures: cache.New[int64, *ShowStructure](cfg.CacheTTL),
	}
}

type findResponse struct {
	MovieResults []searchResult `json:"movie_results"`
	TVResults    []searchResult `json:"tv_results"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	ID           int64  `json:"id"`
	MediaType    string `json:"media_type"`
	Title        string `json:"title"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	ReleaseDate  string `json:"release_date"`
	FirstAirDate string `json:"first_air_date"`
}

type seriesDetailsResponse struct {
	Status           string          `json:"status"`
	Seasons          []seasonDetails `json:"seasons"`
	LastEpisodeToAir *episodeToAir   `json:"last_episode_to_air"`
	NextEpisodeToAir *episodeToAir   `json:"next_episode_to_air"`
}

type seasonDetails struct {
	SeasonNumber int32  `json:"season_number"`
	Name         string `json:"name"`
	EpisodeCount int32  `json:"episode_count"`
}

type episodeToAir struct {
	SeasonNumber  int32  `json:"season_number"`
	EpisodeNumber int32  `json:"episode_number"`
	AirDate       string `json:"air_date"`
}

// FindByExternalID resolves an imdb or secondary catalog id to a single entry.
func (t *TMDB) FindByExternalID(ctx context.Context, id string, source IDSource) (*Match, error) {
	log := logger.FromCtx(ctx)

	if id == "" {
		return nil, nil
	}

	var res findResponse
	err := t.get(ctx, fmt.Sprintf("/3/find/%s", url.PathEscape(id)), url.Values{"external_source": []string{string(source)}}, &res)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Debug("external id did not resolve", zap.String("id", id))
			return nil, nil
		}
		return nil, err
	}

	if len(res.TVResults) > 0 {
		m := res.TVResults[0].match(MediaTypeShow)
		return &m, nil
	}
	if len(res.MovieResults) > 0 {
		m := res.MovieResults[0].match(MediaTypeMovie)
		return &m, nil
	}

	return nil, nil
}

// SearchByTitle free-text searches shows and movies. Results whose folded
// title equals the folded query sort first so callers can take the head as
// the best candidate.
func (t *TMDB) SearchByTitle(ctx context.Context, query string) ([]Match, error) {
	if query == "" {
		return nil, nil
	}

	var res searchResponse
	err := t.get(ctx, "/3/search/multi", url.Values{"query": []string{query}}, &res)
	if err != nil {
		return nil, err
	}

	matches := make([]Match, 0, len(res.Results))
	for _, r := range res.Results {
		switch r.MediaType {
		case "tv":
			matches = append(matches, r.match(MediaTypeShow))
		case "movie":
			matches = append(matches, r.match(MediaTypeMovie))
		}
	}

	fold := cases.Fold()
	folded := fold.String(query)
	slices.SortStableFunc(matches, func(a, b Match) int {
		aExact := fold.String(a.Title) == folded
		bExact := fold.String(b.Title) == folded
		switch {
		case aExact && !bExact:
			return -1
		case bExact && !aExact:
			return 1
		default:
			return 0
		}
	})

	return matches, nil
}

// GetShowStructure fetches the current season layout for a show. Responses are
// cached for the configured freshness window.
func (t *TMDB) GetShowStructure(ctx context.Context, catalogID int64) (*ShowStructure, error) {
	if structure, ok := t.structures.Get(catalogID); ok {
		return structure, nil
	}

	var res seriesDetailsResponse
	err := t.get(ctx, fmt.Sprintf("/3/tv/%d", catalogID), nil, &res)
	if err != nil {
		return nil, err
	}

	structure := &ShowStructure{
		Ended:     res.Status == "Ended" || res.Status == "Canceled",
		LastAired: res.LastEpisodeToAir.ref(),
		NextToAir: res.NextEpisodeToAir.ref(),
	}
	for _, s := range res.Seasons {
		structure.Seasons = append(structure.Seasons, Season{
			Number:       s.SeasonNumber,
			Name:         s.Name,
			EpisodeCount: s.EpisodeCount,
		})
	}
	slices.SortFunc(structure.Seasons, func(a, b Season) int {
		return int(a.Number) - int(b.Number)
	})

	t.structures.Set(catalogID, structure)
	return structure, nil
}

func (r searchResult) match(mediaType MediaType) Match {
	title := r.Title
	firstDate := r.ReleaseDate
	if mediaType == MediaTypeShow {
		title = r.Name
		firstDate = r.FirstAirDate
	}

	return Match{
		CatalogID:  r.ID,
		MediaType:  mediaType,
		Title:      title,
		PosterPath: r.PosterPath,
		FirstDate:  firstDate,
	}
}

func (e *episodeToAir) ref() *EpisodeRef {
	if e == nil {
		return nil
	}

	ref := &EpisodeRef{
		Season:  e.SeasonNumber,
		Episode: e.EpisodeNumber,
	}
	if parsed, err := time.Parse(airDateLayout, e.AirDate); err == nil {
		ref.AirDate = parsed
	}
	return ref
}

func (t *TMDB) get(ctx context.Context, path string, query url.Values, out any) error {
	log := logger.FromCtx(ctx)

	u := url.URL{
		Scheme:   t.cfg.Scheme,
		Host:     t.cfg.Host,
		Path:     path,
		RawQuery: query.Encode(),
	}

	body, err := retry.DoWithData(func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		if err != nil {
			return nil, retry.Unrecoverable(err)
		}
		req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
		req.Header.Set("accept", "application/json")

		res, err := t.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer res.Body.Close()

		switch {
		case res.StatusCode == http.StatusNotFound:
			return nil, retry.Unrecoverable(ErrNotFound)
		case res.StatusCode == http.StatusUnauthorized:
			return nil, retry.Unrecoverable(fmt.Errorf("catalog auth failed: %s", res.Status))
		case res.StatusCode != http.StatusOK:
			return nil, fmt.Errorf("unexpected catalog response status: %s", res.Status)
		}

		return io.ReadAll(res.Body)
	},
		retry.Attempts(t.cfg.MaxRetries),
		retry.Context(ctx),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Debug("catalog request failed", zap.String("path", path), zap.Error(err))
		}
		return err
	}

	return json.Unmarshal(body, out)
}
