// Package catalog talks to the remote canonical metadata source for
// shows and movies. Consumers depend on the Client interface; the TMDB
// implementation lives in tmdb.go.
package catalog

import (
	"context"
	"errors"
	"time"
)

var ErrNotFound = errors.New("not found in catalog")

// MediaType is the kind of tracked media a catalog entry describes.
type MediaType string

const (
	MediaTypeShow  MediaType = "show"
	MediaTypeMovie MediaType = "movie"
	MediaTypeBook  MediaType = "book"
	MediaTypeManga MediaType = "manga"
)

// IDSource identifies which external identifier namespace an id belongs to.
type IDSource string

const (
	IDSourceIMDB      IDSource = "imdb_id"
	IDSourceSecondary IDSource = "tvdb_id"
)

// Match is a single canonical catalog entry.
type Match struct {
	CatalogID  int64     `json:"catalogId"`
	MediaType  MediaType `json:"mediaType"`
	Title      string    `json:"title"`
	PosterPath string    `json:"posterPath,omitempty"`
	FirstDate  string    `json:"firstDate,omitempty"`
}

// EpisodeRef points at a single episode in a show's structure.
// AirDate is zero when the catalog doesn't know it.
type EpisodeRef struct {
	Season  int32     `json:"season"`
	Episode int32     `json:"episode"`
	AirDate time.Time `json:"airDate,omitzero"`
}

// Aired reports whether the episode has aired as of today.
// An unknown air date counts as aired; the aggregator fails open.
func (e EpisodeRef) Aired(today time.Time) bool {
	if e.AirDate.IsZero() {
		return true
	}
	return !e.AirDate.After(today)
}

type Season struct {
	Number       int32  `json:"number"`
	Name         string `json:"name,omitempty"`
	EpisodeCount int32  `json:"episodeCount"`
}

// ShowStructure is the season/episode layout of a show as the catalog
// currently knows it. These values legitimately change between fetches.
type ShowStructure struct {
	Seasons   []Season    `json:"seasons"`
	Ended     bool        `json:"ended"`
	LastAired *EpisodeRef `json:"lastAired,omitempty"`
	NextToAir *EpisodeRef `json:"nextToAir,omitempty"`
}

// Client is the metadata provider capability the tracker consumes.
type Client interface {
	// FindByExternalID resolves an external identifier to a catalog entry.
	// Returns (nil, nil) when the id resolves to nothing.
	FindByExternalID(ctx context.Context, id string, source IDSource) (*Match, error)
	// SearchByTitle free-text searches the catalog.
	SearchByTitle(ctx context.Context, query string) ([]Match, error)
	// GetShowStructure fetches the current season/episode structure for a show.
	GetShowStructure(ctx context.Context, catalogID int64) (*ShowStructure, error)
}
