// Package tracker ties the catalog client and the entity store together:
// tracking entities, recording watch history, reconciling foreign imports,
// and scanning tracked shows for catch-up promotion.
package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"go.uber.org/zap"

	"medialog/config"
	"medialog/pkg/catalog"
	"medialog/pkg/logger"
	"medialog/pkg/progress"
	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/model"
	"medialog/pkg/storage/sqlite/schema/gen/table"
)

type Tracker struct {
	catalog catalog.Client
	storage storage.Storage
	config  config.Tracker
}

func New(catalogClient catalog.Client, store storage.Storage, cfg config.Tracker) Tracker {
	return Tracker{
		catalog: catalogClient,
		storage: store,
		config:  cfg,
	}
}

// Track starts tracking a catalog entry in plan_to_watch. At most one entity
// may exist per (catalog id, media type).
func (t Tracker) Track(ctx context.Context, match catalog.Match) (*storage.TrackedEntity, error) {
	log := logger.FromCtx(ctx)

	if match.CatalogID == 0 {
		return nil, errors.New("catalog id is required")
	}

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: match.CatalogID,
			MediaType: string(match.MediaType),
			Title:     match.Title,
			Added:     ptr(time.Now()),
		},
	}
	if match.PosterPath != "" {
		entity.PosterPath = &match.PosterPath
	}
	if match.FirstDate != "" {
		entity.FirstDate = &match.FirstDate
	}

	id, err := t.storage.CreateEntity(ctx, entity, storage.EntityStatePlanToWatch)
	if err != nil {
		log.Debug("failed to track entity", zap.Int64("catalogID", match.CatalogID), zap.Error(err))
		return nil, err
	}

	return t.storage.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
}

// List returns tracked entities with their current state, optionally filtered
func (t Tracker) List(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.TrackedEntity, error) {
	return t.storage.ListEntities(ctx, where...)
}

// Get returns one tracked entity by id
func (t Tracker) Get(ctx context.Context, id int64) (*storage.TrackedEntity, error) {
	return t.storage.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
}

// Remove deletes a tracked entity, its state history, and its ledger
func (t Tracker) Remove(ctx context.Context, id int64) error {
	if _, err := t.Get(ctx, id); err != nil {
		return err
	}
	return t.storage.DeleteEntity(ctx, id)
}

// Search free-text searches the catalog
func (t Tracker) Search(ctx context.Context, query string) ([]catalog.Match, error) {
	if query == "" {
		return nil, errors.New("query is empty")
	}
	return t.catalog.SearchByTitle(ctx, query)
}

// MarkEpisodeWatched records one (season, episode) pair in an entity's ledger.
// Watching an episode pulls a plan_to_watch or dropped entity into watching.
// episodeID may be zero when the catalog id of the episode isn't known.
func (t Tracker) MarkEpisodeWatched(ctx context.Context, entityID int64, season, episode int32, episodeID int64) error {
	entity, err := t.Get(ctx, entityID)
	if err != nil {
		return err
	}

	_, err = t.storage.CreateWatchedEpisode(ctx, model.WatchedEpisode{
		EntityID:      int32(entityID),
		SeasonNumber:  season,
		EpisodeNumber: episode,
		EpisodeID:     episodeID,
		WatchedAt:     ptr(time.Now()),
	})
	if err != nil {
		return err
	}

	switch entity.State {
	case storage.EntityStatePlanToWatch, storage.EntityStateDropped:
		return t.storage.UpdateEntityState(ctx, entityID, storage.EntityStateWatching)
	}

	return nil
}

// UnwatchEpisode removes one (season, episode) pair from an entity's ledger.
// Unwatching the only watched episode returns the entity to plan_to_watch;
// unwatching while completed returns it to watching.
func (t Tracker) UnwatchEpisode(ctx context.Context, entityID int64, season, episode int32) error {
	entity, err := t.Get(ctx, entityID)
	if err != nil {
		return err
	}

	err = t.storage.DeleteWatchedEpisode(ctx, entityID, season, episode)
	if err != nil {
		return err
	}

	count, err := t.storage.CountWatchedEpisodes(ctx, entityID)
	if err != nil {
		return err
	}

	if count == 0 {
		// on_hold, completed, and dropped have no direct transition back to
		// plan_to_watch; step through watching first.
		switch entity.State {
		case storage.EntityStateOnHold, storage.EntityStateCompleted, storage.EntityStateDropped:
			if err := t.storage.UpdateEntityState(ctx, entityID, storage.EntityStateWatching); err != nil {
				return err
			}
		}
		return t.storage.UpdateEntityState(ctx, entityID, storage.EntityStatePlanToWatch)
	}

	if entity.State == storage.EntityStateCompleted {
		return t.storage.UpdateEntityState(ctx, entityID, storage.EntityStateWatching)
	}

	return nil
}

// SetStatus moves an entity to an explicitly chosen status. The transition
// set is authoritative; writing the current status is a no-op.
func (t Tracker) SetStatus(ctx context.Context, entityID int64, state storage.EntityState) error {
	if !state.Valid() {
		return fmt.Errorf("unknown status %q", state)
	}
	return t.storage.UpdateEntityState(ctx, entityID, state)
}

// SetFavorite flips the favorite flag and nothing else
func (t Tracker) SetFavorite(ctx context.Context, entityID int64, favorite bool) error {
	return t.storage.UpdateEntityFavorite(ctx, entityID, favorite)
}

// Progress is the aggregator output for one entity as of a point in time.
type Progress struct {
	EntityID     int64         `json:"entityId"`
	State        string        `json:"state"`
	WatchedCount int           `json:"watchedCount"`
	TotalAired   int           `json:"totalAired"`
	Remaining    int           `json:"remaining"`
	CaughtUp     bool          `json:"caughtUp"`
	NextEpisode  *progress.Key `json:"nextEpisode,omitempty"`
}

// GetProgress computes watch progress for one entity. Catalog structure is
// fetched for shows only; a lookup failure degrades to the fail-open
// aggregator path rather than erroring.
func (t Tracker) GetProgress(ctx context.Context, entityID int64, today time.Time) (*Progress, error) {
	log := logger.FromCtx(ctx)

	entity, err := t.Get(ctx, entityID)
	if err != nil {
		return nil, err
	}

	ledger, err := t.ledgerFor(ctx, entityID)
	if err != nil {
		return nil, err
	}

	var structure *catalog.ShowStructure
	if entity.MediaType == string(catalog.MediaTypeShow) {
		structure, err = t.catalog.GetShowStructure(ctx, entity.CatalogID)
		if err != nil {
			log.Debug("failed to fetch show structure", zap.Int64("catalogID", entity.CatalogID), zap.Error(err))
			structure = nil
		}
	}

	completed := entity.State == storage.EntityStateCompleted
	result := &Progress{
		EntityID:     entityID,
		State:        string(entity.State),
		WatchedCount: progress.DisplayWatchedCount(ledger, structure),
		TotalAired:   progress.TotalAired(structure, today),
		Remaining:    progress.Remaining(ledger, structure, today),
		CaughtUp:     progress.CaughtUp(completed, ledger, structure, today),
	}

	if next, ok := progress.NextEpisode(ledger, structure, today); ok {
		result.NextEpisode = &next
	}

	return result, nil
}

func (t Tracker) ledgerFor(ctx context.Context, entityID int64) (progress.Ledger, error) {
	episodes, err := t.storage.ListWatchedEpisodes(ctx, entityID)
	if err != nil {
		return nil, err
	}

	ledger := progress.NewLedger()
	for _, e := range episodes {
		watchedAt := time.Time{}
		if e.WatchedAt != nil {
			watchedAt = *e.WatchedAt
		}
		ledger.Add(e.SeasonNumber, e.EpisodeNumber, watchedAt)
	}

	return ledger, nil
}

func ptr[A any](a A) *A {
	return &a
}
