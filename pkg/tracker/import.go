package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"medialog/pkg/catalog"
	"medialog/pkg/logger"
	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/model"
)

type dedupKey struct {
	catalogID int64
	mediaType string
}

// ImportHistory reconciles a batch of foreign watch-history records against
// the catalog and the tracked set. Records resolve strictly one at a time:
// an external id that resolves to the expected media type auto-imports, a
// title search hit is deferred to pending review, anything else lands in
// failed. Lookups are throttled by the configured import rate. Duplicates of
// already-tracked or already-staged entities are dropped silently.
func (t Tracker) ImportHistory(ctx context.Context, records []ForeignRecord, onProgress ProgressFunc) (*ReconciliationResult, error) {
	log := logger.FromCtx(ctx)

	result := &ReconciliationResult{
		Failed:  []string{},
		Pending: []PendingImportItem{},
	}

	tracked, err := t.trackedKeys(ctx)
	if err != nil {
		return nil, err
	}

	limiter := importLimiter(t.config.ImportRate)
	staged := make(map[dedupKey]struct{})
	importedAt := time.Now()

	notify := func(current int, title string) {
		if onProgress != nil {
			onProgress(current, len(records), title)
		}
	}

	for i, record := range records {
		title := record.Title
		if title == "" {
			title = fmt.Sprintf("record %d", i+1)
		}

		match, err := t.resolveExact(ctx, limiter, record)
		if err != nil {
			if ctx.Err() != nil {
				return result, ctx.Err()
			}
			log.Debug("failed to resolve import record", zap.String("title", title), zap.Error(err))
			result.Failed = append(result.Failed, title)
			notify(i+1, title)
			continue
		}

		if match != nil {
			imported, err := t.importRecord(ctx, record, *match, importedAt, tracked, staged)
			if err != nil && !imported {
				log.Debug("failed to import record", zap.String("title", title), zap.Error(err))
				result.Failed = append(result.Failed, title)
			}
			if imported {
				if err != nil {
					// the entity was created; only part of its ledger made it
					log.Debug("imported record with a partial ledger", zap.String("title", title), zap.Error(err))
				}
				if record.Kind == RecordKindShow {
					result.Shows++
				} else {
					result.Movies++
				}
			}
			notify(i+1, title)
			continue
		}

		pending, err := t.searchAmbiguous(ctx, limiter, record)
		if err != nil && ctx.Err() != nil {
			return result, ctx.Err()
		}
		if pending != nil {
			result.Pending = append(result.Pending, *pending)
		} else {
			result.Failed = append(result.Failed, title)
		}
		notify(i+1, title)
	}

	return result, nil
}

// ProcessPendingImports converts the selected pending items into tracked
// entities using the same construction and dedup path as auto-import. The
// tracked set is re-read because it may have changed since the batch ran.
// Returns how many shows and movies were imported.
func (t Tracker) ProcessPendingImports(ctx context.Context, items []PendingImportItem) (shows, movies int, err error) {
	log := logger.FromCtx(ctx)

	tracked, err := t.trackedKeys(ctx)
	if err != nil {
		return 0, 0, err
	}

	staged := make(map[dedupKey]struct{})
	importedAt := time.Now()

	for _, item := range items {
		imported, err := t.importRecord(ctx, item.Record, item.Match, importedAt, tracked, staged)
		if err != nil {
			log.Debug("failed to confirm pending import", zap.String("title", item.Record.Title), zap.Error(err))
		}
		if !imported {
			continue
		}
		if item.Record.Kind == RecordKindShow {
			shows++
		} else {
			movies++
		}
	}

	return shows, movies, nil
}

// resolveExact tries the record's external identifiers against the catalog.
// A hit of the wrong media type is not a match.
func (t Tracker) resolveExact(ctx context.Context, limiter *rate.Limiter, record ForeignRecord) (*catalog.Match, error) {
	if record.IDs == nil {
		return nil, nil
	}

	lookups := []struct {
		id     string
		source catalog.IDSource
	}{
		{record.IDs.IMDB, catalog.IDSourceIMDB},
		{record.IDs.Secondary, catalog.IDSourceSecondary},
	}

	for _, lookup := range lookups {
		if lookup.id == "" {
			continue
		}
		if err := limiter.Wait(ctx); err != nil {
			return nil, err
		}
		match, err := t.catalog.FindByExternalID(ctx, lookup.id, lookup.source)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				continue
			}
			return nil, err
		}
		if match != nil && match.MediaType == record.Kind.MediaType() {
			return match, nil
		}
	}

	return nil, nil
}

// searchAmbiguous falls back to free-text title search. A candidate of the
// expected media type becomes a pending item, never an auto-import.
func (t Tracker) searchAmbiguous(ctx context.Context, limiter *rate.Limiter, record ForeignRecord) (*PendingImportItem, error) {
	if record.Title == "" {
		return nil, nil
	}

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	matches, err := t.catalog.SearchByTitle(ctx, record.Title)
	if err != nil {
		return nil, err
	}

	for _, match := range matches {
		if match.MediaType == record.Kind.MediaType() {
			return &PendingImportItem{Record: record, Match: match}, nil
		}
	}

	return nil, nil
}

// importRecord creates the tracked entity for a resolved record and, for
// shows, synthesizes its watched ledger. Specials are never imported.
func (t Tracker) importRecord(ctx context.Context, record ForeignRecord, match catalog.Match, importedAt time.Time, tracked, staged map[dedupKey]struct{}) (bool, error) {
	key := dedupKey{catalogID: match.CatalogID, mediaType: string(match.MediaType)}
	if _, ok := tracked[key]; ok {
		return false, nil
	}
	if _, ok := staged[key]; ok {
		return false, nil
	}

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: match.CatalogID,
			MediaType: string(match.MediaType),
			Title:     match.Title,
			Added:     ptr(importedAt),
		},
	}
	if match.PosterPath != "" {
		entity.PosterPath = &match.PosterPath
	}
	if match.FirstDate != "" {
		entity.FirstDate = &match.FirstDate
	}

	id, err := t.storage.CreateEntity(ctx, entity, importedState(record))
	if err != nil {
		return false, err
	}
	staged[key] = struct{}{}

	if record.Kind != RecordKindShow {
		return true, nil
	}

	for _, season := range record.Seasons {
		if season.Special || season.Number == 0 {
			continue
		}
		for _, episode := range season.Episodes {
			if !episode.Watched {
				continue
			}
			watchedAt := importedAt
			if ts, err := time.Parse(time.RFC3339, episode.WatchedAt); err == nil {
				watchedAt = ts
			}
			_, err := t.storage.CreateWatchedEpisode(ctx, model.WatchedEpisode{
				EntityID:      int32(id),
				SeasonNumber:  season.Number,
				EpisodeNumber: episode.Number,
				EpisodeID:     episode.ID,
				WatchedAt:     &watchedAt,
			})
			if err != nil {
				return true, err
			}
		}
	}

	return true, nil
}

// importedState picks the initial state for an imported record. Movies use
// the watched flag; shows honor the foreign status vocabulary when present
// and otherwise derive from whether anything was watched.
func importedState(record ForeignRecord) storage.EntityState {
	if record.Kind != RecordKindShow {
		if record.Watched {
			return storage.EntityStateCompleted
		}
		return storage.EntityStatePlanToWatch
	}

	if record.Status != "" {
		return MapForeignStatus(record.Status)
	}

	for _, season := range record.Seasons {
		for _, episode := range season.Episodes {
			if episode.Watched {
				return storage.EntityStateWatching
			}
		}
	}

	return storage.EntityStatePlanToWatch
}

func (t Tracker) trackedKeys(ctx context.Context) (map[dedupKey]struct{}, error) {
	entities, err := t.storage.ListEntities(ctx)
	if err != nil {
		return nil, err
	}

	keys := make(map[dedupKey]struct{}, len(entities))
	for _, entity := range entities {
		keys[dedupKey{catalogID: entity.CatalogID, mediaType: entity.MediaType}] = struct{}{}
	}

	return keys, nil
}

func importLimiter(recordsPerSecond float64) *rate.Limiter {
	if recordsPerSecond <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}
	return rate.NewLimiter(rate.Limit(recordsPerSecond), 1)
}
