package sqlite

import (
	"context"
	"fmt"

	"github.com/go-jet/jet/v2/sqlite"

	"medialog/pkg/storage/sqlite/schema/gen/model"
	"medialog/pkg/storage/sqlite/schema/gen/table"
)

// CreateWatchedEpisode records an episode in the watched ledger. Marking an
// episode that is already watched leaves the existing row untouched.
func (s *SQLite) CreateWatchedEpisode(ctx context.Context, episode model.WatchedEpisode) (int64, error) {
	insertColumns := table.WatchedEpisode.MutableColumns
	if episode.WatchedAt == nil || episode.WatchedAt.IsZero() {
		insertColumns = insertColumns.Except(table.WatchedEpisode.WatchedAt)
	}

	stmt := table.WatchedEpisode.
		INSERT(insertColumns).
		MODEL(episode).
		RETURNING(table.WatchedEpisode.ID).
		ON_CONFLICT(table.WatchedEpisode.EntityID, table.WatchedEpisode.SeasonNumber, table.WatchedEpisode.EpisodeNumber).
		DO_NOTHING()

	result, err := s.handleInsert(ctx, stmt)
	if err != nil {
		return 0, fmt.Errorf("failed to record watched episode: %w", err)
	}

	return result.LastInsertId()
}

// DeleteWatchedEpisode removes one (season, episode) pair from an entity's ledger
func (s *SQLite) DeleteWatchedEpisode(ctx context.Context, entityID int64, season, episode int32) error {
	stmt := table.WatchedEpisode.
		DELETE().
		WHERE(
			table.WatchedEpisode.EntityID.EQ(sqlite.Int64(entityID)).
				AND(table.WatchedEpisode.SeasonNumber.EQ(sqlite.Int32(season))).
				AND(table.WatchedEpisode.EpisodeNumber.EQ(sqlite.Int32(episode))),
		)

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete watched episode: %w", err)
	}

	return nil
}

// ListWatchedEpisodes lists an entity's ledger in (season, episode) order
func (s *SQLite) ListWatchedEpisodes(ctx context.Context, entityID int64) ([]*model.WatchedEpisode, error) {
	stmt := table.WatchedEpisode.
		SELECT(table.WatchedEpisode.AllColumns).
		WHERE(table.WatchedEpisode.EntityID.EQ(sqlite.Int64(entityID))).
		ORDER_BY(
			table.WatchedEpisode.SeasonNumber.ASC(),
			table.WatchedEpisode.EpisodeNumber.ASC(),
		)

	episodes := make([]*model.WatchedEpisode, 0)
	err := stmt.QueryContext(ctx, s.db, &episodes)
	if err != nil {
		return nil, fmt.Errorf("failed to list watched episodes: %w", err)
	}

	return episodes, nil
}

// CountWatchedEpisodes counts the rows in an entity's ledger
func (s *SQLite) CountWatchedEpisodes(ctx context.Context, entityID int64) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM watched_episode WHERE entity_id = ?`, entityID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count watched episodes: %w", err)
	}

	return count, nil
}
