package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/model"
	"medialog/pkg/storage/sqlite/schema/gen/table"
)

func TestNew(t *testing.T) {
	store := initSqlite(t)
	assert.NotNil(t, store)
}

func TestEntityStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	entities, err := store.ListEntities(ctx)
	assert.Nil(t, err)
	assert.Empty(t, entities)

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID:  603,
			MediaType:  "show",
			Title:      "The Expanse",
			PosterPath: ptr("/expanse.jpg"),
			Added:      ptr(time.Now()),
		},
	}

	id, err := store.CreateEntity(ctx, entity, storage.EntityStateWatching)
	assert.Nil(t, err)

	retrieved, err := store.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
	assert.Nil(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, entity.CatalogID, retrieved.CatalogID)
	assert.Equal(t, entity.Title, retrieved.Title)
	assert.Equal(t, storage.EntityStateWatching, retrieved.State)

	// tracking the same catalog item twice is rejected
	_, err = store.CreateEntity(ctx, entity, storage.EntityStatePlanToWatch)
	assert.Error(t, err)

	// same catalog id under a different media type is fine
	movie := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: 603,
			MediaType: "movie",
			Title:     "The Matrix",
		},
	}
	_, err = store.CreateEntity(ctx, movie, storage.EntityStatePlanToWatch)
	assert.Nil(t, err)

	entities, err = store.ListEntities(ctx)
	assert.Nil(t, err)
	assert.Len(t, entities, 2)

	shows, err := store.ListEntities(ctx, table.TrackedEntity.MediaType.EQ(sqlite.String("show")))
	assert.Nil(t, err)
	require.Len(t, shows, 1)
	assert.Equal(t, "The Expanse", shows[0].Title)

	err = store.DeleteEntity(ctx, id)
	assert.Nil(t, err)

	_, err = store.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestEntityStorage_InvalidInitialState(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: 42,
			MediaType: "show",
			Title:     "Nope",
		},
	}

	_, err := store.CreateEntity(ctx, entity, storage.EntityState("paused"))
	assert.Error(t, err)
}

func TestUpdateEntityState(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: 1399,
			MediaType: "show",
			Title:     "Game of Thrones",
		},
	}

	id, err := store.CreateEntity(ctx, entity, storage.EntityStatePlanToWatch)
	require.Nil(t, err)

	err = store.UpdateEntityState(ctx, id, storage.EntityStateWatching)
	assert.Nil(t, err)

	retrieved, err := store.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
	require.Nil(t, err)
	assert.Equal(t, storage.EntityStateWatching, retrieved.State)

	// writing the current state again is a no-op
	err = store.UpdateEntityState(ctx, id, storage.EntityStateWatching)
	assert.Nil(t, err)

	// completed can only go back to watching
	err = store.UpdateEntityState(ctx, id, storage.EntityStateCompleted)
	require.Nil(t, err)
	err = store.UpdateEntityState(ctx, id, storage.EntityStateOnHold)
	assert.Error(t, err)

	retrieved, err = store.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
	require.Nil(t, err)
	assert.Equal(t, storage.EntityStateCompleted, retrieved.State)

	err = store.UpdateEntityState(ctx, 999, storage.EntityStateWatching)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestUpdateEntityStatesBatch(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	ids := make([]int64, 0, 3)
	for i, state := range []storage.EntityState{
		storage.EntityStateWatching,
		storage.EntityStateOnHold,
		storage.EntityStateCompleted,
	} {
		entity := storage.TrackedEntity{
			TrackedEntity: model.TrackedEntity{
				CatalogID: int64(100 + i),
				MediaType: "show",
				Title:     "Show",
			},
		}
		id, err := store.CreateEntity(ctx, entity, state)
		require.Nil(t, err)
		ids = append(ids, id)
	}

	err := store.UpdateEntityStatesBatch(ctx, ids, storage.EntityStateCompleted)
	assert.Nil(t, err)

	for _, id := range ids {
		retrieved, err := store.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
		require.Nil(t, err)
		assert.Equal(t, storage.EntityStateCompleted, retrieved.State)
	}

	// an empty batch writes nothing
	err = store.UpdateEntityStatesBatch(ctx, nil, storage.EntityStateCompleted)
	assert.Nil(t, err)
}

func TestUpdateEntityFavorite(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: 550,
			MediaType: "movie",
			Title:     "Fight Club",
		},
	}

	id, err := store.CreateEntity(ctx, entity, storage.EntityStatePlanToWatch)
	require.Nil(t, err)

	err = store.UpdateEntityFavorite(ctx, id, true)
	assert.Nil(t, err)

	retrieved, err := store.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
	require.Nil(t, err)
	assert.True(t, retrieved.Favorite)

	err = store.UpdateEntityFavorite(ctx, 999, true)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestWatchedEpisodeStorage(t *testing.T) {
	ctx := context.Background()
	store := initSqlite(t)

	entity := storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: 1396,
			MediaType: "show",
			Title:     "Breaking Bad",
		},
	}

	id, err := store.CreateEntity(ctx, entity, storage.EntityStateWatching)
	require.Nil(t, err)

	episodes, err := store.ListWatchedEpisodes(ctx, id)
	assert.Nil(t, err)
	assert.Empty(t, episodes)

	_, err = store.CreateWatchedEpisode(ctx, model.WatchedEpisode{
		EntityID:      int32(id),
		SeasonNumber:  2,
		EpisodeNumber: 1,
		EpisodeID:     62086,
		WatchedAt:     ptr(time.Now()),
	})
	assert.Nil(t, err)

	_, err = store.CreateWatchedEpisode(ctx, model.WatchedEpisode{
		EntityID:      int32(id),
		SeasonNumber:  1,
		EpisodeNumber: 2,
	})
	assert.Nil(t, err)

	// marking the same episode twice keeps a single row
	_, err = store.CreateWatchedEpisode(ctx, model.WatchedEpisode{
		EntityID:      int32(id),
		SeasonNumber:  1,
		EpisodeNumber: 2,
	})
	assert.Nil(t, err)

	episodes, err = store.ListWatchedEpisodes(ctx, id)
	assert.Nil(t, err)
	require.Len(t, episodes, 2)
	assert.Equal(t, int32(1), episodes[0].SeasonNumber)
	assert.Equal(t, int32(2), episodes[0].EpisodeNumber)
	assert.Equal(t, int32(2), episodes[1].SeasonNumber)

	count, err := store.CountWatchedEpisodes(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, int64(2), count)

	err = store.DeleteWatchedEpisode(ctx, id, 1, 2)
	assert.Nil(t, err)

	count, err = store.CountWatchedEpisodes(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, int64(1), count)

	// deleting the entity cascades to its ledger
	err = store.DeleteEntity(ctx, id)
	assert.Nil(t, err)

	count, err = store.CountWatchedEpisodes(ctx, id)
	assert.Nil(t, err)
	assert.Equal(t, int64(0), count)
}

func initSqlite(t *testing.T) storage.Storage {
	store, err := New(":memory:")
	require.Nil(t, err)
	return store
}

func ptr[A any](a A) *A {
	return &a
}
