package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/model"
)

func TestMigration_FreshDatabase(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.db")
	ctx := context.Background()

	store, err := New(tmpFile)
	require.NoError(t, err)

	sqliteStore := store.(*SQLite)
	version, dirty, err := sqliteStore.GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	// the migrated schema accepts writes
	_, err = store.CreateEntity(ctx, storage.TrackedEntity{
		TrackedEntity: model.TrackedEntity{
			CatalogID: 1396,
			MediaType: "show",
			Title:     "Breaking Bad",
		},
	}, storage.EntityStatePlanToWatch)
	require.NoError(t, err)

	// reopening an already-migrated database is a no-op
	reopened, err := New(tmpFile)
	require.NoError(t, err)

	version, dirty, err = reopened.(*SQLite).GetMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)

	entities, err := reopened.ListEntities(ctx)
	require.NoError(t, err)
	assert.Len(t, entities, 1)
}
