package sqlite

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-jet/jet/v2/qrm"
	"github.com/go-jet/jet/v2/sqlite"

	"medialog/pkg/logger"
	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/table"
)

// CreateEntity stores a tracked entity and its initial state transition.
// The (catalog id, media type) pair is unique; tracking the same item twice
// is an error.
func (s *SQLite) CreateEntity(ctx context.Context, entity storage.TrackedEntity, initialState storage.EntityState) (int64, error) {
	if entity.State == "" {
		entity.State = storage.EntityStateNew
	}

	err := entity.Machine().ToState(initialState)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}

	insertColumns := table.TrackedEntity.MutableColumns
	if entity.Added == nil || entity.Added.IsZero() {
		insertColumns = insertColumns.Except(table.TrackedEntity.Added)
	}

	stmt := table.TrackedEntity.
		INSERT(insertColumns).
		MODEL(entity.TrackedEntity).
		RETURNING(table.TrackedEntity.ID)

	result, err := stmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	inserted, err := result.LastInsertId()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	transition := storage.EntityTransition{
		EntityID:   int32(inserted),
		ToState:    string(initialState),
		MostRecent: true,
		SortKey:    1,
	}

	transitionStmt := table.EntityTransition.
		INSERT(table.EntityTransition.AllColumns.
			Except(table.EntityTransition.ID, table.EntityTransition.CreatedAt, table.EntityTransition.UpdatedAt)).
		MODEL(transition)

	_, err = transitionStmt.ExecContext(ctx, tx)
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	err = tx.Commit()
	if err != nil {
		tx.Rollback()
		return 0, err
	}

	return inserted, nil
}

// GetEntity looks for a tracked entity given a where condition
func (s *SQLite) GetEntity(ctx context.Context, where sqlite.BoolExpression) (*storage.TrackedEntity, error) {
	stmt := table.TrackedEntity.
		SELECT(
			table.TrackedEntity.AllColumns,
			table.EntityTransition.AllColumns,
		).
		FROM(
			table.TrackedEntity.
				INNER_JOIN(
					table.EntityTransition,
					table.TrackedEntity.ID.EQ(table.EntityTransition.EntityID).
						AND(table.EntityTransition.MostRecent.EQ(sqlite.Bool(true)))),
		).
		WHERE(
			where,
		)

	var entity storage.TrackedEntity
	err := stmt.QueryContext(ctx, s.db, &entity)
	if err != nil {
		if errors.Is(err, qrm.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get entity: %w", err)
	}

	return &entity, nil
}

// ListEntities lists tracked entities with their current state
func (s *SQLite) ListEntities(ctx context.Context, where ...sqlite.BoolExpression) ([]*storage.TrackedEntity, error) {
	stmt := table.TrackedEntity.
		SELECT(
			table.TrackedEntity.AllColumns,
			table.EntityTransition.AllColumns,
		).
		FROM(
			table.TrackedEntity.
				INNER_JOIN(
					table.EntityTransition,
					table.TrackedEntity.ID.EQ(table.EntityTransition.EntityID).
						AND(table.EntityTransition.MostRecent.EQ(sqlite.Bool(true)))),
		).
		ORDER_BY(table.TrackedEntity.Added.ASC())

	for _, w := range where {
		stmt = stmt.WHERE(w)
	}

	entities := make([]*storage.TrackedEntity, 0)
	err := stmt.QueryContext(ctx, s.db, &entities)
	if err != nil {
		return nil, fmt.Errorf("failed to list entities: %w", err)
	}

	return entities, nil
}

// DeleteEntity removes a tracked entity by id along with its transitions and
// watched episodes
func (s *SQLite) DeleteEntity(ctx context.Context, id int64) error {
	stmt := table.TrackedEntity.
		DELETE().
		WHERE(table.TrackedEntity.ID.EQ(sqlite.Int64(id)))

	_, err := s.handleDelete(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to delete entity: %w", err)
	}

	return nil
}

// UpdateEntityState updates the transition state of an entity. Writing the
// state the entity is already in is a no-op.
func (s *SQLite) UpdateEntityState(ctx context.Context, id int64, state storage.EntityState) error {
	entity, err := s.GetEntity(ctx, table.TrackedEntity.ID.EQ(sqlite.Int64(id)))
	if err != nil {
		return err
	}

	if entity.State == state {
		return nil
	}

	err = entity.Machine().ToState(state)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	err = s.transitionEntity(ctx, tx, id, state)
	if err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}

// UpdateEntityStatesBatch moves a set of entities to the same state in a
// single transaction. Entities already in the target state, or whose current
// state can't reach it, are skipped rather than failing the batch.
func (s *SQLite) UpdateEntityStatesBatch(ctx context.Context, ids []int64, state storage.EntityState) error {
	log := logger.FromCtx(ctx)

	if len(ids) == 0 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, id := range ids {
		currentStmt := table.EntityTransition.
			SELECT(table.EntityTransition.AllColumns).
			WHERE(
				table.EntityTransition.EntityID.EQ(sqlite.Int64(id)).
					AND(table.EntityTransition.MostRecent.EQ(sqlite.Bool(true))),
			)

		var current storage.EntityTransition
		err = currentStmt.QueryContext(ctx, tx, &current)
		if err != nil {
			tx.Rollback()
			if errors.Is(err, qrm.ErrNoRows) {
				return storage.ErrNotFound
			}
			return err
		}

		if storage.EntityState(current.ToState) == state {
			continue
		}

		entity := storage.TrackedEntity{State: storage.EntityState(current.ToState)}
		if err := entity.Machine().ToState(state); err != nil {
			log.Debugw("skipping entity in batch state update", "id", id, "from", current.ToState, "to", state)
			continue
		}

		if err := s.transitionEntity(ctx, tx, id, state); err != nil {
			tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

// transitionEntity flips the current most_recent transition and inserts the
// new one. Callers own the transaction and the write lock.
func (s *SQLite) transitionEntity(ctx context.Context, tx qrm.DB, id int64, state storage.EntityState) error {
	previousStmt := table.EntityTransition.
		UPDATE().
		SET(
			table.EntityTransition.MostRecent.SET(sqlite.Bool(false))).
		WHERE(
			table.EntityTransition.EntityID.EQ(sqlite.Int64(id)).
				AND(table.EntityTransition.MostRecent.EQ(sqlite.Bool(true)))).
		RETURNING(table.EntityTransition.AllColumns)

	var previous storage.EntityTransition
	err := previousStmt.QueryContext(ctx, tx, &previous)
	if err != nil {
		return err
	}

	transition := storage.EntityTransition{
		EntityID:   int32(id),
		ToState:    string(state),
		MostRecent: true,
		SortKey:    previous.SortKey + 1,
	}

	newStmt := table.EntityTransition.
		INSERT(table.EntityTransition.AllColumns.
			Except(table.EntityTransition.ID, table.EntityTransition.CreatedAt, table.EntityTransition.UpdatedAt)).
		MODEL(transition).
		RETURNING(table.EntityTransition.AllColumns)

	_, err = newStmt.ExecContext(ctx, tx)
	return err
}

// UpdateEntityFavorite flips the favorite flag on an entity
func (s *SQLite) UpdateEntityFavorite(ctx context.Context, id int64, favorite bool) error {
	stmt := table.TrackedEntity.
		UPDATE().
		SET(table.TrackedEntity.Favorite.SET(sqlite.Bool(favorite))).
		WHERE(table.TrackedEntity.ID.EQ(sqlite.Int64(id)))

	result, err := s.handleStatement(ctx, stmt)
	if err != nil {
		return fmt.Errorf("failed to update favorite: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return storage.ErrNotFound
	}

	return nil
}
