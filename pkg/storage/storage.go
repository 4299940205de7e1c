package storage

import (
	"context"
	"errors"

	"github.com/go-jet/jet/v2/sqlite"

	"medialog/pkg/machine"
	"medialog/pkg/storage/sqlite/schema/gen/model"
)

var ErrNotFound = errors.New("not found in storage")

// Storage persists tracked entities, their state history, and the watched
// episode ledger.
type Storage interface {
	EntityStorage
	EpisodeStorage
}

// EntityState is the lifecycle status of a tracked entity.
type EntityState string

const (
	EntityStateNew         EntityState = ""
	EntityStatePlanToWatch EntityState = "plan_to_watch"
	EntityStateWatching    EntityState = "watching"
	EntityStateOnHold      EntityState = "on_hold"
	EntityStateCompleted   EntityState = "completed"
	EntityStateDropped     EntityState = "dropped"
)

// EntityStates lists every state an entity may persist as.
var EntityStates = []EntityState{
	EntityStatePlanToWatch,
	EntityStateWatching,
	EntityStateOnHold,
	EntityStateCompleted,
	EntityStateDropped,
}

// Valid reports whether the state is one of the persistable states.
func (s EntityState) Valid() bool {
	for _, known := range EntityStates {
		if s == known {
			return true
		}
	}
	return false
}

type TrackedEntity struct {
	model.TrackedEntity
	State EntityState `alias:"entity_transition.to_state" json:"state"`
}

type EntityTransition model.EntityTransition

func (e TrackedEntity) Machine() *machine.StateMachine[EntityState] {
	return machine.New(e.State,
		machine.From(EntityStateNew).To(EntityStatePlanToWatch, EntityStateWatching, EntityStateOnHold, EntityStateCompleted, EntityStateDropped),
		machine.From(EntityStatePlanToWatch).To(EntityStateWatching, EntityStateOnHold, EntityStateDropped),
		machine.From(EntityStateWatching).To(EntityStateOnHold, EntityStateDropped, EntityStateCompleted, EntityStatePlanToWatch),
		machine.From(EntityStateOnHold).To(EntityStateWatching, EntityStateDropped, EntityStateCompleted),
		machine.From(EntityStateCompleted).To(EntityStateWatching),
		machine.From(EntityStateDropped).To(EntityStateWatching),
	)
}

type EntityStorage interface {
	CreateEntity(ctx context.Context, entity TrackedEntity, initialState EntityState) (int64, error)
	GetEntity(ctx context.Context, where sqlite.BoolExpression) (*TrackedEntity, error)
	ListEntities(ctx context.Context, where ...sqlite.BoolExpression) ([]*TrackedEntity, error)
	DeleteEntity(ctx context.Context, id int64) error
	UpdateEntityState(ctx context.Context, id int64, state EntityState) error
	UpdateEntityStatesBatch(ctx context.Context, ids []int64, state EntityState) error
	UpdateEntityFavorite(ctx context.Context, id int64, favorite bool) error
}

type EpisodeStorage interface {
	CreateWatchedEpisode(ctx context.Context, episode model.WatchedEpisode) (int64, error)
	DeleteWatchedEpisode(ctx context.Context, entityID int64, season, episode int32) error
	ListWatchedEpisodes(ctx context.Context, entityID int64) ([]*model.WatchedEpisode, error)
	CountWatchedEpisodes(ctx context.Context, entityID int64) (int64, error)
}
