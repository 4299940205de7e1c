package tracker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-jet/jet/v2/sqlite"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"medialog/pkg/catalog"
	"medialog/pkg/logger"
	"medialog/pkg/progress"
	"medialog/pkg/storage"
	"medialog/pkg/storage/sqlite/schema/gen/table"
)

// ErrScanUnavailable is returned when every catalog lookup in a scan failed,
// which points at the remote being down rather than per-show problems.
var ErrScanUnavailable = errors.New("catalog unavailable for catch-up scan")

type scanCandidate struct {
	entity  *storage.TrackedEntity
	watched int
}

// ScanForCompleted re-verifies tracked shows against the catalog and promotes
// every show whose ledger covers all aired episodes to completed. Candidates
// are shows not already completed or dropped with at least one watched
// episode. Lookups run under a bounded worker pool; a single failure skips
// that show only. Promotions are applied as one batched state write.
// Returns the number of shows promoted.
func (t Tracker) ScanForCompleted(ctx context.Context, onProgress ProgressFunc) (int, error) {
	log := logger.FromCtx(ctx)

	candidates, err := t.scanCandidates(ctx)
	if err != nil {
		return 0, err
	}
	if len(candidates) == 0 {
		return 0, nil
	}

	today := time.Now()

	var (
		mu        sync.Mutex
		promoted  []int64
		attempts  int
		failures  int
		processed int
	)

	workers := t.config.ScanConcurrency
	if workers <= 0 {
		workers = 1
	}
	p := pool.New().WithMaxGoroutines(workers)

	for _, candidate := range candidates {
		// cooperative cancellation between units of work; promotions
		// gathered so far still apply
		if ctx.Err() != nil {
			break
		}

		candidate := candidate
		p.Go(func() {
			structure, err := t.catalog.GetShowStructure(ctx, candidate.entity.CatalogID)

			mu.Lock()
			defer mu.Unlock()
			attempts++
			processed++

			if err != nil {
				failures++
				log.Debug("skipping show in catch-up scan",
					zap.String("title", candidate.entity.Title),
					zap.Error(err))
			} else {
				totalAired := progress.TotalAired(structure, today)
				if candidate.watched > 0 && totalAired > 0 && candidate.watched >= totalAired {
					promoted = append(promoted, int64(candidate.entity.ID))
				}
			}

			if onProgress != nil {
				onProgress(processed, len(candidates), candidate.entity.Title)
			}
		})
	}

	p.Wait()

	if attempts > 0 && failures == attempts {
		return 0, ErrScanUnavailable
	}

	if len(promoted) > 0 {
		if err := t.storage.UpdateEntityStatesBatch(ctx, promoted, storage.EntityStateCompleted); err != nil {
			return 0, err
		}
	}

	return len(promoted), nil
}

// scanCandidates lists tracked shows eligible for promotion along with their
// non-special watched counts. Shows with an empty ledger can't be completed
// by a scan, so they are filtered here before any remote call.
func (t Tracker) scanCandidates(ctx context.Context) ([]scanCandidate, error) {
	entities, err := t.storage.ListEntities(ctx,
		table.TrackedEntity.MediaType.EQ(sqlite.String(string(catalog.MediaTypeShow))).
			AND(table.EntityTransition.ToState.NOT_IN(
				sqlite.String(string(storage.EntityStateCompleted)),
				sqlite.String(string(storage.EntityStateDropped)),
			)),
	)
	if err != nil {
		return nil, err
	}

	candidates := make([]scanCandidate, 0, len(entities))
	for _, entity := range entities {
		ledger, err := t.ledgerFor(ctx, int64(entity.ID))
		if err != nil {
			return nil, err
		}
		watched := ledger.RegularCount()
		if watched == 0 {
			continue
		}
		candidates = append(candidates, scanCandidate{entity: entity, watched: watched})
	}

	return candidates, nil
}
