// Package progress derives watch progress from a show's episode ledger and
// the catalog's season structure. Everything here is pure: no I/O, no clock
// reads, the caller supplies today.
package progress

import (
	"time"

	"medialog/pkg/catalog"
)

// Key identifies one episode within a show.
type Key struct {
	Season  int32 `json:"season"`
	Episode int32 `json:"episode"`
}

// Ledger is a show's watch history keyed by (season, episode).
type Ledger map[Key]time.Time

func NewLedger() Ledger {
	return make(Ledger)
}

func (l Ledger) Add(season, episode int32, watchedAt time.Time) {
	l[Key{Season: season, Episode: episode}] = watchedAt
}

func (l Ledger) Watched(season, episode int32) bool {
	_, ok := l[Key{Season: season, Episode: episode}]
	return ok
}

// RegularCount counts watched episodes excluding specials (season 0).
func (l Ledger) RegularCount() int {
	count := 0
	for k := range l {
		if k.Season != 0 {
			count++
		}
	}
	return count
}

func (l Ledger) hasSpecials() bool {
	for k := range l {
		if k.Season == 0 {
			return true
		}
	}
	return false
}

// currentSeason is the highest non-special season with watched history.
func (l Ledger) currentSeason() (int32, bool) {
	var current int32
	found := false
	for k := range l {
		if k.Season == 0 {
			continue
		}
		if !found || k.Season > current {
			current = k.Season
			found = true
		}
	}
	return current, found
}

func (l Ledger) maxEpisodeIn(season int32) int32 {
	var max int32
	for k := range l {
		if k.Season == season && k.Episode > max {
			max = k.Episode
		}
	}
	return max
}

// CaughtUp reports whether the ledger covers everything that has aired as of
// today. Completed entities are caught up by definition. Missing catalog data
// fails open: unknown structure must never manufacture an in-progress state.
func CaughtUp(completed bool, ledger Ledger, structure *catalog.ShowStructure, today time.Time) bool {
	if completed {
		return true
	}
	if structure == nil {
		return true
	}

	if next := structure.NextToAir; next != nil && next.Aired(today) && !ledger.Watched(next.Season, next.Episode) {
		return false
	}

	last := structure.LastAired
	if last == nil {
		return true
	}

	return ledger.Watched(last.Season, last.Episode)
}

// NextEpisode finds the first unwatched episode in season order. Season 0 is
// skipped unless the ledger already contains special-episode history. When no
// gap exists but the next-to-air episode has aired unwatched, that episode is
// the answer.
func NextEpisode(ledger Ledger, structure *catalog.ShowStructure, today time.Time) (Key, bool) {
	if structure == nil {
		return Key{}, false
	}

	includeSpecials := ledger.hasSpecials()
	for _, season := range structure.Seasons {
		if season.Number == 0 && !includeSpecials {
			continue
		}
		for e := int32(1); e <= season.EpisodeCount; e++ {
			if !ledger.Watched(season.Number, e) {
				return Key{Season: season.Number, Episode: e}, true
			}
		}
	}

	if next := structure.NextToAir; next != nil && next.Aired(today) && !ledger.Watched(next.Season, next.Episode) {
		return Key{Season: next.Season, Episode: next.Episode}, true
	}

	return Key{}, false
}

// TotalAired counts the episodes that have aired as of today, excluding
// specials. Season counts before the last-aired season are trusted in full;
// the last-aired season contributes up to the last-aired episode number. A
// next-to-air episode already past its air date adds one: catalog caches are
// allowed to lag by an episode.
func TotalAired(structure *catalog.ShowStructure, today time.Time) int {
	if structure == nil {
		return 0
	}

	total := 0
	last := structure.LastAired
	switch {
	case last != nil:
		for _, season := range structure.Seasons {
			if season.Number == 0 {
				continue
			}
			if season.Number < last.Season {
				total += int(season.EpisodeCount)
			}
			if season.Number == last.Season {
				total += int(min(season.EpisodeCount, last.Episode))
			}
		}
	case structure.Ended:
		for _, season := range structure.Seasons {
			if season.Number == 0 {
				continue
			}
			total += int(season.EpisodeCount)
		}
	}

	if next := structure.NextToAir; next != nil && next.Aired(today) {
		total++
	}

	return total
}

// Remaining is the count of aired, unwatched, non-special episodes. A concrete
// unwatched next episode always implies at least one remaining, even when the
// arithmetic over a stale cache says otherwise.
func Remaining(ledger Ledger, structure *catalog.ShowStructure, today time.Time) int {
	remaining := TotalAired(structure, today) - ledger.RegularCount()
	if remaining < 0 {
		remaining = 0
	}

	if remaining == 0 {
		if _, ok := NextEpisode(ledger, structure, today); ok {
			remaining = 1
		}
	}

	return remaining
}

// DisplayWatchedCount estimates the watched-episode count shown to the user:
// full prior seasons plus the highest watched episode of the season currently
// in progress. When structure is absent, or progress is still in season 1, the
// raw ledger size is just as accurate and tolerates non-standard numbering.
func DisplayWatchedCount(ledger Ledger, structure *catalog.ShowStructure) int {
	if len(ledger) == 0 {
		return 0
	}

	current, ok := ledger.currentSeason()
	if !ok || current == 1 || structure == nil || len(structure.Seasons) == 0 {
		return len(ledger)
	}

	count := 0
	for _, season := range structure.Seasons {
		if season.Number == 0 {
			continue
		}
		if season.Number < current {
			count += int(season.EpisodeCount)
		}
	}

	return count + int(ledger.maxEpisodeIn(current))
}
