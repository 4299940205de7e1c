package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"medialog/pkg/catalog"
)

var today = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

func ledgerOf(keys ...Key) Ledger {
	l := NewLedger()
	for _, k := range keys {
		l.Add(k.Season, k.Episode, today)
	}
	return l
}

func watchSeason(l Ledger, season, count int32) {
	for e := int32(1); e <= count; e++ {
		l.Add(season, e, today)
	}
}

func twoSeasonShow() *catalog.ShowStructure {
	return &catalog.ShowStructure{
		Seasons: []catalog.Season{
			{Number: 1, EpisodeCount: 10},
			{Number: 2, EpisodeCount: 8},
		},
		LastAired: &catalog.EpisodeRef{Season: 2, Episode: 3},
	}
}

func TestMidSeasonScenario(t *testing.T) {
	// seasons [{1,10},{2,8}], last aired s2e3, watched all of s1 plus s2e1-2
	structure := twoSeasonShow()
	ledger := NewLedger()
	watchSeason(ledger, 1, 10)
	ledger.Add(2, 1, today)
	ledger.Add(2, 2, today)

	assert.Equal(t, 13, TotalAired(structure, today))
	assert.Equal(t, 1, Remaining(ledger, structure, today))

	next, ok := NextEpisode(ledger, structure, today)
	assert.True(t, ok)
	assert.Equal(t, Key{Season: 2, Episode: 3}, next)

	assert.False(t, CaughtUp(false, ledger, structure, today))
}

func TestCaughtUp(t *testing.T) {
	t.Run("completed entity is always caught up", func(t *testing.T) {
		assert.True(t, CaughtUp(true, NewLedger(), nil, today))
		assert.True(t, CaughtUp(true, NewLedger(), twoSeasonShow(), today))
	})

	t.Run("missing structure fails open", func(t *testing.T) {
		assert.True(t, CaughtUp(false, NewLedger(), nil, today))
		assert.True(t, CaughtUp(false, NewLedger(), &catalog.ShowStructure{}, today))
	})

	t.Run("aired next-to-air unwatched means behind", func(t *testing.T) {
		structure := twoSeasonShow()
		structure.NextToAir = &catalog.EpisodeRef{Season: 2, Episode: 4, AirDate: today.AddDate(0, 0, -1)}

		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		watchSeason(ledger, 2, 3)

		assert.False(t, CaughtUp(false, ledger, structure, today))

		ledger.Add(2, 4, today)
		assert.True(t, CaughtUp(false, ledger, structure, today))
	})

	t.Run("unaired next-to-air does not count", func(t *testing.T) {
		structure := twoSeasonShow()
		structure.NextToAir = &catalog.EpisodeRef{Season: 2, Episode: 4, AirDate: today.AddDate(0, 0, 7)}

		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		watchSeason(ledger, 2, 3)

		assert.True(t, CaughtUp(false, ledger, structure, today))
	})

	t.Run("last aired unwatched means behind", func(t *testing.T) {
		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		assert.False(t, CaughtUp(false, ledger, twoSeasonShow(), today))
	})
}

func TestNextEpisode(t *testing.T) {
	t.Run("no structure", func(t *testing.T) {
		_, ok := NextEpisode(ledgerOf(Key{1, 1}), nil, today)
		assert.False(t, ok)
	})

	t.Run("first episode of a fresh show", func(t *testing.T) {
		next, ok := NextEpisode(NewLedger(), twoSeasonShow(), today)
		assert.True(t, ok)
		assert.Equal(t, Key{Season: 1, Episode: 1}, next)
	})

	t.Run("gap in an earlier season wins", func(t *testing.T) {
		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		ledger.Add(2, 2, today)

		next, ok := NextEpisode(ledger, twoSeasonShow(), today)
		assert.True(t, ok)
		assert.Equal(t, Key{Season: 2, Episode: 1}, next)
	})

	t.Run("specials skipped without special history", func(t *testing.T) {
		structure := &catalog.ShowStructure{
			Seasons: []catalog.Season{
				{Number: 0, EpisodeCount: 3},
				{Number: 1, EpisodeCount: 10},
			},
		}

		next, ok := NextEpisode(NewLedger(), structure, today)
		assert.True(t, ok)
		assert.Equal(t, Key{Season: 1, Episode: 1}, next)

		next, ok = NextEpisode(ledgerOf(Key{0, 1}), structure, today)
		assert.True(t, ok)
		assert.Equal(t, Key{Season: 0, Episode: 2}, next)
	})

	t.Run("aired next-to-air past structured seasons", func(t *testing.T) {
		structure := twoSeasonShow()
		structure.Seasons[1].EpisodeCount = 3
		structure.NextToAir = &catalog.EpisodeRef{Season: 2, Episode: 4, AirDate: today.AddDate(0, 0, -1)}

		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		watchSeason(ledger, 2, 3)

		next, ok := NextEpisode(ledger, structure, today)
		assert.True(t, ok)
		assert.Equal(t, Key{Season: 2, Episode: 4}, next)
	})

	t.Run("fully watched", func(t *testing.T) {
		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		watchSeason(ledger, 2, 8)

		_, ok := NextEpisode(ledger, twoSeasonShow(), today)
		assert.False(t, ok)
	})
}

func TestTotalAired(t *testing.T) {
	t.Run("nil structure", func(t *testing.T) {
		assert.Equal(t, 0, TotalAired(nil, today))
	})

	t.Run("specials excluded", func(t *testing.T) {
		structure := &catalog.ShowStructure{
			Seasons: []catalog.Season{
				{Number: 0, EpisodeCount: 5},
				{Number: 1, EpisodeCount: 10},
				{Number: 2, EpisodeCount: 8},
			},
			LastAired: &catalog.EpisodeRef{Season: 2, Episode: 8},
		}
		assert.Equal(t, 18, TotalAired(structure, today))
	})

	t.Run("ended show without last-aired pointer sums all seasons", func(t *testing.T) {
		structure := &catalog.ShowStructure{
			Seasons: []catalog.Season{
				{Number: 1, EpisodeCount: 10},
				{Number: 2, EpisodeCount: 8},
			},
			Ended: true,
		}
		assert.Equal(t, 18, TotalAired(structure, today))
	})

	t.Run("running show without last-aired pointer", func(t *testing.T) {
		structure := &catalog.ShowStructure{
			Seasons: []catalog.Season{{Number: 1, EpisodeCount: 10}},
		}
		assert.Equal(t, 0, TotalAired(structure, today))
	})

	t.Run("lagging cache adds the aired next episode", func(t *testing.T) {
		structure := twoSeasonShow()
		structure.NextToAir = &catalog.EpisodeRef{Season: 2, Episode: 4, AirDate: today.AddDate(0, 0, -1)}
		assert.Equal(t, 14, TotalAired(structure, today))
	})

	t.Run("last aired episode number beyond season count clamps", func(t *testing.T) {
		structure := &catalog.ShowStructure{
			Seasons:   []catalog.Season{{Number: 1, EpisodeCount: 10}},
			LastAired: &catalog.EpisodeRef{Season: 1, Episode: 99},
		}
		assert.Equal(t, 10, TotalAired(structure, today))
	})
}

func TestRemaining(t *testing.T) {
	t.Run("clamped at zero", func(t *testing.T) {
		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		watchSeason(ledger, 2, 8)
		assert.Equal(t, 0, Remaining(ledger, twoSeasonShow(), today))
	})

	t.Run("specials do not reduce remaining", func(t *testing.T) {
		structure := twoSeasonShow()
		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		ledger.Add(2, 1, today)
		ledger.Add(2, 2, today)
		ledger.Add(0, 1, today)

		assert.Equal(t, 1, Remaining(ledger, structure, today))
	})

	t.Run("concrete next episode forces at least one", func(t *testing.T) {
		// stale cache: no last-aired pointer, nothing confirmably aired,
		// but a gap exists in the structured seasons
		structure := &catalog.ShowStructure{
			Seasons: []catalog.Season{{Number: 1, EpisodeCount: 10}},
		}
		assert.Equal(t, 1, Remaining(NewLedger(), structure, today))
	})
}

func TestDisplayWatchedCount(t *testing.T) {
	t.Run("empty ledger", func(t *testing.T) {
		assert.Equal(t, 0, DisplayWatchedCount(NewLedger(), twoSeasonShow()))
	})

	t.Run("no structure falls back to ledger size", func(t *testing.T) {
		ledger := ledgerOf(Key{3, 1}, Key{3, 2})
		assert.Equal(t, 2, DisplayWatchedCount(ledger, nil))
	})

	t.Run("season one falls back to ledger size", func(t *testing.T) {
		ledger := ledgerOf(Key{1, 4}, Key{1, 7})
		assert.Equal(t, 2, DisplayWatchedCount(ledger, twoSeasonShow()))
	})

	t.Run("prior seasons count in full", func(t *testing.T) {
		ledger := NewLedger()
		watchSeason(ledger, 1, 10)
		ledger.Add(2, 3, today)

		assert.Equal(t, 13, DisplayWatchedCount(ledger, twoSeasonShow()))
	})
}
