package tracker

import (
	"encoding/json"
	"errors"
	"strings"

	"medialog/pkg/catalog"
	"medialog/pkg/storage"
)

// ErrInvalidPayload is returned when an import payload is not a JSON array.
// Anything less broken than that degrades per record instead of failing.
var ErrInvalidPayload = errors.New("import payload is not an array of records")

// RecordKind says which shape a batch of foreign records has. It is detected
// once per batch from the first record, never guessed per record.
type RecordKind string

const (
	RecordKindMovie RecordKind = "movie"
	RecordKindShow  RecordKind = "show"
)

// MediaType returns the catalog media type a record kind maps to.
func (k RecordKind) MediaType() catalog.MediaType {
	if k == RecordKindShow {
		return catalog.MediaTypeShow
	}
	return catalog.MediaTypeMovie
}

// ForeignIDs are the external identifiers a foreign record may carry.
type ForeignIDs struct {
	IMDB      string `json:"imdb"`
	Secondary string `json:"tvdb"`
}

// ForeignEpisode is one episode of a show-shaped foreign record.
type ForeignEpisode struct {
	Number    int32  `json:"episode"`
	ID        int64  `json:"id"`
	Watched   bool   `json:"watched"`
	WatchedAt string `json:"watched_at"`
}

// ForeignSeason is one season of a show-shaped foreign record.
type ForeignSeason struct {
	Number   int32            `json:"season"`
	Special  bool             `json:"special"`
	Episodes []ForeignEpisode `json:"episodes"`
}

// ForeignRecord is one record of a foreign watch-history export. Movie-shaped
// records are flat; show-shaped records nest seasons and episodes. Kind is
// the batch-level discriminant set by ParseForeignRecords.
type ForeignRecord struct {
	Kind      RecordKind      `json:"-"`
	Title     string          `json:"title"`
	IDs       *ForeignIDs     `json:"id"`
	Status    string          `json:"status"`
	Watched   bool            `json:"watched"`
	WatchedAt string          `json:"watched_at"`
	Seasons   []ForeignSeason `json:"seasons"`
}

// PendingImportItem pairs one foreign record with the ambiguous catalog match
// title search produced for it. It is held for review, never persisted.
type PendingImportItem struct {
	Record ForeignRecord `json:"record"`
	Match  catalog.Match `json:"match"`
}

// ReconciliationResult is what one import run produced. Purely a return
// value; failed titles are gone once the caller drops it.
type ReconciliationResult struct {
	Shows   int                 `json:"shows"`
	Movies  int                 `json:"movies"`
	Failed  []string            `json:"failed"`
	Pending []PendingImportItem `json:"pending"`
}

// ProgressFunc is invoked after each record during reconciliation and
// scanning. Purely observational; it must not affect control flow.
type ProgressFunc func(current, total int, title string)

// ParseForeignRecords decodes an import payload. Only a non-array top level
// is a hard failure; a record that won't decode becomes an empty record that
// falls out later as a failed title. The batch kind comes from whether the
// first record carries a seasons field.
func ParseForeignRecords(data []byte) ([]ForeignRecord, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, ErrInvalidPayload
	}

	kind := RecordKindMovie
	if len(raws) > 0 {
		var probe struct {
			Seasons json.RawMessage `json:"seasons"`
		}
		if err := json.Unmarshal(raws[0], &probe); err == nil && probe.Seasons != nil {
			kind = RecordKindShow
		}
	}

	records := make([]ForeignRecord, 0, len(raws))
	for _, raw := range raws {
		var record ForeignRecord
		// a broken record still occupies its slot so failed counts line up
		_ = json.Unmarshal(raw, &record)
		record.Kind = kind
		records = append(records, record)
	}

	return records, nil
}

// foreignStatusVocabulary maps substrings of known foreign status strings to
// entity states, tried in order.
var foreignStatusVocabulary = []struct {
	substrings []string
	state      storage.EntityState
}{
	{[]string{"up_to_date", "continuing", "watching"}, storage.EntityStateWatching},
	{[]string{"watch_later", "plan"}, storage.EntityStatePlanToWatch},
	{[]string{"dropped", "stopped"}, storage.EntityStateDropped},
	{[]string{"finished", "dead", "ended", "archived"}, storage.EntityStateCompleted},
}

// MapForeignStatus maps a foreign status string onto the entity state set.
// Matching is case-insensitive on substrings; anything unrecognized lands in
// plan_to_watch rather than propagating an invalid state.
func MapForeignStatus(status string) storage.EntityState {
	lowered := strings.ToLower(status)
	for _, entry := range foreignStatusVocabulary {
		for _, sub := range entry.substrings {
			if strings.Contains(lowered, sub) {
				return entry.state
			}
		}
	}
	return storage.EntityStatePlanToWatch
}
