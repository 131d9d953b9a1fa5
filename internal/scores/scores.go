// Package scores persists the leaderboard. The session hands finished rounds
// to a Store; the UI reads the ranked records back for display.
package scores

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/zhubert/guess/internal/errors"
	"github.com/zhubert/guess/internal/logger"
)

// TopN is how many records the leaderboard screen shows.
const TopN = 15

// Record is one completed round. Records are written once and never edited.
type Record struct {
	ID          string    `json:"id,omitempty"`
	Name        string    `json:"name"`
	Tries       int       `json:"tries"`
	NumberRange string    `json:"number_range"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	ElapsedMS   int64     `json:"completed_for_ms"`
	HardMode    bool      `json:"is_hard_mode"`
}

// NewRecord builds a record with a fresh ID. ElapsedMS is derived from the
// two timestamps.
func NewRecord(name string, tries int, numberRange string, startedAt, completedAt time.Time, hardMode bool) Record {
	return Record{
		ID:          uuid.NewString(),
		Name:        name,
		Tries:       tries,
		NumberRange: numberRange,
		StartedAt:   startedAt,
		CompletedAt: completedAt,
		ElapsedMS:   completedAt.Sub(startedAt).Milliseconds(),
		HardMode:    hardMode,
	}
}

// valid reports whether r carries every field of the current schema. Files
// written by older versions lack number_range and fail this check.
func (r Record) valid() bool {
	return r.Name != "" && r.Tries > 0 && r.NumberRange != ""
}

// Status describes how a Load went.
type Status int

const (
	StatusOK Status = iota
	// StatusNotFound means there is no leaderboard yet. Not a failure.
	StatusNotFound
	// StatusCorrupt means the store exists but could not be decoded.
	StatusCorrupt
	// StatusIOFailure means the store could not be read.
	StatusIOFailure
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNotFound:
		return "not found"
	case StatusCorrupt:
		return "corrupt"
	case StatusIOFailure:
		return "io failure"
	default:
		return "unknown"
	}
}

// LoadResult is what a Store returns from Load. Records is empty (never nil)
// unless Status is StatusOK.
type LoadResult struct {
	Records []Record
	Status  Status
	Err     error
}

// Warning reports whether the caller should tell the player about the load.
func (r LoadResult) Warning() bool {
	return r.Status == StatusCorrupt || r.Status == StatusIOFailure
}

func okResult(records []Record) LoadResult {
	if records == nil {
		records = []Record{}
	}
	return LoadResult{Records: records, Status: StatusOK}
}

func failedResult(status Status, err error) LoadResult {
	return LoadResult{Records: []Record{}, Status: status, Err: err}
}

// Store is the persistence boundary for the leaderboard.
type Store interface {
	// Load returns all records in stored order. It never panics; failures
	// are reported through LoadResult.Status.
	Load(ctx context.Context) LoadResult
	// Save replaces the stored collection with records.
	Save(ctx context.Context, records []Record) error
	// Clear removes every record.
	Clear(ctx context.Context) error
	// Location names where the store lives, for messages.
	Location() string
	Close() error
}

// Rank sorts records ascending by tries. Equal tries keep their order.
func Rank(records []Record) {
	slices.SortStableFunc(records, func(a, b Record) int {
		return cmp.Compare(a.Tries, b.Tries)
	})
}

// Add loads the leaderboard, appends rec, ranks it and saves the whole
// collection back. A corrupt store is replaced; an unreadable one is left
// alone and the read error returned.
func Add(ctx context.Context, s Store, rec Record) error {
	log := logger.WithComponent("scores")

	res := s.Load(ctx)
	switch res.Status {
	case StatusIOFailure:
		log.Error("refusing to overwrite unreadable leaderboard", "location", s.Location(), "error", res.Err)
		return res.Err
	case StatusCorrupt:
		log.Warn("replacing corrupt leaderboard", "location", s.Location(), "error", res.Err)
	}

	records := append(res.Records, rec)
	Rank(records)

	if err := s.Save(ctx, records); err != nil {
		log.Error("save failed", "location", s.Location(), "error", err)
		return err
	}
	log.Info("score added", "name", rec.Name, "tries", rec.Tries, "range", rec.NumberRange, "count", len(records))
	return nil
}

// Top returns at most n leading records.
func Top(records []Record, n int) []Record {
	if n < 0 || len(records) <= n {
		return records
	}
	return records[:n]
}

// Open returns the store for kind ("json" or "sqlite") at path.
func Open(kind, path string) (Store, error) {
	switch kind {
	case "", KindJSON:
		return NewFileStore(path), nil
	case KindSQLite:
		s, err := OpenSQLite(path)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, errors.UnknownStore(kind)
	}
}

// Store kinds accepted by Open.
const (
	KindJSON   = "json"
	KindSQLite = "sqlite"
)
