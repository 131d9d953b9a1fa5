package session

import (
	"context"
	"time"

	"github.com/zhubert/guess/internal/errors"
	"github.com/zhubert/guess/internal/game"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
)

// recordTimeout bounds a single store write.
const recordTimeout = 5 * time.Second

// Recorder turns finished rounds into leaderboard records.
type Recorder struct {
	store scores.Store
}

// NewRecorder returns a recorder writing to store. A nil store discards
// every record.
func NewRecorder(store scores.Store) *Recorder {
	return &Recorder{store: store}
}

// Record builds the record for round and appends it to the store. The
// record is returned even when the write fails so the caller can still
// show it.
func (r *Recorder) Record(ctx context.Context, round *game.Round, tries int, name string) (scores.Record, error) {
	rec := scores.NewRecord(name, tries, round.NumberRange(), round.StartedAt, round.CompletedAt, round.HardMode)
	if r == nil || r.store == nil {
		logger.WithComponent("recorder").Warn("no score store configured, record dropped", "name", name)
		return rec, nil
	}

	ctx, cancel := context.WithTimeout(ctx, recordTimeout)
	defer cancel()

	if err := scores.Add(ctx, r.store, rec); err != nil {
		return rec, errors.ScoreNotRecorded(name, err)
	}
	return rec, nil
}
