package game

import (
	"slices"
	"time"
)

// Move is one submitted guess. Moves are never modified once created.
type Move struct {
	Value       int       `json:"user_value"`
	SubmittedAt time.Time `json:"move_done_at"`
}

// History holds the moves of a round, most recent first.
type History struct {
	moves []Move
}

// Add records m and re-sorts so the most recent move comes first, whatever
// order moves were added in. Moves with equal timestamps keep the newest
// insert first.
func (h *History) Add(m Move) {
	h.moves = append([]Move{m}, h.moves...)
	slices.SortStableFunc(h.moves, func(a, b Move) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})
}

// Latest returns the most recent move.
func (h *History) Latest() (Move, bool) {
	if len(h.moves) == 0 {
		return Move{}, false
	}
	return h.moves[0], true
}

// Len returns the number of moves, which is the tries count for scoring.
func (h *History) Len() int {
	return len(h.moves)
}

// Moves returns a copy of the moves, most recent first.
func (h *History) Moves() []Move {
	return slices.Clone(h.moves)
}

// Reset drops all moves.
func (h *History) Reset() {
	h.moves = nil
}
