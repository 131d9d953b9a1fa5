// Package game holds the rules of a single guessing round: the secret, the
// displayed bounds and the hint produced for each guess.
package game

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Default range used before the first round is started.
const (
	DefaultMin = 1
	DefaultMax = 100
)

// Hint texts shown to the player.
const (
	higherFormat = "Number is > than %d"
	lowerFormat  = "Number is < than %d"
	WonResponse  = "YOU WON !!!"
)

// Verdict is the outcome of comparing a guess with the secret
type Verdict int

const (
	// Higher means the secret is above the guess
	Higher Verdict = iota
	// Lower means the secret is below the guess
	Lower
	// Correct means the guess matched the secret
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Higher:
		return "higher"
	case Lower:
		return "lower"
	case Correct:
		return "correct"
	default:
		return "unknown"
	}
}

// Preset is a fixed difficulty from the main menu.
type Preset struct {
	Min      int
	Max      int
	HardMode bool
}

// Label returns the menu text for the preset.
func (p Preset) Label() string {
	mode := "easy"
	if p.HardMode {
		mode = "hard"
	}
	return fmt.Sprintf("Start game %d-%d (%s)", p.Min, p.Max, mode)
}

// Presets are the five difficulties offered by the menu, in menu order.
var Presets = []Preset{
	{Min: 1, Max: 100, HardMode: false},
	{Min: 1, Max: 100, HardMode: true},
	{Min: 1, Max: 1000, HardMode: false},
	{Min: 1, Max: 1000, HardMode: true},
	{Min: 1, Max: 1000000, HardMode: true},
}

// Round is the state of one play-through, from secret generation to a
// correct guess.
type Round struct {
	// Min and Max are the displayed bounds. They narrow only outside hard mode.
	Min int
	Max int

	OriginalMin int
	OriginalMax int

	Secret   int
	HardMode bool

	// Response is the last hint shown to the player.
	Response string
	Over     bool

	StartedAt   time.Time
	CompletedAt time.Time
}

// NewRound starts a round for p with a secret drawn uniformly from
// [p.Min, p.Max] using rng.
func NewRound(p Preset, rng *rand.Rand, now time.Time) *Round {
	secret := p.Min + rng.IntN(p.Max-p.Min+1)
	return NewRoundWithSecret(p, secret, now)
}

// NewRoundWithSecret starts a round with a known secret.
func NewRoundWithSecret(p Preset, secret int, now time.Time) *Round {
	return &Round{
		Min:         p.Min,
		Max:         p.Max,
		OriginalMin: p.Min,
		OriginalMax: p.Max,
		Secret:      secret,
		HardMode:    p.HardMode,
		StartedAt:   now,
	}
}

// Evaluate compares guess with the secret, updates the hint and, outside
// hard mode, tightens the displayed bounds. A round that is already over is
// left untouched.
func (r *Round) Evaluate(guess int, now time.Time) Verdict {
	if r.Over {
		return Correct
	}

	switch {
	case guess < r.Secret:
		r.Response = fmt.Sprintf(higherFormat, guess)
		if !r.HardMode && guess > r.Min {
			r.Min = guess
		}
		return Higher
	case guess > r.Secret:
		r.Response = fmt.Sprintf(lowerFormat, guess)
		if !r.HardMode && guess < r.Max {
			r.Max = guess
		}
		return Lower
	default:
		r.Response = WonResponse
		r.Over = true
		r.CompletedAt = now
		return Correct
	}
}

// NumberRange formats the original bounds as "min-max".
func (r *Round) NumberRange() string {
	return fmt.Sprintf("%d-%d", r.OriginalMin, r.OriginalMax)
}

// Elapsed is the time from start to the winning guess. It is zero until the
// round is over.
func (r *Round) Elapsed() time.Duration {
	if !r.Over {
		return 0
	}
	return r.CompletedAt.Sub(r.StartedAt)
}

// Title is the header text shown before the first hint.
func (r *Round) Title() string {
	suffix := ""
	if r.HardMode {
		suffix = " [H]"
	}
	return fmt.Sprintf("Guess the number %d-%d%s!", r.Min, r.Max, suffix)
}
