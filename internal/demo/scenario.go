// Package demo provides infrastructure for generating demos of the game.
// Scenarios drive the real app model with a fixed secret, a fixed clock and
// an in-memory leaderboard, so every run produces the same frames.
package demo

import (
	"fmt"
	"time"

	"github.com/zhubert/guess/internal/scores"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepPaste delivers a string as one bracketed paste.
	StepPaste
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next captured frame.
	StepAnnotate
)

// String returns the step type name used in listings and errors.
func (t StepType) String() string {
	switch t {
	case StepWait:
		return "wait"
	case StepKey:
		return "key"
	case StepTypeText:
		return "type"
	case StepPaste:
		return "paste"
	case StepCapture:
		return "capture"
	case StepAnnotate:
		return "annotate"
	default:
		return "unknown"
	}
}

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepPaste
	Text string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 80)
	Height      int // Terminal height (default 24)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Secret is the number every round in the demo uses.
	Secret int

	// Records pre-populate the leaderboard.
	Records []scores.Record

	// Theme overrides the default theme when set.
	Theme string

	// StartedAt is the clock reading when the demo begins. Each later
	// reading advances by ClockStep.
	StartedAt time.Time
	ClockStep time.Duration
}

// Default dimensions and clock for scenarios that leave them unset.
const (
	DefaultWidth     = 80
	DefaultHeight    = 24
	DefaultSecret    = 42
	DefaultClockStep = 1500 * time.Millisecond
)

// DefaultStart is the clock reading a demo starts at when its setup has none.
var DefaultStart = time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

// DefaultSetup returns a minimal setup for demos: secret 42 and an empty
// leaderboard.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		Secret:    DefaultSecret,
		StartedAt: DefaultStart,
		ClockStep: DefaultClockStep,
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = DefaultWidth
	}
	if s.Height <= 0 {
		s.Height = DefaultHeight
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.StartedAt.IsZero() {
		s.Setup.StartedAt = DefaultStart
	}
	if s.Setup.ClockStep <= 0 {
		s.Setup.ClockStep = DefaultClockStep
	}
	for i, step := range s.Steps {
		switch step.Type {
		case StepKey:
			if step.Key == "" {
				return &ValidationError{Field: "Steps", Message: stepMessage(i, step, "key is required")}
			}
		case StepTypeText, StepPaste:
			if step.Text == "" {
				return &ValidationError{Field: "Steps", Message: stepMessage(i, step, "text is required")}
			}
		case StepWait:
			if step.Duration < 0 {
				return &ValidationError{Field: "Steps", Message: stepMessage(i, step, "duration must not be negative")}
			}
		}
	}
	return nil
}

func stepMessage(i int, step Step, msg string) string {
	return fmt.Sprintf("step %d (%s): %s", i, step.Type, msg)
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Paste creates a paste step.
func Paste(text string) Step {
	return Step{
		Type: StepPaste,
		Text: text,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
