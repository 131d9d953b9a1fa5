// Package errors provides structured error types for the guess application.
// These errors provide context about what operation failed and where.
package errors

import (
	"errors"
	"fmt"
)

// Op describes an operation, usually as "package.function".
type Op string

// Kind categorizes the type of error.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalid
	KindIO
	KindCorrupt
	KindConfig
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindInvalid:
		return "invalid"
	case KindIO:
		return "I/O error"
	case KindCorrupt:
		return "corrupt data"
	case KindConfig:
		return "configuration error"
	default:
		return "unknown error"
	}
}

// Error is the structured error type for guess.
type Error struct {
	Op      Op     // Operation that failed
	Kind    Kind   // Category of error
	Err     error  // Underlying error
	Context string // Additional context
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s: %s", e.Op, e.Context, e.Err)
	}
	if e.Op != "" {
		return fmt.Sprintf("%s: %s", e.Op, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// E creates a new Error. Arguments can be:
// - Op: the operation name
// - Kind: the error kind
// - string: context message
// - error: the underlying error
func E(args ...any) error {
	e := &Error{}
	for _, arg := range args {
		switch a := arg.(type) {
		case Op:
			e.Op = a
		case Kind:
			e.Kind = a
		case string:
			e.Context = a
		case error:
			e.Err = a
		}
	}
	if e.Err == nil {
		e.Err = errors.New(e.Context)
		e.Context = ""
	}
	return e
}

// Is reports whether err is of the given Kind.
func Is(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// GetKind returns the Kind of an error.
func GetKind(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Input errors
func InvalidGuess(input string, err error) error {
	return E(Op("session.SubmitNumber"), KindInvalid, fmt.Sprintf("%q is not a valid guess", input), err)
}

// Score store errors
func ScoresNotFound(path string) error {
	return E(Op("scores.Load"), KindNotFound, fmt.Sprintf("no leaderboard at %s", path))
}

func ScoresCorrupt(path string, err error) error {
	return E(Op("scores.Load"), KindCorrupt, fmt.Sprintf("leaderboard at %s could not be decoded", path), err)
}

func ScoresReadFailed(path string, err error) error {
	return E(Op("scores.Load"), KindIO, fmt.Sprintf("failed to read leaderboard from %s", path), err)
}

func ScoresSaveFailed(path string, err error) error {
	return E(Op("scores.Save"), KindIO, fmt.Sprintf("failed to save leaderboard to %s", path), err)
}

func ScoreNotRecorded(name string, err error) error {
	return E(Op("session.Record"), KindIO, fmt.Sprintf("score for %s not recorded", name), err)
}

func UnknownStore(name string) error {
	return E(Op("scores.Open"), KindConfig, fmt.Sprintf("unknown score store %q (want json or sqlite)", name))
}

// Config errors
func ConfigLoadFailed(path string, err error) error {
	return E(Op("config.Load"), KindConfig, fmt.Sprintf("failed to load config from %s", path), err)
}

func ConfigSaveFailed(path string, err error) error {
	return E(Op("config.Save"), KindConfig, fmt.Sprintf("failed to save config to %s", path), err)
}

func ConfigInvalid(reason string) error {
	return E(Op("config.Validate"), KindInvalid, reason)
}
