// Package session is the game's state machine. It owns every piece of
// mutable play state and turns key events into transitions.
//
// # Overview
//
// A Session is always on exactly one Screen:
//
//   - MenuScreen: the preset list plus Leaderboard and Quit entries.
//   - GameScreen: a round in progress, either taking numeric guesses
//     (InputNumber) or, after the winning guess, the player's name
//     (InputName). The quit confirmation popup lives here.
//   - LeaderboardScreen: read-only; q returns to the menu.
//
// Screens are a closed set of types, so combinations such as a popup on the
// leaderboard cannot be expressed.
//
// # Round Lifecycle
//
// 1. Start: choosing a preset draws a secret, clears the editor and the
// history, and switches to GameScreen in InputNumber mode.
//
// 2. Guess: Enter parses the editor contents, records a Move and evaluates
// it. Outside hard mode the displayed bounds narrow toward the secret.
//
// 3. Win: the correct guess ends the round and switches to InputName.
//
// 4. Record: Enter on a non-empty name hands the finished round to the
// Recorder, which appends it to the score store, and the session moves to
// the leaderboard with the new record highlighted.
//
// # Rendering
//
// The session never draws anything. Views read a Snapshot, a copy of the
// current state, and never mutate the session.
//
// # Determinism
//
// The clock, the random source and the secret can be fixed with WithClock,
// WithRand and WithSecret so tests and demo scenarios replay exactly.
package session
