// Package ui provides the user interface components for the guess TUI.
//
// # Overview
//
// The ui package draws the game with the Lipgloss styling library. Its
// components are plain view models: the app package copies values out of a
// session.Snapshot into them on every update and calls View. Nothing in
// this package changes game state.
//
// # Layout System
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line): round title or last hint           │
//	├─────────────────────────────────────────────────────┤
//	│                                                     │
//	│   Menu, GameView or Leaderboard                     │
//	│                                                     │
//	├─────────────────────────────────────────────────────┤
//	│ Footer (1 line): guess count, key bindings, flashes │
//	└─────────────────────────────────────────────────────┘
//
// The quit confirmation is a Modal drawn in place of the content area.
//
// # Components
//
// ViewContext: Singleton that manages centralized layout calculations.
//
// Header: Shows the round title, replaced by the latest hint once the
// player has guessed. Uses a gradient background from the theme.
//
// Footer: Shows the guess counter (colored by TriesStyle) and the key
// bindings for the current screen, rendered with bubbles/help. Flash
// messages replace the bindings until they expire.
//
// Menu: The preset list plus Leaderboard and Quit.
//
// GameView: The input line and, outside hard mode, the guess history.
//
// Leaderboard: The top scores in a bubbles/table, with the score just
// saved highlighted.
//
// # Styles
//
// Styles are package variables rebuilt from the active Theme by
// SetTheme. The guess counter colors are fixed and do not follow the theme.
package ui
