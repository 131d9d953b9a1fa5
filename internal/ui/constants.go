// Package ui provides constants for layout calculations and configuration.
package ui

import "time"

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// MinTerminalWidth and MinTerminalHeight are the smallest sizes the
	// layout is computed for. Smaller terminals are clipped.
	MinTerminalWidth  = 40
	MinTerminalHeight = 10

	// MenuWidth is the width of the main menu panel
	MenuWidth = 36

	// InputHeight is the height of the input panel (one line plus borders)
	InputHeight = 1 + BorderSize

	// HistoryWidthRatio is the denominator for the history panel width
	HistoryWidthRatio = 3

	// LeaderboardNameWidth is the widest a player name is drawn in the table
	LeaderboardNameWidth = 16
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 40
)

// DefaultFlashDuration is how long a flash message stays in the footer
const DefaultFlashDuration = 4 * time.Second
