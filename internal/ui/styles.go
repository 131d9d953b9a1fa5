package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, rebuilt from the active theme by regenerateStyles
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorMuted       color.Color
	ColorBorder      color.Color
	ColorBg          color.Color
	ColorBgSelected  color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Guess counter colors. These do not follow the theme: the counter always
// goes from green to red as the player takes longer.
var (
	colorTriesFew     = lipgloss.Color("#90EE90") // light green
	colorTriesSome    = lipgloss.Color("#FFFF00") // yellow
	colorTriesMany    = lipgloss.Color("#FF7F7F") // light red
	colorTriesTooMany = lipgloss.Color("#FF0000")
)

// Header and footer styles
var (
	HeaderTitleStyle lipgloss.Style
	FooterStyle      lipgloss.Style
	FooterKeyStyle   lipgloss.Style
	FooterDescStyle  lipgloss.Style
	FooterSepStyle   lipgloss.Style
)

// Panel styles
var (
	PanelStyle      lipgloss.Style
	PanelTitleStyle lipgloss.Style
)

// Menu styles
var (
	MenuItemStyle     lipgloss.Style
	MenuSelectedStyle lipgloss.Style
)

// Game screen styles
var (
	InputLabelStyle   lipgloss.Style
	InputTextStyle    lipgloss.Style
	InputCursorStyle  lipgloss.Style
	ResponseStyle     lipgloss.Style
	WonStyle          lipgloss.Style
	HistoryValueStyle lipgloss.Style
	HistoryTimeStyle  lipgloss.Style
	MutedStyle        lipgloss.Style
)

// Leaderboard styles
var (
	LeaderboardHeaderStyle    lipgloss.Style
	LeaderboardCellStyle      lipgloss.Style
	LeaderboardHighlightStyle lipgloss.Style
)

// Modal styles
var (
	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalTextStyle  lipgloss.Style
	ModalHelpStyle  lipgloss.Style
)

// Flash message styles
var (
	FlashErrorStyle   lipgloss.Style
	FlashWarningStyle lipgloss.Style
	FlashInfoStyle    lipgloss.Style
	FlashSuccessStyle lipgloss.Style
)

func init() {
	regenerateStyles()
}

// buildStyles derives every style from the color palette.
func buildStyles() {
	HeaderTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText)

	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	FooterSepStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	MenuItemStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	MenuSelectedStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	InputLabelStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	InputTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	InputCursorStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorText)

	ResponseStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	WonStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)

	HistoryValueStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	HistoryTimeStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	MutedStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true)

	LeaderboardHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	LeaderboardCellStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	LeaderboardHighlightStyle = lipgloss.NewStyle().
		Background(ColorBgSelected).
		Foreground(ColorText).
		Bold(true)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorWarning).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorWarning).
		MarginBottom(1)

	ModalTextStyle = lipgloss.NewStyle().
		Foreground(ColorText)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	FlashErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	FlashWarningStyle = lipgloss.NewStyle().
		Foreground(ColorWarning)

	FlashInfoStyle = lipgloss.NewStyle().
		Foreground(ColorInfo)

	FlashSuccessStyle = lipgloss.NewStyle().
		Foreground(ColorSuccess)
}

// TriesStyle colors the guess counter: green for 0-3 guesses, yellow for
// 4-7, light red for 8-11 and red beyond that.
func TriesStyle(tries int) lipgloss.Style {
	var c color.Color
	switch {
	case tries <= 3:
		c = colorTriesFew
	case tries <= 7:
		c = colorTriesSome
	case tries <= 11:
		c = colorTriesMany
	default:
		c = colorTriesTooMany
	}
	return lipgloss.NewStyle().Foreground(c).Bold(true)
}
