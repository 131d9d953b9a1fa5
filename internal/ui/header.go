package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
)

// appName is drawn at the right edge of the header
const appName = "guess"

// Header represents the top header bar
type Header struct {
	width int
	title string
	won   bool
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetTitle sets the text on the left of the header: the round title, or
// the last hint once one has been given.
func (h *Header) SetTitle(title string) {
	h.title = title
}

// SetWon switches the title to the win color
func (h *Header) SetWon(won bool) {
	h.won = won
}

// View renders the header
func (h *Header) View() string {
	titleText := " " + h.title
	rightText := appName + " "

	paddingLen := h.width - runewidth.StringWidth(titleText) - runewidth.StringWidth(rightText)
	if paddingLen < 0 {
		paddingLen = 0
	}

	fullContent := titleText + strings.Repeat(" ", paddingLen) + rightText
	return h.renderGradient(fullContent, runewidth.StringWidth(titleText))
}

// parseHexColor parses a hex color string (e.g., "#7C3AED") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders the content with a theme-aware gradient background.
// The first titleWidth cells are drawn bold.
func (h *Header) renderGradient(content string, titleWidth int) string {
	if len(content) == 0 {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.Text)
	if h.won {
		textColor = lipgloss.Color(theme.Success)
	}
	mutedColor := lipgloss.Color(theme.TextMuted)

	runes := []rune(content)
	width := len(runes)
	var result strings.Builder

	col := 0
	for i, r := range runes {
		t := float64(i) / float64(width)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		bgColor := lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))

		style := lipgloss.NewStyle().Background(bgColor)
		if col < titleWidth {
			style = style.Bold(true).Foreground(textColor)
		} else {
			style = style.Foreground(mutedColor)
		}

		result.WriteString(style.Render(string(r)))
		col += runewidth.RuneWidth(r)
	}

	return result.String()
}
