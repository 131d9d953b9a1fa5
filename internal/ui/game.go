package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/guess/internal/game"
	"github.com/zhubert/guess/internal/session"
)

// Input line labels
const (
	guessLabel = "Enter your guess: "
	nameLabel  = "Enter your name: "
)

// GameView draws a round: the input line and, outside hard mode, the
// guess history.
type GameView struct {
	width  int
	height int

	mode     session.InputMode
	input    string
	cursor   int
	history  []game.Move
	hardMode bool
	nameHint string
}

// NewGameView creates an empty game view
func NewGameView() *GameView {
	return &GameView{}
}

// SetSize sets the content area size
func (g *GameView) SetSize(width, height int) {
	g.width = width
	g.height = height
}

// SetInput sets the input line contents. cursor is a character index.
func (g *GameView) SetInput(mode session.InputMode, input string, cursor int) {
	g.mode = mode
	g.input = input
	g.cursor = cursor
}

// SetHistory sets the moves to list, most recent first. The list is not
// drawn in hard mode.
func (g *GameView) SetHistory(moves []game.Move, hardMode bool) {
	g.history = moves
	g.hardMode = hardMode
}

// SetNameHint sets the name shown as a hint on the name prompt
func (g *GameView) SetNameHint(name string) {
	g.nameHint = name
}

// View renders the game area
func (g *GameView) View() string {
	if g.hardMode {
		return g.renderInputPanel(g.width)
	}

	historyWidth := g.width / HistoryWidthRatio
	inputWidth := g.width - historyWidth
	return lipgloss.JoinHorizontal(lipgloss.Top,
		g.renderInputPanel(inputWidth),
		g.renderHistoryPanel(historyWidth),
	)
}

func (g *GameView) renderInputPanel(width int) string {
	inner := max(width-BorderSize-2, 1)

	var label string
	switch g.mode {
	case session.InputNumber:
		label = guessLabel
	case session.InputName:
		label = nameLabel
	}

	var lines []string
	if label == "" {
		lines = append(lines, MutedStyle.Render("no input"))
	} else {
		avail := max(inner-runewidth.StringWidth(label), 1)
		lines = append(lines, InputLabelStyle.Render(label)+renderInputText(g.input, g.cursor, avail))
	}

	if g.mode == session.InputName {
		lines = append(lines, "", WonStyle.Render(game.WonResponse))
		if g.nameHint != "" {
			lines = append(lines, MutedStyle.Render("last: "+g.nameHint))
		}
	}

	return PanelStyle.
		Width(width).
		Height(max(g.height, InputHeight)).
		Render(strings.Join(lines, "\n"))
}

func (g *GameView) renderHistoryPanel(width int) string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("History"))

	rows := max(g.height-BorderSize-1, 0)
	for i, m := range g.history {
		if i >= rows {
			break
		}
		b.WriteString("\n")
		b.WriteString(HistoryValueStyle.Render(fmt.Sprintf("%-10d", m.Value)))
		b.WriteString(HistoryTimeStyle.Render(m.SubmittedAt.Format("15:04:05")))
	}

	return PanelStyle.
		Width(width).
		Height(max(g.height, InputHeight)).
		Render(b.String())
}

// renderInputText draws input with a block cursor at character index
// cursor, scrolled so the cursor stays within width columns.
func renderInputText(input string, cursor, width int) string {
	runes := []rune(input)
	cursor = min(max(cursor, 0), len(runes))

	before := runes[:cursor]
	at := " "
	var after []rune
	if cursor < len(runes) {
		at = string(runes[cursor])
		after = runes[cursor+1:]
	}

	// Drop leading runes until the cursor fits
	atWidth := max(runewidth.StringWidth(at), 1)
	for len(before) > 0 && runewidth.StringWidth(string(before))+atWidth > width {
		before = before[1:]
	}
	rest := runewidth.Truncate(string(after), max(width-runewidth.StringWidth(string(before))-atWidth, 0), "")

	return InputTextStyle.Render(string(before)) +
		InputCursorStyle.Render(at) +
		InputTextStyle.Render(rest)
}
