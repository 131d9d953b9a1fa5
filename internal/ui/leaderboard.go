package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/table"
	"charm.land/lipgloss/v2"
	"github.com/rivo/uniseg"

	"github.com/zhubert/guess/internal/scores"
)

// leaderboardColumns are the table columns. The two cells of padding the
// cell style adds are not included in the widths.
var leaderboardColumns = []table.Column{
	{Title: "#", Width: 3},
	{Title: "Name", Width: LeaderboardNameWidth},
	{Title: "Tries", Width: 5},
	{Title: "Game range", Width: 11},
	{Title: "Mode", Width: 4},
	{Title: "Game time", Width: 12},
}

// Leaderboard draws the top scores
type Leaderboard struct {
	width     int
	height    int
	records   []scores.Record
	highlight string
	table     table.Model
}

// NewLeaderboard creates an empty leaderboard
func NewLeaderboard() *Leaderboard {
	return &Leaderboard{}
}

// SetSize sets the area the table is centered in
func (l *Leaderboard) SetSize(width, height int) {
	l.width = width
	l.height = height
}

// SetRecords sets the ranked records to show and the ID of the one to
// highlight ("" for none). Only the first scores.TopN are shown.
func (l *Leaderboard) SetRecords(records []scores.Record, highlight string) {
	l.records = scores.Top(records, scores.TopN)
	l.highlight = highlight
}

// Rows returns the table rows for the shown records
func (l *Leaderboard) Rows() []table.Row {
	rows := make([]table.Row, 0, len(l.records))
	for i, r := range l.records {
		rows = append(rows, LeaderboardRow(i+1, r))
	}
	return rows
}

// LeaderboardHeaders returns the column titles shared by the screen and
// the scores command.
func LeaderboardHeaders() []string {
	headers := make([]string, len(leaderboardColumns))
	for i, c := range leaderboardColumns {
		headers[i] = c.Title
	}
	return headers
}

// LeaderboardRow formats one record at the given 1-based rank.
func LeaderboardRow(rank int, r scores.Record) []string {
	mode := ""
	if r.HardMode {
		mode = "H"
	}
	return []string{
		fmt.Sprint(rank),
		truncateName(r.Name, LeaderboardNameWidth),
		fmt.Sprint(r.Tries),
		r.NumberRange,
		mode,
		fmt.Sprintf("%dms", r.ElapsedMS),
	}
}

// highlightIndex returns the row of the highlighted record, or -1
func (l *Leaderboard) highlightIndex() int {
	if l.highlight == "" {
		return -1
	}
	for i, r := range l.records {
		if r.ID == l.highlight {
			return i
		}
	}
	return -1
}

// View renders the leaderboard
func (l *Leaderboard) View() string {
	title := PanelTitleStyle.Render("Leaderboard")

	var body string
	if len(l.records) == 0 {
		body = MutedStyle.Render("No scores yet. Win a round to get on the board.")
	} else {
		body = l.renderTable()
	}

	panel := PanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body))
	return lipgloss.Place(l.width, l.height, lipgloss.Center, lipgloss.Center, panel)
}

func (l *Leaderboard) renderTable() string {
	styles := table.Styles{
		Header:   LeaderboardHeaderStyle,
		Cell:     LeaderboardCellStyle,
		Selected: lipgloss.NewStyle(),
	}
	idx := l.highlightIndex()
	if idx >= 0 {
		styles.Selected = LeaderboardHighlightStyle
	}

	width := 0
	for _, c := range leaderboardColumns {
		width += c.Width + LeaderboardCellStyle.GetHorizontalFrameSize()
	}

	l.table = table.New(
		table.WithColumns(leaderboardColumns),
		table.WithStyles(styles),
	)
	l.table.SetRows(l.Rows())
	l.table.SetWidth(width)
	// One line for the header
	l.table.SetHeight(len(l.records) + 1)
	l.table.SetCursor(max(idx, 0))

	return l.table.View()
}

// truncateName shortens name to at most width cells without splitting a
// grapheme cluster, marking the cut with an ellipsis.
func truncateName(name string, width int) string {
	if uniseg.StringWidth(name) <= width {
		return name
	}

	var b strings.Builder
	used := 0
	gr := uniseg.NewGraphemes(name)
	for gr.Next() {
		w := gr.Width()
		if used+w > width-1 {
			break
		}
		b.WriteString(gr.Str())
		used += w
	}
	b.WriteString("…")
	return b.String()
}
