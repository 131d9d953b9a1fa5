package app

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/guess/internal/session"
	"github.com/zhubert/guess/internal/ui"
)

// headerMenuTitle and headerLeaderboardTitle are the header texts outside a round
const (
	headerMenuTitle        = "Guess the number"
	headerLeaderboardTitle = "Leaderboard"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.menu.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.game.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
	m.leaderboard.SetSize(ctx.TerminalWidth, ctx.ContentHeight)
}

// syncViews copies the session state into the view components
func (m *Model) syncViews() {
	snap := m.session.Snapshot()

	m.header.SetWon(false)
	m.modal.Hide()

	switch sc := snap.Screen.(type) {
	case *session.MenuScreen:
		m.header.SetTitle(headerMenuTitle)
		m.menu.SetSelected(sc.Selected)
		m.footer.SetContext(ui.FooterMenu, 0)

	case *session.GameScreen:
		title := snap.Round.Response
		if title == "" {
			title = snap.Round.Title()
		}
		m.header.SetTitle(title)
		m.header.SetWon(snap.Round.Over)

		m.game.SetInput(sc.Mode, snap.Input, snap.Cursor)
		m.game.SetHistory(snap.History, snap.Round.HardMode)
		m.game.SetNameHint(m.config.GetLastPlayerName())

		mode := ui.FooterGuess
		switch {
		case sc.QuitConfirm:
			mode = ui.FooterConfirm
			m.modal.Show(ui.NewConfirmQuitState(snap.Tries))
		case sc.Mode == session.InputName:
			mode = ui.FooterName
		}
		m.footer.SetContext(mode, snap.Tries)

	case *session.LeaderboardScreen:
		m.header.SetTitle(headerLeaderboardTitle)
		m.leaderboard.SetRecords(m.records, sc.Highlight)
		m.footer.SetContext(ui.FooterLeaderboard, 0)
	}
}

// content renders the area between header and footer
func (m *Model) content() string {
	ctx := ui.GetViewContext()

	if m.modal.IsVisible() {
		return m.modal.View(ctx.TerminalWidth, ctx.ContentHeight)
	}

	switch m.session.Screen().(type) {
	case *session.GameScreen:
		return m.game.View()
	case *session.LeaderboardScreen:
		return m.leaderboard.View()
	default:
		return m.menu.View()
	}
}

// View renders the app. This is the core Bubble Tea view function.
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.MouseMode = tea.MouseModeCellMotion
	v.SetContent(m.RenderToString())
	return v
}

// RenderToString renders the current view as a string.
// This is useful for demos and testing.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.content(),
		m.footer.View(),
	)
}
