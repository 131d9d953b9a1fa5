package app

import (
	"context"
	"fmt"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/guess/internal/config"
	"github.com/zhubert/guess/internal/errors"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/notification"
	"github.com/zhubert/guess/internal/scores"
	"github.com/zhubert/guess/internal/session"
	"github.com/zhubert/guess/internal/ui"
)

// loadTimeout bounds a leaderboard read
const loadTimeout = 5 * time.Second

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	store   scores.Store
	session *session.Session

	header      *ui.Header
	footer      *ui.Footer
	menu        *ui.Menu
	game        *ui.GameView
	leaderboard *ui.Leaderboard
	modal       *ui.Modal

	width  int
	height int

	// records is the leaderboard as last loaded
	records []scores.Record
}

// StartupMsg is sent on app start to check for a new version
type StartupMsg struct{}

// NotificationSentMsg reports the outcome of a win notification
type NotificationSentMsg struct {
	Err error
}

// New creates a new app model. store may be nil, in which case scores are
// neither loaded nor saved.
func New(cfg *config.Config, store scores.Store, version string, opts ...session.Option) *Model {
	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	m := &Model{
		config:      cfg,
		version:     version,
		store:       store,
		session:     session.New(store, opts...),
		header:      ui.NewHeader(),
		footer:      ui.NewFooter(),
		menu:        ui.NewMenu(),
		game:        ui.NewGameView(),
		leaderboard: ui.NewLeaderboard(),
		modal:       ui.NewModal(),
	}
	m.syncViews()
	return m
}

// Session returns the game session driven by the model
func (m *Model) Session() *session.Session {
	return m.session
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return func() tea.Msg {
		return StartupMsg{}
	}
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()

	case StartupMsg:
		cmd = m.handleStartup()

	case tea.KeyPressMsg:
		if key.Matches(msg, ui.Keys.ForceQuit) {
			logger.WithComponent("app").Info("quit requested", "key", msg.String())
			return m, tea.Quit
		}
		if k, ok := toSessionKey(msg); ok {
			cmd = m.handleKey(k)
		}

	case tea.PasteMsg:
		cmd = m.handlePaste(msg.Content)

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() {
			return m, nil
		}
		if m.footer.HasFlash() {
			cmd = ui.FlashTick()
		}

	case NotificationSentMsg:
		if msg.Err != nil {
			logger.WithComponent("app").Warn("win notification failed", "error", msg.Err)
		}
	}

	m.syncViews()
	return m, cmd
}

// handleKey feeds one key to the session and reacts to the result. A
// panic while handling the key abandons the round and returns to the menu.
func (m *Model) handleKey(k session.Key) (cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			cmd = m.recoverToMenu(fmt.Errorf("%v", r), "key", k.String())
		}
	}()
	return m.handleResult(m.session.Handle(k))
}

// handlePaste puts pasted text on the input line. Nothing pasted is read as
// a command, so a paste never quits or submits.
func (m *Model) handlePaste(content string) tea.Cmd {
	m.session.Paste(content)
	return nil
}

// recoverToMenu logs err, drops the session back to the menu and flashes
// the error.
func (m *Model) recoverToMenu(err error, args ...any) tea.Cmd {
	logger.WithComponent("app").Error("internal error, back to menu", append([]any{"error", err}, args...)...)
	m.session.ResetToMenu()
	m.records = nil
	return m.ShowFlashError(fmt.Sprintf("Something went wrong: %v", err))
}

// handleResult applies the side effects of a session transition
func (m *Model) handleResult(res session.Result) tea.Cmd {
	log := logger.WithComponent("app")

	if res.Quit {
		log.Info("quit from menu")
		return tea.Quit
	}

	var cmds []tea.Cmd

	if res.Err != nil {
		switch errors.GetKind(res.Err) {
		case errors.KindInvalid:
			cmds = append(cmds, m.ShowFlashWarning("Not a valid guess"))
		case errors.KindIO:
			log.Error("score not recorded", "error", res.Err)
			cmds = append(cmds, m.ShowFlashError(fmt.Sprintf("Score not saved: %v", res.Err)))
		default:
			return m.recoverToMenu(res.Err)
		}
	}

	if res.Won {
		round := m.session.Round()
		if m.config.GetNotificationsEnabled() {
			cmds = append(cmds, notifyWin(round.NumberRange(), m.session.Tries()))
		}
	}

	if res.Saved != nil {
		m.config.SetLastPlayerName(res.Saved.Name)
		if cmd := m.saveConfigOrFlash(); cmd != nil {
			cmds = append(cmds, cmd)
		} else {
			cmds = append(cmds, m.ShowFlashSuccess(fmt.Sprintf("Saved %s: %d guesses", res.Saved.Name, res.Saved.Tries)))
		}
	}

	if res.ScreenChanged {
		if _, ok := m.session.Screen().(*session.LeaderboardScreen); ok {
			if cmd := m.loadLeaderboard(); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}

	return tea.Batch(cmds...)
}

// loadLeaderboard reads the store into m.records. A missing leaderboard is
// shown as empty; anything worse is flashed.
func (m *Model) loadLeaderboard() tea.Cmd {
	m.records = nil
	if m.store == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	defer cancel()

	res := m.store.Load(ctx)
	m.records = res.Records

	switch res.Status {
	case scores.StatusCorrupt:
		logger.WithComponent("app").Warn("leaderboard corrupt", "location", m.store.Location(), "error", res.Err)
		return m.ShowFlashWarning("Leaderboard is unreadable and will be replaced on the next save")
	case scores.StatusIOFailure:
		logger.WithComponent("app").Error("leaderboard load failed", "location", m.store.Location(), "error", res.Err)
		return m.ShowFlashError(fmt.Sprintf("Could not read leaderboard: %v", res.Err))
	}
	return nil
}

// notifyWin sends the desktop notification off the event loop
func notifyWin(numberRange string, tries int) tea.Cmd {
	return func() tea.Msg {
		return NotificationSentMsg{Err: notification.RoundWon(numberRange, tries)}
	}
}
