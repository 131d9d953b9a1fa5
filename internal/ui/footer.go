package ui

import (
	"fmt"
	"time"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/guess/internal/keys"
	"github.com/zhubert/guess/internal/scores"
)

// FlashType is the severity of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// icon returns the glyph shown before the flash text
func (t FlashType) icon() string {
	switch t {
	case FlashError:
		return "✕"
	case FlashWarning:
		return "⚠"
	case FlashSuccess:
		return "✓"
	default:
		return "ℹ"
	}
}

func (t FlashType) style() lipgloss.Style {
	switch t {
	case FlashError:
		return FlashErrorStyle
	case FlashWarning:
		return FlashWarningStyle
	case FlashSuccess:
		return FlashSuccessStyle
	default:
		return FlashInfoStyle
	}
}

// FlashMessage is a transient message that replaces the footer bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired reports whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash message is shown
type FlashTickMsg time.Time

// FlashTick returns a command that checks for flash expiry one second later
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterMode selects which status and bindings the footer shows
type FooterMode int

const (
	FooterMenu FooterMode = iota
	FooterGuess
	FooterName
	FooterConfirm
	FooterLeaderboard
)

// KeyMap is every binding the footer can show
type KeyMap struct {
	Navigate  key.Binding
	Select    key.Binding
	Guess     key.Binding
	Save      key.Binding
	EndGame   key.Binding
	Yes       key.Binding
	No        key.Binding
	Back      key.Binding
	ForceQuit key.Binding
}

// Keys are the application key bindings
var Keys = KeyMap{
	Navigate: key.NewBinding(
		key.WithKeys(keys.Up, keys.Down),
		key.WithHelp("↑/↓", "navigate"),
	),
	Select: key.NewBinding(
		key.WithKeys(keys.Enter),
		key.WithHelp(keys.Enter, "select"),
	),
	Guess: key.NewBinding(
		key.WithKeys(keys.Enter),
		key.WithHelp(keys.Enter, "guess"),
	),
	Save: key.NewBinding(
		key.WithKeys(keys.Enter),
		key.WithHelp(keys.Enter, "save score"),
	),
	EndGame: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("(q)", "to end game"),
	),
	Yes: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "back to menu"),
	),
	No: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "keep playing"),
	),
	Back: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("(q)", "to back to menu"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys(keys.CtrlC),
		key.WithHelp(keys.CtrlC, "quit"),
	),
}

// bindings returns the footer bindings for a mode, in display order
func (k KeyMap) bindings(mode FooterMode) []key.Binding {
	switch mode {
	case FooterGuess:
		return []key.Binding{k.Guess, k.EndGame}
	case FooterName:
		return []key.Binding{k.Save, k.ForceQuit}
	case FooterConfirm:
		return []key.Binding{k.Yes, k.No}
	case FooterLeaderboard:
		return []key.Binding{k.Back}
	default:
		return []key.Binding{k.Navigate, k.Select, k.ForceQuit}
	}
}

// Footer represents the bottom footer bar with status and keybindings
type Footer struct {
	width        int
	mode         FooterMode
	tries        int
	help         help.Model
	bindings     KeyMap
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		help:     help.New(),
		bindings: Keys,
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetContext updates which screen the footer describes. tries is shown on
// the game screens only.
func (f *Footer) SetContext(mode FooterMode, tries int) {
	f.mode = mode
	f.tries = tries
}

// SetFlash shows a flash message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a flash message for d
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, d time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  d,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is shown
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired drops an expired flash message and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

// status is the left part of the footer
func (f *Footer) status() string {
	switch f.mode {
	case FooterGuess, FooterName, FooterConfirm:
		return FooterDescStyle.Render("guesses made : ") + TriesStyle(f.tries).Render(fmt.Sprint(f.tries))
	case FooterLeaderboard:
		return FooterDescStyle.Render(fmt.Sprintf("Top %d shown", scores.TopN))
	default:
		return ""
	}
}

// View renders the footer. A flash message takes priority over bindings.
func (f *Footer) View() string {
	if f.flashMessage != nil {
		msg := f.flashMessage
		content := msg.Type.style().Render(msg.Type.icon() + " " + msg.Text)
		return FooterStyle.Width(f.width).Render(content)
	}

	f.help.Styles.ShortKey = FooterKeyStyle
	f.help.Styles.ShortDesc = FooterDescStyle
	f.help.Styles.ShortSeparator = FooterSepStyle
	f.help.Styles.Ellipsis = FooterSepStyle

	content := f.status()
	if content != "" {
		content += FooterSepStyle.Render("  |  ")
	}
	// Padding(0, 1) on the footer takes two columns
	f.help.SetWidth(max(f.width-2-lipgloss.Width(content), 0))
	content += f.help.ShortHelpView(f.bindings.bindings(f.mode))

	return FooterStyle.Width(f.width).Render(content)
}
