package session

import "github.com/zhubert/guess/internal/game"

// Screen is the screen the session is on. Exactly one of MenuScreen,
// GameScreen or LeaderboardScreen.
type Screen interface {
	screen()
}

// MenuScreen is the main menu. Selected indexes MenuItems.
type MenuScreen struct {
	Selected int
}

// GameScreen is a round in progress.
type GameScreen struct {
	Mode InputMode
	// QuitConfirm is set while the "Quit the game (y/n)?" popup is shown.
	QuitConfirm bool
}

// LeaderboardScreen shows the stored scores. Highlight is the ID of the
// record saved just before the screen opened, if any.
type LeaderboardScreen struct {
	Highlight string
}

func (*MenuScreen) screen()        {}
func (*GameScreen) screen()        {}
func (*LeaderboardScreen) screen() {}

// InputMode selects what the game screen's input line accepts.
type InputMode int

const (
	// ReadOnly accepts nothing. A game screen is never created in this mode.
	ReadOnly InputMode = iota
	InputNumber
	InputName
)

func (m InputMode) String() string {
	switch m {
	case InputNumber:
		return "number"
	case InputName:
		return "name"
	default:
		return "read-only"
	}
}

// MenuAction is what Enter does on a menu item.
type MenuAction int

const (
	ActionStart MenuAction = iota
	ActionLeaderboard
	ActionQuit
)

// MenuItem is one line of the main menu.
type MenuItem struct {
	Label  string
	Action MenuAction
	Preset game.Preset
}

// MenuItems is the main menu in display order: one entry per preset, then
// Leaderboard and Quit.
var MenuItems = buildMenu()

func buildMenu() []MenuItem {
	items := make([]MenuItem, 0, len(game.Presets)+2)
	for _, p := range game.Presets {
		items = append(items, MenuItem{Label: p.Label(), Action: ActionStart, Preset: p})
	}
	return append(items,
		MenuItem{Label: "Leaderboard", Action: ActionLeaderboard},
		MenuItem{Label: "Quit", Action: ActionQuit},
	)
}
