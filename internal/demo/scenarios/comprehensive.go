package scenarios

import (
	"time"

	"github.com/zhubert/guess/internal/demo"
	"github.com/zhubert/guess/internal/scores"
)

var comprehensiveStart = time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)

// seededRecords is the leaderboard the comprehensive demo starts with.
func seededRecords() []scores.Record {
	day := comprehensiveStart.Add(-24 * time.Hour)
	return []scores.Record{
		scores.NewRecord("Grace", 5, "1-100", day, day.Add(41*time.Second), false),
		scores.NewRecord("Linus", 9, "1-1000", day, day.Add(95*time.Second), false),
		scores.NewRecord("Ada", 7, "1-100", day, day.Add(63*time.Second), true),
		scores.NewRecord("Ken", 12, "1-1000", day, day.Add(3*time.Minute), true),
	}
}

// Comprehensive shows every screen of the game:
// - A hard round, where the bounds stay put and the history is hidden
// - Digits-only input, pasting, and cursor editing
// - The quit confirmation, cancelled and then accepted
// - A leaderboard that already holds scores
var Comprehensive = &demo.Scenario{
	Name:        "comprehensive",
	Description: "Hard mode, editing, quit confirmation and a full leaderboard",
	Width:       100,
	Height:      30,
	Setup: &demo.ScenarioSetup{
		Secret:    64,
		Records:   seededRecords(),
		Theme:     "nord",
		StartedAt: comprehensiveStart,
		ClockStep: 2 * time.Second,
	},
	Steps: []demo.Step{
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Open the leaderboard first to show the seeded scores
		demo.Key("down"),
		demo.Key("down"),
		demo.Key("down"),
		demo.Key("down"),
		demo.Key("down"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("enter", "open the leaderboard"),
		demo.Annotate("Scores are ranked by guesses"),
		demo.Wait(1500 * time.Millisecond),
		demo.Key("q"),
		demo.Wait(500 * time.Millisecond),

		// Start 1-100 (hard)
		demo.Key("up"),
		demo.Key("up"),
		demo.Key("up"),
		demo.Key("up"),
		demo.Wait(300 * time.Millisecond),
		demo.KeyWithDesc("enter", "start 1-100 (hard)"),
		demo.Annotate("Hard mode hides the history"),
		demo.Wait(1 * time.Second),

		// Letters are ignored in a guess
		demo.TypeWithDesc("5x0", "only digits are accepted"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),

		// Fix a typo with the cursor keys
		demo.Type("75"),
		demo.Key("home"),
		demo.Key("backspace"),
		demo.Key("right"),
		demo.Key("backspace"),
		demo.Type("8"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),

		// Ask to quit, then keep playing
		demo.KeyWithDesc("q", "ask to quit"),
		demo.Annotate("Quitting asks first"),
		demo.Wait(1 * time.Second),
		demo.Key("n"),
		demo.Wait(500 * time.Millisecond),

		// Pasting a guess
		demo.Paste("64"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("enter"),
		demo.Wait(1 * time.Second),

		demo.Type("Marie"),
		demo.Key("enter"),
		demo.Annotate("Ranked among the earlier scores"),
		demo.Wait(1500 * time.Millisecond),

		// Start another round and leave it
		demo.Key("q"),
		demo.Key("enter"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("q"),
		demo.Wait(500 * time.Millisecond),
		demo.Key("y"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}
