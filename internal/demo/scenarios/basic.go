// Package scenarios contains built-in demo scenarios for the game.
package scenarios

import (
	"time"

	"github.com/zhubert/guess/internal/demo"
)

// Basic plays one easy round from the menu to the leaderboard:
// - Starting the 1-100 easy preset
// - Narrowing in on the secret with the bounds shown in the history
// - Entering a name and landing on the leaderboard
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Play an easy round and record the score",
	Width:       80,
	Height:      24,
	Setup:       demo.DefaultSetup(),
	Steps: []demo.Step{
		// Initial view - the main menu
		demo.Wait(1 * time.Second),
		demo.Annotate("Pick a difficulty"),
		demo.Capture(),

		// Start the 1-100 easy round
		demo.KeyWithDesc("enter", "start 1-100 (easy)"),
		demo.Wait(800 * time.Millisecond),

		demo.Type("50"),
		demo.Wait(300 * time.Millisecond),
		demo.Key("enter"),
		demo.Annotate("Each guess halves the range"),
		demo.Wait(800 * time.Millisecond),

		demo.Type("25"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),

		demo.Type("37"),
		demo.Key("enter"),
		demo.Wait(800 * time.Millisecond),

		demo.Type("42"),
		demo.Key("enter"),
		demo.Annotate("Solved in four guesses"),
		demo.Wait(1 * time.Second),

		// Record the score
		demo.TypeWithDesc("Ann", "enter a name"),
		demo.Wait(300 * time.Millisecond),
		demo.Key("enter"),
		demo.Annotate("The new score is highlighted"),
		demo.Wait(1500 * time.Millisecond),

		// Back to the menu
		demo.Key("q"),
		demo.Wait(1 * time.Second),
		demo.Capture(),

		// Final pause
		demo.Wait(2 * time.Second),
	},
}

// All returns all built-in scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Comprehensive,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
