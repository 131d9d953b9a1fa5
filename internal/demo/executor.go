package demo

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/guess/internal/app"
	"github.com/zhubert/guess/internal/config"
	"github.com/zhubert/guess/internal/keys"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
	"github.com/zhubert/guess/internal/session"
	"github.com/zhubert/guess/internal/ui"
)

// demoVersion keeps the startup changelog check quiet
const demoVersion = "dev"

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// Plain returns the frame content without ANSI escape sequences.
func (f Frame) Plain() string {
	return ansi.Strip(f.Content)
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 80ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 150ms)
	KeyDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false, // Don't capture every step by default for cleaner demos
		TypeDelay:        80 * time.Millisecond,
		KeyDelay:         150 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	store  *scores.MemoryStore
	frames []Frame

	currentAnnotation string

	// configDir holds the throwaway settings file the model saves into
	configDir string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Store returns the leaderboard the last run played against.
func (e *Executor) Store() *scores.MemoryStore {
	return e.store
}

// Cleanup removes the temporary settings directory.
func (e *Executor) Cleanup() {
	if e.configDir == "" {
		return
	}
	if err := os.RemoveAll(e.configDir); err != nil {
		logger.WithComponent("demo").Warn("failed to remove demo config dir", "dir", e.configDir, "error", err)
	}
	e.configDir = ""
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	// Initialize the model
	if err := e.setup(scenario); err != nil {
		return nil, fmt.Errorf("setup failed: %w", err)
	}

	// Ensure cleanup is called when we're done
	defer e.Cleanup()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	// Execute each step
	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) error {
	dir, err := os.MkdirTemp("", "guess-demo-")
	if err != nil {
		return err
	}
	e.configDir = dir

	cfg, err := config.LoadFrom(filepath.Join(dir, "config.json"))
	if err != nil {
		e.Cleanup()
		return err
	}
	// Themes are global, so every run sets one
	theme := scenario.Setup.Theme
	if theme == "" {
		theme = string(ui.DefaultTheme)
	}
	cfg.SetTheme(theme)

	e.store = scores.NewMemoryStore(scenario.Setup.Records...)
	e.frames = []Frame{}
	e.currentAnnotation = ""

	e.model = app.New(cfg, e.store, demoVersion,
		session.WithSecret(scenario.Setup.Secret),
		session.WithClock(newStepClock(scenario.Setup.StartedAt, scenario.Setup.ClockStep)),
	)

	// Set size
	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})

	return nil
}

// newStepClock returns a clock that starts at start and moves forward by
// step on every reading.
func newStepClock(start time.Time, step time.Duration) func() time.Time {
	next := start
	return func() time.Time {
		now := next
		next = next.Add(step)
		return now
	}
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepPaste:
		e.update(tea.PasteMsg{Content: step.Text})
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation
		// Don't capture, annotation applies to next frame

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type: %v", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	content := e.model.RenderToString()

	frame := Frame{
		Content:    content,
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	}
	e.frames = append(e.frames, frame)

	// Clear annotation after use
	e.currentAnnotation = ""
}

// update feeds msg to the model. Returned commands are dropped: the only
// ones the game produces are timers and notifications, which a recording
// does not need.
func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// sendKey sends a key press to the model.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

// keyPress creates a tea.KeyPressMsg from a key string.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.Home:
		return tea.KeyPressMsg{Code: tea.KeyHome}
	case keys.End:
		return tea.KeyPressMsg{Code: tea.KeyEnd}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case keys.CtrlA:
		return tea.KeyPressMsg{Code: 'a', Mod: tea.ModCtrl}
	case keys.CtrlE:
		return tea.KeyPressMsg{Code: 'e', Mod: tea.ModCtrl}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	default:
		if utf8.RuneCountInString(key) == 1 {
			r, _ := utf8.DecodeRuneInString(key)
			return tea.KeyPressMsg{Code: r, Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
