package session

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"
	"unicode"

	"github.com/zhubert/guess/internal/editor"
	"github.com/zhubert/guess/internal/errors"
	"github.com/zhubert/guess/internal/game"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
)

// Result reports what a key press did beyond changing session state.
type Result struct {
	// Quit asks the program to exit.
	Quit bool
	// ScreenChanged is set when the key moved the session to another screen.
	ScreenChanged bool
	// Won is set on the key press that submitted the winning guess.
	Won bool
	// Saved is the record written by a successful name submission.
	Saved *scores.Record
	// Err is a recoverable failure the player should be told about.
	Err error
}

// Session holds the state of one running game program.
type Session struct {
	screen   Screen
	lastMenu int

	round    *game.Round
	history  game.History
	editor   *editor.Editor
	userName string

	recorder *Recorder
	now      func() time.Time
	rng      *rand.Rand
	secret   *int
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Session) {
		s.now = now
	}
}

// WithRand sets the source used to draw secrets.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		s.rng = rng
	}
}

// WithSecret makes every round use n as its secret. Used by tests and demos.
func WithSecret(n int) Option {
	return func(s *Session) {
		s.secret = &n
	}
}

// New returns a session on the main menu. Finished rounds are recorded to
// store, which may be nil.
func New(store scores.Store, opts ...Option) *Session {
	s := &Session{
		screen:   &MenuScreen{},
		editor:   editor.New(),
		recorder: NewRecorder(store),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s.round = game.NewRoundWithSecret(game.Preset{Min: game.DefaultMin, Max: game.DefaultMax}, game.DefaultMin, s.now())
	return s
}

// Screen returns the current screen. Callers must not modify it.
func (s *Session) Screen() Screen {
	return s.screen
}

// Round returns the current round. Callers must not modify it.
func (s *Session) Round() *game.Round {
	return s.round
}

// Tries is the number of guesses made in the current round.
func (s *Session) Tries() int {
	return s.history.Len()
}

// UserName is the last submitted player name.
func (s *Session) UserName() string {
	return s.userName
}

// Handle applies one key press.
func (s *Session) Handle(k Key) Result {
	switch sc := s.screen.(type) {
	case *MenuScreen:
		return s.handleMenu(sc, k)
	case *GameScreen:
		return s.handleGame(sc, k)
	case *LeaderboardScreen:
		return s.handleLeaderboard(k)
	}
	return Result{}
}

// ResetToMenu abandons whatever is in progress and shows the menu. The app
// uses it to recover from errors it cannot attribute to a key.
func (s *Session) ResetToMenu() {
	s.editor.Clear()
	s.toMenu()
}

// OpenLeaderboard switches straight to the leaderboard.
func (s *Session) OpenLeaderboard() {
	s.screen = &LeaderboardScreen{}
}

func (s *Session) toMenu() {
	s.screen = &MenuScreen{Selected: s.lastMenu}
}

func (s *Session) handleMenu(sc *MenuScreen, k Key) Result {
	switch k.Type {
	case KeyUp:
		if sc.Selected > 0 {
			sc.Selected--
		}
	case KeyDown:
		if sc.Selected < len(MenuItems)-1 {
			sc.Selected++
		}
	case KeyEnter:
		s.lastMenu = sc.Selected
		item := MenuItems[sc.Selected]
		switch item.Action {
		case ActionStart:
			s.StartGame(item.Preset)
			return Result{ScreenChanged: true}
		case ActionLeaderboard:
			s.OpenLeaderboard()
			return Result{ScreenChanged: true}
		case ActionQuit:
			return Result{Quit: true}
		}
	}
	return Result{}
}

// StartGame begins a fresh round for p and switches to the game screen.
func (s *Session) StartGame(p game.Preset) {
	now := s.now()
	if s.secret != nil {
		s.round = game.NewRoundWithSecret(p, *s.secret, now)
	} else {
		s.round = game.NewRound(p, s.rng, now)
	}
	s.history.Reset()
	s.editor.Clear()
	s.screen = &GameScreen{Mode: InputNumber}

	logger.WithComponent("session").Debug("round started",
		"range", s.round.NumberRange(), "hard", p.HardMode)
}

func (s *Session) handleGame(sc *GameScreen, k Key) Result {
	if sc.QuitConfirm {
		switch {
		case k.is('y'):
			s.toMenu()
			return Result{ScreenChanged: true}
		case k.is('n'):
			sc.QuitConfirm = false
		}
		return Result{}
	}

	if k.is('q') && sc.Mode != InputName {
		sc.QuitConfirm = true
		return Result{}
	}

	switch k.Type {
	case KeyRune:
		s.insert(sc.Mode, k.Rune)
	case KeyBackspace:
		s.editor.DeleteBeforeCursor()
	case KeyLeft:
		s.editor.MoveLeft()
	case KeyRight:
		s.editor.MoveRight()
	case KeyHome:
		s.editor.Home()
	case KeyEnd:
		s.editor.End()
	case KeyEnter:
		switch sc.Mode {
		case InputNumber:
			return s.submitNumber(sc)
		case InputName:
			return s.submitName()
		}
	}
	return Result{}
}

// insert adds r to the input line if the mode accepts it.
func (s *Session) insert(mode InputMode, r rune) {
	switch mode {
	case InputNumber:
		if unicode.IsDigit(r) {
			s.editor.Insert(r)
		}
	case InputName:
		if unicode.IsPrint(r) {
			s.editor.Insert(r)
		}
	}
}

// Paste inserts text into the input line. It only does anything on the game
// screen with the quit popup closed; runes the input mode rejects are
// dropped and nothing in text is read as a command.
func (s *Session) Paste(text string) {
	sc, ok := s.screen.(*GameScreen)
	if !ok || sc.QuitConfirm {
		return
	}
	for _, r := range text {
		s.insert(sc.Mode, r)
	}
}

func (s *Session) submitNumber(sc *GameScreen) Result {
	text := s.editor.String()
	if text == "" {
		return Result{}
	}

	v, err := strconv.ParseInt(text, 10, 32)
	s.editor.Clear()
	if err != nil {
		return Result{Err: errors.InvalidGuess(text, err)}
	}

	now := s.now()
	s.history.Add(game.Move{Value: int(v), SubmittedAt: now})
	latest, _ := s.history.Latest()

	if s.round.Evaluate(latest.Value, now) != game.Correct {
		return Result{}
	}

	sc.Mode = InputName
	logger.WithComponent("session").Info("round won",
		"range", s.round.NumberRange(), "tries", s.history.Len(), "elapsed", s.round.Elapsed())
	return Result{Won: true}
}

func (s *Session) submitName() Result {
	name := s.editor.String()
	if name == "" {
		return Result{}
	}

	s.userName = name
	s.editor.Clear()

	rec, err := s.recorder.Record(context.Background(), s.round, s.history.Len(), name)
	s.screen = &LeaderboardScreen{Highlight: rec.ID}

	res := Result{ScreenChanged: true}
	if err != nil {
		res.Err = err
		return res
	}
	res.Saved = &rec
	return res
}

func (s *Session) handleLeaderboard(k Key) Result {
	if k.is('q') {
		s.toMenu()
		return Result{ScreenChanged: true}
	}
	return Result{}
}

// Snapshot is a copy of everything the views need to draw one frame.
type Snapshot struct {
	Screen Screen

	// Menu
	MenuSelected int

	// Game
	Mode        InputMode
	QuitConfirm bool
	Round       game.Round
	History     []game.Move
	Input       string
	Cursor      int
	Tries       int

	// Leaderboard
	Highlight string

	UserName string
}

// Snapshot returns the current state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Round:    *s.round,
		History:  s.history.Moves(),
		Input:    s.editor.String(),
		Cursor:   s.editor.Cursor(),
		Tries:    s.history.Len(),
		UserName: s.userName,
	}
	// Screen is a copy of the live screen.
	switch sc := s.screen.(type) {
	case *MenuScreen:
		c := *sc
		snap.Screen = &c
		snap.MenuSelected = sc.Selected
	case *GameScreen:
		c := *sc
		snap.Screen = &c
		snap.Mode = sc.Mode
		snap.QuitConfirm = sc.QuitConfirm
	case *LeaderboardScreen:
		c := *sc
		snap.Screen = &c
		snap.Highlight = sc.Highlight
	}
	return snap
}
