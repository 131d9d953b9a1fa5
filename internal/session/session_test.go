package session

import (
	"context"
	stderrors "errors"
	"math/rand/v2"
	"os"
	"testing"
	"time"

	"github.com/zhubert/guess/internal/errors"
	"github.com/zhubert/guess/internal/game"
	"github.com/zhubert/guess/internal/logger"
	"github.com/zhubert/guess/internal/scores"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()
	logger.Close()
	os.Exit(code)
}

var t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

// stepClock returns a clock that advances by step on every call.
func stepClock(step time.Duration) func() time.Time {
	now := t0
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func newTestSession(t *testing.T, store scores.Store, secret int) *Session {
	t.Helper()
	return New(store, WithClock(stepClock(time.Second)), WithSecret(secret))
}

// typeText sends each rune of s as a key press.
func typeText(s *Session, text string) {
	for _, r := range text {
		s.Handle(Rune(r))
	}
}

// guess types n and presses Enter.
func guess(s *Session, text string) Result {
	typeText(s, text)
	return s.Handle(Enter)
}

// startPreset moves the menu cursor to idx and presses Enter.
func startPreset(t *testing.T, s *Session, idx int) {
	t.Helper()
	for i := 0; i < len(MenuItems); i++ {
		s.Handle(Up)
	}
	for i := 0; i < idx; i++ {
		s.Handle(Down)
	}
	res := s.Handle(Enter)
	if !res.ScreenChanged {
		t.Fatalf("Enter on menu item %d did not change screen", idx)
	}
}

func gameScreen(t *testing.T, s *Session) *GameScreen {
	t.Helper()
	gs, ok := s.Screen().(*GameScreen)
	if !ok {
		t.Fatalf("screen = %T, want *GameScreen", s.Screen())
	}
	return gs
}

func TestNew_StartsOnMenu(t *testing.T) {
	s := New(nil)
	ms, ok := s.Screen().(*MenuScreen)
	if !ok {
		t.Fatalf("screen = %T, want *MenuScreen", s.Screen())
	}
	if ms.Selected != 0 {
		t.Errorf("Selected = %d, want 0", ms.Selected)
	}
	if s.Round() == nil {
		t.Error("expected a default round")
	}
}

func TestMenuItems(t *testing.T) {
	if len(MenuItems) != 7 {
		t.Fatalf("len(MenuItems) = %d, want 7", len(MenuItems))
	}
	want := []game.Preset{
		{Min: 1, Max: 100},
		{Min: 1, Max: 100, HardMode: true},
		{Min: 1, Max: 1000},
		{Min: 1, Max: 1000, HardMode: true},
		{Min: 1, Max: 1000000, HardMode: true},
	}
	for i, p := range want {
		if MenuItems[i].Action != ActionStart || MenuItems[i].Preset != p {
			t.Errorf("MenuItems[%d] = %+v, want start %+v", i, MenuItems[i], p)
		}
	}
	if MenuItems[5].Action != ActionLeaderboard {
		t.Errorf("MenuItems[5] = %+v, want leaderboard", MenuItems[5])
	}
	if MenuItems[6].Action != ActionQuit {
		t.Errorf("MenuItems[6] = %+v, want quit", MenuItems[6])
	}
}

func TestMenu_NavigationClamps(t *testing.T) {
	tests := []struct {
		name string
		keys []Key
		want int
	}{
		{"up at top", []Key{Up}, 0},
		{"down once", []Key{Down}, 1},
		{"down then up", []Key{Down, Down, Up}, 1},
		{"down past end", []Key{Down, Down, Down, Down, Down, Down, Down, Down, Down}, 6},
		{"ignores runes", []Key{Rune('j'), Rune('q')}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			for _, k := range tt.keys {
				s.Handle(k)
			}
			if got := s.Snapshot().MenuSelected; got != tt.want {
				t.Errorf("MenuSelected = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestMenu_EnterActions(t *testing.T) {
	s := New(nil)
	for i := 0; i < 5; i++ {
		s.Handle(Down)
	}
	res := s.Handle(Enter)
	if _, ok := s.Screen().(*LeaderboardScreen); !ok || !res.ScreenChanged {
		t.Fatalf("index 5 should open the leaderboard, got %T", s.Screen())
	}

	s.Handle(Rune('q'))
	if ms, ok := s.Screen().(*MenuScreen); !ok || ms.Selected != 5 {
		t.Fatalf("q should return to menu at index 5, got %#v", s.Screen())
	}

	s.Handle(Down)
	if res := s.Handle(Enter); !res.Quit {
		t.Error("index 6 should quit")
	}
}

func TestStartGame_Presets(t *testing.T) {
	for i, item := range MenuItems[:5] {
		t.Run(item.Label, func(t *testing.T) {
			s := New(nil, WithRand(rand.New(rand.NewPCG(1, uint64(i)))))
			startPreset(t, s, i)

			gs := gameScreen(t, s)
			if gs.Mode != InputNumber || gs.QuitConfirm {
				t.Errorf("game screen = %+v, want InputNumber without popup", gs)
			}
			r := s.Round()
			if r.Min != item.Preset.Min || r.Max != item.Preset.Max || r.HardMode != item.Preset.HardMode {
				t.Errorf("round = %+v, want preset %+v", r, item.Preset)
			}
			if r.Secret < r.Min || r.Secret > r.Max {
				t.Errorf("secret %d outside [%d, %d]", r.Secret, r.Min, r.Max)
			}
			if s.Tries() != 0 || s.Snapshot().Input != "" {
				t.Error("new game should start with empty history and editor")
			}
		})
	}
}

func TestScenario_WinAndRecord(t *testing.T) {
	store := scores.NewMemoryStore()
	s := newTestSession(t, store, 42)
	startPreset(t, s, 0)

	steps := []struct {
		input    string
		response string
		min, max int
	}{
		{"50", "Number is < than 50", 1, 50},
		{"10", "Number is > than 10", 10, 50},
		{"42", "YOU WON !!!", 10, 50},
	}
	for _, st := range steps {
		guess(s, st.input)
		r := s.Round()
		if r.Response != st.response {
			t.Errorf("after %s: response = %q, want %q", st.input, r.Response, st.response)
		}
		if r.Min != st.min || r.Max != st.max {
			t.Errorf("after %s: bounds = (%d,%d), want (%d,%d)", st.input, r.Min, r.Max, st.min, st.max)
		}
	}

	if s.Tries() != 3 {
		t.Errorf("Tries = %d, want 3", s.Tries())
	}
	if gs := gameScreen(t, s); gs.Mode != InputName {
		t.Fatalf("mode = %v, want name", gs.Mode)
	}

	res := guess(s, "Ann")
	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Saved == nil {
		t.Fatal("expected a saved record")
	}
	lb, ok := s.Screen().(*LeaderboardScreen)
	if !ok {
		t.Fatalf("screen = %T, want leaderboard", s.Screen())
	}
	if lb.Highlight != res.Saved.ID {
		t.Errorf("Highlight = %q, want %q", lb.Highlight, res.Saved.ID)
	}
	if s.UserName() != "Ann" {
		t.Errorf("UserName = %q", s.UserName())
	}

	loaded := store.Load(context.Background())
	if len(loaded.Records) != 1 {
		t.Fatalf("stored %d records, want 1", len(loaded.Records))
	}
	rec := loaded.Records[0]
	if rec.Name != "Ann" || rec.Tries != 3 || rec.NumberRange != "1-100" || rec.HardMode {
		t.Errorf("record = %+v", rec)
	}
	if rec.ElapsedMS <= 0 {
		t.Errorf("ElapsedMS = %d, want positive", rec.ElapsedMS)
	}
	if rec.ElapsedMS != rec.CompletedAt.Sub(rec.StartedAt).Milliseconds() {
		t.Error("ElapsedMS does not match timestamps")
	}
}

func TestScenario_HardModeKeepsBounds(t *testing.T) {
	s := newTestSession(t, scores.NewMemoryStore(), 42)
	startPreset(t, s, 1)

	for _, g := range []string{"50", "10"} {
		guess(s, g)
		if r := s.Round(); r.Min != 1 || r.Max != 100 {
			t.Fatalf("hard mode bounds changed to (%d,%d)", r.Min, r.Max)
		}
	}
	if s.Round().Response != "Number is > than 10" {
		t.Errorf("Response = %q", s.Round().Response)
	}

	res := guess(s, "42")
	if !res.Won {
		t.Error("expected win")
	}
	res = guess(s, "Ann")
	if res.Saved == nil || !res.Saved.HardMode {
		t.Errorf("saved = %+v, want hard mode record", res.Saved)
	}
}

func TestWin_OnlyOnce(t *testing.T) {
	s := newTestSession(t, nil, 7)
	startPreset(t, s, 0)

	if res := guess(s, "7"); !res.Won {
		t.Fatal("expected win")
	}
	completed := s.Round().CompletedAt

	// Digits now go into the name; no further guess is evaluated.
	res := guess(s, "7")
	if res.Won {
		t.Error("second win reported")
	}
	if s.Tries() != 1 {
		t.Errorf("Tries = %d, want 1", s.Tries())
	}
	if !s.Round().CompletedAt.Equal(completed) {
		t.Error("CompletedAt changed after win")
	}
}

func TestGuess_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   []Key
		wantErr bool
		tries   int
	}{
		{"empty enter is no-op", nil, false, 0},
		{"letters ignored", []Key{Rune('a'), Rune('b')}, false, 0},
		{"overflow", keysFor("99999999999"), true, 0},
		{"non-ascii digit", []Key{Rune('٣')}, true, 0},
		{"valid", keysFor("12"), false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, 50)
			startPreset(t, s, 0)
			for _, k := range tt.input {
				s.Handle(k)
			}
			res := s.Handle(Enter)

			if tt.wantErr {
				if !errors.Is(res.Err, errors.KindInvalid) {
					t.Errorf("Err = %v, want invalid", res.Err)
				}
			} else if res.Err != nil {
				t.Errorf("unexpected error: %v", res.Err)
			}
			if s.Tries() != tt.tries {
				t.Errorf("Tries = %d, want %d", s.Tries(), tt.tries)
			}
			if s.Snapshot().Input != "" && tt.input != nil && (tt.wantErr || tt.tries > 0) {
				t.Errorf("editor not cleared: %q", s.Snapshot().Input)
			}
			if gs := gameScreen(t, s); gs.Mode != InputNumber {
				t.Errorf("mode = %v, want number", gs.Mode)
			}
		})
	}
}

func keysFor(text string) []Key {
	var keys []Key
	for _, r := range text {
		keys = append(keys, Rune(r))
	}
	return keys
}

func TestGame_EditingKeys(t *testing.T) {
	s := newTestSession(t, nil, 50)
	startPreset(t, s, 0)

	typeText(s, "123")
	s.Handle(Left)
	s.Handle(Backspace)
	if got := s.Snapshot().Input; got != "13" {
		t.Fatalf("Input = %q, want 13", got)
	}
	s.Handle(Home)
	typeText(s, "9")
	s.Handle(End)
	typeText(s, "0")
	snap := s.Snapshot()
	if snap.Input != "9130" || snap.Cursor != 4 {
		t.Errorf("Input = %q cursor %d, want 9130 cursor 4", snap.Input, snap.Cursor)
	}
	s.Handle(Right)
	if s.Snapshot().Cursor != 4 {
		t.Error("Right at end should clamp")
	}
}

func TestQuitPopup(t *testing.T) {
	s := newTestSession(t, nil, 50)
	startPreset(t, s, 2)
	typeText(s, "12")

	s.Handle(Rune('q'))
	gs := gameScreen(t, s)
	if !gs.QuitConfirm {
		t.Fatal("q should open the popup")
	}

	// Idempotent, and every other key is swallowed.
	for _, k := range []Key{Rune('q'), Rune('5'), Backspace, Enter, Left, Home} {
		s.Handle(k)
	}
	gs = gameScreen(t, s)
	if !gs.QuitConfirm {
		t.Error("popup closed by an unrelated key")
	}
	if got := s.Snapshot().Input; got != "12" {
		t.Errorf("Input = %q, want 12 (keys should be swallowed)", got)
	}
	if s.Tries() != 0 {
		t.Error("Enter under the popup submitted a guess")
	}

	s.Handle(Rune('n'))
	if gameScreen(t, s).QuitConfirm {
		t.Error("n should close the popup")
	}

	s.Handle(Rune('q'))
	res := s.Handle(Rune('y'))
	if !res.ScreenChanged {
		t.Error("y should change screen")
	}
	ms, ok := s.Screen().(*MenuScreen)
	if !ok {
		t.Fatalf("screen = %T, want menu", s.Screen())
	}
	if ms.Selected != 2 {
		t.Errorf("menu index = %d, want 2 (remembered)", ms.Selected)
	}
}

func TestQuitPopup_NotInNameMode(t *testing.T) {
	s := newTestSession(t, nil, 5)
	startPreset(t, s, 0)
	guess(s, "5")

	typeText(s, "quinny")
	gs := gameScreen(t, s)
	if gs.QuitConfirm {
		t.Error("q opened the popup during name entry")
	}
	if got := s.Snapshot().Input; got != "quinny" {
		t.Errorf("Input = %q, want quinny", got)
	}
}

func TestYN_IgnoredWithoutPopup(t *testing.T) {
	s := newTestSession(t, nil, 5)
	startPreset(t, s, 0)

	s.Handle(Rune('y'))
	s.Handle(Rune('n'))
	if _, ok := s.Screen().(*GameScreen); !ok {
		t.Errorf("screen = %T, want game", s.Screen())
	}
}

func TestName_EmptyIsNoop(t *testing.T) {
	store := scores.NewMemoryStore()
	s := newTestSession(t, store, 5)
	startPreset(t, s, 0)
	guess(s, "5")

	res := s.Handle(Enter)
	if res.ScreenChanged || res.Saved != nil {
		t.Errorf("empty name submitted: %+v", res)
	}
	if gameScreen(t, s).Mode != InputName {
		t.Error("should still be taking the name")
	}
	if got := store.Load(context.Background()); len(got.Records) != 0 {
		t.Errorf("records stored: %v", got.Records)
	}
}

func TestName_StoreFailure(t *testing.T) {
	saveErr := stderrors.New("disk full")
	store := scores.NewMemoryStore()
	store.SaveErr = saveErr

	s := newTestSession(t, store, 5)
	startPreset(t, s, 0)
	guess(s, "5")
	res := guess(s, "Bo")

	if !stderrors.Is(res.Err, saveErr) {
		t.Errorf("Err = %v, want %v", res.Err, saveErr)
	}
	if !errors.Is(res.Err, errors.KindIO) {
		t.Errorf("Err kind = %v, want I/O", errors.GetKind(res.Err))
	}
	if res.Saved != nil {
		t.Error("Saved should be nil on failure")
	}
	if _, ok := s.Screen().(*LeaderboardScreen); !ok {
		t.Errorf("screen = %T, want leaderboard even on failure", s.Screen())
	}
}

func TestLeaderboard_OnlyQ(t *testing.T) {
	s := New(nil)
	s.OpenLeaderboard()

	for _, k := range []Key{Up, Down, Enter, Rune('x'), Backspace} {
		if res := s.Handle(k); res.ScreenChanged {
			t.Errorf("%s changed screen", k)
		}
	}
	if _, ok := s.Screen().(*LeaderboardScreen); !ok {
		t.Fatalf("screen = %T", s.Screen())
	}
	s.Handle(Rune('q'))
	if _, ok := s.Screen().(*MenuScreen); !ok {
		t.Errorf("screen = %T, want menu", s.Screen())
	}
}

func TestHistory_MostRecentFirst(t *testing.T) {
	s := newTestSession(t, nil, 500)
	startPreset(t, s, 2)
	for _, g := range []string{"100", "900", "250", "250"} {
		guess(s, g)
	}

	moves := s.Snapshot().History
	want := []int{250, 250, 900, 100}
	if len(moves) != len(want) {
		t.Fatalf("history = %+v", moves)
	}
	for i, v := range want {
		if moves[i].Value != v {
			t.Errorf("history[%d] = %d, want %d", i, moves[i].Value, v)
		}
	}
}

func TestNarrowingMonotonic(t *testing.T) {
	s := newTestSession(t, nil, 500)
	startPreset(t, s, 2)

	prevMin, prevMax := s.Round().Min, s.Round().Max
	for _, g := range []string{"400", "600", "100", "900", "450", "550"} {
		guess(s, g)
		r := s.Round()
		if r.Min < prevMin || r.Max > prevMax {
			t.Fatalf("after %s bounds widened: (%d,%d) -> (%d,%d)", g, prevMin, prevMax, r.Min, r.Max)
		}
		prevMin, prevMax = r.Min, r.Max
	}
	if prevMin != 450 || prevMax != 550 {
		t.Errorf("final bounds = (%d,%d), want (450,550)", prevMin, prevMax)
	}
}

func TestPaste(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(t *testing.T, s *Session)
		paste  string
		want   string
		onGame bool
	}{
		{
			name:   "digits only in number mode",
			setup:  func(t *testing.T, s *Session) { startPreset(t, s, 0) },
			paste:  "1 2\nqy3",
			want:   "123",
			onGame: true,
		},
		{
			name: "printable runes in name mode",
			setup: func(t *testing.T, s *Session) {
				startPreset(t, s, 0)
				guess(s, "42")
			},
			paste:  "Ann\tQ",
			want:   "AnnQ",
			onGame: true,
		},
		{
			name: "popup open",
			setup: func(t *testing.T, s *Session) {
				startPreset(t, s, 0)
				s.Handle(Rune('q'))
			},
			paste:  "7",
			want:   "",
			onGame: true,
		},
		{
			name:  "menu",
			setup: func(t *testing.T, s *Session) {},
			paste: "42",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSession(t, nil, 42)
			tt.setup(t, s)

			s.Paste(tt.paste)

			if got := s.Snapshot().Input; got != tt.want {
				t.Errorf("input = %q, want %q", got, tt.want)
			}
			_, onGame := s.Screen().(*GameScreen)
			if onGame != tt.onGame {
				t.Errorf("screen = %T after paste", s.Screen())
			}
		})
	}
}

func TestSnapshot_ScreenIsCopy(t *testing.T) {
	s := newTestSession(t, nil, 42)
	startPreset(t, s, 0)

	snap := s.Snapshot()
	sc, ok := snap.Screen.(*GameScreen)
	if !ok {
		t.Fatalf("snapshot screen = %T, want game", snap.Screen)
	}
	sc.QuitConfirm = true
	sc.Mode = InputName

	live := gameScreen(t, s)
	if live.QuitConfirm || live.Mode != InputNumber {
		t.Errorf("changing the snapshot changed the session: %+v", *live)
	}

	s.ResetToMenu()
	menu := s.Snapshot().Screen.(*MenuScreen)
	menu.Selected = 4
	if got := s.Snapshot().MenuSelected; got != 0 {
		t.Errorf("MenuSelected = %d, want 0", got)
	}
}

func TestResetToMenu(t *testing.T) {
	s := newTestSession(t, nil, 5)
	startPreset(t, s, 3)
	typeText(s, "12")

	s.ResetToMenu()
	ms, ok := s.Screen().(*MenuScreen)
	if !ok || ms.Selected != 3 {
		t.Fatalf("screen = %#v, want menu at 3", s.Screen())
	}
	if s.Snapshot().Input != "" {
		t.Error("editor not cleared")
	}
}

func TestNewGameResetsState(t *testing.T) {
	s := newTestSession(t, nil, 5)
	startPreset(t, s, 0)
	guess(s, "3")
	typeText(s, "4")
	s.Handle(Rune('q'))
	s.Handle(Rune('y'))

	startPreset(t, s, 0)
	snap := s.Snapshot()
	if snap.Tries != 0 || snap.Input != "" || snap.Round.Response != "" {
		t.Errorf("state leaked into new game: %+v", snap)
	}
}

func TestKeyString(t *testing.T) {
	tests := []struct {
		k    Key
		want string
	}{
		{Rune('a'), "a"},
		{Enter, "enter"},
		{Backspace, "backspace"},
		{Up, "up"},
		{End, "end"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
