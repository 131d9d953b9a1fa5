package app

import (
	"unicode/utf8"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/guess/internal/keys"
	"github.com/zhubert/guess/internal/session"
)

// namedKeys maps key strings to the session keys they produce
var namedKeys = map[string]session.Key{
	keys.Enter:     session.Enter,
	keys.Backspace: session.Backspace,
	keys.Up:        session.Up,
	keys.Down:      session.Down,
	keys.Left:      session.Left,
	keys.Right:     session.Right,
	keys.Home:      session.Home,
	keys.End:       session.End,
	keys.CtrlA:     session.Home,
	keys.CtrlE:     session.End,
}

// toSessionKey translates a key press. Keys the session has no use for
// (function keys, other ctrl/alt chords) report false.
func toSessionKey(msg tea.KeyPressMsg) (session.Key, bool) {
	if k, ok := namedKeys[msg.String()]; ok {
		return k, true
	}
	if msg.Mod&(tea.ModCtrl|tea.ModAlt) != 0 {
		return session.Key{}, false
	}
	if msg.Text == "" {
		return session.Key{}, false
	}
	r, size := utf8.DecodeRuneInString(msg.Text)
	if r == utf8.RuneError || size != len(msg.Text) {
		return session.Key{}, false
	}
	return session.Rune(r), true
}
