package session

import "fmt"

// KeyType identifies a key the session understands.
type KeyType int

const (
	// KeyRune is a printable character; Key.Rune holds it.
	KeyRune KeyType = iota
	KeyEnter
	KeyBackspace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
)

// Key is a single key press after the terminal layer has decoded it.
type Key struct {
	Type KeyType
	Rune rune
}

// Rune returns a KeyRune key for r.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Convenience values for the non-character keys.
var (
	Enter     = Key{Type: KeyEnter}
	Backspace = Key{Type: KeyBackspace}
	Up        = Key{Type: KeyUp}
	Down      = Key{Type: KeyDown}
	Left      = Key{Type: KeyLeft}
	Right     = Key{Type: KeyRight}
	Home      = Key{Type: KeyHome}
	End       = Key{Type: KeyEnd}
)

func (k Key) is(r rune) bool {
	return k.Type == KeyRune && k.Rune == r
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return string(k.Rune)
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	default:
		return fmt.Sprintf("key(%d)", k.Type)
	}
}
