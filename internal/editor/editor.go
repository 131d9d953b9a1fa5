// Package editor implements a single-line text buffer with a character
// cursor. The cursor counts runes, never bytes, so multi-byte input is never
// split.
package editor

import (
	"unicode/utf8"
)

// Editor is a single-line text buffer. The zero value is an empty buffer.
// Invariant: 0 <= cursor <= Len().
type Editor struct {
	buf    string
	cursor int
}

// New creates an empty editor
func New() *Editor {
	return &Editor{}
}

// String returns the buffer contents
func (e *Editor) String() string {
	return e.buf
}

// Len returns the number of characters in the buffer
func (e *Editor) Len() int {
	return utf8.RuneCountInString(e.buf)
}

// IsEmpty reports whether the buffer has no characters
func (e *Editor) IsEmpty() bool {
	return e.buf == ""
}

// Cursor returns the cursor position as a character offset
func (e *Editor) Cursor() int {
	return e.cursor
}

// ByteIndex maps a character offset to its byte offset in the buffer.
// Offsets past the end map to len(buffer).
func (e *Editor) ByteIndex(charIdx int) int {
	if charIdx <= 0 {
		return 0
	}
	n := 0
	for i := range e.buf {
		if n == charIdx {
			return i
		}
		n++
	}
	return len(e.buf)
}

// Insert puts r at the cursor and advances the cursor by one character.
func (e *Editor) Insert(r rune) {
	if !utf8.ValidRune(r) {
		r = utf8.RuneError
	}
	at := e.ByteIndex(e.cursor)
	e.buf = e.buf[:at] + string(r) + e.buf[at:]
	e.SetCursor(e.cursor + 1)
}

// DeleteBeforeCursor removes the character left of the cursor.
// It does nothing when the cursor is at the start.
func (e *Editor) DeleteBeforeCursor() {
	if e.cursor == 0 {
		return
	}
	before := e.buf[:e.ByteIndex(e.cursor-1)]
	after := e.buf[e.ByteIndex(e.cursor):]
	e.buf = before + after
	e.SetCursor(e.cursor - 1)
}

// Clear empties the buffer and resets the cursor
func (e *Editor) Clear() {
	e.buf = ""
	e.cursor = 0
}

// SetCursor moves the cursor to pos, clamped to [0, Len()].
func (e *Editor) SetCursor(pos int) {
	e.cursor = clamp(pos, 0, e.Len())
}

// MoveLeft moves the cursor one character left
func (e *Editor) MoveLeft() {
	e.SetCursor(e.cursor - 1)
}

// MoveRight moves the cursor one character right
func (e *Editor) MoveRight() {
	e.SetCursor(e.cursor + 1)
}

// Home moves the cursor to the start of the line
func (e *Editor) Home() {
	e.SetCursor(0)
}

// End moves the cursor past the last character
func (e *Editor) End() {
	e.SetCursor(e.Len())
}

// Split returns the text before and after the cursor. Renderers use it to
// draw the cursor without touching the buffer.
func (e *Editor) Split() (before, after string) {
	at := e.ByteIndex(e.cursor)
	return e.buf[:at], e.buf[at:]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
