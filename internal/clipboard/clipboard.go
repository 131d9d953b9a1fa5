// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"fmt"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/guess/internal/logger"
)

// Backend is the clipboard implementation. Tests swap it out.
type Backend interface {
	Init() error
	Write(text string)
	Read() string
}

// system talks to the OS clipboard through golang.design/x/clipboard
type system struct{}

func (system) Init() error       { return clipboard.Init() }
func (system) Write(text string) { clipboard.Write(clipboard.FmtText, []byte(text)) }
func (system) Read() string      { return string(clipboard.Read(clipboard.FmtText)) }

var (
	mu          sync.Mutex
	backend     Backend = system{}
	initialized bool
)

// SetBackend replaces the clipboard implementation and forgets any earlier
// initialization.
func SetBackend(b Backend) {
	mu.Lock()
	defer mu.Unlock()
	backend = b
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	SetBackend(system{})
}

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}

	log := logger.WithComponent("clipboard")
	if err := backend.Init(); err != nil {
		log.Warn("failed to initialize clipboard", "error", err)
		return fmt.Errorf("failed to initialize clipboard: %w", err)
	}

	initialized = true
	log.Debug("clipboard initialized")
	return nil
}

// WriteText places text on the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return err
	}
	backend.Write(text)
	logger.WithComponent("clipboard").Debug("copied text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()

	if err := initLocked(); err != nil {
		return "", err
	}
	return backend.Read(), nil
}
