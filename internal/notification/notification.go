// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/guess/internal/logger"
)

// Notifier delivers one desktop notification.
type Notifier func(title, message string, icon any) error

var notifyFunc Notifier = beeep.Notify

// SetNotifier replaces the delivery function. Demos use it to stay silent.
func SetNotifier(n Notifier) {
	notifyFunc = n
}

// ResetNotifier restores beeep delivery.
func ResetNotifier() {
	notifyFunc = beeep.Notify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon - beeep handles platform defaults
	err := notifyFunc(title, message, "")
	if err != nil {
		log.Warn("failed to send notification", "error", err)
	}
	return err
}

// RoundWon announces a finished round.
func RoundWon(numberRange string, tries int) error {
	noun := "guesses"
	if tries == 1 {
		noun = "guess"
	}
	return Send("Guess", fmt.Sprintf("Solved %s in %d %s", numberRange, tries, noun))
}
