package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
)

func TestNewFooter(t *testing.T) {
	footer := NewFooter()

	if footer == nil {
		t.Fatal("NewFooter() returned nil")
	}
	if footer.flashMessage != nil {
		t.Error("Expected no flash message initially")
	}
	if footer.mode != FooterMenu {
		t.Errorf("Expected menu mode initially, got %v", footer.mode)
	}
}

func TestFooter_SetWidth(t *testing.T) {
	footer := NewFooter()

	footer.SetWidth(120)

	if footer.width != 120 {
		t.Errorf("Expected width 120, got %d", footer.width)
	}
}

func TestFooter_SetFlash(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Test error message", FlashError)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Text != "Test error message" {
		t.Errorf("Expected text 'Test error message', got %q", footer.flashMessage.Text)
	}
	if footer.flashMessage.Type != FlashError {
		t.Errorf("Expected type FlashError, got %v", footer.flashMessage.Type)
	}
	if footer.flashMessage.Duration != DefaultFlashDuration {
		t.Errorf("Expected duration %v, got %v", DefaultFlashDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_SetFlashWithDuration(t *testing.T) {
	footer := NewFooter()
	customDuration := 10 * time.Second

	footer.SetFlashWithDuration("Custom duration", FlashInfo, customDuration)

	if footer.flashMessage == nil {
		t.Fatal("Expected flash message to be set")
	}
	if footer.flashMessage.Duration != customDuration {
		t.Errorf("Expected duration %v, got %v", customDuration, footer.flashMessage.Duration)
	}
}

func TestFooter_ClearFlash(t *testing.T) {
	footer := NewFooter()

	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false initially")
	}

	footer.SetFlash("Test message", FlashInfo)
	if !footer.HasFlash() {
		t.Error("Expected HasFlash() to return true")
	}

	footer.ClearFlash()
	if footer.HasFlash() {
		t.Error("Expected HasFlash() to return false after ClearFlash()")
	}
}

func TestFlashMessage_IsExpired(t *testing.T) {
	msg := &FlashMessage{
		Text:      "Test",
		Type:      FlashInfo,
		CreatedAt: time.Now(),
		Duration:  5 * time.Second,
	}
	if msg.IsExpired() {
		t.Error("New message should not be expired")
	}

	expiredMsg := &FlashMessage{
		Text:      "Test",
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-10 * time.Second),
		Duration:  5 * time.Second,
	}
	if !expiredMsg.IsExpired() {
		t.Error("Old message should be expired")
	}
}

func TestFooter_ClearIfExpired(t *testing.T) {
	footer := NewFooter()

	footer.SetFlash("Not expired", FlashInfo)
	if footer.ClearIfExpired() {
		t.Error("Should not clear non-expired message")
	}
	if !footer.HasFlash() {
		t.Error("Flash should still be present")
	}

	footer.flashMessage = &FlashMessage{
		Text:      "Expired",
		Type:      FlashInfo,
		CreatedAt: time.Now().Add(-10 * time.Second),
		Duration:  5 * time.Second,
	}
	if !footer.ClearIfExpired() {
		t.Error("Should clear expired message")
	}
	if footer.HasFlash() {
		t.Error("Flash should be cleared")
	}
}

func TestFooter_FlashTypes(t *testing.T) {
	tests := []struct {
		name         string
		flashType    FlashType
		expectedIcon string
	}{
		{"Error", FlashError, "✕"},
		{"Warning", FlashWarning, "⚠"},
		{"Info", FlashInfo, "ℹ"},
		{"Success", FlashSuccess, "✓"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(80)
			footer.SetFlash("Test message", tt.flashType)

			view := footer.View()
			if !strings.Contains(view, tt.expectedIcon) {
				t.Errorf("Expected %s flash to contain icon %q", tt.name, tt.expectedIcon)
			}
			if !strings.Contains(ansi.Strip(view), "Test message") {
				t.Error("Flash text should be visible")
			}
		})
	}
}

func TestFlashTick(t *testing.T) {
	if FlashTick() == nil {
		t.Error("FlashTick() should return a command")
	}
}

func TestFooter_ModeContent(t *testing.T) {
	tests := []struct {
		name    string
		mode    FooterMode
		tries   int
		want    []string
		notWant []string
	}{
		{
			name:    "menu",
			mode:    FooterMenu,
			want:    []string{"navigate", "select", "quit"},
			notWant: []string{"guesses made"},
		},
		{
			name:    "guessing",
			mode:    FooterGuess,
			tries:   4,
			want:    []string{"guesses made : 4", "(q) to end game"},
			notWant: []string{"back to menu"},
		},
		{
			name:    "entering name",
			mode:    FooterName,
			tries:   7,
			want:    []string{"guesses made : 7", "save score"},
			notWant: []string{"(q)"},
		},
		{
			name:  "quit confirmation",
			mode:  FooterConfirm,
			tries: 2,
			want:  []string{"guesses made : 2", "y back to menu", "n keep playing"},
		},
		{
			name:    "leaderboard",
			mode:    FooterLeaderboard,
			want:    []string{"Top 15 shown", "(q) to back to menu"},
			notWant: []string{"guesses made"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			footer := NewFooter()
			footer.SetWidth(120)
			footer.SetContext(tt.mode, tt.tries)

			view := ansi.Strip(footer.View())
			for _, s := range tt.want {
				if !strings.Contains(view, s) {
					t.Errorf("view %q should contain %q", view, s)
				}
			}
			for _, s := range tt.notWant {
				if strings.Contains(view, s) {
					t.Errorf("view %q should not contain %q", view, s)
				}
			}
		})
	}
}

func TestFooter_FlashTakesPriority(t *testing.T) {
	footer := NewFooter()
	footer.SetWidth(120)
	footer.SetContext(FooterGuess, 3)
	footer.SetFlash("Could not save score", FlashError)

	view := ansi.Strip(footer.View())
	if !strings.Contains(view, "Could not save score") {
		t.Error("Flash message should be shown")
	}
	if strings.Contains(view, "guesses made") {
		t.Error("Status should not show while a flash is active")
	}
}
