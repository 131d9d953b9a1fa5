package ui

import (
	"charm.land/lipgloss/v2"
)

// ModalState is a discriminated union interface for modal-specific state.
// Key handling for modals lives in the session; states only describe what
// to draw.
type ModalState interface {
	modalState() // marker method to restrict implementations
	Title() string
	Help() string
	Render() string
}

// Modal represents a popup dialog. The State field is nil when no modal is
// visible.
type Modal struct {
	State ModalState
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state ModalState) {
	m.State = state
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// View renders the modal centered in the given area
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	modal := ModalStyle.Render(m.State.Render())

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		modal,
	)
}

// =============================================================================
// ConfirmQuitState - State for ending a round early
// =============================================================================

type ConfirmQuitState struct {
	Tries int
}

func (*ConfirmQuitState) modalState() {}

func (s *ConfirmQuitState) Title() string { return "Confirmation" }

func (s *ConfirmQuitState) Help() string {
	return "y: back to menu  n: keep playing"
}

func (s *ConfirmQuitState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	message := ModalTextStyle.Render("Quit the game (y/n)?")

	parts := []string{title, message}
	if s.Tries > 0 {
		parts = append(parts, MutedStyle.Render("This round will not be recorded."))
	}
	parts = append(parts, ModalHelpStyle.Render(s.Help()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// NewConfirmQuitState creates the quit confirmation for a round with tries
// guesses so far.
func NewConfirmQuitState(tries int) *ConfirmQuitState {
	return &ConfirmQuitState{Tries: tries}
}
