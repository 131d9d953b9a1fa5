package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/guess/internal/session"
)

// Menu draws the main menu
type Menu struct {
	width    int
	height   int
	selected int
	items    []session.MenuItem
}

// NewMenu creates a menu over session.MenuItems
func NewMenu() *Menu {
	return &Menu{items: session.MenuItems}
}

// SetSize sets the area the menu is centered in
func (m *Menu) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetSelected sets the highlighted item
func (m *Menu) SetSelected(i int) {
	m.selected = i
}

// View renders the menu
func (m *Menu) View() string {
	var b strings.Builder
	b.WriteString(PanelTitleStyle.Render("Main menu"))
	b.WriteString("\n\n")

	itemWidth := MenuWidth - BorderSize - 2
	for i, item := range m.items {
		if i > 0 {
			b.WriteString("\n")
		}
		if i == m.selected {
			b.WriteString(MenuSelectedStyle.Width(itemWidth).Render("> " + item.Label))
		} else {
			b.WriteString(MenuItemStyle.Width(itemWidth).Render("  " + item.Label))
		}
	}

	panel := PanelStyle.Width(MenuWidth).Render(b.String())
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, panel)
}
