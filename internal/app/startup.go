package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/guess/internal/changelog"
	"github.com/zhubert/guess/internal/logger"
)

// devVersion is the version of builds without ldflags
const devVersion = "dev"

// handleStartup flashes a note when the player runs a version newer than
// the last one they saw.
func (m *Model) handleStartup() tea.Cmd {
	if m.version == "" || m.version == devVersion {
		return nil
	}

	lastSeen := m.config.GetLastSeenVersion()
	if lastSeen == m.version {
		return nil
	}

	changes := changelog.GetChangesSince(lastSeen, changelog.Parse(changelog.Content))
	m.config.SetLastSeenVersion(m.version)
	if cmd := m.saveConfigOrFlash(); cmd != nil {
		return cmd
	}

	// First run: nothing to announce
	if lastSeen == "" || len(changes) == 0 {
		return nil
	}

	logger.WithComponent("app").Info("new version", "from", lastSeen, "to", m.version, "entries", len(changes))
	return m.ShowFlashInfo(fmt.Sprintf("Updated to %s. Run `guess changelog` to see what changed", m.version))
}
