package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/floorboard/internal/logsink"
)

// logViewportHeight leaves room for the panel border and the view title.
func (m Model) logViewportHeight() int {
	return max(m.contentHeight()-5, 1)
}

// updateLogViewport re-renders the log lines when entries were added. The
// viewport sticks to the tail while following.
func (m *Model) updateLogViewport() {
	if !m.ready || m.panel == nil {
		return
	}
	entries := m.panel.Entries()
	if len(entries) == m.logCount {
		return
	}
	m.logCount = len(entries)

	styles := m.theme.Styles()
	width := m.logViewport.Width
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		line := ansi.Truncate(e.String(), width, "…")
		switch e.Severity {
		case logsink.SeverityError:
			line = styles.DangerText.Render(line)
		case logsink.SeverityWarn:
			line = styles.WarningText.Render(line)
		default:
			line = styles.Text.Render(line)
		}
		lines = append(lines, line)
	}
	m.logViewport.SetContent(strings.Join(lines, "\n"))
	if m.logFollow {
		m.logViewport.GotoBottom()
	}
}

// handleLogsKey scrolls the system log. Scrolling up stops following; reaching
// the bottom resumes it.
func (m Model) handleLogsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.logViewport.LineUp(1)
		m.logFollow = false
	case key.Matches(msg, m.keys.Down):
		m.logViewport.LineDown(1)
		m.logFollow = m.logViewport.AtBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.logViewport.LineUp(max(m.logViewport.Height/2, 1))
		m.logFollow = false
	case key.Matches(msg, m.keys.PageDown):
		m.logViewport.LineDown(max(m.logViewport.Height/2, 1))
		m.logFollow = m.logViewport.AtBottom()
	case key.Matches(msg, m.keys.Top):
		m.logViewport.GotoTop()
		m.logFollow = false
	case key.Matches(msg, m.keys.Bottom):
		m.logViewport.GotoBottom()
		m.logFollow = true
	case key.Matches(msg, m.keys.Follow):
		m.logFollow = !m.logFollow
		if m.logFollow {
			m.logViewport.GotoBottom()
		}
	}
	return m, nil
}

func (m Model) renderLogs() string {
	styles := m.theme.Styles()

	status := "following"
	if !m.logFollow {
		status = "paused"
	}
	title := m.sectionTitle("System log") + "  " +
		styles.FaintText.Render(status)

	if m.panel == nil || m.panel.Len() == 0 {
		return title + "\n\n" + styles.MutedText.Render("No entries yet.")
	}
	return title + "\n\n" + m.logViewport.View()
}
