package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/floorboard/internal/nav"
	"github.com/five82/floorboard/internal/telemetry"
	"github.com/five82/floorboard/internal/theme"
)

// renderMain lays out header, banner, sidebar with content, and command bar.
func (m Model) renderMain() string {
	styles := m.theme.Styles()

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.renderSidebar(),
		m.renderContent(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		styles.Banner.Render(m.banner.view(m.width)),
		body,
		m.renderCommandBar(),
	)
}

// renderHeader renders the top bar: logo and view title on the left, clock
// and theme label on the right.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	left := styles.Logo.Render("FLOORBOARD") +
		styles.MutedText.Render(" │ ") +
		styles.Text.Render(m.snapshot.Text(nav.TitleID))

	right := styles.MutedText.Render(m.snapshot.Text(telemetry.ClockID))
	if label := m.snapshot.Text(theme.ToggleID); label != "" {
		right += "  " + styles.AccentText.Render("["+label+"]")
	}

	inner := max(m.width-2, 0) // Header padding
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	line := left + strings.Repeat(" ", max(gap, 1)) + right
	line = ansi.Truncate(line, inner, "…")

	return styles.Header.Width(m.width).Render(line)
}

// renderCommandBar renders the bottom key hint row.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles()

	var parts []string
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		parts = append(parts, styles.AccentText.Render(h.Key)+" "+h.Desc)
	}
	if m.form != nil {
		parts = []string{
			styles.AccentText.Render("enter") + " Next field",
			styles.AccentText.Render("esc") + " Cancel",
		}
	}

	line := strings.Join(parts, "  ")
	line = ansi.Truncate(line, max(m.width-2, 0), "…")
	return styles.Footer.Width(m.width).Render(line)
}
