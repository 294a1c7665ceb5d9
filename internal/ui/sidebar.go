package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/five82/floorboard/internal/nav"
)

// renderSidebar draws the menu. The entry carrying the active selector is
// highlighted; entries past nine have no number key.
func (m Model) renderSidebar() string {
	styles := m.theme.Styles()
	width := m.sidebarWidth()
	compact := m.width < LayoutCompactWidth

	var lines []string
	if !compact {
		lines = append(lines, styles.MutedText.Render("MENU"), "")
	}
	for i, it := range m.nav.Items() {
		num := " "
		if i < 9 {
			num = fmt.Sprintf("%d", i+1)
		}
		label := num
		if !compact {
			label = ansi.Truncate(num+" "+it.Label, width-3, "…")
		}
		row := lipgloss.NewStyle().Width(width - 1).Padding(0, 1)
		if m.snapshot.HasClass(it.ElementID(), nav.ActiveClass) {
			lines = append(lines, row.Inherit(styles.Selected).Render(label))
			continue
		}
		lines = append(lines, row.Inherit(styles.Text).Render(label))
	}

	return lipgloss.NewStyle().
		Width(width).
		Height(m.contentHeight()).
		Render(strings.Join(lines, "\n"))
}
