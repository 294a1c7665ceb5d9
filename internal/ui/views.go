package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/five82/floorboard/internal/floor"
	"github.com/five82/floorboard/internal/plans"
	"github.com/five82/floorboard/internal/telemetry"
)

// renderContent draws the visible view inside the main panel.
func (m Model) renderContent() string {
	styles := m.theme.Styles()

	var body string
	switch m.activeView() {
	case ViewDashboard:
		body = m.renderDashboard()
	case ViewPlans:
		body = m.renderPlans()
	case ViewProcess:
		body = m.renderProcess()
	case ViewLogs:
		body = m.renderLogs()
	default:
		body = styles.MutedText.Render("No view selected.")
	}

	return styles.Panel.
		Width(max(m.width-m.sidebarWidth()-2, 0)).
		Height(max(m.contentHeight()-2, 1)).
		MaxHeight(m.contentHeight()).
		Render(body)
}

func (m Model) sectionTitle(title string) string {
	return m.theme.Styles().AccentText.Render(title)
}

// Dashboard

func (m Model) renderDashboard() string {
	styles := m.theme.Styles()

	var sb strings.Builder
	sb.WriteString(m.sectionTitle("Production overview"))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "%s %s %s\n",
		styles.MutedText.Render(fmt.Sprintf("%-16s", "Output today")),
		styles.Text.Bold(true).Render(m.snapshot.Text(telemetry.ProductionID)),
		styles.MutedText.Render("units"))

	cpuText := m.snapshot.Text(telemetry.CPUID)
	fmt.Fprintf(&sb, "%s %s %s\n\n",
		styles.MutedText.Render(fmt.Sprintf("%-16s", "Server CPU")),
		m.cpuBar.ViewAs(parsePercent(cpuText)),
		styles.Text.Render(cpuText))

	sb.WriteString(m.renderLineTable())
	sb.WriteString("\n\n")

	if m.chart != nil {
		sb.WriteString(m.sectionTitle(m.chart.Title()))
		sb.WriteString("\n")
		sb.WriteString(styles.Text.Render(m.chart.Render()))
	}
	return sb.String()
}

// parsePercent turns "42%" into 0.42. Unparseable text reads as zero.
func parsePercent(s string) float64 {
	n, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(s, "%")))
	if err != nil {
		return 0
	}
	return min(max(float64(n)/100, 0), 1)
}

func (m Model) renderLineTable() string {
	styles := m.theme.Styles()
	lines, _ := m.snapshot.Content(floor.LineTableID).([]floor.Line)

	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			l.Name,
			styles.BadgeStyle(l.BadgeClass()).Render(l.StatusLabel()),
			l.Updated,
			strconv.Itoa(l.Target),
			strconv.Itoa(l.Actual),
			fmt.Sprintf("%3.0f%%", l.Attainment()*100),
		})
	}

	return m.newTable().
		Headers("Line", "Status", "Updated", "Target", "Actual", "Attain").
		Rows(rows...).
		Render()
}

// newTable returns a themed lipgloss table with header styling applied.
func (m Model) newTable() *table.Table {
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Muted)).
		Bold(true).
		Padding(0, 1)
	cell := lipgloss.NewStyle().
		Foreground(lipgloss.Color(m.theme.Text)).
		Padding(0, 1)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Border))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}

// Plans

func (m Model) renderPlans() string {
	styles := m.theme.Styles()

	var sb strings.Builder
	sb.WriteString(m.sectionTitle("Production plans"))
	sb.WriteString("\n\n")

	if m.form != nil {
		sb.WriteString(styles.Text.Bold(true).Render("New production order"))
		sb.WriteString("\n\n")
		sb.WriteString(m.form.View())
		return sb.String()
	}

	rows, _ := m.snapshot.Content(plans.TableID).([]plans.Row)
	if len(rows) == 0 {
		sb.WriteString(styles.MutedText.Render("No production orders. Press n to register one."))
		return sb.String()
	}

	// Rows are newest first; keep what fits below the title and table borders.
	limit := max(m.contentHeight()-9, 1)
	cells := make([][]string, 0, min(len(rows), limit))
	for _, r := range rows[:min(len(rows), limit)] {
		cells = append(cells, []string{
			r.ID,
			r.Item,
			r.QtyText,
			r.Date,
			styles.BadgeStyle(r.BadgeClass).Render(string(r.Priority)),
			styles.StatusStyle(r.StatusClass).Render(string(r.Status)),
		})
	}

	sb.WriteString(m.newTable().
		Headers("ID", "Item", "Qty", "Due", "Priority", "Status").
		Rows(cells...).
		Render())
	sb.WriteString("\n")
	sb.WriteString(styles.FaintText.Render(fmt.Sprintf("%d orders  ·  n new order", len(rows))))
	return sb.String()
}

// Process

func (m Model) renderProcess() string {
	styles := m.theme.Styles()

	var sb strings.Builder
	sb.WriteString(m.sectionTitle("Process flow"))
	sb.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Border)).
		Padding(0, 1).
		Align(lipgloss.Center)

	var boxes []string
	for _, st := range m.stations {
		wip := m.snapshot.Text(st.ElementID())
		boxes = append(boxes, box.Render(
			styles.Text.Bold(true).Render(st.Name)+"\n"+
				styles.MutedText.Render("WIP ")+styles.AccentText.Render(wip),
		))
	}
	if len(boxes) == 0 {
		sb.WriteString(styles.MutedText.Render("No stations configured."))
		return sb.String()
	}

	arrow := styles.FaintText.Render(" → ")
	var flow []string
	for i, b := range boxes {
		if i > 0 {
			flow = append(flow, lipgloss.PlaceVertical(lipgloss.Height(b), lipgloss.Center, arrow))
		}
		flow = append(flow, b)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, flow...)
	if lipgloss.Width(row) > m.contentWidth() {
		// Too narrow for a single row; stack the stations.
		row = lipgloss.JoinVertical(lipgloss.Left, boxes...)
	}
	sb.WriteString(row)
	return sb.String()
}
