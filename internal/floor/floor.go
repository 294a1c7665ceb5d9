// Package floor holds the shop-floor fixtures: production line status and the
// process stations whose work-in-process counters the simulator moves.
package floor

import (
	"strings"

	"github.com/five82/floorboard/internal/state"
)

// LineTableID is the container the line status rows are written to.
const LineTableID = "line-table"

// Line status badge selectors.
const (
	BadgeRunning = "bg-green"
	BadgeStopped = "bg-red"
)

// Line is a read-only production line status row.
type Line struct {
	Name    string
	Running bool
	Updated string // HH:MM:SS of the last report
	Target  int
	Actual  int
}

// StatusLabel returns the display status.
func (l Line) StatusLabel() string {
	if l.Running {
		return "running"
	}
	return "stopped"
}

// BadgeClass returns the badge selector for the line status.
func (l Line) BadgeClass() string {
	if l.Running {
		return BadgeRunning
	}
	return BadgeStopped
}

// Attainment returns actual/target in [0,1]; zero targets yield 0.
func (l Line) Attainment() float64 {
	if l.Target <= 0 {
		return 0
	}
	r := float64(l.Actual) / float64(l.Target)
	return min(max(r, 0), 1)
}

// Lines returns the line status fixture.
func Lines() []Line {
	return []Line{
		{Name: "Line 1", Running: true, Updated: "08:22:10", Target: 800, Actual: 750},
		{Name: "Line 2", Running: true, Updated: "10:15:45", Target: 800, Actual: 620},
		{Name: "Line 3", Running: false, Updated: "00:00:00", Target: 500, Actual: 0},
	}
}

// RenderLines writes lines to the line table container.
func RenderLines(target state.Target, lines []Line) {
	out := make([]Line, len(lines))
	copy(out, lines)
	target.SetContent(LineTableID, out)
}

// Station is a process step with a work-in-process counter.
type Station struct {
	Name string
	WIP  int
}

// ElementID returns the container id holding the station's counter.
func (s Station) ElementID() string {
	return WIPElementID(s.Name)
}

// WIPElementID returns "wip-<slug>" for a station name.
func WIPElementID(name string) string {
	return "wip-" + strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-")
}

// Stations returns the default process stations in flow order.
func Stations() []Station {
	return []Station{
		{Name: "Cutting", WIP: 12},
		{Name: "Welding", WIP: 8},
		{Name: "Painting", WIP: 15},
		{Name: "Assembly", WIP: 6},
		{Name: "Inspection", WIP: 4},
	}
}
