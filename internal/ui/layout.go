package ui

import "time"

// Terminal width thresholds for responsive layouts.
const (
	// LayoutCompactWidth is the threshold below which the sidebar collapses
	// to menu numbers.
	LayoutCompactWidth = 80

	// SidebarWidth is the width of the expanded menu column.
	SidebarWidth = 24

	// CompactSidebarWidth is the width of the collapsed menu column.
	CompactSidebarWidth = 5
)

// Fixed rows above and below the content area: header, banner and command bar.
const chromeRows = 3

// Row of the alert banner, counted from the top of the screen.
const bannerRow = 1

// Timing constants.
const (
	// DefaultUIInterval is the default board refresh interval.
	DefaultUIInterval = time.Second

	// MarqueeInterval is how often the banner scrolls one cell.
	MarqueeInterval = 150 * time.Millisecond
)

func (m Model) sidebarWidth() int {
	if m.width < LayoutCompactWidth {
		return CompactSidebarWidth
	}
	return SidebarWidth
}

// contentWidth is the usable width right of the sidebar, inside panel borders
// and padding.
func (m Model) contentWidth() int {
	return max(m.width-m.sidebarWidth()-5, 10)
}

func (m Model) contentHeight() int {
	return max(m.height-chromeRows, 3)
}
