package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// DefaultNotices are the plant notices scrolled across the alert banner.
var DefaultNotices = []string{
	"Safety inspection on Line 3 at 14:00",
	"Forklift traffic restricted in the east aisle",
	"Shift handover meeting in the break room at 17:30",
}

const noticeGap = "   •   "

// marquee scrolls a line of text one cell per step. Hovering the pointer over
// it pauses scrolling.
type marquee struct {
	text   string
	offset int
	paused bool
}

// newMarquee returns an empty banner when there are no notices.
func newMarquee(notices []string) marquee {
	if len(notices) == 0 {
		return marquee{}
	}
	return marquee{text: strings.Join(notices, noticeGap) + noticeGap}
}

// step advances the banner unless it is paused or empty.
func (q *marquee) step() {
	if q.paused || q.text == "" {
		return
	}
	q.offset = (q.offset + 1) % len([]rune(q.text))
}

// hover pauses while the pointer is on the banner row and resumes when it
// leaves.
func (q *marquee) hover(over bool) {
	q.paused = over
}

// view returns width cells of the rotated text.
func (q marquee) view(width int) string {
	if width <= 0 || q.text == "" {
		return ""
	}
	runes := []rune(q.text)
	rotated := string(runes[q.offset:]) + string(runes[:q.offset])
	// Repeat so short notices still fill wide terminals.
	for ansi.StringWidth(rotated) < width {
		rotated += q.text
	}
	return ansi.Cut(rotated, 0, width)
}

type marqueeTickMsg time.Time

func marqueeTickCmd() tea.Cmd {
	return tea.Tick(MarqueeInterval, func(t time.Time) tea.Msg {
		return marqueeTickMsg(t)
	})
}

// handleMouse pauses the banner while the pointer hovers its row.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	m.banner.hover(msg.Y == bannerRow)
	return m, nil
}
