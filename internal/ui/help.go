package ui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/floorboard/internal/theme"
)

const helpWidth = 56

var (
	mdRendererMu sync.Mutex
	// Keyed by style + wrap width. WithAutoStyle is avoided because it queries
	// the terminal background.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

// helpMarkdown builds the overlay text from the key map and menu labels.
func (m Model) helpMarkdown() string {
	var b strings.Builder
	b.WriteString("# Keyboard Shortcuts\n\n")

	b.WriteString("## Views\n\n")
	for i, it := range m.nav.Items() {
		if i >= 9 {
			break
		}
		fmt.Fprintf(&b, "- `%d` %s\n", i+1, it.Label)
	}
	b.WriteString("- `tab` / `shift+tab` next / previous view\n\n")

	b.WriteString("## Production Plans\n\n")
	b.WriteString("- `n` register a new production order\n")
	b.WriteString("- `esc` cancel the form\n\n")

	b.WriteString("## System Log\n\n")
	b.WriteString("- `j` / `k` scroll, `g` / `G` top / bottom\n")
	b.WriteString("- `space` toggle follow\n\n")

	b.WriteString("## General\n\n")
	next := "night mode"
	if m.theme.Mode == theme.Dark {
		next = "day mode"
	}
	fmt.Fprintf(&b, "- `T` switch to %s\n", next)
	b.WriteString("- `h` / `?` toggle this help\n")
	b.WriteString("- `e` / `ctrl+c` quit\n")
	return b.String()
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	content := renderMarkdown(m.helpMarkdown(), m.theme.Mode, helpWidth-6)

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(helpWidth)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modal.Render(content),
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

func renderMarkdown(md string, mode theme.Mode, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	width = max(width, 10)

	style := "light"
	if mode == theme.Dark {
		style = "dark"
	}
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	defer mdRendererMu.Unlock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}
