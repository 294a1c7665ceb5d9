package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/floorboard/internal/theme"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string
	Mode theme.Mode

	// Base colors
	Background string // Outermost background
	Surface    string // Main content panels
	SurfaceAlt string // Sidebar and header

	// Selection
	SelectionBg   string // Active menu entry background
	SelectionText string // Active menu entry text

	// Border colors
	Border      string
	BorderFocus string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string

	// Badge and status selector colors
	BadgeColors map[string]string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Header: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 1),

		Footer: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),

		Logo: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),

		Selected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SelectionBg)).
			Foreground(lipgloss.Color(t.SelectionText)).
			Bold(true),

		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 1),

		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),

		badgeColors: t.BadgeColors,
		background:  t.Background,
		muted:       t.Muted,
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	Background lipgloss.Style
	Surface    lipgloss.Style

	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	Header   lipgloss.Style
	Footer   lipgloss.Style
	Logo     lipgloss.Style
	Selected lipgloss.Style
	Panel    lipgloss.Style
	Banner   lipgloss.Style

	badgeColors map[string]string
	background  string
	muted       string
}

// BadgeStyle returns a filled chip style for a badge selector such as
// "bg-red".
func (s Styles) BadgeStyle(class string) lipgloss.Style {
	color := s.badgeColors[class]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.background)).
		Background(lipgloss.Color(color)).
		Padding(0, 1)
}

// StatusStyle returns a text style for a status selector such as
// "status-running".
func (s Styles) StatusStyle(class string) lipgloss.Style {
	color := s.badgeColors[class]
	if color == "" {
		color = s.muted
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(class == "status-running")
}

// ThemeFor returns the palette for a theme mode.
func ThemeFor(mode theme.Mode) Theme {
	if mode == theme.Dark {
		return nightTheme()
	}
	return dayTheme()
}

func dayTheme() Theme {
	// Tailwind CSS Slate palette on white: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Day",
		Mode: theme.Light,

		Background: "#ffffff",
		Surface:    "#f8fafc", // slate-50
		SurfaceAlt: "#e2e8f0", // slate-200

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#cbd5e1", // slate-300
		BorderFocus: "#0284c7", // sky-600

		Text:    "#0f172a", // slate-900
		Muted:   "#475569", // slate-600
		Faint:   "#94a3b8", // slate-400
		Accent:  "#0369a1", // sky-700
		Success: "#16a34a", // green-600
		Warning: "#b45309", // amber-700
		Danger:  "#dc2626", // red-600
		Info:    "#0891b2", // cyan-600

		BadgeColors: map[string]string{
			"bg-red":         "#dc2626",
			"bg-blue":        "#2563eb",
			"bg-green":       "#16a34a",
			"status-running": "#16a34a",
			"status-waiting": "#64748b",
		},
	}
}

func nightTheme() Theme {
	// Tailwind CSS Slate/Sky palette
	return Theme{
		Name: "Night",
		Mode: theme.Dark,

		Background: "#020617", // slate-950
		Surface:    "#0f172a", // slate-900
		SurfaceAlt: "#1e293b", // slate-800

		SelectionBg:   "#0284c7", // sky-600
		SelectionText: "#f8fafc", // slate-50

		Border:      "#334155", // slate-700
		BorderFocus: "#38bdf8", // sky-400

		Text:    "#f1f5f9", // slate-100
		Muted:   "#94a3b8", // slate-400
		Faint:   "#64748b", // slate-500
		Accent:  "#38bdf8", // sky-400
		Success: "#22c55e", // green-500
		Warning: "#f59e0b", // amber-500
		Danger:  "#ef4444", // red-500
		Info:    "#06b6d4", // cyan-500

		BadgeColors: map[string]string{
			"bg-red":         "#ef4444",
			"bg-blue":        "#3b82f6",
			"bg-green":       "#22c55e",
			"status-running": "#22c55e",
			"status-waiting": "#94a3b8",
		},
	}
}
