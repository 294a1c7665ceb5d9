// Package ui provides the terminal dashboard for floorboard.
//
// # Architecture Overview
//
// The UI is a Bubble Tea program. Model is a value type; every Update returns
// a new copy. Shared state lives on a state.Board: the navigator, the plan
// registry, the theme preference and the telemetry simulator all write element
// text, visibility, selectors and content there, and the UI draws whatever the
// latest board snapshot says. The UI never decides which view is visible on
// its own; it reads the view container that carries the visible flag.
//
// # Package Structure
//
//   - app.go: Options, Model, Update dispatch, refresh commands and Run
//   - header.go: top bar, banner row and command bar composition
//   - sidebar.go: numbered menu with the active entry highlighted
//   - views.go: dashboard, production plans and process status panels
//   - logs.go: system log viewport with follow mode
//   - plan_form.go: huh form for registering a production order
//   - banner.go: scrolling alert marquee, paused while hovered
//   - help.go: glamour-rendered shortcut overlay
//   - theme.go: day and night palettes and lipgloss styles
//   - keys.go, layout.go: key bindings and size constants
//
// # Event Flow
//
//  1. Run creates the Model and starts tea.Program
//  2. tickMsg schedules a board snapshot read on the refresh interval
//  3. Key input calls into the navigator, registry or theme preference, then
//     re-reads the board so the next frame shows the mutation
//  4. The dashboard reflow hook resizes the chart whenever the dashboard
//     becomes active or the window changes size while it is showing
//
// # Key Bindings
//
//   - 1-9: Open menu entry
//   - Tab / Shift+Tab: Next / previous view
//   - n: Register a production order
//   - T: Toggle day/night mode
//   - j/k, g/G, Space: Scroll, jump and follow in the system log
//   - h or ?: Help
//   - e or Ctrl+C: Exit
package ui
