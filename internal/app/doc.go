// Package app provides the orchestration layer for floorboard.
//
// # Overview
//
// This package wires configuration, logging, preferences, the shared board,
// the domain components and the UI into one running dashboard. It is the
// composition root: nothing else constructs components.
//
// # Startup
//
//  1. Load the config file (defaults when missing)
//  2. Open the JSON diagnostic log and the preferences file
//  3. Create a board holding every view container the UI draws
//  4. Seed the plan registry and line table, build the menu navigator from
//     the configured entries, apply the stored theme and prime the telemetry
//     fields
//  5. Activate the first known view
//  6. Start the telemetry scheduler and run the TUI until exit
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()          Read config.toml
//	       ├─────> logging.NewLogger()    Diagnostic JSON log
//	       ├─────> prefs.Open()           Theme preference store
//	       ├─────> build()                Board + components, first view active
//	       ├─────> Simulator.Start()      Clock, WIP and ambient tasks
//	       └─────> ui.Run()               TUI (blocks)
//
//	Scheduler tasks write the board; the UI reads board snapshots on its own
//	refresh tick and after every local mutation.
//
// # Error Handling
//
// Fatal errors returned from Run:
//   - Invalid config file
//   - Log directory or file cannot be created
//   - No menu entry points at an existing view
//
// Everything else is recoverable: unknown menu targets are written to the
// system log, and a failed preference write keeps the in-memory theme.
package app
