// Package config handles loading and parsing floorboard configuration files.
//
// # Overview
//
// floorboard needs no configuration to run. The optional TOML file tunes where
// diagnostics go, how fast the simulated feeds tick and which entries the
// sidebar menu shows.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/floorboard/config.toml (default)
//  3. If the config file doesn't exist, fall back to Default()
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Config file: ~/.config/floorboard/config.toml
//   - Log directory: ~/.local/share/floorboard
//   - Diagnostic log: <log_dir>/floorboard.log
//   - Log level: info
//   - UI refresh: 1000 ms
//   - Clock tick: 1000 ms, production chance 0.3
//   - WIP tick: 4000 ms
//   - Ambient tick: uniform in 2000..3000 ms
//   - Menu: Dashboard, Production Plans, Process Status, System Log
//
// # TOML Format
//
//	log_dir = "~/.local/share/floorboard"
//	log_level = "info"
//	refresh_ms = 1000
//
//	[telemetry]
//	clock_ms = 1000
//	wip_ms = 4000
//	ambient_min_ms = 2000
//	ambient_max_ms = 3000
//	production_chance = 0.3
//	seed = 0
//
//	[[menu]]
//	label = "Dashboard"
//	target = "view-dashboard"
//
// Every field is optional. Non-positive periods use the default. A [[menu]]
// list replaces the default menu entirely; entries without a target are
// skipped and an empty label falls back to the target. A menu target with no
// matching view is kept and reports "not found" when picked.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config: ...")
//   - production_chance outside [0, 1]
//   - ambient_max_ms below ambient_min_ms
//   - a [[menu]] list in which no entry has a target
//
// Missing config files are NOT an error - defaults are used instead.
package config
