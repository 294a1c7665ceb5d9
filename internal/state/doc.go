// Package state provides the in-memory render target shared by the dashboard
// components and the terminal view.
//
// # Overview
//
// The dashboard is written against a tree of addressable containers keyed by
// stable identifiers ("menu-title", "plan-table-body", "view-plans", ...).
// Components never draw anything themselves. They set text, visibility,
// classes and structured content on elements, and the terminal view reads a
// Snapshot on its own refresh cadence and turns it into lipgloss output.
//
//	Producers:                      Consumer (UI):
//	┌────────────────────┐         ┌──────────────────┐
//	│ nav.Navigator      │         │                  │
//	│ plans.Registry     │         │                  │
//	│ theme.Preference   │────────→│ board.Snapshot() │
//	│ telemetry tasks    │ (mutex) │       ↓          │
//	└────────────────────┘         │ render frame     │
//	                               └──────────────────┘
//
// # Core Types
//
// Target:
//   - The get/set-by-id contract components depend on
//   - Lets tests substitute any stub implementing the same calls
//
// Board:
//   - Thread-safe Target backed by a map of elements
//   - Uses sync.RWMutex; telemetry tasks write from their own goroutines
//   - Writing to an unknown id registers it
//
// Snapshot:
//   - Deep copy of every element (class sets are cloned)
//   - Safe to read without locks while producers keep writing
//
// # Element Semantics
//
// New elements start visible with no classes. Visibility and the "active" class
// are independent flags, which is how the navigator models a container that is
// both hidden and inactive.
//
// Content holds structured fragments such as plan rows. Producers hand over a
// freshly built slice on every write and never mutate it afterwards, so the
// snapshot shares content values instead of copying them.
package state
