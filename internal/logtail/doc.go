// Package logtail reads the tail of floorboard's diagnostic log.
//
// # Overview
//
// The diagnostic log is JSON lines written by log/slog. This package pulls the
// last N lines of the file without loading all of it, decodes them into
// Entry values and renders them for `floorboard logs`.
//
// # Reading Log Files
//
// Read uses a ring buffer of size maxLines:
//
//	1. Allocate ring buffer of size maxLines
//	2. For each line in file:
//	   - Store line at current index
//	   - Increment index (wrapping at maxLines)
//	   - Track total lines seen
//	3. If total < maxLines:
//	   - Return first 'count' entries from buffer
//	4. If total >= maxLines:
//	   - Return buffer starting from current index (oldest line)
//
// A non-positive maxLines returns the whole file.
//
// # Decoding
//
// Decode expects the slog JSON shape:
//
//	{"time":"...","level":"INFO","msg":"...","component":"theme","error":"..."}
//
// time, level, msg and component are lifted into fields; everything else lands
// in Attrs. ReadEntries skips lines that do not decode, so a truncated final
// line or stray output never hides the rest of the log.
//
// # Rendering
//
// Format produces a plain line. Colorize produces the same text with lipgloss
// styling and is used when stdout is a terminal:
//
//   - Timestamps: Dim gray (#666666)
//   - Levels: INFO green, WARN yellow, ERROR red, DEBUG cyan, bold
//   - Components: Cornflower blue (#6495ED)
//
// # Error Handling
//
// Read returns nil, nil for non-existent files. Other errors (permission
// denied, I/O errors) are returned wrapped.
package logtail
