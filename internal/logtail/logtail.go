package logtail

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line.
func Read(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if maxLines <= 0 {
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, fmt.Errorf("read log: %w", err)
		}
		return lines, nil
	}

	ring := make([]string, maxLines)
	count := 0
	idx := 0
	for scanner.Scan() {
		ring[idx] = scanner.Text()
		idx = (idx + 1) % maxLines
		if count < maxLines {
			count++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log: %w", err)
	}

	lines := make([]string, count)
	if count == maxLines {
		for i := 0; i < count; i++ {
			lines[i] = ring[(idx+i)%maxLines]
		}
	} else {
		copy(lines, ring[:count])
	}
	return lines, nil
}

// Entry is one decoded diagnostic record.
type Entry struct {
	Time      time.Time
	Level     string
	Message   string
	Component string
	Attrs     map[string]any
}

// Decode parses one JSON log line. Lines without a msg field are rejected.
func Decode(line string) (Entry, error) {
	var raw map[string]any
	if err := json.Unmarshal([]byte(line), &raw); err != nil {
		return Entry{}, fmt.Errorf("decode log line: %w", err)
	}
	msg, ok := raw["msg"].(string)
	if !ok {
		return Entry{}, fmt.Errorf("decode log line: missing msg")
	}

	e := Entry{Message: msg}
	if lvl, ok := raw["level"].(string); ok {
		e.Level = strings.ToUpper(lvl)
	}
	if ts, ok := raw["time"].(string); ok {
		if parsed, err := time.Parse(time.RFC3339Nano, ts); err == nil {
			e.Time = parsed
		}
	}
	if comp, ok := raw["component"].(string); ok {
		e.Component = comp
	}
	for _, k := range []string{"time", "level", "msg", "component"} {
		delete(raw, k)
	}
	if len(raw) > 0 {
		e.Attrs = raw
	}
	return e, nil
}

// ReadEntries returns the last maxEntries decodable records of the log at
// path. Malformed lines are skipped.
func ReadEntries(path string, maxEntries int) ([]Entry, error) {
	lines, err := Read(path, 0)
	if err != nil {
		return nil, err
	}
	var entries []Entry
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		e, err := Decode(line)
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}
	if maxEntries > 0 && len(entries) > maxEntries {
		entries = entries[len(entries)-maxEntries:]
	}
	return entries, nil
}

// Format renders e as a single plain line:
//
//	2026-01-20 09:30:00 INFO [theme] persist theme error=...
func Format(e Entry) string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(e.Time.Local().Format("2006-01-02 15:04:05"))
		b.WriteByte(' ')
	}
	b.WriteString(e.Level)
	if e.Component != "" {
		b.WriteString(" [" + e.Component + "]")
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
		fmt.Fprintf(&b, " %s=%v", k, e.Attrs[k])
	}
	return b.String()
}

var (
	timeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
	componentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED"))
	levelStyles    = map[string]lipgloss.Style{
		"INFO":  lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e")).Bold(true),
		"WARN":  lipgloss.NewStyle().Foreground(lipgloss.Color("#eab308")).Bold(true),
		"ERROR": lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444")).Bold(true),
		"DEBUG": lipgloss.NewStyle().Foreground(lipgloss.Color("#06b6d4")).Bold(true),
	}
)

// Colorize renders e like Format with the timestamp dimmed, the level
// color-coded and the component highlighted.
func Colorize(e Entry) string {
	var b strings.Builder
	if !e.Time.IsZero() {
		b.WriteString(timeStyle.Render(e.Time.Local().Format("2006-01-02 15:04:05")))
		b.WriteByte(' ')
	}
	if style, ok := levelStyles[e.Level]; ok {
		b.WriteString(style.Render(e.Level))
	} else {
		b.WriteString(e.Level)
	}
	if e.Component != "" {
		b.WriteString(" " + componentStyle.Render("["+e.Component+"]"))
	}
	b.WriteByte(' ')
	b.WriteString(e.Message)
	for _, k := range slices.Sorted(maps.Keys(e.Attrs)) {
		fmt.Fprintf(&b, " %s=%v", k, e.Attrs[k])
	}
	return b.String()
}
