// Package logsink holds the dashboard's visible system log: timestamped,
// severity-tagged lines that only ever grow while the dashboard runs.
package logsink

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/floorboard/internal/logging"
)

// Severity tags a log entry.
type Severity string

const (
	SeverityInfo  Severity = "INFO"
	SeverityWarn  Severity = "WARN"
	SeverityError Severity = "ERROR"
)

// Entry is one line of the system log.
type Entry struct {
	Time     time.Time
	Severity Severity
	Message  string
}

// String renders the entry the way the log panel shows it.
func (e Entry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Time.Format("15:04:05"), e.Severity, e.Message)
}

// Sink accepts log lines.
type Sink interface {
	Log(sev Severity, message string)
}

// Panel is the in-memory Sink behind the System Log view. Entries are never
// evicted. Panel is safe for concurrent use.
type Panel struct {
	mu      sync.RWMutex
	entries []Entry

	now  func() time.Time
	diag *logging.Logger
}

var _ Sink = (*Panel)(nil)

// Option configures a Panel.
type Option func(*Panel)

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(p *Panel) { p.now = now }
}

// WithDiagnostics mirrors every entry into the diagnostic log.
func WithDiagnostics(l *logging.Logger) Option {
	return func(p *Panel) { p.diag = l }
}

// NewPanel returns an empty Panel.
func NewPanel(opts ...Option) *Panel {
	p := &Panel{now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Log appends an entry stamped with the current time.
func (p *Panel) Log(sev Severity, message string) {
	entry := Entry{Time: p.now(), Severity: sev, Message: message}

	p.mu.Lock()
	p.entries = append(p.entries, entry)
	p.mu.Unlock()

	if p.diag == nil {
		return
	}
	switch sev {
	case SeverityError:
		p.diag.Error(message, "source", "panel")
	case SeverityWarn:
		p.diag.Warn(message, "source", "panel")
	default:
		p.diag.Info(message, "source", "panel")
	}
}

func (p *Panel) Info(message string)  { p.Log(SeverityInfo, message) }
func (p *Panel) Warn(message string)  { p.Log(SeverityWarn, message) }
func (p *Panel) Error(message string) { p.Log(SeverityError, message) }

// Len returns the number of entries.
func (p *Panel) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.entries)
}

// Entries returns a copy of all entries, oldest first.
func (p *Panel) Entries() []Entry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]Entry, len(p.entries))
	copy(out, p.entries)
	return out
}

// Count returns how many entries carry sev.
func (p *Panel) Count(sev Severity) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	n := 0
	for _, e := range p.entries {
		if e.Severity == sev {
			n++
		}
	}
	return n
}
