// Package plans owns the list of production orders shown on the plans view.
package plans

import (
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/state"
)

// TableID is the container the registry renders its rows into.
const TableID = "plan-table-body"

// Badge and status selectors carried by rendered rows.
const (
	BadgeAlert   = "bg-red"
	BadgeInfo    = "bg-blue"
	StatusActive = "status-running"
	StatusMuted  = "status-waiting"
)

// Row is the display projection of one Record.
type Row struct {
	Record
	QtyText     string
	BadgeClass  string
	StatusClass string
}

// Registry is the newest-first sequence of production orders. Orders are
// only ever added; there is no update or delete. Safe for concurrent use.
type Registry struct {
	mu sync.Mutex
	// oldest first; Render walks it backwards so inserts stay appends.
	records []Record

	target state.Target
	sink   logsink.Sink
}

// NewRegistry returns an empty registry writing to target and logging to sink.
func NewRegistry(target state.Target, sink logsink.Sink) *Registry {
	return &Registry{target: target, sink: sink}
}

// Seed loads fixture records given in display order and renders them.
// Nothing is logged.
func (r *Registry) Seed(recs ...Record) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := len(recs) - 1; i >= 0; i-- {
		r.records = append(r.records, recs[i])
	}
	r.renderLocked()
}

// Insert puts rec at the head of the list, re-renders the table and logs the
// new item. rec is trusted; validation belongs to the form layer.
func (r *Registry) Insert(rec Record) {
	r.mu.Lock()
	r.records = append(r.records, rec)
	r.renderLocked()
	r.mu.Unlock()

	if r.sink != nil {
		r.sink.Log(logsink.SeverityInfo, "New production order registered: "+rec.Item)
	}
}

// Render projects the current records into rows, newest first, and writes
// them to the plan table container.
func (r *Registry) Render() []Row {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.renderLocked()
}

// Len returns the number of orders.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

func (r *Registry) renderLocked() []Row {
	rows := make([]Row, 0, len(r.records))
	for i := len(r.records) - 1; i >= 0; i-- {
		rows = append(rows, project(r.records[i]))
	}
	if r.target != nil {
		// The target keeps its own slice so later renders never alias it.
		out := make([]Row, len(rows))
		copy(out, rows)
		r.target.SetContent(TableID, out)
	}
	return rows
}

func project(rec Record) Row {
	row := Row{
		Record:      rec,
		QtyText:     humanize.Comma(int64(rec.Qty)),
		BadgeClass:  BadgeInfo,
		StatusClass: StatusMuted,
	}
	if rec.Priority == PriorityUrgent {
		row.BadgeClass = BadgeAlert
	}
	if rec.Status == StatusRunning {
		row.StatusClass = StatusActive
	}
	return row
}
