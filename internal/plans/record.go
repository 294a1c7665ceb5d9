package plans

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Priority of a production order.
type Priority string

const (
	PriorityUrgent Priority = "urgent"
	PriorityNormal Priority = "normal"
)

// Status of a production order.
type Status string

const (
	StatusRunning Status = "running"
	StatusWaiting Status = "waiting"
)

// DateLayout is the calendar date format used by plan records.
const DateLayout = "2006-01-02"

// Record is one production order. Records are values; the registry never
// exposes a way to change one after creation.
type Record struct {
	ID       string
	Item     string
	Qty      int
	Date     string
	Priority Priority
	Status   Status
}

var (
	// ErrMalformedQty reports a quantity that is not a non-negative integer.
	ErrMalformedQty  = errors.New("quantity must be a non-negative integer")
	ErrEmptyItem     = errors.New("item name is required")
	ErrMalformedDate = errors.New("date must be YYYY-MM-DD")
	ErrBadPriority   = errors.New("priority must be urgent or normal")
)

// NewID derives a plan id from the last six digits of the millisecond clock.
// Two orders created in the same millisecond share an id.
func NewID(now time.Time) string {
	return fmt.Sprintf("PLN-%06d", now.UnixMilli()%1_000_000)
}

// ParseQty parses a form quantity.
func ParseQty(s string) (int, error) {
	qty, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || qty < 0 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedQty, s)
	}
	return qty, nil
}

// ParsePriority maps form input to a Priority. Empty input means normal.
func ParsePriority(s string) (Priority, error) {
	switch Priority(strings.ToLower(strings.TrimSpace(s))) {
	case PriorityUrgent:
		return PriorityUrgent, nil
	case PriorityNormal, "":
		return PriorityNormal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadPriority, s)
	}
}

// Form holds the raw values of the new-plan form.
type Form struct {
	Item     string
	Qty      string
	Date     string
	Priority string
}

// Build validates the form and creates a waiting Record stamped from now.
func (f Form) Build(now time.Time) (Record, error) {
	item := strings.TrimSpace(f.Item)
	if item == "" {
		return Record{}, ErrEmptyItem
	}
	qty, err := ParseQty(f.Qty)
	if err != nil {
		return Record{}, err
	}
	date := strings.TrimSpace(f.Date)
	if _, err := time.Parse(DateLayout, date); err != nil {
		return Record{}, fmt.Errorf("%w: %q", ErrMalformedDate, f.Date)
	}
	priority, err := ParsePriority(f.Priority)
	if err != nil {
		return Record{}, err
	}
	return Record{
		ID:       NewID(now),
		Item:     item,
		Qty:      qty,
		Date:     date,
		Priority: priority,
		Status:   StatusWaiting,
	}, nil
}

// Fixtures returns the orders the dashboard starts with, in display order.
func Fixtures() []Record {
	return []Record{
		{ID: "PLN-A", Item: "Bracket Assembly", Qty: 10000, Date: "2026-01-20", Priority: PriorityUrgent, Status: StatusRunning},
		{ID: "PLN-B", Item: "Gear Housing", Qty: 5000, Date: "2026-01-22", Priority: PriorityNormal, Status: StatusWaiting},
	}
}
