// Package nav switches the dashboard between its views. Exactly one view and
// one menu entry are active once the navigator has started.
package nav

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/five82/floorboard/internal/logsink"
	"github.com/five82/floorboard/internal/state"
)

// ErrViewNotFound is returned when a selected view has no container.
var ErrViewNotFound = errors.New("view not found")

// Element ids and classes the navigator writes.
const (
	TitleID     = "menu-title"
	ActiveClass = "active"
)

// MenuItem is one sidebar entry pointing at a view container.
type MenuItem struct {
	Label  string
	Target string
}

// ElementID returns the id of the menu entry's own element.
func (m MenuItem) ElementID() string {
	return "menu-" + m.Target
}

// Reflower is invoked after its view becomes visible, for content whose layout
// depends on the container size.
type Reflower interface {
	Reflow()
}

// ReflowFunc adapts a function to Reflower.
type ReflowFunc func()

func (f ReflowFunc) Reflow() { f() }

// Navigator is the single-selection state machine over the menu. It is safe
// for concurrent use.
type Navigator struct {
	mu     sync.Mutex
	target state.Target
	sink   logsink.Sink
	items  []MenuItem
	views  []string
	reflow map[string]Reflower
	active string
}

// New builds a navigator for items. The known views are the item targets that
// exist on target at construction. Entries with an empty target, and entries
// repeating an earlier entry's target, are dropped. Entries pointing at
// missing containers stay in the menu and fail with ErrViewNotFound when
// selected.
func New(target state.Target, sink logsink.Sink, items []MenuItem) *Navigator {
	n := &Navigator{
		target: target,
		sink:   sink,
		reflow: make(map[string]Reflower),
	}
	for _, it := range items {
		if it.Target == "" || slices.ContainsFunc(n.items, func(prev MenuItem) bool {
			return prev.Target == it.Target
		}) {
			continue
		}
		n.items = append(n.items, it)
		target.Register(it.ElementID())
		if target.Exists(it.Target) {
			n.views = append(n.views, it.Target)
		}
	}
	return n
}

// OnActivate registers r to run whenever viewID becomes active.
func (n *Navigator) OnActivate(viewID string, r Reflower) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reflow[viewID] = r
}

// Start activates the first known view in menu order.
func (n *Navigator) Start() error {
	n.mu.Lock()
	views := slices.Clone(n.views)
	n.mu.Unlock()

	if len(views) == 0 {
		return fmt.Errorf("start navigation: %w", ErrViewNotFound)
	}
	return n.Select(views[0])
}

// Select makes viewID the only visible view and highlights its menu entry.
// Unknown ids are logged and leave every element untouched.
func (n *Navigator) Select(viewID string) error {
	n.mu.Lock()
	item, ok := n.itemFor(viewID)
	if !ok {
		n.mu.Unlock()
		if n.sink != nil {
			n.sink.Log(logsink.SeverityError, fmt.Sprintf("Section with id %s not found", viewID))
		}
		return fmt.Errorf("select %q: %w", viewID, ErrViewNotFound)
	}

	// Deactivate everything before activating so two views are never visible
	// together.
	for _, it := range n.items {
		n.target.SetClass(it.ElementID(), ActiveClass, false)
	}
	for _, v := range n.views {
		n.target.SetClass(v, ActiveClass, false)
		n.target.SetVisible(v, false)
	}

	n.target.SetClass(item.ElementID(), ActiveClass, true)
	n.target.SetClass(viewID, ActiveClass, true)
	n.target.SetVisible(viewID, true)
	n.target.SetText(TitleID, item.Label)
	n.active = viewID
	hook := n.reflow[viewID]
	n.mu.Unlock()

	if hook != nil {
		hook.Reflow()
	}
	return nil
}

// Next activates the view after the active one in menu order, wrapping.
func (n *Navigator) Next() error { return n.step(1) }

// Prev activates the view before the active one in menu order, wrapping.
func (n *Navigator) Prev() error { return n.step(-1) }

func (n *Navigator) step(delta int) error {
	n.mu.Lock()
	if len(n.views) == 0 {
		n.mu.Unlock()
		return fmt.Errorf("step navigation: %w", ErrViewNotFound)
	}
	idx := slices.Index(n.views, n.active)
	if idx < 0 {
		idx = 0
	} else {
		idx = (idx + delta + len(n.views)) % len(n.views)
	}
	next := n.views[idx]
	n.mu.Unlock()

	return n.Select(next)
}

// Reflow re-runs the active view's hook, e.g. after the terminal is resized.
func (n *Navigator) Reflow() {
	n.mu.Lock()
	hook := n.reflow[n.active]
	n.mu.Unlock()
	if hook != nil {
		hook.Reflow()
	}
}

// Active returns the active view id ("" before Start).
func (n *Navigator) Active() string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.active
}

// Items returns the menu entries in order.
func (n *Navigator) Items() []MenuItem {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.items)
}

// Views returns the known view ids in menu order.
func (n *Navigator) Views() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return slices.Clone(n.views)
}

// itemFor must be called with mu held.
func (n *Navigator) itemFor(viewID string) (MenuItem, bool) {
	if !slices.Contains(n.views, viewID) {
		return MenuItem{}, false
	}
	for _, it := range n.items {
		if it.Target == viewID {
			return it, true
		}
	}
	return MenuItem{}, false
}
