package state

import (
	"maps"
	"slices"
	"sync"
)

// Target is the render surface the dashboard components write to. Elements
// are addressed by stable identifiers.
type Target interface {
	Exists(id string) bool
	Register(id string)

	Text(id string) string
	SetText(id, text string)

	Visible(id string) bool
	SetVisible(id string, visible bool)

	HasClass(id, class string) bool
	SetClass(id, class string, on bool)

	Content(id string) any
	SetContent(id string, content any)
}

// Element is a copy of one addressable container.
type Element struct {
	Text    string
	Visible bool
	Classes map[string]bool
	Content any
}

// HasClass reports whether the element carries class.
func (e Element) HasClass(class string) bool {
	return e.Classes[class]
}

// Board is an in-memory Target. The zero value is ready to use and safe for
// concurrent use.
type Board struct {
	mu       sync.RWMutex
	elements map[string]*Element
}

var _ Target = (*Board)(nil)

// NewBoard returns a board with the given ids registered as visible, empty
// containers.
func NewBoard(ids ...string) *Board {
	b := &Board{}
	for _, id := range ids {
		b.Register(id)
	}
	return b
}

// Exists reports whether id has been registered or written.
func (b *Board) Exists(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.elements[id]
	return ok
}

// Register creates an empty visible element for id when absent.
func (b *Board) Register(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.element(id)
}

func (b *Board) Text(id string) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if el, ok := b.elements[id]; ok {
		return el.Text
	}
	return ""
}

func (b *Board) SetText(id, text string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.element(id).Text = text
}

func (b *Board) Visible(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if el, ok := b.elements[id]; ok {
		return el.Visible
	}
	return false
}

func (b *Board) SetVisible(id string, visible bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.element(id).Visible = visible
}

func (b *Board) HasClass(id, class string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if el, ok := b.elements[id]; ok {
		return el.Classes[class]
	}
	return false
}

func (b *Board) SetClass(id, class string, on bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	el := b.element(id)
	if on {
		el.Classes[class] = true
		return
	}
	delete(el.Classes, class)
}

func (b *Board) Content(id string) any {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if el, ok := b.elements[id]; ok {
		return el.Content
	}
	return nil
}

// SetContent replaces the structured fragment held by id. Callers must not
// mutate content after handing it over.
func (b *Board) SetContent(id string, content any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.element(id).Content = content
}

// IDs returns the registered ids in sorted order.
func (b *Board) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return slices.Sorted(maps.Keys(b.elements))
}

// Snapshot returns a copy of every element.
func (b *Board) Snapshot() Snapshot {
	b.mu.RLock()
	defer b.mu.RUnlock()

	snap := make(Snapshot, len(b.elements))
	for id, el := range b.elements {
		dup := *el
		dup.Classes = maps.Clone(el.Classes)
		snap[id] = dup
	}
	return snap
}

// element must be called with the write lock held.
func (b *Board) element(id string) *Element {
	if b.elements == nil {
		b.elements = make(map[string]*Element)
	}
	el, ok := b.elements[id]
	if !ok {
		el = &Element{Visible: true, Classes: make(map[string]bool)}
		b.elements[id] = el
	}
	return el
}

// Snapshot is a point-in-time copy of a Board.
type Snapshot map[string]Element

// Text returns the text of id, or "" when absent.
func (s Snapshot) Text(id string) string {
	return s[id].Text
}

// Visible reports whether id exists and is visible.
func (s Snapshot) Visible(id string) bool {
	el, ok := s[id]
	return ok && el.Visible
}

// HasClass reports whether id carries class.
func (s Snapshot) HasClass(id, class string) bool {
	return s[id].Classes[class]
}

// Content returns the fragment held by id.
func (s Snapshot) Content(id string) any {
	return s[id].Content
}
