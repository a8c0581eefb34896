// Package truntime holds the runtime map state: the fixed territory
// collection and the single selection. The hit test itself lives on
// typedef.Territory; this package owns the selection invariant.
package truntime

import (
	"fmt"
	"sync"

	"riskmap/typedef"
)

// NoSelection is the selected index when nothing is selected.
const NoSelection = -1

// EventType identifies what changed in the state.
type EventType int

const (
	EventSelectionChanged EventType = iota
	EventTerritoryChanged
	EventStateLoaded
)

// Event is published on every state mutation. Consumers that fall behind
// miss events rather than blocking the mutator.
type Event struct {
	Type  EventType
	Index int    // selected index for selection events, territory index otherwise
	Name  string // territory name, empty for deselection
}

// State is the runtime for one loaded map. It is an explicit object owned
// by whoever runs the host loop; there is no package-level instance. All
// mutation goes through it, so the render pass and the WebSocket/scripting
// goroutines never observe a half-applied selection change.
type State struct {
	mu          sync.RWMutex
	mapName     string
	territories []*typedef.Territory
	selected    int

	events chan Event
}

// New builds a State over an already-validated territory collection. The
// collection is fixed for the State's lifetime; only LoadSnapshot replaces
// it wholesale.
func New(mapName string, territories []*typedef.Territory) *State {
	return &State{
		mapName:     mapName,
		territories: territories,
		selected:    NoSelection,
		events:      make(chan Event, 64),
	}
}

// Events returns the state change feed.
func (st *State) Events() <-chan Event {
	return st.events
}

func (st *State) notify(ev Event) {
	select {
	case st.events <- ev:
	default:
		// Nobody is draining fast enough; drop rather than stall a click.
	}
}

// MapName returns the loaded map's display name.
func (st *State) MapName() string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.mapName
}

// Territories returns a copy of the territory slice for read loops. The
// pointed-to territories are shared; callers must not mutate them.
func (st *State) Territories() []*typedef.Territory {
	st.mu.RLock()
	defer st.mu.RUnlock()
	out := make([]*typedef.Territory, len(st.territories))
	copy(out, st.territories)
	return out
}

// Count returns the number of territories.
func (st *State) Count() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.territories)
}

// HandleClick resolves a primary pointer press to a territory and updates
// the selection. Every territory is scanned; when polygons overlap the
// last one in collection order wins. A click on empty space deselects.
func (st *State) HandleClick(p typedef.Point) {
	st.mu.Lock()
	clicked := NoSelection
	for i, terr := range st.territories {
		if terr.Contains(p) {
			clicked = i
		}
	}
	changed := clicked != st.selected
	st.selected = clicked
	name := ""
	if clicked != NoSelection {
		name = st.territories[clicked].Name
	}
	st.mu.Unlock()

	if changed {
		st.notify(Event{Type: EventSelectionChanged, Index: clicked, Name: name})
	}
}

// Selection returns the selected index and territory, or (NoSelection, nil).
func (st *State) Selection() (int, *typedef.Territory) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if st.selected == NoSelection {
		return NoSelection, nil
	}
	return st.selected, st.territories[st.selected]
}

// IsSelected reports whether index i is the current selection. Renderers
// derive highlight state from this instead of a per-territory flag.
func (st *State) IsSelected(i int) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return i != NoSelection && i == st.selected
}

// Select sets the selection to index i directly (API and scripting path).
func (st *State) Select(i int) error {
	st.mu.Lock()
	if i < 0 || i >= len(st.territories) {
		st.mu.Unlock()
		return fmt.Errorf("selection index %d out of range [0,%d)", i, len(st.territories))
	}
	changed := i != st.selected
	st.selected = i
	name := st.territories[i].Name
	st.mu.Unlock()

	if changed {
		st.notify(Event{Type: EventSelectionChanged, Index: i, Name: name})
	}
	return nil
}

// SelectName selects a territory by name.
func (st *State) SelectName(name string) error {
	st.mu.RLock()
	idx := st.indexOf(name)
	st.mu.RUnlock()
	if idx == NoSelection {
		return fmt.Errorf("%w: %s", typedef.ErrTerritoryNotFound, name)
	}
	return st.Select(idx)
}

// Deselect clears the selection.
func (st *State) Deselect() {
	st.mu.Lock()
	changed := st.selected != NoSelection
	st.selected = NoSelection
	st.mu.Unlock()

	if changed {
		st.notify(Event{Type: EventSelectionChanged, Index: NoSelection})
	}
}

// SetOwner reassigns a territory to a different owner.
func (st *State) SetOwner(name string, owner int) error {
	if owner < 0 {
		return typedef.ErrNegativeOwner
	}
	st.mu.Lock()
	idx := st.indexOf(name)
	if idx == NoSelection {
		st.mu.Unlock()
		return fmt.Errorf("%w: %s", typedef.ErrTerritoryNotFound, name)
	}
	st.territories[idx].Owner = owner
	st.mu.Unlock()

	st.notify(Event{Type: EventTerritoryChanged, Index: idx, Name: name})
	return nil
}

// SetArmies sets a territory's army count. Negative counts are allowed,
// matching the loader contract.
func (st *State) SetArmies(name string, armies int) error {
	st.mu.Lock()
	idx := st.indexOf(name)
	if idx == NoSelection {
		st.mu.Unlock()
		return fmt.Errorf("%w: %s", typedef.ErrTerritoryNotFound, name)
	}
	st.territories[idx].Armies = armies
	st.mu.Unlock()

	st.notify(Event{Type: EventTerritoryChanged, Index: idx, Name: name})
	return nil
}

// indexOf must be called with st.mu held.
func (st *State) indexOf(name string) int {
	for i, terr := range st.territories {
		if terr.Name == name {
			return i
		}
	}
	return NoSelection
}
