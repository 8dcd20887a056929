// Package entities contains the mutable simulation objects of a level:
// monsters, the player, projectiles, and the items they carry.
package entities

import (
	"fmt"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"
)

// ID is a stable handle to an entity owned by a level. Handles are never
// reused within one level.
type ID uint32

// NoID is the null handle, used for events without a source
const NoID ID = 0

// Mode is the visible AI state of an entity
type Mode int

// Modes
const (
	ModeDefault Mode = iota
	ModeChasing
	ModeFleeing
	ModeSleeping
	ModeStunned
)

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case ModeChasing:
		return "chasing"
	case ModeFleeing:
		return "fleeing"
	case ModeSleeping:
		return "sleeping"
	case ModeStunned:
		return "stunned"
	default:
		return "default"
	}
}

// Stats are fixed at creation
type Stats struct {
	HPMax    int
	Strength int
}

// State changes during play
type State struct {
	HP int
}

// Step is one entry of a projectile path. Wait steps spend a turn in place.
type Step struct {
	Point world.Point
	Wait  bool
}

// Scratch is per-entity behavior memory
type Scratch struct {
	counters map[string]int

	// Path and Speed drive projectiles
	Path  []Step
	Speed int
}

// Counter returns a named counter and whether it was ever set
func (s *Scratch) Counter(key string) (int, bool) {
	v, ok := s.counters[key]
	return v, ok
}

// SetCounter stores a named counter
func (s *Scratch) SetCounter(key string, v int) {
	if s.counters == nil {
		s.counters = make(map[string]int)
	}
	s.counters[key] = v
}

// Entity is a monster, the player, or a projectile
type Entity struct {
	ID        ID
	Type      *content.MonsterType
	Position  *world.Point // nil once removed
	Stats     Stats
	State     State
	Mode      Mode
	Inventory []*Item
	Scratch   Scratch
}

// New creates an entity of type mt at p with its starting inventory
func New(id ID, mt *content.MonsterType, p world.Point, items []*content.ItemType) *Entity {
	e := &Entity{
		ID:    id,
		Type:  mt,
		Stats: Stats{HPMax: mt.HPMax, Strength: mt.Strength},
		State: State{HP: mt.HPMax},
	}
	e.SetPosition(p)
	for _, it := range items {
		e.Inventory = append(e.Inventory, NewItem(it))
	}
	return e
}

// IsPlayer returns true for the player entity
func (e *Entity) IsPlayer() bool {
	return e.Type.IsPlayer()
}

// Alive returns true while the entity has a position
func (e *Entity) Alive() bool {
	return e.Position != nil
}

// Pos returns the entity position and whether it has one
func (e *Entity) Pos() (world.Point, bool) {
	if e.Position == nil {
		return world.Point{}, false
	}
	return *e.Position, true
}

// SetPosition moves the entity to p
func (e *Entity) SetPosition(p world.Point) {
	e.Position = &p
}

// ClearPosition detaches the entity from the map
func (e *Entity) ClearPosition() {
	e.Position = nil
}

// FindItem returns the first carried item of type id
func (e *Entity) FindItem(id string) *Item {
	for _, it := range e.Inventory {
		if it.Type.ID == id {
			return it
		}
	}
	return nil
}

// RemoveItem takes item out of the inventory. Returns false if not carried.
func (e *Entity) RemoveItem(item *Item) bool {
	for i, it := range e.Inventory {
		if it == item {
			e.Inventory = append(e.Inventory[:i], e.Inventory[i+1:]...)
			return true
		}
	}
	return false
}

func (e *Entity) String() string {
	if p, ok := e.Pos(); ok {
		return fmt.Sprintf("%s#%d@%v", e.Type.ID, e.ID, p)
	}
	return fmt.Sprintf("%s#%d", e.Type.ID, e.ID)
}
