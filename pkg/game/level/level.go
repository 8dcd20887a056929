// Package level runs one basement level: it owns every entity and ground
// item, resolves actions, keeps the visibility caches and drains the event
// queue that drives the monsters.
package level

import (
	"errors"
	"fmt"
	"math/rand"

	"basement/pkg/engine/world"
	"basement/pkg/game/content"
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	gameworld "basement/pkg/game/world"

	"github.com/zyedidia/generic/mapset"
	"go.uber.org/zap"
)

// Options tunes a level
type Options struct {
	// SightRadius limits line of sight between entities (rectilinear)
	SightRadius int
	Rand        *rand.Rand
	Logger      *zap.Logger
}

// record is the arena slot of a living entity
type record struct {
	entity   *entities.Entity
	listener *behaviorListener
}

// Level is the live state of one generated map
type Level struct {
	tm         *gameworld.TileMap
	tables     *content.Tables
	registry   Registry
	dispatcher *events.Dispatcher
	rng        *rand.Rand
	log        *zap.Logger
	sight      int

	nextID  entities.ID
	order   []entities.ID
	byID    map[entities.ID]*record
	byPos   map[world.Point]*entities.Entity
	items   map[world.Point][]*entities.Item
	player  *entities.Entity
	dead    bool
	visible mapset.Set[world.Point]
	seen    mapset.Set[world.Point]
	score   int
}

// New creates a level from a generated map: the player at stairs-up first,
// then the ground items, then the monsters, in generator order.
func New(tm *gameworld.TileMap, tables *content.Tables, registry Registry, opts Options) (*Level, error) {
	if tm == nil || tables == nil || registry == nil {
		return nil, errors.New("level: tile map, tables and registry are required")
	}
	if opts.SightRadius <= 0 {
		opts.SightRadius = world.DefaultSightRadius
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(rand.Int63()))
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	l := &Level{
		tm:         tm,
		tables:     tables,
		registry:   registry,
		dispatcher: events.NewDispatcher(),
		rng:        opts.Rand,
		log:        opts.Logger,
		sight:      opts.SightRadius,
		byID:       make(map[entities.ID]*record),
		byPos:      make(map[world.Point]*entities.Entity),
		items:      make(map[world.Point][]*entities.Item),
		visible:    mapset.New[world.Point](),
		seen:       mapset.New[world.Point](),
	}
	l.dispatcher.RegisterAll()

	if _, err := l.CreateEntity(tables.Player(), tm.POI.StairsUp); err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	for _, spawn := range tm.POI.Items {
		l.DropItem(entities.NewItem(spawn.Type), spawn.Position, nil)
	}
	for _, spawn := range tm.POI.Monsters {
		if _, err := l.CreateEntity(spawn.Type, spawn.Position); err != nil {
			return nil, fmt.Errorf("creating %s: %w", spawn.Type.ID, err)
		}
	}
	l.UpdateVisibility()
	return l, nil
}

// CreateEntity places a new entity of type mt at p and subscribes its
// behavior. Creating a second player or placing onto an occupied cell panics.
func (l *Level) CreateEntity(mt *content.MonsterType, p world.Point) (*entities.Entity, error) {
	if mt.IsPlayer() && l.player != nil {
		panic("level: a player already exists")
	}
	if other, ok := l.byPos[p]; ok {
		panic(fmt.Sprintf("level: %v is already occupied by %s", p, other))
	}

	var items []*content.ItemType
	for _, id := range mt.Items {
		it, ok := l.tables.Item(id)
		if !ok {
			return nil, fmt.Errorf("item %q: %w", id, content.ErrUnknownID)
		}
		items = append(items, it)
	}

	var behavior Behavior
	if len(mt.Behaviors) > 0 {
		b, err := l.registry.Build(mt.Behaviors)
		if err != nil {
			return nil, err
		}
		behavior = b
	}

	l.nextID++
	e := entities.New(l.nextID, mt, p, items)
	rec := &record{entity: e}
	if behavior != nil {
		rec.listener = &behaviorListener{level: l, id: e.ID, behavior: behavior}
		rec.listener.subscribe(l.dispatcher)
	}

	l.byID[e.ID] = rec
	l.order = append(l.order, e.ID)
	l.byPos[p] = e
	if e.IsPlayer() {
		l.player = e
	}
	l.log.Debug("entity created", zap.Stringer("entity", e))
	return e, nil
}

// RemoveEntity detaches e from the level and its behavior from the queue
func (l *Level) RemoveEntity(e *entities.Entity) {
	rec, ok := l.byID[e.ID]
	if !ok {
		return
	}
	if rec.listener != nil {
		rec.listener.unsubscribe(l.dispatcher)
	}
	if p, ok := e.Pos(); ok && l.byPos[p] == e {
		delete(l.byPos, p)
	}
	e.ClearPosition()
	delete(l.byID, e.ID)
	for i, id := range l.order {
		if id == e.ID {
			l.order = append(l.order[:i], l.order[i+1:]...)
			break
		}
	}
	l.log.Debug("entity removed", zap.Stringer("entity", e))
}

// relocate moves e in the spatial index
func (l *Level) relocate(e *entities.Entity, to world.Point) {
	if from, ok := e.Pos(); ok && l.byPos[from] == e {
		delete(l.byPos, from)
	}
	e.SetPosition(to)
	l.byPos[to] = e
}

// DropItem puts item on the ground at p. When by is set an
// entity_dropped_item event is fired for it.
func (l *Level) DropItem(item *entities.Item, p world.Point, by *entities.Entity) {
	item.Place(p)
	l.items[p] = append(l.items[p], item)
	if by != nil {
		l.fire(events.Event{Kind: events.EntityDroppedItem, Source: by.ID, Item: item, Point: p})
	}
}

// fire enqueues an event without delivering it
func (l *Level) fire(ev events.Event) {
	l.dispatcher.Enqueue(ev)
}

// ConsumeEvents drains the event queue. Presentation calls it once per tick
// after input has been applied; it must never be called from a behavior.
func (l *Level) ConsumeEvents() int {
	return l.dispatcher.Drain()
}

// Subscribe lets presentation code listen to level events
func (l *Level) Subscribe(listener events.Listener, kind events.Kind, filter entities.ID) {
	l.dispatcher.Subscribe(listener, kind, filter)
}

// Unsubscribe removes a listener added with Subscribe
func (l *Level) Unsubscribe(listener events.Listener, kind events.Kind, filter entities.ID) {
	l.dispatcher.Unsubscribe(listener, kind, filter)
}

// Rand returns the level's random source
func (l *Level) Rand() *rand.Rand {
	return l.rng
}

// TileMap returns the map the level was built from
func (l *Level) TileMap() *gameworld.TileMap {
	return l.tm
}

// Tables returns the content tables
func (l *Level) Tables() *content.Tables {
	return l.tables
}

// SightRadius returns the line-of-sight limit between entities
func (l *Level) SightRadius() int {
	return l.sight
}
