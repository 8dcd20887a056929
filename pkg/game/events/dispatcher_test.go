package events

import (
	"testing"

	"basement/pkg/game/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder logs every event it sees and runs an optional hook
type recorder struct {
	name string
	log  *[]string
	hook func(ev Event)
}

func (r *recorder) HandleEvent(ev Event) {
	*r.log = append(*r.log, r.name+":"+ev.Kind.String())
	if r.hook != nil {
		r.hook(ev)
	}
}

func newDispatcher() *Dispatcher {
	d := NewDispatcher()
	d.RegisterAll()
	return d
}

func TestDispatcher_EnqueueIsDeferred(t *testing.T) {
	d := newDispatcher()
	var log []string
	d.Subscribe(&recorder{name: "a", log: &log}, EntityMoved, entities.NoID)

	d.Enqueue(Event{Kind: EntityMoved})
	assert.Empty(t, log)
	assert.Equal(t, 1, d.Pending())

	assert.Equal(t, 1, d.Drain())
	assert.Equal(t, []string{"a:entity_moved"}, log)
	assert.Zero(t, d.Pending())
}

func TestDispatcher_BreadthFirst(t *testing.T) {
	d := newDispatcher()
	var log []string

	first := &recorder{name: "1", log: &log}
	second := &recorder{name: "2", log: &log}
	first.hook = func(ev Event) {
		if ev.Kind == DoorOpen {
			d.Enqueue(Event{Kind: ScoreIncreased})
		}
	}
	for _, k := range []Kind{DoorOpen, DoorClosed, ScoreIncreased} {
		d.Subscribe(first, k, entities.NoID)
		d.Subscribe(second, k, entities.NoID)
	}

	d.Enqueue(Event{Kind: DoorOpen})
	d.Enqueue(Event{Kind: DoorClosed})
	d.Drain()

	assert.Equal(t, []string{
		"1:door_open", "2:door_open",
		"1:door_closed", "2:door_closed",
		"1:score_increased", "2:score_increased",
	}, log)
}

func TestDispatcher_SourceFilter(t *testing.T) {
	d := newDispatcher()
	var log []string
	d.Subscribe(&recorder{name: "any", log: &log}, EntityAttacked, entities.NoID)
	d.Subscribe(&recorder{name: "five", log: &log}, EntityAttacked, 5)

	d.Enqueue(Event{Kind: EntityAttacked, Source: 4})
	d.Enqueue(Event{Kind: EntityAttacked, Source: 5})
	d.Enqueue(Event{Kind: EntityAttacked})
	d.Drain()

	assert.Equal(t, []string{
		"any:entity_attacked",
		"any:entity_attacked", "five:entity_attacked",
		"any:entity_attacked", "five:entity_attacked",
	}, log)
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := newDispatcher()
	var log []string
	a := &recorder{name: "a", log: &log}
	d.Subscribe(a, EntityMoved, 3)
	d.Unsubscribe(a, EntityMoved, 4)
	d.Enqueue(Event{Kind: EntityMoved, Source: 3})
	d.Drain()
	assert.Len(t, log, 1)

	d.Unsubscribe(a, EntityMoved, 3)
	d.Enqueue(Event{Kind: EntityMoved, Source: 3})
	d.Drain()
	assert.Len(t, log, 1)
}

func TestDispatcher_UnsubscribeDuringDelivery(t *testing.T) {
	d := newDispatcher()
	var log []string
	victim := &recorder{name: "victim", log: &log}
	killer := &recorder{name: "killer", log: &log}

	d.Subscribe(killer, PlayerTookAction, entities.NoID)
	d.Subscribe(victim, PlayerTookAction, entities.NoID)
	killer.hook = func(Event) { d.Unsubscribe(victim, PlayerTookAction, entities.NoID) }

	d.Enqueue(Event{Kind: PlayerTookAction})
	d.Drain()
	assert.Equal(t, []string{"killer:player_took_action"}, log)
}

func TestDispatcher_SubscribeDuringDelivery(t *testing.T) {
	d := newDispatcher()
	var log []string
	spawner := &recorder{name: "spawner", log: &log}
	other := &recorder{name: "other", log: &log}
	spawned := &recorder{name: "spawned", log: &log}

	d.Subscribe(spawner, PlayerTookAction, entities.NoID)
	d.Subscribe(other, PlayerTookAction, entities.NoID)
	spawner.hook = func(Event) {
		spawner.hook = nil
		d.Subscribe(spawned, PlayerTookAction, entities.NoID)
	}

	d.Enqueue(Event{Kind: PlayerTookAction})
	d.Drain()
	assert.Equal(t, []string{
		"spawner:player_took_action",
		"other:player_took_action",
		"spawned:player_took_action",
	}, log, "a listener added mid-delivery runs last, on the same event")

	log = nil
	d.Enqueue(Event{Kind: PlayerTookAction})
	d.Drain()
	assert.Equal(t, []string{
		"spawner:player_took_action",
		"other:player_took_action",
		"spawned:player_took_action",
	}, log)
}

func TestDispatcher_ReentrantDrainPanics(t *testing.T) {
	d := newDispatcher()
	var log []string
	d.Subscribe(&recorder{name: "bad", log: &log, hook: func(Event) { d.Drain() }}, EntityDied, entities.NoID)

	d.Enqueue(Event{Kind: EntityDied})
	assert.PanicsWithValue(t, "events: re-entrant Drain", func() { d.Drain() })
	assert.False(t, d.Draining())
}

func TestDispatcher_UnregisteredKindPanics(t *testing.T) {
	d := NewDispatcher()
	var log []string
	assert.Panics(t, func() { d.Enqueue(Event{Kind: DoorOpen}) })
	assert.Panics(t, func() { d.Subscribe(&recorder{log: &log}, DoorOpen, entities.NoID) })
	assert.Panics(t, func() { d.Register(KindNone) })

	d.Register(DoorOpen)
	assert.NotPanics(t, func() { d.Enqueue(Event{Kind: DoorOpen}) })
}

func TestDispatcher_Abandon(t *testing.T) {
	d := newDispatcher()
	var log []string
	stopper := &recorder{name: "stop", log: &log}
	stopper.hook = func(Event) {
		d.Abandon()
		d.Enqueue(Event{Kind: DoorOpen})
	}
	after := &recorder{name: "after", log: &log}
	d.Subscribe(stopper, EntityTookDamage, entities.NoID)
	d.Subscribe(after, EntityTookDamage, entities.NoID)
	d.Subscribe(after, EntityDied, entities.NoID)
	d.Subscribe(after, DoorOpen, entities.NoID)

	d.Enqueue(Event{Kind: EntityTookDamage})
	d.Enqueue(Event{Kind: EntityDied})
	delivered := d.Drain()

	assert.Equal(t, 2, delivered, "events queued before the cut-off are delivered")
	assert.Equal(t, []string{"stop:entity_took_damage", "after:entity_died"}, log)
	assert.Zero(t, d.Pending())
	assert.False(t, d.Abandoned())

	// the dispatcher keeps working afterwards
	d.Enqueue(Event{Kind: DoorOpen})
	d.Drain()
	assert.Equal(t, []string{"stop:entity_took_damage", "after:entity_died", "after:door_open"}, log)
}

func TestDispatcher_AbandonOutsideDrain(t *testing.T) {
	d := newDispatcher()
	var log []string
	d.Subscribe(&recorder{name: "a", log: &log}, EntityMoved, entities.NoID)

	d.Enqueue(Event{Kind: EntityMoved})
	d.Abandon()
	d.Enqueue(Event{Kind: EntityMoved})
	require.Equal(t, 1, d.Pending())
	require.True(t, d.Abandoned())

	assert.Equal(t, 1, d.Drain())
	assert.Equal(t, []string{"a:entity_moved"}, log)
	assert.False(t, d.Abandoned())
}

func TestKindNames(t *testing.T) {
	seen := map[string]bool{}
	for _, k := range AllKinds() {
		name := k.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], name)
		seen[name] = true
	}
	assert.Len(t, AllKinds(), 14)
	assert.Equal(t, "player_took_action", PlayerTookAction.String())
}
