package events

import (
	"fmt"

	"basement/pkg/game/entities"

	"github.com/zyedidia/generic/queue"
)

type subscription struct {
	listener Listener
	filter   entities.ID
	active   bool
	seq      uint64
}

func (s *subscription) matches(ev Event) bool {
	return s.filter == entities.NoID || ev.Source == entities.NoID || s.filter == ev.Source
}

// Dispatcher queues events and delivers them in FIFO order. Events enqueued
// by handlers go to the back of the same queue, so delivery is breadth-first
// across a whole drain.
type Dispatcher struct {
	registered [kindCount]bool
	subs       [kindCount][]*subscription
	queue      *queue.Queue[Event]
	pending    int
	draining   bool
	seq        uint64
	// abandoned drops every later Enqueue until the current drain ends
	abandoned bool
	// skipRest stops delivery of the current event to further listeners
	skipRest bool
}

// NewDispatcher creates a dispatcher with no registered kinds
func NewDispatcher() *Dispatcher {
	return &Dispatcher{queue: queue.New[Event]()}
}

// Register makes kind k available for subscription and enqueueing
func (d *Dispatcher) Register(k Kind) {
	if k <= KindNone || k >= kindCount {
		panic(fmt.Sprintf("events: cannot register kind %d", k))
	}
	d.registered[k] = true
}

// RegisterAll registers every event kind
func (d *Dispatcher) RegisterAll() {
	for _, k := range AllKinds() {
		d.Register(k)
	}
}

func (d *Dispatcher) mustBeRegistered(k Kind) {
	if k <= KindNone || k >= kindCount || !d.registered[k] {
		panic(fmt.Sprintf("events: kind %s is not registered", k))
	}
}

// Subscribe adds l for kind k. A non-null filter limits delivery to events
// whose source is that entity, plus global events. A listener added while an
// event of kind k is being delivered still receives that event, after the
// listeners that were already subscribed.
func (d *Dispatcher) Subscribe(l Listener, k Kind, filter entities.ID) {
	d.mustBeRegistered(k)
	d.seq++
	d.subs[k] = append(d.subs[k], &subscription{listener: l, filter: filter, active: true, seq: d.seq})
}

// Unsubscribe removes the subscription matching (l, k, filter). A listener
// removed during a drain is not invoked again, even for the current event.
func (d *Dispatcher) Unsubscribe(l Listener, k Kind, filter entities.ID) {
	d.mustBeRegistered(k)
	subs := d.subs[k]
	for i, s := range subs {
		if s.listener == l && s.filter == filter {
			s.active = false
			// copy so snapshots held by an in-flight delivery stay intact
			next := make([]*subscription, 0, len(subs)-1)
			next = append(next, subs[:i]...)
			d.subs[k] = append(next, subs[i+1:]...)
			return
		}
	}
}

// Enqueue appends ev to the queue. Handlers are never invoked synchronously.
// After Abandon, events are discarded until the drain ends.
func (d *Dispatcher) Enqueue(ev Event) {
	d.mustBeRegistered(ev.Kind)
	if d.abandoned {
		return
	}
	d.queue.Enqueue(ev)
	d.pending++
}

// Pending returns the number of queued events
func (d *Dispatcher) Pending() int {
	return d.pending
}

// Draining reports whether a drain is in progress
func (d *Dispatcher) Draining() bool {
	return d.draining
}

// Abandon cuts the current drain off at the events queued so far. Those are
// still delivered; anything enqueued afterwards is discarded, and the
// listeners of the event in delivery that have not run yet are skipped.
// Outside a drain the cut-off holds until the next drain ends.
func (d *Dispatcher) Abandon() {
	d.abandoned = true
	d.skipRest = d.draining
}

// Abandoned reports whether the dispatcher is discarding new events
func (d *Dispatcher) Abandoned() bool {
	return d.abandoned
}

// Drain delivers queued events until the queue is empty and returns how
// many were delivered. Calling Drain from a handler panics.
func (d *Dispatcher) Drain() int {
	if d.draining {
		panic("events: re-entrant Drain")
	}
	d.draining = true
	defer func() {
		d.draining = false
		d.abandoned = false
		d.skipRest = false
	}()

	delivered := 0
	for !d.queue.Empty() {
		ev := d.queue.Dequeue()
		d.pending--
		delivered++
		d.deliver(ev)
	}
	return delivered
}

// deliver invokes the listeners of ev in subscription order, including those
// subscribed while it is being delivered
func (d *Dispatcher) deliver(ev Event) {
	d.skipRest = false
	var last uint64
	for {
		batch := d.subscribedAfter(ev.Kind, last)
		if len(batch) == 0 {
			return
		}
		for _, s := range batch {
			if d.skipRest {
				d.skipRest = false
				return
			}
			last = s.seq
			if s.active && s.matches(ev) {
				s.listener.HandleEvent(ev)
			}
		}
	}
}

// subscribedAfter returns the subscriptions for k newer than seq. The
// returned slice is never modified by later Subscribe or Unsubscribe calls.
func (d *Dispatcher) subscribedAfter(k Kind, seq uint64) []*subscription {
	subs := d.subs[k]
	for i, s := range subs {
		if s.seq > seq {
			return subs[i:len(subs):len(subs)]
		}
	}
	return nil
}
