// Package state holds the play session around one level: the message log,
// the turn counter and the outcome.
package state

import (
	"basement/pkg/game/entities"
	"basement/pkg/game/events"
	"basement/pkg/game/level"

	"github.com/leonelquinteros/gotext"
)

const maxMessages = 5

// Game represents one play session
type Game struct {
	Level *level.Level

	Messages []string

	Turn int

	Lost bool
	Won  bool
	Quit bool

	// names remembers entity types so that messages can name the dead
	names map[entities.ID]string
}

// NewGame wraps l and starts listening to the events the player is told about
func NewGame(l *level.Level) *Game {
	LoadTranslations()
	g := &Game{
		Level:    l,
		Messages: make([]string, 0),
		names:    make(map[entities.ID]string),
	}
	for _, k := range []events.Kind{
		events.PlayerTookAction,
		events.EntityTookDamage,
		events.EntityDied,
		events.EntityBumped,
		events.EntityHealed,
		events.EntityPickedUpItem,
		events.DoorOpen,
		events.DoorClosed,
		events.ScoreIncreased,
		events.LevelExited,
	} {
		l.Subscribe(g, k, entities.NoID)
	}
	g.Remember()
	g.AddMessage(gotext.Get("WELCOME"))
	return g
}

// Over reports whether the session has ended
func (g *Game) Over() bool {
	return g.Lost || g.Won || g.Quit
}

// Sync drains the level's event queue and refreshes the name cache
func (g *Game) Sync() int {
	n := g.Level.ConsumeEvents()
	g.Remember()
	return n
}

// Remember snapshots the names of living entities. Call it before applying
// an action so that anything killed by it can still be named.
func (g *Game) Remember() {
	for _, e := range g.Level.Entities() {
		g.names[e.ID] = DisplayName(e.Type.ID)
	}
}

// name returns the display name of an entity, alive or recently removed
func (g *Game) name(id entities.ID) string {
	if e := g.Level.Entity(id); e != nil {
		return DisplayName(e.Type.ID)
	}
	if n, ok := g.names[id]; ok {
		return n
	}
	return "thing"
}

// HandleEvent turns level events into log messages
func (g *Game) HandleEvent(ev events.Event) {
	player := g.Level.Player().ID
	switch ev.Kind {
	case events.PlayerTookAction:
		g.Turn++
	case events.EntityTookDamage:
		switch {
		case ev.Source == player:
			g.AddMessage(gotext.Get("HITS_YOU", g.name(ev.Other)))
		case ev.Other == player:
			g.AddMessage(gotext.Get("YOU_HIT", g.name(ev.Source)))
		}
	case events.EntityDied:
		if ev.Source == player {
			g.Lost = true
			g.AddMessage(gotext.Get("YOU_DIED", g.Level.Score()))
			return
		}
		g.AddMessage(gotext.Get("KILLED", g.name(ev.Source)))
		delete(g.names, ev.Source)
	case events.EntityBumped:
		if ev.Source == player {
			g.AddMessage(gotext.Get("BUMP"))
		}
	case events.EntityHealed:
		if ev.Source == player {
			g.AddMessage(gotext.Get("HEALED"))
		}
	case events.EntityPickedUpItem:
		if ev.Source == player && ev.Item != nil {
			g.AddMessage(gotext.Get("ITEM_PICKED_UP", DisplayName(ev.Item.Type.ID)))
		}
	case events.DoorOpen:
		if ev.Source == player {
			g.AddMessage(gotext.Get("DOOR_OPENED"))
		}
	case events.DoorClosed:
		if ev.Source == player {
			g.AddMessage(gotext.Get("DOOR_CLOSED"))
		}
	case events.ScoreIncreased:
		g.AddMessage(gotext.Get("GOLD_FOUND"))
	case events.LevelExited:
		g.Won = true
		g.AddMessage(gotext.Get("LEVEL_EXITED", g.Level.Score()))
	}
}

// AddMessage adds a message to the game's message log
func (g *Game) AddMessage(msg string) {
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// LastMessage returns the newest message, or "" when the log is empty
func (g *Game) LastMessage() string {
	if len(g.Messages) == 0 {
		return ""
	}
	return g.Messages[len(g.Messages)-1]
}
