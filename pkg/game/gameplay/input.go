// Package gameplay applies player intents to the running level.
package gameplay

import (
	"github.com/leonelquinteros/gotext"

	engineinput "basement/pkg/engine/input"
	"basement/pkg/game/state"
)

// ProcessIntent handles a high-level input intent from the tiered input
// system. Every intent that reaches the level is followed by a drain of its
// event queue, so monsters have acted by the time this returns.
func ProcessIntent(g *state.Game, intent engineinput.Intent) {
	if g.Over() {
		if intent.Action != engineinput.ActionNone {
			g.AddMessage(gotext.Get("GAME_OVER"))
		}
		return
	}

	g.Remember()

	switch intent.Action {
	case engineinput.ActionNone:
		return

	case engineinput.ActionHelp:
		ShowHelp(g)
		return

	case engineinput.ActionQuit:
		g.Quit = true
		g.AddMessage(gotext.Get("GOODBYE"))
		return

	case engineinput.ActionMove:
		Move(g, intent.Direction)

	case engineinput.ActionWait:
		g.Level.Wait()

	case engineinput.ActionPickup:
		Pickup(g)

	case engineinput.ActionThrow:
		Throw(g, intent.Direction)

	case engineinput.ActionCloseDoor:
		CloseDoor(g, intent.Direction)

	default:
		g.AddMessage(gotext.Get("UNKNOWN_COMMAND"))
		return
	}

	g.Sync()
}
