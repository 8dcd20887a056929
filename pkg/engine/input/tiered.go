package input

import (
	"sort"
	"strings"

	"basement/pkg/engine/world"
)

// Action represents a high‑level intent in the game.
type Action int

const (
	ActionNone Action = iota

	// Movement, the direction travels in the Intent
	ActionMove

	// Turn actions
	ActionWait
	ActionPickup
	ActionThrow     // needs a direction
	ActionCloseDoor // needs a direction

	// Meta / UI
	ActionHelp
	ActionQuit
)

// NeedsDirection reports whether the action carries a direction
func (a Action) NeedsDirection() bool {
	return a == ActionMove || a == ActionThrow || a == ActionCloseDoor
}

// Intent is the high‑level description of what the player wants to do.
type Intent struct {
	Action    Action
	Direction world.Direction
}

// binding is what a raw code maps to
type binding struct {
	action    Action
	direction world.Direction
}

// bindings maps raw codes to actions. Multiple codes may point to the same
// Action.
var bindings = map[string]binding{
	// Movement (arrows, words, Vi keys)
	"arrow_up":    {ActionMove, world.North},
	"north":       {ActionMove, world.North},
	"k":           {ActionMove, world.North},
	"arrow_down":  {ActionMove, world.South},
	"south":       {ActionMove, world.South},
	"j":           {ActionMove, world.South},
	"arrow_left":  {ActionMove, world.West},
	"west":        {ActionMove, world.West},
	"h":           {ActionMove, world.West},
	"arrow_right": {ActionMove, world.East},
	"east":        {ActionMove, world.East},
	"l":           {ActionMove, world.East},
	"y":           {ActionMove, world.NorthWest},
	"u":           {ActionMove, world.NorthEast},
	"b":           {ActionMove, world.SouthWest},
	"n":           {ActionMove, world.SouthEast},

	".":      {action: ActionWait},
	"wait":   {action: ActionWait},
	"g":      {action: ActionPickup},
	",":      {action: ActionPickup},
	"pickup": {action: ActionPickup},
	"t":      {action: ActionThrow},
	"throw":  {action: ActionThrow},
	"c":      {action: ActionCloseDoor},
	"close":  {action: ActionCloseDoor},

	"?":      {action: ActionHelp},
	"help":   {action: ActionHelp},
	"q":      {action: ActionQuit},
	"quit":   {action: ActionQuit},
	"escape": {action: ActionQuit},
}

// MapToIntent applies the bindings to a single code. Codes bound to a
// directed action other than movement yield an Intent that still needs its
// direction; see WithDirection.
func MapToIntent(code string) Intent {
	if b, ok := bindings[strings.ToLower(code)]; ok {
		return Intent{Action: b.action, Direction: b.direction}
	}
	return Intent{Action: ActionNone}
}

// DirectionFor returns the direction a movement code points to
func DirectionFor(code string) (world.Direction, bool) {
	b, ok := bindings[strings.ToLower(code)]
	if !ok || b.action != ActionMove {
		return 0, false
	}
	return b.direction, true
}

// WithDirection completes a throw or close intent with the direction of a
// movement code. It returns ActionNone if the code is not a direction.
func (i Intent) WithDirection(code string) Intent {
	d, ok := DirectionFor(code)
	if !ok {
		return Intent{Action: ActionNone}
	}
	i.Direction = d
	return i
}

// ParseCommand turns a typed line into an intent: "l" moves east, "t h"
// throws west, "close k" closes the door to the north. Arrow escape
// sequences typed in a cooked terminal are understood as well.
func ParseCommand(line string) Intent {
	fields := strings.Fields(decodeArrows(line))
	if len(fields) == 0 {
		return Intent{Action: ActionNone}
	}
	intent := MapToIntent(fields[0])
	if intent.Action == ActionThrow || intent.Action == ActionCloseDoor {
		if len(fields) < 2 {
			return Intent{Action: ActionNone}
		}
		return intent.WithDirection(fields[1])
	}
	return intent
}

// ActionName returns a human-friendly name for an action.
func ActionName(a Action) string {
	switch a {
	case ActionMove:
		return "Move"
	case ActionWait:
		return "Wait"
	case ActionPickup:
		return "Pick up"
	case ActionThrow:
		return "Throw"
	case ActionCloseDoor:
		return "Close door"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "None"
	}
}

// GetBindingsByAction returns the current bindings grouped by action.
func GetBindingsByAction() map[Action][]string {
	result := make(map[Action][]string)
	for code, b := range bindings {
		result[b.action] = append(result[b.action], code)
	}
	// Ensure stable ordering of codes within each action so help doesn't shuffle.
	for act, codes := range result {
		sort.Strings(codes)
		result[act] = codes
	}
	return result
}
