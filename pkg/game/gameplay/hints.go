package gameplay

import (
	"strings"

	"github.com/leonelquinteros/gotext"

	engineinput "basement/pkg/engine/input"
	"basement/pkg/game/state"
)

// helpOrder lists the actions shown by ShowHelp
var helpOrder = []engineinput.Action{
	engineinput.ActionMove,
	engineinput.ActionWait,
	engineinput.ActionPickup,
	engineinput.ActionThrow,
	engineinput.ActionCloseDoor,
	engineinput.ActionQuit,
}

// HelpLines describes the key bindings, one line per action
func HelpLines() []string {
	byAction := engineinput.GetBindingsByAction()
	lines := make([]string, 0, len(helpOrder))
	for _, act := range helpOrder {
		codes := byAction[act]
		if len(codes) == 0 {
			continue
		}
		name := engineinput.ActionName(act)
		if act == engineinput.ActionThrow || act == engineinput.ActionCloseDoor {
			name += " <dir>"
		}
		lines = append(lines, gotext.Get("HELP_LINE", name, strings.Join(codes, " ")))
	}
	return lines
}

// ShowHelp writes the bindings into the message log, two per line
func ShowHelp(g *state.Game) {
	lines := HelpLines()
	for i := 0; i < len(lines); i += 2 {
		msg := lines[i]
		if i+1 < len(lines) {
			msg += "   " + lines[i+1]
		}
		g.AddMessage(msg)
	}
}
