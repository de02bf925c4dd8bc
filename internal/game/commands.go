package game

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Action is what a command asks the game to do.
type Action int

const (
	// ActionMove moves the hero by the command's delta.
	ActionMove Action = iota
	// ActionQuit ends the session.
	ActionQuit
)

// Command is one parsed player input. DX is rows, DY is columns.
type Command struct {
	Action Action
	DX, DY int
}

var (
	cmdUp    = Command{Action: ActionMove, DX: -1}
	cmdDown  = Command{Action: ActionMove, DX: 1}
	cmdLeft  = Command{Action: ActionMove, DY: -1}
	cmdRight = Command{Action: ActionMove, DY: 1}
	cmdQuit  = Command{Action: ActionQuit}
)

// ParseCommand parses a typed command: an arrow name ("up", "arrow_up"),
// a w/a/s/d key, a vi key (k/j/h/l), or "q" to quit. Case and surrounding
// space are ignored.
func ParseCommand(input string) (Command, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "up", "arrow_up", "w", "k":
		return cmdUp, true
	case "down", "arrow_down", "s", "j":
		return cmdDown, true
	case "left", "arrow_left", "a", "h":
		return cmdLeft, true
	case "right", "arrow_right", "d", "l":
		return cmdRight, true
	case "q", "quit":
		return cmdQuit, true
	}
	return Command{}, false
}

// KeyCommand maps a terminal key event to a command.
func KeyCommand(ev *tcell.EventKey) (Command, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cmdQuit, true
	case tcell.KeyUp:
		return cmdUp, true
	case tcell.KeyDown:
		return cmdDown, true
	case tcell.KeyLeft:
		return cmdLeft, true
	case tcell.KeyRight:
		return cmdRight, true
	case tcell.KeyRune:
		return ParseCommand(string(ev.Rune()))
	}
	return Command{}, false
}
