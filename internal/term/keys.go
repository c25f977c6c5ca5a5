// Package term is the terminal front-end: it draws the board with tcell and
// turns key events into session commands.
package term

import (
	"github.com/gdamore/tcell/v2"

	"visnake/internal/app"
)

// CommandForKey maps a key event onto a session command. Vi keys and arrows
// steer, Esc or space pauses, r restarts and q or Ctrl-C quits.
func CommandForKey(ev *tcell.EventKey) app.Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return app.CmdUp
	case tcell.KeyDown:
		return app.CmdDown
	case tcell.KeyLeft:
		return app.CmdLeft
	case tcell.KeyRight:
		return app.CmdRight
	case tcell.KeyEscape:
		return app.CmdPause
	case tcell.KeyCtrlC:
		return app.CmdQuit
	case tcell.KeyRune:
	default:
		return app.CmdNone
	}
	switch ev.Rune() {
	case 'k', 'K':
		return app.CmdUp
	case 'j', 'J':
		return app.CmdDown
	case 'h', 'H':
		return app.CmdLeft
	case 'l', 'L':
		return app.CmdRight
	case ' ':
		return app.CmdPause
	case 'r', 'R':
		return app.CmdRestart
	case 'q', 'Q':
		return app.CmdQuit
	}
	return app.CmdNone
}
