package term

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"visnake/internal/app"
)

// maxQueued bounds the keys buffered between ticks so a held key cannot
// queue up moves the player no longer wants.
const maxQueued = 4

// Run drives sess on s until the player quits or the event stream closes. Each
// tick consumes at most one queued command, advances the session and redraws.
// The game does not advance while the terminal is too small for the board.
func Run(s tcell.Screen, sess *app.Session, interval time.Duration) error {
	events := make(chan tcell.Event, 32)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	tick := time.NewTicker(interval)
	defer tick.Stop()

	var queue []app.Command
	fits := Draw(s, sess)
	s.Show()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
				fits = Draw(s, sess)
				s.Show()
			case *tcell.EventKey:
				cmd := CommandForKey(e)
				if cmd == app.CmdQuit {
					return nil
				}
				if cmd != app.CmdNone && len(queue) < maxQueued {
					queue = append(queue, cmd)
				}
			}
		case <-tick.C:
			if fits {
				cmd := app.CmdNone
				if len(queue) > 0 {
					cmd = queue[0]
					queue = queue[1:]
				}
				if !sess.Tick(cmd) {
					return nil
				}
			}
			fits = Draw(s, sess)
			s.Show()
		}
	}
}
