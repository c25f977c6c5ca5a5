package app

import (
	"log"
	"time"

	"visnake/internal/snake"
)

// Command is a player request decoded from a key press by a front-end.
type Command uint8

const (
	CmdNone Command = iota
	CmdUp
	CmdDown
	CmdLeft
	CmdRight
	CmdPause
	CmdRestart
	CmdQuit
)

func (c Command) String() string {
	switch c {
	case CmdNone:
		return "none"
	case CmdUp:
		return "up"
	case CmdDown:
		return "down"
	case CmdLeft:
		return "left"
	case CmdRight:
		return "right"
	case CmdPause:
		return "pause"
	case CmdRestart:
		return "restart"
	case CmdQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// direction maps a move command onto an engine heading.
func (c Command) direction() (snake.Direction, bool) {
	switch c {
	case CmdUp:
		return snake.Up, true
	case CmdDown:
		return snake.Down, true
	case CmdLeft:
		return snake.Left, true
	case CmdRight:
		return snake.Right, true
	default:
		return 0, false
	}
}

// Session drives an engine one tick at a time on behalf of a front-end. It
// owns the presentation-level state the engine knows nothing about: pause and
// the seed used for the next restart.
type Session struct {
	eng      *snake.Engine
	paused   bool
	ticks    int
	nextSeed func() int64
}

// NewSession wraps eng. Restarts draw their seed from seeds; a nil seeds falls
// back to the wall clock.
func NewSession(eng *snake.Engine, seeds func() int64) *Session {
	if seeds == nil {
		seeds = func() int64 { return time.Now().UnixNano() }
	}
	return &Session{eng: eng, nextSeed: seeds}
}

// Engine exposes the driven engine for rendering.
func (s *Session) Engine() *snake.Engine { return s.eng }

// Ticks counts the engine steps taken since the session started.
func (s *Session) Ticks() int { return s.ticks }

// Paused reports whether the game is paused.
func (s *Session) Paused() bool { return s.paused }

// Tick applies cmd and advances the engine by one step unless the game is
// paused or over. It returns false once the player asked to quit.
func (s *Session) Tick(cmd Command) bool {
	switch cmd {
	case CmdQuit:
		return false
	case CmdRestart:
		seed := s.nextSeed()
		s.eng.Reset(seed)
		s.paused = false
		log.Printf("restart seed=%d", seed)
		return true
	case CmdPause:
		if s.eng.Status() == snake.Playing {
			s.paused = !s.paused
		}
		return true
	}
	if s.paused {
		return true
	}
	if d, ok := cmd.direction(); ok {
		s.eng.SetDirection(d)
	}
	prev := s.eng.Status()
	s.ticks++
	if st := s.eng.Advance(); st != prev {
		log.Printf("game over status=%s score=%d length=%d", st, s.eng.Score(), s.eng.Len())
	}
	return true
}
