package snake

// Direction is the heading of the snake's head.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit step for d. Up decreases y (screen coordinates).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	default:
		return Left
	}
}

// Status is the lifecycle state of a game.
type Status uint8

const (
	Playing Status = iota
	Dead
	Won
)

func (s Status) String() string {
	switch s {
	case Playing:
		return "playing"
	case Dead:
		return "dead"
	case Won:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether only a reset can leave s.
func (s Status) Terminal() bool { return s != Playing }

// Cell is a board coordinate. (0,0) is the top-left corner.
type Cell struct {
	X, Y int
}
