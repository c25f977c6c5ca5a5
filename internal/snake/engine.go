// Package snake implements the game-state engine of the snake game: body
// movement and growth on a toroidal board, self-collision, food placement and
// the win/loss conditions. It performs no I/O; front-ends read its state after
// every tick and feed it directions.
package snake

import "visnake/internal/core"

// Values stored in the board returned by Cells.
const (
	CellEmpty uint8 = iota
	CellBody
	CellHead
	CellFood
)

var (
	_ core.Sim               = (*Engine)(nil)
	_ core.ParameterProvider = (*Engine)(nil)
)

// Engine owns one game: the body, the food cell, the heading and the status.
// It is not safe for concurrent use; a single loop drives it.
type Engine struct {
	cfg Config

	board *core.ByteGrid
	body  ring

	food   Cell
	dir    Direction
	status Status

	seed int64
	rng  *core.RNG
}

// New validates cfg, allocates the board and starts a game from seed.
func New(cfg Config, seed int64) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:   cfg,
		board: core.NewByteGrid(cfg.Width, cfg.Height),
		body:  newRing(cfg.Width * cfg.Height),
		rng:   core.NewRNG(seed),
	}
	e.Reset(seed)
	return e, nil
}

// Name returns the simulation identifier.
func (e *Engine) Name() string { return "snake" }

// Size returns the board dimensions.
func (e *Engine) Size() core.Size { return core.Size{W: e.cfg.Width, H: e.cfg.Height} }

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Cells exposes the board in row-major order using the Cell* values. Callers
// must treat it as read-only.
func (e *Engine) Cells() []uint8 { return e.board.Cells() }

// Seed returns the seed of the current game.
func (e *Engine) Seed() int64 { return e.seed }

// Status returns the current game status.
func (e *Engine) Status() Status { return e.status }

// Direction returns the current heading.
func (e *Engine) Direction() Direction { return e.dir }

// Len returns the number of body cells.
func (e *Engine) Len() int { return e.body.n }

// Score is the number of food cells eaten in the current game.
func (e *Engine) Score() int { return e.body.n - e.cfg.StartLength }

// Head returns the head cell.
func (e *Engine) Head() Cell { return e.body.at(0) }

// Tail returns the last body cell.
func (e *Engine) Tail() Cell { return e.body.tail() }

// Food returns the food cell. Once the game is won the board is full and the
// returned cell is the last one eaten.
func (e *Engine) Food() Cell { return e.food }

// HasFood reports whether a food cell is on the board.
func (e *Engine) HasFood() bool { return e.status != Won }

// BodyAt returns the cell i steps behind the head, 0 <= i < Len().
func (e *Engine) BodyAt(i int) Cell { return e.body.at(i) }

// Body returns a copy of the body cells ordered head to tail.
func (e *Engine) Body() []Cell {
	return e.AppendBody(make([]Cell, 0, e.body.n))
}

// AppendBody appends the body cells, head first, to dst.
func (e *Engine) AppendBody(dst []Cell) []Cell {
	for i := 0; i < e.body.n; i++ {
		dst = append(dst, e.body.at(i))
	}
	return dst
}

// Occupied reports whether c is part of the body.
func (e *Engine) Occupied(c Cell) bool {
	v := e.board.At(c.X, c.Y)
	return v == CellBody || v == CellHead
}

// Reset discards the current game and starts a new one from seed: a straight
// snake of StartLength cells heading away from its tail, and a food cell off
// the body.
func (e *Engine) Reset(seed int64) {
	e.seed = seed
	e.rng.Seed(seed)
	e.board.Clear()
	e.body.clear()
	e.status = Playing

	w, h, l := e.cfg.Width, e.cfg.Height, e.cfg.StartLength
	hx := l + e.rng.IntN(w-2*l)
	hy := l + e.rng.IntN(h-2*l)

	// (sx, sy) steps from the head toward the tail.
	var sx, sy int
	if e.rng.Bool() {
		sx = towardLargerHalf(hx, w)
	} else {
		sy = towardLargerHalf(hy, h)
	}
	e.dir = headingOf(-sx, -sy)

	for i := l - 1; i >= 0; i-- {
		x, y := e.board.Wrap(hx+sx*i, hy+sy*i)
		e.body.push(Cell{X: x, Y: y})
		e.board.Set(x, y, CellBody)
	}
	e.board.Set(hx, hy, CellHead)
	e.placeFood()
}

// SetDirection changes the heading. Reversing onto the neck and any change
// after the game has ended are ignored.
func (e *Engine) SetDirection(d Direction) {
	if e.status != Playing || d > Right || d == e.dir.Opposite() {
		return
	}
	e.dir = d
}

// Step advances one tick, satisfying core.Sim.
func (e *Engine) Step() { e.Advance() }

// Advance moves the snake one cell and returns the resulting status. Once the
// game is dead or won it returns the status without touching any state.
func (e *Engine) Advance() Status {
	if e.status != Playing {
		return e.status
	}
	head := e.body.at(0)
	dx, dy := e.dir.Delta()
	nx, ny := e.board.Wrap(head.X+dx, head.Y+dy)
	next := Cell{X: nx, Y: ny}
	ate := next == e.food

	// The tail slides away this tick unless the snake grows.
	if e.Occupied(next) && (ate || next != e.body.tail()) {
		e.status = Dead
		return e.status
	}

	e.board.Set(head.X, head.Y, CellBody)
	if !ate {
		t := e.body.dropTail()
		e.board.Set(t.X, t.Y, CellEmpty)
	}
	e.body.push(next)
	e.board.Set(next.X, next.Y, CellHead)

	if ate {
		if e.body.n == e.board.Len() {
			e.status = Won
			return e.status
		}
		e.placeFood()
	}
	return e.status
}

// placeFood draws cells uniformly until it hits a free one. The board must
// have at least one free cell.
func (e *Engine) placeFood() {
	for {
		x := e.rng.IntN(e.cfg.Width)
		y := e.rng.IntN(e.cfg.Height)
		if e.board.At(x, y) == CellEmpty {
			e.food = Cell{X: x, Y: y}
			e.board.Set(x, y, CellFood)
			return
		}
	}
}

// towardLargerHalf returns the unit step from p toward the larger side of an
// axis of the given size.
func towardLargerHalf(p, size int) int {
	if p < size-p {
		return 1
	}
	return -1
}

func headingOf(dx, dy int) Direction {
	switch {
	case dx > 0:
		return Right
	case dx < 0:
		return Left
	case dy > 0:
		return Down
	default:
		return Up
	}
}
