package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Area returns the number of cells in a grid of this size.
func (s Size) Area() int { return s.W * s.H }

// Sim defines the minimal contract a grid game exposes to the front-ends. Cells
// holds one value per cell in row-major order; front-ends map values to colors
// or glyphs without knowing the game rules.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}
