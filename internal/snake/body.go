package snake

// ring is the snake body: a fixed-capacity circular buffer of cells. Slot head
// holds the head; the cell i steps behind it lives at head-i (mod capacity).
type ring struct {
	cells []Cell
	head  int
	n     int
}

func newRing(capacity int) ring {
	return ring{cells: make([]Cell, capacity)}
}

func (r *ring) clear() {
	r.head = len(r.cells) - 1
	r.n = 0
}

// push makes c the new head without dropping the tail.
func (r *ring) push(c Cell) {
	if r.n == len(r.cells) {
		panic("snake: body overflow")
	}
	r.head++
	if r.head == len(r.cells) {
		r.head = 0
	}
	r.cells[r.head] = c
	r.n++
}

// at returns the cell i steps behind the head; at(0) is the head.
func (r *ring) at(i int) Cell {
	idx := r.head - i
	if idx < 0 {
		idx += len(r.cells)
	}
	return r.cells[idx]
}

func (r *ring) tail() Cell { return r.at(r.n - 1) }

// dropTail removes and returns the tail cell.
func (r *ring) dropTail() Cell {
	c := r.tail()
	r.n--
	return c
}
