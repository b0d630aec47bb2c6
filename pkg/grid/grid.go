// Package grid implements the fixed-size board of a two-dimensional
// cellular automaton: a dense row-major array of binary cell states with
// bounds-checked accessors, bulk fills, and a text pattern format.
package grid

import "github.com/pkg/errors"

// Cell states stored in a Grid.
const (
	Dead  uint8 = 0
	Alive uint8 = 1
)

var (
	// ErrBadDimensions reports a grid constructed with a non-positive extent.
	ErrBadDimensions = errors.New("grid dimensions must be positive")
	// ErrOutOfBounds reports a coordinate outside the grid's extent.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)

// Grid stores an H by W board of binary cell values in row-major order.
// Dimensions are fixed at construction.
type Grid struct {
	h, w int
	data []uint8
}

// New allocates an all-dead grid with the given dimensions.
func New(height, width int) (*Grid, error) {
	if height <= 0 || width <= 0 {
		return nil, errors.Wrapf(ErrBadDimensions, "%dx%d", height, width)
	}
	return &Grid{h: height, w: width, data: make([]uint8, height*width)}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Cells exposes the backing slice so callers can read values directly.
// The layout is row-major: index row*Width()+col.
func (g *Grid) Cells() []uint8 { return g.data }

func (g *Grid) index(row, col int) int { return row*g.w + col }

func (g *Grid) check(row, col int) error {
	if row < 0 || row >= g.h || col < 0 || col >= g.w {
		return errors.Wrapf(ErrOutOfBounds, "cell (%d,%d) outside %dx%d", row, col, g.h, g.w)
	}
	return nil
}

// Get returns the state of the cell at (row, col).
func (g *Grid) Get(row, col int) (uint8, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	return g.data[g.index(row, col)], nil
}

// Set writes the cell at (row, col). Any non-zero state is stored as Alive.
func (g *Grid) Set(row, col int, state uint8) error {
	if err := g.check(row, col); err != nil {
		return err
	}
	if state != Dead {
		state = Alive
	}
	g.data[g.index(row, col)] = state
	return nil
}

// Toggle flips the cell at (row, col) and returns its new state.
func (g *Grid) Toggle(row, col int) (uint8, error) {
	if err := g.check(row, col); err != nil {
		return Dead, err
	}
	i := g.index(row, col)
	if g.data[i] == Dead {
		g.data[i] = Alive
	} else {
		g.data[i] = Dead
	}
	return g.data[i], nil
}

// Clear kills every cell.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = Dead
	}
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	count := 0
	for _, c := range g.data {
		if c != Dead {
			count++
		}
	}
	return count
}
