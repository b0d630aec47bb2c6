// Package life implements the generation-transition engine: Moore
// neighborhood counting with hard (non-wrapping) board edges and a pure
// single-pass advance from a source grid into a destination grid.
package life

import (
	"github.com/pkg/errors"

	"golife/pkg/grid"
	"golife/pkg/rule"
)

// ErrDimensionMismatch reports source and destination grids of different
// sizes passed to Advance.
var ErrDimensionMismatch = errors.New("source and destination dimensions differ")

// NeighborCount returns the number of live cells in the 3x3 neighborhood
// of (row, col), excluding the cell itself. The scan is clipped at the
// board edges rather than wrapped: positions beyond an edge do not exist
// and are never counted, so corner cells see at most 3 candidates and
// edge cells at most 5.
func NeighborCount(g *grid.Grid, row, col int) int {
	minRow := max(0, row-1)
	maxRow := min(g.Height()-1, row+1)
	minCol := max(0, col-1)
	maxCol := min(g.Width()-1, col+1)

	cells := g.Cells()
	w := g.Width()
	count := 0
	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == row && c == col {
				continue
			}
			if cells[r*w+c] != grid.Dead {
				count++
			}
		}
	}
	return count
}

// Advance computes the next generation of src into dst under the given
// rule. It reads only from src and writes every cell of dst; src is never
// mutated, and on a dimension mismatch neither grid is touched. For a
// fixed source and rule the result is identical on every call.
func Advance(src *grid.Grid, r *rule.Rule, dst *grid.Grid) error {
	if src.Height() != dst.Height() || src.Width() != dst.Width() {
		return errors.Wrapf(ErrDimensionMismatch, "%dx%d vs %dx%d",
			src.Height(), src.Width(), dst.Height(), dst.Width())
	}
	in, out := src.Cells(), dst.Cells()
	h, w := src.Height(), src.Width()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			next, err := r.Next(in[row*w+col], NeighborCount(src, row, col))
			if err != nil {
				return err
			}
			out[row*w+col] = next
		}
	}
	return nil
}
