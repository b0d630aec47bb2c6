package life

import (
	"errors"
	"slices"
	"testing"

	"golife/pkg/grid"
	"golife/pkg/rule"
)

func mustGrid(t *testing.T, h, w int) *grid.Grid {
	t.Helper()
	g, err := grid.New(h, w)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func mustLoad(t *testing.T, g *grid.Grid, text string) {
	t.Helper()
	if err := g.LoadText(text); err != nil {
		t.Fatal(err)
	}
}

func TestNeighborCountCandidates(t *testing.T) {
	g := mustGrid(t, 4, 5)
	g.RandomFill(grid.NewRNG(1), 1) // every cell alive

	cases := []struct {
		name     string
		row, col int
		want     int
	}{
		{"top-left corner", 0, 0, 3},
		{"top-right corner", 0, 4, 3},
		{"bottom-left corner", 3, 0, 3},
		{"bottom-right corner", 3, 4, 3},
		{"top edge", 0, 2, 5},
		{"left edge", 2, 0, 5},
		{"right edge", 1, 4, 5},
		{"bottom edge", 3, 2, 5},
		{"interior", 1, 2, 8},
		{"interior", 2, 3, 8},
	}
	for _, tc := range cases {
		if got := NeighborCount(g, tc.row, tc.col); got != tc.want {
			t.Errorf("%s (%d,%d): count = %d, want %d", tc.name, tc.row, tc.col, got, tc.want)
		}
	}
}

func TestNeighborCountEdgeIsNotWrapped(t *testing.T) {
	g := mustGrid(t, 3, 3)
	// A live cell on the far edge must not count as a neighbor of the
	// opposite edge.
	mustLoad(t, g, "001\n000\n000")
	if got := NeighborCount(g, 0, 0); got != 0 {
		t.Fatalf("count at (0,0) = %d, want 0 (no wrapping)", got)
	}
	if got := NeighborCount(g, 0, 1); got != 1 {
		t.Fatalf("count at (0,1) = %d, want 1", got)
	}
}

func expectCells(t *testing.T, g *grid.Grid, alive map[[2]int]bool) {
	t.Helper()
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			state, err := g.Get(row, col)
			if err != nil {
				t.Fatal(err)
			}
			_, shouldBeAlive := alive[[2]int{row, col}]
			if (state == grid.Alive) != shouldBeAlive {
				t.Fatalf("cell (%d,%d) alive=%v, expected %v", row, col, state == grid.Alive, shouldBeAlive)
			}
		}
	}
}

func TestGliderStep(t *testing.T) {
	src := mustGrid(t, 8, 8)
	dst := mustGrid(t, 8, 8)
	mustLoad(t, src, "010\n001\n111")

	if err := Advance(src, rule.Conway(), dst); err != nil {
		t.Fatal(err)
	}

	expectCells(t, dst, map[[2]int]bool{
		{1, 0}: true,
		{1, 2}: true,
		{2, 1}: true,
		{2, 2}: true,
		{3, 1}: true,
	})
}

func TestGliderPeriodFourTranslation(t *testing.T) {
	front := mustGrid(t, 8, 8)
	back := mustGrid(t, 8, 8)
	mustLoad(t, front, "010\n001\n111")
	conway := rule.Conway()

	for i := 0; i < 4; i++ {
		if err := Advance(front, conway, back); err != nil {
			t.Fatal(err)
		}
		front, back = back, front
	}

	// The original five cells, each shifted one row down and one column
	// right.
	expectCells(t, front, map[[2]int]bool{
		{1, 2}: true,
		{2, 3}: true,
		{3, 1}: true,
		{3, 2}: true,
		{3, 3}: true,
	})
}

func TestBlockIsStillLife(t *testing.T) {
	src := mustGrid(t, 4, 4)
	dst := mustGrid(t, 4, 4)
	mustLoad(t, src, "0000\n0110\n0110")

	if err := Advance(src, rule.Conway(), dst); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(src.Cells(), dst.Cells()) {
		t.Fatal("a 2x2 block must be a fixed point under Conway's rules")
	}
}

func TestAdvanceDoesNotMutateSource(t *testing.T) {
	src := mustGrid(t, 6, 6)
	dst := mustGrid(t, 6, 6)
	src.RandomFill(grid.NewRNG(11), 0.4)
	before := slices.Clone(src.Cells())

	if err := Advance(src, rule.Conway(), dst); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(before, src.Cells()) {
		t.Fatal("Advance mutated the source grid")
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	src := mustGrid(t, 6, 6)
	a := mustGrid(t, 6, 6)
	b := mustGrid(t, 6, 6)
	src.RandomFill(grid.NewRNG(12), 0.3)
	daynight := rule.DayNight()

	if err := Advance(src, daynight, a); err != nil {
		t.Fatal(err)
	}
	if err := Advance(src, daynight, b); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Cells(), b.Cells()) {
		t.Fatal("identical inputs produced different destinations")
	}
}

func TestAdvanceRejectsDimensionMismatch(t *testing.T) {
	src := mustGrid(t, 8, 8)
	dst := mustGrid(t, 8, 9)
	src.RandomFill(grid.NewRNG(3), 0.5)
	dst.RandomFill(grid.NewRNG(4), 0.5)
	srcBefore := slices.Clone(src.Cells())
	dstBefore := slices.Clone(dst.Cells())

	err := Advance(src, rule.Conway(), dst)
	if !errors.Is(err, ErrDimensionMismatch) {
		t.Fatalf("error = %v, want ErrDimensionMismatch", err)
	}
	if !slices.Equal(srcBefore, src.Cells()) || !slices.Equal(dstBefore, dst.Cells()) {
		t.Fatal("a rejected Advance must not mutate either buffer")
	}
}
