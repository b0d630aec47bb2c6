package life

import (
	"golife/pkg/grid"
	"golife/pkg/rule"
)

// Sim owns a front/back grid pair and the active rule. Each Step advances
// the front board into the back buffer and swaps the two, so consecutive
// generations alternate buffers without reallocating. A Sim is owned by a
// single loop; it performs no locking.
type Sim struct {
	front      *grid.Grid
	back       *grid.Grid
	rule       *rule.Rule
	generation int
}

// New builds a simulation with all cells dead. A nil rule defaults to
// Conway's.
func New(height, width int, r *rule.Rule) (*Sim, error) {
	front, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	back, err := grid.New(height, width)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = rule.Conway()
	}
	return &Sim{front: front, back: back, rule: r}, nil
}

// Grid returns the current (front) board. Mutations through it are
// visible to the next Step.
func (s *Sim) Grid() *grid.Grid { return s.front }

// Rule returns the active rule.
func (s *Sim) Rule() *rule.Rule { return s.rule }

// SetRule switches the active rule. The current board is left untouched;
// the new rule applies from the next Step.
func (s *Sim) SetRule(r *rule.Rule) {
	if r != nil {
		s.rule = r
	}
}

// Size returns the board dimensions as (height, width).
func (s *Sim) Size() (int, int) { return s.front.Height(), s.front.Width() }

// Generation returns the number of steps since the board was last reset
// or loaded.
func (s *Sim) Generation() int { return s.generation }

// Step advances the board by one generation and swaps the buffers.
func (s *Sim) Step() error {
	if err := Advance(s.front, s.rule, s.back); err != nil {
		return err
	}
	s.front, s.back = s.back, s.front
	s.generation++
	return nil
}

// Reset randomizes the board with the provided seed and fill density and
// restarts the generation count.
func (s *Sim) Reset(seed int64, density float64) {
	s.front.RandomFill(grid.NewRNG(seed), density)
	s.generation = 0
}

// Load replaces the board with the given pattern text.
func (s *Sim) Load(text string) error {
	if err := s.front.LoadText(text); err != nil {
		return err
	}
	s.generation = 0
	return nil
}

// LoadFile replaces the board with the named pattern file's contents.
func (s *Sim) LoadFile(path string) error {
	if err := s.front.LoadFile(path); err != nil {
		return err
	}
	s.generation = 0
	return nil
}
