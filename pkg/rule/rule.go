// Package rule implements configurable birth/survival rules for
// two-dimensional cellular automata. A rule is a pair of membership sets
// over live-neighbor counts, stored as bit masks so every probe is a
// single mask test.
package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxNeighbors is the largest live-neighbor count a cell can have in a
// Moore neighborhood.
const MaxNeighbors = 8

// ErrNeighborCount reports a transition query with a neighbor count
// outside [0, MaxNeighbors].
var ErrNeighborCount = errors.New("neighbor count out of range")

// Rule encodes which live-neighbor counts trigger birth (dead to alive)
// and which trigger survival (alive stays alive). Each mask holds one bit
// per count in [0, MaxNeighbors]. A Rule is immutable after construction.
type Rule struct {
	name     string
	birth    uint16
	survival uint16
}

// New builds a rule from lists of birth and survival neighbor counts.
// Counts outside [0, MaxNeighbors] are dropped without failing the call.
// An empty name defaults to "Custom".
func New(name string, birth, survival []int) *Rule {
	if name == "" {
		name = "Custom"
	}
	return &Rule{
		name:     name,
		birth:    countMask(birth),
		survival: countMask(survival),
	}
}

func countMask(counts []int) uint16 {
	var mask uint16
	for _, n := range counts {
		if n >= 0 && n <= MaxNeighbors {
			mask |= 1 << n
		}
	}
	return mask
}

// Name returns the rule's descriptive name.
func (r *Rule) Name() string { return r.name }

// Births reports whether a dead cell with n live neighbors comes alive.
// Counts outside [0, MaxNeighbors] are never members.
func (r *Rule) Births(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.birth&(1<<n) != 0
}

// Survives reports whether a live cell with n live neighbors stays alive.
// Counts outside [0, MaxNeighbors] are never members.
func (r *Rule) Survives(n int) bool {
	return n >= 0 && n <= MaxNeighbors && r.survival&(1<<n) != 0
}

// Next returns the state a cell takes in the following generation: a live
// cell (any non-zero state) survives when Survives(neighbors), a dead cell
// is born when Births(neighbors). Neighbor counts outside
// [0, MaxNeighbors] fail with ErrNeighborCount.
func (r *Rule) Next(cell uint8, neighbors int) (uint8, error) {
	if neighbors < 0 || neighbors > MaxNeighbors {
		return 0, errors.Wrapf(ErrNeighborCount, "neighbors=%d", neighbors)
	}
	mask := r.birth
	if cell != 0 {
		mask = r.survival
	}
	if mask&(1<<neighbors) != 0 {
		return 1, nil
	}
	return 0, nil
}

// Describe renders the rule and its conditions in a human-readable form,
// for example "Conway's Life (B3/S23) | birth: 3 | survival: 2 3".
func (r *Rule) Describe() string {
	return fmt.Sprintf("%s | birth: %s | survival: %s",
		r.name, maskCounts(r.birth), maskCounts(r.survival))
}

func maskCounts(mask uint16) string {
	parts := make([]string, 0, MaxNeighbors+1)
	for n := 0; n <= MaxNeighbors; n++ {
		if mask&(1<<n) != 0 {
			parts = append(parts, strconv.Itoa(n))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
