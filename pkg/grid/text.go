package grid

import (
	"os"
	"strings"

	"github.com/pkg/errors"
)

// Console glyphs: one cell renders as two characters so boards keep a
// roughly square aspect ratio in a terminal.
const (
	glyphAlive = "██"
	glyphDead  = "  "
)

// LoadText clears the grid and repopulates it from a pattern. Rows are
// separated by '\n'; within a row the character '0' maps to a dead cell
// and any other character to a live one. A character whose position falls
// outside the grid fails with ErrOutOfBounds; the clear and any writes
// before the failing character stand, so a failed load leaves a mostly
// cleared, partially painted board. Input shorter than the board leaves
// the remainder dead.
func (g *Grid) LoadText(text string) error {
	g.Clear()
	row, col := 0, 0
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == '\n' {
			row++
			col = 0
			continue
		}
		if err := g.check(row, col); err != nil {
			return errors.WithMessage(err, "pattern does not fit the grid")
		}
		if c == '0' {
			g.data[g.index(row, col)] = Dead
		} else {
			g.data[g.index(row, col)] = Alive
		}
		col++
	}
	return nil
}

// LoadFile reads the named pattern file into the grid via LoadText.
func (g *Grid) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "read pattern %q", path)
	}
	return errors.Wrapf(g.LoadText(string(data)), "load pattern %q", path)
}

// Render draws the board as text, one row per line and one glyph pair per
// cell, matching the console output of the terminal front end.
func (g *Grid) Render() string {
	var b strings.Builder
	b.Grow(g.h * (g.w*len(glyphAlive) + 1))
	for row := 0; row < g.h; row++ {
		for col := 0; col < g.w; col++ {
			if g.data[g.index(row, col)] != Dead {
				b.WriteString(glyphAlive)
			} else {
				b.WriteString(glyphDead)
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
