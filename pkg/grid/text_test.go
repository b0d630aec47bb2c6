package grid

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTextExact(t *testing.T) {
	g, _ := New(2, 4)
	if err := g.LoadText("0100\n1110"); err != nil {
		t.Fatal(err)
	}
	want := []uint8{
		0, 1, 0, 0,
		1, 1, 1, 0,
	}
	for i, state := range want {
		if g.Cells()[i] != state {
			t.Fatalf("cell %d = %d, want %d", i, g.Cells()[i], state)
		}
	}
}

func TestLoadTextAnyCharacterIsAlive(t *testing.T) {
	g, _ := New(1, 4)
	if err := g.LoadText("0.x0"); err != nil {
		t.Fatal(err)
	}
	want := []uint8{0, 1, 1, 0}
	for i, state := range want {
		if g.Cells()[i] != state {
			t.Fatalf("cell %d = %d, want %d", i, g.Cells()[i], state)
		}
	}
}

func TestLoadTextShortInputLeavesRestDead(t *testing.T) {
	g, _ := New(3, 3)
	g.RandomFill(NewRNG(5), 1)
	if err := g.LoadText("1"); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 1 {
		t.Fatalf("population = %d, want 1 (load clears before painting)", g.Population())
	}
	if state, _ := g.Get(0, 0); state != Alive {
		t.Fatal("cell (0,0) should be alive")
	}
}

func TestLoadTextRowTooLong(t *testing.T) {
	g, _ := New(2, 4)
	if err := g.LoadText("01001"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("error = %v, want ErrOutOfBounds", err)
	}
}

func TestLoadTextTooManyRows(t *testing.T) {
	g, _ := New(2, 4)
	if err := g.LoadText("0000\n0000\n1"); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("error = %v, want ErrOutOfBounds", err)
	}
}

func TestLoadTextTrailingNewlineOK(t *testing.T) {
	g, _ := New(2, 4)
	if err := g.LoadText("0100\n1110\n"); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 4 {
		t.Fatalf("population = %d, want 4", g.Population())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glider.txt")
	if err := os.WriteFile(path, []byte("010\n001\n111\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, _ := New(5, 5)
	if err := g.LoadFile(path); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 5 {
		t.Fatalf("population = %d, want 5", g.Population())
	}
}

func TestLoadFileMissing(t *testing.T) {
	g, _ := New(5, 5)
	err := g.LoadFile(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil {
		t.Fatal("want error for unreadable pattern file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want wrapped os.ErrNotExist", err)
	}
}

func TestRender(t *testing.T) {
	g, _ := New(2, 2)
	if err := g.LoadText("10\n01"); err != nil {
		t.Fatal(err)
	}
	want := "██  \n  ██\n"
	if got := g.Render(); got != want {
		t.Fatalf("Render() = %q, want %q", got, want)
	}
}
