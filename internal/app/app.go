//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"golife/internal/render"
	"golife/internal/ui"
	"golife/pkg/life"
	"golife/pkg/rule"
)

// Game adapts a life.Sim to the ebiten.Game interface: rendering,
// pause/step control, rule cycling, and cell painting while paused.
type Game struct {
	sim     *life.Sim
	painter *render.GridPainter
	hud     *ui.HUD
	ticker  *FixedStep
	cfg     *Config

	ruleNames []string
	ruleIdx   int

	paused   bool
	tickOnce bool
	dragging bool
	paint    uint8
	seed     int64
}

// New constructs a Game driving the provided simulation.
func New(sim *life.Sim, cfg *Config, seed int64) *Game {
	h, w := sim.Size()
	g := &Game{
		sim:       sim,
		painter:   render.NewGridPainter(w, h),
		hud:       ui.NewHUD(),
		ticker:    NewFixedStep(cfg.TPS),
		cfg:       cfg,
		ruleNames: rule.Names(),
		seed:      seed,
	}
	for i, name := range g.ruleNames {
		if name == cfg.Rule {
			g.ruleIdx = i
		}
	}
	return g
}

// Update handles input and advances the simulation when a generation is
// due.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if g.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.reload()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.reseed(time.Now().UnixNano())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleRule()
	}

	g.handlePainting()

	// Consume the tick even while paused so resuming does not burst.
	due := g.ticker.ShouldStep()
	if (due && !g.paused) || g.tickOnce {
		g.tickOnce = false
		if err := g.sim.Step(); err != nil {
			return err
		}
	}
	return nil
}

// handlePainting implements click and drag painting while the simulation
// is paused. The first press toggles the cell under the cursor; dragging
// keeps painting that same state until the button is released.
func (g *Game) handlePainting() {
	if !g.paused {
		g.dragging = false
		return
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if row, col, ok := g.cellAt(ebiten.CursorPosition()); ok {
			if state, err := g.sim.Grid().Toggle(row, col); err == nil {
				g.dragging = true
				g.paint = state
			}
		}
		return
	}
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.dragging = false
		return
	}
	if !g.dragging {
		return
	}
	if row, col, ok := g.cellAt(ebiten.CursorPosition()); ok {
		_ = g.sim.Grid().Set(row, col, g.paint)
	}
}

// cellAt maps a window position to board coordinates.
func (g *Game) cellAt(x, y int) (row, col int, ok bool) {
	row = y / g.cfg.Scale
	col = x / g.cfg.Scale
	h, w := g.sim.Size()
	if row < 0 || row >= h || col < 0 || col >= w {
		return 0, 0, false
	}
	return row, col, true
}

// reload re-reads the configured pattern file, or reseeds with the
// original seed when no pattern is in use. A failed read falls back to a
// random board.
func (g *Game) reload() {
	if g.cfg.Pattern != "" {
		if err := g.sim.LoadFile(g.cfg.Pattern); err != nil {
			log.Printf("%v; falling back to a random board", err)
			g.reseed(g.seed)
		}
		return
	}
	g.reseed(g.seed)
}

func (g *Game) reseed(seed int64) {
	g.seed = seed
	g.sim.Reset(seed, g.cfg.Density)
}

// cycleRule switches to the next registered preset. The board is left
// untouched; the new rule applies from the next generation.
func (g *Game) cycleRule() {
	if len(g.ruleNames) == 0 {
		return
	}
	g.ruleIdx = (g.ruleIdx + 1) % len(g.ruleNames)
	if f, ok := rule.Lookup(g.ruleNames[g.ruleIdx]); ok {
		g.sim.SetRule(f())
	}
}

// Draw renders the current board and the status HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim.Grid().Cells(), color.White, color.Black, g.cfg.Scale)
	g.hud.Draw(screen, ui.Status{
		Rule:       g.sim.Rule().Describe(),
		Generation: g.sim.Generation(),
		Population: g.sim.Grid().Population(),
		Paused:     g.paused,
	})
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	h, w := g.sim.Size()
	return w * g.cfg.Scale, h * g.cfg.Scale
}
