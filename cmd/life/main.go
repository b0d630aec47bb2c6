//go:build ebiten

package main

import (
	"errors"
	"log"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"golife/internal/app"
	"golife/pkg/life"
	"golife/pkg/rule"
)

func main() {
	cfg, err := app.Load("life", os.Args[1:], nil)
	if err != nil {
		log.Fatal(err)
	}

	factory, ok := rule.Lookup(cfg.Rule)
	if !ok {
		log.Fatalf("unknown rule %q (have: %s)", cfg.Rule, strings.Join(rule.Names(), ", "))
	}

	sim, err := life.New(cfg.Height, cfg.Width, factory())
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.EffectiveSeed()
	if cfg.Pattern != "" {
		if err := sim.LoadFile(cfg.Pattern); err != nil {
			log.Printf("%v; falling back to a random board", err)
			sim.Reset(seed, cfg.Density)
		}
	} else {
		sim.Reset(seed, cfg.Density)
	}

	game := app.New(sim, cfg, seed)

	ebiten.SetWindowTitle("golife — " + sim.Rule().Name())
	ebiten.SetWindowSize(cfg.Width*cfg.Scale, cfg.Height*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
