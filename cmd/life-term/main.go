// Command life-term runs the automaton in a terminal, rendering each
// generation with the classic two-character block glyphs.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golife/internal/app"
	"golife/pkg/life"
	"golife/pkg/rule"
)

const clearScreen = "\033[H\033[2J"

func main() {
	var (
		delay  = 150 * time.Millisecond
		maxGen = 0
	)
	cfg, err := app.Load("life-term", os.Args[1:], func(fs *flag.FlagSet) {
		fs.DurationVar(&delay, "delay", delay, "pause between generations")
		fs.IntVar(&maxGen, "generations", maxGen, "stop after this many generations (0 runs forever)")
	})
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

	if cfg.Pattern != "" {
		if err := sim.LoadFile(cfg.Pattern); err != nil {
			log.Printf("%v; falling back to a random board", err)
			sim.Reset(cfg.EffectiveSeed(), cfg.Density)
		}
	} else {
		sim.Reset(cfg.EffectiveSeed(), cfg.Density)
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	for {
		fmt.Print(clearScreen)
		fmt.Printf("%s\ngen %d | pop %d\n", sim.Rule().Describe(), sim.Generation(), sim.Grid().Population())
		fmt.Print(sim.Grid().Render())

		if maxGen > 0 && sim.Generation() >= maxGen {
			return
		}

		select {
		case <-sigs:
			fmt.Printf("\nstopped after %d generations\n", sim.Generation())
			return
		case <-time.After(delay):
		}

		if err := sim.Step(); err != nil {
			log.Fatal(err)
		}
	}
}
