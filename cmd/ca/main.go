//go:build ebiten

// Command ca opens a window scrolling a cellular automaton's space-time
// diagram.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tspugh/cellular-automata-ml/internal/app"
	"github.com/tspugh/cellular-automata-ml/internal/core"
	_ "github.com/tspugh/cellular-automata-ml/internal/sims/elementary"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("ca: ")

	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	sim, err := core.New(cfg.Sim, cfg.SimConfig())
	if err != nil {
		return fmt.Errorf("build %s: %w (available: %v)", cfg.Sim, err, core.Names())
	}
	sim.Reset(cfg.Seed)
	if p, ok := sim.(core.ParameterProvider); ok {
		for _, g := range p.Parameters().Groups {
			for _, param := range g.Params {
				log.Printf("%s.%s = %s", g.Name, param.Key, param.Value)
			}
		}
	}

	viewer := app.New(sim, cfg.Scale, cfg.Seed)
	size := sim.Size()
	ebiten.SetWindowTitle(viewer.Title())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(viewer); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
