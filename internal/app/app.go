//go:build ebiten

package app

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tspugh/cellular-automata-ml/internal/core"
	"github.com/tspugh/cellular-automata-ml/internal/render"
)

type errReporter interface {
	Err() error
}

type ruleShifter interface {
	ShiftRule(delta int) error
}

// Viewer shows a core.Sim in an ebiten window.
//
// Keys: space pauses, enter resumes, n steps once, r resets with the current
// seed, s reseeds from the clock, left/right browse Wolfram codes, q or
// escape quits.
type Viewer struct {
	sim     core.Sim
	painter *render.Painter
	scale   int
	seed    int64

	paused bool
	single bool
}

type binding struct {
	keys   []ebiten.Key
	action func(*Viewer) error
}

var bindings = []binding{
	{keys: []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}, action: func(*Viewer) error { return ebiten.Termination }},
	{keys: []ebiten.Key{ebiten.KeySpace}, action: func(v *Viewer) error { v.paused = !v.paused; return nil }},
	{keys: []ebiten.Key{ebiten.KeyEnter}, action: func(v *Viewer) error { v.paused = false; return nil }},
	{keys: []ebiten.Key{ebiten.KeyN}, action: func(v *Viewer) error { v.single = true; return nil }},
	{keys: []ebiten.Key{ebiten.KeyR}, action: func(v *Viewer) error { v.Reset(v.seed); return nil }},
	{keys: []ebiten.Key{ebiten.KeyS}, action: func(v *Viewer) error { v.Reset(time.Now().UnixNano()); return nil }},
	{keys: []ebiten.Key{ebiten.KeyArrowRight}, action: func(v *Viewer) error { return v.shiftRule(1) }},
	{keys: []ebiten.Key{ebiten.KeyArrowLeft}, action: func(v *Viewer) error { return v.shiftRule(-1) }},
}

// New returns a viewer drawing sim at scale pixels per cell.
func New(sim core.Sim, scale int, seed int64) *Viewer {
	return &Viewer{
		sim:     sim,
		painter: render.NewPainter(sim.Size(), render.Mono),
		scale:   scale,
		seed:    seed,
	}
}

// Title names the sim and, when it reports one, its active rule.
func (v *Viewer) Title() string {
	title := "cellular automata: " + v.sim.Name()
	if p, ok := v.sim.(core.ParameterProvider); ok {
		if g, ok := p.Parameters().Group("Rule"); ok && g.Summary != "" {
			title += " " + g.Summary
		}
	}
	return title
}

// Reset restarts the sim with seed.
func (v *Viewer) Reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.single = false
}

func (v *Viewer) shiftRule(delta int) error {
	s, ok := v.sim.(ruleShifter)
	if !ok {
		return nil
	}
	if err := s.ShiftRule(delta); err != nil {
		return err
	}
	ebiten.SetWindowTitle(v.Title())
	return nil
}

// Update applies key presses and advances the sim unless paused.
func (v *Viewer) Update() error {
	for _, b := range bindings {
		for _, k := range b.keys {
			if !inpututil.IsKeyJustPressed(k) {
				continue
			}
			if err := b.action(v); err != nil {
				return err
			}
			break
		}
	}
	if !v.paused || v.single {
		v.sim.Step()
		v.single = false
	}
	if r, ok := v.sim.(errReporter); ok {
		return r.Err()
	}
	return nil
}

// Draw paints the sim's cells.
func (v *Viewer) Draw(screen *ebiten.Image) {
	v.painter.Draw(screen, v.sim.Cells(), v.scale)
}

// Layout returns the scaled sim size.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := v.sim.Size()
	return s.W * v.scale, s.H * v.scale
}
