package elementary

import (
	"strconv"

	"github.com/tspugh/cellular-automata-ml/internal/core"
)

// Sim projects a Lattice vertically for display: the newest row sits on top
// and older generations scroll down.
type Sim struct {
	cfg     Config
	lattice *Lattice
	grid    *core.ByteGrid
	err     error
}

// NewSim validates cfg and returns a sim reset with cfg.RNGSeed.
func NewSim(cfg Config) (*Sim, error) {
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	s := &Sim{cfg: cfg, grid: core.NewByteGrid(cfg.Width, cfg.Height)}
	s.load(l)
	return s, nil
}

// Name returns the simulation identifier.
func (s *Sim) Name() string { return "elementary" }

// Size returns the simulation grid dimensions.
func (s *Sim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }

// Cells exposes the render buffer.
func (s *Sim) Cells() []uint8 { return s.grid.Cells() }

// Lattice returns the underlying lattice.
func (s *Sim) Lattice() *Lattice { return s.lattice }

// Err reports the last failure from Reset or Step.
func (s *Sim) Err() error { return s.err }

// Reset rebuilds the lattice from the configuration, reseeding random
// boundaries with seed.
func (s *Sim) Reset(seed int64) {
	l, err := s.cfg.build(seed)
	if err != nil {
		s.err = err
		return
	}
	s.load(l)
}

func (s *Sim) load(l *Lattice) {
	s.lattice = l
	s.err = nil
	s.grid.Clear()
	s.grid.SetRow(0, l.cells)
}

// Step computes the next generation and scrolls history downwards.
func (s *Sim) Step() {
	if _, err := s.lattice.Advance(1); err != nil {
		s.err = err
		return
	}
	s.grid.ScrollDown()
	s.grid.SetRow(0, s.lattice.cells)
}

// ShiftRule switches to the Wolfram code delta steps away, wrapping within
// 0..255. The current row, history and boundary are kept; later resets use
// the new code.
func (s *Sim) ShiftRule(delta int) error {
	rule := s.lattice.Rule()
	code, ok := rule.Code()
	if !ok {
		code = DefaultRuleCode
	}
	next := ((int(code)+delta)%256 + 256) % 256
	if err := rule.SetInt(next); err != nil {
		return err
	}
	if err := s.lattice.ReplaceRule(rule); err != nil {
		return err
	}
	s.cfg.Rule = strconv.Itoa(next)
	return nil
}

// Parameters describes the active configuration.
func (s *Sim) Parameters() core.ParameterSnapshot {
	rule := s.lattice.Rule()
	seed := s.cfg.Seed
	if seed == "" {
		seed = "center"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				stringParam("seed", "Seed", seed),
				{Key: "rng_seed", Label: "RNG seed", Type: core.ParamTypeInt, Value: strconv.FormatInt(s.cfg.RNGSeed, 10)},
			},
		},
		{
			Name:    "Rule",
			Summary: rule.Descriptor(),
			Params: []core.Parameter{
				stringParam("rule", "Rule bits", rule.Bits()),
				stringParam("boundary", "Boundary", rule.Boundary().String()),
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("generation", "Generation", s.lattice.Generation()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeString, Value: value}
}

func init() {
	core.Register("elementary", func(cfg map[string]string) (core.Sim, error) {
		c, err := FromMap(cfg)
		if err != nil {
			return nil, err
		}
		return NewSim(c)
	})
}
