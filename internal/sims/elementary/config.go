package elementary

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/tspugh/cellular-automata-ml/internal/core"
)

// RandomSeed selects a random initial row.
const RandomSeed = "random"

// Config holds parameters for the elementary cellular automaton.
type Config struct {
	Width  int
	Height int
	// Rule is a Wolfram code or an eight character bit string.
	Rule string
	// Boundary is parsed with ParseBoundary.
	Boundary string
	// Seed is a decimal integer for EncodeSeed. Empty means a single live
	// cell in the middle of the row; "random" fills the row from RNGSeed.
	Seed string
	// RNGSeed seeds the bit source used by random boundaries.
	RNGSeed int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Rule: strconv.Itoa(DefaultRuleCode), Boundary: "[0,0]", RNGSeed: 42}
}

// FromMap populates a Config from a string map. Unknown keys are ignored;
// malformed numbers are reported.
func FromMap(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return c, fmt.Errorf("%w: w: %v", ErrConfiguration, err)
		}
		c.Width = parsed
	}
	if v, ok := cfg["h"]; ok {
		parsed, err := strconv.Atoi(v)
		if err != nil || parsed <= 0 {
			return c, fmt.Errorf("%w: h must be a positive integer, got %q", ErrConfiguration, v)
		}
		c.Height = parsed
	}
	if v, ok := cfg["rule"]; ok {
		c.Rule = v
	}
	if v, ok := cfg["boundary"]; ok {
		c.Boundary = v
	}
	if v, ok := cfg["seed"]; ok {
		c.Seed = v
	}
	if v, ok := cfg["rng_seed"]; ok {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return c, fmt.Errorf("%w: rng_seed: %v", ErrConfiguration, err)
		}
		c.RNGSeed = parsed
	}
	return c, nil
}

// NewRule builds the configured rule. Random boundaries draw from an RNG
// seeded with rngSeed.
func (c Config) NewRule(rngSeed int64) (*Rule, error) {
	b, err := ParseBoundary(c.Boundary)
	if err != nil {
		return nil, err
	}
	return ParseRule(c.Rule, b, WithBitSource(core.NewRNG(rngSeed)))
}

// Build returns a seeded lattice for the configuration.
func (c Config) Build() (*Lattice, error) {
	return c.build(c.RNGSeed)
}

func (c Config) build(rngSeed int64) (*Lattice, error) {
	rule, err := c.NewRule(rngSeed)
	if err != nil {
		return nil, err
	}
	l, err := NewLattice(c.Width, rule)
	if err != nil {
		return nil, err
	}
	switch c.Seed {
	case "":
		row := make([]uint8, c.Width)
		row[c.Width/2] = 1
		return l, l.SetCells(row)
	case RandomSeed:
		row := make([]uint8, c.Width)
		core.FillBinary(core.NewRNG(^rngSeed).Source(), row)
		return l, l.SetCells(row)
	}
	seed, ok := new(big.Int).SetString(c.Seed, 10)
	if !ok {
		return nil, fmt.Errorf("%w: seed must be a decimal integer, got %q", ErrConfiguration, c.Seed)
	}
	if err := l.SeedFromBig(seed); err != nil {
		return nil, err
	}
	return l, nil
}
