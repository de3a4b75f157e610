package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim   string
	Scale int
	TPS   int
	Seed  int64

	Width    int
	Height   int
	Rule     string
	Boundary string
	Initial  string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "elementary", Scale: 3, TPS: 30, Seed: 42, Width: 256, Height: 256, Rule: "30", Boundary: "[0,0]"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "row length")
	fs.IntVar(&c.Height, "h", c.Height, "generations kept on screen")
	fs.StringVar(&c.Rule, "rule", c.Rule, "Wolfram code or 8-bit rule string")
	fs.StringVar(&c.Boundary, "boundary", c.Boundary, "0, 1, [l,r], random or periodic")
	fs.StringVar(&c.Initial, "init", c.Initial, `initial row as a decimal seed or "random" (default: single centre cell)`)
}

// SimConfig returns the string map handed to the sim factory.
func (c *Config) SimConfig() map[string]string {
	m := map[string]string{
		"w":        strconv.Itoa(c.Width),
		"h":        strconv.Itoa(c.Height),
		"rule":     c.Rule,
		"boundary": c.Boundary,
		"rng_seed": strconv.FormatInt(c.Seed, 10),
	}
	if c.Initial != "" {
		m["seed"] = c.Initial
	}
	return m
}
