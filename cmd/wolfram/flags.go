package main

import (
	"github.com/spf13/cobra"

	"github.com/tspugh/cellular-automata-ml/internal/config"
)

// Flag names that override config keys.
const (
	flagLength     = "length"
	flagRule       = "rule"
	flagBoundary   = "boundary"
	flagSeed       = "seed"
	flagRNGSeed    = "rng-seed"
	flagIterations = "iterations"
	flagFormat     = "format"
)

// bindRunFlags registers the automaton flags shared by run and sweep.
// Defaults are display only; overrides apply when a flag is set.
func bindRunFlags(cmd *cobra.Command, withRule bool) {
	def := config.Default()
	f := cmd.Flags()
	f.Int(flagLength, def.Length, "number of cells in the row")
	if withRule {
		f.String(flagRule, def.Rule, "Wolfram code 0-255 or eight bits, most significant first")
	}
	f.String(flagBoundary, def.Boundary, `edge handling: "[l,r]", "0", "1", "periodic" or "random"`)
	f.String(flagSeed, def.Seed, `initial row as a decimal integer, "random", or empty for a single centre cell`)
	f.Int64(flagRNGSeed, def.RNGSeed, "seed for random boundaries")
	f.Int(flagIterations, def.Iterations, "generations to advance")
	f.String(flagFormat, def.Glyphs, `cell glyphs: "blocks" or "digits"`)
}

// applyFlags copies explicitly set flags over cfg.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	f := cmd.Flags()
	var err error
	if f.Changed(flagLength) {
		if cfg.Length, err = f.GetInt(flagLength); err != nil {
			return err
		}
	}
	if f.Changed(flagRule) {
		if cfg.Rule, err = f.GetString(flagRule); err != nil {
			return err
		}
	}
	if f.Changed(flagBoundary) {
		if cfg.Boundary, err = f.GetString(flagBoundary); err != nil {
			return err
		}
	}
	if f.Changed(flagSeed) {
		if cfg.Seed, err = f.GetString(flagSeed); err != nil {
			return err
		}
	}
	if f.Changed(flagRNGSeed) {
		if cfg.RNGSeed, err = f.GetInt64(flagRNGSeed); err != nil {
			return err
		}
	}
	if f.Changed(flagIterations) {
		if cfg.Iterations, err = f.GetInt(flagIterations); err != nil {
			return err
		}
	}
	if f.Changed(flagFormat) {
		if cfg.Glyphs, err = f.GetString(flagFormat); err != nil {
			return err
		}
	}
	return nil
}
