// Package config loads run settings for the wolfram CLI.
//
// Values are layered: built-in defaults, then a YAML file read with viper,
// then WOLFRAM_* environment variables. Command flags are applied on top by
// the caller.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/viper"

	"github.com/tspugh/cellular-automata-ml/internal/sims/elementary"
)

const (
	configFileName = "wolfram"
	configFileType = "yaml"
)

// Config keys shared by the YAML file and command flags.
const (
	KeyLength     = "length"
	KeyRule       = "rule"
	KeyBoundary   = "boundary"
	KeySeed       = "seed"
	KeyRNGSeed    = "rng_seed"
	KeyIterations = "iterations"
	KeyGlyphs     = "glyphs"
)

// Glyph sets accepted by Config.Glyphs.
const (
	GlyphsBlocks = "blocks"
	GlyphsDigits = "digits"
)

// Config describes a single automaton run.
type Config struct {
	Length     int    `mapstructure:"length" env:"WOLFRAM_LENGTH"`
	Rule       string `mapstructure:"rule" env:"WOLFRAM_RULE"`
	Boundary   string `mapstructure:"boundary" env:"WOLFRAM_BOUNDARY"`
	Seed       string `mapstructure:"seed" env:"WOLFRAM_SEED"`
	RNGSeed    int64  `mapstructure:"rng_seed" env:"WOLFRAM_RNG_SEED"`
	Iterations int    `mapstructure:"iterations" env:"WOLFRAM_ITERATIONS"`
	Glyphs     string `mapstructure:"glyphs" env:"WOLFRAM_GLYPHS"`
}

// Default returns the canonical Rule 30 run: 23 cells, fixed zero edges,
// seed 32, 100 generations.
func Default() Config {
	return Config{
		Length:     23,
		Rule:       "30",
		Boundary:   "[0,0]",
		Seed:       "32",
		RNGSeed:    42,
		Iterations: 100,
		Glyphs:     GlyphsBlocks,
	}
}

// Load reads path (or ./wolfram.yaml when path is empty) and applies
// environment overrides. A missing default file is not an error; a missing
// explicit file is.
func Load(path string) (Config, error) {
	def := Default()
	v := viper.New()
	v.SetDefault(KeyLength, def.Length)
	v.SetDefault(KeyRule, def.Rule)
	v.SetDefault(KeyBoundary, def.Boundary)
	v.SetDefault(KeySeed, def.Seed)
	v.SetDefault(KeyRNGSeed, def.RNGSeed)
	v.SetDefault(KeyIterations, def.Iterations)
	v.SetDefault(KeyGlyphs, def.Glyphs)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType(configFileType)
		v.AddConfigPath(".")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Validate checks the run settings without building a lattice.
func (c Config) Validate() error {
	if c.Iterations < 0 {
		return fmt.Errorf("%w: iterations must not be negative, got %d", elementary.ErrConfiguration, c.Iterations)
	}
	if c.Glyphs != GlyphsBlocks && c.Glyphs != GlyphsDigits {
		return fmt.Errorf("%w: glyphs must be %q or %q, got %q", elementary.ErrConfiguration, GlyphsBlocks, GlyphsDigits, c.Glyphs)
	}
	_, err := c.Elementary().Build()
	return err
}

// Elementary converts the run settings into an automaton configuration.
func (c Config) Elementary() elementary.Config {
	return elementary.Config{
		Width:    c.Length,
		Height:   1,
		Rule:     c.Rule,
		Boundary: c.Boundary,
		Seed:     c.Seed,
		RNGSeed:  c.RNGSeed,
	}
}
