package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromMap(t *testing.T) {
	c, err := FromMap(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), c)

	c, err = FromMap(map[string]string{
		"w":        "23",
		"h":        "10",
		"rule":     "00011110",
		"boundary": "periodic",
		"seed":     "32",
		"rng_seed": "7",
	})
	require.NoError(t, err)
	assert.Equal(t, Config{Width: 23, Height: 10, Rule: "00011110", Boundary: "periodic", Seed: "32", RNGSeed: 7}, c)

	_, err = FromMap(map[string]string{"w": "wide"})
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = FromMap(map[string]string{"h": "0"})
	assert.ErrorIs(t, err, ErrConfiguration)
	_, err = FromMap(map[string]string{"rng_seed": "x"})
	assert.ErrorIs(t, err, ErrConfiguration)
}

func TestConfigBuild(t *testing.T) {
	c := DefaultConfig()
	c.Width = 9
	l, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, "000010000", l.String(), "default seed is a single centre cell")

	c.Seed = "3"
	l, err = c.Build()
	require.NoError(t, err)
	assert.Equal(t, "000000011", l.String())

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{name: "short row", mutate: func(c *Config) { c.Width = 1 }, wantErr: ErrConfiguration},
		{name: "bad rule", mutate: func(c *Config) { c.Rule = "256" }, wantErr: ErrConfiguration},
		{name: "bad boundary", mutate: func(c *Config) { c.Boundary = "bogus" }, wantErr: ErrConfiguration},
		{name: "seed too large", mutate: func(c *Config) { c.Seed = "512" }, wantErr: ErrSeedOutOfRange},
		{name: "seed not a number", mutate: func(c *Config) { c.Seed = "abc" }, wantErr: ErrConfiguration},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			c.Width = 9
			tt.mutate(&c)
			_, err := c.Build()
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestConfigBuildRandomIsReproducible(t *testing.T) {
	c := DefaultConfig()
	c.Width = 31
	c.Boundary = "random"
	c.RNGSeed = 1234

	a, err := c.Build()
	require.NoError(t, err)
	b, err := c.Build()
	require.NoError(t, err)
	_, err = a.Advance(40)
	require.NoError(t, err)
	_, err = b.Advance(40)
	require.NoError(t, err)

	assert.Equal(t, a.String(), b.String())
	for i, rec := range a.History() {
		require.Equal(t, rec.Cells(), b.History()[i].Cells())
	}
}

func TestConfigBuildRandomRow(t *testing.T) {
	c := DefaultConfig()
	c.Width = 64
	c.Seed = RandomSeed

	a, err := c.Build()
	require.NoError(t, err)
	b, err := c.Build()
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
	assert.Contains(t, a.String(), "1")
	assert.Contains(t, a.String(), "0")

	c.RNGSeed++
	other, err := c.Build()
	require.NoError(t, err)
	assert.NotEqual(t, a.String(), other.String())
}
