package config

import (
	"flag"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, args ...string) (Config, error) {
	t.Helper()
	return Load(flag.NewFlagSet("test", flag.ContinueOnError), args)
}

func TestLoad_Defaults(t *testing.T) {
	c, err := load(t)
	require.NoError(t, err)
	assert.Equal(t, 100, c.Width)
	assert.Equal(t, 60, c.Height)
	assert.Equal(t, 30, c.SightRadius)
	assert.Equal(t, "info", c.LogLevel)
	assert.True(t, c.Color)
	assert.False(t, c.DoorsOpen)
	assert.Empty(t, c.Seed)
	assert.Zero(t, c.Soak)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("BASEMENT_WIDTH", "40")
	t.Setenv("BASEMENT_HEIGHT", "30")
	t.Setenv("BASEMENT_DOORS_OPEN", "true")
	t.Setenv("BASEMENT_SEED", "cellar")

	c, err := load(t, "-width", "50", "-soak", "12")
	require.NoError(t, err)
	assert.Equal(t, 50, c.Width, "flags win over env")
	assert.Equal(t, 30, c.Height)
	assert.True(t, c.DoorsOpen)
	assert.Equal(t, "cellar", c.Seed)
	assert.Equal(t, 12, c.Soak)
}

func TestLoad_EnvError(t *testing.T) {
	t.Setenv("BASEMENT_WIDTH", "wide")
	_, err := load(t)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	_, err := load(t, "-width", "0", "-log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "map size")
	assert.Contains(t, err.Error(), "log level")
}

func TestSeedValue(t *testing.T) {
	fixed := func() time.Time { return time.Unix(0, 42) }

	assert.Equal(t, int64(1234), Config{Seed: "1234"}.SeedValue(fixed))
	assert.Equal(t, int64(-5), Config{Seed: " -5 "}.SeedValue(fixed))
	assert.Equal(t, int64(42), Config{}.SeedValue(fixed))

	a := Config{Seed: "damp cellar"}.SeedValue(fixed)
	assert.Equal(t, a, Config{Seed: "damp cellar"}.SeedValue(fixed))
	assert.NotEqual(t, a, Config{Seed: "dry cellar"}.SeedValue(fixed))
}

func TestLogger(t *testing.T) {
	log, err := Config{LogLevel: "debug"}.Logger()
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(-1))

	_, err = Config{LogLevel: "nope"}.Logger()
	assert.Error(t, err)
}
