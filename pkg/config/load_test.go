package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lander.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	path := writeConfig(t, `{
		"arena": {"width": 800, "height": 600},
		"craft": {"type": "rocket", "startY": 472},
		"physics": {"tickRate": 60},
		"display": {"endScreenDelay": "3s"},
		"level": {"walls": [{"x": 500, "y": 0, "w": 30, "h": 300}]}
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Arena.Width)
	assert.Equal(t, 600.0, cfg.Arena.Height)
	assert.Equal(t, "rocket", cfg.Craft.Type)
	assert.Equal(t, 472.0, cfg.Craft.StartY)
	assert.Equal(t, 75.0, cfg.Craft.StartX)
	assert.Equal(t, 60, cfg.Physics.TickRate)
	assert.Equal(t, 100.0, cfg.Physics.Gravity)
	assert.Equal(t, Duration(3*time.Second), cfg.Display.EndScreenDelay)
	assert.Equal(t, []WallConfig{{X: 500, Y: 0, W: 30, H: 300}}, cfg.Level.Walls)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `{"physics": {"tickRate": 60}}`)

	t.Setenv("LANDER_PHYSICS_TICKRATE", "240")
	t.Setenv("LANDER_CRAFT_STARTINGFUEL", "2.5")
	t.Setenv("LANDER_CRAFT_TYPE", "rocket")
	t.Setenv("LANDER_TRAIL_LIFESPAN", "40ms")
	t.Setenv("LANDER_DISPLAY_FULLSCREEN", "true")
	t.Setenv("LANDER_LOG_FILE", "/tmp/lander.log")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 240, cfg.Physics.TickRate)
	assert.Equal(t, 2.5, cfg.Craft.StartingFuel)
	assert.Equal(t, "rocket", cfg.Craft.Type)
	assert.Equal(t, Duration(40*time.Millisecond), cfg.Trail.Lifespan)
	assert.True(t, cfg.Display.Fullscreen)
	assert.Equal(t, "/tmp/lander.log", cfg.Log.File)
}

func TestLoad_ShorterTrailReplacesDefault(t *testing.T) {
	path := writeConfig(t, `{"trail": {"alphas": [100, 200]}}`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []int{100, 200}, cfg.Trail.Alphas)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/lander.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}

func TestLoad_InvalidValues(t *testing.T) {
	path := writeConfig(t, `{"physics": {"tickRate": 0}}`)

	_, err := Load(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTiming)
}

func TestLoad_BadDuration(t *testing.T) {
	t.Setenv("LANDER_DISPLAY_ENDSCREENDELAY", "forever")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding config")
}

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	def := DefaultConfig()
	fs := pflag.NewFlagSet("lander", pflag.ContinueOnError)
	fs.String("craft", def.Craft.Type, "")
	fs.Bool("fullscreen", def.Display.Fullscreen, "")
	fs.String("log-file", def.Log.File, "")
	fs.String("log-level", def.Log.Level, "")
	fs.String("renderer", "null", "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestLoadWithFlags_Overrides(t *testing.T) {
	path := writeConfig(t, `{"craft": {"type": "helicopter"}, "log": {"level": "warn"}}`)
	t.Setenv("LANDER_LOG_FILE", "/tmp/env.log")

	cfg, err := LoadWithFlags(path, newFlags(t, "--craft=rocket", "--fullscreen", "--log-file", "/tmp/flag.log"))
	require.NoError(t, err)

	assert.Equal(t, "rocket", cfg.Craft.Type)
	assert.True(t, cfg.Display.Fullscreen)
	assert.Equal(t, "/tmp/flag.log", cfg.Log.File)
	assert.Equal(t, "warn", cfg.Log.Level, "unset flag must not hide the file value")
}

func TestLoadWithFlags_NilFlagSet(t *testing.T) {
	cfg, err := LoadWithFlags("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadWithFlags_InvalidCraft(t *testing.T) {
	_, err := LoadWithFlags("", newFlags(t, "--craft=balloon"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCraft)
}
