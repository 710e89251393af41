package config

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. LANDER_PHYSICS_TICKRATE.
const EnvPrefix = "LANDER"

// envKeys are the scalar settings that can be overridden from the environment.
var envKeys = []string{
	"arena.width", "arena.height",
	"craft.type", "craft.width", "craft.height", "craft.startX", "craft.startY", "craft.startingFuel",
	"physics.tickRate", "physics.gravity", "physics.thrust", "physics.lateral", "physics.drag",
	"physics.maxLandingSpeed", "physics.leftMargin", "physics.wallInset",
	"trail.lifespan", "trail.offsetX", "trail.offsetY",
	"assets.dir", "assets.rocket", "assets.helicopter", "assets.explosion", "assets.won",
	"display.title", "display.fullscreen", "display.vsync", "display.endScreenDelay", "display.gaugeWidth",
	"log.level", "log.file",
}

// flagKeys maps command-line flags to the settings they override.
var flagKeys = map[string]string{
	"craft":      "craft.type",
	"fullscreen": "display.fullscreen",
	"log-file":   "log.file",
	"log-level":  "log.level",
}

// Load builds the configuration from the defaults, the JSON file at path (skipped when
// path is empty) and LANDER_* environment variables, in increasing priority.
// The result is validated.
func Load(path string) (*GameConfig, error) {
	return load(viper.New(), path)
}

// LoadWithFlags is Load with the flags named in flagKeys layered on top. A flag
// only overrides the file and environment when it was given on the command line.
func LoadWithFlags(path string, flags *pflag.FlagSet) (*GameConfig, error) {
	v := viper.New()
	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("error binding flag %s: %w", name, err)
			}
		}
	}
	return load(v, path)
}

func load(v *viper.Viper, path string) (*GameConfig, error) {
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for _, key := range envKeys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("error binding %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()
	// Slices decode element-wise into existing storage, so a shorter list from the
	// file would keep the trailing defaults.
	if v.IsSet("level.walls") {
		cfg.Level.Walls = nil
	}
	if v.IsSet("trail.alphas") {
		cfg.Trail.Alphas = nil
	}

	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
