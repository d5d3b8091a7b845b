// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid settings")

// Settings is the runtime configuration. Everything has a working default, the
// YAML file and the ANTS_* environment only override.
type Settings struct {
	Window    WindowSettings    `yaml:"window"`
	Animation AnimationSettings `yaml:"animation"`
	Motion    MotionSettings    `yaml:"motion"`
	Backdrop  BackdropSettings  `yaml:"backdrop"`
	Log       LogSettings       `yaml:"log"`
}

type WindowSettings struct {
	Width    int  `yaml:"width"`  // 0 = monitor size
	Height   int  `yaml:"height"` // 0 = monitor size
	Floating bool `yaml:"floating"`
	Debug    bool `yaml:"debug"`
}

type AnimationSettings struct {
	Ants int   `yaml:"ants"`
	Seed int64 `yaml:"seed"` // 0 = time based
}

// MotionSettings selects where the reduced-motion preference comes from.
type MotionSettings struct {
	Source  string `yaml:"source"`  // auto, static, env, signal, gsettings
	Reduced bool   `yaml:"reduced"` // value for the static source
}

type BackdropSettings struct {
	Enabled bool `yaml:"enabled"`
}

type LogSettings struct {
	Level   string   `yaml:"level"`
	Format  string   `yaml:"format"`
	Outputs []string `yaml:"outputs"`
}

// Default returns the settings used when no file is given.
func Default() Settings {
	return Settings{
		Window: WindowSettings{Floating: true},
		Animation: AnimationSettings{
			Ants: AntCount,
		},
		Motion: MotionSettings{Source: MotionSourceAuto},
		Log: LogSettings{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads settings from path on top of Default, then applies the
// environment. An empty path skips the file.
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return s, fmt.Errorf("failed to read settings file: %w", err)
		}
		if err := yaml.Unmarshal(data, &s); err != nil {
			return s, fmt.Errorf("failed to unmarshal settings: %w", err)
		}
	}
	if err := s.applyEnv(os.LookupEnv); err != nil {
		return s, err
	}
	return s, s.Validate()
}

func (s *Settings) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "MOTION_SOURCE"); ok && v != "" {
		s.Motion.Source = strings.ToLower(v)
	}
	if v, ok := lookup(EnvPrefix + "ANTS"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sANTS: %w", EnvPrefix, err)
		}
		s.Animation.Ants = n
	}
	if v, ok := lookup(EnvPrefix + "SEED"); ok && v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%sSEED: %w", EnvPrefix, err)
		}
		s.Animation.Seed = n
	}
	if v, ok := lookup(EnvPrefix + "LOG_LEVEL"); ok && v != "" {
		s.Log.Level = v
	}
	if v, ok := lookup(EnvPrefix + "DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sDEBUG: %w", EnvPrefix, err)
		}
		s.Window.Debug = b
	}
	return nil
}

// Validate checks ranges and enumerations.
func (s Settings) Validate() error {
	if s.Animation.Ants <= 0 {
		return fmt.Errorf("%w: animation.ants must be > 0, got %d", ErrInvalid, s.Animation.Ants)
	}
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("%w: window size must not be negative", ErrInvalid)
	}
	switch s.Motion.Source {
	case MotionSourceAuto, MotionSourceStatic, MotionSourceEnv, MotionSourceSignal, MotionSourceGSettings:
	default:
		return fmt.Errorf("%w: unknown motion.source %q", ErrInvalid, s.Motion.Source)
	}
	switch strings.ToLower(s.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("%w: unknown log.format %q", ErrInvalid, s.Log.Format)
	}
	return nil
}
