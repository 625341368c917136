// Package config loads Mudra's YAML configuration. Every field has a
// default, so an absent or partial file yields a working setup; the
// file only overrides what it names.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ayusman/mudra/internal/gaze"
	"github.com/ayusman/mudra/internal/gesture"
)

// Config is the full application configuration.
type Config struct {
	CameraID        int     `yaml:"camera_id"`
	MotionThreshold float64 `yaml:"motion_threshold"`
	ListenAddr      string  `yaml:"listen_addr"`
	DatabasePath    string  `yaml:"database_path"`

	Gaze    GazeConfig    `yaml:"gaze"`
	Gesture GestureConfig `yaml:"gesture"`
}

// GazeConfig holds the gaze evaluator's decision boundaries.
type GazeConfig struct {
	HorizontalLow  float64 `yaml:"horizontal_low"`
	HorizontalHigh float64 `yaml:"horizontal_high"`
	VerticalUp     float64 `yaml:"vertical_up"`
}

// GestureConfig holds the gesture classifier's tolerances and active
// rule list.
type GestureConfig struct {
	StraightTolerance    float64  `yaml:"straight_tolerance"`
	BendTolerance        float64  `yaml:"bend_tolerance"`
	ParallelToleranceDeg float64  `yaml:"parallel_tolerance_deg"`
	InterlockDistancePx  float64  `yaml:"interlock_distance_px"`
	InterlockMinJoints   int      `yaml:"interlock_min_joints"`
	HorizonThresholdDeg  float64  `yaml:"horizon_threshold_deg"`
	ActiveRules          []string `yaml:"active_rules"`
}

// Default returns the built-in configuration.
func Default() Config {
	gz := gaze.DefaultThresholds()
	gs := gesture.DefaultConfig()

	rules := make([]string, len(gs.ActiveRules))
	for i, r := range gs.ActiveRules {
		rules[i] = string(r)
	}

	return Config{
		CameraID:        0,
		MotionThreshold: 1.0,
		ListenAddr:      ":8080",
		DatabasePath:    "",
		Gaze: GazeConfig{
			HorizontalLow:  gz.HorizontalLow,
			HorizontalHigh: gz.HorizontalHigh,
			VerticalUp:     gz.VerticalUp,
		},
		Gesture: GestureConfig{
			StraightTolerance:    gs.StraightTolerance,
			BendTolerance:        gs.BendTolerance,
			ParallelToleranceDeg: gs.ParallelToleranceDeg,
			InterlockDistancePx:  gs.InterlockDistancePx,
			InterlockMinJoints:   gs.InterlockMinJoints,
			HorizonThresholdDeg:  gs.HorizonThresholdDeg,
			ActiveRules:          rules,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults unchanged; a missing file is an error so typos don't
// silently fall back.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	return cfg, nil
}

// GazeThresholds converts the gaze section to the evaluator's type.
func (c Config) GazeThresholds() gaze.Thresholds {
	return gaze.Thresholds{
		HorizontalLow:  c.Gaze.HorizontalLow,
		HorizontalHigh: c.Gaze.HorizontalHigh,
		VerticalUp:     c.Gaze.VerticalUp,
	}
}

// GestureConfig converts the gesture section to the classifier's type.
func (c Config) GestureClassifierConfig() gesture.Config {
	rules := make([]gesture.Label, len(c.Gesture.ActiveRules))
	for i, r := range c.Gesture.ActiveRules {
		rules[i] = gesture.Label(r)
	}

	return gesture.Config{
		StraightTolerance:    c.Gesture.StraightTolerance,
		BendTolerance:        c.Gesture.BendTolerance,
		ParallelToleranceDeg: c.Gesture.ParallelToleranceDeg,
		InterlockDistancePx:  c.Gesture.InterlockDistancePx,
		InterlockMinJoints:   c.Gesture.InterlockMinJoints,
		HorizonThresholdDeg:  c.Gesture.HorizonThresholdDeg,
		ActiveRules:          rules,
	}
}
