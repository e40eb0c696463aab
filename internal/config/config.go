// Package config handles engine configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all engine settings.
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Physics PhysicsConfig `yaml:"physics"`
	Audio   AudioConfig   `yaml:"audio"`
	Scene   SceneConfig   `yaml:"scene"`
	Logging LoggingConfig `yaml:"logging"`
}

// WindowConfig holds display settings.
type WindowConfig struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
}

// PhysicsConfig holds simulation settings for the demo scenes.
type PhysicsConfig struct {
	PlayerSpeed float32 `yaml:"player_speed"` // units per second
	Gravity     float32 `yaml:"gravity"`      // constant downward drift, units per second
	ShowStats   bool    `yaml:"show_stats"`
}

// AudioConfig holds audio settings.
type AudioConfig struct {
	MasterVolume float64 `yaml:"master_volume"`
	SFXVolume    float64 `yaml:"sfx_volume"`
	Muted        bool    `yaml:"muted"`
	ImpactSound  string  `yaml:"impact_sound"` // WAV played on new contacts
}

// SceneConfig selects the scene description to load.
type SceneConfig struct {
	Path string `yaml:"path"` // empty uses the built-in scene
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "bugsyth engine",
			Width:  960,
			Height: 720,
			VSync:  true,
		},
		Physics: PhysicsConfig{
			PlayerSpeed: 1.0,
			Gravity:     1.0,
		},
		Audio: AudioConfig{
			MasterVolume: 0.8,
			SFXVolume:    1.0,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Validate reports settings the engine cannot run with.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Physics.PlayerSpeed < 0 {
		return fmt.Errorf("%w: negative player speed %v", ErrInvalidConfig, c.Physics.PlayerSpeed)
	}
	if !inUnitRange(c.Audio.MasterVolume) || !inUnitRange(c.Audio.SFXVolume) {
		return fmt.Errorf("%w: volumes must be within [0, 1]", ErrInvalidConfig)
	}
	return nil
}

func inUnitRange(v float64) bool {
	return v >= 0 && v <= 1
}
