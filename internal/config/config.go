// Package config loads the game configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"retrofps/internal/components"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window WindowConfig `yaml:"window"`
	Log    LogConfig    `yaml:"log"`
	Scene  string       `yaml:"scene"`
	Player PlayerConfig `yaml:"player"`
	Input  InputConfig  `yaml:"input"`
}

type WindowConfig struct {
	Width     int32  `yaml:"width"`
	Height    int32  `yaml:"height"`
	Title     string `yaml:"title"`
	TargetFPS int32  `yaml:"target_fps"`
}

type LogConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

type PlayerConfig struct {
	Spawn            [3]float32 `yaml:"spawn"`
	Yaw              float32    `yaml:"yaw"`
	MoveSpeed        float32    `yaml:"move_speed"`
	SprintMultiplier float32    `yaml:"sprint_multiplier"`
	Gravity          float32    `yaml:"gravity"`
	JumpStrength     float32    `yaml:"jump_strength"`
	EyeHeight        float32    `yaml:"eye_height"`
	InteractRange    float32    `yaml:"interact_range"`
}

type InputConfig struct {
	LookSensitivity float32             `yaml:"look_sensitivity"`
	InvertY         bool                `yaml:"invert_y"`
	Bindings        map[string][]string `yaml:"bindings"`
}

// Default returns the configuration used when no file is given. Empty
// Bindings means the input package defaults.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 1280, Height: 720, Title: "RetroFPS", TargetFPS: 120},
		Log:    LogConfig{Level: "info"},
		Scene:  "assets/scenes/level.json",
		Player: PlayerConfig{
			Spawn:            [3]float32{0, 0, 6},
			Yaw:              180,
			MoveSpeed:        6,
			SprintMultiplier: 1.8,
			Gravity:          20,
			JumpStrength:     7,
			EyeHeight:        1.6,
			InteractRange:    components.DefaultInteractRange,
		},
		Input: InputConfig{LookSensitivity: 0.1},
	}
}

// Load reads path over Default, so a file only needs the keys it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if c.Scene == "" {
		return fmt.Errorf("%w: scene path is empty", ErrInvalid)
	}
	p := c.Player
	if p.MoveSpeed <= 0 {
		return fmt.Errorf("%w: player.move_speed must be positive", ErrInvalid)
	}
	if p.SprintMultiplier < 1 {
		return fmt.Errorf("%w: player.sprint_multiplier must be at least 1", ErrInvalid)
	}
	if p.EyeHeight <= 0 {
		return fmt.Errorf("%w: player.eye_height must be positive", ErrInvalid)
	}
	if p.InteractRange <= 0 {
		return fmt.Errorf("%w: player.interact_range must be positive", ErrInvalid)
	}
	if c.Input.LookSensitivity <= 0 {
		return fmt.Errorf("%w: input.look_sensitivity must be positive", ErrInvalid)
	}
	return nil
}
