package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// LoadSuperRun loads Super Run configuration.
// Search order: customPath -> ~/.superrun/configs/superrun.yaml -> ./configs/superrun.yaml -> embedded default.
// Keys missing from a file keep their default values.
func LoadSuperRun(customPath string) (SuperRunConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultSuperRunConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseSuperRun(data)
		if err != nil {
			return DefaultSuperRunConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("superrun.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseSuperRun(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/superrun.yaml"); err == nil {
		if cfg, err := ParseSuperRun(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseSuperRun(defaultSuperRunYAML)
	if err != nil {
		return DefaultSuperRunConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseSuperRun decodes YAML on top of the hard-coded defaults and normalizes the result.
func ParseSuperRun(data []byte) (SuperRunConfig, error) {
	cfg := DefaultSuperRunConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultSuperRunConfig(), err
	}
	cfg.Normalize()
	return cfg, nil
}

// Normalize clamps values into ranges the simulation can rely on.
func (c *SuperRunConfig) Normalize() {
	d := DefaultSuperRunConfig()

	if c.World.Width <= 0 {
		c.World.Width = d.World.Width
	}
	if c.World.Height <= 0 {
		c.World.Height = d.World.Height
	}
	if c.World.GroundY <= 0 || c.World.GroundY > c.World.Height {
		c.World.GroundY = c.World.Height * 0.8
	}
	if c.World.Acceleration < 0 {
		c.World.Acceleration = 0
	}

	if c.Player.Lives < 1 {
		c.Player.Lives = 1
	}
	if c.Player.DestroyCooldown < 0 {
		c.Player.DestroyCooldown = 0
	}

	o := &c.Obstacles
	if o.MinHeight <= 0 {
		o.MinHeight = d.Obstacles.MinHeight
	}
	if o.MaxHeight < o.MinHeight {
		o.MaxHeight = o.MinHeight
	}
	if o.MinWidth <= 0 {
		o.MinWidth = d.Obstacles.MinWidth
	}
	if o.MaxWidth < o.MinWidth {
		o.MaxWidth = o.MinWidth
	}
	if o.SpawnJitter < 0 {
		o.SpawnJitter = 0
	}
	if len(o.Aspects) < 3 {
		o.Aspects = append(o.Aspects, d.Obstacles.Aspects[len(o.Aspects):]...)
	}
	if o.DestroyFrames < 1 {
		o.DestroyFrames = 1
	}

	it := &c.Items
	if it.PlacementAttempts < 0 {
		it.PlacementAttempts = 0
	}
	if it.StarMaxLift < it.StarMinLift {
		it.StarMaxLift = it.StarMinLift
	}
	if it.BlinkFrames < 1 {
		it.BlinkFrames = 1
	}
	it.LifeBonusChance = clampF(it.LifeBonusChance, 0, 1)

	if c.Scoring.Multiplier <= 0 {
		c.Scoring.Multiplier = 1
	}
	if c.Scoring.TimeDivisor <= 0 {
		c.Scoring.TimeDivisor = d.Scoring.TimeDivisor
	}
	if c.Scoring.ChargeInterval <= 0 {
		c.Scoring.ChargeInterval = d.Scoring.ChargeInterval
	}

	c.Companions.Ease = clampF(c.Companions.Ease, 0, 1)
	sort.Ints(c.Companions.Thresholds)

	// Timers firing every tick or faster are not meaningful
	t := &c.Timers
	for _, ms := range []*float64{&t.ObstacleMs, &t.BonusMs, &t.StarMs, &t.EventMs} {
		if *ms < 1 {
			*ms = 1
		}
	}

	c.Difficulty.InitialLevel = clampF(c.Difficulty.InitialLevel, 0, 1)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".superrun", "configs", filename)
}

// ApplySuperRunPreset modifies the config based on a difficulty preset.
func ApplySuperRunPreset(cfg *SuperRunConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust the economy based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Difficulty.Scaling.AccelMultiplier = 0.6
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Difficulty.Scaling.AccelMultiplier = 1.5
	}
}

func clampF(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
