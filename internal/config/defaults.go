package config

import (
	_ "embed"
)

//go:embed defaults/superrun.yaml
var defaultSuperRunYAML []byte

// DefaultSuperRunConfig returns the hard-coded Super Run configuration.
// It mirrors defaults/superrun.yaml and is used when the embedded file cannot be parsed.
func DefaultSuperRunConfig() SuperRunConfig {
	return SuperRunConfig{
		World: SuperRunWorld{
			Width:        1100,
			Height:       650,
			GroundY:      520,
			BaseSpeed:    8.0,
			Acceleration: 0.05,
		},
		Physics: SuperRunPhysics{
			Gravity:          1.0,
			JumpVelocity:     -22,
			BounceVelocity:   -12,
			RestEpsilon:      1,
			LandingTolerance: 20,
			SupportTolerance: 5,
		},
		Player: SuperRunPlayer{
			X:               200,
			Width:           100,
			Height:          60,
			Lives:           3,
			DestroyCooldown: 10,
		},
		Obstacles: SuperRunObstacles{
			MinHeight:       60,
			MaxHeight:       160,
			MinWidth:        40,
			MaxWidth:        300,
			SpawnJitter:     200,
			PlatformStretch: 2.0,
			Aspects:         []float64{0.8, 0.7, 1.5},
			DestroyFrames:   15,
			Particles:       20,
		},
		Items: SuperRunItems{
			StarSize:          30,
			StarDurationMs:    4000,
			BlinkFrames:       5,
			PlacementAttempts: 20,
			StarJitter:        300,
			StarMinLift:       50,
			StarMaxLift:       200,
			FallbackOffset:    150,
			FallbackLift:      100,
			LifeBonusChance:   0.2,
			LifeBonusSize:     40,
			LifeBonusJitter:   200,
		},
		Scoring: SuperRunScoring{
			StompPoints:    100,
			BreakPoints:    100,
			LifeUpPoints:   200,
			Multiplier:     1.0,
			TimeDivisor:    10,
			ChargeInterval: 2000,
			GoalScore:      10000,
			GoalOffset:     150,
			GoalWidth:      60,
			GoalHeight:     120,
		},
		Companions: SuperRunCompanions{
			Thresholds:     []int{2000, 5000},
			FollowDistance: 100,
			Ease:           0.12,
		},
		Timers: SuperRunTimers{
			ObstacleMs: 1100,
			BonusMs:    1000,
			StarMs:     8000,
			EventMs:    40000,
		},
		Events: SuperRunEvents{
			DurationMs: 10000,
			SpeedUp:    1.5,
			SpeedDown:  0.8,
		},
		Session: SuperRunSession{
			ExitDelayMs: 5000,
			MusicFadeMs: 1000,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				AccelMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "superrun", "superrun_classic":
		return defaultSuperRunYAML
	default:
		return nil
	}
}
