// Package config provides YAML-based game configuration loading and
// difficulty management for Super Run.
package config

// SuperRunConfig contains all tuning for a Super Run session.
// Distances are world units (the playfield is World.Width x World.Height),
// speeds are world units per tick, durations are milliseconds of simulated time.
type SuperRunConfig struct {
	World      SuperRunWorld      `yaml:"world"`
	Physics    SuperRunPhysics    `yaml:"physics"`
	Player     SuperRunPlayer     `yaml:"player"`
	Obstacles  SuperRunObstacles  `yaml:"obstacles"`
	Items      SuperRunItems      `yaml:"items"`
	Scoring    SuperRunScoring    `yaml:"scoring"`
	Companions SuperRunCompanions `yaml:"companions"`
	Timers     SuperRunTimers     `yaml:"timers"`
	Events     SuperRunEvents     `yaml:"events"`
	Session    SuperRunSession    `yaml:"session"`
	Difficulty DifficultyConfig   `yaml:"difficulty"`
}

// SuperRunWorld defines the playfield and scroll speed ramp.
type SuperRunWorld struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundY      float64 `yaml:"ground_y"`
	BaseSpeed    float64 `yaml:"base_speed"`
	Acceleration float64 `yaml:"acceleration"` // speed added per elapsed second
}

// SuperRunPhysics defines vertical motion and contact tolerances.
type SuperRunPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpVelocity     float64 `yaml:"jump_velocity"`
	BounceVelocity   float64 `yaml:"bounce_velocity"`
	RestEpsilon      float64 `yaml:"rest_epsilon"`      // how close to the floor counts as standing
	LandingTolerance float64 `yaml:"landing_tolerance"` // stomp/landing window above an obstacle top
	SupportTolerance float64 `yaml:"support_tolerance"` // platform floor window above its top
}

// SuperRunPlayer defines the player actor.
type SuperRunPlayer struct {
	X               float64 `yaml:"x"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Lives           int     `yaml:"lives"`
	DestroyCooldown int     `yaml:"destroy_cooldown"` // ticks
}

// SuperRunObstacles defines obstacle generation and destruction.
type SuperRunObstacles struct {
	MinHeight       float64   `yaml:"min_height"`
	MaxHeight       float64   `yaml:"max_height"`
	MinWidth        float64   `yaml:"min_width"`
	MaxWidth        float64   `yaml:"max_width"`
	SpawnJitter     float64   `yaml:"spawn_jitter"`
	PlatformStretch float64   `yaml:"platform_stretch"`
	Aspects         []float64 `yaml:"aspects"` // width/height per kind: stompable A, stompable B, platform
	DestroyFrames   int       `yaml:"destroy_frames"`
	Particles       int       `yaml:"particles"`
}

// SuperRunItems defines power-up placement and effects.
type SuperRunItems struct {
	StarSize          float64 `yaml:"star_size"`
	StarDurationMs    float64 `yaml:"star_duration_ms"`
	BlinkFrames       int     `yaml:"blink_frames"`
	PlacementAttempts int     `yaml:"placement_attempts"`
	StarJitter        float64 `yaml:"star_jitter"`
	StarMinLift       float64 `yaml:"star_min_lift"`
	StarMaxLift       float64 `yaml:"star_max_lift"`
	FallbackOffset    float64 `yaml:"fallback_offset"`
	FallbackLift      float64 `yaml:"fallback_lift"`
	LifeBonusChance   float64 `yaml:"life_bonus_chance"`
	LifeBonusSize     float64 `yaml:"life_bonus_size"`
	LifeBonusJitter   float64 `yaml:"life_bonus_jitter"`
}

// SuperRunScoring defines score channels and thresholds.
type SuperRunScoring struct {
	StompPoints    int     `yaml:"stomp_points"`
	BreakPoints    int     `yaml:"break_points"`
	LifeUpPoints   int     `yaml:"life_up_points"`
	Multiplier     float64 `yaml:"multiplier"`
	TimeDivisor    float64 `yaml:"time_divisor"` // elapsed ms per time point
	ChargeInterval int     `yaml:"charge_interval"`
	GoalScore      int     `yaml:"goal_score"`
	GoalOffset     float64 `yaml:"goal_offset"`
	GoalWidth      float64 `yaml:"goal_width"`
	GoalHeight     float64 `yaml:"goal_height"`
}

// SuperRunCompanions defines follower unlocks and motion.
type SuperRunCompanions struct {
	Thresholds     []int   `yaml:"thresholds"`
	FollowDistance float64 `yaml:"follow_distance"`
	Ease           float64 `yaml:"ease"`
}

// SuperRunTimers defines the periodic spawn triggers.
type SuperRunTimers struct {
	ObstacleMs float64 `yaml:"obstacle_ms"`
	BonusMs    float64 `yaml:"bonus_ms"`
	StarMs     float64 `yaml:"star_ms"`
	EventMs    float64 `yaml:"event_ms"`
}

// SuperRunEvents defines the random speed events.
type SuperRunEvents struct {
	DurationMs float64 `yaml:"duration_ms"`
	SpeedUp    float64 `yaml:"speed_up"`
	SpeedDown  float64 `yaml:"speed_down"`
}

// SuperRunSession defines end-of-run behavior.
type SuperRunSession struct {
	ExitDelayMs float64 `yaml:"exit_delay_ms"`
	MusicFadeMs float64 `yaml:"music_fade_ms"`
}

// DifficultyConfig defines how presets alter the speed ramp.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // false freezes speed at its starting value
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // fraction of base speed added at level 1.0
	AccelMultiplier float64 `yaml:"accel_multiplier"` // scales world acceleration
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown strings map to "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
