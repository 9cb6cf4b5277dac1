package config

// SpeedRamp is the baseline world speed over a run, before random event
// modifiers:
//
//	speed(t) = base * (1 + level*speed_multiplier) + accel * accel_multiplier * t
//
// With progression disabled the speed stays at its starting value.
type SpeedRamp struct {
	Start float64 // speed at t=0
	Slope float64 // speed gained per simulated second
}

// NewSpeedRamp folds the difficulty settings into a ramp for the given world
// base speed and acceleration. The level is clamped to [0, 1] and an unset
// accel_multiplier counts as 1.
func NewSpeedRamp(d DifficultyConfig, base, accel float64) SpeedRamp {
	level := min(max(d.InitialLevel, 0), 1)
	r := SpeedRamp{Start: base * (1 + level*d.Scaling.SpeedMultiplier)}
	if !d.Enabled {
		return r
	}

	mult := d.Scaling.AccelMultiplier
	if mult == 0 {
		mult = 1
	}
	r.Slope = accel * mult
	return r
}

// At returns the speed after elapsedSec simulated seconds.
func (r SpeedRamp) At(elapsedSec float64) float64 {
	if elapsedSec <= 0 {
		return r.Start
	}
	return r.Start + r.Slope*elapsedSec
}
