package superrun

import (
	"math"

	"github.com/vovakirdan/superrun/internal/config"
)

// Economy tracks score, lives and destruction charges for a run.
type Economy struct {
	cfg config.SuperRunScoring

	Score   int
	Lives   int
	Charges int
}

// NewEconomy starts a run with the given number of lives.
func NewEconomy(cfg config.SuperRunScoring, lives int) *Economy {
	return &Economy{cfg: cfg, Lives: lives}
}

// Add awards points scaled by the multiplier and returns the charges earned.
func (e *Economy) Add(points int) int {
	return e.set(e.Score + int(float64(points)*e.cfg.Multiplier))
}

// RaiseTo lifts the score to v when v is larger and returns the charges earned.
// The score never decreases.
func (e *Economy) RaiseTo(v int) int {
	if v <= e.Score {
		return 0
	}
	return e.set(v)
}

// set stores a new score and credits one charge per interval boundary crossed.
func (e *Economy) set(v int) int {
	old := e.Score
	e.Score = v
	gained := ChargesBetween(old, v, e.cfg.ChargeInterval)
	e.Charges += gained
	return gained
}

// ChargesBetween returns floor(new/interval) - floor(old/interval).
func ChargesBetween(old, new, interval int) int {
	if interval <= 0 || new <= old {
		return 0
	}
	return int(math.Floor(float64(new)/float64(interval))) - int(math.Floor(float64(old)/float64(interval)))
}

// TimeScore converts elapsed milliseconds into time points.
func (e *Economy) TimeScore(elapsedMs float64) int {
	return int(elapsedMs / e.cfg.TimeDivisor)
}

// UseCharge consumes one destruction charge if available.
func (e *Economy) UseCharge() bool {
	if e.Charges <= 0 {
		return false
	}
	e.Charges--
	return true
}

// LoseLife removes a life, never going below zero, and reports whether none remain.
func (e *Economy) LoseLife() bool {
	if e.Lives > 0 {
		e.Lives--
	}
	return e.Lives <= 0
}

// GainLife adds a life and the life-up bonus.
func (e *Economy) GainLife() {
	e.Lives++
	e.Add(e.cfg.LifeUpPoints)
}

// CompanionsUnlocked returns how many companion thresholds the score has reached.
func (e *Economy) CompanionsUnlocked(thresholds []int) int {
	n := 0
	for _, t := range thresholds {
		if e.Score >= t {
			n++
		}
	}
	return n
}
