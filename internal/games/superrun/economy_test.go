package superrun

import (
	"testing"

	"github.com/vovakirdan/superrun/internal/config"
)

func TestChargesBetween(t *testing.T) {
	tests := []struct {
		old, new int
		want     int
	}{
		{0, 1999, 0},
		{0, 2000, 1},
		{1999, 2000, 1},
		{1900, 6100, 3},
		{2000, 3999, 0},
		{3999, 4100, 1},
		{5000, 5000, 0},
		{0, 10000, 5},
	}
	for _, tt := range tests {
		if got := ChargesBetween(tt.old, tt.new, 2000); got != tt.want {
			t.Errorf("ChargesBetween(%d, %d) = %d, want %d", tt.old, tt.new, got, tt.want)
		}
	}
}

func TestEconomyScoreChannels(t *testing.T) {
	e := NewEconomy(config.DefaultSuperRunConfig().Scoring, 3)

	e.Add(100)
	if e.Score != 100 {
		t.Fatalf("score = %d, want 100", e.Score)
	}

	// Time score only raises the score
	if e.RaiseTo(50) != 0 || e.Score != 100 {
		t.Errorf("RaiseTo lowered score to %d", e.Score)
	}
	if gained := e.RaiseTo(4100); gained != 2 || e.Charges != 2 {
		t.Errorf("gained %d charges (total %d), want 2", gained, e.Charges)
	}

	e.Add(100) // 4200, no boundary
	if e.Charges != 2 {
		t.Errorf("charges = %d, want 2", e.Charges)
	}
	if !e.UseCharge() || e.Charges != 1 {
		t.Errorf("UseCharge failed, charges %d", e.Charges)
	}
	e.UseCharge()
	if e.UseCharge() {
		t.Error("UseCharge with no charges must fail")
	}
}

func TestEconomyMultiplier(t *testing.T) {
	cfg := config.DefaultSuperRunConfig().Scoring
	cfg.Multiplier = 1.5
	e := NewEconomy(cfg, 3)
	e.Add(100)
	if e.Score != 150 {
		t.Errorf("score = %d, want 150", e.Score)
	}
}

func TestEconomyLives(t *testing.T) {
	e := NewEconomy(config.DefaultSuperRunConfig().Scoring, 2)

	if e.LoseLife() {
		t.Error("one life left should not be dead")
	}
	if !e.LoseLife() {
		t.Error("zero lives should be dead")
	}
	if !e.LoseLife() || e.Lives != 0 {
		t.Errorf("lives went below zero: %d", e.Lives)
	}

	e.GainLife()
	if e.Lives != 1 || e.Score != 200 {
		t.Errorf("after life up: lives %d score %d, want 1/200", e.Lives, e.Score)
	}
}

func TestTimeScore(t *testing.T) {
	e := NewEconomy(config.DefaultSuperRunConfig().Scoring, 3)
	if got := e.TimeScore(12345); got != 1234 {
		t.Errorf("TimeScore = %d, want 1234", got)
	}
}

func TestCompanionsUnlocked(t *testing.T) {
	e := NewEconomy(config.DefaultSuperRunConfig().Scoring, 3)
	th := []int{2000, 5000}

	for _, tt := range []struct{ score, want int }{{0, 0}, {1999, 0}, {2000, 1}, {4999, 1}, {5000, 2}, {9000, 2}} {
		e.Score = tt.score
		if got := e.CompanionsUnlocked(th); got != tt.want {
			t.Errorf("score %d: unlocked %d, want %d", tt.score, got, tt.want)
		}
	}
}
