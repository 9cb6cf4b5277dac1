package superrun

import (
	"math/rand"

	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
)

// ItemKind identifies a power-up.
type ItemKind int

const (
	ItemStar ItemKind = iota
	ItemLifeBonus
)

// String returns the item name.
func (k ItemKind) String() string {
	switch k {
	case ItemStar:
		return "star"
	case ItemLifeBonus:
		return "life-bonus"
	default:
		return "unknown"
	}
}

// Item is a collectible power-up.
type Item struct {
	Kind  ItemKind
	Box   core.Box
	Speed float64 // spawn speed; only life bonuses move at it
}

// Advance moves the item one tick and reports whether it is still on the field.
// Stars follow the current world speed, life bonuses keep their spawn speed.
func (it *Item) Advance(worldSpeed float64) bool {
	speed := worldSpeed
	if it.Kind == ItemLifeBonus {
		speed = it.Speed
	}
	it.Box.Left -= speed
	return it.Box.Right() >= 0
}

// PlaceStar picks a star position off the right edge that does not overlap
// a live obstacle. After the configured number of failed attempts it
// returns the fixed fallback position.
func PlaceStar(rng *rand.Rand, cfg config.SuperRunItems, screenW, groundY float64, obstacles []Obstacle) core.Box {
	size := cfg.StarSize
	for attempt := 0; attempt < cfg.PlacementAttempts; attempt++ {
		left := screenW + randRange(rng, 0, cfg.StarJitter)
		bottom := groundY - randRange(rng, cfg.StarMinLift, cfg.StarMaxLift)
		candidate := core.BoxFromBottom(left, bottom, size, size)
		if !overlapsAny(candidate, obstacles) {
			return candidate
		}
	}
	return core.BoxFromBottom(screenW+cfg.FallbackOffset, groundY-cfg.FallbackLift, size, size)
}

// overlapsAny reports whether box intersects a non-destroyed obstacle.
func overlapsAny(box core.Box, obstacles []Obstacle) bool {
	for i := range obstacles {
		if obstacles[i].Destroyed {
			continue
		}
		if box.Intersects(obstacles[i].Box) {
			return true
		}
	}
	return false
}

// SpawnLifeBonus rolls the bonus chance and, on success, returns a life bonus
// resting on the ground just off the right edge.
func SpawnLifeBonus(rng *rand.Rand, cfg config.SuperRunItems, screenW, groundY, speed float64) (Item, bool) {
	if rng.Float64() >= cfg.LifeBonusChance {
		return Item{}, false
	}
	left := screenW + randRange(rng, 0, cfg.LifeBonusJitter)
	return Item{
		Kind:  ItemLifeBonus,
		Box:   core.BoxFromBottom(left, groundY, cfg.LifeBonusSize, cfg.LifeBonusSize),
		Speed: speed,
	}, true
}
