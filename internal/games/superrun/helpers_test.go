package superrun

import (
	"time"

	"github.com/vovakirdan/superrun/internal/config"
	"github.com/vovakirdan/superrun/internal/core"
)

func boxAt(left, top, w, h float64) core.Box {
	return core.NewBox(left, top, w, h)
}

// quietConfig returns defaults with every spawn timer pushed out of reach.
func quietConfig() config.SuperRunConfig {
	cfg := config.DefaultSuperRunConfig()
	cfg.Timers.ObstacleMs = 1e12
	cfg.Timers.BonusMs = 1e12
	cfg.Timers.StarMs = 1e12
	cfg.Timers.EventMs = 1e12
	return cfg
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func hasEvent(events []string, name string) bool {
	for _, e := range events {
		if e == name {
			return true
		}
	}
	return false
}

// recordingAudio remembers every call.
type recordingAudio struct {
	cues  []string
	fades []time.Duration
}

func (r *recordingAudio) PlayCue(name string)       { r.cues = append(r.cues, name) }
func (r *recordingAudio) FadeMusic(d time.Duration) { r.fades = append(r.fades, d) }
