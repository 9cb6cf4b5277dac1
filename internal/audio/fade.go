package audio

import "github.com/gopxl/beep"

// fader passes a stream through until a fade is started, then ramps it
// linearly to silence and ends it. Callers hold speaker.Lock while calling start.
type fader struct {
	streamer beep.Streamer
	fading   bool
	total    int
	left     int
}

func newFader(s beep.Streamer) *fader {
	return &fader{streamer: s}
}

// start begins a fade over n samples. A fade already running is not restarted.
func (f *fader) start(n int) {
	if f.fading {
		return
	}
	f.fading = true
	f.total = n
	f.left = n
}

func (f *fader) Stream(samples [][2]float64) (n int, ok bool) {
	if f.fading && f.left <= 0 {
		return 0, false
	}
	n, ok = f.streamer.Stream(samples)
	if !f.fading {
		return n, ok
	}
	for i := 0; i < n; i++ {
		if f.left <= 0 {
			return i, false
		}
		gain := float64(f.left) / float64(f.total)
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.left--
	}
	return n, ok
}

func (f *fader) Err() error { return f.streamer.Err() }
