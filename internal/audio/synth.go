package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
)

// note is one step of a synthesized cue or melody.
type note struct {
	freq float64 // 0 is a rest
	dur  time.Duration
}

// decay fades a stream linearly to silence over its length.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
}

func newDecay(s beep.Streamer, total int) *decay {
	return &decay{streamer: s, total: total}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if d.position >= d.total {
			return i, false
		}
		vol := 1 - float64(d.position)/float64(d.total)
		samples[i][0] *= vol
		samples[i][1] *= vol
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// tone returns a decaying sine of the given length, or silence for a rest.
func tone(sr beep.SampleRate, n note) beep.Streamer {
	samples := sr.N(n.dur)
	if n.freq <= 0 {
		return beep.Silence(samples)
	}
	sine, err := generators.SineTone(sr, n.freq)
	if err != nil {
		// frequency above Nyquist
		return beep.Silence(samples)
	}
	return newDecay(beep.Take(samples, sine), samples)
}

// sequence plays notes back to back.
func sequence(sr beep.SampleRate, notes []note) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		parts = append(parts, tone(sr, n))
	}
	return beep.Seq(parts...)
}

// Synthesized fallbacks used when no asset directory is given.
var synthCues = map[string][]note{
	CueJump: {
		{freq: 523.25, dur: 40 * time.Millisecond},
		{freq: 783.99, dur: 70 * time.Millisecond},
	},
	CueStomp: {
		{freq: 196.00, dur: 60 * time.Millisecond},
		{freq: 130.81, dur: 80 * time.Millisecond},
	},
	CueGameOver: {
		{freq: 392.00, dur: 180 * time.Millisecond},
		{freq: 349.23, dur: 180 * time.Millisecond},
		{freq: 311.13, dur: 180 * time.Millisecond},
		{freq: 261.63, dur: 500 * time.Millisecond},
	},
}

var synthMusic = []note{
	{freq: 261.63, dur: 150 * time.Millisecond},
	{freq: 329.63, dur: 150 * time.Millisecond},
	{freq: 392.00, dur: 150 * time.Millisecond},
	{freq: 523.25, dur: 150 * time.Millisecond},
	{freq: 0, dur: 150 * time.Millisecond},
	{freq: 392.00, dur: 150 * time.Millisecond},
	{freq: 440.00, dur: 300 * time.Millisecond},
	{freq: 0, dur: 150 * time.Millisecond},
	{freq: 349.23, dur: 150 * time.Millisecond},
	{freq: 440.00, dur: 150 * time.Millisecond},
	{freq: 523.25, dur: 150 * time.Millisecond},
	{freq: 392.00, dur: 450 * time.Millisecond},
	{freq: 0, dur: 300 * time.Millisecond},
}
