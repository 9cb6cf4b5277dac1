// Package audio plays Super Run's sound cues and background music through
// the beep speaker. Every failure is logged and leaves the game silent.
package audio

import (
	"fmt"
	"io"
	"math"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Options configures the player.
type Options struct {
	AssetsDir string  // directory with jump.wav, stomp.wav, gameover.wav, bgm.wav
	Mute      bool    // never open the speaker
	Volume    float64 // 0..1 master volume, 0 means default
}

// Player implements the game's audio collaborator on top of beep.
type Player struct {
	mu     sync.Mutex
	opts   Options
	logger *log.Logger
	bank   *Bank
	mixer  *beep.Mixer
	music  *fader
	ready  bool
}

// NewPlayer creates a player. Nothing is played until Start.
func NewPlayer(opts Options, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 0.6
	}
	return &Player{
		opts:   opts,
		logger: logger,
		mixer:  &beep.Mixer{},
	}
}

// Start loads the sounds, opens the speaker and starts the music loop.
// On error the player stays silent and remains safe to use.
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready || p.opts.Mute {
		return nil
	}

	p.bank = LoadBank(p.opts.AssetsDir, sampleRate, p.logger)

	// Initialize speaker with sample rate and buffer size
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		p.logger.Warn("audio disabled", "err", err)
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true

	music := p.bank.Music()
	p.music = newFader(beep.Loop(-1, music.Streamer(0, music.Len())))
	speaker.Lock()
	p.mixer.Add(volume(p.music, p.opts.Volume*0.5))
	speaker.Unlock()

	p.logger.Debug("audio started", "assets", p.opts.AssetsDir)
	return nil
}

// PlayCue plays a named cue once. Unknown names and a silent player do nothing.
func (p *Player) PlayCue(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	buf, ok := p.bank.Cue(name)
	if !ok {
		p.logger.Debug("unknown cue", "cue", name)
		return
	}
	speaker.Lock()
	p.mixer.Add(volume(buf.Streamer(0, buf.Len()), p.opts.Volume))
	speaker.Unlock()
}

// FadeMusic fades the music loop out over d and stops it.
func (p *Player) FadeMusic(d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready || p.music == nil {
		return
	}
	speaker.Lock()
	p.music.start(sampleRate.N(d))
	speaker.Unlock()
}

// Ready reports whether sound is actually playing.
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Close stops every sound.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	// beep has no speaker close; clearing the mixer silences it
	p.ready = false
}

// volume scales a stream; math.Log2(0) is -Inf so zero means silent.
func volume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
