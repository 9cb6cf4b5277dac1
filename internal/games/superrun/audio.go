package superrun

import "time"

// Sound cue names.
const (
	CueJump     = "jump"
	CueStomp    = "stomp"
	CueGameOver = "gameover"
)

// Audio plays cues and controls the looping music channel.
// Implementations must not block and must swallow their own failures.
type Audio interface {
	PlayCue(name string)
	FadeMusic(d time.Duration)
}

// nopAudio is used when no audio backend is attached.
type nopAudio struct{}

func (nopAudio) PlayCue(string)          {}
func (nopAudio) FadeMusic(time.Duration) {}
