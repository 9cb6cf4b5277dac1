package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Cue names understood by the player. Asset files are named <cue>.wav.
const (
	CueJump     = "jump"
	CueStomp    = "stomp"
	CueGameOver = "gameover"

	musicFile = "bgm.wav"
)

var cueNames = []string{CueJump, CueStomp, CueGameOver}

// Bank holds every cue and the music track, decoded into memory.
type Bank struct {
	sr    beep.SampleRate
	cues  map[string]*beep.Buffer
	music *beep.Buffer
}

// LoadBank decodes the WAV assets in dir at sample rate sr. Missing or
// broken files are logged and replaced with synthesized sounds; an empty
// dir uses synthesized sounds throughout.
func LoadBank(dir string, sr beep.SampleRate, logger *log.Logger) *Bank {
	b := &Bank{sr: sr, cues: make(map[string]*beep.Buffer, len(cueNames))}

	for _, name := range cueNames {
		if dir != "" {
			buf, err := loadWAV(filepath.Join(dir, name+".wav"), sr)
			if err == nil {
				b.cues[name] = buf
				continue
			}
			logger.Warn("cue asset unavailable, using synthesized sound", "cue", name, "err", err)
		}
		b.cues[name] = render(sr, sequence(sr, synthCues[name]))
	}

	if dir != "" {
		buf, err := loadWAV(filepath.Join(dir, musicFile), sr)
		if err == nil {
			b.music = buf
			return b
		}
		logger.Warn("music asset unavailable, using synthesized loop", "err", err)
	}
	b.music = render(sr, sequence(sr, synthMusic))
	return b
}

// Cue returns the decoded cue and whether it exists.
func (b *Bank) Cue(name string) (*beep.Buffer, bool) {
	buf, ok := b.cues[name]
	return buf, ok
}

// Music returns the music track.
func (b *Bank) Music() *beep.Buffer {
	return b.music
}

// loadWAV decodes a WAV file and resamples it to sr.
func loadWAV(path string, sr beep.SampleRate) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: open %s: %w", path, err)
	}

	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	var s beep.Streamer = streamer
	if format.SampleRate != sr {
		s = beep.Resample(4, format.SampleRate, sr, s)
	}
	buf := render(sr, s)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}
	if buf.Len() == 0 {
		return nil, fmt.Errorf("audio: %s: %w", path, errEmpty)
	}
	return buf, nil
}

var errEmpty = errors.New("no samples")

// render drains s into a stereo buffer.
func render(sr beep.SampleRate, s beep.Streamer) *beep.Buffer {
	buf := beep.NewBuffer(beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2})
	buf.Append(s)
	return buf
}
