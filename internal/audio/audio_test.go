package audio

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// constant streams a fixed value on both channels forever.
type constant float64

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = float64(c)
		samples[i][1] = float64(c)
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestToneLengthAndRange(t *testing.T) {
	sr := beep.SampleRate(8000)
	samples := drain(tone(sr, note{freq: 440, dur: 100 * time.Millisecond}))

	if len(samples) != sr.N(100*time.Millisecond) {
		t.Fatalf("samples = %d, want %d", len(samples), sr.N(100*time.Millisecond))
	}
	for i, s := range samples {
		if s[0] < -1 || s[0] > 1 {
			t.Fatalf("sample %d out of range: %v", i, s[0])
		}
	}
	if last := samples[len(samples)-1][0]; last > 0.01 || last < -0.01 {
		t.Errorf("tone should decay to silence, last sample %v", last)
	}
}

func TestRestIsSilent(t *testing.T) {
	sr := beep.SampleRate(8000)
	for _, s := range drain(tone(sr, note{dur: 50 * time.Millisecond})) {
		if s[0] != 0 || s[1] != 0 {
			t.Fatal("rest produced sound")
		}
	}
}

func TestFader(t *testing.T) {
	f := newFader(constant(1))

	buf := make([][2]float64, 64)
	if n, ok := f.Stream(buf); n != 64 || !ok || buf[63][0] != 1 {
		t.Fatalf("unfaded stream: n=%d ok=%v last=%v", n, ok, buf[63][0])
	}

	f.start(100)
	f.start(10) // ignored while fading
	samples := drain(f)
	if len(samples) != 100 {
		t.Fatalf("fade length = %d, want 100", len(samples))
	}
	for i := 1; i < len(samples); i++ {
		if samples[i][0] > samples[i-1][0] {
			t.Fatalf("gain rose at sample %d", i)
		}
	}
	if n, ok := f.Stream(buf); n != 0 || ok {
		t.Errorf("faded stream should stay ended, n=%d ok=%v", n, ok)
	}
}

func TestLoadBankSynthesized(t *testing.T) {
	b := LoadBank("", beep.SampleRate(8000), log.New(io.Discard))
	for _, name := range cueNames {
		buf, ok := b.Cue(name)
		if !ok || buf.Len() == 0 {
			t.Errorf("cue %s missing", name)
		}
	}
	if b.Music() == nil || b.Music().Len() == 0 {
		t.Error("music missing")
	}
	if _, ok := b.Cue("nope"); ok {
		t.Error("unknown cue should not exist")
	}
}

func TestLoadBankFromAssets(t *testing.T) {
	sr := beep.SampleRate(8000)
	dir := t.TempDir()

	// 0.25 s of a constant signal as jump.wav
	f, err := os.Create(filepath.Join(dir, "jump.wav"))
	if err != nil {
		t.Fatal(err)
	}
	format := beep.Format{SampleRate: sr, NumChannels: 2, Precision: 2}
	if err := wav.Encode(f, beep.Take(sr.N(250*time.Millisecond), constant(0.5)), format); err != nil {
		t.Fatalf("encode: %v", err)
	}
	f.Close()

	// A broken stomp.wav falls back to the synthesized cue
	if err := os.WriteFile(filepath.Join(dir, "stomp.wav"), []byte("not a wav"), 0o644); err != nil {
		t.Fatal(err)
	}

	b := LoadBank(dir, sr, log.New(io.Discard))

	jump, _ := b.Cue(CueJump)
	if jump.Len() != sr.N(250*time.Millisecond) {
		t.Errorf("jump len = %d, want %d", jump.Len(), sr.N(250*time.Millisecond))
	}

	stomp, _ := b.Cue(CueStomp)
	synth := render(sr, sequence(sr, synthCues[CueStomp]))
	if stomp.Len() != synth.Len() {
		t.Errorf("stomp len = %d, want synthesized %d", stomp.Len(), synth.Len())
	}
	if b.Music().Len() == 0 {
		t.Error("missing bgm.wav should fall back to the synthesized loop")
	}
}

func TestLoadWAVErrors(t *testing.T) {
	if _, err := loadWAV(filepath.Join(t.TempDir(), "missing.wav"), 8000); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSilentPlayer(t *testing.T) {
	p := NewPlayer(Options{Mute: true}, nil)
	if err := p.Start(); err != nil {
		t.Fatalf("muted start: %v", err)
	}
	if p.Ready() {
		t.Error("muted player must not open the speaker")
	}

	// Safe no-ops
	p.PlayCue(CueJump)
	p.FadeMusic(time.Second)
	p.Close()
}
