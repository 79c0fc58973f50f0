// Package sound plays short synthesized cues for game events.
package sound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/pipe-dodger/internal/core"
)

const sampleRate = beep.SampleRate(44100)

// Cues reacts to game events with sound.
type Cues interface {
	Pass()
	LevelUp()
	GameOver()
	Close()
}

// Nop is a silent Cues.
type Nop struct{}

func (Nop) Pass()     {}
func (Nop) LevelUp()  {}
func (Nop) GameOver() {}
func (Nop) Close()    {}

// Play triggers the cues for every event in ev.
func Play(c Cues, ev core.Event) {
	if ev.Has(core.EventPass) {
		c.Pass()
	}
	if ev.Has(core.EventLevelUp) {
		c.LevelUp()
	}
	if ev.Has(core.EventGameOver) {
		c.GameOver()
	}
}

// Beeper plays cues on the default audio device.
type Beeper struct {
	mu    sync.Mutex
	mixer *beep.Mixer
}

// NewBeeper opens the speaker. The returned Beeper must be closed.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	b := &Beeper{mixer: &beep.Mixer{}}
	speaker.Play(b.mixer)
	return b, nil
}

// Pass plays a short high blip.
func (b *Beeper) Pass() {
	b.tone(880, 60*time.Millisecond)
}

// LevelUp plays a rising pair of tones.
func (b *Beeper) LevelUp() {
	b.tone(660, 80*time.Millisecond)
	b.add(beep.Seq(
		generators.Silence(sampleRate.N(80*time.Millisecond)),
		beep.Take(sampleRate.N(120*time.Millisecond), newSquare(990, 0.15)),
	))
}

// GameOver plays a low buzz.
func (b *Beeper) GameOver() {
	b.add(beep.Take(sampleRate.N(400*time.Millisecond), newSquare(110, 0.2)))
}

// Close stops all sounds and releases the device.
func (b *Beeper) Close() {
	b.mu.Lock()
	b.mixer.Clear()
	b.mu.Unlock()
	speaker.Close()
}

func (b *Beeper) tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return
	}
	b.add(beep.Take(sampleRate.N(d), sine))
}

func (b *Beeper) add(s beep.Streamer) {
	b.mu.Lock()
	defer b.mu.Unlock()
	speaker.Lock()
	b.mixer.Add(s)
	speaker.Unlock()
}

// square is an endless square wave at a fixed volume.
type square struct {
	freq  float64
	vol   float64
	phase float64
}

func newSquare(freq, vol float64) *square {
	return &square{freq: freq, vol: vol}
}

func (s *square) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		v := s.vol
		if s.phase >= 0.5 {
			v = -v
		}
		samples[i][0] = v
		samples[i][1] = v
		s.phase += s.freq / float64(sampleRate)
		s.phase -= math.Floor(s.phase)
	}
	return len(samples), true
}

func (s *square) Err() error { return nil }
