// Package audio plays short tones for game events.
package audio

import (
	"time"

	"github.com/golang/glog"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/pkg/errors"
)

const sampleRate = beep.SampleRate(44100)

// Tone is a plain sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var (
	EatTone   = Tone{Freq: 880, Duration: 60 * time.Millisecond}
	ResetTone = Tone{Freq: 220, Duration: 250 * time.Millisecond}
)

// Beeper implements game.Listener. A Beeper without a speaker stays silent.
type Beeper struct {
	ready bool
	play  func(beep.Streamer)
}

// NewBeeper opens the default audio device.
func NewBeeper() (*Beeper, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Beeper{}, errors.Wrap(err, "initializing speaker")
	}
	return &Beeper{
		ready: true,
		play:  func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

// Silent returns a Beeper that never makes a sound.
func Silent() *Beeper {
	return &Beeper{}
}

func (b *Beeper) FoodEaten(length int) {
	b.playTone(EatTone)
}

func (b *Beeper) SnakeReset(length int) {
	b.playTone(ResetTone)
}

func (b *Beeper) playTone(t Tone) {
	if !b.ready {
		return
	}
	s, err := t.Streamer()
	if err != nil {
		glog.Warningf("tone %.0fHz: %v", t.Freq, err)
		return
	}
	b.play(s)
}

// Streamer renders t at the speaker's sample rate.
func (t Tone) Streamer() (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(t.Duration), sine), nil
}

func (b *Beeper) Close() {
	if b.ready {
		speaker.Close()
		b.ready = false
	}
}
