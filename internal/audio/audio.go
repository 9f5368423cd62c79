package audio

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

var (
	ErrNotInitialized = errors.New("audio not initialized")
	ErrUnknownSound   = errors.New("unknown sound")
)

var (
	initialized bool
	volume      = 0.3
	muted       bool
)

// Init initializes the audio system
func Init() error {
	if initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Second/30))
	if err != nil {
		return err
	}

	initialized = true
	return nil
}

// Close shuts down the audio system
func Close() {
	if initialized {
		speaker.Close()
		initialized = false
	}
}

// SetVolume sets the master volume, 0 (silent) to 1 (full)
func SetVolume(v float64) {
	volume = math.Max(0, math.Min(1, v))
}

// SetMuted silences every sound without touching the volume
func SetMuted(m bool) {
	muted = m
}

// Play starts the named sound, e.g. "hit3" or "score_goal0"
func Play(name string) error {
	sound, ok := catalog[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownSound, name)
	}
	if !initialized {
		return ErrNotInitialized
	}
	speaker.Play(withVolume(sound()))
	return nil
}

// Has reports whether name is a known sound
func Has(name string) bool {
	_, ok := catalog[name]
	return ok
}

// Device plays sounds through the speaker
type Device struct{}

func (Device) Play(name string) error {
	return Play(name)
}

// withVolume scales s by the master volume. Volume is exponential in
// beep, so the linear level is mapped through log2.
func withVolume(s beep.Streamer) beep.Streamer {
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(volume, 1e-4)),
		Silent:   muted || volume == 0,
	}
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase)
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			// Square wave: positive or negative based on phase
			val := 0.7
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// sweep generates a square wave gliding from one frequency to another
func sweep(from, to float64, duration time.Duration) beep.Streamer {
	total := sampleRate.N(duration)
	remaining := total
	phase := 0.0

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if remaining <= 0 {
				return i, false
			}
			progress := 1 - float64(remaining)/float64(total)
			freq := from + (to-from)*progress
			val := 0.6
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += freq / float64(sampleRate)
			remaining--
		}
		return len(samples), true
	})
}
