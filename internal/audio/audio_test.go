package audio

import (
	"errors"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"
)

// drain streams s to the end and returns the number of samples
func drain(s beep.Streamer) int {
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok || total > int(sampleRate)*2 {
			return total
		}
	}
}

func TestPlay_UnknownSound(t *testing.T) {
	err := Play("kazoo0")
	if !errors.Is(err, ErrUnknownSound) {
		t.Errorf("expected ErrUnknownSound, got %v", err)
	}
}

func TestPlay_NotInitialized(t *testing.T) {
	err := Device{}.Play("hit0")
	if !errors.Is(err, ErrNotInitialized) {
		t.Errorf("expected ErrNotInitialized, got %v", err)
	}
}

func TestCatalog_GameSounds(t *testing.T) {
	names := []string{
		"hit0", "hit1", "hit2", "hit3", "hit4",
		"hit_slow0", "hit_medium0", "hit_fast0", "hit_veryfast0", "hit_synth0",
		"bounce0", "bounce1", "bounce2", "bounce3", "bounce4", "bounce_synth0",
		"score_goal0", "up0", "down0",
	}
	for _, name := range names {
		if !Has(name) {
			t.Errorf("missing sound %s", name)
		}
	}
}

func TestCatalog_SoundsEnd(t *testing.T) {
	for name, sound := range catalog {
		n := drain(sound())
		if n == 0 {
			t.Errorf("%s produced no samples", name)
		}
		if n > int(sampleRate) {
			t.Errorf("%s longer than a second (%d samples)", name, n)
		}
	}
}

func TestWithVolume_Muted(t *testing.T) {
	SetMuted(true)
	defer SetMuted(false)

	s := withVolume(squareWave(440, 10*time.Millisecond))
	buf := make([][2]float64, 64)
	s.Stream(buf)

	for i, sample := range buf {
		if sample[0] != 0 || sample[1] != 0 {
			t.Fatalf("expected silence when muted, sample %d = %v", i, sample)
		}
	}
}

func TestSetVolume_Clamps(t *testing.T) {
	defer SetVolume(0.3)

	SetVolume(2)
	if volume != 1 {
		t.Errorf("expected volume clamped to 1, got %g", volume)
	}
	SetVolume(-1)
	if volume != 0 {
		t.Errorf("expected volume clamped to 0, got %g", volume)
	}
}
