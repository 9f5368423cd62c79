package audio

import (
	"time"

	"github.com/gopxl/beep/v2"
)

// catalog maps sound names to generators. Sounds with several variants
// are numbered from 0 and the game picks one at random.
var catalog = map[string]func() beep.Streamer{
	// Bat hits, slightly detuned from each other
	"hit0": func() beep.Streamer { return squareWave(880, 50*time.Millisecond) },
	"hit1": func() beep.Streamer { return squareWave(860, 50*time.Millisecond) },
	"hit2": func() beep.Streamer { return squareWave(900, 50*time.Millisecond) },
	"hit3": func() beep.Streamer { return squareWave(840, 55*time.Millisecond) },
	"hit4": func() beep.Streamer { return squareWave(920, 45*time.Millisecond) },

	// Pitch rises with ball speed
	"hit_slow0":     func() beep.Streamer { return tone(220, 60*time.Millisecond) },
	"hit_medium0":   func() beep.Streamer { return tone(330, 60*time.Millisecond) },
	"hit_fast0":     func() beep.Streamer { return tone(440, 60*time.Millisecond) },
	"hit_veryfast0": func() beep.Streamer { return tone(660, 60*time.Millisecond) },
	"hit_synth0":    func() beep.Streamer { return sweep(1200, 600, 40*time.Millisecond) },

	// Wall bounces
	"bounce0":       func() beep.Streamer { return squareWave(440, 30*time.Millisecond) },
	"bounce1":       func() beep.Streamer { return squareWave(430, 30*time.Millisecond) },
	"bounce2":       func() beep.Streamer { return squareWave(450, 30*time.Millisecond) },
	"bounce3":       func() beep.Streamer { return squareWave(420, 35*time.Millisecond) },
	"bounce4":       func() beep.Streamer { return squareWave(460, 25*time.Millisecond) },
	"bounce_synth0": func() beep.Streamer { return sweep(300, 500, 30*time.Millisecond) },

	// Descending tone for score
	"score_goal0": func() beep.Streamer {
		return beep.Seq(
			squareWave(660, 100*time.Millisecond),
			squareWave(440, 100*time.Millisecond),
			squareWave(330, 150*time.Millisecond),
		)
	},

	// Menu selection
	"up0":   func() beep.Streamer { return sweep(400, 800, 80*time.Millisecond) },
	"down0": func() beep.Streamer { return sweep(800, 400, 80*time.Millisecond) },
}
