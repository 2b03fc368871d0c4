package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/asparagus/constants"
)

// Cue identifies a sound effect
type Cue int

const (
	CueStart  Cue = iota // round started
	CueFall              // round lost
	CueRewind            // recovery started
)

func (c Cue) String() string {
	switch c {
	case CueStart:
		return "start"
	case CueFall:
		return "fall"
	case CueRewind:
		return "rewind"
	default:
		return "unknown"
	}
}

// Duration returns the cue length
func (c Cue) Duration() time.Duration {
	switch c {
	case CueStart:
		return constants.StartChimeDuration
	case CueFall:
		return constants.FallSoundDuration
	case CueRewind:
		return constants.RewindSoundDuration
	default:
		return 0
	}
}

// NewCue builds a finite streamer for the cue at the given master volume
func NewCue(c Cue, rate beep.SampleRate, volume float64, rng *rand.Rand) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueStart:
		s = startChime(rate)
	case CueFall:
		s = fallCrash(rate, rng)
	case CueRewind:
		s = rewindSweep(rate)
	default:
		return nil
	}
	return newVolume(s, volume)
}

// startChime is a fifth played over the base tone
func startChime(rate beep.SampleRate) beep.Streamer {
	half := constants.StartChimeDuration / 2
	first := toneOrSilence(rate, constants.StartChimeFreq, half)
	second := toneOrSilence(rate, constants.StartChimeFreq*1.5, constants.StartChimeDuration-half)
	return newEnvelope(beep.Seq(first, second), constants.StartChimeDuration, 5*time.Millisecond, 60*time.Millisecond, rate)
}

// fallCrash is a crackle over a low rumble decaying quickly
func fallCrash(rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	return &crashGenerator{
		rate:  rate,
		total: rate.N(constants.FallSoundDuration),
		rng:   rng,
	}
}

// rewindSweep glides down from the start to the end pitch
func rewindSweep(rate beep.SampleRate) beep.Streamer {
	sweep := &sweepGenerator{
		rate:  rate,
		from:  constants.RewindStartFreq,
		to:    constants.RewindEndFreq,
		total: rate.N(constants.RewindSoundDuration),
	}
	return newEnvelope(sweep, constants.RewindSoundDuration, 20*time.Millisecond, 120*time.Millisecond, rate)
}

func toneOrSilence(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	tone, err := generators.SineTone(rate, freq)
	if err != nil {
		// Pitch above Nyquist for this rate
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), tone)
}

// newVolume maps a linear volume onto effects.Volume
// math.Log2(0) is -Inf, so zero volume is silent instead
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// crashGenerator mixes noise with a rumble under an exponential decay
type crashGenerator struct {
	rate  beep.SampleRate
	pos   int
	total int
	rng   *rand.Rand
}

func (g *crashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.rate)
		env := math.Exp(-t * 9)

		noise := g.rng.Float64()*2 - 1
		rumble := 0.35 * math.Sin(2*math.Pi*constants.FallRumbleFreq*t)
		v := env * (0.25*noise + rumble)

		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *crashGenerator) Err() error { return nil }

// sweepGenerator is a sine whose pitch moves linearly between two frequencies
type sweepGenerator struct {
	rate     beep.SampleRate
	from, to float64
	phase    float64
	pos      int
	total    int
}

func (g *sweepGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		k := float64(g.pos) / float64(g.total)
		freq := g.from + (g.to-g.from)*k
		v := 0.4 * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = v
		samples[i][1] = v

		g.phase += freq / float64(g.rate)
		g.phase -= math.Floor(g.phase)
		g.pos++
	}
	return len(samples), true
}

func (g *sweepGenerator) Err() error { return nil }

// envelope applies linear attack and release to a stream of known length
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }
