package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/idle-city/core"
	"github.com/lixenwraith/idle-city/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with a linear attack and release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(0, total-att-rel),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := range n {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly; math.Log2(0) is -Inf so zero is silence
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// tone is one enveloped note with a short attack and a release over the last third
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, 5*time.Millisecond, d/3, rate)
}

// Cue generators

// createPurchaseSound is a two-note chime, B5 then E6
func createPurchaseSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SoundPurchaseDuration
	return beep.Seq(
		tone(987.77, d*4/9, WaveSquare, rate),
		tone(1318.51, d*5/9, WaveSquare, rate),
	)
}

// createDeniedSound is a low harsh buzz
func createDeniedSound(rate beep.SampleRate) beep.Streamer {
	return tone(100.0, parameter.SoundDeniedDuration, WaveSaw, rate)
}

// createOreBreakSound is a noise crack over a low rumble
func createOreBreakSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SoundOreDuration
	return beep.Mix(
		newVolume(tone(0, d, WaveNoise, rate), 0.6),
		newVolume(tone(80, d, WaveSine, rate), 0.4),
	)
}

// createHitSound is a short noise thud
func createHitSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SoundHitDuration
	return NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, time.Millisecond, d*3/4, rate)
}

// createHealSound is a bell, A5 with its octave
func createHealSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SoundHealDuration
	return beep.Mix(
		newVolume(tone(880.0, d, WaveSine, rate), 0.7),
		newVolume(NewEnvelope(NewOscillator(1760.0, d, WaveSine, rate), d, 5*time.Millisecond, d*2/3, rate), 0.3),
	)
}

// createGlitchSound is detuned square noise for the world change
func createGlitchSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SoundGlitchDuration
	step := d / 6
	notes := make([]beep.Streamer, 0, 6)
	for _, f := range []float64{220, 277, 185, 311, 147, 233} {
		notes = append(notes, tone(f, step, WaveSquare, rate))
	}
	return beep.Mix(
		newVolume(beep.Seq(notes...), 0.6),
		newVolume(tone(0, d, WaveNoise, rate), 0.3),
	)
}

// createVictorySound is a rising C major arpeggio
func createVictorySound(rate beep.SampleRate) beep.Streamer {
	step := parameter.SoundVictoryDuration / 4
	return beep.Seq(
		tone(523.25, step, WaveSine, rate),
		tone(659.25, step, WaveSine, rate),
		tone(783.99, step, WaveSine, rate),
		tone(1046.50, step, WaveSine, rate),
	)
}

// GetSoundEffect returns a fresh unity-gain streamer for the cue, nil for unknown types
func GetSoundEffect(st core.SoundType, rate beep.SampleRate) beep.Streamer {
	switch st {
	case core.SoundPurchase:
		return createPurchaseSound(rate)
	case core.SoundDenied:
		return createDeniedSound(rate)
	case core.SoundOreBreak:
		return createOreBreakSound(rate)
	case core.SoundHit:
		return createHitSound(rate)
	case core.SoundHeal:
		return createHealSound(rate)
	case core.SoundGlitch:
		return createGlitchSound(rate)
	case core.SoundVictory:
		return createVictorySound(rate)
	default:
		return nil
	}
}
