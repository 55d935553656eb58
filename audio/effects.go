package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping linearly to endFreq
type oscillator struct {
	freq     float64
	endFreq  float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    vmath.Source
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding from freq to endFreq over duration
func NewSweep(freq, endFreq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
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
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.duration)
		freq := vmath.Lerp(o.freq, o.endFreq, progress)
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
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

// NewEnvelope creates an attack/sustain/release envelope
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// rumble is decaying noise over a low sine, used for hits and the crash
type rumble struct {
	rate     beep.SampleRate
	pos      int
	total    int
	decay    float64
	freq     float64
	noiseAmp float64
	lowAmp   float64
	noise    vmath.Source
}

func newRumble(rate beep.SampleRate, duration time.Duration, decay float64) *rumble {
	return &rumble{
		rate:     rate,
		total:    rate.N(duration),
		decay:    decay,
		freq:     parameter.ImpactRumbleFreq,
		noiseAmp: parameter.ImpactNoiseAmplitude,
		lowAmp:   parameter.ImpactRumbleAmplitude,
		noise:    vmath.NewFastRand(uint64(time.Now().UnixNano())),
	}
}

func (g *rumble) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.total {
			return i, i > 0
		}
		t := float64(g.pos) / float64(g.rate)
		env := math.Exp(-t * g.decay)
		noise := g.noise.Float64()*2 - 1
		low := math.Sin(2 * math.Pi * g.freq * t)
		sample := env * (g.noiseAmp*noise + g.lowAmp*low)

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *rumble) Err() error { return nil }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so zero volume is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// Sound effect generators

// CreateShotSound is the gatling blip
func CreateShotSound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.ShotSoundFreq, parameter.ShotSoundDuration, WaveSquare, rate)
	shaped := NewEnvelope(osc, parameter.ShotSoundDuration, parameter.ShotSoundAttack, parameter.ShotSoundRelease, rate)
	return newVolume(shaped, parameter.ShotVolume)
}

// CreateRocketSound is a falling saw sweep for a launch
func CreateRocketSound(rate beep.SampleRate) beep.Streamer {
	osc := NewSweep(parameter.RocketSoundStartFreq, parameter.RocketSoundEndFreq, parameter.RocketSoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.RocketSoundDuration, parameter.RocketSoundAttack, parameter.RocketSoundRelease, rate)
	return newVolume(shaped, parameter.RocketVolume)
}

// CreateImpactSound is a rumble whose length and level follow magnitude in [0, 1]
func CreateImpactSound(rate beep.SampleRate, magnitude float64) beep.Streamer {
	magnitude = vmath.Clamp(magnitude, 0.1, 1)
	d := time.Duration(float64(parameter.ImpactSoundMaxDuration) * magnitude)
	return newVolume(newRumble(rate, d, 8), parameter.ImpactVolume*magnitude)
}

// CreateGasSound is a two-note chime for a pickup
func CreateGasSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(parameter.GasSoundNote1Freq, parameter.GasSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, parameter.GasSoundNote1Duration, parameter.GasSoundAttack, parameter.GasSoundNote1Release, rate)

	n2 := NewOscillator(parameter.GasSoundNote2Freq, parameter.GasSoundNote2Duration, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, parameter.GasSoundNote2Duration, parameter.GasSoundAttack, parameter.GasSoundNote2Release, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), parameter.GasVolume)
}

// CreateGasEmptySound is a low buzz when the tank runs dry
func CreateGasEmptySound(rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(parameter.GasEmptySoundFreq, parameter.GasEmptySoundDuration, WaveSaw, rate)
	shaped := NewEnvelope(osc, parameter.GasEmptySoundDuration, parameter.GasEmptySoundAttack, parameter.GasEmptySoundRelease, rate)
	return newVolume(shaped, parameter.GasEmptyVolume)
}

// CreateMilestoneSound is a bell with an octave overtone
func CreateMilestoneSound(rate beep.SampleRate) beep.Streamer {
	n := rate.N(parameter.MilestoneSoundDuration)
	fund, err := generators.SineTone(rate, parameter.MilestoneSoundFreq)
	if err != nil {
		return nil
	}
	over, err := generators.SineTone(rate, 2*parameter.MilestoneSoundFreq)
	if err != nil {
		return nil
	}

	fundShaped := NewEnvelope(beep.Take(n, fund), parameter.MilestoneSoundDuration,
		parameter.MilestoneSoundAttack, parameter.MilestoneSoundRelease, rate)
	overShaped := NewEnvelope(beep.Take(n, over), parameter.MilestoneSoundDuration,
		parameter.MilestoneSoundAttack, parameter.MilestoneOvertoneRelease, rate)

	mixed := beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
	return newVolume(mixed, parameter.MilestoneVolume)
}

// CreateCrashSound is a long decaying crackle
func CreateCrashSound(rate beep.SampleRate) beep.Streamer {
	return newVolume(newRumble(rate, parameter.CrashSoundDuration, parameter.CrashDecayRate), parameter.CrashVolume)
}
