package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gasup/event"
	"github.com/lixenwraith/gasup/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// Sound identifies a cue
type Sound int

const (
	SoundNone Sound = iota
	SoundShot
	SoundRocket
	SoundImpact
	SoundGas
	SoundGasEmpty
	SoundMilestone
	SoundCrash
	soundCount
)

// SoundFor maps a game event to its cue
func SoundFor(et event.EventType) Sound {
	switch et {
	case event.EventBulletFired:
		return SoundShot
	case event.EventRocketLaunched:
		return SoundRocket
	case event.EventImpact:
		return SoundImpact
	case event.EventGasCollected:
		return SoundGas
	case event.EventGasEmpty:
		return SoundGasEmpty
	case event.EventAltitudeMilestone:
		return SoundMilestone
	case event.EventCrash, event.EventOutOfBounds:
		return SoundCrash
	default:
		return SoundNone
	}
}

// Streamer builds the cue; magnitude only affects SoundImpact
func Streamer(s Sound, rate beep.SampleRate, magnitude float64) beep.Streamer {
	switch s {
	case SoundShot:
		return CreateShotSound(rate)
	case SoundRocket:
		return CreateRocketSound(rate)
	case SoundImpact:
		return CreateImpactSound(rate, magnitude)
	case SoundGas:
		return CreateGasSound(rate)
	case SoundGasEmpty:
		return CreateGasEmptySound(rate)
	case SoundMilestone:
		return CreateMilestoneSound(rate)
	case SoundCrash:
		return CreateCrashSound(rate)
	default:
		return nil
	}
}

// Player turns game events into sound cues
// Implements engine.EventSink; without an initialised speaker every call is a no-op
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      *effects.Volume
	initialized bool
	muted       bool
	lastPlayed  [soundCount]time.Time
	now         func() time.Time
	play        func(beep.Streamer)
}

func NewPlayer() *Player {
	p := &Player{
		mixer: &beep.Mixer{},
		now:   time.Now,
	}
	p.master = &effects.Volume{Streamer: p.mixer, Base: 2, Volume: log2(parameter.AudioMasterVolume)}
	p.play = func(s beep.Streamer) {
		speaker.Lock()
		p.mixer.Add(s)
		speaker.Unlock()
	}
	return p
}

// Initialize opens the speaker; failure leaves the player silent
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferDuration)); err != nil {
		return err
	}
	speaker.Play(p.master)
	p.initialized = true
	return nil
}

// Close stops every sound and releases the speaker
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.initialized = false
}

// SetMuted silences or restores playback
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
	if p.initialized {
		speaker.Lock()
		p.master.Silent = muted
		speaker.Unlock()
	}
}

// ToggleMuted flips the mute state and returns the new state
func (p *Player) ToggleMuted() bool {
	p.mu.Lock()
	muted := !p.muted
	p.mu.Unlock()
	p.SetMuted(muted)
	return muted
}

// Handle plays the cue for ev, rate-limited per cue
func (p *Player) Handle(ev event.GameEvent) {
	s := SoundFor(ev.Type)
	if s == SoundNone {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized || p.muted {
		return
	}

	now := p.now()
	if now.Sub(p.lastPlayed[s]) < parameter.MinSoundGap {
		return
	}
	p.lastPlayed[s] = now

	magnitude := 1.0
	if ip, ok := ev.Payload.(*event.ImpactPayload); ok {
		magnitude = ip.Magnitude
	}
	if st := Streamer(s, sampleRate, magnitude); st != nil {
		p.play(st)
	}
}

func log2(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return math.Log2(v)
}
