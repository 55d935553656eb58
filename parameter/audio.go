package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 50 * time.Millisecond

	// MinSoundGap between consecutive plays of the same sound
	MinSoundGap = 50 * time.Millisecond
)

// Gatling shot: short square blip
const (
	ShotSoundDuration = 40 * time.Millisecond
	ShotSoundAttack   = 2 * time.Millisecond
	ShotSoundRelease  = 25 * time.Millisecond
	ShotSoundFreq     = 660.0
)

// Rocket launch: falling saw sweep
const (
	RocketSoundDuration  = 350 * time.Millisecond
	RocketSoundAttack    = 10 * time.Millisecond
	RocketSoundRelease   = 200 * time.Millisecond
	RocketSoundStartFreq = 320.0
	RocketSoundEndFreq   = 90.0
)

// Impact rumble: noise over a low sine, length scales with magnitude
const (
	ImpactSoundMaxDuration = 400 * time.Millisecond
	ImpactRumbleFreq       = 70.0
	ImpactNoiseAmplitude   = 0.3
	ImpactRumbleAmplitude  = 0.4
)

// Gas pickup: two-note chime
const (
	GasSoundNote1Duration = 80 * time.Millisecond
	GasSoundNote2Duration = 220 * time.Millisecond
	GasSoundAttack        = 5 * time.Millisecond
	GasSoundNote1Release  = 40 * time.Millisecond
	GasSoundNote2Release  = 180 * time.Millisecond
	GasSoundNote1Freq     = 987.77
	GasSoundNote2Freq     = 1318.51
)

// Empty tank: low buzz
const (
	GasEmptySoundDuration = 300 * time.Millisecond
	GasEmptySoundAttack   = 10 * time.Millisecond
	GasEmptySoundRelease  = 120 * time.Millisecond
	GasEmptySoundFreq     = 110.0
)

// Altitude milestone: bell
const (
	MilestoneSoundDuration   = 600 * time.Millisecond
	MilestoneSoundAttack     = 5 * time.Millisecond
	MilestoneSoundRelease    = 550 * time.Millisecond
	MilestoneOvertoneRelease = 200 * time.Millisecond
	MilestoneSoundFreq       = 880.0
)

// Crash: long crackle
const (
	CrashSoundDuration = 900 * time.Millisecond
	CrashDecayRate     = 4.0
)

// Per-sound mix levels
const (
	AudioMasterVolume = 0.6
	ShotVolume        = 0.25
	RocketVolume      = 0.5
	ImpactVolume      = 0.8
	GasVolume         = 0.6
	GasEmptyVolume    = 0.6
	MilestoneVolume   = 0.7
	CrashVolume       = 0.9
)
