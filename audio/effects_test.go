package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns every sample
func drain(t *testing.T, s beep.Streamer, limit int) [][2]float64 {
	t.Helper()
	var out [][2]float64
	buf := make([][2]float64, 512)
	for len(out) < limit {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
	t.Fatalf("Streamer did not finish within %d samples", limit)
	return nil
}

func TestOscillatorWaveRanges(t *testing.T) {
	tests := []struct {
		name string
		wave WaveType
	}{
		{"Sine", WaveSine},
		{"Square", WaveSquare},
		{"Saw", WaveSaw},
		{"Noise", WaveNoise},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			osc := NewOscillator(220, 50*time.Millisecond, tt.wave, testRate)
			samples := make([][2]float64, 100)
			n, ok := osc.Stream(samples)
			if !ok || n != 100 {
				t.Fatalf("Expected 100 samples, got n=%d ok=%v", n, ok)
			}
			for i := 0; i < n; i++ {
				if samples[i][0] < -1 || samples[i][0] > 1 {
					t.Errorf("Sample %d out of range: %f", i, samples[i][0])
				}
				if samples[i][0] != samples[i][1] {
					t.Errorf("Sample %d: channels differ", i)
				}
			}
			if osc.Err() != nil {
				t.Errorf("Expected no error, got %v", osc.Err())
			}
		})
	}
}

func TestOscillatorSquareLevels(t *testing.T) {
	osc := NewOscillator(220, 50*time.Millisecond, WaveSquare, testRate)
	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square wave sample %d should be ±1, got %f", i, v)
		}
	}
}

func TestOscillatorDuration(t *testing.T) {
	duration := 10 * time.Millisecond
	expected := testRate.N(duration)
	osc := NewOscillator(440, duration, WaveSine, testRate)

	samples := make([][2]float64, expected*2)
	n, ok := osc.Stream(samples)
	if n != expected || !ok {
		t.Errorf("Expected %d samples with ok=true, got %d ok=%v", expected, n, ok)
	}

	n2, ok2 := osc.Stream(make([][2]float64, 10))
	if ok2 || n2 != 0 {
		t.Errorf("Expected drained oscillator, got n=%d ok=%v", n2, ok2)
	}
}

func TestSweepLowersPitch(t *testing.T) {
	// Count zero crossings in the first and last quarter of a falling sweep
	d := 200 * time.Millisecond
	samples := drain(t, NewSweep(800, 100, d, WaveSine, testRate), testRate.N(d)+1)
	q := len(samples) / 4

	crossings := func(s [][2]float64) int {
		c := 0
		for i := 1; i < len(s); i++ {
			if (s[i-1][0] < 0) != (s[i][0] < 0) {
				c++
			}
		}
		return c
	}
	if head, tail := crossings(samples[:q]), crossings(samples[len(samples)-q:]); head <= tail {
		t.Errorf("Expected more crossings early than late, got %d then %d", head, tail)
	}
}

func TestEnvelopeAttackRamp(t *testing.T) {
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond
	osc := NewOscillator(100, duration, WaveSquare, testRate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, testRate)

	samples := make([][2]float64, testRate.N(attack))
	n, ok := env.Stream(samples)
	if !ok {
		t.Fatal("Expected envelope to stream")
	}
	if first, last := math.Abs(samples[0][0]), math.Abs(samples[n-1][0]); first >= last {
		t.Errorf("Expected attack to ramp up, got first=%f last=%f", first, last)
	}
}

func TestEnvelopeReleaseEndsQuiet(t *testing.T) {
	duration := 60 * time.Millisecond
	osc := NewOscillator(100, duration, WaveSquare, testRate)
	env := NewEnvelope(osc, duration, 5*time.Millisecond, 30*time.Millisecond, testRate)

	samples := drain(t, env, testRate.N(duration)+1)
	if last := math.Abs(samples[len(samples)-1][0]); last > 0.01 {
		t.Errorf("Expected release to end near silence, got %f", last)
	}
}

func TestSoundsAreFinite(t *testing.T) {
	limit := testRate.N(2 * time.Second)
	for s := SoundShot; s < soundCount; s++ {
		st := Streamer(s, testRate, 1)
		if st == nil {
			t.Fatalf("Expected a streamer for sound %d", s)
		}
		samples := drain(t, st, limit)
		if len(samples) == 0 {
			t.Errorf("Sound %d produced no samples", s)
		}
		peak := 0.0
		for _, v := range samples {
			peak = math.Max(peak, math.Abs(v[0]))
		}
		if peak == 0 || peak > 1.5 {
			t.Errorf("Sound %d has implausible peak %f", s, peak)
		}
	}
}

func TestStreamerUnknown(t *testing.T) {
	if Streamer(SoundNone, testRate, 1) != nil {
		t.Error("Expected nil for SoundNone")
	}
	if Streamer(Sound(999), testRate, 1) != nil {
		t.Error("Expected nil for an unknown sound")
	}
}

func TestImpactScalesWithMagnitude(t *testing.T) {
	limit := testRate.N(time.Second)
	soft := drain(t, CreateImpactSound(testRate, 0.2), limit)
	hard := drain(t, CreateImpactSound(testRate, 1), limit)
	if len(soft) >= len(hard) {
		t.Errorf("Expected a harder hit to last longer, got %d vs %d samples", len(soft), len(hard))
	}
}

func TestNewVolumeZero(t *testing.T) {
	osc := NewOscillator(440, 50*time.Millisecond, WaveSine, testRate)
	samples := make([][2]float64, 100)
	n, ok := newVolume(osc, 0).Stream(samples)
	if !ok || n == 0 {
		t.Fatalf("Expected silent stream to still produce samples, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] != 0 {
			t.Fatalf("Expected silence, got %f at %d", samples[i][0], i)
		}
	}
}
