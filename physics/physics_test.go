package physics

import (
	"math"
	"testing"

	"github.com/lixenwraith/gasup/vmath"
)

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestStepSpeedCap(t *testing.T) {
	prm := DefaultFlightParams()
	p := NewPlane(vmath.Vec2{}, prm)

	for i := 0; i < 2000; i++ {
		p = Step(p, 1.0/60, 1, 0, prm)
		if fs := p.ForwardSpeed(); fs > prm.MaxSpeed+1e-9 {
			t.Fatalf("Tick %d: forward speed %v exceeds cap %v", i, fs, prm.MaxSpeed)
		}
	}
	if fs := p.ForwardSpeed(); fs < prm.MaxSpeed*0.5 {
		t.Errorf("Expected the plane to accelerate toward the cap, got %v", fs)
	}
}

func TestStepSpeedCapByHeading(t *testing.T) {
	prm := DefaultFlightParams()
	for _, angle := range []float64{0, 0.5, math.Pi / 2, 3.0} {
		p := Plane{Angle: angle}
		for i := 0; i < 2000; i++ {
			p = Step(p, 0.1, 1, 0, prm)
			if fs := p.ForwardSpeed(); fs > prm.MaxSpeed+1e-9 {
				t.Fatalf("Heading %v tick %d: forward speed %v exceeds cap %v", angle, i, fs, prm.MaxSpeed)
			}
		}
	}
}

func TestStepDiveExceedsCapUnderGravity(t *testing.T) {
	prm := DefaultFlightParams()
	p := Plane{Angle: -math.Pi / 2}

	ticks := 0
	for p.ForwardSpeed() <= prm.MaxSpeed {
		p = Step(p, 1.0/60, 1, 0, prm)
		if ticks++; ticks > 10000 {
			t.Fatalf("Expected gravity to carry the dive past %v, got %v", prm.MaxSpeed, p.ForwardSpeed())
		}
	}

	// Above the cap thrust adds nothing; only gravity keeps accelerating the dive
	for i := 0; i < 60; i++ {
		full := Step(p, 1.0/60, 1, 0, prm)
		idle := Step(p, 1.0/60, 0, 0, prm)
		if full != idle {
			t.Fatalf("Tick %d: expected no thrust above the cap, got %+v vs %+v", i, full, idle)
		}
		if full.ForwardSpeed() <= p.ForwardSpeed() {
			t.Fatalf("Tick %d: expected the dive to keep accelerating, got %v after %v", i, full.ForwardSpeed(), p.ForwardSpeed())
		}
		p = full
	}
}

func TestStepClampsDt(t *testing.T) {
	prm := DefaultFlightParams()
	p := NewPlane(vmath.Vec2{}, prm)

	big := Step(p, 5, 1, 0.5, prm)
	capped := Step(p, prm.MaxDt, 1, 0.5, prm)
	if big != capped {
		t.Errorf("Expected dt to clamp at %v: got %+v vs %+v", prm.MaxDt, big, capped)
	}
	if got := Step(p, -1, 1, 1, prm); got != p {
		t.Errorf("Expected negative dt to be a no-op, got %+v", got)
	}
}

func TestStepSteeringSign(t *testing.T) {
	prm := DefaultFlightParams()
	p := NewPlane(vmath.Vec2{}, prm)

	left := Step(p, 0.05, 0, 1, prm)
	right := Step(p, 0.05, 0, -1, prm)
	if left.Angle <= p.Angle {
		t.Errorf("Expected positive steer to turn counter-clockwise, got %v -> %v", p.Angle, left.Angle)
	}
	if right.Angle >= p.Angle {
		t.Errorf("Expected negative steer to turn clockwise, got %v -> %v", p.Angle, right.Angle)
	}
	if !near(left.Angle-p.Angle, prm.TurnRate*0.05, 1e-12) {
		t.Errorf("Expected turn of %v, got %v", prm.TurnRate*0.05, left.Angle-p.Angle)
	}
}

func TestStepGravityWithoutThrust(t *testing.T) {
	prm := DefaultFlightParams()
	p := Plane{Angle: 0}

	next := Step(p, 0.1, 0, 0, prm)
	if !near(next.Vel.Y, -prm.Gravity*0.1, 1e-12) {
		t.Errorf("Expected vy %v, got %v", -prm.Gravity*0.1, next.Vel.Y)
	}
	// Semi-implicit Euler: position uses the updated velocity
	if !near(next.Pos.Y, next.Vel.Y*0.1, 1e-12) {
		t.Errorf("Expected y %v, got %v", next.Vel.Y*0.1, next.Pos.Y)
	}
}

func TestStepWingAlignment(t *testing.T) {
	prm := DefaultFlightParams()
	prm.Gravity = 0
	// Nose up, sliding sideways
	p := Plane{Vel: vmath.Vec2{X: 1, Y: 0}, Angle: math.Pi / 2}

	next := Step(p, 0.1, 0, 0, prm)
	want := math.Exp(-prm.WingAlign * 0.1)
	if !near(next.Vel.X, want, 1e-9) {
		t.Errorf("Expected sideways speed %v, got %v", want, next.Vel.X)
	}
	if !near(next.Vel.Y, 0, 1e-9) {
		t.Errorf("Expected no forward gain from alignment, got %v", next.Vel.Y)
	}
}

func TestStepIsPure(t *testing.T) {
	prm := DefaultFlightParams()
	p := NewPlane(vmath.Vec2{X: 0.1, Y: 0.2}, prm)
	a := Step(p, 1.0/60, 0.7, 0.3, prm)
	b := Step(p, 1.0/60, 0.7, 0.3, prm)
	if a != b {
		t.Errorf("Expected identical results, got %+v and %+v", a, b)
	}
}

func TestStepClampsInputs(t *testing.T) {
	prm := DefaultFlightParams()
	p := NewPlane(vmath.Vec2{}, prm)
	if Step(p, 0.05, 3, 4, prm) != Step(p, 0.05, 1, 1, prm) {
		t.Error("Expected out-of-range inputs to clamp")
	}
}

func TestSteerToward(t *testing.T) {
	from := vmath.Vec2{}
	target := vmath.Vec2{X: 0, Y: 1}

	if got := SteerToward(0, from, target, 0.1); !near(got, 0.1, 1e-12) {
		t.Errorf("Expected limited turn to 0.1, got %v", got)
	}
	if got := SteerToward(1.5, from, target, 0.2); !near(got, math.Pi/2, 1e-12) {
		t.Errorf("Expected to snap onto target heading, got %v", got)
	}
	if got := SteerToward(math.Pi, from, target, 0.1); !near(got, math.Pi-0.1, 1e-12) {
		t.Errorf("Expected clockwise turn, got %v", got)
	}
}

func TestApplyHoming(t *testing.T) {
	k := Kinetic{Pos: vmath.Vec2{}}
	prof := HomingProfile{Speed: 2, TurnRate: 1}
	h := ApplyHoming(&k, 0, vmath.Vec2{X: 0, Y: 5}, &prof, 0.5)

	if !near(h, 0.5, 1e-12) {
		t.Errorf("Expected heading 0.5, got %v", h)
	}
	if speed := vmath.V2Mag(k.Vel); !near(speed, 2, 1e-12) {
		t.Errorf("Expected cruise speed 2, got %v", speed)
	}
}

func TestKineticDrift(t *testing.T) {
	k := Kinetic{Pos: vmath.Vec2{X: 1}, Vel: vmath.Vec2{X: 2, Y: -1}}
	k.Drift(0.5)
	if k.Pos != (vmath.Vec2{X: 2, Y: -0.5}) {
		t.Errorf("Unexpected position %+v", k.Pos)
	}
	if k.Vel != (vmath.Vec2{X: 2, Y: -1}) {
		t.Errorf("Expected velocity unchanged, got %+v", k.Vel)
	}
}
