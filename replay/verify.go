package replay

import (
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/gasup/engine"
)

// MismatchError reports the first tick where re-simulation diverged from the log
type MismatchError struct {
	Tick  int64
	Field string
	Want  any
	Got   any
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("replay: %s mismatch at tick %d: want=%v got=%v", e.Field, e.Tick, e.Want, e.Got)
}

// Verify re-runs the logged session from its seed and controls, checking
// the plane and gas after every tick
// Returns the number of ticks checked
func Verify(r *Reader) (int64, error) {
	s := engine.NewSession(r.Header.Config, r.Header.Seed, r.Header.Best)

	var checked int64
	for {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return checked, nil
		}
		if err != nil {
			return checked, err
		}

		s.Step(rec.Dt, rec.Control)
		s.Drain()

		switch {
		case s.Tick() != rec.Tick:
			return checked, &MismatchError{Tick: rec.Tick, Field: "tick", Want: rec.Tick, Got: s.Tick()}
		case s.Plane() != rec.Plane:
			return checked, &MismatchError{Tick: rec.Tick, Field: "plane", Want: rec.Plane, Got: s.Plane()}
		case s.Gas() != rec.Gas:
			return checked, &MismatchError{Tick: rec.Tick, Field: "gas", Want: rec.Gas, Got: s.Gas()}
		}
		checked++
	}
}

// VerifyFile opens path and verifies it
func VerifyFile(path string) (int64, error) {
	r, err := Open(path)
	if err != nil {
		return 0, err
	}
	defer r.Close()
	return Verify(r)
}
