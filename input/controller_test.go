package input

import (
	"math"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gasup/engine"
	"github.com/lixenwraith/gasup/parameter"
)

func newTestController(clock *time.Time) *Controller {
	c := NewController(nil)
	c.now = func() time.Time { return *clock }
	return c
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestLookup(t *testing.T) {
	table := DefaultKeyTable()
	tests := []struct {
		ev   *tcell.EventKey
		want IntentType
	}{
		{key(tcell.KeyUp), IntentThrottle},
		{key(tcell.KeyDown), IntentThrottleCut},
		{key(tcell.KeyLeft), IntentSteerLeft},
		{key(tcell.KeyRight), IntentSteerRight},
		{key(tcell.KeyCtrlC), IntentQuit},
		{key(tcell.KeyEscape), IntentQuit},
		{runeKey('W'), IntentThrottle},
		{runeKey('a'), IntentSteerLeft},
		{runeKey('q'), IntentQuit},
		{runeKey('r'), IntentRestart},
		{runeKey('m'), IntentToggleMute},
		{runeKey('z'), IntentNone},
		{tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModCtrl), IntentQuit},
		{tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModCtrl), IntentNone},
		{key(tcell.KeyF1), IntentNone},
	}
	for _, tt := range tests {
		if got := table.Lookup(tt.ev); got != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.ev.Name(), tt.want, got)
		}
	}
}

func TestSinglePressHeldUntilRepeatDelay(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)

	c.HandleEvent(key(tcell.KeyUp))
	if got := c.Poll().Throttle; got != 1 {
		t.Fatalf("Expected full throttle after press, got %v", got)
	}

	clock = clock.Add(parameter.KeyRepeatDelay - time.Millisecond)
	if got := c.Poll().Throttle; got != 1 {
		t.Errorf("Expected throttle held through the repeat delay, got %v", got)
	}

	clock = clock.Add(2 * time.Millisecond)
	if got := c.Poll().Throttle; got != 0 {
		t.Errorf("Expected throttle released after the repeat delay, got %v", got)
	}
}

func TestRepeatsBridgeHoldWindow(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)

	c.HandleEvent(key(tcell.KeyLeft))
	for i := 0; i < 5; i++ {
		clock = clock.Add(parameter.KeyHoldWindow / 2)
		c.HandleEvent(key(tcell.KeyLeft))
		if got := c.Poll().Steer; got != 1 {
			t.Fatalf("Repeat %d: expected steer 1, got %v", i, got)
		}
	}

	// Once repeating, release is detected after the shorter window
	clock = clock.Add(parameter.KeyHoldWindow)
	if got := c.Poll().Steer; got != 0 {
		t.Errorf("Expected steer released after repeats stop, got %v", got)
	}
}

func TestOppositeSteerCancels(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)

	c.HandleEvent(runeKey('a'))
	c.HandleEvent(runeKey('d'))
	if got := c.Poll().Steer; got != -1 {
		t.Errorf("Expected the latest direction to win, got %v", got)
	}
}

func TestThrottleCut(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)

	c.HandleEvent(runeKey('w'))
	c.HandleEvent(runeKey('s'))
	if got := c.Poll().Throttle; got != 0 {
		t.Errorf("Expected throttle cut, got %v", got)
	}
}

func TestQuitLatchedUntilReset(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)

	if intent := c.HandleEvent(runeKey('q')); intent != IntentQuit {
		t.Fatalf("Expected quit intent, got %s", intent)
	}
	if !c.Poll().Quit || !c.Poll().Quit {
		t.Error("Expected quit to stay latched")
	}

	c.Reset()
	if c.Poll().Quit {
		t.Error("Expected Reset to clear quit")
	}
}

func TestMouseZones(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)
	if intent := c.HandleEvent(tcell.NewEventResize(100, 21)); intent != IntentResize {
		t.Fatalf("Expected resize intent, got %s", intent)
	}

	tests := []struct {
		x, y     int
		throttle float64
		steer    float64
	}{
		{10, 0, 1, 1},
		{50, 10, 0.5, 0},
		{90, 20, 0, -1},
	}
	for _, tt := range tests {
		c.HandleEvent(tcell.NewEventMouse(tt.x, tt.y, tcell.Button1, tcell.ModNone))
		ctl := settle(c)
		if ctl.Throttle != tt.throttle || ctl.Steer != tt.steer {
			t.Errorf("Mouse at (%d,%d): expected throttle %v steer %v, got %v %v",
				tt.x, tt.y, tt.throttle, tt.steer, ctl.Throttle, ctl.Steer)
		}
	}

	c.HandleEvent(tcell.NewEventMouse(90, 20, tcell.ButtonNone, tcell.ModNone))
	if ctl := c.Poll(); ctl.Throttle != 0 || ctl.Steer != 0 {
		t.Errorf("Expected release to clear mouse control, got %+v", ctl)
	}
}

// settle polls until a held mouse throttle has finished ramping
func settle(c *Controller) engine.Control {
	var ctl engine.Control
	for i := 0; i <= int(1/parameter.MouseThrottleStep); i++ {
		ctl = c.Poll()
	}
	return ctl
}

func TestMouseThrottleRamps(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)
	c.SetSize(80, 21)

	c.HandleEvent(tcell.NewEventMouse(40, 0, tcell.Button1, tcell.ModNone))
	for i := 1; i <= 4; i++ {
		want := math.Min(float64(i)*parameter.MouseThrottleStep, 1)
		if got := c.Poll().Throttle; got != want {
			t.Fatalf("Poll %d: expected throttle %v, got %v", i, want, got)
		}
	}

	c.HandleEvent(tcell.NewEventMouse(40, 20, tcell.Button1, tcell.ModNone))
	if got := c.Poll().Throttle; got != 1-parameter.MouseThrottleStep {
		t.Errorf("Expected throttle to ease down, got %v", got)
	}

	c.HandleEvent(tcell.NewEventMouse(40, 20, tcell.ButtonNone, tcell.ModNone))
	if got := c.Poll().Throttle; got != 0 {
		t.Errorf("Expected release to cut throttle at once, got %v", got)
	}
	c.HandleEvent(tcell.NewEventMouse(40, 0, tcell.Button1, tcell.ModNone))
	if got := c.Poll().Throttle; got != parameter.MouseThrottleStep {
		t.Errorf("Expected the ramp to restart from zero, got %v", got)
	}
}

func TestMouseIgnoredWithoutSize(t *testing.T) {
	clock := time.Unix(100, 0)
	c := newTestController(&clock)

	c.HandleEvent(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	if ctl := c.Poll(); ctl.Throttle != 0 || ctl.Steer != 0 {
		t.Errorf("Expected no mouse control before the size is known, got %+v", ctl)
	}

	c.SetSize(80, 24)
	if ctl := c.Poll(); ctl.Steer != 1 {
		t.Errorf("Expected steering once sized, got %+v", ctl)
	}
}
