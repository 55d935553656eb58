package input

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gasup/engine"
	"github.com/lixenwraith/gasup/parameter"
	"github.com/lixenwraith/gasup/vmath"
)

// hold tracks one emulated held key
type hold struct {
	first time.Time // press that started the current hold
	last  time.Time // most recent press or repeat
}

// active reports whether the key still counts as held at now
// A lone press waits for the terminal's repeat delay; repeats only bridge the repeat gap
func (h hold) active(now time.Time) bool {
	if h.last.IsZero() {
		return false
	}
	window := parameter.KeyHoldWindow
	if h.last.Equal(h.first) {
		window = parameter.KeyRepeatDelay
	}
	return now.Sub(h.last) < window
}

func (h *hold) press(now time.Time) {
	if !h.active(now) {
		h.first = now
	}
	h.last = now
}

type mouseState struct {
	down bool
	x, y int
}

// Controller turns terminal events into engine controls
// HandleEvent runs on the poll goroutine, Poll on the loop goroutine
type Controller struct {
	mu    sync.Mutex
	table *KeyTable
	now   func() time.Time

	throttle, left, right hold
	mouse                 mouseState
	mouseThrottle         float64
	width, height         int
	quit                  bool
}

func NewController(table *KeyTable) *Controller {
	if table == nil {
		table = DefaultKeyTable()
	}
	return &Controller{table: table, now: time.Now}
}

// HandleEvent records the event and returns its intent
// Quit is latched for the next Poll; other system intents are left to the caller
func (c *Controller) HandleEvent(ev tcell.Event) IntentType {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch ev := ev.(type) {
	case *tcell.EventKey:
		intent := c.table.Lookup(ev)
		now := c.now()
		switch intent {
		case IntentThrottle:
			c.throttle.press(now)
		case IntentThrottleCut:
			c.throttle = hold{}
		case IntentSteerLeft:
			c.left.press(now)
			c.right = hold{}
		case IntentSteerRight:
			c.right.press(now)
			c.left = hold{}
		case IntentQuit:
			c.quit = true
		}
		return intent

	case *tcell.EventMouse:
		x, y := ev.Position()
		c.mouse = mouseState{down: ev.Buttons()&tcell.Button1 != 0, x: x, y: y}
		return IntentMouse

	case *tcell.EventResize:
		c.width, c.height = ev.Size()
		return IntentResize
	}
	return IntentNone
}

// Poll implements engine.InputSource
func (c *Controller) Poll() engine.Control {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctl := engine.Control{Quit: c.quit}
	if c.mouse.down && c.width > 0 && c.height > 0 {
		target, steer := c.mouseControl()
		c.mouseThrottle = vmath.Approach(c.mouseThrottle, target, parameter.MouseThrottleStep)
		ctl.Throttle, ctl.Steer = c.mouseThrottle, steer
		return ctl
	}
	c.mouseThrottle = 0

	now := c.now()
	if c.throttle.active(now) {
		ctl.Throttle = 1
	}
	if c.left.active(now) {
		ctl.Steer += 1
	}
	if c.right.active(now) {
		ctl.Steer -= 1
	}
	return ctl
}

// mouseControl reads throttle from height (top is full) and steering from the side zones
func (c *Controller) mouseControl() (throttle, steer float64) {
	if c.height > 1 {
		throttle = 1 - float64(c.mouse.y)/float64(c.height-1)
	} else {
		throttle = 1
	}
	throttle = vmath.Clamp(throttle, 0, 1)

	fx := (float64(c.mouse.x) + 0.5) / float64(c.width)
	switch {
	case fx < parameter.MouseSteerZone:
		steer = 1
	case fx > 1-parameter.MouseSteerZone:
		steer = -1
	}
	return throttle, steer
}

// SetSize seeds the screen size before the first resize event arrives
func (c *Controller) SetSize(width, height int) {
	c.mu.Lock()
	c.width, c.height = width, height
	c.mu.Unlock()
}

// Reset releases every held input and clears quit before a new session
func (c *Controller) Reset() {
	c.mu.Lock()
	c.throttle, c.left, c.right = hold{}, hold{}, hold{}
	c.mouse = mouseState{}
	c.mouseThrottle = 0
	c.quit = false
	c.mu.Unlock()
}
