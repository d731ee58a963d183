// Package cooldown provides a frame-counted countdown timer for
// tick-driven game loops, replacing ad-hoc frame counter variables.
package cooldown

// Cooldown counts down a fixed number of update ticks. The owner calls
// Tick once per simulation step and checks IsReady before allowing the
// timed action again. A Cooldown belongs to a single goroutine; it does
// no locking.
type Cooldown struct {
	duration   int
	remaining  int
	active     bool
	paused     bool
	onComplete func()
}

// New creates a ready Cooldown spanning duration ticks. onComplete is
// invoked once each time a countdown runs to zero; nil means no
// callback. A non-positive duration yields a permanently ready timer.
func New(duration int, onComplete func()) *Cooldown {
	if onComplete == nil {
		onComplete = func() {}
	}
	return &Cooldown{
		duration:   duration,
		onComplete: onComplete,
	}
}

// Start begins a fresh countdown from the full duration. Calling it
// while a countdown is running restarts from the top; it does not guard
// on readiness.
func (c *Cooldown) Start() {
	if c.duration <= 0 {
		return
	}
	c.remaining = c.duration
	c.active = true
	c.paused = false
}

// Update advances the countdown by one tick. Call exactly once per
// simulation step. On the tick the count reaches zero the timer
// deactivates and onComplete fires, once per cycle. Inactive or paused
// timers are left untouched.
func (c *Cooldown) Update() {
	if !c.active || c.paused {
		return
	}

	c.remaining--
	if c.remaining <= 0 {
		c.remaining = 0
		c.active = false
		c.onComplete()
	}
}

// Pause suspends the countdown without losing the remaining ticks.
// Pausing an already paused or inactive timer changes nothing.
func (c *Cooldown) Pause() {
	c.paused = true
}

// Resume lifts a pause. It never reactivates a finished timer.
func (c *Cooldown) Resume() {
	c.paused = false
}

// Reset cancels any countdown in progress and returns the timer to the
// ready state. Unlike a natural expiry, onComplete is not invoked.
func (c *Cooldown) Reset() {
	c.remaining = 0
	c.active = false
	c.paused = false
}

// IsReady reports whether the timer is not counting down.
func (c *Cooldown) IsReady() bool {
	return !c.active
}

// Progress returns the elapsed fraction of the countdown in [0, 1]:
// 0 right after Start, 1 when ready. Timers with a non-positive
// duration report 1.
func (c *Cooldown) Progress() float64 {
	if c.duration <= 0 {
		return 1.0
	}

	p := 1.0 - float64(c.remaining)/float64(c.duration)
	if p < 0 {
		return 0.0
	}
	if p > 1 {
		return 1.0
	}
	return p
}

// Remaining returns the ticks left before the timer is ready.
func (c *Cooldown) Remaining() int {
	return c.remaining
}

// Duration returns the total ticks the countdown spans.
func (c *Cooldown) Duration() int {
	return c.duration
}
