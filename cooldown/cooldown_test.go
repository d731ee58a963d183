package cooldown

import (
	"math"
	"testing"
)

func TestNewStartsReady(t *testing.T) {
	tests := []struct {
		name     string
		duration int
	}{
		{"positive duration", 10},
		{"single tick", 1},
		{"zero duration", 0},
		{"negative duration", -5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.duration, nil)
			if !c.IsReady() {
				t.Errorf("expected new cooldown to be ready")
			}
			if c.Remaining() != 0 {
				t.Errorf("expected 0 remaining ticks, got %d", c.Remaining())
			}
			if c.Duration() != tt.duration {
				t.Errorf("expected duration %d, got %d", tt.duration, c.Duration())
			}
		})
	}
}

func TestStartActivatesCountdown(t *testing.T) {
	c := New(4, nil)
	c.Start()

	if c.IsReady() {
		t.Errorf("expected cooldown not to be ready after Start")
	}
	if c.Remaining() != 4 {
		t.Errorf("expected 4 remaining ticks, got %d", c.Remaining())
	}
	if c.Progress() != 0.0 {
		t.Errorf("expected progress 0.0 after Start, got %f", c.Progress())
	}
}

func TestCountdownCompletes(t *testing.T) {
	tests := []struct {
		name     string
		duration int
	}{
		{"one tick", 1},
		{"four ticks", 4},
		{"sixty ticks", 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completions := 0
			c := New(tt.duration, func() { completions++ })
			c.Start()

			for i := 0; i < tt.duration-1; i++ {
				c.Update()
				if c.IsReady() {
					t.Fatalf("ready after %d of %d ticks", i+1, tt.duration)
				}
				if completions != 0 {
					t.Fatalf("callback fired early, after %d ticks", i+1)
				}
			}

			c.Update()
			if !c.IsReady() {
				t.Errorf("expected cooldown to be ready after %d ticks", tt.duration)
			}
			if c.Progress() != 1.0 {
				t.Errorf("expected progress 1.0, got %f", c.Progress())
			}
			if completions != 1 {
				t.Errorf("expected callback to fire exactly once, fired %d times", completions)
			}

			// Idle ticks after completion must not re-fire the callback.
			for i := 0; i < 10; i++ {
				c.Update()
			}
			if completions != 1 {
				t.Errorf("callback re-fired on idle ticks, total %d", completions)
			}
		})
	}
}

func TestFourTickScenario(t *testing.T) {
	completions := 0
	c := New(4, func() { completions++ })

	c.Start()
	if c.Progress() != 0.0 {
		t.Fatalf("expected progress 0.0, got %f", c.Progress())
	}

	c.Update()
	c.Update()
	c.Update()
	if c.Remaining() != 1 {
		t.Errorf("expected 1 remaining tick, got %d", c.Remaining())
	}
	if c.IsReady() {
		t.Errorf("expected not ready with 1 tick remaining")
	}
	if c.Progress() != 0.75 {
		t.Errorf("expected progress 0.75, got %f", c.Progress())
	}

	c.Update()
	if c.Remaining() != 0 {
		t.Errorf("expected 0 remaining ticks, got %d", c.Remaining())
	}
	if !c.IsReady() {
		t.Errorf("expected ready after final tick")
	}
	if c.Progress() != 1.0 {
		t.Errorf("expected progress 1.0, got %f", c.Progress())
	}
	if completions != 1 {
		t.Errorf("expected exactly one completion, got %d", completions)
	}
}

func TestPauseFreezesCountdown(t *testing.T) {
	c := New(5, nil)
	c.Start()
	c.Update()
	c.Update()

	c.Pause()
	for i := 0; i < 20; i++ {
		c.Update()
	}
	if c.Remaining() != 3 {
		t.Errorf("expected 3 remaining ticks while paused, got %d", c.Remaining())
	}

	c.Resume()
	c.Update()
	if c.Remaining() != 2 {
		t.Errorf("expected countdown to resume from preserved value, got %d remaining", c.Remaining())
	}
}

func TestPauseIsIdempotent(t *testing.T) {
	c := New(5, nil)
	c.Start()
	c.Update()

	c.Pause()
	once := c.Remaining()

	c.Pause()
	c.Update()
	if c.Remaining() != once {
		t.Errorf("double pause changed observable state: %d vs %d remaining", c.Remaining(), once)
	}

	c.Resume()
	c.Resume()
	c.Update()
	if c.Remaining() != once-1 {
		t.Errorf("double resume broke countdown: expected %d remaining, got %d", once-1, c.Remaining())
	}
}

func TestResumeDoesNotReactivate(t *testing.T) {
	c := New(2, nil)
	c.Resume()
	if !c.IsReady() {
		t.Errorf("Resume reactivated a ready cooldown")
	}
	c.Update()
	if c.Remaining() != 0 {
		t.Errorf("tick after Resume on ready cooldown changed remaining to %d", c.Remaining())
	}
}

func TestResetCancelsSilently(t *testing.T) {
	completions := 0
	c := New(10, func() { completions++ })
	c.Start()
	c.Update()
	c.Update()

	c.Reset()
	if !c.IsReady() {
		t.Errorf("expected ready after Reset")
	}
	if c.Remaining() != 0 {
		t.Errorf("expected 0 remaining after Reset, got %d", c.Remaining())
	}
	if completions != 0 {
		t.Errorf("Reset must not invoke the completion callback, fired %d times", completions)
	}

	// Reset also clears a pause.
	c.Start()
	c.Pause()
	c.Reset()
	c.Start()
	c.Update()
	if c.Remaining() != 9 {
		t.Errorf("expected countdown to run after Reset cleared pause, got %d remaining", c.Remaining())
	}
}

func TestStartRestartsRunningCountdown(t *testing.T) {
	c := New(6, nil)
	c.Start()
	c.Update()
	c.Update()

	c.Start()
	if c.Remaining() != 6 {
		t.Errorf("expected restart from full duration, got %d remaining", c.Remaining())
	}

	// Restarting while paused also unpauses.
	c.Pause()
	c.Start()
	c.Update()
	if c.Remaining() != 5 {
		t.Errorf("expected Start to clear pause, got %d remaining", c.Remaining())
	}
}

func TestNonPositiveDurationIsPermanentlyReady(t *testing.T) {
	tests := []struct {
		name     string
		duration int
	}{
		{"zero", 0},
		{"negative", -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			completions := 0
			c := New(tt.duration, func() { completions++ })

			if !c.IsReady() {
				t.Errorf("expected ready immediately after construction")
			}
			if c.Progress() != 1.0 {
				t.Errorf("expected progress 1.0, got %f", c.Progress())
			}

			c.Start()
			if !c.IsReady() {
				t.Errorf("Start produced a countdown for non-positive duration")
			}
			c.Update()
			if c.Progress() != 1.0 || math.IsNaN(c.Progress()) {
				t.Errorf("expected progress 1.0, got %f", c.Progress())
			}
			if completions != 0 {
				t.Errorf("callback fired for a timer that never counted down")
			}
		})
	}
}

func TestProgressMonotonicAndBounded(t *testing.T) {
	c := New(7, nil)
	c.Start()

	prev := c.Progress()
	for i := 0; i < 15; i++ {
		c.Update()
		p := c.Progress()
		if p < prev {
			t.Fatalf("progress decreased from %f to %f on tick %d", prev, p, i+1)
		}
		if p < 0.0 || p > 1.0 {
			t.Fatalf("progress %f out of [0, 1] on tick %d", p, i+1)
		}
		prev = p
	}
}
