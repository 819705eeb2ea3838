package clock

import (
	"time"

	"go.uber.org/fx"
)

// Module provides the wall Clock.
var Module = fx.Provide(New)

// Clock abstracts reading the current time so durations can be asserted in tests.
type Clock interface {
	// Now returns the current local time.
	Now() time.Time
	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
}

type clock struct{}

// New creates a new instance of Clock.
func New() Clock {
	return clock{}
}

func (clock) Now() time.Time {
	return time.Now()
}

func (clock) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Fixed is a Clock that advances by Step on every Now call.
type Fixed struct {
	Current time.Time
	Step    time.Duration
}

// Now returns the current value and then advances it.
func (f *Fixed) Now() time.Time {
	now := f.Current
	f.Current = f.Current.Add(f.Step)
	return now
}

// Since measures against the next reading.
func (f *Fixed) Since(t time.Time) time.Duration {
	return f.Now().Sub(t)
}
