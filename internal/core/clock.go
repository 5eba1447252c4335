package core

import "time"

// Clock reports the current time in seconds.
// Only differences between readings matter; the origin is arbitrary.
type Clock interface {
	Now() float64
}

// SystemClock reads wall time.
type SystemClock struct {
	start time.Time
}

// NewSystemClock creates a clock whose origin is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// Now returns seconds since the clock was created.
func (c *SystemClock) Now() float64 {
	return time.Since(c.start).Seconds()
}

// StepClock advances by a fixed amount each time Advance is called.
// Driving the game from a StepClock makes a run reproducible from its seed
// and inputs, independent of how fast frames are actually delivered.
type StepClock struct {
	now  float64
	step float64
}

// NewStepClock creates a clock that advances 1/tickRate seconds per step.
func NewStepClock(tickRate int) *StepClock {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &StepClock{step: 1.0 / float64(tickRate)}
}

// Now returns the accumulated time.
func (c *StepClock) Now() float64 {
	return c.now
}

// Advance moves the clock forward by one step.
func (c *StepClock) Advance() {
	c.now += c.step
}

// Set moves the clock to an absolute time.
func (c *StepClock) Set(now float64) {
	c.now = now
}
