package config

import "math"

// Ramp tracks how many difficulty thresholds the score has crossed.
// The step counter only moves forward and by at most one per Advance call.
type Ramp struct {
	cfg  DifficultyConfig
	step int
}

// NewRamp creates a ramp at step 0.
func NewRamp(cfg DifficultyConfig) *Ramp {
	return &Ramp{cfg: cfg}
}

// Reset returns the ramp to step 0.
func (r *Ramp) Reset() {
	r.step = 0
}

// Step returns the number of thresholds applied so far.
func (r *Ramp) Step() int {
	return r.step
}

// Advance applies the next step if score has reached it.
// Returns true when a step was applied.
func (r *Ramp) Advance(score float64) bool {
	if r.cfg.StepPoints <= 0 {
		return false
	}
	if int(math.Floor(score/float64(r.cfg.StepPoints))) > r.step {
		r.step++
		return true
	}
	return false
}

// SpeedIncrement returns the horizontal speed added per step.
func (r *Ramp) SpeedIncrement() float64 {
	return r.cfg.SpeedIncrement
}

// RateIncrement returns the score rate added per step.
func (r *Ramp) RateIncrement() float64 {
	return r.cfg.RateIncrement
}
