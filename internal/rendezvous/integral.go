package rendezvous

import "math"

// NominalStep is the fixed integration step of the accumulator (20 Hz).
const NominalStep = 0.05

// Accumulator integrates position error. With Bound == 0 it is unbounded.
type Accumulator struct {
	XSum  float64
	YSum  float64
	Bound float64
}

func (a *Accumulator) Step(errX, errY, dt float64) {
	a.XSum += errX * dt
	a.YSum += errY * dt
	if a.Bound > 0 {
		a.XSum = clamp(a.XSum, a.Bound)
		a.YSum = clamp(a.YSum, a.Bound)
	}
}

func (a *Accumulator) Reset() {
	a.XSum = 0
	a.YSum = 0
}

func clamp(v, limit float64) float64 {
	return math.Max(-limit, math.Min(limit, v))
}
