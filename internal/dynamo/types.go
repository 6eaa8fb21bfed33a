package dynamo

import "math"

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
	ControlDim() int
}

type Hamiltonian interface {
	Energy(x State) float64
}

type Integrator interface {
	Step(dyn System, x State, u Control, t float64, dt float64) State
}

type Controller interface {
	Compute(x State, t float64) Control
}

// Faulter is implemented by controllers that can fail on a tick. The simulator
// stops the run when Err returns non-nil.
type Faulter interface {
	Err() error
}

// Finisher is implemented by metrics that also need the state a run ends on.
// Observe only sees states a control was computed for, which excludes it.
type Finisher interface {
	Finish(x State, t float64)
}

// Resetter is implemented by controllers that carry state between ticks.
type Resetter interface {
	Reset()
}

type Metric interface {
	Name() string
	Observe(x State, u Control, t float64)
	Value() float64
	Reset()
}

type Config struct {
	Dt            float64
	Duration      float64
	ValidateState bool
}

// DefaultConfig ticks at 20 Hz for one minute.
func DefaultConfig() Config {
	return Config{
		Dt:            0.05,
		Duration:      60.0,
		ValidateState: true,
	}
}

type Result struct {
	States      []State
	Controls    []Control
	Times       []float64
	Metrics     map[string]float64
	EnergyDrift float64
	StepsTaken  int
	Errors      []error
}
