package metrics

import (
	"math"

	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/physics"
	"github.com/san-kum/docksim/internal/rendezvous"
)

// MinSeparation tracks the closest approach between chase and target.
type MinSeparation struct {
	min float64
}

func NewMinSeparation() *MinSeparation {
	return &MinSeparation{min: math.Inf(1)}
}

func (m *MinSeparation) Name() string { return "min_separation" }

func (m *MinSeparation) Observe(x dynamo.State, u dynamo.Control, t float64) {
	chase, target := physics.Bodies(x)
	m.min = math.Min(m.min, rendezvous.Separation(chase, target))
}

func (m *MinSeparation) Finish(x dynamo.State, t float64) { m.Observe(x, nil, t) }

func (m *MinSeparation) Value() float64 {
	if math.IsInf(m.min, 1) {
		return 0
	}
	return m.min
}

func (m *MinSeparation) Reset() { m.min = math.Inf(1) }

// ProximityViolations counts ticks on which the safety monitor would fire.
type ProximityViolations struct {
	monitor rendezvous.SafetyMonitor
	count   int
}

func NewProximityViolations(monitor rendezvous.SafetyMonitor) *ProximityViolations {
	return &ProximityViolations{monitor: monitor}
}

func (p *ProximityViolations) Name() string { return "proximity_violations" }

func (p *ProximityViolations) Observe(x dynamo.State, u dynamo.Control, t float64) {
	chase, target := physics.Bodies(x)
	if _, fired := p.monitor.Check(chase, target); fired {
		p.count++
	}
}

func (p *ProximityViolations) Value() float64 { return float64(p.count) }

func (p *ProximityViolations) Reset() { p.count = 0 }

// StandoffError is the chase's distance from the standoff point in the final
// state of the run.
type StandoffError struct {
	last float64
}

func NewStandoffError() *StandoffError {
	return &StandoffError{}
}

func (s *StandoffError) Name() string { return "standoff_error" }

func (s *StandoffError) Observe(x dynamo.State, u dynamo.Control, t float64) {
	s.last = standoffError(x)
}

func (s *StandoffError) Finish(x dynamo.State, t float64) {
	s.last = standoffError(x)
}

func standoffError(x dynamo.State) float64 {
	chase, target := physics.Bodies(x)
	p := rendezvous.Standoff(target.Pose)
	return math.Hypot(chase.Pose.X-p.X, chase.Pose.Y-p.Y)
}

func (s *StandoffError) Value() float64 { return s.last }

func (s *StandoffError) Reset() { s.last = 0 }
