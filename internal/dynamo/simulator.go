package dynamo

import (
	"context"
	"fmt"
	"math"
)

type Simulator struct {
	dyn        System
	integrator Integrator
	controller Controller
	metrics    []Metric
}

func New(dyn System, integrator Integrator, controller Controller) *Simulator {
	return &Simulator{
		dyn:        dyn,
		integrator: integrator,
		controller: controller,
		metrics:    make([]Metric, 0),
	}
}

func (s *Simulator) AddMetric(m Metric) { s.metrics = append(s.metrics, m) }

func (s *Simulator) Run(ctx context.Context, x0 State, cfg Config) (*Result, error) {
	if err := s.validate(x0, cfg); err != nil {
		return nil, err
	}

	steps := int(math.Round(cfg.Duration / cfg.Dt))
	result := &Result{
		States:   make([]State, 0, steps+1),
		Controls: make([]Control, 0, steps),
		Times:    make([]float64, 0, steps+1),
		Metrics:  make(map[string]float64),
		Errors:   make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	x := x0.Clone()
	t := 0.0

	result.States = append(result.States, x.Clone())
	result.Times = append(result.Times, t)

	initialEnergy := s.computeEnergy(x)

	for i := 0; i < steps; i++ {
		select {
		case <-ctx.Done():
			return result, ctx.Err()
		default:
		}

		u := s.controller.Compute(x, t)
		if f, ok := s.controller.(Faulter); ok && f.Err() != nil {
			result.Errors = append(result.Errors, SimError{Time: t, Step: i, Wrapped: fmt.Errorf("%w: %v", ErrController, f.Err())})
			break
		}

		for _, m := range s.metrics {
			m.Observe(x, u, t)
		}

		newX := s.integrator.Step(s.dyn, x, u, t, cfg.Dt)
		if cfg.ValidateState && !newX.IsValid() {
			result.Errors = append(result.Errors, SimError{Time: t, Step: i, Wrapped: ErrInvalidState})
			break
		}

		x = newX
		t = float64(i+1) * cfg.Dt
		result.StepsTaken++

		result.States = append(result.States, x.Clone())
		result.Controls = append(result.Controls, u)
		result.Times = append(result.Times, t)
	}

	finalEnergy := s.computeEnergy(x)
	if initialEnergy != 0 {
		result.EnergyDrift = math.Abs(finalEnergy-initialEnergy) / math.Abs(initialEnergy)
	}

	for _, m := range s.metrics {
		if f, ok := m.(Finisher); ok {
			f.Finish(x, t)
		}
		result.Metrics[m.Name()] = m.Value()
	}

	return result, nil
}

func (s *Simulator) validate(x0 State, cfg Config) error {
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalidConfig, cfg.Dt)
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalidConfig, cfg.Duration)
	}
	if len(x0) != s.dyn.StateDim() {
		return fmt.Errorf("%w: state has %d values, system expects %d", ErrDimensionMismatch, len(x0), s.dyn.StateDim())
	}
	if !x0.IsValid() {
		return ErrInvalidState
	}
	return nil
}

func (s *Simulator) computeEnergy(x State) float64 {
	if h, ok := s.dyn.(Hamiltonian); ok {
		return h.Energy(x)
	}
	return 0
}

// Step advances x by one tick of length dt from time t. Interactive front ends
// use it to drive the simulation frame by frame.
func (s *Simulator) Step(x State, t, dt float64) (State, Control, error) {
	u := s.controller.Compute(x, t)
	if f, ok := s.controller.(Faulter); ok && f.Err() != nil {
		return x, u, fmt.Errorf("%w: %v", ErrController, f.Err())
	}
	next := s.integrator.Step(s.dyn, x, u, t, dt)
	if !next.IsValid() {
		return x, u, ErrInvalidState
	}
	return next, u, nil
}

// Reset rewinds a stateful controller.
func (s *Simulator) Reset() {
	if r, ok := s.controller.(Resetter); ok {
		r.Reset()
	}
}
