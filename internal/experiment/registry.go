package experiment

import (
	"errors"
	"fmt"
	"sort"

	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/integrators"
	"github.com/san-kum/docksim/internal/metrics"
	"github.com/san-kum/docksim/internal/rendezvous"
)

var ErrUnknown = errors.New("experiment: unknown name")

// None is the controller name for a coasting chase with no session.
const None = "none"

type Registry struct {
	strategies  map[string]func() rendezvous.Strategy
	integrators map[string]func() dynamo.Integrator
}

func NewRegistry() *Registry {
	r := &Registry{
		strategies:  make(map[string]func() rendezvous.Strategy),
		integrators: make(map[string]func() dynamo.Integrator),
	}

	r.strategies["baseline"] = rendezvous.Baseline
	r.strategies["challenge"] = rendezvous.Challenge

	r.integrators["euler"] = func() dynamo.Integrator { return integrators.NewEuler() }
	r.integrators["rk4"] = func() dynamo.Integrator { return integrators.NewRK4() }
	r.integrators["verlet"] = func() dynamo.Integrator { return integrators.NewVerlet() }

	return r
}

func (r *Registry) GetStrategy(name string) (rendezvous.Strategy, error) {
	fn, ok := r.strategies[name]
	if !ok {
		return rendezvous.Strategy{}, fmt.Errorf("%w: controller %q", ErrUnknown, name)
	}
	return fn(), nil
}

func (r *Registry) GetIntegrator(name string) (dynamo.Integrator, error) {
	fn, ok := r.integrators[name]
	if !ok {
		return nil, fmt.Errorf("%w: integrator %q", ErrUnknown, name)
	}
	return fn(), nil
}

// ListControllers includes None alongside the registered strategies.
func (r *Registry) ListControllers() []string {
	names := []string{None}
	for name := range r.strategies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListIntegrators() []string {
	names := make([]string, 0, len(r.integrators))
	for name := range r.integrators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics(monitor rendezvous.SafetyMonitor) []dynamo.Metric {
	return []dynamo.Metric{
		metrics.NewControlEffort(),
		metrics.NewMinSeparation(),
		metrics.NewProximityViolations(monitor),
		metrics.NewStandoffError(),
	}
}
