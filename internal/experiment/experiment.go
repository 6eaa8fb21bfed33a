package experiment

import (
	"context"
	"fmt"
	"maps"

	"github.com/san-kum/docksim/internal/config"
	"github.com/san-kum/docksim/internal/control"
	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/physics"
	"github.com/san-kum/docksim/internal/rendezvous"
	"github.com/san-kum/docksim/internal/telemetry"
)

// Experiment is one scenario wired into a simulator.
type Experiment struct {
	cfg       *config.Config
	simulator *dynamo.Simulator
	session   *rendezvous.Session
	recorder  *telemetry.Recorder
	x0        dynamo.State
}

// New builds the plant, the controller session and the simulator for cfg.
// reporter may be nil.
func New(reg *Registry, cfg *config.Config, reporter rendezvous.Reporter) (*Experiment, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	integ, err := reg.GetIntegrator(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	chase := physics.NewSatellite()
	chase.Mass = cfg.Body.Mass
	chase.Inertia = cfg.Body.Inertia
	chase.MaxForce = cfg.Body.MaxForce
	sys := physics.NewRendezvous(chase, physics.NewSatellite())

	e := &Experiment{
		cfg:      cfg,
		recorder: telemetry.NewRecorder(),
		x0:       physics.Pack(cfg.Chase.State(), cfg.Target.State()),
	}

	var ctrl dynamo.Controller
	if cfg.Controller == None {
		ctrl = control.NewNone(sys.ControlDim())
	} else {
		strategy, err := reg.GetStrategy(cfg.Controller)
		if err != nil {
			return nil, err
		}
		e.session = rendezvous.NewSession(cfg.ApplyLaw(strategy),
			rendezvous.WithReporter(telemetry.Multi(e.recorder, reporter)),
			rendezvous.WithIdentity(cfg.Identity()),
			rendezvous.WithSafetyMonitor(cfg.SafetyMonitor()),
		)
		e.session.Init(cfg.BodyConfig())
		ctrl = control.NewDocking(e.session)
	}

	e.simulator = dynamo.New(sys, integ, ctrl)
	for _, m := range reg.DefaultMetrics(cfg.SafetyMonitor()) {
		e.simulator.AddMetric(m)
	}
	return e, nil
}

func (e *Experiment) Run(ctx context.Context) (*dynamo.Result, error) {
	result, err := e.simulator.Run(ctx, e.x0, e.cfg.SimConfig())
	if err != nil {
		return result, fmt.Errorf("run %s: %w", e.cfg.Controller, err)
	}
	maps.Copy(result.Metrics, e.Summary().Metrics())
	return result, nil
}

// Reset rewinds the controller and re-initialises the session so a fresh run
// starts from zeroed integral sums and counters.
func (e *Experiment) Reset() {
	e.simulator.Reset()
	if e.session != nil {
		e.session.Init(e.cfg.BodyConfig())
	}
}

// Job exposes the experiment for dynamo.RunParallel.
func (e *Experiment) Job() dynamo.Job {
	return dynamo.Job{Sim: e.simulator, X0: e.x0}
}

func (e *Experiment) Summary() telemetry.Summary {
	return e.recorder.Summary()
}

// Session is nil for the "none" controller.
func (e *Experiment) Session() *rendezvous.Session {
	return e.session
}

func (e *Experiment) Simulator() *dynamo.Simulator {
	return e.simulator
}

func (e *Experiment) InitialState() dynamo.State {
	return e.x0.Clone()
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}
