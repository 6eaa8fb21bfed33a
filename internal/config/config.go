package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/rendezvous"
)

const (
	DefaultDt       = rendezvous.NominalStep
	DefaultDuration = 60.0
)

var ErrInvalid = errors.New("config: invalid scenario")

type Config struct {
	Controller string        `yaml:"controller"`
	Integrator string        `yaml:"integrator"`
	Dt         float64       `yaml:"dt"`
	Duration   float64       `yaml:"duration"`
	Chase      BodyInit      `yaml:"chase"`
	Target     BodyInit      `yaml:"target"`
	Body       BodyParams    `yaml:"body"`
	Law        LawOptions    `yaml:"law"`
	Team       TeamConfig    `yaml:"team"`
	Safety     SafetyOptions `yaml:"safety"`
}

type BodyInit struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Theta float64 `yaml:"theta"`
	VX    float64 `yaml:"vx"`
	VY    float64 `yaml:"vy"`
	Omega float64 `yaml:"omega"`
}

type BodyParams struct {
	Mass     float64 `yaml:"mass"`
	Inertia  float64 `yaml:"inertia"`
	MaxForce float64 `yaml:"max_force"`
}

type LawOptions struct {
	// Bias is "shared" (y integral on both axes) or "per_axis".
	Bias          string  `yaml:"bias"`
	IntegralBound float64 `yaml:"integral_bound"`
	ElapsedStep   bool    `yaml:"elapsed_step"`
}

type TeamConfig struct {
	Name string `yaml:"name"`
	ID   int    `yaml:"id"`
}

type SafetyOptions struct {
	Radius     float64 `yaml:"radius"`
	SpeedLimit float64 `yaml:"speed_limit"`
}

func DefaultConfig() *Config {
	id := rendezvous.DefaultIdentity()
	return &Config{
		Controller: "baseline",
		Integrator: "rk4",
		Dt:         DefaultDt,
		Duration:   DefaultDuration,
		Chase:      BodyInit{Y: -1},
		Body:       BodyParams{Mass: 1, Inertia: 1},
		Law:        LawOptions{Bias: "shared"},
		Team:       TeamConfig{Name: id.Name, ID: id.ID},
		Safety: SafetyOptions{
			Radius:     rendezvous.DefaultSafetyRadius,
			SpeedLimit: rendezvous.DefaultSpeedLimit,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Dt <= 0 {
		return fmt.Errorf("%w: dt must be positive, got %f", ErrInvalid, c.Dt)
	}
	if c.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %f", ErrInvalid, c.Duration)
	}
	if c.Body.Mass <= 0 || c.Body.Inertia <= 0 {
		return fmt.Errorf("%w: mass and inertia must be positive", ErrInvalid)
	}
	if c.Law.IntegralBound < 0 {
		return fmt.Errorf("%w: integral_bound must not be negative", ErrInvalid)
	}
	switch c.Law.Bias {
	case "", "shared", "per_axis":
	default:
		return fmt.Errorf("%w: unknown bias %q", ErrInvalid, c.Law.Bias)
	}
	for _, v := range []float64{
		c.Chase.X, c.Chase.Y, c.Chase.Theta, c.Chase.VX, c.Chase.VY, c.Chase.Omega,
		c.Target.X, c.Target.Y, c.Target.Theta, c.Target.VX, c.Target.VY, c.Target.Omega,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: non-finite initial state", ErrInvalid)
		}
	}
	return nil
}

func (b BodyInit) State() rendezvous.BodyState {
	return rendezvous.BodyState{
		Pose:  rendezvous.Pose{X: b.X, Y: b.Y, Theta: b.Theta},
		Twist: rendezvous.Twist{VX: b.VX, VY: b.VY, Omega: b.Omega},
	}
}

func (c *Config) BodyConfig() rendezvous.BodyConfig {
	return rendezvous.BodyConfig{Mass: c.Body.Mass, Inertia: c.Body.Inertia}
}

func (c *Config) Identity() rendezvous.Identity {
	return rendezvous.Identity{Name: c.Team.Name, ID: c.Team.ID}
}

func (c *Config) SafetyMonitor() rendezvous.SafetyMonitor {
	return rendezvous.SafetyMonitor{Radius: c.Safety.Radius, SpeedLimit: c.Safety.SpeedLimit}
}

// ApplyLaw overlays the law options onto a strategy.
func (c *Config) ApplyLaw(s rendezvous.Strategy) rendezvous.Strategy {
	if c.Law.Bias == "per_axis" {
		s.Law.Bias = rendezvous.BiasPerAxis
	}
	s.IntegralBound = c.Law.IntegralBound
	s.UseElapsed = c.Law.ElapsedStep
	return s
}

func (c *Config) SimConfig() dynamo.Config {
	sc := dynamo.DefaultConfig()
	sc.Dt, sc.Duration = c.Dt, c.Duration
	return sc
}
