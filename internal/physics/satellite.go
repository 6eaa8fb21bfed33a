package physics

import "github.com/san-kum/docksim/internal/dynamo"

const (
	DefaultMass    = 1.0
	DefaultInertia = 1.0
)

// Satellite is a free-flying planar rigid body with state
// [x, y, theta, vx, vy, omega] and world-frame control [fx, fy, tau].
type Satellite struct {
	Mass    float64
	Inertia float64
	// MaxForce saturates each force axis and the torque when positive.
	MaxForce float64
}

func NewSatellite() *Satellite {
	return &Satellite{
		Mass:    DefaultMass,
		Inertia: DefaultInertia,
	}
}

func (s *Satellite) StateDim() int   { return 6 }
func (s *Satellite) ControlDim() int { return 3 }

func (s *Satellite) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	fx, fy, tau := s.saturate(u)
	return dynamo.State{
		x[3], x[4], x[5],
		fx / s.Mass, fy / s.Mass, tau / s.Inertia,
	}
}

func (s *Satellite) saturate(u dynamo.Control) (fx, fy, tau float64) {
	if len(u) >= 3 {
		fx, fy, tau = u[0], u[1], u[2]
	}
	if s.MaxForce > 0 {
		fx = limit(fx, s.MaxForce)
		fy = limit(fy, s.MaxForce)
		tau = limit(tau, s.MaxForce)
	}
	return fx, fy, tau
}

// Energy is the kinetic energy, translational plus rotational.
func (s *Satellite) Energy(x dynamo.State) float64 {
	vx, vy, omega := x[3], x[4], x[5]
	return 0.5*s.Mass*(vx*vx+vy*vy) + 0.5*s.Inertia*omega*omega
}

func limit(v, bound float64) float64 {
	if v > bound {
		return bound
	}
	if v < -bound {
		return -bound
	}
	return v
}
