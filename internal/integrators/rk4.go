package integrators

import "github.com/san-kum/docksim/internal/dynamo"

// RK4 is the classic fourth-order Runge-Kutta stepper. The control input is
// held constant across the step (zero-order hold), matching a controller that
// ticks once per step.
type RK4 struct{}

func NewRK4() *RK4 {
	return &RK4{}
}

func (r *RK4) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	h := dt / 2
	k1 := dyn.Derive(x, u, t)
	k2 := dyn.Derive(axpy(x, k1, h), u, t+h)
	k3 := dyn.Derive(axpy(x, k2, h), u, t+h)
	k4 := dyn.Derive(axpy(x, k3, dt), u, t+dt)

	out := make(dynamo.State, len(x))
	for i := range x {
		out[i] = x[i] + dt/6*(k1[i]+2*k2[i]+2*k3[i]+k4[i])
	}
	return out
}
