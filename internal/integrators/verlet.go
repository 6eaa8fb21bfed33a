package integrators

import "github.com/san-kum/docksim/internal/dynamo"

// Verlet is velocity Verlet for states laid out as [positions..., velocities...]
// where the derivative of each position is the matching velocity.
type Verlet struct {
	mid dynamo.State
}

func NewVerlet() *Verlet {
	return &Verlet{}
}

func (v *Verlet) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2
	if len(v.mid) != n {
		v.mid = make(dynamo.State, n)
	}

	a0 := dyn.Derive(x, u, t)
	out := make(dynamo.State, n)
	for i := 0; i < half; i++ {
		out[i] = x[i] + x[half+i]*dt + 0.5*a0[half+i]*dt*dt
		v.mid[i] = out[i]
		v.mid[half+i] = x[half+i]
	}

	a1 := dyn.Derive(v.mid, u, t+dt)
	for i := 0; i < half; i++ {
		out[half+i] = x[half+i] + 0.5*(a0[half+i]+a1[half+i])*dt
	}
	return out
}
