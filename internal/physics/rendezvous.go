package physics

import (
	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/rendezvous"
)

// Rendezvous couples a controlled chase satellite with an uncontrolled target.
// The state is laid out positions first so velocity Verlet applies:
//
//	[cx, cy, ctheta, tx, ty, ttheta, cvx, cvy, comega, tvx, tvy, tomega]
//
// Control is [fx, fy, tau] on the chase only; the target coasts.
type Rendezvous struct {
	Chase  *Satellite
	Target *Satellite
}

func NewRendezvous(chase, target *Satellite) *Rendezvous {
	return &Rendezvous{Chase: chase, Target: target}
}

func (r *Rendezvous) StateDim() int   { return 12 }
func (r *Rendezvous) ControlDim() int { return 3 }

func (r *Rendezvous) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	dc := r.Chase.Derive(chaseSlice(x), u, t)
	dg := r.Target.Derive(targetSlice(x), nil, t)
	return dynamo.State{
		dc[0], dc[1], dc[2], dg[0], dg[1], dg[2],
		dc[3], dc[4], dc[5], dg[3], dg[4], dg[5],
	}
}

func (r *Rendezvous) Energy(x dynamo.State) float64 {
	return r.Chase.Energy(chaseSlice(x)) + r.Target.Energy(targetSlice(x))
}

func chaseSlice(x dynamo.State) dynamo.State {
	return dynamo.State{x[0], x[1], x[2], x[6], x[7], x[8]}
}

func targetSlice(x dynamo.State) dynamo.State {
	return dynamo.State{x[3], x[4], x[5], x[9], x[10], x[11]}
}

// Bodies splits a rendezvous state into chase and target body states.
func Bodies(x dynamo.State) (chase, target rendezvous.BodyState) {
	return bodyState(chaseSlice(x)), bodyState(targetSlice(x))
}

// Pack builds a rendezvous state from two body states.
func Pack(chase, target rendezvous.BodyState) dynamo.State {
	return dynamo.State{
		chase.Pose.X, chase.Pose.Y, chase.Pose.Theta,
		target.Pose.X, target.Pose.Y, target.Pose.Theta,
		chase.Twist.VX, chase.Twist.VY, chase.Twist.Omega,
		target.Twist.VX, target.Twist.VY, target.Twist.Omega,
	}
}

func bodyState(s dynamo.State) rendezvous.BodyState {
	return rendezvous.BodyState{
		Pose:  rendezvous.Pose{X: s[0], Y: s[1], Theta: s[2]},
		Twist: rendezvous.Twist{VX: s[3], VY: s[4], Omega: s[5]},
	}
}
