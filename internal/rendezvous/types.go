package rendezvous

import (
	"math"
	"time"
)

type Pose struct {
	X, Y, Theta float64
}

type Twist struct {
	VX, VY, Omega float64
}

type BodyState struct {
	Pose  Pose
	Twist Twist
}

func (b BodyState) IsValid() bool {
	for _, v := range [...]float64{b.Pose.X, b.Pose.Y, b.Pose.Theta, b.Twist.VX, b.Twist.VY, b.Twist.Omega} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Speed is the planar linear speed; angular rate is ignored.
func (b BodyState) Speed() float64 {
	return math.Hypot(b.Twist.VX, b.Twist.VY)
}

// Separation is the planar distance between the two bodies' positions.
func Separation(a, b BodyState) float64 {
	return math.Hypot(a.Pose.X-b.Pose.X, a.Pose.Y-b.Pose.Y)
}

// SystemTick carries harness timing for one tick.
type SystemTick struct {
	Elapsed time.Duration
}

type Command struct {
	FX, FY, Tau float64
}

type Identity struct {
	Name string
	ID   int
}

type BodyConfig struct {
	Mass    float64
	Inertia float64
}

func DefaultBody() BodyConfig {
	return BodyConfig{Mass: 1, Inertia: 1}
}

func DefaultIdentity() Identity {
	return Identity{Name: "FakeNASA", ID: 6969}
}

// ControllerState is a snapshot of the persistent per-run state.
type ControllerState struct {
	XSum  float64
	YSum  float64
	Ticks int
}
