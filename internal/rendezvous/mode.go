package rendezvous

import "math"

type Mode int

const (
	ModeDirect Mode = iota
	ModeGated
)

func (m Mode) String() string {
	switch m {
	case ModeDirect:
		return "direct"
	case ModeGated:
		return "gated"
	default:
		return "unknown"
	}
}

type ModeSelector interface {
	Select(chase, target BodyState) Mode
}

type DirectOnly struct{}

func (DirectOnly) Select(BodyState, BodyState) Mode { return ModeDirect }

const (
	DefaultGateRadius = 0.6
	DefaultHalfCone   = math.Pi / 3
)

// ProximityGate selects ModeGated when the chase is within Radius of the target
// and its heading lies strictly outside [theta-HalfCone, theta+HalfCone] of the
// target heading. There is no hysteresis.
type ProximityGate struct {
	Radius   float64
	HalfCone float64
}

func NewProximityGate() ProximityGate {
	return ProximityGate{Radius: DefaultGateRadius, HalfCone: DefaultHalfCone}
}

func (g ProximityGate) Select(chase, target BodyState) Mode {
	if Separation(chase, target) > g.Radius {
		return ModeDirect
	}
	heading := chase.Pose.Theta
	lo := target.Pose.Theta - g.HalfCone
	hi := target.Pose.Theta + g.HalfCone
	if heading < lo || heading > hi {
		return ModeGated
	}
	return ModeDirect
}
