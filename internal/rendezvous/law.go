package rendezvous

// BiasAxis chooses which integral sum feeds the f_x bias.
type BiasAxis int

const (
	// BiasShared applies the y integral to both force axes.
	BiasShared BiasAxis = iota
	// BiasPerAxis applies the x integral to f_x and the y integral to f_y.
	BiasPerAxis
)

func (b BiasAxis) String() string {
	if b == BiasPerAxis {
		return "per_axis"
	}
	return "shared"
}

// Law is a PD law with an integral bias toward LawInput.Goal. A zero
// TorqueGain means the torque stiffness is taken from GainSet.KY.
type Law struct {
	ErrorScale   float64
	IntegralGain float64
	TorqueGain   float64
	Bias         BiasAxis
}

type LawInput struct {
	Chase  BodyState
	Target BodyState
	Goal   Point
	Gains  GainSet
	XSum   float64
	YSum   float64
}

func (l Law) Evaluate(in LawInput) Command {
	goal := in.Goal
	chase := in.Chase
	g := in.Gains

	errX := chase.Pose.X - goal.X
	errY := chase.Pose.Y - goal.Y
	thetaErr := chase.Pose.Theta - in.Target.Pose.Theta

	biasX := in.YSum
	if l.Bias == BiasPerAxis {
		biasX = in.XSum
	}

	torqueGain := l.TorqueGain
	if torqueGain == 0 {
		torqueGain = g.KY
	}

	return Command{
		FX:  -g.KX*l.ErrorScale*errX - g.DampX*chase.Twist.VX - l.IntegralGain*biasX,
		FY:  -g.KY*l.ErrorScale*errY - g.DampY*chase.Twist.VY - l.IntegralGain*in.YSum,
		Tau: -torqueGain*thetaErr - g.DampY*chase.Twist.Omega,
	}
}
