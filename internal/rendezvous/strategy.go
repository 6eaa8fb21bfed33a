package rendezvous

// Strategy bundles the policies that distinguish controller variants.
type Strategy struct {
	Name          string
	Profile       GainProfile
	Selector      ModeSelector
	Resolver      TargetResolver
	// GatedResolver supplies the goal while the selector reports ModeGated.
	// Nil keeps Resolver's point in both modes.
	GatedResolver TargetResolver
	Law           Law

	// Step is the accumulator integration step in seconds.
	Step float64
	// UseElapsed integrates with the tick's elapsed time instead of Step.
	UseElapsed bool
	// IntegralBound clamps the accumulator; zero leaves it unbounded.
	IntegralBound float64
}

// Baseline is the single-mode PD law with a shared integral bias.
func Baseline() Strategy {
	return Strategy{
		Name:     "baseline",
		Profile:  Nominal,
		Selector: DirectOnly{},
		Resolver: StandoffResolver{Radius: StandoffRadius},
		Law: Law{
			ErrorScale:   1,
			IntegralGain: 2,
			Bias:         BiasShared,
		},
		Step: NominalStep,
	}
}

// Challenge is the two-mode law: detuned gains, softened error, a fixed torque
// gain, and a fixed (1, 1) goal when gated.
func Challenge() Strategy {
	return Strategy{
		Name:          "challenge",
		Profile:       Detuned,
		Selector:      NewProximityGate(),
		Resolver:      StandoffResolver{Radius: StandoffRadius},
		GatedResolver: FixedPoint{X: 1, Y: 1},
		Law: Law{
			ErrorScale: 0.1,
			TorqueGain: 30,
		},
		Step: NominalStep,
	}
}

// goal picks the point the law steers toward for the given mode.
func (s Strategy) goal(mode Mode, target Pose, standoff Point) Point {
	if mode == ModeGated && s.GatedResolver != nil {
		return s.GatedResolver.Resolve(target)
	}
	return standoff
}

func (s Strategy) step(tick SystemTick) float64 {
	if s.UseElapsed && tick.Elapsed > 0 {
		return tick.Elapsed.Seconds()
	}
	if s.Step > 0 {
		return s.Step
	}
	return NominalStep
}
