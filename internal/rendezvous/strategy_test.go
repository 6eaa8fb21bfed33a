package rendezvous

import (
	"math"
	"testing"
)

func TestStrategyGoal(t *testing.T) {
	target := Pose{X: 0.5, Y: -0.5, Theta: 0.3}
	standoff := Standoff(target)

	tests := []struct {
		name     string
		strategy Strategy
		mode     Mode
		want     Point
	}{
		{"baseline direct", Baseline(), ModeDirect, standoff},
		{"baseline without gated resolver", Baseline(), ModeGated, standoff},
		{"challenge direct", Challenge(), ModeDirect, standoff},
		{"challenge gated", Challenge(), ModeGated, Point{X: 1, Y: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.strategy.goal(tt.mode, target, standoff); got != tt.want {
				t.Errorf("expected %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestSessionGatedResolverOverride(t *testing.T) {
	strategy := Challenge()
	strategy.GatedResolver = FixedPoint{X: 2, Y: -1}
	s := NewSession(strategy)
	s.Init(DefaultBody())

	// Close to the target and heading outside the alignment cone.
	chase := BodyState{Pose: Pose{X: 0.3, Y: 0.1, Theta: math.Pi/3 + math.Pi/2}}
	cmd, err := s.Run(tick, chase, BodyState{})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	g := Detuned.Gains(1)
	wantFX := -g.KX * 0.1 * (0.3 - 2)
	wantFY := -g.KY * 0.1 * (0.1 + 1)
	if math.Abs(cmd.FX-wantFX) > 1e-9 || math.Abs(cmd.FY-wantFY) > 1e-9 {
		t.Errorf("expected (%f, %f) toward the gated goal, got (%f, %f)", wantFX, wantFY, cmd.FX, cmd.FY)
	}

	// The accumulator still integrates the standoff error.
	sp := Standoff(Pose{})
	wantX := (0.3 - sp.X) * NominalStep
	if math.Abs(s.State().XSum-wantX) > 1e-12 {
		t.Errorf("expected x sum %f, got %f", wantX, s.State().XSum)
	}
}
