package rendezvous

import (
	"math"
	"testing"
)

func body(x, y, theta float64) BodyState {
	return BodyState{Pose: Pose{X: x, Y: y, Theta: theta}}
}

func TestProximityGateBoundaries(t *testing.T) {
	gate := NewProximityGate()
	const eps = 1e-9

	tests := []struct {
		name   string
		chase  BodyState
		target BodyState
		want   Mode
	}{
		{"upper cone edge at gate radius", body(0.6, 0, math.Pi/3), body(0, 0, 0), ModeDirect},
		{"lower cone edge at gate radius", body(0.6, 0, -math.Pi/3), body(0, 0, 0), ModeDirect},
		{"just past upper edge", body(0.6, 0, math.Pi/3+eps), body(0, 0, 0), ModeGated},
		{"just past lower edge", body(0.6, 0, -math.Pi/3-eps), body(0, 0, 0), ModeGated},
		{"rotated target upper edge", body(1.3, 1, 1+math.Pi/3), body(1, 1, 1), ModeDirect},
		{"rotated target lower edge", body(1.3, 1, 1-math.Pi/3), body(1, 1, 1), ModeDirect},
		{"misaligned beyond radius", body(0.6+eps, 0, math.Pi), body(0, 0, 0), ModeDirect},
		{"misaligned inside radius", body(0.2, 0.1, math.Pi), body(0, 0, 0), ModeGated},
		{"aligned inside radius", body(0.2, 0.1, 0.1), body(0, 0, 0), ModeDirect},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gate.Select(tt.chase, tt.target); got != tt.want {
				t.Errorf("Select() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProximityGateNoHysteresis(t *testing.T) {
	gate := NewProximityGate()
	target := body(0, 0, 0)
	in := body(0.59, 0, math.Pi)
	out := body(0.61, 0, math.Pi)

	seq := []BodyState{in, out, in, out}
	want := []Mode{ModeGated, ModeDirect, ModeGated, ModeDirect}
	for i, c := range seq {
		if got := gate.Select(c, target); got != want[i] {
			t.Errorf("tick %d: expected %v, got %v", i, want[i], got)
		}
	}
}

func TestDirectOnly(t *testing.T) {
	if got := (DirectOnly{}).Select(body(0.1, 0, math.Pi), body(0, 0, 0)); got != ModeDirect {
		t.Errorf("expected direct, got %v", got)
	}
}

func TestModeString(t *testing.T) {
	if ModeDirect.String() != "direct" || ModeGated.String() != "gated" {
		t.Error("unexpected mode names")
	}
	if Mode(7).String() != "unknown" {
		t.Error("expected unknown for out of range mode")
	}
}
