package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/docksim/internal/dynamo"
	"github.com/san-kum/docksim/internal/physics"
	"github.com/san-kum/docksim/internal/rendezvous"
)

func state(cx, cy, cvx float64) dynamo.State {
	return physics.Pack(
		rendezvous.BodyState{
			Pose:  rendezvous.Pose{X: cx, Y: cy},
			Twist: rendezvous.Twist{VX: cvx},
		},
		rendezvous.BodyState{},
	)
}

func TestControlEffort(t *testing.T) {
	m := NewControlEffort()
	m.Observe(nil, dynamo.Control{1, -2, 3}, 0)
	m.Observe(nil, dynamo.Control{0, 0, -2}, 0)
	if m.Value() != 4 {
		t.Errorf("expected mean effort 4, got %f", m.Value())
	}
	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero effort after reset")
	}
}

func TestMinSeparation(t *testing.T) {
	m := NewMinSeparation()
	if m.Value() != 0 {
		t.Error("expected zero before any observation")
	}
	m.Observe(state(3, 4, 0), nil, 0)
	m.Observe(state(0.3, 0.4, 0), nil, 0)
	m.Observe(state(1, 0, 0), nil, 0)
	if math.Abs(m.Value()-0.5) > 1e-12 {
		t.Errorf("expected closest approach 0.5, got %f", m.Value())
	}
}

func TestProximityViolations(t *testing.T) {
	m := NewProximityViolations(rendezvous.NewSafetyMonitor())
	m.Observe(state(0.4, 0, -0.3), nil, 0)
	m.Observe(state(0.4, 0, -0.1), nil, 0)
	m.Observe(state(0.6, 0, -0.3), nil, 0)
	m.Observe(state(0.1, 0, 0.25), nil, 0)
	if m.Value() != 2 {
		t.Errorf("expected 2 violations, got %f", m.Value())
	}
}

func TestStandoffError(t *testing.T) {
	m := NewStandoffError()
	m.Observe(state(0, -1, 0), nil, 0)
	if math.Abs(m.Value()-0.75) > 1e-12 {
		t.Errorf("expected standoff error 0.75, got %f", m.Value())
	}
	m.Observe(state(0, -0.25, 0), nil, 0)
	if m.Value() > 1e-12 {
		t.Errorf("expected zero error at the standoff point, got %f", m.Value())
	}
	m.Finish(state(0, -0.5, 0), 1)
	if math.Abs(m.Value()-0.25) > 1e-12 {
		t.Errorf("expected the final state to win, got %f", m.Value())
	}
}
