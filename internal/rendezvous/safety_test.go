package rendezvous

import "testing"

func TestSafetyMonitorThresholds(t *testing.T) {
	m := NewSafetyMonitor()
	target := body(0, 0, 0)

	tests := []struct {
		name         string
		displacement float64
		speed        float64
		fires        bool
	}{
		{"close and fast", 0.49, 0.21, true},
		{"at radius and fast", 0.5, 0.21, false},
		{"close at speed limit", 0.49, 0.2, false},
		{"at radius at speed limit", 0.5, 0.2, false},
		{"far and fast", 0.51, 0.21, false},
		{"close and slow", 0.49, 0.19, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chase := BodyState{
				Pose:  Pose{X: tt.displacement},
				Twist: Twist{VX: tt.speed},
			}
			adv, fired := m.Check(chase, target)
			if fired != tt.fires {
				t.Errorf("Check() fired = %v, want %v", fired, tt.fires)
			}
			if adv.Displacement != tt.displacement || adv.Speed != tt.speed {
				t.Errorf("unexpected advisory %+v", adv)
			}
		})
	}
}

func TestSafetyMonitorPlanarSpeed(t *testing.T) {
	m := NewSafetyMonitor()
	chase := BodyState{
		Pose:  Pose{X: 0.1, Y: 0.1},
		Twist: Twist{VX: 0.15, VY: 0.15, Omega: 5},
	}
	if _, fired := m.Check(chase, body(0, 0, 0)); !fired {
		t.Error("expected warning for combined planar speed above limit")
	}
}
