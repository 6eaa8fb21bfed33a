package rendezvous

import (
	"errors"
	"math"
	"testing"
	"time"
)

type recordingReporter struct {
	inits []Identity
	ticks []TickReport
	warns []Advisory
}

func (r *recordingReporter) Initialized(id Identity, _ BodyConfig) { r.inits = append(r.inits, id) }
func (r *recordingReporter) Tick(tr TickReport)                    { r.ticks = append(r.ticks, tr) }
func (r *recordingReporter) Warn(_ int, adv Advisory)              { r.warns = append(r.warns, adv) }

var tick = SystemTick{Elapsed: 50 * time.Millisecond}

func TestSessionInit(t *testing.T) {
	rep := &recordingReporter{}
	s := NewSession(Baseline(), WithReporter(rep))

	id := s.Init(DefaultBody())
	if id.Name != "FakeNASA" || id.ID != 6969 {
		t.Errorf("unexpected identity %+v", id)
	}
	if len(rep.inits) != 1 {
		t.Errorf("expected 1 init report, got %d", len(rep.inits))
	}
	if s.State() != (ControllerState{}) {
		t.Errorf("expected zero state after init, got %+v", s.State())
	}
}

func TestSessionApproachFromBelow(t *testing.T) {
	s := NewSession(Baseline())
	s.Init(DefaultBody())

	target := BodyState{}
	chase := BodyState{Pose: Pose{X: 0, Y: -1, Theta: 0}}

	cmd, err := s.Run(tick, chase, target)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	g := Nominal.Gains(1)
	st := s.State()
	wantYSum := -0.75 * NominalStep
	if math.Abs(st.YSum-wantYSum) > 1e-12 {
		t.Errorf("expected y sum %f, got %f", wantYSum, st.YSum)
	}
	if st.XSum >= 0 || st.YSum >= 0 {
		t.Errorf("expected both sums negative, got %+v", st)
	}

	wantFY := g.KY*0.75 - 2*wantYSum
	if math.Abs(cmd.FY-wantFY) > 1e-9 {
		t.Errorf("expected fy %f, got %f", wantFY, cmd.FY)
	}
	if cmd.FY <= 0 {
		t.Errorf("fy should push toward the standoff point above the chase, got %f", cmd.FY)
	}
	if cmd.Tau != 0 {
		t.Errorf("expected zero torque without heading error, got %f", cmd.Tau)
	}
}

func TestSessionSharedBias(t *testing.T) {
	s := NewSession(Baseline())
	s.Init(DefaultBody())

	chase := BodyState{Pose: Pose{X: 2, Y: -1}}
	var cmd Command
	for i := 0; i < 5; i++ {
		cmd, _ = s.Run(tick, chase, BodyState{})
	}

	g := Nominal.Gains(1)
	st := s.State()
	sp := Standoff(Pose{})
	wantFX := -g.KX*(2-sp.X) - 2*st.YSum
	if math.Abs(cmd.FX-wantFX) > 1e-9 {
		t.Errorf("f_x should carry the y integral: want %f, got %f", wantFX, cmd.FX)
	}
}

func TestSessionPerAxisBias(t *testing.T) {
	strat := Baseline()
	strat.Law.Bias = BiasPerAxis
	s := NewSession(strat)
	s.Init(DefaultBody())

	chase := BodyState{Pose: Pose{X: 2, Y: -1}}
	var cmd Command
	for i := 0; i < 5; i++ {
		cmd, _ = s.Run(tick, chase, BodyState{})
	}

	g := Nominal.Gains(1)
	st := s.State()
	sp := Standoff(Pose{})
	wantFX := -g.KX*(2-sp.X) - 2*st.XSum
	if math.Abs(cmd.FX-wantFX) > 1e-9 {
		t.Errorf("f_x should carry the x integral: want %f, got %f", wantFX, cmd.FX)
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession(Baseline())
	s.Init(DefaultBody())

	chase := BodyState{Pose: Pose{X: 1, Y: 1}}
	for i := 0; i < 3; i++ {
		if _, err := s.Run(tick, chase, BodyState{}); err != nil {
			t.Fatal(err)
		}
	}
	if s.State().Ticks != 3 {
		t.Errorf("expected 3 ticks, got %d", s.State().Ticks)
	}

	s.Reset()
	s.Reset()
	if s.State() != (ControllerState{}) {
		t.Errorf("expected zero state after reset, got %+v", s.State())
	}
}

func TestSessionRejectsNonFinite(t *testing.T) {
	s := NewSession(Baseline())
	s.Init(DefaultBody())

	tests := []struct {
		name   string
		chase  BodyState
		target BodyState
	}{
		{"nan chase", BodyState{Pose: Pose{X: math.NaN()}}, BodyState{}},
		{"inf target", BodyState{}, BodyState{Twist: Twist{Omega: math.Inf(1)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Run(tick, tt.chase, tt.target)
			if !errors.Is(err, ErrNonFiniteState) {
				t.Errorf("expected ErrNonFiniteState, got %v", err)
			}
			if s.State() != (ControllerState{}) {
				t.Errorf("state mutated on rejected tick: %+v", s.State())
			}
		})
	}
}

func TestSessionNominalStepIgnoresElapsed(t *testing.T) {
	s := NewSession(Baseline())
	s.Init(DefaultBody())

	chase := BodyState{Pose: Pose{Y: -1}}
	if _, err := s.Run(SystemTick{Elapsed: time.Second}, chase, BodyState{}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.State().YSum-(-0.75*NominalStep)) > 1e-12 {
		t.Errorf("expected nominal step integration, got %f", s.State().YSum)
	}
}

func TestSessionElapsedStep(t *testing.T) {
	strat := Baseline()
	strat.UseElapsed = true
	s := NewSession(strat)
	s.Init(DefaultBody())

	chase := BodyState{Pose: Pose{Y: -1}}
	if _, err := s.Run(SystemTick{Elapsed: 100 * time.Millisecond}, chase, BodyState{}); err != nil {
		t.Fatal(err)
	}
	if math.Abs(s.State().YSum-(-0.75*0.1)) > 1e-12 {
		t.Errorf("expected elapsed step integration, got %f", s.State().YSum)
	}

	// Without a reported elapsed time it falls back to the nominal step.
	if _, err := s.Run(SystemTick{}, chase, BodyState{}); err != nil {
		t.Fatal(err)
	}
	want := -0.75*0.1 - 0.75*NominalStep
	if math.Abs(s.State().YSum-want) > 1e-12 {
		t.Errorf("expected %f, got %f", want, s.State().YSum)
	}
}

func TestSessionIntegralBound(t *testing.T) {
	strat := Baseline()
	strat.IntegralBound = 0.1
	s := NewSession(strat)
	s.Init(DefaultBody())

	chase := BodyState{Pose: Pose{X: 5, Y: 5}}
	for i := 0; i < 100; i++ {
		s.Run(tick, chase, BodyState{})
	}
	if st := s.State(); st.XSum != 0.1 || st.YSum != 0.1 {
		t.Errorf("expected sums clamped at 0.1, got %+v", st)
	}
}

func TestSessionReportsWarningWithoutChangingCommand(t *testing.T) {
	rep := &recordingReporter{}
	quiet := NewSession(Baseline())
	loud := NewSession(Baseline(), WithReporter(rep))
	quiet.Init(DefaultBody())
	loud.Init(DefaultBody())

	chase := BodyState{Pose: Pose{X: 0.2, Y: -0.1}, Twist: Twist{VX: -0.3}}
	a, _ := quiet.Run(tick, chase, BodyState{})
	b, _ := loud.Run(tick, chase, BodyState{})

	if a != b {
		t.Errorf("safety monitor altered the command: %+v vs %+v", a, b)
	}
	if len(rep.warns) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(rep.warns))
	}
	if len(rep.ticks) != 1 || rep.ticks[0].Tick != 1 {
		t.Errorf("expected one tick report for tick 1, got %+v", rep.ticks)
	}
	if rep.ticks[0].Mode != ModeDirect {
		t.Errorf("baseline should stay direct, got %v", rep.ticks[0].Mode)
	}
}

func TestSessionBaselineNeverGates(t *testing.T) {
	rep := &recordingReporter{}
	s := NewSession(Baseline(), WithReporter(rep))
	s.Init(DefaultBody())

	s.Run(tick, body(0.1, 0.1, math.Pi), BodyState{})
	if rep.ticks[0].Mode != ModeDirect {
		t.Errorf("expected direct, got %v", rep.ticks[0].Mode)
	}
}
