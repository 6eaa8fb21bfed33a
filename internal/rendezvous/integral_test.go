package rendezvous

import (
	"math"
	"testing"
)

func TestAccumulatorConstantError(t *testing.T) {
	var a Accumulator
	const n = 40
	ex, ey := 0.3, -0.75

	prevX, prevY := 0.0, 0.0
	for i := 0; i < n; i++ {
		a.Step(ex, ey, NominalStep)
		if a.XSum <= prevX {
			t.Fatalf("tick %d: x sum should grow with positive error", i)
		}
		if a.YSum >= prevY {
			t.Fatalf("tick %d: y sum should fall with negative error", i)
		}
		prevX, prevY = a.XSum, a.YSum
	}

	if math.Abs(a.XSum-n*ex*NominalStep) > 1e-12 {
		t.Errorf("expected x sum %f, got %f", n*ex*NominalStep, a.XSum)
	}
	if math.Abs(a.YSum-n*ey*NominalStep) > 1e-12 {
		t.Errorf("expected y sum %f, got %f", n*ey*NominalStep, a.YSum)
	}
}

func TestAccumulatorUnbounded(t *testing.T) {
	var a Accumulator
	for i := 0; i < 10000; i++ {
		a.Step(10, 10, NominalStep)
	}
	if a.XSum < 4999 {
		t.Errorf("unbounded accumulator should wind up, got %f", a.XSum)
	}
}

func TestAccumulatorBound(t *testing.T) {
	a := Accumulator{Bound: 1.5}
	for i := 0; i < 1000; i++ {
		a.Step(10, -10, NominalStep)
	}
	if a.XSum != 1.5 {
		t.Errorf("expected x sum clamped to 1.5, got %f", a.XSum)
	}
	if a.YSum != -1.5 {
		t.Errorf("expected y sum clamped to -1.5, got %f", a.YSum)
	}
}

func TestAccumulatorReset(t *testing.T) {
	a := Accumulator{Bound: 2}
	a.Step(1, 1, NominalStep)
	a.Reset()
	a.Reset()
	if a.XSum != 0 || a.YSum != 0 {
		t.Errorf("expected zero sums after reset, got %f %f", a.XSum, a.YSum)
	}
	if a.Bound != 2 {
		t.Error("reset should keep the bound")
	}
}
