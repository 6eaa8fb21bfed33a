package rendezvous

import "math"

// Time constants for the x and y axes. Only their squares reach the gains,
// so the sign of the y constant has no effect.
const (
	timeConstantX = 2.03576
	timeConstantY = -0.81430
)

type GainSet struct {
	KX, KY       float64
	DampX, DampY float64
}

// GainProfile scales the spring constants' natural frequency by Stiffness and the
// critical damping by Damping.
type GainProfile struct {
	Name      string
	Stiffness float64
	Damping   float64
}

var (
	Nominal = GainProfile{Name: "nominal", Stiffness: 1, Damping: 1}
	Detuned = GainProfile{Name: "detuned", Stiffness: 1.4, Damping: 0.7}
)

func (p GainProfile) Gains(mass float64) GainSet {
	kx := math.Pow(math.E/timeConstantX*p.Stiffness, 2)
	ky := math.Pow(math.E/timeConstantY*p.Stiffness, 2)
	return GainSet{
		KX:    kx,
		KY:    ky,
		DampX: 2 * math.Sqrt(mass*kx) * p.Damping,
		DampY: 2 * math.Sqrt(mass*ky) * p.Damping,
	}
}
