// Package dynamo provides the simulation primitives the docking harness runs on.
//
// The package defines the fundamental interfaces and types for stepping an
// ordinary differential equation under feedback control:
//
//   - [State]: vector representing system state
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Integrator]: numerical stepper interface
//   - [Controller]: feedback controller interface
//   - [Simulator]: orchestrates simulation runs
//
// # Example
//
//	sys := physics.NewRendezvous(physics.NewSatellite(), physics.NewSatellite())
//	sim := dynamo.New(sys, integrators.NewRK4(), ctrl)
//	result, err := sim.Run(ctx, x0, dynamo.DefaultConfig())
//
// # Thread Safety
//
// Simulator instances are NOT thread-safe. [RunParallel] runs independent
// simulators side by side.
package dynamo
