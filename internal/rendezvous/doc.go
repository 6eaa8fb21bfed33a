// Package rendezvous implements the closed-loop docking controller that steers a
// chase body toward a standoff point beside a non-cooperative target.
//
// A [Session] owns the persistent integral state and runs one tick per call:
//
//   - [Standoff] resolves the target point attached to the target's frame
//   - [GainProfile] derives critically damped spring constants from body mass
//   - [Accumulator] integrates position error at a fixed nominal step
//   - [ModeSelector] picks the [ModeDirect] or [ModeGated] law
//   - [Law] evaluates the force and torque command
//   - [SafetyMonitor] reports excessive closing speed near the target
//
// # Usage
//
//	s := rendezvous.NewSession(rendezvous.Baseline(), rendezvous.WithReporter(r))
//	id := s.Init(rendezvous.DefaultBody())
//	cmd, err := s.Run(tick, chase, target)
//
// Sessions are NOT safe for concurrent use; the caller serialises Run calls.
package rendezvous
