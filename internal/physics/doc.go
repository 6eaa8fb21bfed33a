// Package physics provides the planar rigid-body models the docking harness
// integrates.
//
// Each model implements [dynamo.System] and [dynamo.Hamiltonian]:
//
//   - [Satellite]: one free-flying body driven by world-frame force and torque
//   - [Rendezvous]: a controlled chase satellite plus a coasting target
//
// [Bodies] and [Pack] convert between the flat state vector and
// [rendezvous.BodyState] values.
package physics
