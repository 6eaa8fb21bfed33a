// Package control provides feedback controllers for the docking harness.
//
// Controllers implement the [dynamo.Controller] interface:
//
//   - [Docking]: drives a [rendezvous.Session] from rendezvous states
//   - [None]: passthrough controller (zero control), the coasting baseline
//
// # Usage
//
//	session := rendezvous.NewSession(rendezvous.Baseline())
//	session.Init(rendezvous.DefaultBody())
//	sim := dynamo.New(sys, integ, control.NewDocking(session))
package control
