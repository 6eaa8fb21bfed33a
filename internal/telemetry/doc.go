// Package telemetry provides [rendezvous.Reporter] implementations: a zap
// structured logger, an in-memory [Recorder] for summaries and live views, and
// [Multi] for fan-out.
package telemetry
