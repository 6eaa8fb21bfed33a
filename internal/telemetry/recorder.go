package telemetry

import (
	"sync"

	"github.com/san-kum/docksim/internal/rendezvous"
)

// Recorder keeps the latest tick report and running counts. It is safe to read
// from another goroutine while a simulation writes to it.
type Recorder struct {
	mu          sync.Mutex
	identity    rendezvous.Identity
	last        rendezvous.TickReport
	ticks       int
	warnings    int
	gatedTicks  int
	modeChanges int
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Initialized(id rendezvous.Identity, _ rendezvous.BodyConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.identity = id
	r.last = rendezvous.TickReport{}
	r.ticks, r.warnings, r.gatedTicks, r.modeChanges = 0, 0, 0, 0
}

func (r *Recorder) Tick(tr rendezvous.TickReport) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ticks > 0 && tr.Mode != r.last.Mode {
		r.modeChanges++
	}
	if tr.Mode == rendezvous.ModeGated {
		r.gatedTicks++
	}
	r.last = tr
	r.ticks++
}

func (r *Recorder) Warn(int, rendezvous.Advisory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.warnings++
}

type Summary struct {
	Identity    rendezvous.Identity
	Last        rendezvous.TickReport
	Ticks       int
	Warnings    int
	GatedTicks  int
	ModeChanges int
}

func (r *Recorder) Summary() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Summary{
		Identity:    r.identity,
		Last:        r.last,
		Ticks:       r.ticks,
		Warnings:    r.warnings,
		GatedTicks:  r.gatedTicks,
		ModeChanges: r.modeChanges,
	}
}

// Metrics flattens the summary for run metadata.
func (s Summary) Metrics() map[string]float64 {
	return map[string]float64{
		"safety_warnings": float64(s.Warnings),
		"gated_ticks":     float64(s.GatedTicks),
		"mode_changes":    float64(s.ModeChanges),
	}
}
