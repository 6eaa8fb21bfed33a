package telemetry

import "github.com/san-kum/docksim/internal/rendezvous"

type multi []rendezvous.Reporter

// Multi forwards every report to each non-nil reporter in order.
func Multi(reporters ...rendezvous.Reporter) rendezvous.Reporter {
	m := make(multi, 0, len(reporters))
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}

func (m multi) Initialized(id rendezvous.Identity, body rendezvous.BodyConfig) {
	for _, r := range m {
		r.Initialized(id, body)
	}
}

func (m multi) Tick(tr rendezvous.TickReport) {
	for _, r := range m {
		r.Tick(tr)
	}
}

func (m multi) Warn(tick int, adv rendezvous.Advisory) {
	for _, r := range m {
		r.Warn(tick, adv)
	}
}
